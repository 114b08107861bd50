package service_test

import (
	"io"
	"log/slog"

	"github.com/dangerclosesec/mubadara/internal/repository"
	"github.com/dangerclosesec/mubadara/internal/workflow"
	"github.com/google/uuid"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func individual() workflow.Actor {
	return workflow.Actor{UserID: uuid.New()}
}

func admin() workflow.Actor {
	return workflow.Actor{UserID: uuid.New(), Admin: true}
}

func managerOf(orgID uuid.UUID) workflow.Actor {
	return workflow.Actor{UserID: uuid.New(), ManagedOrganizations: []uuid.UUID{orgID}}
}

func intPtr(n int) *int { return &n }

func repositoryPage() repository.Page { return repository.Page{Limit: 20} }

var (
	pngBytes  = append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 64)...)
	jpegBytes = append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, make([]byte, 64)...)
	webpBytes = append([]byte("RIFF\x24\x00\x00\x00WEBPVP8 "), make([]byte, 64)...)
	pdfBytes  = append([]byte("%PDF-1.7\n"), make([]byte, 64)...)
)
