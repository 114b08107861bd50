package email

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/dangerclosesec/mubadara/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmailService_LoadsTemplates(t *testing.T) {
	s, err := NewEmailService(config.Load(), ProviderLog, nil)
	require.NoError(t, err)

	for _, name := range []string{
		"organization_approved", "organization_rejected",
		"initiative_published", "initiative_cancelled",
		"participant_accepted", "participant_rejected",
	} {
		assert.Contains(t, s.Templates, name)
	}
}

func TestRender(t *testing.T) {
	s, err := NewEmailService(config.Load(), ProviderLog, nil)
	require.NoError(t, err)

	data := struct {
		RecipientName string
		EntityName    string
		Reason        string
		Link          string
	}{"سارة", "جمعية <الأمل>", "الوثائق ناقصة", "https://example.com/o/1"}

	html, text, err := s.Render("organization_rejected", data)
	require.NoError(t, err)
	assert.Contains(t, html, `dir="rtl"`)
	assert.Contains(t, html, "جمعية &lt;الأمل&gt;")
	assert.Contains(t, text, "جمعية <الأمل>")
	assert.Contains(t, text, "السبب: الوثائق ناقصة")

	_, _, err = s.Render("missing", data)
	assert.Error(t, err)
}

func TestSendEmail_LogProvider(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	s, err := NewEmailService(config.Load(), ProviderLog, logger)
	require.NoError(t, err)

	err = s.SendEmail(context.Background(), EmailData{
		To:           "owner@example.com",
		Subject:      "تم نشر المبادرة",
		TemplateName: "initiative_published",
		TemplateData: map[string]string{"RecipientName": "سارة", "EntityName": "تنظيف الشاطئ", "Link": "https://example.com"},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "owner@example.com")
	assert.Contains(t, buf.String(), "initiative_published")
}

func TestSendEmail_Errors(t *testing.T) {
	cfg := config.Load()
	cfg.SMTP.From = ""

	s, err := NewEmailService(cfg, ProviderSMTP, nil)
	require.NoError(t, err)
	err = s.SendEmail(context.Background(), EmailData{To: "a@example.com", TemplateName: "participant_rejected", TemplateData: map[string]string{}})
	assert.ErrorContains(t, err, "missing sender")

	s, err = NewEmailService(cfg, Provider("pigeon"), nil)
	require.NoError(t, err)
	err = s.SendEmail(context.Background(), EmailData{To: "a@example.com", TemplateName: "participant_rejected", TemplateData: map[string]string{}})
	assert.ErrorContains(t, err, "unsupported email provider")
}
