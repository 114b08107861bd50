// internal/repository/repository.go
package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dangerclosesec/mubadara/internal/domain"
	"github.com/dangerclosesec/mubadara/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Page is an offset/limit window over a listing.
type Page struct {
	Offset int
	Limit  int
}

// Normalize clamps the window to sane bounds.
func (p Page) Normalize() Page {
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Limit <= 0 {
		p.Limit = defaultPageSize
	}
	if p.Limit > maxPageSize {
		p.Limit = maxPageSize
	}
	return p
}

// Models lists every table owned by the application, in dependency order.
func Models() []any {
	return []any{
		&model.User{},
		&model.Organization{},
		&model.OrganizationUser{},
		&model.Initiative{},
		&model.Participant{},
		&model.Post{},
		&model.PostAttachment{},
		&model.StatusChange{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}
	return nil
}

// Postgres SQLSTATE codes the workflow cares about.
const (
	pgUniqueViolation      = "23505"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// isUniqueViolation reports a duplicate key from postgres or sqlite.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// translateError maps backend failures onto the domain taxonomy. notFound is
// returned for gorm.ErrRecordNotFound; lost serializable races become
// domain.ErrConflict; anything else is a domain.ErrPersistence.
func translateError(op string, err error, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	// Already classified by a nested call.
	for _, known := range []error{domain.ErrNotFound, domain.ErrConflict, domain.ErrPersistence,
		domain.ErrCapacityExceeded, domain.ErrInvalidInput, domain.ErrParticipantState, domain.ErrAlreadyParticipant,
		domain.ErrInitiativeNotPublished} {
		if errors.Is(err, known) {
			return err
		}
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgSerializationFailure, pgDeadlockDetected:
			return fmt.Errorf("%w: %s: %s", domain.ErrConflict, op, pgErr.Message)
		}
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrPersistence, op, err)
}
