// internal/service/service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/dangerclosesec/mubadara/internal/domain"
	"github.com/dangerclosesec/mubadara/internal/model"
	"github.com/dangerclosesec/mubadara/internal/workflow"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Transitioner is the part of moderation.Service the services depend on.
type Transitioner interface {
	Transition(ctx context.Context, kind workflow.Kind, id uuid.UUID, target workflow.Status, actor workflow.Actor, reason string) (workflow.Subject, error)
	AvailableTransitions(ctx context.Context, kind workflow.Kind, id uuid.UUID, actor workflow.Actor) ([]workflow.Status, error)
}

// Relationships mirrors ownership and membership into the authorization backend.
// auth.RelationshipSync and auth.NoopRelationships implement it.
type Relationships interface {
	AdminGranted(ctx context.Context, userID uuid.UUID) error
	OrganizationCreated(ctx context.Context, org *model.Organization) error
	MemberAdded(ctx context.Context, orgID, userID uuid.UUID, role model.OrganizationRole) error
	InitiativeCreated(ctx context.Context, initiative *model.Initiative) error
}

// ValidationError carries the first failing field of an input so the HTTP
// layer can point the client at it.
type ValidationError struct {
	Field string
	Tag   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s failed %q", e.Field, e.Tag)
}

func (e *ValidationError) Is(target error) bool {
	return target == domain.ErrInvalidInput
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	return v
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

func validateStruct(v *validator.Validate, input any) error {
	err := v.Struct(input)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &ValidationError{Field: verrs[0].Field(), Tag: verrs[0].Tag()}
	}
	return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
}

// canManageInitiative reports whether actor may edit an initiative or decide
// on its participants and posts.
func canManageInitiative(actor workflow.Actor, initiative *model.Initiative) bool {
	return workflow.RoleOf(actor, initiative) != workflow.RoleOther
}

func unauthorized(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{domain.ErrUnauthorized}, args...)...)
}

// HistoryReader returns the recorded transitions of one entity.
type HistoryReader interface {
	History(ctx context.Context, kind workflow.Kind, id uuid.UUID) ([]model.StatusChange, error)
}

// transitionAs runs a transition and returns the committed entity as T.
func transitionAs[T workflow.Subject](ctx context.Context, m Transitioner, kind workflow.Kind, id uuid.UUID, target workflow.Status, actor workflow.Actor, reason string) (T, error) {
	var zero T
	subject, err := m.Transition(ctx, kind, id, target, actor, reason)
	if err != nil {
		return zero, err
	}
	out, ok := subject.(T)
	if !ok {
		return zero, fmt.Errorf("%w: unexpected %s subject %T", domain.ErrPersistence, kind, subject)
	}
	return out, nil
}
