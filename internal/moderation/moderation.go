// internal/moderation/moderation.go

// Package moderation owns every status change of a moderated entity. It loads
// the entity, checks the actor against an AuthorizationPolicy, asks the status
// machine whether the move is legal, and commits it through an EntityStore
// with a compare-and-swap on the expected status.
package moderation

import (
	"context"
	"time"

	"github.com/dangerclosesec/mubadara/internal/workflow"
	"github.com/google/uuid"
)

// EntityStore is the persistence boundary of the workflow.
type EntityStore interface {
	// Get returns the entity or an error matching domain.ErrNotFound.
	Get(ctx context.Context, kind workflow.Kind, id uuid.UUID) (workflow.Subject, error)
	// ConditionalUpdate applies patch only if the entity is still in expected.
	// It returns the entity as committed, or an error matching
	// domain.ErrConflict when the status moved underneath the caller.
	ConditionalUpdate(ctx context.Context, kind workflow.Kind, id uuid.UUID, expected workflow.Status, patch workflow.Patch) (workflow.Subject, error)
}

// AuthorizationPolicy decides whether actor may move subject to the target status.
type AuthorizationPolicy interface {
	CanTransition(ctx context.Context, kind workflow.Kind, actor workflow.Actor, subject workflow.Subject, to workflow.Status) (bool, error)
}

// Event describes a committed transition.
type Event struct {
	Kind    workflow.Kind
	From    workflow.Status
	To      workflow.Status
	Reason  string
	Actor   workflow.Actor
	Subject workflow.Subject
	At      time.Time
}

// Name is the event kind handed to notifiers, e.g. "organization.approved".
func (e Event) Name() string {
	return string(e.Kind) + "." + string(e.To)
}

// Hook runs after a transition has been committed. Errors are logged and
// counted; they never undo the transition.
type Hook func(ctx context.Context, e Event) error
