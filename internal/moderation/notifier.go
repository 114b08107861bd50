// internal/moderation/notifier.go
package moderation

import (
	"context"
	"errors"

	"github.com/dangerclosesec/mubadara/internal/workflow"
)

// Notifier dispatches a fire-and-forget notification about a moderated entity.
type Notifier interface {
	Notify(ctx context.Context, eventKind string, subject workflow.Subject) error
}

// NotifyHook adapts a Notifier to a post-commit Hook.
func NotifyHook(n Notifier) Hook {
	return func(ctx context.Context, e Event) error {
		return n.Notify(ctx, e.Name(), e.Subject)
	}
}

// Notifiers fans a notification out to every notifier, even when some fail.
type Notifiers []Notifier

func (ns Notifiers) Notify(ctx context.Context, eventKind string, subject workflow.Subject) error {
	var errs []error
	for _, n := range ns {
		if err := n.Notify(ctx, eventKind, subject); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
