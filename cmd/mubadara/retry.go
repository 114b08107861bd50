package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/dangerclosesec/mubadara/internal/domain"
	"github.com/dangerclosesec/mubadara/internal/service"
	"github.com/dangerclosesec/mubadara/internal/workflow"
	"github.com/google/uuid"
)

// transitionWithRetry retries only persistence failures. Every other
// moderation error is a decision about the entity and is returned as is.
// A timed out attempt is not retried: its write may have committed.
func transitionWithRetry(ctx context.Context, m service.Transitioner, kind workflow.Kind, id uuid.UUID, target workflow.Status, actor workflow.Actor, reason string, tries uint) (workflow.Subject, error) {
	if tries == 0 {
		tries = 1
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 200 * time.Millisecond
	policy.MaxInterval = 5 * time.Second

	return backoff.Retry(ctx, func() (workflow.Subject, error) {
		subject, err := m.Transition(ctx, kind, id, target, actor, reason)
		if err == nil {
			return subject, nil
		}
		if !errors.Is(err, domain.ErrPersistence) || timedOut(err) {
			return nil, backoff.Permanent(err)
		}
		return subject, err
	},
		backoff.WithBackOff(policy),
		backoff.WithMaxTries(tries),
		backoff.WithNotify(func(err error, next time.Duration) {
			fmt.Fprintf(os.Stderr, "transition failed, retrying in %s: %v\n", next.Round(time.Millisecond), err)
		}),
	)
}

func timedOut(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

func parseID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid id %q: %v\n", s, err)
		os.Exit(1)
	}
	return id
}
