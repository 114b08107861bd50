// internal/moderation/service.go
package moderation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/dangerclosesec/mubadara/internal/domain"
	"github.com/dangerclosesec/mubadara/internal/metrics"
	"github.com/dangerclosesec/mubadara/internal/workflow"
	"github.com/google/uuid"
)

type namedHook struct {
	name string
	fn   Hook
}

type Service struct {
	store   EntityStore
	policy  AuthorizationPolicy
	machine *workflow.StatusMachine
	clock   func() time.Time
	logger  *slog.Logger
	metrics *metrics.Registry

	mu    sync.RWMutex
	hooks []namedHook
}

// Option configures a Service.
type Option func(*Service)

// WithMachine replaces the default organization/initiative machine.
func WithMachine(m *workflow.StatusMachine) Option {
	return func(s *Service) {
		s.machine = m
	}
}

// WithClock sets the time source used to stamp updatedAt.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(reg *metrics.Registry) Option {
	return func(s *Service) {
		s.metrics = reg
	}
}

func NewService(store EntityStore, policy AuthorizationPolicy, opts ...Option) *Service {
	s := &Service{
		store:   store,
		policy:  policy,
		machine: workflow.DefaultMachine(),
		clock:   time.Now,
		logger:  slog.Default(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Machine returns the status machine the service enforces.
func (s *Service) Machine() *workflow.StatusMachine {
	return s.machine
}

// OnCommitted registers a hook run after every committed transition, in
// registration order.
func (s *Service) OnCommitted(name string, hook Hook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, namedHook{name: name, fn: hook})
}

// Transition moves entity id of kind to target on behalf of actor.
//
// Failures match, in the order they are checked: domain.ErrNotFound,
// domain.ErrUnauthorized, domain.ErrIllegalTransition, domain.ErrReasonRequired,
// domain.ErrConflict and domain.ErrPersistence.
func (s *Service) Transition(ctx context.Context, kind workflow.Kind, id uuid.UUID, target workflow.Status, actor workflow.Actor, reason string) (workflow.Subject, error) {
	subject, err := s.transition(ctx, kind, id, target, actor, reason)
	from := ""
	if subject != nil && err != nil {
		from = string(subject.CurrentStatus())
	}
	if err != nil {
		s.metrics.Transition(string(kind), from, string(target), domain.ErrorCode(err))
		s.logger.InfoContext(ctx, "transition refused",
			"kind", kind,
			"id", id,
			"target", target,
			"actor", actor.UserID,
			"error", err,
		)
		return nil, err
	}
	return subject, nil
}

func (s *Service) transition(ctx context.Context, kind workflow.Kind, id uuid.UUID, target workflow.Status, actor workflow.Actor, reason string) (workflow.Subject, error) {
	current, err := s.store.Get(ctx, kind, id)
	if err != nil {
		return nil, storeError(fmt.Sprintf("loading %s", kind), err)
	}
	from := current.CurrentStatus()

	allowed, err := s.policy.CanTransition(ctx, kind, actor, current, target)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return current, err
		}
		return current, fmt.Errorf("%w: checking authorization: %w", domain.ErrPersistence, err)
	}
	if !allowed {
		return current, fmt.Errorf("%w: %s may not move %s %s to %s",
			domain.ErrUnauthorized, workflow.RoleOf(actor, current), kind, from, target)
	}

	if !s.machine.IsLegal(kind, from, target) {
		return current, fmt.Errorf("%w: %s %s -> %s", domain.ErrIllegalTransition, kind, from, target)
	}

	reason = strings.TrimSpace(reason)
	if s.machine.RequiresReason(kind, target) && reason == "" {
		return current, fmt.Errorf("%w: %s %s", domain.ErrReasonRequired, kind, target)
	}

	patch := workflow.Patch{
		Status:    target,
		UpdatedAt: s.stamp(current.LastUpdated()),
		Reason:    reason,
		ActorID:   actor.UserID,
		ActorRole: workflow.RoleOf(actor, current),
	}

	updated, err := s.store.ConditionalUpdate(ctx, kind, id, from, patch)
	if err != nil {
		return current, storeError(fmt.Sprintf("updating %s", kind), err)
	}

	s.metrics.Transition(string(kind), string(from), string(target), "committed")
	s.logger.InfoContext(ctx, "transition committed",
		"kind", kind,
		"id", id,
		"from", from,
		"to", target,
		"actor", actor.UserID,
	)

	s.runHooks(ctx, Event{
		Kind:    kind,
		From:    from,
		To:      target,
		Reason:  reason,
		Actor:   actor,
		Subject: updated,
		At:      patch.UpdatedAt,
	})

	return updated, nil
}

// AvailableTransitions lists the targets actor could request for the entity
// right now: legal from its current status and allowed by the policy.
func (s *Service) AvailableTransitions(ctx context.Context, kind workflow.Kind, id uuid.UUID, actor workflow.Actor) ([]workflow.Status, error) {
	current, err := s.store.Get(ctx, kind, id)
	if err != nil {
		return nil, storeError(fmt.Sprintf("loading %s", kind), err)
	}

	targets := s.machine.Transitions(kind)[current.CurrentStatus()]
	out := make([]workflow.Status, 0, len(targets))
	for _, to := range targets {
		ok, err := s.policy.CanTransition(ctx, kind, actor, current, to)
		if err != nil {
			return nil, fmt.Errorf("%w: checking authorization: %w", domain.ErrPersistence, err)
		}
		if ok {
			out = append(out, to)
		}
	}
	return out, nil
}

// stamp returns the new updatedAt, strictly after prev even when the clock
// has not advanced or has gone backwards.
func (s *Service) stamp(prev time.Time) time.Time {
	now := s.clock().UTC().Truncate(time.Microsecond)
	if !now.After(prev) {
		now = prev.UTC().Truncate(time.Microsecond).Add(time.Microsecond)
	}
	return now
}

func (s *Service) runHooks(ctx context.Context, e Event) {
	s.mu.RLock()
	hooks := make([]namedHook, len(s.hooks))
	copy(hooks, s.hooks)
	s.mu.RUnlock()

	// The transition is committed; a cancelled request must not stop the hooks.
	ctx = context.WithoutCancel(ctx)
	for _, h := range hooks {
		if err := s.safeRun(ctx, h, e); err != nil {
			s.metrics.HookFailed(h.name)
			s.logger.WarnContext(ctx, "post-commit hook failed",
				"hook", h.name,
				"event", e.Name(),
				"id", e.Subject.SubjectID(),
				"error", err,
			)
		}
	}
}

func (s *Service) safeRun(ctx context.Context, h namedHook, e Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("hook panicked: %v", r)
		}
	}()
	return h.fn(ctx, e)
}

// storeError keeps the moderation error kinds a store reports and classifies
// everything else as a persistence failure.
func storeError(op string, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrPersistence),
		errors.Is(err, domain.ErrInvalidInput):
		return fmt.Errorf("%s: %w", op, err)
	default:
		return fmt.Errorf("%w: %s: %w", domain.ErrPersistence, op, err)
	}
}
