package moderation_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/dangerclosesec/mubadara/internal/domain"
	"github.com/dangerclosesec/mubadara/internal/metrics"
	"github.com/dangerclosesec/mubadara/internal/mocks"
	"github.com/dangerclosesec/mubadara/internal/moderation"
	"github.com/dangerclosesec/mubadara/internal/workflow"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type entity struct {
	id        uuid.UUID
	owner     uuid.UUID
	org       *uuid.UUID
	status    workflow.Status
	updatedAt time.Time
	reason    string
}

func (e *entity) SubjectID() uuid.UUID { return e.id }
func (e *entity) CurrentStatus() workflow.Status { return e.status }
func (e *entity) OwnerRef() uuid.UUID { return e.owner }
func (e *entity) OrganizationRef() *uuid.UUID { return e.org }
func (e *entity) LastUpdated() time.Time { return e.updatedAt }

// memStore is an EntityStore with a compare-and-swap on status.
type memStore struct {
	mu       sync.Mutex
	entities map[uuid.UUID]entity
}

func newMemStore(es ...entity) *memStore {
	s := &memStore{entities: make(map[uuid.UUID]entity)}
	for _, e := range es {
		s.entities[e.id] = e
	}
	return s
}

func (s *memStore) Get(_ context.Context, _ workflow.Kind, id uuid.UUID) (workflow.Subject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entities[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &e, nil
}

func (s *memStore) ConditionalUpdate(_ context.Context, _ workflow.Kind, id uuid.UUID, expected workflow.Status, patch workflow.Patch) (workflow.Subject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entities[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if e.status != expected {
		return nil, domain.ErrConflict
	}
	e.status = patch.Status
	e.updatedAt = patch.UpdatedAt
	e.reason = patch.Reason
	s.entities[id] = e
	return &e, nil
}

var (
	admin = workflow.Actor{UserID: uuid.New(), Admin: true}
	t0    = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
)

func pendingOrg() entity {
	return entity{id: uuid.New(), owner: uuid.New(), status: workflow.OrganizationPending, updatedAt: t0}
}

func TestTransition_RejectRequiresReason(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockEntityStore(ctrl)
	org := pendingOrg()

	store.EXPECT().Get(gomock.Any(), workflow.KindOrganization, org.id).Return(&org, nil).Times(3)
	store.EXPECT().
		ConditionalUpdate(gomock.Any(), workflow.KindOrganization, org.id, workflow.OrganizationPending, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ workflow.Kind, _ uuid.UUID, _ workflow.Status, p workflow.Patch) (workflow.Subject, error) {
			assert.Equal(t, workflow.OrganizationRejected, p.Status)
			assert.Equal(t, "وثائق التسجيل غير مكتملة", p.Reason)
			assert.Equal(t, admin.UserID, p.ActorID)
			updated := org
			updated.status = p.Status
			updated.updatedAt = p.UpdatedAt
			return &updated, nil
		})

	svc := moderation.NewService(store, moderation.DefaultPolicy())
	ctx := context.Background()

	_, err := svc.Transition(ctx, workflow.KindOrganization, org.id, workflow.OrganizationRejected, admin, "")
	assert.ErrorIs(t, err, domain.ErrReasonRequired)

	_, err = svc.Transition(ctx, workflow.KindOrganization, org.id, workflow.OrganizationRejected, admin, "  \t ")
	assert.ErrorIs(t, err, domain.ErrReasonRequired)

	got, err := svc.Transition(ctx, workflow.KindOrganization, org.id, workflow.OrganizationRejected, admin, " وثائق التسجيل غير مكتملة ")
	require.NoError(t, err)
	assert.Equal(t, workflow.OrganizationRejected, got.CurrentStatus())
}

func TestTransition_UnrelatedActorIsUnauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockEntityStore(ctrl)

	org := pendingOrg()
	draft := entity{id: uuid.New(), owner: uuid.New(), status: workflow.InitiativeDraft, updatedAt: t0}
	store.EXPECT().Get(gomock.Any(), workflow.KindOrganization, org.id).Return(&org, nil).AnyTimes()
	store.EXPECT().Get(gomock.Any(), workflow.KindInitiative, draft.id).Return(&draft, nil).AnyTimes()

	svc := moderation.NewService(store, moderation.DefaultPolicy())
	stranger := workflow.Actor{UserID: uuid.New()}

	targets := map[workflow.Kind][]workflow.Status{
		workflow.KindOrganization: {workflow.OrganizationPending, workflow.OrganizationApproved, workflow.OrganizationRejected, "archived"},
		workflow.KindInitiative:   {workflow.InitiativeDraft, workflow.InitiativePublished, workflow.InitiativeCancelled},
	}
	ids := map[workflow.Kind]uuid.UUID{workflow.KindOrganization: org.id, workflow.KindInitiative: draft.id}

	for kind, statuses := range targets {
		for _, to := range statuses {
			_, err := svc.Transition(context.Background(), kind, ids[kind], to, stranger, "reason")
			assert.ErrorIs(t, err, domain.ErrUnauthorized, "%s -> %s", kind, to)
		}
	}
}

func TestTransition_OwnerCannotReviewOwnOrganization(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockEntityStore(ctrl)
	org := pendingOrg()
	store.EXPECT().Get(gomock.Any(), workflow.KindOrganization, org.id).Return(&org, nil)

	svc := moderation.NewService(store, moderation.DefaultPolicy())
	_, err := svc.Transition(context.Background(), workflow.KindOrganization, org.id, workflow.OrganizationApproved, workflow.Actor{UserID: org.owner}, "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTransition_Failures(t *testing.T) {
	approved := pendingOrg()
	approved.status = workflow.OrganizationApproved

	tests := []struct {
		name    string
		setup   func(store *mocks.MockEntityStore, id uuid.UUID)
		target  workflow.Status
		wantErr error
	}{
		{
			name: "not found",
			setup: func(store *mocks.MockEntityStore, id uuid.UUID) {
				store.EXPECT().Get(gomock.Any(), workflow.KindOrganization, id).Return(nil, domain.ErrOrganizationNotFound)
			},
			target:  workflow.OrganizationApproved,
			wantErr: domain.ErrNotFound,
		},
		{
			name: "backend failure on load",
			setup: func(store *mocks.MockEntityStore, id uuid.UUID) {
				store.EXPECT().Get(gomock.Any(), workflow.KindOrganization, id).Return(nil, errors.New("dial tcp: connection refused"))
			},
			target:  workflow.OrganizationApproved,
			wantErr: domain.ErrPersistence,
		},
		{
			name: "terminal state",
			setup: func(store *mocks.MockEntityStore, id uuid.UUID) {
				store.EXPECT().Get(gomock.Any(), workflow.KindOrganization, id).Return(&approved, nil)
			},
			target:  workflow.OrganizationRejected,
			wantErr: domain.ErrIllegalTransition,
		},
		{
			name: "self transition",
			setup: func(store *mocks.MockEntityStore, id uuid.UUID) {
				store.EXPECT().Get(gomock.Any(), workflow.KindOrganization, id).Return(&approved, nil)
			},
			target:  workflow.OrganizationApproved,
			wantErr: domain.ErrIllegalTransition,
		},
		{
			name: "lost update",
			setup: func(store *mocks.MockEntityStore, id uuid.UUID) {
				org := pendingOrg()
				store.EXPECT().Get(gomock.Any(), workflow.KindOrganization, id).Return(&org, nil)
				store.EXPECT().ConditionalUpdate(gomock.Any(), workflow.KindOrganization, id, workflow.OrganizationPending, gomock.Any()).
					Return(nil, domain.ErrConflict)
			},
			target:  workflow.OrganizationApproved,
			wantErr: domain.ErrConflict,
		},
		{
			name: "backend failure on write",
			setup: func(store *mocks.MockEntityStore, id uuid.UUID) {
				org := pendingOrg()
				store.EXPECT().Get(gomock.Any(), workflow.KindOrganization, id).Return(&org, nil)
				store.EXPECT().ConditionalUpdate(gomock.Any(), workflow.KindOrganization, id, workflow.OrganizationPending, gomock.Any()).
					Return(nil, context.DeadlineExceeded)
			},
			target:  workflow.OrganizationApproved,
			wantErr: domain.ErrPersistence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mocks.NewMockEntityStore(ctrl)
			id := uuid.New()
			tt.setup(store, id)

			svc := moderation.NewService(store, moderation.DefaultPolicy())
			got, err := svc.Transition(context.Background(), workflow.KindOrganization, id, tt.target, admin, "")
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTransition_PolicyFailureIsPersistence(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockEntityStore(ctrl)
	policy := mocks.NewMockAuthorizationPolicy(ctrl)
	org := pendingOrg()

	store.EXPECT().Get(gomock.Any(), workflow.KindOrganization, org.id).Return(&org, nil)
	policy.EXPECT().CanTransition(gomock.Any(), workflow.KindOrganization, admin, gomock.Any(), workflow.OrganizationApproved).
		Return(false, errors.New("permify unavailable"))

	svc := moderation.NewService(store, policy)
	_, err := svc.Transition(context.Background(), workflow.KindOrganization, org.id, workflow.OrganizationApproved, admin, "")
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTransition_RoundTripAdvancesUpdatedAt(t *testing.T) {
	org := pendingOrg()
	store := newMemStore(org)

	// A clock stuck before the stored timestamp must still produce a later one.
	svc := moderation.NewService(store, moderation.DefaultPolicy(),
		moderation.WithClock(func() time.Time { return t0.Add(-time.Hour) }))

	_, err := svc.Transition(context.Background(), workflow.KindOrganization, org.id, workflow.OrganizationApproved, admin, "")
	require.NoError(t, err)

	got, err := store.Get(context.Background(), workflow.KindOrganization, org.id)
	require.NoError(t, err)
	assert.Equal(t, workflow.OrganizationApproved, got.CurrentStatus())
	assert.True(t, got.LastUpdated().After(t0))
}

func TestTransition_UsesClock(t *testing.T) {
	draft := entity{id: uuid.New(), owner: uuid.New(), status: workflow.InitiativeDraft, updatedAt: t0}
	store := newMemStore(draft)
	now := t0.Add(2 * time.Hour)

	svc := moderation.NewService(store, moderation.DefaultPolicy(),
		moderation.WithClock(func() time.Time { return now }))

	got, err := svc.Transition(context.Background(), workflow.KindInitiative, draft.id, workflow.InitiativeCancelled,
		workflow.Actor{UserID: draft.owner}, "لم يعد الموعد مناسبا")
	require.NoError(t, err)
	assert.Equal(t, now, got.LastUpdated())
}

func TestTransition_ConcurrentReviewsOnlyOneWins(t *testing.T) {
	for i := 0; i < 50; i++ {
		org := pendingOrg()
		store := newMemStore(org)
		svc := moderation.NewService(store, moderation.DefaultPolicy())

		var (
			wg    sync.WaitGroup
			start = make(chan struct{})
			errs  = make([]error, 2)
		)
		targets := []workflow.Status{workflow.OrganizationApproved, workflow.OrganizationRejected}
		for n, target := range targets {
			wg.Add(1)
			go func(n int, target workflow.Status) {
				defer wg.Done()
				<-start
				_, errs[n] = svc.Transition(context.Background(), workflow.KindOrganization, org.id, target, admin, "مراجعة")
			}(n, target)
		}
		close(start)
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			if err == nil {
				succeeded++
				continue
			}
			assert.True(t, errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrIllegalTransition), "unexpected error: %v", err)
		}
		require.Equal(t, 1, succeeded, "run %d", i)
	}
}

func TestTransition_HookFailureDoesNotRollBack(t *testing.T) {
	org := pendingOrg()
	store := newMemStore(org)
	reg := metrics.New()
	svc := moderation.NewService(store, moderation.DefaultPolicy(), moderation.WithMetrics(reg))

	var order []string
	svc.OnCommitted("failing", func(ctx context.Context, e moderation.Event) error {
		order = append(order, "failing")
		return fmt.Errorf("smtp: connection reset")
	})
	svc.OnCommitted("panicking", func(ctx context.Context, e moderation.Event) error {
		order = append(order, "panicking")
		panic("nil map")
	})
	svc.OnCommitted("recording", func(ctx context.Context, e moderation.Event) error {
		order = append(order, "recording")
		assert.Equal(t, "organization.approved", e.Name())
		assert.Equal(t, workflow.OrganizationPending, e.From)
		assert.Equal(t, org.id, e.Subject.SubjectID())
		assert.NoError(t, ctx.Err())
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	got, err := svc.Transition(ctx, workflow.KindOrganization, org.id, workflow.OrganizationApproved, admin, "")
	require.NoError(t, err)
	assert.Equal(t, workflow.OrganizationApproved, got.CurrentStatus())
	assert.Equal(t, []string{"failing", "panicking", "recording"}, order)

	stored, err := store.Get(context.Background(), workflow.KindOrganization, org.id)
	require.NoError(t, err)
	assert.Equal(t, workflow.OrganizationApproved, stored.CurrentStatus())

	families, err := reg.Gatherer().Gather()
	require.NoError(t, err)
	var failures float64
	for _, f := range families {
		if f.GetName() == "mubadara_post_commit_hook_failures_total" {
			for _, m := range f.GetMetric() {
				failures += m.GetCounter().GetValue()
			}
		}
	}
	assert.Equal(t, float64(2), failures)
}

func TestTransition_NotifyHook(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotifier(ctrl)

	manager := uuid.New()
	orgID := uuid.New()
	draft := entity{id: uuid.New(), owner: manager, org: &orgID, status: workflow.InitiativeDraft, updatedAt: t0}
	store := newMemStore(draft)

	svc := moderation.NewService(store, moderation.DefaultPolicy())
	svc.OnCommitted("notify", moderation.NotifyHook(notifier))

	notifier.EXPECT().
		Notify(gomock.Any(), "initiative.published", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, s workflow.Subject) error {
			assert.Equal(t, workflow.InitiativePublished, s.CurrentStatus())
			return nil
		})

	actor := workflow.Actor{UserID: manager, ManagedOrganizations: []uuid.UUID{orgID}}
	_, err := svc.Transition(context.Background(), workflow.KindInitiative, draft.id, workflow.InitiativePublished, actor, "")
	require.NoError(t, err)
}

func TestAvailableTransitions(t *testing.T) {
	orgID := uuid.New()
	draft := entity{id: uuid.New(), owner: uuid.New(), org: &orgID, status: workflow.InitiativeDraft, updatedAt: t0}
	personal := entity{id: uuid.New(), owner: uuid.New(), status: workflow.InitiativeDraft, updatedAt: t0}
	store := newMemStore(draft, personal)
	svc := moderation.NewService(store, moderation.DefaultPolicy())
	ctx := context.Background()

	got, err := svc.AvailableTransitions(ctx, workflow.KindInitiative, draft.id, workflow.Actor{UserID: uuid.New(), ManagedOrganizations: []uuid.UUID{orgID}})
	require.NoError(t, err)
	assert.ElementsMatch(t, []workflow.Status{workflow.InitiativePublished, workflow.InitiativeCancelled}, got)

	got, err = svc.AvailableTransitions(ctx, workflow.KindInitiative, personal.id, workflow.Actor{UserID: personal.owner})
	require.NoError(t, err)
	assert.Equal(t, []workflow.Status{workflow.InitiativeCancelled}, got)

	got, err = svc.AvailableTransitions(ctx, workflow.KindInitiative, personal.id, workflow.Actor{UserID: uuid.New()})
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = svc.AvailableTransitions(ctx, workflow.KindInitiative, uuid.New(), admin)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
