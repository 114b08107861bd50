package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/dangerclosesec/mubadara/internal/domain"
	"github.com/dangerclosesec/mubadara/internal/model"
	"github.com/dangerclosesec/mubadara/internal/repository"
	"github.com/dangerclosesec/mubadara/internal/workflow"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func publish(t *testing.T, store *repository.ModerationStore, i *model.Initiative) {
	t.Helper()
	_, err := store.ConditionalUpdate(context.Background(), workflow.KindInitiative, i.ID, workflow.InitiativeDraft, workflow.Patch{
		Status:    workflow.InitiativePublished,
		UpdatedAt: time.Now().UTC(),
		ActorID:   i.OwnerID,
	})
	require.NoError(t, err)
}

func TestInitiativeRepository_CreateForcesDraft(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@example.com")
	repo := repository.NewInitiativeRepository(db)

	i := &model.Initiative{
		Title:               "Tree planting",
		OwnerID:             owner.ID,
		Status:              workflow.InitiativePublished,
		CurrentParticipants: 7,
		AttachmentCount:     2,
	}
	require.NoError(t, repo.Create(context.Background(), i))

	got, err := repo.FindByID(context.Background(), i.ID)
	require.NoError(t, err)
	assert.Equal(t, workflow.InitiativeDraft, got.Status)
	assert.Zero(t, got.CurrentParticipants)
	assert.Zero(t, got.AttachmentCount)
	assert.Equal(t, model.OrganizerIndividual, got.OrganizerType)

	_, err = repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrInitiativeNotFound)
}

func TestInitiativeRepository_ListHasAvailableSpots(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, db, "owner@example.com")
	repo := repository.NewInitiativeRepository(db)
	store := repository.NewModerationStore(db)

	full := seedInitiative(t, db, owner.ID, intPtr(5))
	setCounters(t, db, full.ID, 5)
	partial := seedInitiative(t, db, owner.ID, intPtr(5))
	setCounters(t, db, partial.ID, 2)
	unlimited := seedInitiative(t, db, owner.ID, nil)
	setCounters(t, db, unlimited.ID, 500)
	draft := seedInitiative(t, db, owner.ID, intPtr(5))
	for _, i := range []*model.Initiative{full, partial, unlimited} {
		publish(t, store, i)
	}

	list, count, err := repo.List(ctx, workflow.Filters{Status: workflow.InitiativePublished, HasAvailableSpots: true}, repository.Page{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	ids := map[uuid.UUID]bool{}
	for _, i := range list {
		ids[i.ID] = true
		assert.True(t, i.SpotsAvailable())
	}
	assert.True(t, ids[partial.ID])
	assert.True(t, ids[unlimited.ID])
	assert.False(t, ids[full.ID])
	assert.False(t, ids[draft.ID])

	_, count, err = repo.List(ctx, workflow.Filters{OrganizerType: string(model.OrganizerIndividual), City: "Jeddah"}, repository.Page{})
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestInitiativeRepository_UpdateDraft(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, db, "owner@example.com")
	repo := repository.NewInitiativeRepository(db)
	i := seedInitiative(t, db, owner.ID, intPtr(5))

	i.Title = "Clean the corniche"
	i.MaxParticipants = intPtr(8)
	i.Status = workflow.InitiativeCancelled
	i.CurrentParticipants = 3
	require.NoError(t, repo.UpdateDraft(ctx, i))

	got, err := repo.FindByID(ctx, i.ID)
	require.NoError(t, err)
	assert.Equal(t, "Clean the corniche", got.Title)
	require.NotNil(t, got.MaxParticipants)
	assert.Equal(t, 8, *got.MaxParticipants)
	assert.Equal(t, workflow.InitiativeDraft, got.Status)
	assert.Zero(t, got.CurrentParticipants)

	publish(t, repository.NewModerationStore(db), got)
	got.Title = "Too late"
	assert.ErrorIs(t, repo.UpdateDraft(ctx, got), domain.ErrConflict)

	missing := &model.Initiative{ID: uuid.New(), Title: "ghost"}
	assert.ErrorIs(t, repo.UpdateDraft(ctx, missing), domain.ErrInitiativeNotFound)
}
