package repository_test

import (
	"context"
	"testing"

	"github.com/dangerclosesec/mubadara/internal/domain"
	"github.com/dangerclosesec/mubadara/internal/model"
	"github.com/dangerclosesec/mubadara/internal/repository"
	"github.com/dangerclosesec/mubadara/internal/workflow"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParticipantRepository_CreateRejectsDuplicates(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, db, "owner@example.com")
	volunteer := seedUser(t, db, "volunteer@example.com")
	initiative := seedInitiative(t, db, owner.ID, nil)
	repo := repository.NewParticipantRepository(db, nil)

	p := &model.Participant{InitiativeID: initiative.ID, UserID: volunteer.ID, Status: model.ParticipantAccepted}
	require.NoError(t, repo.Create(ctx, p))
	assert.Equal(t, model.ParticipantPending, p.Status)

	err := repo.Create(ctx, &model.Participant{InitiativeID: initiative.ID, UserID: volunteer.ID})
	assert.ErrorIs(t, err, domain.ErrAlreadyParticipant)

	got, err := repo.FindByInitiativeAndUser(ctx, initiative.ID, volunteer.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
}

func TestParticipantRepository_DecideTracksCapacity(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, db, "owner@example.com")
	initiative := seedInitiative(t, db, owner.ID, intPtr(1))
	setStatus(t, db, initiative.ID, workflow.InitiativePublished)
	repo := repository.NewParticipantRepository(db, nil)
	initiatives := repository.NewInitiativeRepository(db)

	first := &model.Participant{InitiativeID: initiative.ID, UserID: seedUser(t, db, "a@example.com").ID}
	second := &model.Participant{InitiativeID: initiative.ID, UserID: seedUser(t, db, "b@example.com").ID}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	accepted, err := repo.Decide(ctx, first.ID, model.ParticipantPending, model.ParticipantAccepted, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ParticipantAccepted, accepted.Status)
	require.NotNil(t, accepted.DecidedByID)
	assert.Equal(t, owner.ID, *accepted.DecidedByID)

	_, err = repo.Decide(ctx, second.ID, model.ParticipantPending, model.ParticipantAccepted, owner.ID)
	require.ErrorIs(t, err, domain.ErrCapacityExceeded)

	stillPending, err := repo.FindByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ParticipantPending, stillPending.Status, "rolled back with the reservation")

	got, err := initiatives.FindByID(ctx, initiative.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CurrentParticipants)

	_, err = repo.Decide(ctx, first.ID, model.ParticipantAccepted, model.ParticipantLeft, first.UserID)
	require.NoError(t, err)
	got, err = initiatives.FindByID(ctx, initiative.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.CurrentParticipants)

	_, err = repo.Decide(ctx, second.ID, model.ParticipantPending, model.ParticipantAccepted, owner.ID)
	require.NoError(t, err)

	holding, err := repo.ListByInitiative(ctx, initiative.ID, model.ParticipantAccepted)
	require.NoError(t, err)
	require.Len(t, holding, 1)
	assert.Equal(t, second.ID, holding[0].ID)

	all, err := repo.ListByInitiative(ctx, initiative.ID, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestParticipantRepository_DecideStaleStatus(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, db, "owner@example.com")
	initiative := seedInitiative(t, db, owner.ID, nil)
	repo := repository.NewParticipantRepository(db, nil)

	p := &model.Participant{InitiativeID: initiative.ID, UserID: seedUser(t, db, "a@example.com").ID}
	require.NoError(t, repo.Create(ctx, p))
	_, err := repo.Decide(ctx, p.ID, model.ParticipantPending, model.ParticipantRejected, owner.ID)
	require.NoError(t, err)

	_, err = repo.Decide(ctx, p.ID, model.ParticipantPending, model.ParticipantAccepted, owner.ID)
	assert.ErrorIs(t, err, domain.ErrParticipantState)

	_, err = repo.Decide(ctx, uuid.New(), model.ParticipantPending, model.ParticipantAccepted, owner.ID)
	assert.ErrorIs(t, err, domain.ErrParticipantNotFound)
}

func TestParticipantRepository_AcceptRequiresPublishedInitiative(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, db, "owner@example.com")
	initiative := seedInitiative(t, db, owner.ID, intPtr(5))
	repo := repository.NewParticipantRepository(db, nil)

	p := &model.Participant{InitiativeID: initiative.ID, UserID: seedUser(t, db, "a@example.com").ID}
	require.NoError(t, repo.Create(ctx, p))
	setStatus(t, db, initiative.ID, workflow.InitiativeCancelled)

	_, err := repo.Decide(ctx, p.ID, model.ParticipantPending, model.ParticipantAccepted, owner.ID)
	assert.ErrorIs(t, err, domain.ErrInitiativeNotPublished)

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ParticipantPending, got.Status)
	reloaded, err := repository.NewInitiativeRepository(db).FindByID(ctx, initiative.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.CurrentParticipants)

	_, err = repo.Decide(ctx, p.ID, model.ParticipantPending, model.ParticipantRejected, owner.ID)
	assert.NoError(t, err, "rejecting does not need a published initiative")
}
