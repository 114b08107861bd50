package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dangerclosesec/mubadara/internal/domain"
	"github.com/dangerclosesec/mubadara/internal/mocks"
	"github.com/dangerclosesec/mubadara/internal/model"
	"github.com/dangerclosesec/mubadara/internal/service"
	"github.com/dangerclosesec/mubadara/internal/workflow"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordingMailer struct {
	sent []model.ParticipantStatus
	err  error
}

func (m *recordingMailer) SendDecision(_ context.Context, p *model.Participant, _ *model.Initiative) error {
	m.sent = append(m.sent, p.Status)
	return m.err
}

type participationFixture struct {
	svc          *service.ParticipationService
	participants *mocks.MockParticipantRepositoryIface
	initiatives  *mocks.MockInitiativeRepositoryIface
	mailer       *recordingMailer
}

func newParticipationFixture(t *testing.T) participationFixture {
	ctrl := gomock.NewController(t)
	f := participationFixture{
		participants: mocks.NewMockParticipantRepositoryIface(ctrl),
		initiatives:  mocks.NewMockInitiativeRepositoryIface(ctrl),
		mailer:       &recordingMailer{},
	}
	f.svc = service.NewParticipationService(f.participants, f.initiatives, f.mailer, discard)
	return f
}

func TestJoin(t *testing.T) {
	volunteer := individual()

	t.Run("published initiative", func(t *testing.T) {
		f := newParticipationFixture(t)
		initiative := &model.Initiative{ID: uuid.New(), Status: workflow.InitiativePublished}
		f.initiatives.EXPECT().FindByID(gomock.Any(), initiative.ID).Return(initiative, nil)
		f.participants.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		p, err := f.svc.Join(context.Background(), volunteer, initiative.ID, service.JoinInput{Message: " أرغب بالمشاركة "})
		require.NoError(t, err)
		assert.Equal(t, model.ParticipantPending, p.Status)
		assert.Equal(t, volunteer.UserID, p.UserID)
		assert.Equal(t, "أرغب بالمشاركة", p.Message)
	})

	t.Run("draft initiative", func(t *testing.T) {
		f := newParticipationFixture(t)
		initiative := &model.Initiative{ID: uuid.New(), Status: workflow.InitiativeDraft}
		f.initiatives.EXPECT().FindByID(gomock.Any(), initiative.ID).Return(initiative, nil)

		_, err := f.svc.Join(context.Background(), volunteer, initiative.ID, service.JoinInput{})
		assert.ErrorIs(t, err, domain.ErrInitiativeNotPublished)
	})

	t.Run("twice", func(t *testing.T) {
		f := newParticipationFixture(t)
		initiative := &model.Initiative{ID: uuid.New(), Status: workflow.InitiativePublished}
		f.initiatives.EXPECT().FindByID(gomock.Any(), initiative.ID).Return(initiative, nil)
		f.participants.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.ErrAlreadyParticipant)

		_, err := f.svc.Join(context.Background(), volunteer, initiative.ID, service.JoinInput{})
		assert.ErrorIs(t, err, domain.ErrAlreadyParticipant)
	})
}

func TestAccept(t *testing.T) {
	owner := individual()
	initiative := &model.Initiative{ID: uuid.New(), OwnerID: owner.UserID, Status: workflow.InitiativePublished, MaxParticipants: intPtr(1)}
	pending := &model.Participant{ID: uuid.New(), InitiativeID: initiative.ID, UserID: uuid.New(), Status: model.ParticipantPending}

	t.Run("owner accepts and the volunteer is told", func(t *testing.T) {
		f := newParticipationFixture(t)
		accepted := *pending
		accepted.Status = model.ParticipantAccepted

		f.participants.EXPECT().FindByID(gomock.Any(), pending.ID).Return(pending, nil)
		f.initiatives.EXPECT().FindByID(gomock.Any(), initiative.ID).Return(initiative, nil)
		f.participants.EXPECT().
			Decide(gomock.Any(), pending.ID, model.ParticipantPending, model.ParticipantAccepted, owner.UserID).
			Return(&accepted, nil)

		got, err := f.svc.Accept(context.Background(), owner, pending.ID)
		require.NoError(t, err)
		assert.Equal(t, model.ParticipantAccepted, got.Status)
		assert.Equal(t, []model.ParticipantStatus{model.ParticipantAccepted}, f.mailer.sent)
	})

	t.Run("capacity exceeded is passed through", func(t *testing.T) {
		f := newParticipationFixture(t)
		f.participants.EXPECT().FindByID(gomock.Any(), pending.ID).Return(pending, nil)
		f.initiatives.EXPECT().FindByID(gomock.Any(), initiative.ID).Return(initiative, nil)
		f.participants.EXPECT().
			Decide(gomock.Any(), pending.ID, model.ParticipantPending, model.ParticipantAccepted, owner.UserID).
			Return(nil, &domain.CapacityExceededError{Requested: 2, Limit: 1})

		_, err := f.svc.Accept(context.Background(), owner, pending.ID)
		assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
		assert.Empty(t, f.mailer.sent)
	})

	t.Run("cancelled initiative takes no more participants", func(t *testing.T) {
		f := newParticipationFixture(t)
		cancelled := *initiative
		cancelled.Status = workflow.InitiativeCancelled
		f.participants.EXPECT().FindByID(gomock.Any(), pending.ID).Return(pending, nil)
		f.initiatives.EXPECT().FindByID(gomock.Any(), initiative.ID).Return(&cancelled, nil)

		_, err := f.svc.Accept(context.Background(), owner, pending.ID)
		assert.ErrorIs(t, err, domain.ErrInitiativeNotPublished)
		assert.Empty(t, f.mailer.sent)
	})

	t.Run("mail failure does not fail the decision", func(t *testing.T) {
		f := newParticipationFixture(t)
		f.mailer.err = errors.New("smtp down")
		rejected := *pending
		rejected.Status = model.ParticipantRejected

		f.participants.EXPECT().FindByID(gomock.Any(), pending.ID).Return(pending, nil)
		f.initiatives.EXPECT().FindByID(gomock.Any(), initiative.ID).Return(initiative, nil)
		f.participants.EXPECT().
			Decide(gomock.Any(), pending.ID, model.ParticipantPending, model.ParticipantRejected, owner.UserID).
			Return(&rejected, nil)

		_, err := f.svc.Reject(context.Background(), owner, pending.ID)
		require.NoError(t, err)
	})

	t.Run("strangers cannot decide", func(t *testing.T) {
		f := newParticipationFixture(t)
		f.participants.EXPECT().FindByID(gomock.Any(), pending.ID).Return(pending, nil)
		f.initiatives.EXPECT().FindByID(gomock.Any(), initiative.ID).Return(initiative, nil)

		_, err := f.svc.Accept(context.Background(), individual(), pending.ID)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestRemove_ReleasesSlotWithoutMail(t *testing.T) {
	f := newParticipationFixture(t)
	orgID := uuid.New()
	manager := managerOf(orgID)
	initiative := &model.Initiative{ID: uuid.New(), OwnerID: uuid.New(), OrganizationID: &orgID, Status: workflow.InitiativePublished}
	accepted := &model.Participant{ID: uuid.New(), InitiativeID: initiative.ID, UserID: uuid.New(), Status: model.ParticipantAccepted}
	removed := *accepted
	removed.Status = model.ParticipantRejected

	f.participants.EXPECT().FindByID(gomock.Any(), accepted.ID).Return(accepted, nil)
	f.initiatives.EXPECT().FindByID(gomock.Any(), initiative.ID).Return(initiative, nil)
	f.participants.EXPECT().
		Decide(gomock.Any(), accepted.ID, model.ParticipantAccepted, model.ParticipantRejected, manager.UserID).
		Return(&removed, nil)

	_, err := f.svc.Remove(context.Background(), manager, accepted.ID)
	require.NoError(t, err)
	assert.Empty(t, f.mailer.sent)
}

func TestLeave(t *testing.T) {
	volunteer := individual()
	initiativeID := uuid.New()

	t.Run("accepted volunteer leaves", func(t *testing.T) {
		f := newParticipationFixture(t)
		p := &model.Participant{ID: uuid.New(), InitiativeID: initiativeID, UserID: volunteer.UserID, Status: model.ParticipantAccepted}
		left := *p
		left.Status = model.ParticipantLeft

		f.participants.EXPECT().FindByInitiativeAndUser(gomock.Any(), initiativeID, volunteer.UserID).Return(p, nil)
		f.participants.EXPECT().
			Decide(gomock.Any(), p.ID, model.ParticipantAccepted, model.ParticipantLeft, volunteer.UserID).
			Return(&left, nil)

		got, err := f.svc.Leave(context.Background(), volunteer, initiativeID)
		require.NoError(t, err)
		assert.Equal(t, model.ParticipantLeft, got.Status)
	})

	t.Run("rejected request cannot leave", func(t *testing.T) {
		f := newParticipationFixture(t)
		p := &model.Participant{ID: uuid.New(), InitiativeID: initiativeID, UserID: volunteer.UserID, Status: model.ParticipantRejected}
		f.participants.EXPECT().FindByInitiativeAndUser(gomock.Any(), initiativeID, volunteer.UserID).Return(p, nil)

		_, err := f.svc.Leave(context.Background(), volunteer, initiativeID)
		assert.ErrorIs(t, err, domain.ErrParticipantState)
	})
}
