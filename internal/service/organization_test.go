package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/dangerclosesec/mubadara/internal/domain"
	"github.com/dangerclosesec/mubadara/internal/mocks"
	"github.com/dangerclosesec/mubadara/internal/model"
	"github.com/dangerclosesec/mubadara/internal/moderation"
	"github.com/dangerclosesec/mubadara/internal/service"
	"github.com/dangerclosesec/mubadara/internal/workflow"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type orgFixture struct {
	svc        *service.OrganizationService
	moderation *moderation.Service
	orgs       *mocks.MockOrganizationRepositoryIface
	users      *mocks.MockUserRepositoryIface
	store      *mocks.MockEntityStore
}

func newOrgFixture(t *testing.T) orgFixture {
	ctrl := gomock.NewController(t)
	f := orgFixture{
		orgs:  mocks.NewMockOrganizationRepositoryIface(ctrl),
		users: mocks.NewMockUserRepositoryIface(ctrl),
		store: mocks.NewMockEntityStore(ctrl),
	}
	f.moderation = moderation.NewService(f.store, moderation.DefaultPolicy(), moderation.WithLogger(discard))
	f.svc = service.NewOrganizationService(f.orgs, f.users, f.moderation, nil, nil, discard)
	return f
}

func TestOrganizationCreate(t *testing.T) {
	f := newOrgFixture(t)
	actor := individual()

	f.orgs.EXPECT().Create(gomock.Any(), gomock.Any()).Do(func(_ context.Context, org *model.Organization) error {
		assert.Equal(t, actor.UserID, org.OwnerID)
		assert.Equal(t, "info@albir.org", org.Email)
		assert.Equal(t, "الرياض", org.City)
		return nil
	})

	org, err := f.svc.Create(context.Background(), actor, service.CreateOrganizationInput{
		Name:  "جمعية البر",
		Email: " INFO@albir.org ",
		City:  " الرياض ",
	})
	require.NoError(t, err)
	assert.Equal(t, actor.UserID, org.OwnerID)
}

func TestOrganizationCreate_BlankCityIsInvalid(t *testing.T) {
	f := newOrgFixture(t)

	_, err := f.svc.Create(context.Background(), individual(), service.CreateOrganizationInput{
		Name:  "جمعية البر",
		Email: "info@albir.org",
		City:  "   ",
	})
	var ve *service.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "city", ve.Field)
}

func TestOrganizationCreate_RequiresSignedInActor(t *testing.T) {
	f := newOrgFixture(t)

	_, err := f.svc.Create(context.Background(), workflow.Actor{}, service.CreateOrganizationInput{Name: "x", Email: "a@b.co", City: "c"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestOrganizationApprove(t *testing.T) {
	f := newOrgFixture(t)
	org := &model.Organization{ID: uuid.New(), OwnerID: uuid.New(), Status: workflow.OrganizationPending, UpdatedAt: time.Now().Add(-time.Hour)}
	approved := *org
	approved.Status = workflow.OrganizationApproved

	f.store.EXPECT().Get(gomock.Any(), workflow.KindOrganization, org.ID).Return(org, nil)
	f.store.EXPECT().
		ConditionalUpdate(gomock.Any(), workflow.KindOrganization, org.ID, workflow.OrganizationPending, gomock.Any()).
		Return(&approved, nil)
	f.users.EXPECT().SetUserType(gomock.Any(), org.OwnerID, model.UserTypeOrganization).Return(nil)

	f.moderation.OnCommitted("owner-type", f.svc.OwnerTypeHook())

	got, err := f.svc.Approve(context.Background(), admin(), org.ID)
	require.NoError(t, err)
	assert.Equal(t, workflow.OrganizationApproved, got.Status)
}

func TestOrganizationApprove_OwnerCannotReview(t *testing.T) {
	f := newOrgFixture(t)
	org := &model.Organization{ID: uuid.New(), OwnerID: uuid.New(), Status: workflow.OrganizationPending}

	f.store.EXPECT().Get(gomock.Any(), workflow.KindOrganization, org.ID).Return(org, nil)

	_, err := f.svc.Approve(context.Background(), workflow.Actor{UserID: org.OwnerID}, org.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestOrganizationReject_RequiresReason(t *testing.T) {
	f := newOrgFixture(t)
	org := &model.Organization{ID: uuid.New(), OwnerID: uuid.New(), Status: workflow.OrganizationPending}

	f.store.EXPECT().Get(gomock.Any(), workflow.KindOrganization, org.ID).Return(org, nil)

	_, err := f.svc.Reject(context.Background(), admin(), org.ID, "   ")
	assert.ErrorIs(t, err, domain.ErrReasonRequired)
}

func TestOrganizationGet_HidesPendingFromStrangers(t *testing.T) {
	f := newOrgFixture(t)
	org := &model.Organization{ID: uuid.New(), OwnerID: uuid.New(), Status: workflow.OrganizationPending}
	manager := uuid.New()

	f.orgs.EXPECT().FindByID(gomock.Any(), org.ID).Return(org, nil).Times(3)
	f.orgs.EXPECT().FindOrganizationUsers(gomock.Any(), org.ID).Return([]*model.OrganizationUser{
		{OrganizationID: org.ID, UserID: org.OwnerID, Role: model.OrgRoleOwner},
		{OrganizationID: org.ID, UserID: manager, Role: model.OrgRoleManager},
	}, nil).Times(2)

	_, err := f.svc.Get(context.Background(), individual(), org.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := f.svc.Get(context.Background(), workflow.Actor{UserID: manager}, org.ID)
	require.NoError(t, err)
	assert.Equal(t, org.ID, got.ID)

	_, err = f.svc.Get(context.Background(), admin(), org.ID)
	require.NoError(t, err)
}

func TestOrganizationAddMember(t *testing.T) {
	f := newOrgFixture(t)
	org := &model.Organization{ID: uuid.New(), OwnerID: uuid.New(), Status: workflow.OrganizationApproved}
	member := &model.User{ID: uuid.New(), Email: "m@example.com"}

	f.orgs.EXPECT().FindByID(gomock.Any(), org.ID).Return(org, nil).Times(2)
	f.users.EXPECT().FindByEmail(gomock.Any(), member.Email).Return(member, nil)
	f.orgs.EXPECT().AddMember(gomock.Any(), org.ID, member.ID, model.OrgRoleManager).Return(nil)

	input := service.AddMemberInput{Email: member.Email, Role: model.OrgRoleManager}

	_, err := f.svc.AddMember(context.Background(), individual(), org.ID, input)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	got, err := f.svc.AddMember(context.Background(), workflow.Actor{UserID: org.OwnerID}, org.ID, input)
	require.NoError(t, err)
	assert.Equal(t, member.ID, got.UserID)

	_, err = f.svc.AddMember(context.Background(), workflow.Actor{UserID: org.OwnerID}, org.ID,
		service.AddMemberInput{Email: member.Email, Role: model.OrgRoleOwner})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrganizationList_AdminOnly(t *testing.T) {
	f := newOrgFixture(t)
	filters := workflow.Filters{Status: workflow.OrganizationPending}

	_, _, err := f.svc.List(context.Background(), individual(), filters, repositoryPage())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	f.orgs.EXPECT().List(gomock.Any(), filters, repositoryPage()).Return([]*model.Organization{{ID: uuid.New()}}, int64(1), nil)
	orgs, total, err := f.svc.List(context.Background(), admin(), filters, repositoryPage())
	require.NoError(t, err)
	assert.Len(t, orgs, 1)
	assert.EqualValues(t, 1, total)
}
