package moderation_test

import (
	"context"
	"testing"

	"github.com/dangerclosesec/mubadara/internal/moderation"
	"github.com/dangerclosesec/mubadara/internal/workflow"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPolicy(t *testing.T) {
	owner := uuid.New()
	manager := uuid.New()
	orgID := uuid.New()

	ownerActor := workflow.Actor{UserID: owner}
	managerActor := workflow.Actor{UserID: manager, ManagedOrganizations: []uuid.UUID{orgID}}
	stranger := workflow.Actor{UserID: uuid.New()}

	personal := func(s workflow.Status) *entity {
		return &entity{id: uuid.New(), owner: owner, status: s}
	}
	orgRun := func(s workflow.Status) *entity {
		return &entity{id: uuid.New(), owner: owner, org: &orgID, status: s}
	}
	org := func(s workflow.Status) *entity {
		return &entity{id: uuid.New(), owner: owner, status: s}
	}

	tests := []struct {
		name    string
		kind    workflow.Kind
		actor   workflow.Actor
		subject *entity
		to      workflow.Status
		want    bool
	}{
		{"admin approves organization", workflow.KindOrganization, admin, org(workflow.OrganizationPending), workflow.OrganizationApproved, true},
		{"admin may request illegal moves", workflow.KindOrganization, admin, org(workflow.OrganizationApproved), workflow.OrganizationRejected, true},
		{"owner cannot approve own organization", workflow.KindOrganization, ownerActor, org(workflow.OrganizationPending), workflow.OrganizationApproved, false},
		{"owner cannot reject own organization", workflow.KindOrganization, ownerActor, org(workflow.OrganizationPending), workflow.OrganizationRejected, false},
		{"owner cancels own draft", workflow.KindInitiative, ownerActor, personal(workflow.InitiativeDraft), workflow.InitiativeCancelled, true},
		{"owner cannot publish", workflow.KindInitiative, ownerActor, personal(workflow.InitiativeDraft), workflow.InitiativePublished, false},
		{"owner cannot cancel published", workflow.KindInitiative, ownerActor, personal(workflow.InitiativePublished), workflow.InitiativeCancelled, false},
		{"manager publishes draft", workflow.KindInitiative, managerActor, orgRun(workflow.InitiativeDraft), workflow.InitiativePublished, true},
		{"manager cancels draft", workflow.KindInitiative, managerActor, orgRun(workflow.InitiativeDraft), workflow.InitiativeCancelled, true},
		{"manager cancels published", workflow.KindInitiative, managerActor, orgRun(workflow.InitiativePublished), workflow.InitiativeCancelled, true},
		{"manager cannot touch personal initiative", workflow.KindInitiative, managerActor, personal(workflow.InitiativeDraft), workflow.InitiativePublished, false},
		{"stranger", workflow.KindInitiative, stranger, orgRun(workflow.InitiativeDraft), workflow.InitiativeCancelled, false},
	}

	policy := moderation.DefaultPolicy()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := policy.CanTransition(context.Background(), tt.kind, tt.actor, tt.subject, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRolePolicy_Grant(t *testing.T) {
	policy := moderation.NewRolePolicy().
		Grant(workflow.KindOrganization, workflow.RoleOwner, workflow.OrganizationRejected, workflow.OrganizationPending).
		Grant(workflow.KindOrganization, workflow.RoleOwner, workflow.OrganizationRejected, workflow.OrganizationPending)

	owner := uuid.New()
	rejected := &entity{id: uuid.New(), owner: owner, status: workflow.OrganizationRejected}

	ok, err := policy.CanTransition(context.Background(), workflow.KindOrganization, workflow.Actor{UserID: owner}, rejected, workflow.OrganizationPending)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = policy.CanTransition(context.Background(), workflow.KindInitiative, workflow.Actor{UserID: owner}, rejected, workflow.OrganizationPending)
	require.NoError(t, err)
	assert.False(t, ok)
}
