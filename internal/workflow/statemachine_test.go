package workflow_test

import (
	"testing"

	"github.com/dangerclosesec/mubadara/internal/workflow"
	"github.com/stretchr/testify/assert"
)

var (
	organizationStates = []workflow.Status{
		workflow.OrganizationPending,
		workflow.OrganizationApproved,
		workflow.OrganizationRejected,
	}
	initiativeStates = []workflow.Status{
		workflow.InitiativeDraft,
		workflow.InitiativePublished,
		workflow.InitiativeCancelled,
	}
)

func TestStatusMachine_Transitions(t *testing.T) {
	sm := workflow.DefaultMachine()

	org := sm.Transitions(workflow.KindOrganization)
	assert.ElementsMatch(t, []workflow.Status{workflow.OrganizationApproved, workflow.OrganizationRejected}, org[workflow.OrganizationPending])
	assert.Empty(t, org[workflow.OrganizationApproved])
	assert.Empty(t, org[workflow.OrganizationRejected])
	assert.Len(t, org, 3)

	ini := sm.Transitions(workflow.KindInitiative)
	assert.ElementsMatch(t, []workflow.Status{workflow.InitiativePublished, workflow.InitiativeCancelled}, ini[workflow.InitiativeDraft])
	assert.Equal(t, []workflow.Status{workflow.InitiativeCancelled}, ini[workflow.InitiativePublished])
	assert.Empty(t, ini[workflow.InitiativeCancelled])

	assert.Nil(t, sm.Transitions("campaign"))
}

func TestStatusMachine_TransitionsReturnsCopy(t *testing.T) {
	sm := workflow.DefaultMachine()

	got := sm.Transitions(workflow.KindOrganization)
	got[workflow.OrganizationApproved] = append(got[workflow.OrganizationApproved], workflow.OrganizationPending)

	assert.False(t, sm.IsLegal(workflow.KindOrganization, workflow.OrganizationApproved, workflow.OrganizationPending))
}

func TestStatusMachine_NoSelfTransitions(t *testing.T) {
	sm := workflow.DefaultMachine()

	for _, s := range organizationStates {
		assert.False(t, sm.IsLegal(workflow.KindOrganization, s, s), "organization %s -> %s", s, s)
	}
	for _, s := range initiativeStates {
		assert.False(t, sm.IsLegal(workflow.KindInitiative, s, s), "initiative %s -> %s", s, s)
	}
}

func TestStatusMachine_OnlyDeclaredTransitionsAreLegal(t *testing.T) {
	sm := workflow.DefaultMachine()

	cases := map[workflow.Kind][]workflow.Status{
		workflow.KindOrganization: append(organizationStates, workflow.InitiativeDraft, "archived"),
		workflow.KindInitiative:   append(initiativeStates, workflow.OrganizationPending, "archived"),
	}

	for kind, states := range cases {
		declared := sm.Transitions(kind)
		for _, from := range states {
			for _, to := range states {
				want := false
				for _, target := range declared[from] {
					if target == to {
						want = true
					}
				}
				assert.Equal(t, want, sm.IsLegal(kind, from, to), "%s: %s -> %s", kind, from, to)
			}
		}
	}
}

func TestStatusMachine_UnknownKindFailsClosed(t *testing.T) {
	sm := workflow.DefaultMachine()

	assert.False(t, sm.IsLegal("campaign", workflow.InitiativeDraft, workflow.InitiativePublished))
	assert.False(t, sm.RequiresReason("campaign", workflow.InitiativeCancelled))
	assert.False(t, sm.Valid("campaign", workflow.InitiativeDraft))

	_, ok := sm.Initial("campaign")
	assert.False(t, ok)
}

func TestStatusMachine_RequiresReason(t *testing.T) {
	sm := workflow.DefaultMachine()

	assert.True(t, sm.RequiresReason(workflow.KindOrganization, workflow.OrganizationRejected))
	assert.False(t, sm.RequiresReason(workflow.KindOrganization, workflow.OrganizationApproved))
	assert.True(t, sm.RequiresReason(workflow.KindInitiative, workflow.InitiativeCancelled))
	assert.False(t, sm.RequiresReason(workflow.KindInitiative, workflow.InitiativePublished))
}

func TestStatusMachine_InitialAndTerminal(t *testing.T) {
	sm := workflow.DefaultMachine()

	initial, ok := sm.Initial(workflow.KindOrganization)
	assert.True(t, ok)
	assert.Equal(t, workflow.OrganizationPending, initial)

	initial, ok = sm.Initial(workflow.KindInitiative)
	assert.True(t, ok)
	assert.Equal(t, workflow.InitiativeDraft, initial)

	assert.True(t, sm.Terminal(workflow.KindOrganization, workflow.OrganizationApproved))
	assert.True(t, sm.Terminal(workflow.KindInitiative, workflow.InitiativeCancelled))
	assert.False(t, sm.Terminal(workflow.KindInitiative, workflow.InitiativePublished))
	assert.False(t, sm.Terminal(workflow.KindInitiative, "archived"))
}

func TestStatusMachine_RegisterNewKind(t *testing.T) {
	sm := workflow.NewStatusMachine().
		Register("report", workflow.NewTable("open").
			Allow("open", "resolved", "dismissed").
			Allow("open", "open").
			RequireReason("dismissed"))

	assert.True(t, sm.IsLegal("report", "open", "resolved"))
	assert.False(t, sm.IsLegal("report", "open", "open"))
	assert.True(t, sm.Valid("report", "dismissed"))
	assert.True(t, sm.Terminal("report", "resolved"))
	assert.True(t, sm.RequiresReason("report", "dismissed"))
	assert.Equal(t, []workflow.Kind{"report"}, sm.Kinds())
}

func TestStatusMachine_ToDot(t *testing.T) {
	dot := workflow.DefaultMachine().ToDot(workflow.KindInitiative)

	assert.Contains(t, dot, "digraph initiative {")
	assert.Contains(t, dot, `start -> "draft";`)
	assert.Contains(t, dot, `"draft" -> "published";`)
	assert.Contains(t, dot, `"published" -> "cancelled" [label="reason"];`)
	assert.Contains(t, dot, `"cancelled" [shape=doublecircle];`)
}
