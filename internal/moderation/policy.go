// internal/moderation/policy.go
package moderation

import (
	"context"
	"slices"

	"github.com/dangerclosesec/mubadara/internal/workflow"
)

type grantKey struct {
	kind workflow.Kind
	role workflow.Role
}

type move struct {
	from workflow.Status
	to   workflow.Status
}

// RolePolicy is an AuthorizationPolicy over derived actor roles. Admins may
// request any transition; every other role only what was granted to it.
type RolePolicy struct {
	grants map[grantKey][]move
}

func NewRolePolicy() *RolePolicy {
	return &RolePolicy{grants: make(map[grantKey][]move)}
}

// DefaultPolicy grants the rules of the platform:
// organizations are reviewed by admins only; an individual organizer may
// cancel their own draft; a manager of an approved organization may publish
// and cancel the initiatives it runs.
func DefaultPolicy() *RolePolicy {
	return NewRolePolicy().
		Grant(workflow.KindInitiative, workflow.RoleOwner,
			workflow.InitiativeDraft, workflow.InitiativeCancelled).
		Grant(workflow.KindInitiative, workflow.RoleOrganizationManager,
			workflow.InitiativeDraft, workflow.InitiativePublished, workflow.InitiativeCancelled).
		Grant(workflow.KindInitiative, workflow.RoleOrganizationManager,
			workflow.InitiativePublished, workflow.InitiativeCancelled)
}

// Grant lets role move entities of kind from one status to any of to.
func (p *RolePolicy) Grant(kind workflow.Kind, role workflow.Role, from workflow.Status, to ...workflow.Status) *RolePolicy {
	key := grantKey{kind: kind, role: role}
	for _, target := range to {
		m := move{from: from, to: target}
		if !slices.Contains(p.grants[key], m) {
			p.grants[key] = append(p.grants[key], m)
		}
	}
	return p
}

func (p *RolePolicy) CanTransition(_ context.Context, kind workflow.Kind, actor workflow.Actor, subject workflow.Subject, to workflow.Status) (bool, error) {
	role := workflow.RoleOf(actor, subject)
	if role == workflow.RoleAdmin {
		return true, nil
	}
	if subject == nil {
		return false, nil
	}
	m := move{from: subject.CurrentStatus(), to: to}
	return slices.Contains(p.grants[grantKey{kind: kind, role: role}], m), nil
}
