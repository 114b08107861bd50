// internal/auth/policy.go
package auth

import (
	"context"

	"github.com/dangerclosesec/mubadara/internal/workflow"
)

// PermissionChecker answers a single permission check.
type PermissionChecker interface {
	CheckPermission(ctx context.Context, entity Entity, permission string, subject Subject) (bool, error)
}

// transitionPermissions names the schema permission guarding each target status.
var transitionPermissions = map[workflow.Kind]map[workflow.Status]string{
	workflow.KindOrganization: {
		workflow.OrganizationApproved: "review",
		workflow.OrganizationRejected: "review",
	},
	workflow.KindInitiative: {
		workflow.InitiativePublished: "publish",
		workflow.InitiativeCancelled: "cancel",
	},
}

// PermifyPolicy is a moderation.AuthorizationPolicy backed by Permify
// permission checks.
type PermifyPolicy struct {
	checker PermissionChecker
}

func NewPermifyPolicy(checker PermissionChecker) *PermifyPolicy {
	return &PermifyPolicy{checker: checker}
}

func (p *PermifyPolicy) CanTransition(ctx context.Context, kind workflow.Kind, actor workflow.Actor, subject workflow.Subject, to workflow.Status) (bool, error) {
	permission, ok := transitionPermissions[kind][to]
	if !ok {
		return false, nil
	}
	return p.checker.CheckPermission(ctx,
		Entity{Type: string(kind), ID: subject.SubjectID().String()},
		permission,
		Subject{Type: "user", ID: actor.UserID.String()},
	)
}
