// internal/workflow/actor.go
package workflow

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Role is the relation of an actor to one entity. It is derived, never stored.
type Role string

const (
	RoleOwner               Role = "owner"
	RoleOrganizationManager Role = "organizationManager"
	RoleAdmin               Role = "admin"
	RoleOther               Role = "other"
)

// Actor is the authenticated identity behind a request, resolved once by the
// transport layer and passed down explicitly.
type Actor struct {
	UserID               uuid.UUID
	Admin                bool
	ManagedOrganizations []uuid.UUID
}

// Manages reports whether the actor manages the given organization.
func (a Actor) Manages(orgID uuid.UUID) bool {
	return slices.Contains(a.ManagedOrganizations, orgID)
}

// Subject is the view of a moderated entity the workflow needs.
type Subject interface {
	SubjectID() uuid.UUID
	CurrentStatus() Status
	OwnerRef() uuid.UUID
	// OrganizationRef is the organization accountable for the entity, if any.
	OrganizationRef() *uuid.UUID
	LastUpdated() time.Time
}

// RoleOf derives the role of actor relative to s.
// Precedence: admin, organizationManager, owner, other.
func RoleOf(actor Actor, s Subject) Role {
	switch {
	case actor.Admin:
		return RoleAdmin
	case s == nil || actor.UserID == uuid.Nil:
		return RoleOther
	}
	if org := s.OrganizationRef(); org != nil && actor.Manages(*org) {
		return RoleOrganizationManager
	}
	if s.OwnerRef() == actor.UserID {
		return RoleOwner
	}
	return RoleOther
}

// Patch is the change a committed transition writes.
type Patch struct {
	Status    Status
	UpdatedAt time.Time
	Reason    string
	ActorID   uuid.UUID
	// ActorRole is the role the actor held when the transition was decided.
	ActorRole Role
}
