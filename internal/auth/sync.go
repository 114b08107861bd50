// internal/auth/sync.go
package auth

import (
	"context"
	"errors"

	"github.com/dangerclosesec/mubadara/internal/model"
	"github.com/dangerclosesec/mubadara/internal/moderation"
	"github.com/dangerclosesec/mubadara/internal/workflow"
	"github.com/google/uuid"
)

// PlatformID is the single platform entity admins are attached to.
const PlatformID = "main"

// RelationshipWriter stores relationship tuples and attributes.
type RelationshipWriter interface {
	WriteRelationship(ctx context.Context, entity Entity, relation string, subject Subject) error
	WriteAttribute(ctx context.Context, entity Entity, attribute string, value bool) error
}

// RelationshipSync mirrors ownership, membership and approval into Permify so
// PermifyPolicy sees the same facts as the database.
type RelationshipSync struct {
	writer RelationshipWriter
}

func NewRelationshipSync(writer RelationshipWriter) *RelationshipSync {
	return &RelationshipSync{writer: writer}
}

func user(id uuid.UUID) Subject {
	return Subject{Type: "user", ID: id.String()}
}

func platform() Subject {
	return Subject{Type: "platform", ID: PlatformID}
}

func (s *RelationshipSync) AdminGranted(ctx context.Context, userID uuid.UUID) error {
	return s.writer.WriteRelationship(ctx, Entity(platform()), "admin", user(userID))
}

func (s *RelationshipSync) OrganizationCreated(ctx context.Context, org *model.Organization) error {
	entity := Entity{Type: string(workflow.KindOrganization), ID: org.ID.String()}
	return errors.Join(
		s.writer.WriteRelationship(ctx, entity, "platform", platform()),
		s.writer.WriteRelationship(ctx, entity, "owner", user(org.OwnerID)),
		s.writer.WriteAttribute(ctx, entity, "approved", org.Status == workflow.OrganizationApproved),
	)
}

func (s *RelationshipSync) MemberAdded(ctx context.Context, orgID, userID uuid.UUID, role model.OrganizationRole) error {
	entity := Entity{Type: string(workflow.KindOrganization), ID: orgID.String()}
	return s.writer.WriteRelationship(ctx, entity, string(role), user(userID))
}

func (s *RelationshipSync) InitiativeCreated(ctx context.Context, initiative *model.Initiative) error {
	entity := Entity{Type: string(workflow.KindInitiative), ID: initiative.ID.String()}
	errs := []error{
		s.writer.WriteRelationship(ctx, entity, "platform", platform()),
		s.writer.WriteRelationship(ctx, entity, "owner", user(initiative.OwnerID)),
	}
	if initiative.OrganizationID != nil {
		errs = append(errs, s.writer.WriteRelationship(ctx, entity, "organization",
			Subject{Type: string(workflow.KindOrganization), ID: initiative.OrganizationID.String()}))
	}
	return errors.Join(errs...)
}

// Hook keeps the organization approved attribute current after a review.
func (s *RelationshipSync) Hook() moderation.Hook {
	return func(ctx context.Context, e moderation.Event) error {
		if e.Kind != workflow.KindOrganization {
			return nil
		}
		entity := Entity{Type: string(workflow.KindOrganization), ID: e.Subject.SubjectID().String()}
		return s.writer.WriteAttribute(ctx, entity, "approved", e.To == workflow.OrganizationApproved)
	}
}

// NoopRelationships is used when Permify is disabled.
type NoopRelationships struct{}

func (NoopRelationships) AdminGranted(context.Context, uuid.UUID) error { return nil }
func (NoopRelationships) OrganizationCreated(context.Context, *model.Organization) error { return nil }
func (NoopRelationships) MemberAdded(context.Context, uuid.UUID, uuid.UUID, model.OrganizationRole) error {
	return nil
}
func (NoopRelationships) InitiativeCreated(context.Context, *model.Initiative) error { return nil }
