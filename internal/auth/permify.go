// internal/auth/permify.go

package auth

import (
	"context"
	_ "embed"
	"fmt"

	v1 "buf.build/gen/go/permifyco/permify/protocolbuffers/go/base/v1"
	permify_grpc "github.com/Permify/permify-go/grpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/anypb"
)

// Schema is the Permify model of organizations and initiatives.
//
//go:embed schema.perm
var Schema string

type PermifyService struct {
	client        *permify_grpc.Client
	tenant        string
	schemaVersion string
	snapToken     string
	depth         int32
}

func WithTenant(tenant string) func(*PermifyService) {
	return func(s *PermifyService) {
		s.tenant = tenant
	}
}

// WithSchemaVersion pins checks to a schema version. The latest is used when empty.
func WithSchemaVersion(schemaVersion string) func(*PermifyService) {
	return func(s *PermifyService) {
		s.schemaVersion = schemaVersion
	}
}

// WithSnapToken sets the snap token for the Permify service
func WithSnapToken(snapToken string) func(*PermifyService) {
	return func(s *PermifyService) {
		s.snapToken = snapToken
	}
}

// WithDepth sets the depth for the Permify service
func WithDepth(depth int32) func(*PermifyService) {
	return func(s *PermifyService) {
		s.depth = depth
	}
}

// NewPermifyService creates a new Permify service
func NewPermifyService(host string, options ...func(*PermifyService)) (*PermifyService, error) {
	client, err := permify_grpc.NewClient(
		permify_grpc.Config{
			Endpoint: host,
		},
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to permify: %w", err)
	}

	service := &PermifyService{client: client, depth: 50}
	for _, o := range options {
		o(service)
	}

	if service.tenant == "" {
		service.tenant = "t1"
	}

	return service, nil
}

type Resource struct {
	Type string
	ID   string
}

type Entity Resource
type Subject Resource

// WriteSchema uploads Schema and pins the service to the returned version.
func (s *PermifyService) WriteSchema(ctx context.Context) (string, error) {
	resp, err := s.client.Schema.Write(ctx, &v1.SchemaWriteRequest{
		TenantId: s.tenant,
		Schema:   Schema,
	})
	if err != nil {
		return "", fmt.Errorf("writing permify schema: %w", err)
	}
	s.schemaVersion = resp.SchemaVersion
	return resp.SchemaVersion, nil
}

// CheckPermission checks if a subject has a permission on an entity
func (s *PermifyService) CheckPermission(ctx context.Context, entity Entity, permission string, subject Subject) (bool, error) {
	cr, err := s.client.Permission.Check(ctx, &v1.PermissionCheckRequest{
		TenantId: s.tenant,
		Metadata: &v1.PermissionCheckRequestMetadata{
			SnapToken:     s.snapToken,
			SchemaVersion: s.schemaVersion,
			Depth:         s.depth,
		},
		Entity: &v1.Entity{
			Type: entity.Type,
			Id:   entity.ID,
		},
		Permission: permission,
		Subject: &v1.Subject{
			Type: subject.Type,
			Id:   subject.ID,
		},
	})
	if err != nil {
		return false, fmt.Errorf("checking %s on %s:%s: %w", permission, entity.Type, entity.ID, err)
	}

	return cr.Can == v1.CheckResult_CHECK_RESULT_ALLOWED, nil
}

func (s *PermifyService) WriteRelationship(ctx context.Context, entity Entity, relation string, subject Subject) error {
	_, err := s.client.Data.WriteRelationships(ctx, &v1.RelationshipWriteRequest{
		TenantId: s.tenant,
		Metadata: &v1.RelationshipWriteRequestMetadata{
			SchemaVersion: s.schemaVersion,
		},
		Tuples: []*v1.Tuple{
			{
				Entity: &v1.Entity{
					Type: entity.Type,
					Id:   entity.ID,
				},
				Relation: relation,
				Subject: &v1.Subject{
					Type: subject.Type,
					Id:   subject.ID,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("writing %s:%s#%s: %w", entity.Type, entity.ID, relation, err)
	}

	return nil
}

// WriteAttribute sets a boolean attribute of entity.
func (s *PermifyService) WriteAttribute(ctx context.Context, entity Entity, attribute string, value bool) error {
	v, err := anypb.New(&v1.BooleanValue{Data: value})
	if err != nil {
		return fmt.Errorf("encoding attribute: %w", err)
	}

	_, err = s.client.Data.Write(ctx, &v1.DataWriteRequest{
		TenantId: s.tenant,
		Metadata: &v1.DataWriteRequestMetadata{
			SchemaVersion: s.schemaVersion,
		},
		Attributes: []*v1.Attribute{
			{
				Entity: &v1.Entity{
					Type: entity.Type,
					Id:   entity.ID,
				},
				Attribute: attribute,
				Value:     v,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("writing %s:%s$%s: %w", entity.Type, entity.ID, attribute, err)
	}

	return nil
}

func (s *PermifyService) DeleteRelationship(ctx context.Context, entity Entity, relation string, subject Subject) error {
	_, err := s.client.Data.DeleteRelationships(ctx, &v1.RelationshipDeleteRequest{
		TenantId: s.tenant,
		Filter: &v1.TupleFilter{
			Entity: &v1.EntityFilter{
				Type: entity.Type,
				Ids:  []string{entity.ID},
			},
			Relation: relation,
			Subject: &v1.SubjectFilter{
				Type: subject.Type,
				Ids:  []string{subject.ID},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("deleting %s:%s#%s: %w", entity.Type, entity.ID, relation, err)
	}

	return nil
}
