// internal/auth/mock_gen.go
package auth

//go:generate mockgen -typed -source=./policy.go -destination=../mocks/mock_permission_checker.go -package=mocks PermissionChecker
//go:generate mockgen -typed -source=./sync.go -destination=../mocks/mock_relationship_writer.go -package=mocks RelationshipWriter
