// internal/repository/mock_gen.go
package repository

//go:generate mockgen -typed -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -typed -source=./organization.go -destination=../mocks/mock_organization_repository.go -package=mocks OrganizationRepositoryIface
//go:generate mockgen -typed -source=./initiative.go -destination=../mocks/mock_initiative_repository.go -package=mocks InitiativeRepositoryIface
//go:generate mockgen -typed -source=./participant.go -destination=../mocks/mock_participant_repository.go -package=mocks ParticipantRepositoryIface
//go:generate mockgen -typed -source=./post.go -destination=../mocks/mock_post_repository.go -package=mocks PostRepositoryIface
//go:generate mockgen -typed -source=./counter.go -destination=../mocks/mock_counter_repository.go -package=mocks CounterRepositoryIface
