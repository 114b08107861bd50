// internal/moderation/mock_gen.go
package moderation

//go:generate mockgen -typed -source=./moderation.go -destination=../mocks/mock_moderation.go -package=mocks
//go:generate mockgen -typed -source=./notifier.go -destination=../mocks/mock_notifier.go -package=mocks Notifier
