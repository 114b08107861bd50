// internal/email/mock_gen.go
package email

//go:generate mockgen -typed -source=./service.go -destination=../mocks/mock_email_sender.go -package=mocks Sender
