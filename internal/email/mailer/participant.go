// internal/email/mailer/participant.go
package mailer

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/mubadara/internal/email"
	"github.com/dangerclosesec/mubadara/internal/model"
)

// ParticipantMailer tells volunteers whether their join request was accepted.
type ParticipantMailer struct {
	sender  email.Sender
	users   UserLookup
	baseURL string
}

func NewParticipantMailer(sender email.Sender, users UserLookup, baseURL string) *ParticipantMailer {
	return &ParticipantMailer{sender: sender, users: users, baseURL: baseURL}
}

// SendDecision emails the participant after an accept or reject. Other
// statuses produce no email.
func (m *ParticipantMailer) SendDecision(ctx context.Context, p *model.Participant, initiative *model.Initiative) error {
	var msg message
	switch p.Status {
	case model.ParticipantAccepted:
		msg = message{template: "participant_accepted", subject: "تم قبول طلب تطوعك"}
	case model.ParticipantRejected:
		msg = message{template: "participant_rejected", subject: "بخصوص طلب تطوعك"}
	default:
		return nil
	}

	volunteer, err := m.users.FindByID(ctx, p.UserID)
	if err != nil {
		return fmt.Errorf("finding participant: %w", err)
	}

	return m.sender.SendEmail(ctx, email.EmailData{
		To:           volunteer.Email,
		Subject:      msg.subject,
		TemplateName: msg.template,
		TemplateData: TemplateData{
			RecipientName: volunteer.Name,
			EntityName:    initiative.Title,
			Link:          fmt.Sprintf("%s/initiatives/%s", m.baseURL, initiative.ID),
		},
	})
}
