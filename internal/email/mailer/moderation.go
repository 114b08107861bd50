// internal/email/mailer/moderation.go
package mailer

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/mubadara/internal/email"
	"github.com/dangerclosesec/mubadara/internal/model"
	"github.com/dangerclosesec/mubadara/internal/workflow"
	"github.com/google/uuid"
)

// UserLookup resolves the recipient of a notification.
type UserLookup interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

// TemplateData is shared by every workflow template.
type TemplateData struct {
	RecipientName string
	EntityName    string
	Reason        string
	Link          string
}

type message struct {
	template string
	subject  string
}

var moderationMessages = map[string]message{
	"organization.approved": {template: "organization_approved", subject: "تمت الموافقة على تسجيل الجهة"},
	"organization.rejected": {template: "organization_rejected", subject: "تعذرت الموافقة على تسجيل الجهة"},
	"initiative.published":  {template: "initiative_published", subject: "تم نشر المبادرة"},
	"initiative.cancelled":  {template: "initiative_cancelled", subject: "تم إلغاء المبادرة"},
}

// ModerationMailer emails the owner of an entity about the outcome of a
// moderation decision. It implements moderation.Notifier.
type ModerationMailer struct {
	sender  email.Sender
	users   UserLookup
	baseURL string
}

func NewModerationMailer(sender email.Sender, users UserLookup, baseURL string) *ModerationMailer {
	return &ModerationMailer{sender: sender, users: users, baseURL: baseURL}
}

// Notify sends the email for eventKind. Events without a template are ignored.
func (m *ModerationMailer) Notify(ctx context.Context, eventKind string, subject workflow.Subject) error {
	msg, ok := moderationMessages[eventKind]
	if !ok {
		return nil
	}

	owner, err := m.users.FindByID(ctx, subject.OwnerRef())
	if err != nil {
		return fmt.Errorf("finding recipient: %w", err)
	}

	data := TemplateData{RecipientName: owner.Name}
	switch s := subject.(type) {
	case *model.Organization:
		data.EntityName = s.Name
		data.Reason = s.RejectionReason
		data.Link = fmt.Sprintf("%s/organizations/%s", m.baseURL, s.ID)
	case *model.Initiative:
		data.EntityName = s.Title
		data.Reason = s.CancellationReason
		data.Link = fmt.Sprintf("%s/initiatives/%s", m.baseURL, s.ID)
	default:
		return fmt.Errorf("unsupported subject %T", subject)
	}

	return m.sender.SendEmail(ctx, email.EmailData{
		To:           owner.Email,
		Subject:      msg.subject,
		TemplateName: msg.template,
		TemplateData: data,
	})
}
