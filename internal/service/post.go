// internal/service/post.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dangerclosesec/mubadara/internal/domain"
	"github.com/dangerclosesec/mubadara/internal/model"
	"github.com/dangerclosesec/mubadara/internal/repository"
	"github.com/dangerclosesec/mubadara/internal/storage"
	"github.com/dangerclosesec/mubadara/internal/workflow"
	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var allowedImageTypes = []string{"image/jpeg", "image/png", "image/webp"}

type PostConfig struct {
	Bucket        string
	MaxImages     int
	MaxImageBytes int64
}

type PostService struct {
	posts       repository.PostRepositoryIface
	initiatives repository.InitiativeRepositoryIface
	counters    repository.CounterRepositoryIface
	store       storage.ObjectStore
	cfg         PostConfig
	logger      *slog.Logger
	validate    *validator.Validate
}

func NewPostService(
	posts repository.PostRepositoryIface,
	initiatives repository.InitiativeRepositoryIface,
	counters repository.CounterRepositoryIface,
	store storage.ObjectStore,
	cfg PostConfig,
	logger *slog.Logger,
) *PostService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostService{
		posts:       posts,
		initiatives: initiatives,
		counters:    counters,
		store:       store,
		cfg:         cfg,
		logger:      logger,
		validate:    newValidator(),
	}
}

// MaxUploadBytes bounds the payload of a single attachment request.
func (s *PostService) MaxUploadBytes() int64 {
	return int64(s.cfg.MaxImages) * s.cfg.MaxImageBytes
}

type CreatePostInput struct {
	Content string `json:"content" validate:"required,max=10000"`
}

// Upload is one file received from a client.
type Upload struct {
	Filename string
	Data     []byte
}

func (s *PostService) Create(ctx context.Context, actor workflow.Actor, initiativeID uuid.UUID, input CreatePostInput) (*model.Post, error) {
	input.Content = strings.TrimSpace(input.Content)
	if err := validateStruct(s.validate, input); err != nil {
		return nil, err
	}

	initiative, err := s.managedInitiative(ctx, actor, initiativeID)
	if err != nil {
		return nil, err
	}

	post := &model.Post{
		InitiativeID: initiative.ID,
		AuthorID:     actor.UserID,
		Content:      input.Content,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	post.Attachments = []model.PostAttachment{}
	return post, nil
}

func (s *PostService) Get(ctx context.Context, actor workflow.Actor, id uuid.UUID) (*model.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.visibleInitiative(ctx, actor, post.InitiativeID); err != nil {
		if errors.Is(err, domain.ErrInitiativeNotFound) {
			return nil, domain.ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

// List returns the posts of an initiative the actor can see, newest first.
func (s *PostService) List(ctx context.Context, actor workflow.Actor, initiativeID uuid.UUID, page repository.Page) ([]*model.Post, int64, error) {
	initiative, err := s.visibleInitiative(ctx, actor, initiativeID)
	if err != nil {
		return nil, 0, err
	}
	return s.posts.ListByInitiative(ctx, initiative.ID, page)
}

// AddAttachments stores images on a post. The per-initiative image counter is
// reserved for the whole batch before anything is uploaded; when an upload or
// the final insert fails, uploaded objects are removed and the reservation is
// given back.
func (s *PostService) AddAttachments(ctx context.Context, actor workflow.Actor, postID uuid.UUID, files []Upload) ([]*model.PostAttachment, error) {
	if len(files) == 0 {
		return nil, &ValidationError{Field: "files", Tag: "required"}
	}

	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	initiative, err := s.managedInitiative(ctx, actor, post.InitiativeID)
	if err != nil {
		return nil, err
	}

	detected := make([]*mimetype.MIME, len(files))
	for i, f := range files {
		if len(f.Data) == 0 {
			return nil, &ValidationError{Field: "files", Tag: "required"}
		}
		if s.cfg.MaxImageBytes > 0 && int64(len(f.Data)) > s.cfg.MaxImageBytes {
			return nil, &ValidationError{Field: "files", Tag: "max"}
		}
		mime := mimetype.Detect(f.Data)
		if !mimetype.EqualsAny(mime.String(), allowedImageTypes...) {
			return nil, fmt.Errorf("%w: %s is %s", domain.ErrUnsupportedFileType, f.Filename, mime.String())
		}
		detected[i] = mime
	}

	n := len(files)
	counter := repository.AttachmentsCounter(initiative.ID, s.cfg.MaxImages)
	if _, err := s.counters.Reserve(ctx, counter, n); err != nil {
		return nil, err
	}

	attachments := make([]*model.PostAttachment, 0, n)
	for i, f := range files {
		id := uuid.New()
		objectPath := fmt.Sprintf("initiatives/%s/posts/%s/%s%s", initiative.ID, post.ID, id, detected[i].Extension())

		url, err := s.store.Upload(ctx, s.cfg.Bucket, objectPath, f.Data, detected[i].String())
		if err != nil {
			s.rollbackUploads(ctx, counter, n, attachments)
			return nil, fmt.Errorf("%w: uploading attachment: %w", domain.ErrPersistence, err)
		}

		attachments = append(attachments, &model.PostAttachment{
			ID:           id,
			PostID:       post.ID,
			InitiativeID: initiative.ID,
			Bucket:       s.cfg.Bucket,
			Path:         objectPath,
			URL:          url,
			MimeType:     detected[i].String(),
			Size:         int64(len(f.Data)),
		})
	}

	if err := s.posts.AddAttachments(ctx, attachments); err != nil {
		s.rollbackUploads(ctx, counter, n, attachments)
		return nil, err
	}

	s.logger.InfoContext(ctx, "attachments added", "post_id", post.ID, "initiative_id", initiative.ID, "count", n)
	return attachments, nil
}

// RemoveAttachment deletes the row, which releases the counter slot, then
// the stored object. A leftover object only costs storage.
func (s *PostService) RemoveAttachment(ctx context.Context, actor workflow.Actor, attachmentID uuid.UUID) error {
	attachment, err := s.posts.FindAttachment(ctx, attachmentID)
	if err != nil {
		return err
	}
	if _, err := s.managedInitiative(ctx, actor, attachment.InitiativeID); err != nil {
		return err
	}

	if err := s.posts.DeleteAttachment(ctx, attachment); err != nil {
		return err
	}
	s.deleteObjects(ctx, []model.PostAttachment{*attachment})
	return nil
}

// Delete removes a post with its attachments.
func (s *PostService) Delete(ctx context.Context, actor workflow.Actor, postID uuid.UUID) error {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if _, err := s.managedInitiative(ctx, actor, post.InitiativeID); err != nil {
		return err
	}

	if err := s.posts.Delete(ctx, post); err != nil {
		return err
	}
	s.deleteObjects(ctx, post.Attachments)
	return nil
}

// deleteObjects removes stored objects whose rows are already gone.
func (s *PostService) deleteObjects(ctx context.Context, attachments []model.PostAttachment) {
	ctx = context.WithoutCancel(ctx)
	for _, a := range attachments {
		if err := s.store.Delete(ctx, a.Bucket, a.Path); err != nil {
			s.logger.WarnContext(ctx, "deleting attachment object", "attachment_id", a.ID, "path", a.Path, "error", err)
		}
	}
}

func (s *PostService) rollbackUploads(ctx context.Context, counter repository.CounterRef, reserved int, uploaded []*model.PostAttachment) {
	ctx = context.WithoutCancel(ctx)
	for _, a := range uploaded {
		if err := s.store.Delete(ctx, a.Bucket, a.Path); err != nil {
			s.logger.WarnContext(ctx, "removing orphaned attachment", "path", a.Path, "error", err)
		}
	}
	if _, err := s.counters.Reserve(ctx, counter, -reserved); err != nil {
		s.logger.ErrorContext(ctx, "releasing attachment reservation", "initiative_id", counter.ID, "count", reserved, "error", err)
	}
}

func (s *PostService) managedInitiative(ctx context.Context, actor workflow.Actor, id uuid.UUID) (*model.Initiative, error) {
	initiative, err := s.initiatives.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canManageInitiative(actor, initiative) {
		return nil, unauthorized("may not manage posts of initiative %s", id)
	}
	return initiative, nil
}

func (s *PostService) visibleInitiative(ctx context.Context, actor workflow.Actor, id uuid.UUID) (*model.Initiative, error) {
	initiative, err := s.initiatives.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if initiative.Status == workflow.InitiativeDraft && !canManageInitiative(actor, initiative) {
		return nil, domain.ErrInitiativeNotFound
	}
	return initiative, nil
}
