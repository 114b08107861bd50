package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dangerclosesec/mubadara/internal/domain"
	"github.com/dangerclosesec/mubadara/internal/mocks"
	"github.com/dangerclosesec/mubadara/internal/model"
	"github.com/dangerclosesec/mubadara/internal/repository"
	"github.com/dangerclosesec/mubadara/internal/service"
	"github.com/dangerclosesec/mubadara/internal/workflow"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type postFixture struct {
	svc         *service.PostService
	posts       *mocks.MockPostRepositoryIface
	initiatives *mocks.MockInitiativeRepositoryIface
	counters    *mocks.MockCounterRepositoryIface
	store       *mocks.MockObjectStore

	owner      uuid.UUID
	initiative *model.Initiative
	post       *model.Post
}

func newPostFixture(t *testing.T) postFixture {
	ctrl := gomock.NewController(t)
	f := postFixture{
		posts:       mocks.NewMockPostRepositoryIface(ctrl),
		initiatives: mocks.NewMockInitiativeRepositoryIface(ctrl),
		counters:    mocks.NewMockCounterRepositoryIface(ctrl),
		store:       mocks.NewMockObjectStore(ctrl),
		owner:       uuid.New(),
	}
	f.initiative = &model.Initiative{ID: uuid.New(), OwnerID: f.owner, Status: workflow.InitiativePublished}
	f.post = &model.Post{ID: uuid.New(), InitiativeID: f.initiative.ID, AuthorID: f.owner}
	f.svc = service.NewPostService(f.posts, f.initiatives, f.counters, f.store, service.PostConfig{
		Bucket:        "media",
		MaxImages:     5,
		MaxImageBytes: 1 << 10,
	}, discard)
	return f
}

func (f postFixture) expectPostLookup() {
	f.posts.EXPECT().FindByID(gomock.Any(), f.post.ID).Return(f.post, nil)
	f.initiatives.EXPECT().FindByID(gomock.Any(), f.initiative.ID).Return(f.initiative, nil)
}

func (f postFixture) actor() workflow.Actor {
	return workflow.Actor{UserID: f.owner}
}

func TestPostCreate(t *testing.T) {
	f := newPostFixture(t)
	f.initiatives.EXPECT().FindByID(gomock.Any(), f.initiative.ID).Return(f.initiative, nil)
	f.posts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	post, err := f.svc.Create(context.Background(), f.actor(), f.initiative.ID, service.CreatePostInput{Content: "شكرًا لكل المتطوعين"})
	require.NoError(t, err)
	assert.Equal(t, f.owner, post.AuthorID)
	assert.Empty(t, post.Attachments)
}

func TestAddAttachments(t *testing.T) {
	t.Run("reserves then uploads then stores", func(t *testing.T) {
		f := newPostFixture(t)
		f.expectPostLookup()
		counter := repository.AttachmentsCounter(f.initiative.ID, 5)

		gomock.InOrder(
			f.counters.EXPECT().Reserve(gomock.Any(), counter, 3).Return(3, nil),
			f.store.EXPECT().Upload(gomock.Any(), "media", gomock.Any(), pngBytes, "image/png").Return("https://cdn/a.png", nil),
			f.store.EXPECT().Upload(gomock.Any(), "media", gomock.Any(), jpegBytes, "image/jpeg").Return("https://cdn/b.jpg", nil),
			f.store.EXPECT().Upload(gomock.Any(), "media", gomock.Any(), webpBytes, "image/webp").Return("https://cdn/c.webp", nil),
			f.posts.EXPECT().AddAttachments(gomock.Any(), gomock.Len(3)).Return(nil),
		)

		got, err := f.svc.AddAttachments(context.Background(), f.actor(), f.post.ID, []service.Upload{
			{Filename: "a.png", Data: pngBytes},
			{Filename: "b.jpg", Data: jpegBytes},
			{Filename: "c.webp", Data: webpBytes},
		})
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "https://cdn/a.png", got[0].URL)
		assert.True(t, strings.HasPrefix(got[1].Path, "initiatives/"+f.initiative.ID.String()+"/posts/"+f.post.ID.String()+"/"))
		assert.True(t, strings.HasSuffix(got[1].Path, ".jpg"))
		assert.Equal(t, "image/webp", got[2].MimeType)
	})

	t.Run("rejects non-images before reserving", func(t *testing.T) {
		f := newPostFixture(t)
		f.expectPostLookup()

		_, err := f.svc.AddAttachments(context.Background(), f.actor(), f.post.ID, []service.Upload{
			{Filename: "a.png", Data: pngBytes},
			{Filename: "cv.pdf", Data: pdfBytes},
		})
		assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
	})

	t.Run("rejects oversized files", func(t *testing.T) {
		f := newPostFixture(t)
		f.expectPostLookup()
		big := append([]byte{}, pngBytes...)
		big = append(big, make([]byte, 2<<10)...)

		_, err := f.svc.AddAttachments(context.Background(), f.actor(), f.post.ID, []service.Upload{{Filename: "big.png", Data: big}})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("limit reached uploads nothing", func(t *testing.T) {
		f := newPostFixture(t)
		f.expectPostLookup()
		f.counters.EXPECT().Reserve(gomock.Any(), gomock.Any(), 2).
			Return(4, &domain.CapacityExceededError{Requested: 6, Limit: 5})

		_, err := f.svc.AddAttachments(context.Background(), f.actor(), f.post.ID, []service.Upload{
			{Filename: "a.png", Data: pngBytes},
			{Filename: "b.png", Data: pngBytes},
		})
		var capErr *domain.CapacityExceededError
		require.ErrorAs(t, err, &capErr)
		assert.Equal(t, 5, capErr.Limit)
	})

	t.Run("failed upload removes earlier objects and releases the reservation", func(t *testing.T) {
		f := newPostFixture(t)
		f.expectPostLookup()
		counter := repository.AttachmentsCounter(f.initiative.ID, 5)

		var firstPath string
		gomock.InOrder(
			f.counters.EXPECT().Reserve(gomock.Any(), counter, 2).Return(2, nil),
			f.store.EXPECT().Upload(gomock.Any(), "media", gomock.Any(), pngBytes, "image/png").
				DoAndReturn(func(_ context.Context, _, objectPath string, _ []byte, _ string) (string, error) {
					firstPath = objectPath
					return "https://cdn/a.png", nil
				}),
			f.store.EXPECT().Upload(gomock.Any(), "media", gomock.Any(), jpegBytes, "image/jpeg").
				Return("", errors.New("connection reset")),
			f.store.EXPECT().Delete(gomock.Any(), "media", gomock.Any()).
				DoAndReturn(func(_ context.Context, _, objectPath string) error {
					assert.Equal(t, firstPath, objectPath)
					return nil
				}),
			f.counters.EXPECT().Reserve(gomock.Any(), counter, -2).Return(0, nil),
		)

		_, err := f.svc.AddAttachments(context.Background(), f.actor(), f.post.ID, []service.Upload{
			{Filename: "a.png", Data: pngBytes},
			{Filename: "b.jpg", Data: jpegBytes},
		})
		assert.ErrorIs(t, err, domain.ErrPersistence)
	})

	t.Run("strangers cannot attach", func(t *testing.T) {
		f := newPostFixture(t)
		f.expectPostLookup()

		_, err := f.svc.AddAttachments(context.Background(), individual(), f.post.ID, []service.Upload{{Filename: "a.png", Data: pngBytes}})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestRemoveAttachment(t *testing.T) {
	newAttachment := func(f postFixture) *model.PostAttachment {
		return &model.PostAttachment{ID: uuid.New(), PostID: f.post.ID, InitiativeID: f.initiative.ID, Bucket: "media", Path: "initiatives/x/a.png"}
	}

	t.Run("row goes before the object", func(t *testing.T) {
		f := newPostFixture(t)
		attachment := newAttachment(f)
		f.posts.EXPECT().FindAttachment(gomock.Any(), attachment.ID).Return(attachment, nil)
		f.initiatives.EXPECT().FindByID(gomock.Any(), f.initiative.ID).Return(f.initiative, nil)
		gomock.InOrder(
			f.posts.EXPECT().DeleteAttachment(gomock.Any(), attachment).Return(nil),
			f.store.EXPECT().Delete(gomock.Any(), "media", attachment.Path).Return(nil),
		)

		require.NoError(t, f.svc.RemoveAttachment(context.Background(), f.actor(), attachment.ID))
	})

	t.Run("failed row delete keeps the object", func(t *testing.T) {
		f := newPostFixture(t)
		attachment := newAttachment(f)
		f.posts.EXPECT().FindAttachment(gomock.Any(), attachment.ID).Return(attachment, nil)
		f.initiatives.EXPECT().FindByID(gomock.Any(), f.initiative.ID).Return(f.initiative, nil)
		f.posts.EXPECT().DeleteAttachment(gomock.Any(), attachment).Return(domain.ErrPersistence)

		err := f.svc.RemoveAttachment(context.Background(), f.actor(), attachment.ID)
		assert.ErrorIs(t, err, domain.ErrPersistence)
	})

	t.Run("object store failure is not reported", func(t *testing.T) {
		f := newPostFixture(t)
		attachment := newAttachment(f)
		f.posts.EXPECT().FindAttachment(gomock.Any(), attachment.ID).Return(attachment, nil)
		f.initiatives.EXPECT().FindByID(gomock.Any(), f.initiative.ID).Return(f.initiative, nil)
		f.posts.EXPECT().DeleteAttachment(gomock.Any(), attachment).Return(nil)
		f.store.EXPECT().Delete(gomock.Any(), "media", attachment.Path).Return(errors.New("minio down"))

		assert.NoError(t, f.svc.RemoveAttachment(context.Background(), f.actor(), attachment.ID))
	})
}

func TestPostDelete(t *testing.T) {
	t.Run("rows go before the objects", func(t *testing.T) {
		f := newPostFixture(t)
		f.post.Attachments = []model.PostAttachment{
			{ID: uuid.New(), Bucket: "media", Path: "initiatives/x/a.png"},
			{ID: uuid.New(), Bucket: "media", Path: "initiatives/x/b.png"},
		}
		f.expectPostLookup()
		gomock.InOrder(
			f.posts.EXPECT().Delete(gomock.Any(), f.post).Return(nil),
			f.store.EXPECT().Delete(gomock.Any(), "media", "initiatives/x/a.png").Return(errors.New("minio down")),
			f.store.EXPECT().Delete(gomock.Any(), "media", "initiatives/x/b.png").Return(nil),
		)

		require.NoError(t, f.svc.Delete(context.Background(), f.actor(), f.post.ID))
	})

	t.Run("failed row delete keeps the objects", func(t *testing.T) {
		f := newPostFixture(t)
		f.post.Attachments = []model.PostAttachment{{ID: uuid.New(), Bucket: "media", Path: "initiatives/x/a.png"}}
		f.expectPostLookup()
		f.posts.EXPECT().Delete(gomock.Any(), f.post).Return(domain.ErrPostNotFound)

		err := f.svc.Delete(context.Background(), f.actor(), f.post.ID)
		assert.ErrorIs(t, err, domain.ErrPostNotFound)
	})
}

func TestPostList_DraftHidden(t *testing.T) {
	f := newPostFixture(t)
	f.initiative.Status = workflow.InitiativeDraft
	f.initiatives.EXPECT().FindByID(gomock.Any(), f.initiative.ID).Return(f.initiative, nil)

	_, _, err := f.svc.List(context.Background(), individual(), f.initiative.ID, repositoryPage())
	assert.ErrorIs(t, err, domain.ErrInitiativeNotFound)
}
