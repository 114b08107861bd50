package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/dangerclosesec/mubadara/internal/middleware"
	"github.com/dangerclosesec/mubadara/internal/model"
	"github.com/dangerclosesec/mubadara/internal/service"
)

// multipartOverhead is allowed on top of the attachment bytes for headers
// and boundaries.
const multipartOverhead = 1 << 20

type PostHandler struct {
	service *service.PostService
}

func NewPostHandler(service *service.PostService) *PostHandler {
	return &PostHandler{service: service}
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	initiativeID, valid := uuidParam(w, r, "initiativeID")
	if !valid {
		return
	}

	var input service.CreatePostInput
	if !decodeJSON(w, r, &input) {
		return
	}

	post, err := h.service.Create(r.Context(), middleware.ActorFrom(r.Context()), initiativeID, input)
	if err != nil {
		respondWithDomainError(w, r, "creating post", err)
		return
	}

	respondWithJSON(w, http.StatusCreated, ok(post))
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	initiativeID, valid := uuidParam(w, r, "initiativeID")
	if !valid {
		return
	}
	page, valid := parsePage(w, r)
	if !valid {
		return
	}

	posts, total, err := h.service.List(r.Context(), middleware.ActorFrom(r.Context()), initiativeID, page)
	if err != nil {
		respondWithDomainError(w, r, "listing posts", err)
		return
	}

	respondWithJSON(w, http.StatusOK, list(posts, total, page))
}

func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, valid := uuidParam(w, r, "postID")
	if !valid {
		return
	}

	post, err := h.service.Get(r.Context(), middleware.ActorFrom(r.Context()), id)
	if err != nil {
		respondWithDomainError(w, r, "loading post", err)
		return
	}

	respondWithJSON(w, http.StatusOK, ok(post))
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, valid := uuidParam(w, r, "postID")
	if !valid {
		return
	}

	if err := h.service.Delete(r.Context(), middleware.ActorFrom(r.Context()), id); err != nil {
		respondWithDomainError(w, r, "deleting post", err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// AddAttachments accepts a multipart form whose "files" parts are images.
func (h *PostHandler) AddAttachments(w http.ResponseWriter, r *http.Request) {
	id, valid := uuidParam(w, r, "postID")
	if !valid {
		return
	}

	limit := h.service.MaxUploadBytes() + multipartOverhead
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := r.ParseMultipartForm(limit); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondWithError(w, http.StatusRequestEntityTooLarge, "payload_too_large", "حجم الملفات يتجاوز الحد المسموح")
			return
		}
		respondWithError(w, http.StatusBadRequest, "invalid_payload", "تعذر قراءة الملفات المرفقة")
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		respondWithError(w, http.StatusBadRequest, "invalid_input", "لم يتم إرفاق أي ملف")
		return
	}

	uploads := make([]service.Upload, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid_payload", "تعذر قراءة الملفات المرفقة")
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid_payload", "تعذر قراءة الملفات المرفقة")
			return
		}
		uploads = append(uploads, service.Upload{Filename: fh.Filename, Data: data})
	}

	attachments, err := h.service.AddAttachments(r.Context(), middleware.ActorFrom(r.Context()), id, uploads)
	if err != nil {
		respondWithDomainError(w, r, "adding post attachments", err)
		return
	}

	if attachments == nil {
		attachments = []*model.PostAttachment{}
	}
	respondWithJSON(w, http.StatusCreated, ok(attachments))
}

func (h *PostHandler) RemoveAttachment(w http.ResponseWriter, r *http.Request) {
	id, valid := uuidParam(w, r, "attachmentID")
	if !valid {
		return
	}

	if err := h.service.RemoveAttachment(r.Context(), middleware.ActorFrom(r.Context()), id); err != nil {
		respondWithDomainError(w, r, "removing post attachment", err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
