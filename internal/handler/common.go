package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dangerclosesec/mubadara/internal/domain"
	"github.com/dangerclosesec/mubadara/internal/repository"
	"github.com/dangerclosesec/mubadara/internal/service"
	"github.com/dangerclosesec/mubadara/internal/workflow"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const maxJSONBody = 1 << 20

type ErrorResponse struct { // TypeGen: ErrorResponse
	BaseResponse
	Error   string    `json:"error"`
	Details *[]string `json:"details,omitempty"`
	Code    *string   `json:"error_code,omitempty"`
	Field   *string   `json:"field,omitempty"`
	Link    *string   `json:"error_link,omitempty"`
}

type BaseResponse struct { // TypeGen: DefaultResponse
	Ok bool `json:"ok"`
}

// DataResponse wraps a single resource.
type DataResponse[T any] struct {
	BaseResponse
	Data T `json:"data"`
}

// ListResponse wraps one page of a listing together with the unpaged total.
type ListResponse[T any] struct {
	BaseResponse
	Data   []T   `json:"data"`
	Total  int64 `json:"total"`
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
}

func ok[T any](data T) DataResponse[T] {
	return DataResponse[T]{BaseResponse: BaseResponse{Ok: true}, Data: data}
}

func list[T any](data []T, total int64, page repository.Page) ListResponse[T] {
	if data == nil {
		data = []T{}
	}
	return ListResponse[T]{BaseResponse: BaseResponse{Ok: true}, Data: data, Total: total, Offset: page.Offset, Limit: page.Limit}
}

// apiError is how a failure is presented to clients.
type apiError struct {
	status  int
	code    string
	message string
	field   string
}

// errorTable is checked in order. Specific errors come before the families
// they wrap.
var errorTable = []struct {
	target error
	apiError
}{
	{domain.ErrReasonRequired, apiError{http.StatusBadRequest, "reason_required", "يجب ذكر سبب لهذا الإجراء", "reason"}},
	{domain.ErrPasswordsDoNotMatch, apiError{http.StatusBadRequest, "passwords_mismatch", "كلمتا المرور غير متطابقتين", "confirm_password"}},
	{domain.ErrInvalidCredentials, apiError{http.StatusUnauthorized, "invalid_credentials", "البريد الإلكتروني أو كلمة المرور غير صحيحة", ""}},
	{domain.ErrOrganizationInactive, apiError{http.StatusForbidden, "organization_not_approved", "الجهة لم تعتمد بعد", ""}},
	{domain.ErrUnauthorized, apiError{http.StatusForbidden, "unauthorized", "ليست لديك صلاحية لتنفيذ هذا الإجراء", ""}},
	{domain.ErrUserNotFound, apiError{http.StatusNotFound, "not_found", "المستخدم غير موجود", ""}},
	{domain.ErrOrganizationNotFound, apiError{http.StatusNotFound, "not_found", "الجهة غير موجودة", ""}},
	{domain.ErrInitiativeNotFound, apiError{http.StatusNotFound, "not_found", "المبادرة غير موجودة", ""}},
	{domain.ErrParticipantNotFound, apiError{http.StatusNotFound, "not_found", "طلب المشاركة غير موجود", ""}},
	{domain.ErrPostNotFound, apiError{http.StatusNotFound, "not_found", "المنشور غير موجود", ""}},
	{domain.ErrAttachmentNotFound, apiError{http.StatusNotFound, "not_found", "المرفق غير موجود", ""}},
	{domain.ErrNotFound, apiError{http.StatusNotFound, "not_found", "العنصر المطلوب غير موجود", ""}},
	{domain.ErrIllegalTransition, apiError{http.StatusConflict, "illegal_transition", "لا يمكن الانتقال إلى هذه الحالة من الحالة الحالية", ""}},
	{domain.ErrEmailAlreadyExists, apiError{http.StatusConflict, "email_taken", "البريد الإلكتروني مستخدم مسبقًا", "email"}},
	{domain.ErrInitiativeNotPublished, apiError{http.StatusConflict, "initiative_not_published", "المبادرة غير منشورة", ""}},
	{domain.ErrAlreadyParticipant, apiError{http.StatusConflict, "already_participant", "لقد طلبت الانضمام إلى هذه المبادرة مسبقًا", ""}},
	{domain.ErrParticipantState, apiError{http.StatusConflict, "participant_state", "لا يسمح وضع طلب المشاركة بهذا الإجراء", ""}},
	{domain.ErrConflict, apiError{http.StatusPreconditionFailed, "conflict", "تم تعديل العنصر من قبل مستخدم آخر، أعد تحميله ثم حاول مرة أخرى", ""}},
	{domain.ErrUnsupportedFileType, apiError{http.StatusUnsupportedMediaType, "unsupported_file_type", "نوع الملف غير مدعوم، يسمح بصور JPEG وPNG وWebP فقط", "files"}},
	{domain.ErrCapacityExceeded, apiError{http.StatusUnprocessableEntity, "capacity_exceeded", "تم الوصول إلى الحد الأقصى", ""}},
	// A store timeout is also a persistence error; its write may have committed.
	{context.DeadlineExceeded, timeoutError},
	{context.Canceled, timeoutError},
	{domain.ErrPersistence, apiError{http.StatusServiceUnavailable, "persistence", "تعذر الوصول إلى البيانات، حاول مرة أخرى", ""}},
}

var timeoutError = apiError{http.StatusGatewayTimeout, "timeout", "انتهت مهلة الطلب، أعد تحميل الصفحة للتحقق من نتيجته", ""}

func describeError(err error) apiError {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		return apiError{http.StatusBadRequest, "invalid_input", "قيمة غير صالحة في الحقل " + ve.Field, ve.Field}
	}

	var capErr *domain.CapacityExceededError
	if errors.As(err, &capErr) {
		return apiError{http.StatusUnprocessableEntity, "capacity_exceeded",
			fmt.Sprintf("تم الوصول إلى الحد الأقصى (%d)", capErr.Limit), ""}
	}

	for _, e := range errorTable {
		if errors.Is(err, e.target) {
			return e.apiError
		}
	}

	if errors.Is(err, domain.ErrInvalidInput) {
		return apiError{http.StatusBadRequest, "invalid_input", "بيانات الطلب غير صالحة", ""}
	}
	return apiError{http.StatusInternalServerError, "internal", "حدث خطأ غير متوقع", ""}
}

// respondWithDomainError maps err to its status, code and localized message.
// Server-side failures are logged with the request id.
func respondWithDomainError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	e := describeError(err)
	if e.status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), msg, "error", err, "code", e.code, "requestID", chimw.GetReqID(r.Context()))
	} else {
		slog.DebugContext(r.Context(), msg, "error", err, "code", e.code, "requestID", chimw.GetReqID(r.Context()))
	}

	resp := ErrorResponse{Error: e.message, Code: &e.code}
	if e.field != "" {
		resp.Field = &e.field
	}
	respondWithJSON(w, e.status, resp)
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, status int, code, message string) {
	respondWithJSON(w, status, ErrorResponse{Error: message, Code: &code})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	// Sets content type header
	w.Header().Set("Content-Type", "application/json")

	// Sets the HTTP status code
	w.WriteHeader(code)

	// Encodes the response
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// If encoding fails, logs the error and sends a plain text response
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// decodeJSON reads a JSON body into dst, answering 400 itself on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	defer r.Body.Close()
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_payload", "تعذر قراءة بيانات الطلب")
		return false
	}
	return true
}

// uuidParam parses a UUID route parameter, answering 404 itself when it is
// malformed.
func uuidParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		respondWithError(w, http.StatusNotFound, "not_found", "العنصر المطلوب غير موجود")
		return uuid.Nil, false
	}
	return id, true
}

func parsePage(w http.ResponseWriter, r *http.Request) (repository.Page, bool) {
	var page repository.Page
	query := r.URL.Query()

	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			respondWithError(w, http.StatusBadRequest, "invalid_input", "قيمة limit غير صالحة")
			return page, false
		}
		page.Limit = limit
	}

	if offsetStr := query.Get("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			respondWithError(w, http.StatusBadRequest, "invalid_input", "قيمة offset غير صالحة")
			return page, false
		}
		page.Offset = offset
	}

	return page.Normalize(), true
}

// parseFilters reads listing filters for kind from the query string. A
// status unknown to kind is refused rather than silently matching nothing.
func parseFilters(w http.ResponseWriter, r *http.Request, machine *workflow.StatusMachine, kind workflow.Kind) (workflow.Filters, bool) {
	query := r.URL.Query()
	filters := workflow.Filters{
		Search:        query.Get("q"),
		Category:      query.Get("category"),
		City:          query.Get("city"),
		OrganizerType: query.Get("organizer_type"),
	}

	if status := query.Get("status"); status != "" {
		if !machine.Valid(kind, workflow.Status(status)) {
			respondWithError(w, http.StatusBadRequest, "invalid_input", "قيمة status غير صالحة")
			return filters, false
		}
		filters.Status = workflow.Status(status)
	}

	if spots := query.Get("has_available_spots"); spots != "" {
		v, err := strconv.ParseBool(spots)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid_input", "قيمة has_available_spots غير صالحة")
			return filters, false
		}
		filters.HasAvailableSpots = v
	}

	return filters, true
}

// ReasonRequest carries the free-text reason of a moderation decision.
type ReasonRequest struct {
	Reason string `json:"reason"`
}

// TransitionsResponse lists the statuses the caller may move an entity to.
type TransitionsResponse struct {
	BaseResponse
	Transitions []workflow.Status `json:"transitions"`
}
