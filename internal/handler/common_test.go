package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dangerclosesec/mubadara/internal/domain"
	"github.com/dangerclosesec/mubadara/internal/service"
	"github.com/dangerclosesec/mubadara/internal/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeError_EveryModerationFailureIsDistinct(t *testing.T) {
	failures := []error{
		domain.ErrInitiativeNotFound,
		domain.ErrIllegalTransition,
		domain.ErrReasonRequired,
		domain.ErrUnauthorized,
		&domain.CapacityExceededError{Requested: 11, Limit: 10},
		domain.ErrConflict,
		domain.ErrPersistence,
		context.DeadlineExceeded,
	}

	codes := map[string]bool{}
	messages := map[string]bool{}
	for _, err := range failures {
		e := describeError(fmt.Errorf("wrapped: %w", err))
		assert.NotEqual(t, "internal", e.code, "%v", err)
		assert.False(t, codes[e.code], "duplicate code %s", e.code)
		assert.False(t, messages[e.message], "duplicate message for %v", err)
		codes[e.code] = true
		messages[e.message] = true
	}
}

func TestDescribeError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
		field  string
	}{
		{&service.ValidationError{Field: "title", Tag: "required"}, http.StatusBadRequest, "invalid_input", "title"},
		{domain.ErrReasonRequired, http.StatusBadRequest, "reason_required", "reason"},
		{domain.ErrOrganizationInactive, http.StatusForbidden, "organization_not_approved", ""},
		{domain.ErrPostNotFound, http.StatusNotFound, "not_found", ""},
		{domain.ErrEmailAlreadyExists, http.StatusConflict, "email_taken", "email"},
		{domain.ErrConflict, http.StatusPreconditionFailed, "conflict", ""},
		{domain.ErrUnsupportedFileType, http.StatusUnsupportedMediaType, "unsupported_file_type", "files"},
		{&domain.CapacityExceededError{Requested: 6, Limit: 5}, http.StatusUnprocessableEntity, "capacity_exceeded", ""},
		{fmt.Errorf("%w: db down", domain.ErrPersistence), http.StatusServiceUnavailable, "persistence", ""},
		{errors.New("boom"), http.StatusInternalServerError, "internal", ""},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			e := describeError(tc.err)
			assert.Equal(t, tc.status, e.status)
			assert.Equal(t, tc.code, e.code)
			assert.Equal(t, tc.field, e.field)
			assert.NotEmpty(t, e.message)
		})
	}
}

func TestDescribeError_StoreTimeoutIsNotRetryable(t *testing.T) {
	err := fmt.Errorf("%w: %s: %w", domain.ErrPersistence, "updating organization status", context.DeadlineExceeded)

	e := describeError(fmt.Errorf("updating organization: %w", err))
	assert.Equal(t, http.StatusGatewayTimeout, e.status)
	assert.Equal(t, "timeout", e.code)

	e = describeError(fmt.Errorf("%w: loading initiative: %w", domain.ErrPersistence, context.Canceled))
	assert.Equal(t, http.StatusGatewayTimeout, e.status)

	e = describeError(fmt.Errorf("%w: connection refused", domain.ErrPersistence))
	assert.Equal(t, http.StatusServiceUnavailable, e.status)
}

func TestDescribeError_CapacityMessageNamesTheLimit(t *testing.T) {
	e := describeError(&domain.CapacityExceededError{Requested: 6, Limit: 5})
	assert.Contains(t, e.message, "5")
}

func TestParsePage(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		page, ok := parsePage(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		require.True(t, ok)
		assert.Equal(t, 0, page.Offset)
		assert.Equal(t, 20, page.Limit)
	})

	t.Run("clamped", func(t *testing.T) {
		page, ok := parsePage(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/?limit=500&offset=40", nil))
		require.True(t, ok)
		assert.Equal(t, 40, page.Offset)
		assert.Equal(t, 100, page.Limit)
	})

	t.Run("garbage", func(t *testing.T) {
		w := httptest.NewRecorder()
		_, ok := parsePage(w, httptest.NewRequest(http.MethodGet, "/?limit=ten", nil))
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestParseFilters(t *testing.T) {
	machine := workflow.DefaultMachine()

	req := httptest.NewRequest(http.MethodGet, "/?status=published&city=%D8%AC%D8%AF%D8%A9&q=beach&has_available_spots=true", nil)
	filters, ok := parseFilters(httptest.NewRecorder(), req, machine, workflow.KindInitiative)
	require.True(t, ok)
	assert.Equal(t, workflow.Filters{
		Status:            workflow.InitiativePublished,
		Search:            "beach",
		City:              "جدة",
		HasAvailableSpots: true,
	}, filters)

	w := httptest.NewRecorder()
	_, ok = parseFilters(w, httptest.NewRequest(http.MethodGet, "/?status=approved", nil), machine, workflow.KindInitiative)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
