package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"preview-tracker/internal/dto"
	"preview-tracker/internal/model"
	"preview-tracker/internal/service"
	pkgErrors "preview-tracker/pkg/errors"
	"preview-tracker/pkg/utils"
)

type stubPreviewService struct {
	registered []*dto.RegisterPreviewRequest
	updated    []*dto.UpdatePreviewStatusRequest
	previews   []*model.Preview
	err        error
}

var _ service.PreviewService = (*stubPreviewService)(nil)

func (s *stubPreviewService) RegisterOrUpdate(_ context.Context, req *dto.RegisterPreviewRequest) error {
	s.registered = append(s.registered, req)
	return s.err
}

func (s *stubPreviewService) SetStatus(_ context.Context, req *dto.UpdatePreviewStatusRequest) error {
	s.updated = append(s.updated, req)
	return s.err
}

func (s *stubPreviewService) List(_ context.Context) ([]*model.Preview, error) {
	return s.previews, s.err
}

func newTestEngine(svc service.PreviewService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewPreviewHandler(svc)
	r.POST("/api/previews", h.Register)
	r.PATCH("/api/previews", h.UpdateStatus)
	r.GET("/api/previews", h.List)
	return r
}

func do(r http.Handler, method, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/api/previews", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var resp utils.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestRegisterSuccess(t *testing.T) {
	svc := &stubPreviewService{}
	r := newTestEngine(svc)

	w := do(r, http.MethodPost, `{
		"build_id": "b-1",
		"repo": "org/repo",
		"pr_number": 42,
		"commit_sha": "abc123",
		"branch": "feature-x",
		"actor": "alice",
		"frontend_url": "https://pr-42.example.com"
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	require.Len(t, svc.registered, 1)
	assert.Equal(t, "b-1", svc.registered[0].BuildID)
	assert.Equal(t, 42, *svc.registered[0].PRNumber)
	assert.Empty(t, svc.registered[0].Status)
}

func TestRegisterFieldErrorsReachService(t *testing.T) {
	svc := &stubPreviewService{err: pkgErrors.ErrMissingBuildID}
	r := newTestEngine(svc)

	w := do(r, http.MethodPost, `{"repo": "org/repo"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.OK)
	assert.Equal(t, "Missing build_id", resp.Error)
	assert.Len(t, svc.registered, 1)
}

func TestRegisterMalformedJSON(t *testing.T) {
	svc := &stubPreviewService{}
	r := newTestEngine(svc)

	w := do(r, http.MethodPost, `{"build_id": `)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.OK)
	assert.Equal(t, "Invalid JSON body", resp.Error)
	assert.Empty(t, svc.registered)
}

func TestRegisterStorageFailure(t *testing.T) {
	svc := &stubPreviewService{err: pkgErrors.Storage("upsert preview failed", errors.New("connection refused"))}
	r := newTestEngine(svc)

	w := do(r, http.MethodPost, `{"build_id":"b-1","repo":"r","pr_number":1,"commit_sha":"c","branch":"b","actor":"a","frontend_url":"u"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.OK)
	assert.Equal(t, "upsert preview failed", resp.Error)
	assert.Empty(t, resp.Detail)
}

func TestUpdateStatusSuccess(t *testing.T) {
	svc := &stubPreviewService{}
	r := newTestEngine(svc)

	w := do(r, http.MethodPatch, `{"build_id":"b-1","status":"down"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	require.Len(t, svc.updated, 1)
	assert.Equal(t, model.PreviewStatusDown, svc.updated[0].Status)
}

func TestUpdateStatusMissingFields(t *testing.T) {
	r := newTestEngine(service.NewPreviewService(nil))

	for _, body := range []string{`{"build_id":"b-1"}`, `{"status":"down"}`, `{}`} {
		w := do(r, http.MethodPatch, body)

		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		resp := decodeResponse(t, w)
		assert.False(t, resp.OK)
		assert.Equal(t, "Missing build_id or status", resp.Error)
	}
}

func TestUpdateStatusUnknownValue(t *testing.T) {
	r := newTestEngine(service.NewPreviewService(nil))

	w := do(r, http.MethodPatch, `{"build_id":"b-1","status":"paused"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "Invalid status", resp.Error)
	assert.Equal(t, "field 'status' must be one of: ready down error", resp.Detail)
}

func TestListReturnsArray(t *testing.T) {
	created := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	svc := &stubPreviewService{previews: []*model.Preview{{
		BaseModel:   model.BaseModel{ID: 1, CreatedAt: created, UpdatedAt: created},
		BuildID:     "b-1",
		Repo:        "org/repo",
		PRNumber:    42,
		CommitSHA:   "abc123",
		Branch:      "feature-x",
		Actor:       "alice",
		FrontendURL: "https://pr-42.example.com",
		Status:      model.PreviewStatusReady,
	}}}
	r := newTestEngine(svc)

	w := do(r, http.MethodGet, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{
		"id": 1,
		"created_at": "2026-10-01T12:00:00Z",
		"updated_at": "2026-10-01T12:00:00Z",
		"build_id": "b-1",
		"repo": "org/repo",
		"pr_number": 42,
		"commit_sha": "abc123",
		"branch": "feature-x",
		"actor": "alice",
		"frontend_url": "https://pr-42.example.com",
		"status": "ready"
	}]`, w.Body.String())
}

func TestListEmptyIsArray(t *testing.T) {
	r := newTestEngine(&stubPreviewService{previews: []*model.Preview{}})

	w := do(r, http.MethodGet, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListStorageFailure(t *testing.T) {
	r := newTestEngine(&stubPreviewService{err: pkgErrors.Storage("list previews failed", errors.New("timeout"))})

	w := do(r, http.MethodGet, "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"ok":false,"error":"list previews failed"}`, w.Body.String())
}
