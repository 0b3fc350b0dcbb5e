package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "research-graph/errors"
	"research-graph/web/services"
	"research-graph/web/types"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type failingService struct {
	err error
}

func (f failingService) Search(context.Context, services.SearchInput) ([]types.PaperResult, error) {
	return nil, f.err
}

func (f failingService) SearchPaper(context.Context, services.SearchPaperInput) ([]types.PaperResult, error) {
	return nil, f.err
}

func (f failingService) Chat(context.Context, services.ChatInput) (*types.ChatResponse, error) {
	return nil, f.err
}

func (f failingService) Mode() string { return "rag" }

func serveSearch(t *testing.T, err error) (*httptest.ResponseRecorder, *observer.ObservedLogs) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)
	h := NewPaperHandler(failingService{err: err}, zap.New(core))

	router := gin.New()
	router.POST("/api/search", h.Search)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(`{"query":"bone"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w, logs
}

func TestServiceErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"invalid", apperrors.InvalidInputf("bad k"), http.StatusBadRequest,
			`{"error":"Invalid request","message":"bad k"}`},
		{"not found", apperrors.WrapErrorf(apperrors.ErrNotFound, "paper x"), http.StatusNotFound,
			`{"error":"Not found","message":"Paper with specified ID not found"}`},
		{"other", errors.New("boom"), http.StatusInternalServerError,
			`{"error":"Internal server error","message":"Failed to process search request"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := serveSearch(t, tt.err)
			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

func TestUnavailableUpstreamIsFlaggedInLogs(t *testing.T) {
	err := fmt.Errorf("%w: summary: %w", apperrors.ErrLLMCommunication, apperrors.ErrServiceUnavailable)
	w, logs := serveSearch(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	entries := logs.FilterMessage("Request failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, true, entries[0].ContextMap()["upstream_unavailable"])

	_, logs = serveSearch(t, errors.New("boom"))
	entries = logs.FilterMessage("Request failed").All()
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].ContextMap(), "upstream_unavailable")
}
