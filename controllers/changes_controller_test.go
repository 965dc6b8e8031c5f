package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/blogem/adminaudit/models"
	"github.com/blogem/adminaudit/repositories"
	"github.com/blogem/adminaudit/repositories/mocks"
	"github.com/blogem/adminaudit/services"
)

func TestParseChangeFilter(t *testing.T) {
	q := url.Values{
		"model":      {"Article"},
		"key":        {"42"},
		"admin_id":   {"7"},
		"action":     {"updated"},
		"created_at": {"2024-03-01"},
		"page":       {"3"},
	}

	filter, page, err := parseChangeFilter(q)

	require.NoError(t, err)
	assert.Equal(t, 3, page)
	assert.Equal(t, "Article", filter.EntityType)
	assert.Equal(t, "42", filter.EntityKey)
	assert.Equal(t, int64(7), filter.AdminID)
	assert.Equal(t, models.ActionUpdated, filter.Action)
	require.NotNil(t, filter.Date)
	assert.Equal(t, "2024-03-01", models.FormatDate(*filter.Date))

	// Filters survive being written back into pagination links
	again, _, err := parseChangeFilter(mustParseQuery(t, filterQuery(filter)))
	require.NoError(t, err)
	assert.Equal(t, filter, again)
}

func TestParseChangeFilter_Defaults(t *testing.T) {
	filter, page, err := parseChangeFilter(url.Values{})

	require.NoError(t, err)
	assert.Equal(t, 1, page)
	assert.Equal(t, models.ChangeFilter{}, filter)
	assert.Empty(t, filterQuery(filter))
}

func TestParseChangeFilter_Invalid(t *testing.T) {
	for _, q := range []url.Values{
		{"admin_id": {"jane"}},
		{"created_at": {"01/03/2024"}},
		{"page": {"0"}},
		{"action": {"restored"}},
	} {
		_, _, err := parseChangeFilter(q)
		assert.Error(t, err, q.Encode())
	}
}

func newChangesRouter(t *testing.T) (http.Handler, *mocks.MockChangeRepository) {
	changeRepo := mocks.NewMockChangeRepository(t)
	changes := services.NewChangeService(changeRepo, mocks.NewMockAdminRepository(t), nil, nil, nil, nil)
	logger, _ := test.NewNullLogger()
	ctrl := NewChangesController(&services.Services{Changes: changes}, logger)

	r := chi.NewRouter()
	r.Get("/changes/export.xlsx", ctrl.Export)
	r.Get("/changes/{id}", ctrl.Show)
	return r, changeRepo
}

func TestChangesController_Show(t *testing.T) {
	router, changeRepo := newChangesRouter(t)
	title := "Hello"

	changeRepo.EXPECT().GetByID(mock.Anything, int64(5)).Return(&models.Change{
		ID:         5,
		EntityType: "Article",
		EntityKey:  "42",
		Action:     models.ActionUpdated,
		Title:      &title,
		Changed:    models.ChangedFields{"published_at": "2024-03-01", "updated_at": "2024-03-01"},
		AdminEmail: "jane@example.com",
		CreatedAt:  time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/changes/5", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Title      string         `json:"title"`
		Admin      string         `json:"admin"`
		CreatedAt  string         `json:"created_at"`
		Attributes map[string]any `json:"attributes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Hello", body.Title)
	assert.Equal(t, "jane@example.com", body.Admin)
	assert.Equal(t, "2024-03-01 12:00", body.CreatedAt)
	assert.Equal(t, map[string]any{"Published At": "2024-03-01"}, body.Attributes)
}

func TestChangesController_Show_NotFound(t *testing.T) {
	router, changeRepo := newChangesRouter(t)

	changeRepo.EXPECT().GetByID(mock.Anything, int64(9)).
		RunAndReturn(func(_ context.Context, id int64) (*models.Change, error) {
			return nil, fmt.Errorf("change with ID %d %w", id, repositories.ErrNotFound)
		})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/changes/9", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChangesController_Show_InvalidID(t *testing.T) {
	router, _ := newChangesRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/changes/abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChangesController_Export(t *testing.T) {
	router, changeRepo := newChangesRouter(t)

	changeRepo.EXPECT().Find(mock.Anything, models.ChangeFilter{EntityType: "Article"}).Return([]models.Change{{
		ID:         1,
		EntityType: "Article",
		EntityKey:  "42",
		Action:     models.ActionCreated,
		AdminEmail: "jane@example.com",
		CreatedAt:  time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/changes/export.xlsx?model=Article", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="changes.xlsx"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, fmt.Sprint(rec.Body.Len()), rec.Header().Get("Content-Length"))
	assert.NotZero(t, rec.Body.Len())
}

func TestChangesController_Export_Failure(t *testing.T) {
	router, changeRepo := newChangesRouter(t)

	changeRepo.EXPECT().Find(mock.Anything, mock.Anything).Return(nil, errors.New("database is locked"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/changes/export.xlsx", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Disposition"))
	assert.NotContains(t, rec.Header().Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, rec.Body.String(), "database is locked")
}

func mustParseQuery(t *testing.T, raw string) url.Values {
	t.Helper()
	q, err := url.ParseQuery(raw)
	require.NoError(t, err)
	return q
}
