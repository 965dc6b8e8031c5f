package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/blogem/adminaudit/models"
	"github.com/blogem/adminaudit/repositories"
	"github.com/blogem/adminaudit/services"
	"github.com/blogem/adminaudit/userctx"
)

// changesPerPage is the page size of the changes listing
const changesPerPage = 50

// ChangesController serves the change log
type ChangesController struct {
	renderer
	services *services.Services
}

// NewChangesController creates a new changes controller
func NewChangesController(services *services.Services, logger logrus.FieldLogger) *ChangesController {
	return &ChangesController{
		renderer: newRenderer(logger),
		services: services,
	}
}

// Index handles GET /changes
func (c *ChangesController) Index(w http.ResponseWriter, r *http.Request) {
	filter, page, err := parseChangeFilter(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	filter.Limit = changesPerPage
	filter.Offset = (page - 1) * changesPerPage

	ctx := r.Context()

	changes, err := c.services.Changes.GetChanges(ctx, filter)
	if err != nil {
		http.Error(w, "Failed to load changes: "+err.Error(), http.StatusInternalServerError)
		return
	}

	total, err := c.services.Changes.CountChanges(ctx, filter)
	if err != nil {
		http.Error(w, "Failed to count changes: "+err.Error(), http.StatusInternalServerError)
		return
	}

	actions, err := c.services.Changes.GetActions(ctx)
	if err != nil {
		http.Error(w, "Failed to load actions: "+err.Error(), http.StatusInternalServerError)
		return
	}

	admins, err := c.services.Changes.GetAdmins(ctx)
	if err != nil {
		http.Error(w, "Failed to load admins: "+err.Error(), http.StatusInternalServerError)
		return
	}

	templateData := models.PageData{
		Title:       "Changes",
		CurrentPage: "changes",
		Admin:       userctx.GetAdmin(ctx),
		Data: struct {
			Changes []models.Change
			Total   int
			Page    int
			HasMore bool
			Filter  models.ChangeFilter
			Query   string
			Actions []models.Action
			Admins  map[int64]string
		}{
			Changes: changes,
			Total:   total,
			Page:    page,
			HasMore: page*changesPerPage < total,
			Filter:  filter,
			Query:   filterQuery(filter),
			Actions: actions,
			Admins:  admins,
		},
	}

	c.renderTemplate(w, "changes", "templates/changes.html", templateData)
}

// Show handles GET /changes/{id}, returning the fields shown in the change modal
func (c *ChangesController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid change ID", http.StatusBadRequest)
		return
	}

	change, err := c.services.Changes.GetChange(r.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		http.Error(w, "Change not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to load change: "+err.Error(), http.StatusInternalServerError)
		return
	}

	c.renderJSON(w, http.StatusOK, struct {
		ID         int64          `json:"id"`
		Model      string         `json:"model"`
		Key        string         `json:"key"`
		Action     models.Action  `json:"action"`
		Title      string         `json:"title"`
		Admin      string         `json:"admin"`
		Deleted    bool           `json:"deleted"`
		CreatedAt  string         `json:"created_at"`
		Attributes map[string]any `json:"attributes"`
	}{
		ID:         change.ID,
		Model:      change.EntityType,
		Key:        change.EntityKey,
		Action:     change.Action,
		Title:      change.TitleOrKey(),
		Admin:      change.AdminEmail,
		Deleted:    change.Deleted,
		CreatedAt:  models.FormatDateTime(change.CreatedAt),
		Attributes: change.DisplayAttributes(),
	})
}

// Export handles GET /changes/export.xlsx
func (c *ChangesController) Export(w http.ResponseWriter, r *http.Request) {
	filter, _, err := parseChangeFilter(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Build the whole workbook first so a failure is reported as an error page, not a download
	var buf bytes.Buffer
	if err := c.services.Changes.Export(r.Context(), filter, &buf); err != nil {
		c.logger.WithError(err).Error("Failed to export changes")
		http.Error(w, "Failed to export changes: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="changes.xlsx"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))

	if _, err := buf.WriteTo(w); err != nil {
		c.logger.WithError(err).Warn("Failed to write export")
	}
}

// parseChangeFilter reads listing filters from the query string:
// model, key, admin_id, action, created_at (YYYY-MM-DD) and page
func parseChangeFilter(q url.Values) (models.ChangeFilter, int, error) {
	filter := models.ChangeFilter{
		EntityType: q.Get("model"),
		EntityKey:  q.Get("key"),
		Action:     models.Action(q.Get("action")),
	}

	if v := q.Get("admin_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filter, 0, fmt.Errorf("invalid admin_id %q", v)
		}
		filter.AdminID = id
	}

	if v := q.Get("created_at"); v != "" {
		date, err := models.ParseDate(v)
		if err != nil {
			return filter, 0, fmt.Errorf("invalid created_at %q, expected YYYY-MM-DD", v)
		}
		filter.Date = &date
	}

	page := 1
	if v := q.Get("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p < 1 {
			return filter, 0, fmt.Errorf("invalid page %q", v)
		}
		page = p
	}

	if problems := filter.Validate(); len(problems) > 0 {
		return filter, 0, errors.New(problems[0])
	}

	return filter, page, nil
}

// filterQuery encodes a filter back into listing query parameters
func filterQuery(filter models.ChangeFilter) string {
	q := url.Values{}
	if filter.EntityType != "" {
		q.Set("model", filter.EntityType)
	}
	if filter.EntityKey != "" {
		q.Set("key", filter.EntityKey)
	}
	if filter.AdminID > 0 {
		q.Set("admin_id", strconv.FormatInt(filter.AdminID, 10))
	}
	if filter.Action != "" {
		q.Set("action", string(filter.Action))
	}
	if filter.Date != nil {
		q.Set("created_at", models.FormatDate(*filter.Date))
	}
	return q.Encode()
}
