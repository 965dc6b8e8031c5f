package controllers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/blogem/adminaudit/models"
	"github.com/blogem/adminaudit/services"
	"github.com/blogem/adminaudit/userctx"
)

// recentChanges is how many changes the dashboard shows
const recentChanges = 10

// DashboardController handles dashboard-related requests
type DashboardController struct {
	renderer
	services *services.Services
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(services *services.Services, logger logrus.FieldLogger) *DashboardController {
	return &DashboardController{
		renderer: newRenderer(logger),
		services: services,
	}
}

// Index handles GET /
func (c *DashboardController) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	admin := userctx.GetAdmin(ctx)

	changes, err := c.services.Changes.GetChanges(ctx, models.ChangeFilter{Limit: recentChanges})
	if err != nil {
		http.Error(w, "Failed to load recent changes: "+err.Error(), http.StatusInternalServerError)
		return
	}

	mine, err := c.services.Changes.CountChanges(ctx, models.ChangeFilter{AdminID: admin.ID})
	if err != nil {
		http.Error(w, "Failed to count changes: "+err.Error(), http.StatusInternalServerError)
		return
	}

	articles, err := c.services.Articles.GetArticleCount(ctx)
	if err != nil {
		http.Error(w, "Failed to count articles: "+err.Error(), http.StatusInternalServerError)
		return
	}

	templateData := models.PageData{
		Title:       "Dashboard",
		CurrentPage: "dashboard",
		Admin:       admin,
		Data: struct {
			RecentChanges []models.Change
			MyChanges     int
			Articles      int
		}{
			RecentChanges: changes,
			MyChanges:     mine,
			Articles:      articles,
		},
	}

	c.renderTemplate(w, "dashboard", "templates/dashboard.html", templateData)
}
