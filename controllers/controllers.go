package controllers

import (
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/blogem/adminaudit/models"
	"github.com/blogem/adminaudit/services"
)

// templateFuncs are available to every page template
var templateFuncs = template.FuncMap{
	"add":      func(a, b int) int { return a + b },
	"sub":      func(a, b int) int { return a - b },
	"eq":       func(a, b interface{}) bool { return a == b },
	"datetime": models.FormatDateTime,
	"date":     models.FormatDate,
}

// renderer writes pages and JSON responses, logging failures to its logger
type renderer struct {
	logger logrus.FieldLogger
}

func newRenderer(logger logrus.FieldLogger) renderer {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return renderer{logger: logger}
}

// renderTemplate creates a template set and renders it with the provided data
func (rd renderer) renderTemplate(w http.ResponseWriter, templateName string, pageTemplate string, data interface{}) error {
	return rd.renderTemplateWithStatus(w, http.StatusOK, templateName, pageTemplate, data)
}

// renderTemplateWithStatus creates a template set and renders it with the provided data and status code
func (rd renderer) renderTemplateWithStatus(w http.ResponseWriter, statusCode int, templateName string, pageTemplate string, data interface{}) error {
	tmpl := template.New(templateName).Funcs(templateFuncs)

	// Parse layout and page template
	_, err := tmpl.ParseFiles("templates/layout.html", pageTemplate)
	if err != nil {
		rd.logger.WithError(err).WithField("template", pageTemplate).Error("Failed to parse template")
		http.Error(w, "Failed to parse template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	if statusCode != http.StatusOK {
		w.WriteHeader(statusCode)
	}

	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		rd.logger.WithError(err).WithField("template", pageTemplate).Error("Failed to render template")
		http.Error(w, "Failed to render template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	return nil
}

// renderJSON writes data as a JSON response
func (rd renderer) renderJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		rd.logger.WithError(err).Error("Failed to encode JSON response")
	}
}

// Controllers holds all controller instances
type Controllers struct {
	Auth      *AuthController
	Dashboard *DashboardController
	Changes   *ChangesController
	Articles  *ArticleController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, logger logrus.FieldLogger) *Controllers {
	return &Controllers{
		Auth:      NewAuthController(services, logger),
		Dashboard: NewDashboardController(services, logger),
		Changes:   NewChangesController(services, logger),
		Articles:  NewArticleController(services, logger),
	}
}
