package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/adminaudit/services"
)

func TestRenderer_LogsToInjectedLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	rd := newRenderer(logger.WithField("component", "controllers"))

	rec := httptest.NewRecorder()
	err := rd.renderTemplate(rec, "missing", "templates/missing.html", nil)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, "Failed to parse template", hook.LastEntry().Message)
	assert.Equal(t, "controllers", hook.LastEntry().Data["component"])
	assert.Equal(t, "templates/missing.html", hook.LastEntry().Data["template"])
}

func TestNewControllers_SharesLogger(t *testing.T) {
	logger, _ := test.NewNullLogger()
	ctrl := NewControllers(&services.Services{}, logger)

	assert.Same(t, logger, ctrl.Auth.logger)
	assert.Same(t, logger, ctrl.Dashboard.logger)
	assert.Same(t, logger, ctrl.Changes.logger)
	assert.Same(t, logger, ctrl.Articles.logger)
}

func TestNewRenderer_DefaultsToStandardLogger(t *testing.T) {
	rd := newRenderer(nil)

	assert.Same(t, logrus.StandardLogger(), rd.logger)
}
