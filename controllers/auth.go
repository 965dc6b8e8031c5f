package controllers

import (
	"net/http"

	"gitea.com/go-chi/session"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/blogem/adminaudit/authenticator"
	"github.com/blogem/adminaudit/middleware"
	"github.com/blogem/adminaudit/services"
)

// AuthController handles admin login and logout
type AuthController struct {
	renderer
	services *services.Services
}

// NewAuthController creates a new auth controller
func NewAuthController(services *services.Services, logger logrus.FieldLogger) *AuthController {
	return &AuthController{
		renderer: newRenderer(logger),
		services: services,
	}
}

// Login initiates the authentication process
func (ac *AuthController) Login(auth authenticator.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := uuid.NewString()

		// Save the state in the session to validate in callback
		sess := session.GetSession(r)
		sess.Set("state", state)

		http.Redirect(w, r, auth.GetAuthURL(state), http.StatusTemporaryRedirect)
	}
}

// Callback handles the callback from the identity provider
func (ac *AuthController) Callback(auth authenticator.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)

		storedState, ok := sess.Get("state").(string)
		if !ok {
			http.Error(w, "State not found in session", http.StatusBadRequest)
			return
		}

		if r.URL.Query().Get("state") != storedState {
			http.Error(w, "Invalid state parameter", http.StatusBadRequest)
			return
		}

		token, err := auth.ExchangeCode(r.Context(), r.URL.Query().Get("code"))
		if err != nil {
			http.Error(w, "Failed to exchange authorization code for a token: "+err.Error(), http.StatusUnauthorized)
			return
		}

		claims, err := auth.GetClaims(r.Context(), token)
		if err != nil {
			http.Error(w, "Failed to verify ID Token: "+err.Error(), http.StatusInternalServerError)
			return
		}

		admin, err := ac.services.Admins.SignIn(r.Context(), claims.Identity())
		if err != nil {
			ac.logger.WithError(err).Warn("Admin sign in rejected")
			http.Error(w, "Failed to sign in: "+err.Error(), http.StatusForbidden)
			return
		}

		sess.Set(middleware.SessionAdminKey, admin.ID)
		sess.Set(middleware.SessionEmailKey, admin.Email)
		sess.Delete("state")

		redirect := "/"
		if target, ok := sess.Get("redirect_after_login").(string); ok && target != "" {
			redirect = target
			sess.Delete("redirect_after_login")
		}

		http.Redirect(w, r, redirect, http.StatusSeeOther)
	}
}

// Logout clears the admin session
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)
	sess.Delete(middleware.SessionAdminKey)
	sess.Delete(middleware.SessionEmailKey)

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
