package middleware

import (
	"net/http"

	"gitea.com/go-chi/session"
	"github.com/sirupsen/logrus"

	"github.com/blogem/adminaudit/services"
	"github.com/blogem/adminaudit/userctx"
)

// SessionAdminKey is the session key holding the signed-in admin's ID
const SessionAdminKey = "admin_id"

// SessionEmailKey is the session key holding the signed-in admin's email
const SessionEmailKey = "admin_email"

// RequireAuth ensures an admin is signed in and puts them on the request context.
// If not authenticated, redirects to /login and stores the intended destination.
func RequireAuth(admins services.AdminService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := session.GetSession(r)

			adminID, ok := sess.Get(SessionAdminKey).(int64)
			if !ok || adminID <= 0 {
				sess.Set("redirect_after_login", r.URL.Path)
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			admin, err := admins.GetAdminByID(r.Context(), adminID)
			if err != nil {
				logrus.WithError(err).WithField("admin_id", adminID).Warn("Session admin could not be loaded")
				sess.Delete(SessionAdminKey)
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r.WithContext(userctx.SetAdmin(r.Context(), admin)))
		})
	}
}
