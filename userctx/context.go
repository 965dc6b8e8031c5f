package userctx

import (
	"context"

	"github.com/blogem/adminaudit/models"
)

// Context key type
type contextKey string

const adminKey contextKey = "admin"

// SetAdmin adds the acting admin to request context
func SetAdmin(ctx context.Context, admin *models.Admin) context.Context {
	return context.WithValue(ctx, adminKey, admin)
}

// GetAdmin retrieves the acting admin from request context, or nil when the
// request is anonymous
func GetAdmin(ctx context.Context) *models.Admin {
	admin, ok := ctx.Value(adminKey).(*models.Admin)
	if !ok {
		return nil
	}
	return admin
}

// GetUserEmail retrieves the acting admin's email from request context
func GetUserEmail(ctx context.Context) string {
	if admin := GetAdmin(ctx); admin != nil {
		return admin.Email
	}
	return "anonymous"
}
