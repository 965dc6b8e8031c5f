package services

import (
	"context"

	"github.com/blogem/adminaudit/models"
	"github.com/blogem/adminaudit/repositories"
)

// MutationObserver is told about every committed mutation of an auditable entity
type MutationObserver interface {
	Created(ctx context.Context, entity models.Auditable)
	Updated(ctx context.Context, before, after models.Auditable)
	Deleted(ctx context.Context, entity models.Auditable)
}

// Services holds all service instances
type Services struct {
	Changes  ChangeService
	Articles ArticleService
	Admins   AdminService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, changes ChangeService, observer MutationObserver) *Services {
	return &Services{
		Changes:  changes,
		Articles: NewArticleService(repos.Articles, observer),
		Admins:   NewAdminService(repos.Admins, observer),
	}
}
