package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/blogem/adminaudit/models"
	"github.com/blogem/adminaudit/repositories"
	"github.com/blogem/adminaudit/userctx"
)

// AdminService manages the admins allowed into the panel
type AdminService interface {
	SignIn(ctx context.Context, identity models.AdminIdentity) (*models.Admin, error)
	GetAdminByID(ctx context.Context, id int64) (*models.Admin, error)
	GetAllAdmins(ctx context.Context) ([]models.Admin, error)
}

type adminService struct {
	adminRepo repositories.AdminRepository
	observer  MutationObserver
	now       func() time.Time
}

// NewAdminService creates a new admin service
func NewAdminService(adminRepo repositories.AdminRepository, observer MutationObserver) AdminService {
	return &adminService{
		adminRepo: adminRepo,
		observer:  observer,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// SignIn finds or creates the admin for a verified login and stamps the login
// time. The login itself is reported as a session event.
func (s *adminService) SignIn(ctx context.Context, identity models.AdminIdentity) (*models.Admin, error) {
	if problems := identity.Validate(); len(problems) > 0 {
		return nil, fmt.Errorf("invalid identity: %s", strings.Join(problems, ", "))
	}

	now := s.now()

	admin, err := s.adminRepo.GetBySubject(ctx, identity.Subject)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		admin = &models.Admin{
			Subject:     identity.Subject,
			Email:       identity.Email,
			Name:        identity.Name,
			LastLoginAt: &now,
		}
		if err := s.adminRepo.Create(ctx, admin); err != nil {
			return nil, fmt.Errorf("failed to create admin: %w", err)
		}
		// Nobody is signed in yet, so this creation has no actor to attribute.
		s.observer.Created(ctx, admin)

	case err != nil:
		return nil, fmt.Errorf("failed to look up admin: %w", err)

	default:
		admin.Email = identity.Email
		admin.Name = identity.Name
		admin.LastLoginAt = &now
		if err := s.adminRepo.Update(ctx, admin); err != nil {
			return nil, fmt.Errorf("failed to update admin: %w", err)
		}
	}

	session := &models.AdminSession{AdminID: admin.ID, Email: admin.Email, At: now}
	s.observer.Updated(userctx.SetAdmin(ctx, admin), nil, session)

	return admin, nil
}

// GetAdminByID retrieves an admin by ID
func (s *adminService) GetAdminByID(ctx context.Context, id int64) (*models.Admin, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid admin ID: %d", id)
	}
	return s.adminRepo.GetByID(ctx, id)
}

// GetAllAdmins retrieves all admins
func (s *adminService) GetAllAdmins(ctx context.Context) ([]models.Admin, error) {
	return s.adminRepo.GetAll(ctx)
}
