package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/blogem/adminaudit/models"
	"github.com/blogem/adminaudit/repositories"
	"github.com/blogem/adminaudit/userctx"
)

// ChangeService records model changes and serves them back to the admin
type ChangeService interface {
	Log(ctx context.Context, entity models.Entity, action models.Action, actor *models.Admin) (*models.Change, error)
	Policy() *AuditPolicy
	GetChanges(ctx context.Context, filter models.ChangeFilter) ([]models.Change, error)
	CountChanges(ctx context.Context, filter models.ChangeFilter) (int, error)
	GetChange(ctx context.Context, id int64) (*models.Change, error)
	GetActions(ctx context.Context) ([]models.Action, error)
	GetAdmins(ctx context.Context) (map[int64]string, error)
	Export(ctx context.Context, filter models.ChangeFilter, w io.Writer) error
}

// changeService implements ChangeService interface
type changeService struct {
	changeRepo repositories.ChangeRepository
	adminRepo  repositories.AdminRepository
	policy     *AuditPolicy
	capturer   *Capturer
	metrics    *AuditMetrics
	logger     logrus.FieldLogger
}

// NewChangeService creates a new change service
func NewChangeService(
	changeRepo repositories.ChangeRepository,
	adminRepo repositories.AdminRepository,
	policy *AuditPolicy,
	capturer *Capturer,
	metrics *AuditMetrics,
	logger logrus.FieldLogger,
) ChangeService {
	if policy == nil {
		policy = &AuditPolicy{}
	}
	if capturer == nil {
		capturer = NewCapturer(DefaultSensitiveFields...)
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &changeService{
		changeRepo: changeRepo,
		adminRepo:  adminRepo,
		policy:     policy,
		capturer:   capturer,
		metrics:    metrics,
		logger:     logger,
	}
}

// Log records one mutation of entity. The actor defaults to the admin on ctx.
// A nil change with a nil error means the event was not logged. A
// *PersistenceError is returned when a write failed; the caller's own mutation
// is unaffected either way.
func (s *changeService) Log(ctx context.Context, entity models.Entity, action models.Action, actor *models.Admin) (*models.Change, error) {
	if actor == nil {
		actor = userctx.GetAdmin(ctx)
	}

	decision, err := s.policy.Evaluate(entity, action, actor)
	if err != nil {
		s.metrics.failed("policy")
		return nil, err
	}
	if !decision.Log {
		s.metrics.skipped(decision.Reason)
		s.logger.WithFields(logrus.Fields{
			"model":  entity.Type,
			"key":    entity.Key,
			"action": action,
			"reason": decision.Reason,
		}).Debug("Change not logged")
		return nil, nil
	}

	change := &models.Change{
		EntityType: entity.Type,
		EntityKey:  entity.Key,
		Action:     action,
		Changed:    s.capturer.Capture(action, entity.Before, entity.After),
		AdminID:    actor.ID,
		AdminEmail: actor.Email,
		AdminName:  actor.Name,
	}
	if entity.Title != nil {
		title := *entity.Title
		change.Title = &title
	}

	if err := s.changeRepo.Create(ctx, change); err != nil {
		s.metrics.failed("insert")
		return nil, &PersistenceError{Stage: "insert", Err: err}
	}

	// The deletion's own record stays unflagged; every earlier record for the
	// entity now points at something that no longer exists.
	if action == models.ActionDeleted {
		if _, err := s.changeRepo.MarkDeleted(ctx, entity.Type, entity.Key, change.ID); err != nil {
			s.metrics.failed("tombstone")
			return change, &PersistenceError{Stage: "tombstone", Err: err}
		}
	}

	s.metrics.logged(action)
	return change, nil
}

// Policy returns the audit policy in force
func (s *changeService) Policy() *AuditPolicy {
	return s.policy
}

// GetChanges lists change records matching the filter, newest first
func (s *changeService) GetChanges(ctx context.Context, filter models.ChangeFilter) ([]models.Change, error) {
	if errors := filter.Validate(); len(errors) > 0 {
		return nil, fmt.Errorf("invalid filter: %s", strings.Join(errors, ", "))
	}
	return s.changeRepo.Find(ctx, filter)
}

// CountChanges counts change records matching the filter
func (s *changeService) CountChanges(ctx context.Context, filter models.ChangeFilter) (int, error) {
	if errors := filter.Validate(); len(errors) > 0 {
		return 0, fmt.Errorf("invalid filter: %s", strings.Join(errors, ", "))
	}
	return s.changeRepo.Count(ctx, filter)
}

// GetChange retrieves a single change record
func (s *changeService) GetChange(ctx context.Context, id int64) (*models.Change, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid change ID: %d", id)
	}
	return s.changeRepo.GetByID(ctx, id)
}

// GetActions returns the actions in use, for filter menus
func (s *changeService) GetActions(ctx context.Context) ([]models.Action, error) {
	return s.changeRepo.Actions(ctx)
}

// GetAdmins returns admin emails keyed by ID, for filter menus
func (s *changeService) GetAdmins(ctx context.Context) (map[int64]string, error) {
	admins, err := s.adminRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load admins: %w", err)
	}

	out := make(map[int64]string, len(admins))
	for _, admin := range admins {
		out[admin.ID] = admin.Email
	}
	return out, nil
}

// exportHeader is the first row of a change export
var exportHeader = []any{"ID", "Date", "Admin", "Action", "Model", "Key", "Title", "Deleted", "Changed"}

// Export writes the filtered change listing to w as an XLSX workbook
func (s *changeService) Export(ctx context.Context, filter models.ChangeFilter, w io.Writer) error {
	changes, err := s.GetChanges(ctx, filter)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Changes"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := f.SetSheetRow(sheet, "A1", &exportHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, change := range changes {
		changed, err := change.Changed.Encode()
		if err != nil {
			return err
		}

		title := ""
		if change.Title != nil {
			title = *change.Title
		}

		row := []any{
			change.ID,
			models.FormatDateTime(change.CreatedAt),
			change.AdminEmail,
			string(change.Action),
			change.EntityType,
			change.EntityKey,
			title,
			change.Deleted,
			string(changed),
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	return nil
}
