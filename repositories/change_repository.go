package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/blogem/adminaudit/models"
)

// ErrNotFound is returned when a requested row does not exist
var ErrNotFound = errors.New("not found")

// ChangeRepository persists change records
type ChangeRepository interface {
	Create(ctx context.Context, change *models.Change) error
	MarkDeleted(ctx context.Context, entityType, entityKey string, exceptID int64) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Change, error)
	Find(ctx context.Context, filter models.ChangeFilter) ([]models.Change, error)
	Count(ctx context.Context, filter models.ChangeFilter) (int, error)
	Actions(ctx context.Context) ([]models.Action, error)
}

type changeRepository struct {
	db *sql.DB
}

// NewChangeRepository creates a new change repository
func NewChangeRepository(db *sql.DB) ChangeRepository {
	return &changeRepository{db: db}
}

const changeColumns = `
	c.id, c.model, c.model_key, c.action, c.title, c.changed,
	c.admin_id, c.deleted, c.created_at,
	COALESCE(a.email, ''), COALESCE(a.name, '')
`

// Create inserts a new change record and sets its ID and creation time
func (r *changeRepository) Create(ctx context.Context, change *models.Change) error {
	query := `
		INSERT INTO changes (model, model_key, action, title, changed, admin_id, deleted, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	changed, err := change.Changed.Encode()
	if err != nil {
		return err
	}

	// created_at is compared as text by the date filter, so it is always stored in UTC
	if change.CreatedAt.IsZero() {
		change.CreatedAt = time.Now()
	}
	change.CreatedAt = change.CreatedAt.UTC()

	result, err := r.db.ExecContext(ctx, query,
		change.EntityType,
		change.EntityKey,
		change.Action,
		nullString(change.Title),
		nullBytes(changed),
		change.AdminID,
		change.Deleted,
		change.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create change: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	change.ID = id
	return nil
}

// MarkDeleted flags every change for the entity, other than exceptID, as deleted.
// It returns the number of rows flagged.
func (r *changeRepository) MarkDeleted(ctx context.Context, entityType, entityKey string, exceptID int64) (int64, error) {
	query := `
		UPDATE changes
		SET deleted = 1
		WHERE model = ? AND model_key = ? AND id <> ?
	`

	result, err := r.db.ExecContext(ctx, query, entityType, entityKey, exceptID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark changes deleted: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}

// GetByID retrieves a change record by ID
func (r *changeRepository) GetByID(ctx context.Context, id int64) (*models.Change, error) {
	query := `SELECT ` + changeColumns + `
		FROM changes c
		LEFT JOIN admins a ON a.id = c.admin_id
		WHERE c.id = ?
	`

	change, err := scanChange(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("change with ID %d %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get change: %w", err)
	}

	return change, nil
}

// Find lists change records matching the filter, newest first
func (r *changeRepository) Find(ctx context.Context, filter models.ChangeFilter) ([]models.Change, error) {
	where, args := buildChangeWhere(filter)

	query := `SELECT ` + changeColumns + `
		FROM changes c
		LEFT JOIN admins a ON a.id = c.admin_id
	` + where + `
		ORDER BY c.id DESC
	`

	if filter.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query changes: %w", err)
	}
	defer rows.Close()

	var changes []models.Change
	for rows.Next() {
		change, err := scanChange(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan change: %w", err)
		}
		changes = append(changes, *change)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating changes: %w", err)
	}

	return changes, nil
}

// Count returns the number of change records matching the filter
func (r *changeRepository) Count(ctx context.Context, filter models.ChangeFilter) (int, error) {
	where, args := buildChangeWhere(filter)

	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM changes c `+where, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count changes: %w", err)
	}

	return count, nil
}

// Actions returns the distinct actions that have been recorded
func (r *changeRepository) Actions(ctx context.Context) ([]models.Action, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT action FROM changes ORDER BY action ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query actions: %w", err)
	}
	defer rows.Close()

	var actions []models.Action
	for rows.Next() {
		var action string
		if err := rows.Scan(&action); err != nil {
			return nil, fmt.Errorf("failed to scan action: %w", err)
		}
		actions = append(actions, models.Action(action))
	}

	return actions, rows.Err()
}

// buildChangeWhere turns a filter into a WHERE clause over the "c" alias
func buildChangeWhere(filter models.ChangeFilter) (string, []any) {
	var conds []string
	var args []any

	if filter.EntityType != "" {
		conds = append(conds, "c.model = ?")
		args = append(args, filter.EntityType)
	}
	if filter.EntityKey != "" {
		conds = append(conds, "c.model_key = ?")
		args = append(args, filter.EntityKey)
	}
	if filter.AdminID > 0 {
		conds = append(conds, "c.admin_id = ?")
		args = append(args, filter.AdminID)
	}
	if filter.Action != "" {
		conds = append(conds, "c.action = ?")
		args = append(args, filter.Action)
	}
	if start, end, ok := filter.DayRange(); ok {
		conds = append(conds, "c.created_at >= ? AND c.created_at < ?")
		args = append(args, start, end)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanChange(row rowScanner) (*models.Change, error) {
	var change models.Change
	var action string
	var title sql.NullString
	var changed []byte

	err := row.Scan(
		&change.ID,
		&change.EntityType,
		&change.EntityKey,
		&action,
		&title,
		&changed,
		&change.AdminID,
		&change.Deleted,
		&change.CreatedAt,
		&change.AdminEmail,
		&change.AdminName,
	)
	if err != nil {
		return nil, err
	}

	change.Action = models.Action(action)
	if title.Valid {
		change.Title = &title.String
	}

	change.Changed, err = models.DecodeChangedFields(changed)
	if err != nil {
		return nil, err
	}

	return &change, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullBytes(b []byte) any {
	if b == nil {
		return nil
	}
	return string(b)
}
