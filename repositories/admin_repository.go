package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/blogem/adminaudit/models"
)

// AdminRepository interface defines admin database operations
type AdminRepository interface {
	GetAll(ctx context.Context) ([]models.Admin, error)
	GetByID(ctx context.Context, id int64) (*models.Admin, error)
	GetBySubject(ctx context.Context, subject string) (*models.Admin, error)
	Create(ctx context.Context, admin *models.Admin) error
	Update(ctx context.Context, admin *models.Admin) error
}

type adminRepository struct {
	db *sql.DB
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *sql.DB) AdminRepository {
	return &adminRepository{db: db}
}

const adminColumns = `id, subject, email, name, created_at, last_login_at`

// GetAll retrieves all admins ordered by email
func (r *adminRepository) GetAll(ctx context.Context) ([]models.Admin, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+adminColumns+` FROM admins ORDER BY email ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query admins: %w", err)
	}
	defer rows.Close()

	var admins []models.Admin
	for rows.Next() {
		admin, err := scanAdmin(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan admin: %w", err)
		}
		admins = append(admins, *admin)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating admins: %w", err)
	}

	return admins, nil
}

// GetByID retrieves an admin by ID
func (r *adminRepository) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	admin, err := scanAdmin(r.db.QueryRowContext(ctx, `SELECT `+adminColumns+` FROM admins WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("admin with ID %d %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return admin, nil
}

// GetBySubject retrieves an admin by the identity provider subject
func (r *adminRepository) GetBySubject(ctx context.Context, subject string) (*models.Admin, error) {
	admin, err := scanAdmin(r.db.QueryRowContext(ctx, `SELECT `+adminColumns+` FROM admins WHERE subject = ?`, subject))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("admin with subject %q %w", subject, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return admin, nil
}

// Create creates a new admin
func (r *adminRepository) Create(ctx context.Context, admin *models.Admin) error {
	query := `
		INSERT INTO admins (subject, email, name, created_at, last_login_at)
		VALUES (?, ?, ?, ?, ?)
	`

	if admin.CreatedAt.IsZero() {
		admin.CreatedAt = time.Now().UTC()
	}

	result, err := r.db.ExecContext(ctx, query,
		admin.Subject,
		admin.Email,
		admin.Name,
		admin.CreatedAt,
		admin.LastLoginAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	admin.ID = id
	return nil
}

// Update updates an admin's profile and last login time
func (r *adminRepository) Update(ctx context.Context, admin *models.Admin) error {
	query := `
		UPDATE admins
		SET email = ?, name = ?, last_login_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		admin.Email,
		admin.Name,
		admin.LastLoginAt,
		admin.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update admin: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("admin with ID %d %w", admin.ID, ErrNotFound)
	}

	return nil
}

func scanAdmin(row rowScanner) (*models.Admin, error) {
	var admin models.Admin
	var lastLogin sql.NullTime

	err := row.Scan(
		&admin.ID,
		&admin.Subject,
		&admin.Email,
		&admin.Name,
		&admin.CreatedAt,
		&lastLogin,
	)
	if err != nil {
		return nil, err
	}

	if lastLogin.Valid {
		admin.LastLoginAt = &lastLogin.Time
	}

	return &admin, nil
}
