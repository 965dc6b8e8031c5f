package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/blogem/adminaudit/models"
)

// ArticleRepository interface defines article database operations
type ArticleRepository interface {
	GetAll(ctx context.Context) ([]models.Article, error)
	GetByID(ctx context.Context, id int64) (*models.Article, error)
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	Create(ctx context.Context, article *models.Article) error
	Update(ctx context.Context, article *models.Article) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

// articleRepository implements ArticleRepository interface
type articleRepository struct {
	db *sql.DB
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(db *sql.DB) ArticleRepository {
	return &articleRepository{db: db}
}

const articleColumns = `id, title, slug, body, published, created_at, updated_at`

// GetAll retrieves all articles, newest first
func (r *articleRepository) GetAll(ctx context.Context) ([]models.Article, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+articleColumns+` FROM articles ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	defer rows.Close()

	var articles []models.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, *article)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating articles: %w", err)
	}

	return articles, nil
}

// GetByID retrieves an article by ID
func (r *articleRepository) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	article, err := scanArticle(r.db.QueryRowContext(ctx, `SELECT `+articleColumns+` FROM articles WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("article with ID %d %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get article: %w", err)
	}
	return article, nil
}

// GetBySlug retrieves an article by slug
func (r *articleRepository) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	article, err := scanArticle(r.db.QueryRowContext(ctx, `SELECT `+articleColumns+` FROM articles WHERE slug = ?`, slug))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("article with slug %q %w", slug, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get article: %w", err)
	}
	return article, nil
}

// Create creates a new article
func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	query := `
		INSERT INTO articles (title, slug, body, published, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	if article.CreatedAt.IsZero() {
		article.CreatedAt = time.Now().UTC()
	}

	result, err := r.db.ExecContext(ctx, query,
		article.Title,
		article.Slug,
		article.Body,
		article.Published,
		article.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create article: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	article.ID = id
	return nil
}

// Update updates an existing article
func (r *articleRepository) Update(ctx context.Context, article *models.Article) error {
	query := `
		UPDATE articles
		SET title = ?, slug = ?, body = ?, published = ?, updated_at = ?
		WHERE id = ?
	`

	now := time.Now().UTC()

	result, err := r.db.ExecContext(ctx, query,
		article.Title,
		article.Slug,
		article.Body,
		article.Published,
		now,
		article.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update article: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("article with ID %d %w", article.ID, ErrNotFound)
	}

	article.UpdatedAt = &now
	return nil
}

// Delete deletes an article by ID
func (r *articleRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM articles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("article with ID %d %w", id, ErrNotFound)
	}

	return nil
}

// Count returns the total number of articles
func (r *articleRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM articles`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count articles: %w", err)
	}

	return count, nil
}

func scanArticle(row rowScanner) (*models.Article, error) {
	var article models.Article
	var updatedAt sql.NullTime

	err := row.Scan(
		&article.ID,
		&article.Title,
		&article.Slug,
		&article.Body,
		&article.Published,
		&article.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if updatedAt.Valid {
		article.UpdatedAt = &updatedAt.Time
	}

	return &article, nil
}
