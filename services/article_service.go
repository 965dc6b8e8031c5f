package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/blogem/adminaudit/models"
	"github.com/blogem/adminaudit/repositories"
)

// ArticleService interface defines article management business logic
type ArticleService interface {
	GetAllArticles(ctx context.Context) ([]models.Article, error)
	GetArticleByID(ctx context.Context, id int64) (*models.Article, error)
	CreateArticle(ctx context.Context, form *models.ArticleForm) (*models.Article, error)
	UpdateArticle(ctx context.Context, id int64, form *models.ArticleForm) (*models.Article, error)
	DeleteArticle(ctx context.Context, id int64) error
	GetArticleCount(ctx context.Context) (int, error)
}

// articleService implements ArticleService interface
type articleService struct {
	articleRepo repositories.ArticleRepository
	observer    MutationObserver
}

// NewArticleService creates a new article service
func NewArticleService(articleRepo repositories.ArticleRepository, observer MutationObserver) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		observer:    observer,
	}
}

// GetAllArticles retrieves all articles
func (s *articleService) GetAllArticles(ctx context.Context) ([]models.Article, error) {
	return s.articleRepo.GetAll(ctx)
}

// GetArticleByID retrieves an article by ID
func (s *articleService) GetArticleByID(ctx context.Context, id int64) (*models.Article, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid article ID: %d", id)
	}
	return s.articleRepo.GetByID(ctx, id)
}

// CreateArticle creates a new article with validation
func (s *articleService) CreateArticle(ctx context.Context, form *models.ArticleForm) (*models.Article, error) {
	if problems := form.Validate(); len(problems) > 0 {
		return nil, fmt.Errorf("validation failed: %s", strings.Join(problems, ", "))
	}

	article := &models.Article{
		Title:     strings.TrimSpace(form.Title),
		Slug:      form.SlugOrDefault(),
		Body:      form.Body,
		Published: form.Published,
	}

	if err := s.ensureSlugAvailable(ctx, article.Slug, 0); err != nil {
		return nil, err
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}

	s.observer.Created(ctx, article)
	return article, nil
}

// UpdateArticle updates an existing article
func (s *articleService) UpdateArticle(ctx context.Context, id int64, form *models.ArticleForm) (*models.Article, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid article ID: %d", id)
	}

	if problems := form.Validate(); len(problems) > 0 {
		return nil, fmt.Errorf("validation failed: %s", strings.Join(problems, ", "))
	}

	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("article not found: %w", err)
	}
	before := *article

	article.Title = strings.TrimSpace(form.Title)
	article.Slug = form.SlugOrDefault()
	article.Body = form.Body
	article.Published = form.Published

	if article.Slug != before.Slug {
		if err := s.ensureSlugAvailable(ctx, article.Slug, id); err != nil {
			return nil, err
		}
	}

	if err := s.articleRepo.Update(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to update article: %w", err)
	}

	s.observer.Updated(ctx, &before, article)
	return article, nil
}

// DeleteArticle permanently deletes an article
func (s *articleService) DeleteArticle(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("invalid article ID: %d", id)
	}

	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("article not found: %w", err)
	}

	if err := s.articleRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}

	s.observer.Deleted(ctx, article)
	return nil
}

// GetArticleCount returns the total number of articles
func (s *articleService) GetArticleCount(ctx context.Context) (int, error) {
	return s.articleRepo.Count(ctx)
}

// ensureSlugAvailable rejects a slug already used by another article
func (s *articleService) ensureSlugAvailable(ctx context.Context, slug string, id int64) error {
	existing, err := s.articleRepo.GetBySlug(ctx, slug)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to check slug: %w", err)
	}
	if existing.ID != id {
		return fmt.Errorf("article with slug %s already exists", slug)
	}
	return nil
}
