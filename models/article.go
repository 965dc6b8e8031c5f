package models

import (
	"strconv"
	"strings"
	"time"
)

// Article is the content type managed through the admin panel
type Article struct {
	ID        int64      `json:"id" db:"id"`
	Title     string     `json:"title" db:"title"`
	Slug      string     `json:"slug" db:"slug"`
	Body      string     `json:"body" db:"body"`
	Published bool       `json:"published" db:"published"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

// AuditType implements Auditable
func (a *Article) AuditType() string { return "Article" }

// AuditKey implements Auditable
func (a *Article) AuditKey() string { return strconv.FormatInt(a.ID, 10) }

// AuditTitle implements Titled
func (a *Article) AuditTitle() string { return a.Title }

// AuditAttributes implements Auditable
func (a *Article) AuditAttributes() map[string]any {
	return map[string]any{
		"title":     a.Title,
		"slug":      a.Slug,
		"body":      a.Body,
		"published": a.Published,
	}
}

// ArticleForm represents form data for creating/updating articles
type ArticleForm struct {
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Body      string `json:"body"`
	Published bool   `json:"published"`
}

// Validate validates the article form data
func (f *ArticleForm) Validate() []string {
	var errors []string

	if strings.TrimSpace(f.Title) == "" {
		errors = append(errors, "Title is required")
	}

	if len(f.Title) > 200 {
		errors = append(errors, "Title must be less than 200 characters")
	}

	if f.Slug != "" && !isValidSlug(f.Slug) {
		errors = append(errors, "Slug may only contain lowercase letters, digits and dashes")
	}

	return errors
}

// SlugOrDefault returns the form slug, derived from the title when empty
func (f *ArticleForm) SlugOrDefault() string {
	if s := strings.TrimSpace(f.Slug); s != "" {
		return s
	}
	return Slugify(f.Title)
}

// Slugify lowercases s and joins its alphanumeric runs with dashes
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// isValidSlug checks for lowercase letters, digits and single dashes
func isValidSlug(slug string) bool {
	if slug == "" || slug[0] == '-' || slug[len(slug)-1] == '-' {
		return false
	}
	for i, r := range slug {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case r == '-' && slug[i-1] != '-':
		default:
			return false
		}
	}
	return true
}
