package repositories

import (
	"database/sql"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	Admins   AdminRepository
	Articles ArticleRepository
	Changes  ChangeRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Admins:   NewAdminRepository(db),
		Articles: NewArticleRepository(db),
		Changes:  NewChangeRepository(db),
	}
}
