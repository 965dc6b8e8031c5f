package models

import (
	"strconv"
	"time"
)

// Admin is an authenticated principal allowed into the admin panel
type Admin struct {
	ID          int64      `json:"id" db:"id"`
	Subject     string     `json:"subject" db:"subject"` // OIDC "sub" claim
	Email       string     `json:"email" db:"email"`
	Name        string     `json:"name" db:"name"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty" db:"last_login_at"`
}

// DisplayName returns the name, falling back to the email
func (a *Admin) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	return a.Email
}

// AuditType implements Auditable
func (a *Admin) AuditType() string { return "Admin" }

// AuditKey implements Auditable
func (a *Admin) AuditKey() string { return strconv.FormatInt(a.ID, 10) }

// AuditTitle implements Titled
func (a *Admin) AuditTitle() string { return a.DisplayName() }

// AuditAttributes implements Auditable
func (a *Admin) AuditAttributes() map[string]any {
	return map[string]any{
		"subject": a.Subject,
		"email":   a.Email,
		"name":    a.Name,
	}
}

// AdminIdentity is the profile extracted from a successful login
type AdminIdentity struct {
	Subject string
	Email   string
	Name    string
}

// Validate validates the identity claims
func (i *AdminIdentity) Validate() []string {
	var errors []string

	if i.Subject == "" {
		errors = append(errors, "Subject claim is required")
	}

	if i.Email != "" && !isValidEmail(i.Email) {
		errors = append(errors, "Email claim is invalid")
	}

	return errors
}

// AdminSession is the audit view of an admin signing in or out. It is never
// recorded in the change log but flows through the same observer.
type AdminSession struct {
	AdminID int64
	Email   string
	At      time.Time
}

// AuditType implements Auditable
func (s *AdminSession) AuditType() string { return SessionEntityType }

// AuditKey implements Auditable
func (s *AdminSession) AuditKey() string { return strconv.FormatInt(s.AdminID, 10) }

// AuditAttributes implements Auditable
func (s *AdminSession) AuditAttributes() map[string]any {
	return map[string]any{"email": s.Email, "last_login_at": s.At}
}

// isValidEmail performs basic email validation
func isValidEmail(email string) bool {
	// Simple validation: must contain @ and at least one dot after @
	atIndex := -1
	for i, char := range email {
		if char == '@' {
			if atIndex != -1 {
				return false // Multiple @ symbols
			}
			atIndex = i
		}
	}

	if atIndex == -1 || atIndex == 0 || atIndex == len(email)-1 {
		return false
	}

	for i := atIndex + 1; i < len(email); i++ {
		if email[i] == '.' && i < len(email)-1 {
			return true
		}
	}

	return false
}
