package authenticator

import (
	"context"

	"github.com/blogem/adminaudit/models"
)

// Token represents an authentication token
type Token struct {
	AccessToken  string
	RefreshToken string
	IDToken      string
	Expiry       int64
}

// Claims represents user claims from the ID token
type Claims map[string]interface{}

// Provider interface abstracts OAuth provider operations
type Provider interface {
	GetAuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*Token, error)
	GetClaims(ctx context.Context, token *Token) (Claims, error)
}

// Identity extracts the admin profile from verified claims. The display name
// falls back from nickname to name to email.
func (c Claims) Identity() models.AdminIdentity {
	identity := models.AdminIdentity{
		Subject: c.str("sub"),
		Email:   c.str("email"),
	}

	for _, key := range []string{"nickname", "name", "email"} {
		if v := c.str(key); v != "" {
			identity.Name = v
			break
		}
	}

	return identity
}

func (c Claims) str(key string) string {
	s, _ := c[key].(string)
	return s
}
