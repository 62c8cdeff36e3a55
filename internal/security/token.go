package security

import (
	"time"
)

const (
	TokenScopeAccess  = "access"
	TokenScopeRefresh = "refresh"
)

// Claims identify the user a token is issued for.
type Claims struct {
	UserID   string
	UserName string
	Plan     string
	Scope    string
}

// Maker issues and verifies bearer tokens.
type Maker interface {
	// CreateToken creates a token valid for duration.
	CreateToken(claims Claims, duration time.Duration) (string, *Payload, error)

	// VerifyToken checks the token and returns its payload.
	VerifyToken(token string) (*Payload, error)
}
