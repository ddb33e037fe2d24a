package domain

import (
	"time"

	"github.com/google/uuid"
)

type Account struct {
	ID           uuid.UUID
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	CreatedAt    time.Time
}

// Session is the identity of an authenticated caller. It is passed explicitly to every
// operation that needs to know who is calling.
type Session struct {
	UserID    string
	Email     string
	Admin     bool
	TokenID   string
	ExpiresAt time.Time
}

// Profile is the users/{id} document written at sign-up.
func (a *Account) Profile() map[string]any {
	return map[string]any{
		"firstName": a.FirstName,
		"lastName":  a.LastName,
		"email":     a.Email,
		"createdAt": a.CreatedAt.UTC().Format(time.RFC3339),
	}
}
