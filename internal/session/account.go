package session

import (
	"time"

	"github.com/google/uuid"
)

// Account is the in-memory record created by a login. It never holds the
// plaintext password.
type Account struct {
	Username     string
	PasswordHash string

	// SessionID and CreatedAt only correlate log lines for one login.
	SessionID uuid.UUID
	CreatedAt time.Time
}

func newAccount(username, passwordHash string) *Account {
	return &Account{
		Username:     username,
		PasswordHash: passwordHash,
		SessionID:    uuid.New(),
		CreatedAt:    time.Now(),
	}
}
