package session

import "context"

// Session is the server-held identity behind a login cookie.
type Session struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
}

// Store maps opaque tokens to authenticated identities. Sessions have no
// expiry; they live until Clear or, for the memory backend, process exit.
type Store interface {
	// Start issues a new opaque token for the given identity.
	Start(ctx context.Context, userID int64, email string) (string, error)

	// Lookup returns the session for a token, or ok=false if unknown.
	Lookup(ctx context.Context, token string) (Session, bool, error)

	// Clear removes a session. Clearing an unknown token is not an error.
	Clear(ctx context.Context, token string) error
}
