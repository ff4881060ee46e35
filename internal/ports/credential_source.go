package ports

import "context"

// CredentialSource produces the session token that authorizes per-game
// requests. Resolution is read-only and happens once, at session construction.
type CredentialSource interface {
	Token(ctx context.Context) (string, error)
}
