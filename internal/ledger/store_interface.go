package ledger

import "context"

// Store is the optional durable backend for account balances. A nil Store
// keeps balances in process memory only.
type Store interface {
	// Load returns the persisted balance for the user, or found=false if the
	// user has never been saved.
	Load(ctx context.Context, userID string) (balance int64, found bool, err error)

	// Save persists the new balance along with a journal entry describing the
	// change that produced it.
	Save(ctx context.Context, userID string, balance, delta int64, reason string) error
}
