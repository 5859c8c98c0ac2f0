package core

import "context"

// ConfigStore defines the interface for the flat configuration document.
type ConfigStore interface {
	// Get returns the current document. Implementations must hand each
	// caller an independent copy; mutating it must not affect the store.
	Get(ctx context.Context) (*StoreConfig, error)
	// Update replaces the whole document. Last writer wins.
	Update(ctx context.Context, cfg *StoreConfig) error
}

// OrderLedger defines the interface for the append-only order ledger.
type OrderLedger interface {
	// Append adds one order row atomically and never overwrites existing rows.
	Append(ctx context.Context, order *Order) error
	// List returns all persisted orders, newest first.
	List(ctx context.Context) ([]*Order, error)
	// GetByID returns the order whose id column matches, or ErrOrderNotFound.
	GetByID(ctx context.Context, id string) (*Order, error)
	// UpdateStatus rewrites the status cell of the row matching id, or
	// returns ErrOrderNotFound.
	UpdateStatus(ctx context.Context, id string, status OrderStatus) error
}

// SessionStore defines the interface for admin session state.
type SessionStore interface {
	Create(ctx context.Context, sessionID string) error
	Exists(ctx context.Context, sessionID string) (bool, error)
	Delete(ctx context.Context, sessionID string) error
}
