package sheets

import (
	"context"
	"log"
	"sync"

	"github.com/amassarte/pizzeria-backend/internal/core"
)

// MemoryLedger is an in-process core.OrderLedger used when no spreadsheet
// is configured (local development). Orders live only for the process
// lifetime.
type MemoryLedger struct {
	mu     sync.Mutex
	orders []*core.Order
}

// NewMemoryLedger creates an empty in-memory ledger.
func NewMemoryLedger() *MemoryLedger {
	log.Println("[sheets] GOOGLE_SHEETS_ID not set, using in-memory ledger")
	return &MemoryLedger{}
}

// Append stores the order in memory.
func (m *MemoryLedger) Append(ctx context.Context, order *core.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *order
	copied.LocalID = len(m.orders) + 2
	m.orders = append(m.orders, &copied)
	return nil
}

// List returns the stored orders, newest first.
func (m *MemoryLedger) List(ctx context.Context) ([]*core.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*core.Order, 0, len(m.orders))
	for i := len(m.orders) - 1; i >= 0; i-- {
		copied := *m.orders[i]
		out = append(out, &copied)
	}
	return out, nil
}

// GetByID returns the stored order matching id, or core.ErrOrderNotFound.
func (m *MemoryLedger) GetByID(ctx context.Context, id string) (*core.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, order := range m.orders {
		if order.ID == id {
			copied := *order
			return &copied, nil
		}
	}
	return nil, core.ErrOrderNotFound
}

// UpdateStatus mutates the status of the stored order matching id.
func (m *MemoryLedger) UpdateStatus(ctx context.Context, id string, status core.OrderStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, order := range m.orders {
		if order.ID == id {
			order.Status = status
			return nil
		}
	}
	return core.ErrOrderNotFound
}
