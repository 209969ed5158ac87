/**
 * @description
 * This file implements the in-memory ledger store. It holds the single agent
 * account for the process: a balance register and an append-only transaction
 * log. A read-write mutex guards both, so the insufficient-funds check and
 * the commit are never observed in a torn state by concurrent readers.
 *
 * Key features:
 * - Balance check + mutation + log append happen under one write lock.
 * - Readers take the read lock and always see a consistent snapshot.
 * - Records only ever leave the store as copies; the log itself is private.
 *
 * @dependencies
 * - context, sync: Standard Go libraries.
 * - github.com/shopspring/decimal: Precise decimal arithmetic for the balance.
 * - internal/domain: Domain models.
 */

package store

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Billal143-hu/mtn-momo-api/internal/domain"
)

// MemoryStore is the process-local agent ledger. All history is lost when
// the process exits; durability is explicitly out of scope.
type MemoryStore struct {
	agentID string

	mu           sync.RWMutex
	balance      decimal.Decimal
	transactions []domain.Transaction
}

// NewMemoryStore creates a ledger for one agent with the given opening balance.
func NewMemoryStore(agentID string, openingBalance decimal.Decimal) *MemoryStore {
	return &MemoryStore{
		agentID: agentID,
		balance: openingBalance,
	}
}

// AgentID returns the immutable agent identifier.
func (s *MemoryStore) AgentID() string {
	return s.agentID
}

// GetBalance returns the current balance.
func (s *MemoryStore) GetBalance(ctx context.Context) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.balance, nil
}

// ApplyTransaction commits a validated transaction: it enforces the
// sufficient-funds rule for deposits, mutates the balance, and appends the
// record, all under the write lock. On any error the ledger is unchanged.
func (s *MemoryStore) ApplyTransaction(ctx context.Context, tx *domain.Transaction) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch tx.Type {
	case domain.TransactionDeposit:
		// Deposits draw down the agent float and must be covered by it.
		if s.balance.LessThan(tx.Amount) {
			return decimal.Decimal{}, ErrInsufficientFunds
		}
		s.balance = s.balance.Sub(tx.Amount)
	case domain.TransactionWithdraw:
		s.balance = s.balance.Add(tx.Amount)
	default:
		return decimal.Decimal{}, ErrUnknownTransactionType
	}

	s.transactions = append(s.transactions, *tx)
	return s.balance, nil
}

// RecentTransactions returns up to limit records, newest-first. A limit of
// zero or less yields an empty slice.
func (s *MemoryStore) RecentTransactions(ctx context.Context, limit int) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		return []domain.Transaction{}, nil
	}

	n := len(s.transactions)
	if limit > n {
		limit = n
	}

	out := make([]domain.Transaction, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, s.transactions[i])
	}
	return out, nil
}

// TransactionCount reports how many records the log currently holds.
func (s *MemoryStore) TransactionCount(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.transactions)
}
