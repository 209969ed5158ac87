/**
 * @description
 * This file defines the `Repository` interface, which specifies the contract
 * for all ledger state access required by the service. By defining an
 * interface, we decouple the business logic from the concrete in-memory
 * implementation, making the code easier to test with stubs.
 *
 * @dependencies
 * - context: Standard Go library.
 * - github.com/shopspring/decimal: Money amounts.
 * - internal/domain: For the service's domain models.
 */

package store

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/Billal143-hu/mtn-momo-api/internal/domain"
)

var (
	ErrInsufficientFunds      = errors.New("Insufficient balance")
	ErrUnknownTransactionType = errors.New("unknown transaction type")
)

// Repository defines the set of methods for interacting with the agent ledger.
type Repository interface {
	// AgentID returns the immutable identifier of the agent account.
	AgentID() string

	// GetBalance returns the current balance as a consistent snapshot.
	GetBalance(ctx context.Context) (decimal.Decimal, error)

	// ApplyTransaction validates funds (for deposits), mutates the balance,
	// and appends the record as a single atomic unit relative to other
	// callers. It returns the balance after the mutation.
	ApplyTransaction(ctx context.Context, tx *domain.Transaction) (decimal.Decimal, error)

	// RecentTransactions returns up to limit records, newest-first.
	RecentTransactions(ctx context.Context, limit int) ([]domain.Transaction, error)
}
