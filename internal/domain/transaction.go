/**
 * @description
 * This file defines the core domain models for the agent ledger: the
 * transaction record kept in the in-memory log, the transaction type enum,
 * and the request/result types exchanged between the API layer and the
 * application service.
 *
 * @dependencies
 * - github.com/shopspring/decimal: Precise decimal arithmetic for money amounts.
 */
package domain

import (
	"github.com/shopspring/decimal"
)

// TransactionType identifies the direction of a transaction against the
// agent's float.
type TransactionType string

const (
	// TransactionDeposit is a customer cash-in; it draws down the agent's
	// balance (the historical mapping is inverted relative to real agent
	// accounting and is preserved as-is).
	TransactionDeposit TransactionType = "deposit"
	// TransactionWithdraw is a customer cash-out; it credits the agent's
	// balance unconditionally.
	TransactionWithdraw TransactionType = "withdraw"
)

// Valid reports whether the type is one of the supported transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionDeposit || t == TransactionWithdraw
}

// Transaction is an immutable record of a processed transaction. Records are
// append-only; the store hands out copies, never references into the log.
type Transaction struct {
	ID         string          `json:"id"`
	Phone      string          `json:"phone"`
	Amount     decimal.Decimal `json:"amount"`
	Type       TransactionType `json:"type"`
	Timestamp  int64           `json:"timestamp"`
	Date       string          `json:"date"`
	SMSMessage string          `json:"sms_message"`
}

// TransactionRequest is the inbound payload for processing a transaction.
type TransactionRequest struct {
	CustomerPhone   string  `json:"customer_phone"`
	Amount          float64 `json:"amount"`
	TransactionType string  `json:"transaction_type"`
}

// TransactionResult is what the service returns to the API layer after a
// successful commit.
type TransactionResult struct {
	TransactionID string
	Type          TransactionType
	Amount        decimal.Decimal
	NewBalance    decimal.Decimal
	Message       string
	SMSSent       bool
	SMSMessage    string
}
