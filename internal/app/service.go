/**
 * @description
 * This file contains the core business logic for the agent ledger. The
 * `Service` struct owns the transaction use case: input validation,
 * transaction-id generation, SMS message construction, the atomic commit
 * against the ledger store, and dispatch of the simulated SMS notification.
 *
 * Key features:
 * - Validation is pure and happens before any state mutation; a rejected
 *   request leaves the balance and log untouched.
 * - The sufficient-funds rule is enforced inside the store's write lock, so
 *   concurrent transactions serialize without lost updates.
 * - Notification dispatch is fire-and-forget on its own deadline; a slow
 *   sink never stalls a request.
 *
 * @dependencies
 * - context, fmt, log, time: Standard Go libraries.
 * - github.com/google/uuid: Event envelope ids.
 * - github.com/shopspring/decimal: Money amounts.
 * - internal/domain, internal/store, internal/notify: Models, ledger, sink.
 */

package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Billal143-hu/mtn-momo-api/internal/domain"
	"github.com/Billal143-hu/mtn-momo-api/internal/notify"
	"github.com/Billal143-hu/mtn-momo-api/internal/store"
)

var (
	ErrInvalidPhone  = errors.New("Invalid phone number")
	ErrInvalidAmount = errors.New("Amount must be positive")
	ErrInvalidType   = errors.New("Invalid transaction type")
)

const (
	minPhoneLength = 10
	dateLayout     = "2006-01-02 15:04:05"
	notifyTimeout  = 5 * time.Second
)

// Service provides the core business logic for the agent ledger.
type Service struct {
	repo        store.Repository
	notifier    notify.Notifier
	senderLabel string
	currency    string
	recentLimit int
	ids         *idGenerator

	now func() time.Time
}

// NewService creates a new ledger service instance.
func NewService(repo store.Repository, notifier notify.Notifier, senderLabel, idPrefix, currency string, recentLimit int) *Service {
	return &Service{
		repo:        repo,
		notifier:    notifier,
		senderLabel: senderLabel,
		currency:    currency,
		recentLimit: recentLimit,
		ids:         newIDGenerator(idPrefix),
		now:         time.Now,
	}
}

// Currency returns the currency label reported alongside balances.
func (s *Service) Currency() string {
	return s.currency
}

// AgentID returns the identifier of the agent account this service owns.
func (s *Service) AgentID() string {
	return s.repo.AgentID()
}

// Balance returns the current agent balance. It never fails for the
// in-memory ledger but keeps the error in the signature for the Repository
// contract.
func (s *Service) Balance(ctx context.Context) (decimal.Decimal, error) {
	return s.repo.GetBalance(ctx)
}

// RecentTransactions returns the most recent transactions, newest-first,
// capped at the configured window.
func (s *Service) RecentTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return s.repo.RecentTransactions(ctx, s.recentLimit)
}

// ProcessTransaction validates and commits one transaction against the
// agent ledger, then dispatches the simulated SMS notification.
func (s *Service) ProcessTransaction(ctx context.Context, req domain.TransactionRequest) (*domain.TransactionResult, error) {
	if len(req.CustomerPhone) < minPhoneLength {
		return nil, ErrInvalidPhone
	}

	amount := decimal.NewFromFloat(req.Amount)
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	txType := domain.TransactionType(req.TransactionType)
	if !txType.Valid() {
		return nil, ErrInvalidType
	}

	now := s.now()
	txID := s.ids.Next(now)

	var verb, message string
	switch txType {
	case domain.TransactionDeposit:
		verb = "Deposited"
		message = "Cash deposit successful"
	case domain.TransactionWithdraw:
		verb = "Withdrew"
		message = "Cash withdrawal successful"
	}

	smsMessage := fmt.Sprintf("%s: %s GH¢%s. Ref: %s", s.senderLabel, verb, amount.StringFixed(2), txID)

	record := &domain.Transaction{
		ID:         txID,
		Phone:      req.CustomerPhone,
		Amount:     amount,
		Type:       txType,
		Timestamp:  now.Unix(),
		Date:       now.Format(dateLayout),
		SMSMessage: smsMessage,
	}

	newBalance, err := s.repo.ApplyTransaction(ctx, record)
	if err != nil {
		return nil, err
	}

	log.Printf("level=info component=app msg=\"transaction committed\" tx_id=%s type=%s amount=%s new_balance=%s", txID, txType, amount.StringFixed(2), newBalance.StringFixed(2))

	s.dispatchSMS(domain.SMSNotification{
		EventID:       uuid.NewString(),
		Phone:         req.CustomerPhone,
		Message:       smsMessage,
		TransactionID: txID,
		OccurredAt:    now.UTC(),
	})

	return &domain.TransactionResult{
		TransactionID: txID,
		Type:          txType,
		Amount:        amount,
		NewBalance:    newBalance,
		Message:       message,
		SMSSent:       true,
		SMSMessage:    smsMessage,
	}, nil
}

// dispatchSMS hands the event to the sink outside the ledger's critical
// section. Delivery is best-effort; failures are logged and dropped.
func (s *Service) dispatchSMS(sms domain.SMSNotification) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := s.notifier.Notify(ctx, sms); err != nil {
			log.Printf("level=warn component=app msg=\"sms notification failed\" tx_id=%s err=%v", sms.TransactionID, err)
		}
	}()
}

// idGenerator produces transaction ids shaped as prefix + unix seconds
// (e.g. MTN1693465200). Ids generated within the same second get a
// monotonic "-<n>" suffix so concurrent requests never collide.
type idGenerator struct {
	prefix string

	mu       sync.Mutex
	lastUnix int64
	seq      int
}

func newIDGenerator(prefix string) *idGenerator {
	return &idGenerator{prefix: prefix}
}

// Next returns the next id for the given call time. The time base never
// goes backwards even if the wall clock does.
func (g *idGenerator) Next(now time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	sec := now.Unix()
	if sec < g.lastUnix {
		sec = g.lastUnix
	}
	if sec == g.lastUnix {
		g.seq++
		return g.prefix + strconv.FormatInt(sec, 10) + "-" + strconv.Itoa(g.seq)
	}

	g.lastUnix = sec
	g.seq = 1
	return g.prefix + strconv.FormatInt(sec, 10)
}
