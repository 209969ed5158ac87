/**
 * @description
 * This file contains the HTTP handlers for the agent ledger API. Handlers
 * parse incoming requests, call the application service, and write JSON
 * responses. They are the bridge between the web layer and the business
 * logic layer; validation and business failures surface as 400 responses
 * with a `detail` field.
 *
 * @dependencies
 * - encoding/json, errors, log, net/http: Standard Go libraries.
 * - internal/app, internal/domain, internal/store: Service logic, models, errors.
 */

package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Billal143-hu/mtn-momo-api/internal/app"
	"github.com/Billal143-hu/mtn-momo-api/internal/domain"
	"github.com/Billal143-hu/mtn-momo-api/internal/store"
)

// LedgerHandlers holds the application service that handlers will use.
type LedgerHandlers struct {
	service *app.Service
}

// NewLedgerHandlers creates a new instance of LedgerHandlers.
func NewLedgerHandlers(service *app.Service) *LedgerHandlers {
	return &LedgerHandlers{service: service}
}

type balanceResponse struct {
	Success  bool    `json:"success"`
	Balance  float64 `json:"balance"`
	Currency string  `json:"currency"`
}

type transactionResponse struct {
	Success       bool    `json:"success"`
	Message       string  `json:"message"`
	TransactionID string  `json:"transaction_id"`
	Amount        float64 `json:"amount"`
	NewBalance    float64 `json:"new_balance"`
	SMSSent       bool    `json:"sms_sent"`
	SMSMessage    string  `json:"sms_message"`
}

// transactionView mirrors the stored record with the amount rendered as a
// plain JSON number for the dashboard and other polling clients.
type transactionView struct {
	ID         string  `json:"id"`
	Phone      string  `json:"phone"`
	Amount     float64 `json:"amount"`
	Type       string  `json:"type"`
	Timestamp  int64   `json:"timestamp"`
	Date       string  `json:"date"`
	SMSMessage string  `json:"sms_message"`
}

type transactionListResponse struct {
	Success      bool              `json:"success"`
	Transactions []transactionView `json:"transactions"`
}

// HomeHandler reports that the service is up.
func (h *LedgerHandlers) HomeHandler(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"message":  "MTN Mobile Money API is live",
		"agent_id": h.service.AgentID(),
		"status":   "active",
	})
}

// BalanceHandler returns the agent's current balance.
func (h *LedgerHandlers) BalanceHandler(w http.ResponseWriter, r *http.Request) {
	balance, err := h.service.Balance(r.Context())
	if err != nil {
		log.Printf("level=error component=api endpoint=balance msg=\"balance read failed\" err=%v", err)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.writeJSON(w, http.StatusOK, balanceResponse{
		Success:  true,
		Balance:  balance.InexactFloat64(),
		Currency: h.service.Currency(),
	})
}

// TransactionHandler processes a deposit or withdrawal against the ledger.
func (h *LedgerHandlers) TransactionHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("level=warn component=api endpoint=transaction outcome=reject reason=invalid_json err=%v", err)
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.ProcessTransaction(r.Context(), req)
	if err != nil {
		if errors.Is(err, app.ErrInvalidPhone) || errors.Is(err, app.ErrInvalidAmount) ||
			errors.Is(err, app.ErrInvalidType) || errors.Is(err, store.ErrInsufficientFunds) {
			log.Printf("level=warn component=api endpoint=transaction outcome=reject type=%s amount=%v err=%v", req.TransactionType, req.Amount, err)
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("level=error component=api endpoint=transaction outcome=failed err=%v", err)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.writeJSON(w, http.StatusOK, transactionResponse{
		Success:       true,
		Message:       result.Message,
		TransactionID: result.TransactionID,
		Amount:        result.Amount.InexactFloat64(),
		NewBalance:    result.NewBalance.InexactFloat64(),
		SMSSent:       result.SMSSent,
		SMSMessage:    result.SMSMessage,
	})
}

// TransactionsHandler lists the most recent transactions, newest-first.
func (h *LedgerHandlers) TransactionsHandler(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.RecentTransactions(r.Context())
	if err != nil {
		log.Printf("level=error component=api endpoint=transactions msg=\"history read failed\" err=%v", err)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	views := make([]transactionView, 0, len(records))
	for _, tx := range records {
		views = append(views, transactionView{
			ID:         tx.ID,
			Phone:      tx.Phone,
			Amount:     tx.Amount.InexactFloat64(),
			Type:       string(tx.Type),
			Timestamp:  tx.Timestamp,
			Date:       tx.Date,
			SMSMessage: tx.SMSMessage,
		})
	}

	h.writeJSON(w, http.StatusOK, transactionListResponse{
		Success:      true,
		Transactions: views,
	})
}

// writeJSON is a helper for writing JSON responses.
func (h *LedgerHandlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError is a helper for writing JSON error responses.
func (h *LedgerHandlers) writeError(w http.ResponseWriter, status int, detail string) {
	h.writeJSON(w, status, map[string]string{"detail": detail})
}
