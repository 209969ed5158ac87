package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Billal143-hu/mtn-momo-api/internal/app"
	"github.com/Billal143-hu/mtn-momo-api/internal/notify"
	"github.com/Billal143-hu/mtn-momo-api/internal/store"
)

func newTestRouter(opening float64) http.Handler {
	ledger := store.NewMemoryStore("MTN_AGENT_001", decimal.NewFromFloat(opening))
	svc := app.NewService(ledger, notify.NewLogNotifier(), "MTN MoMo", "MTN", "GHS", 10)
	return Routes(NewLedgerHandlers(svc))
}

func postTransaction(t *testing.T, router http.Handler, phone string, amount float64, txType string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{
		"customer_phone":   phone,
		"amount":           amount,
		"transaction_type": txType,
	})
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/transaction", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return out
}

func TestBalanceEndpoint(t *testing.T) {
	router := newTestRouter(10000.00)

	req := httptest.NewRequest(http.MethodGet, "/api/balance", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["success"] != true {
		t.Fatalf("expected success=true, got %v", body["success"])
	}
	if body["balance"] != 10000.00 {
		t.Fatalf("expected balance 10000, got %v", body["balance"])
	}
	if body["currency"] != "GHS" {
		t.Fatalf("expected currency GHS, got %v", body["currency"])
	}
}

func TestTransactionEndpoint_DepositSuccess(t *testing.T) {
	router := newTestRouter(10000.00)

	rec := postTransaction(t, router, "0551234567", 100, "deposit")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeBody(t, rec)
	if body["success"] != true {
		t.Fatalf("expected success=true, got %v", body["success"])
	}
	if body["message"] != "Cash deposit successful" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
	if body["new_balance"] != 9900.00 {
		t.Fatalf("expected new_balance 9900, got %v", body["new_balance"])
	}
	if body["sms_sent"] != true {
		t.Fatalf("expected sms_sent=true, got %v", body["sms_sent"])
	}
	smsMessage, _ := body["sms_message"].(string)
	if !strings.Contains(smsMessage, "Deposited GH¢100.00") {
		t.Fatalf("sms_message missing amount: %q", smsMessage)
	}
	txID, _ := body["transaction_id"].(string)
	if !strings.HasPrefix(txID, "MTN") {
		t.Fatalf("unexpected transaction_id: %q", txID)
	}
}

func TestTransactionEndpoint_ValidationErrors(t *testing.T) {
	tests := []struct {
		name       string
		phone      string
		amount     float64
		txType     string
		wantDetail string
	}{
		{name: "short phone", phone: "055123", amount: 50, txType: "withdraw", wantDetail: "Invalid phone number"},
		{name: "non-positive amount", phone: "0551234567", amount: -1, txType: "deposit", wantDetail: "Amount must be positive"},
		{name: "unknown type", phone: "0551234567", amount: 50, txType: "transfer", wantDetail: "Invalid transaction type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(10000.00)

			rec := postTransaction(t, router, tt.phone, tt.amount, tt.txType)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			body := decodeBody(t, rec)
			if body["detail"] != tt.wantDetail {
				t.Fatalf("expected detail %q, got %v", tt.wantDetail, body["detail"])
			}

			// A rejected request must not move the balance.
			balReq := httptest.NewRequest(http.MethodGet, "/api/balance", nil)
			balRec := httptest.NewRecorder()
			router.ServeHTTP(balRec, balReq)
			balBody := decodeBody(t, balRec)
			if balBody["balance"] != 10000.00 {
				t.Fatalf("balance changed on rejected request: %v", balBody["balance"])
			}
		})
	}
}

func TestTransactionEndpoint_InsufficientBalance(t *testing.T) {
	router := newTestRouter(50.00)

	rec := postTransaction(t, router, "0551234567", 100, "deposit")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["detail"] != "Insufficient balance" {
		t.Fatalf("expected Insufficient balance detail, got %v", body["detail"])
	}
}

func TestTransactionEndpoint_MalformedBody(t *testing.T) {
	router := newTestRouter(10000.00)

	req := httptest.NewRequest(http.MethodPost, "/api/transaction", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransactionsEndpoint_NewestFirst(t *testing.T) {
	router := newTestRouter(10000.00)

	for _, amount := range []float64{1, 2, 3} {
		rec := postTransaction(t, router, "0551234567", amount, "withdraw")
		if rec.Code != http.StatusOK {
			t.Fatalf("setup transaction failed: %d", rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Success      bool `json:"success"`
		Transactions []struct {
			Amount float64 `json:"amount"`
			Type   string  `json:"type"`
		} `json:"transactions"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !body.Success {
		t.Fatal("expected success=true")
	}
	if len(body.Transactions) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(body.Transactions))
	}
	for i, want := range []float64{3, 2, 1} {
		if body.Transactions[i].Amount != want {
			t.Fatalf("position %d: expected amount %v, got %v", i, want, body.Transactions[i].Amount)
		}
	}
}

func TestTransactionsEndpoint_WindowCapsAtTen(t *testing.T) {
	router := newTestRouter(10000.00)

	for i := 1; i <= 12; i++ {
		rec := postTransaction(t, router, "0551234567", float64(i), "withdraw")
		if rec.Code != http.StatusOK {
			t.Fatalf("setup transaction %d failed: %d", i, rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	body := decodeBody(t, rec)
	transactions, ok := body["transactions"].([]interface{})
	if !ok {
		t.Fatalf("expected transactions array, got %T", body["transactions"])
	}
	if len(transactions) != 10 {
		t.Fatalf("expected window of 10, got %d", len(transactions))
	}
}

func TestHealthAndHomeEndpoints(t *testing.T) {
	router := newTestRouter(10000.00)

	for _, path := range []string{"/health", "/", "/dashboard"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}
