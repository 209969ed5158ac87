package domain

import "time"

// SMSNotification is the event envelope handed to the notification sink
// after a transaction commits. Delivery is simulated; nothing downstream is
// allowed to affect the ledger.
type SMSNotification struct {
	EventID       string    `json:"event_id"`
	Phone         string    `json:"phone"`
	Message       string    `json:"message"`
	TransactionID string    `json:"transaction_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}
