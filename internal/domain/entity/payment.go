package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus represents the outcome of a simulated payment.
type PaymentStatus string

const (
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusCompleted  PaymentStatus = "completed"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusRefunded   PaymentStatus = "refunded"
)

// Refund is the full-amount refund sub-record attached to a payment.
// Partial refunds are not supported.
type Refund struct {
	Reason     string    `json:"reason"`      // Caller-supplied refund reason.
	Amount     float64   `json:"amount"`      // Always the full payment amount.
	RefundedAt time.Time `json:"refunded_at"` // Timestamp of the refund.
}

// Payment is a simulated payment record. A declined payment is recorded
// with a failed status; failure is a result, not an error.
type Payment struct {
	ID        uuid.UUID         `json:"id"`                 // The Global Unique Identifier (GUID) for the payment.
	Amount    float64           `json:"amount"`             // Charged amount.
	Currency  string            `json:"currency"`           // Currency label.
	Method    string            `json:"method"`             // Payment method label.
	Status    PaymentStatus     `json:"status"`             // Processing outcome.
	Metadata  map[string]string `json:"metadata,omitempty"` // Caller-supplied metadata.
	Refund    *Refund           `json:"refund,omitempty"`   // Refund sub-record, nil unless refunded.
	CreatedAt time.Time         `json:"created_at"`         // Timestamp of processing.
}
