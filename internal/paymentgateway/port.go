// Package paymentgateway defines the abstract contract the pipeline uses
// to ask a payment provider for the current status of a transaction.
// Capture, settlement, and refund flows are out of scope; this port only
// answers "what is the state of this order right now."
package paymentgateway

import (
	"context"
	"time"

	"github.com/hotelforge/aggregator/internal/domain"
)

// TransactionStatus is the provider-agnostic view of one transaction.
type TransactionStatus struct {
	OrderID   string
	PaymentID string
	Status    domain.PaymentStatus
	Amount    float64
	Currency  string
	PaidAt    *time.Time
}

// Gateway is implemented by a concrete payment provider client.
type Gateway interface {
	GetTransactionStatus(ctx context.Context, orderID string) (TransactionStatus, error)
}
