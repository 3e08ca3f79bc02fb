// Package recordstore defines the abstract contract for the external
// per-booking record store. Persistence internals beyond the two
// reference implementations (postgres, memory) are out of scope; this
// port is all the pipeline depends on.
package recordstore

import (
	"context"
	"errors"

	"github.com/hotelforge/aggregator/internal/domain"
)

// ErrNotFound is returned when a lookup finds no matching record.
var ErrNotFound = errors.New("recordstore: booking not found")

// Store is the record-store port the pipeline and its steps depend on.
type Store interface {
	GetBooking(ctx context.Context, appReference string) (domain.BookingRecord, error)
	AddBooking(ctx context.Context, record domain.BookingRecord) error
	UpdatePaymentDetails(ctx context.Context, appReference string, details domain.PaymentDetails) error
	UpdateBookRoomDetails(ctx context.Context, appReference string, details domain.BookRoomDetails) error
	UpdateEmailSent(ctx context.Context, appReference string, sent bool) error
	GetEmailSent(ctx context.Context, appReference string) (bool, error)
	UserGetBookings(ctx context.Context, email string, limit, offset int) ([]domain.BookingRecord, error)
}
