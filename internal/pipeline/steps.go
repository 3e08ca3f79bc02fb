package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/hotelforge/aggregator/internal/domain"
	"github.com/hotelforge/aggregator/internal/paymentgateway"
	"github.com/hotelforge/aggregator/internal/platform/idempotency"
	"github.com/hotelforge/aggregator/internal/provider"
	"github.com/hotelforge/aggregator/internal/recordstore"
)

const bookRoomIdempotencyTTL = 24 * time.Hour

// GetPaymentStatusStep is S1: fetch the remote payment status and
// populate event.PaymentStatus. Skips if a final status is already known.
type GetPaymentStatusStep struct {
	Gateway paymentgateway.Gateway
}

func (s *GetPaymentStatusStep) Name() string { return "GetPaymentStatusFromPaymentProvider" }

func (s *GetPaymentStatusStep) Validate(ctx context.Context, event *domain.ServerSideBookingEvent) (bool, error) {
	return event.PaymentStatus != nil && event.PaymentStatus.IsFinal(), nil
}

func (s *GetPaymentStatusStep) Execute(ctx context.Context, event *domain.ServerSideBookingEvent) error {
	status, err := s.Gateway.GetTransactionStatus(ctx, event.OrderID)
	if err != nil {
		return fmt.Errorf("failed to fetch payment status: %w", err)
	}
	event.PaymentID = &status.PaymentID
	event.PaymentStatus = &status.Status
	return nil
}

// UpdatePaymentDetailsStep is S2: persist the payment artifact to the
// record store. Runs only if the backend's own payment status is not
// already Paid.
type UpdatePaymentDetailsStep struct {
	Gateway paymentgateway.Gateway
	Store   recordstore.Store
}

func (s *UpdatePaymentDetailsStep) Name() string { return "UpdatePaymentDetailsInBackend" }

func (s *UpdatePaymentDetailsStep) Validate(ctx context.Context, event *domain.ServerSideBookingEvent) (bool, error) {
	record, err := s.Store.GetBooking(ctx, event.OrderID)
	if err != nil {
		return false, fmt.Errorf("failed to load booking record: %w", err)
	}
	backendPaid := record.PaymentDetails != nil && record.PaymentDetails.Status == domain.PaymentStatusPaid
	return backendPaid, nil
}

func (s *UpdatePaymentDetailsStep) Execute(ctx context.Context, event *domain.ServerSideBookingEvent) error {
	if event.PaymentStatus == nil {
		return fmt.Errorf("payment status unknown, S1 must run before S2")
	}
	status, err := s.Gateway.GetTransactionStatus(ctx, event.OrderID)
	if err != nil {
		return fmt.Errorf("failed to fetch payment details: %w", err)
	}

	details := domain.PaymentDetails{
		PaymentID: status.PaymentID,
		OrderID:   event.OrderID,
		Status:    status.Status,
		Amount:    status.Amount,
		Currency:  status.Currency,
		PaidAt:    status.PaidAt,
	}
	if err := s.Store.UpdatePaymentDetails(ctx, event.OrderID, details); err != nil {
		return fmt.Errorf("failed to persist payment details: %w", err)
	}

	backend := domain.BackendPaymentStatusUnpaid
	if status.Status == domain.PaymentStatusPaid {
		backend = domain.BackendPaymentStatusPaid
	}
	event.BackendPaymentStatus = &backend
	return nil
}

// MakeBookingStep is S3: call the provider's book_room using the
// previously blocked offer. Skips if a book_room result already exists
// for this order_id, making re-entry across process restarts safe.
type MakeBookingStep struct {
	Provider   provider.HotelProvider
	Store      recordstore.Store
	Idempotent *idempotency.Manager
}

func (s *MakeBookingStep) Name() string { return "MakeBookingFromBookingProvider" }

func (s *MakeBookingStep) Validate(ctx context.Context, event *domain.ServerSideBookingEvent) (bool, error) {
	record, err := s.Store.GetBooking(ctx, event.OrderID)
	if err != nil {
		return false, fmt.Errorf("failed to load booking record: %w", err)
	}
	return record.BookRoomDetails != nil, nil
}

func (s *MakeBookingStep) Execute(ctx context.Context, event *domain.ServerSideBookingEvent) error {
	key := "book_room:" + event.OrderID
	resp, err := idempotency.Execute(ctx, s.Idempotent, key, bookRoomIdempotencyTTL, func(ctx context.Context) (domain.BookRoomResponse, error) {
		resp, providerErr := s.Provider.BookRoom(ctx, domain.BookRoomRequest{
			BlockID:     event.BlockID,
			UserDetails: event.UserDetails,
			HotelID:     event.HotelID,
		})
		if providerErr != nil {
			return domain.BookRoomResponse{}, providerErr
		}
		return resp, nil
	})
	if err != nil {
		return fmt.Errorf("failed to book room: %w", err)
	}
	event.BookRoomResponse = &resp
	return nil
}

// PersistBookRoomDetailsStep is S4: write the book_room response into the
// record store.
type PersistBookRoomDetailsStep struct {
	Store recordstore.Store
}

func (s *PersistBookRoomDetailsStep) Name() string { return "PersistBookRoomDetails" }

func (s *PersistBookRoomDetailsStep) Validate(ctx context.Context, event *domain.ServerSideBookingEvent) (bool, error) {
	return event.BookRoomResponse == nil, nil
}

func (s *PersistBookRoomDetailsStep) Execute(ctx context.Context, event *domain.ServerSideBookingEvent) error {
	resp := event.BookRoomResponse
	details := domain.BookRoomDetails{
		ProviderBookingID: resp.ProviderBookingID,
		Status:            resp.Status,
		BookedAt:          time.Now(),
	}
	if err := s.Store.UpdateBookRoomDetails(ctx, event.OrderID, details); err != nil {
		return fmt.Errorf("failed to persist book room details: %w", err)
	}
	return nil
}

// SendEmailStep is S5: send the post-booking confirmation email. Skips if
// the backend's email_sent flag is already set.
type SendEmailStep struct {
	Store  recordstore.Store
	Sender EmailSender
}

// EmailSender is the thin mail-dispatch contract S5 depends on. SMTP/IMAP
// mechanics beyond this single send call are out of scope.
type EmailSender interface {
	SendBookingConfirmation(ctx context.Context, email string, booking domain.BookingRecord) error
}

func (s *SendEmailStep) Name() string { return "SendEmailAfterSuccessfullBooking" }

func (s *SendEmailStep) Validate(ctx context.Context, event *domain.ServerSideBookingEvent) (bool, error) {
	sent, err := s.Store.GetEmailSent(ctx, event.OrderID)
	if err != nil {
		return false, fmt.Errorf("failed to check email_sent flag: %w", err)
	}
	return sent, nil
}

func (s *SendEmailStep) Execute(ctx context.Context, event *domain.ServerSideBookingEvent) error {
	record, err := s.Store.GetBooking(ctx, event.OrderID)
	if err != nil {
		return fmt.Errorf("failed to load booking record: %w", err)
	}
	if err := s.Sender.SendBookingConfirmation(ctx, event.UserEmail, record); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}
	if err := s.Store.UpdateEmailSent(ctx, event.OrderID, true); err != nil {
		return fmt.Errorf("failed to persist email_sent flag: %w", err)
	}
	return nil
}

var (
	_ Step = (*GetPaymentStatusStep)(nil)
	_ Step = (*UpdatePaymentDetailsStep)(nil)
	_ Step = (*MakeBookingStep)(nil)
	_ Step = (*PersistBookRoomDetailsStep)(nil)
	_ Step = (*SendEmailStep)(nil)
)
