package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelforge/aggregator/internal/domain"
	"github.com/hotelforge/aggregator/internal/recordstore"
)

func TestAddAndGetBooking(t *testing.T) {
	s := New()
	ctx := context.Background()

	err := s.AddBooking(ctx, domain.BookingRecord{AppReference: "APP-1", Email: "a@example.com"})
	require.NoError(t, err)

	record, err := s.GetBooking(ctx, "APP-1")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", record.Email)
	assert.False(t, record.EmailSent)
}

func TestGetBooking_NotFound(t *testing.T) {
	s := New()
	_, err := s.GetBooking(context.Background(), "missing")
	assert.ErrorIs(t, err, recordstore.ErrNotFound)
}

func TestUpdatePaymentDetails(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, s.AddBooking(ctx, domain.BookingRecord{AppReference: "APP-2", Email: "b@example.com"}))

	err := s.UpdatePaymentDetails(ctx, "APP-2", domain.PaymentDetails{PaymentID: "PAY-1", Status: domain.PaymentStatusPaid})
	require.NoError(t, err)

	record, err := s.GetBooking(ctx, "APP-2")
	require.NoError(t, err)
	require.NotNil(t, record.PaymentDetails)
	assert.Equal(t, "PAY-1", record.PaymentDetails.PaymentID)
}

func TestUpdateBookRoomDetails(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, s.AddBooking(ctx, domain.BookingRecord{AppReference: "APP-3", Email: "c@example.com"}))

	err := s.UpdateBookRoomDetails(ctx, "APP-3", domain.BookRoomDetails{ProviderBookingID: "BK-1", Status: "CONFIRMED"})
	require.NoError(t, err)

	record, err := s.GetBooking(ctx, "APP-3")
	require.NoError(t, err)
	require.NotNil(t, record.BookRoomDetails)
	assert.Equal(t, "BK-1", record.BookRoomDetails.ProviderBookingID)
}

func TestEmailSentRoundTrip(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, s.AddBooking(ctx, domain.BookingRecord{AppReference: "APP-4", Email: "d@example.com"}))

	sent, err := s.GetEmailSent(ctx, "APP-4")
	require.NoError(t, err)
	assert.False(t, sent)

	require.NoError(t, s.UpdateEmailSent(ctx, "APP-4", true))

	sent, err = s.GetEmailSent(ctx, "APP-4")
	require.NoError(t, err)
	assert.True(t, sent)
}

func TestUserGetBookings(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, s.AddBooking(ctx, domain.BookingRecord{AppReference: "APP-5", Email: "shared@example.com"}))
	require.NoError(t, s.AddBooking(ctx, domain.BookingRecord{AppReference: "APP-6", Email: "shared@example.com"}))
	require.NoError(t, s.AddBooking(ctx, domain.BookingRecord{AppReference: "APP-7", Email: "other@example.com"}))

	records, err := s.UserGetBookings(ctx, "shared@example.com", 10, 0)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestUserGetBookings_Pagination(t *testing.T) {
	s := New()
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, s.AddBooking(ctx, domain.BookingRecord{AppReference: "APP-P" + string(rune('0'+i)), Email: "paged@example.com"}))
	}

	records, err := s.UserGetBookings(ctx, "paged@example.com", 2, 0)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
