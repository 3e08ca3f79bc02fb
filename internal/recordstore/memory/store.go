// Package memory is an in-process recordstore.Store used by tests and by
// local development without a Postgres instance.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/hotelforge/aggregator/internal/domain"
	"github.com/hotelforge/aggregator/internal/recordstore"
)

// Store is a mutex-guarded map keyed by app_reference.
type Store struct {
	mu       sync.RWMutex
	bookings map[string]domain.BookingRecord
}

// New creates an empty Store.
func New() *Store {
	return &Store{bookings: make(map[string]domain.BookingRecord)}
}

func (s *Store) GetBooking(ctx context.Context, appReference string) (domain.BookingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.bookings[appReference]
	if !ok {
		return domain.BookingRecord{}, recordstore.ErrNotFound
	}
	return record, nil
}

func (s *Store) AddBooking(ctx context.Context, record domain.BookingRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now
	s.bookings[record.AppReference] = record
	return nil
}

func (s *Store) UpdatePaymentDetails(ctx context.Context, appReference string, details domain.PaymentDetails) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.bookings[appReference]
	if !ok {
		return recordstore.ErrNotFound
	}
	record.PaymentDetails = &details
	record.UpdatedAt = time.Now()
	s.bookings[appReference] = record
	return nil
}

func (s *Store) UpdateBookRoomDetails(ctx context.Context, appReference string, details domain.BookRoomDetails) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.bookings[appReference]
	if !ok {
		return recordstore.ErrNotFound
	}
	record.BookRoomDetails = &details
	record.UpdatedAt = time.Now()
	s.bookings[appReference] = record
	return nil
}

func (s *Store) UpdateEmailSent(ctx context.Context, appReference string, sent bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.bookings[appReference]
	if !ok {
		return recordstore.ErrNotFound
	}
	record.EmailSent = sent
	record.UpdatedAt = time.Now()
	s.bookings[appReference] = record
	return nil
}

func (s *Store) GetEmailSent(ctx context.Context, appReference string) (bool, error) {
	record, err := s.GetBooking(ctx, appReference)
	if err != nil {
		return false, err
	}
	return record.EmailSent, nil
}

func (s *Store) UserGetBookings(ctx context.Context, email string, limit, offset int) ([]domain.BookingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []domain.BookingRecord
	for _, record := range s.bookings {
		if record.Email == email {
			matched = append(matched, record)
		}
	}

	if offset >= len(matched) {
		return nil, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

var _ recordstore.Store = (*Store)(nil)
