package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hotelforge/aggregator/internal/domain"
	"github.com/hotelforge/aggregator/internal/recordstore"
)

// Store is a recordstore.Store backed by the "bookings" table:
//
//	bookings(id, app_reference, email, payment_details jsonb,
//	          book_room_details jsonb, email_sent bool,
//	          created_at, updated_at)
type Store struct {
	pool *Pool
}

// New wraps an open Pool as a Store.
func New(pool *Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) GetBooking(ctx context.Context, appReference string) (domain.BookingRecord, error) {
	const query = `
		SELECT app_reference, email, payment_details, book_room_details, email_sent, created_at, updated_at
		FROM bookings
		WHERE app_reference = $1
	`

	row := s.pool.conn.QueryRow(ctx, query, appReference)

	var (
		record           domain.BookingRecord
		paymentDetails   []byte
		bookRoomDetails  []byte
	)
	err := row.Scan(&record.AppReference, &record.Email, &paymentDetails, &bookRoomDetails,
		&record.EmailSent, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.BookingRecord{}, recordstore.ErrNotFound
		}
		return domain.BookingRecord{}, fmt.Errorf("failed to get booking: %w", err)
	}

	if len(paymentDetails) > 0 {
		var pd domain.PaymentDetails
		if err := json.Unmarshal(paymentDetails, &pd); err != nil {
			return domain.BookingRecord{}, fmt.Errorf("failed to decode payment details: %w", err)
		}
		record.PaymentDetails = &pd
	}
	if len(bookRoomDetails) > 0 {
		var brd domain.BookRoomDetails
		if err := json.Unmarshal(bookRoomDetails, &brd); err != nil {
			return domain.BookingRecord{}, fmt.Errorf("failed to decode book room details: %w", err)
		}
		record.BookRoomDetails = &brd
	}

	return record, nil
}

func (s *Store) AddBooking(ctx context.Context, record domain.BookingRecord) error {
	const query = `
		INSERT INTO bookings (id, app_reference, email, email_sent, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (app_reference) DO NOTHING
	`

	_, err := s.pool.conn.Exec(ctx, query, uuid.NewString(), record.AppReference, record.Email, record.EmailSent, time.Now())
	if err != nil {
		return fmt.Errorf("failed to add booking: %w", err)
	}
	return nil
}

func (s *Store) UpdatePaymentDetails(ctx context.Context, appReference string, details domain.PaymentDetails) error {
	payload, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("failed to marshal payment details: %w", err)
	}

	const query = `
		UPDATE bookings
		SET payment_details = $2, updated_at = $3
		WHERE app_reference = $1
	`
	result, err := s.pool.conn.Exec(ctx, query, appReference, payload, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update payment details: %w", err)
	}
	if result.RowsAffected() == 0 {
		return recordstore.ErrNotFound
	}
	return nil
}

func (s *Store) UpdateBookRoomDetails(ctx context.Context, appReference string, details domain.BookRoomDetails) error {
	payload, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("failed to marshal book room details: %w", err)
	}

	const query = `
		UPDATE bookings
		SET book_room_details = $2, updated_at = $3
		WHERE app_reference = $1
	`
	result, err := s.pool.conn.Exec(ctx, query, appReference, payload, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update book room details: %w", err)
	}
	if result.RowsAffected() == 0 {
		return recordstore.ErrNotFound
	}
	return nil
}

func (s *Store) UpdateEmailSent(ctx context.Context, appReference string, sent bool) error {
	const query = `
		UPDATE bookings
		SET email_sent = $2, updated_at = $3
		WHERE app_reference = $1
	`
	result, err := s.pool.conn.Exec(ctx, query, appReference, sent, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update email_sent: %w", err)
	}
	if result.RowsAffected() == 0 {
		return recordstore.ErrNotFound
	}
	return nil
}

func (s *Store) GetEmailSent(ctx context.Context, appReference string) (bool, error) {
	const query = `SELECT email_sent FROM bookings WHERE app_reference = $1`

	var sent bool
	err := s.pool.conn.QueryRow(ctx, query, appReference).Scan(&sent)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, recordstore.ErrNotFound
		}
		return false, fmt.Errorf("failed to get email_sent: %w", err)
	}
	return sent, nil
}

func (s *Store) UserGetBookings(ctx context.Context, email string, limit, offset int) ([]domain.BookingRecord, error) {
	const query = `
		SELECT app_reference, email, payment_details, book_room_details, email_sent, created_at, updated_at
		FROM bookings
		WHERE email = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := s.pool.conn.Query(ctx, query, email, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get user bookings: %w", err)
	}
	defer rows.Close()

	var records []domain.BookingRecord
	for rows.Next() {
		var (
			record          domain.BookingRecord
			paymentDetails  []byte
			bookRoomDetails []byte
		)
		if err := rows.Scan(&record.AppReference, &record.Email, &paymentDetails, &bookRoomDetails,
			&record.EmailSent, &record.CreatedAt, &record.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan booking row: %w", err)
		}
		if len(paymentDetails) > 0 {
			var pd domain.PaymentDetails
			if err := json.Unmarshal(paymentDetails, &pd); err == nil {
				record.PaymentDetails = &pd
			}
		}
		if len(bookRoomDetails) > 0 {
			var brd domain.BookRoomDetails
			if err := json.Unmarshal(bookRoomDetails, &brd); err == nil {
				record.BookRoomDetails = &brd
			}
		}
		records = append(records, record)
	}
	return records, nil
}

var _ recordstore.Store = (*Store)(nil)
