package domain

import "time"

// UserDetails identifies the person a booking is made for.
type UserDetails struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// SelectedRoom is one room a user has chosen to block/book, tying a rate
// back to the offer it came from.
type SelectedRoom struct {
	OfferID      string
	RateKey      string
	MappedRoomID string
	RoomCount    int
}

// BlockRoomRequest asks a provider to place a short-lived hold on rooms.
type BlockRoomRequest struct {
	HotelInfoCriteria HotelInfoCriteria
	UserDetails       UserDetails
	SelectedRooms     []SelectedRoom
	TotalGuests       int
	SpecialRequests   string
}

// BlockedRoom is one room confirmed held by the provider.
type BlockedRoom struct {
	MappedRoomID string
	RoomName     string
	Price        DetailedPrice
}

// BlockRoomResponse is the provider's answer to a BlockRoomRequest. BlockID
// is opaque and expires on a provider-defined TTL.
type BlockRoomResponse struct {
	BlockID                       string
	IsPriceChanged                bool
	IsCancellationPolicyChanged   bool
	BlockedRooms                  []BlockedRoom
	TotalPrice                    DetailedPrice
	ProviderData                  map[string]string
}

// BookRoomRequest books the rooms held by a prior BlockRoomResponse.
type BookRoomRequest struct {
	BlockID     string
	UserDetails UserDetails
	HotelID     string
}

// BookRoomResponse is the provider's confirmation of a completed booking.
type BookRoomResponse struct {
	ProviderBookingID string
	Status            string
	BookedRooms       []BlockedRoom
	TotalPrice        DetailedPrice
}

// GetBookingRequest looks up a previously made booking at the provider.
type GetBookingRequest struct {
	ProviderBookingID string
}

// GetBookingResponse is the provider's current view of a booking.
type GetBookingResponse struct {
	ProviderBookingID string
	Status            string
	BookedRooms       []BlockedRoom
	TotalPrice        DetailedPrice
}

// BookingIdentifier is the identity of a booking in this system; it is
// encoded to/from a single opaque order-id string by the codec.
type BookingIdentifier struct {
	AppReference string
	Email        string
}

// ServerSideBookingEvent is the message that travels through the post-payment
// pipeline, mutated in place by each step's executor.
type ServerSideBookingEvent struct {
	OrderID              string
	UserEmail            string
	PaymentID            *string
	PaymentStatus        *PaymentStatus
	BackendPaymentStatus *BackendPaymentStatus
	CorrelationID        string
	// BlockID, HotelID and UserDetails carry forward the held offer from
	// the block_room call that preceded payment, so the book_room step
	// can replay it without a second round-trip to the caller.
	BlockID          string
	HotelID          string
	UserDetails      UserDetails
	BookRoomResponse *BookRoomResponse
}

// PaymentStatus is the normalized status a payment gateway reports.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
	PaymentStatusExpired PaymentStatus = "expired"
)

// IsFinal reports whether a payment status will not change further.
func (s PaymentStatus) IsFinal() bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusFailed, PaymentStatusExpired:
		return true
	default:
		return false
	}
}

// BackendPaymentStatus is the record store's own view of payment state,
// distinct from (but derived from) the gateway's PaymentStatus.
type BackendPaymentStatus string

const (
	BackendPaymentStatusUnpaid BackendPaymentStatus = "unpaid"
	BackendPaymentStatusPaid   BackendPaymentStatus = "paid"
)

// PaymentDetails is what S2 persists to the record store.
type PaymentDetails struct {
	PaymentID     string
	OrderID       string
	Status        PaymentStatus
	Amount        float64
	Currency      string
	PaidAt        *time.Time
}

// BookRoomDetails is what S4 persists to the record store.
type BookRoomDetails struct {
	ProviderBookingID string
	Status            string
	BookedAt          time.Time
}

// BookingRecord is the append-mostly record kept by the external store,
// referenced abstractly via the RecordStore port.
type BookingRecord struct {
	AppReference    string
	Email           string
	PaymentDetails  *PaymentDetails
	BookRoomDetails *BookRoomDetails
	EmailSent       bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
