package bookingid

import "github.com/hotelforge/aggregator/internal/domain"

// PaymentIdentifiers is the triple exchanged with the payment provider and
// the booking provider: the order-id we hand to the gateway, the
// app-reference we hand to the booking provider, and the payment-id the
// gateway eventually assigns. Kept distinct from BookingIdentifier per the
// original source's PaymentIdentifiers type.
type PaymentIdentifiers struct {
	PaymentID    *string
	OrderID      string
	AppReference string
}

// FromBookingID derives payment identifiers from a booking identifier,
// encoding it into the order-id immediately.
func FromBookingID(id domain.BookingIdentifier) PaymentIdentifiers {
	return PaymentIdentifiers{
		OrderID:      Encode(id),
		AppReference: id.AppReference,
	}
}

// FromOrderID decodes a gateway-supplied order-id back into payment
// identifiers. Returns ok=false if the order-id is malformed.
func FromOrderID(orderID string) (PaymentIdentifiers, bool) {
	id, ok := Decode(orderID)
	if !ok {
		return PaymentIdentifiers{}, false
	}
	return PaymentIdentifiers{OrderID: orderID, AppReference: id.AppReference}, true
}

// WithPaymentID returns a copy with PaymentID set, once the gateway has
// assigned one.
func (p PaymentIdentifiers) WithPaymentID(paymentID string) PaymentIdentifiers {
	p.PaymentID = &paymentID
	return p
}
