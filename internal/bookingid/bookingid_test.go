package bookingid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelforge/aggregator/internal/domain"
)

func testCases() []struct{ appRef, email, desc string } {
	return []struct{ appRef, email, desc string }{
		{"ABC123", "user@example.com", "basic case"},
		{"", "empty@example.com", "empty app reference"},
		{"special:chars::here", "special+chars@example.com", "special characters"},
		{"üñîçødé-123", "unicode@例子.com", "unicode characters"},
		{"very-long-reference-1234567890-abcdefghijklmnopqrstuvwxyz", "long@example.com", "very long app reference"},
		{"ABC:123::456", "user+tag@example.com", "app reference with colons"},
	}
}

// Canonical codec sanity check.
func TestEncode_CanonicalExample(t *testing.T) {
	got := Encode(domain.BookingIdentifier{AppReference: "HB-14", Email: "ab@def.com"})
	assert.Equal(t, "NP$5:HB-14$10:ab@def.com", got)
}

func TestDecode_CanonicalExample(t *testing.T) {
	id, ok := Decode("NP$5:HB-14$10:ab@def.com")
	require.True(t, ok)
	assert.Equal(t, "HB-14", id.AppReference)
	assert.Equal(t, "ab@def.com", id.Email)
}

func TestDecode_ExtraTrailingBytesIgnored(t *testing.T) {
	id, ok := Decode("NP$5:HB-14$10:ab@def.comEXTRA")
	require.True(t, ok)
	assert.Equal(t, "HB-14", id.AppReference)
	assert.Equal(t, "ab@def.com", id.Email)
}

func TestEncode_AllCases(t *testing.T) {
	for _, tc := range testCases() {
		id := domain.BookingIdentifier{AppReference: tc.appRef, Email: tc.email}
		got := Encode(id)
		want := Prefix + "$" + itoa(len(tc.appRef)) + ":" + tc.appRef + "$" + itoa(len(tc.email)) + ":" + tc.email
		assert.Equal(t, want, got, tc.desc)
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := []byte{}
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

func TestRoundTrip_AllCases(t *testing.T) {
	for _, tc := range testCases() {
		id := domain.BookingIdentifier{AppReference: tc.appRef, Email: tc.email}
		orderID := Encode(id)
		decoded, ok := Decode(orderID)
		require.True(t, ok, tc.desc)
		assert.Equal(t, tc.appRef, decoded.AppReference, tc.desc)
		assert.Equal(t, tc.email, decoded.Email, tc.desc)
	}
}

func TestDecode_InvalidPrefix(t *testing.T) {
	_, ok := Decode("XX$6:ABC123$16:user@example.com")
	assert.False(t, ok)
}

func TestDecode_InvalidLength(t *testing.T) {
	_, ok := Decode("NP$X:ABC123$16:user@example.com")
	assert.False(t, ok)
}

func TestDecode_MissingColon(t *testing.T) {
	_, ok := Decode("NP$6ABC123$16:user@example.com")
	assert.False(t, ok)
}

func TestDecode_TruncatedData(t *testing.T) {
	_, ok := Decode("NP$6:ABC123$16:user@exam")
	assert.False(t, ok)
}

func TestPaymentIdentifiers_FromBookingID(t *testing.T) {
	id := domain.BookingIdentifier{AppReference: "HB-14", Email: "ab@def.com"}
	pi := FromBookingID(id)
	assert.Nil(t, pi.PaymentID)
	assert.Equal(t, Encode(id), pi.OrderID)
	assert.Equal(t, "HB-14", pi.AppReference)
}

func TestPaymentIdentifiers_WithPaymentID(t *testing.T) {
	pi := PaymentIdentifiers{OrderID: "x", AppReference: "y"}
	pi2 := pi.WithPaymentID("PAY-1")
	require.NotNil(t, pi2.PaymentID)
	assert.Equal(t, "PAY-1", *pi2.PaymentID)
}
