// Package bookingid implements the length-prefixed encoding that round-
// trips a BookingIdentifier through a payment gateway's opaque order-id
// string.
package bookingid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hotelforge/aggregator/internal/domain"
)

// Prefix tags every order-id produced by this codec.
const Prefix = "NP"

// Encode renders app_reference and email as
// PREFIX "$" LEN ":" app_reference "$" LEN ":" email
// where each LEN is the decimal byte-length of the following UTF-8
// segment.
func Encode(id domain.BookingIdentifier) string {
	var b strings.Builder
	b.WriteString(Prefix)
	writeLengthPrefixed(&b, id.AppReference)
	writeLengthPrefixed(&b, id.Email)
	return b.String()
}

func writeLengthPrefixed(b *strings.Builder, s string) {
	fmt.Fprintf(b, "$%d:%s", len(s), s)
}

// Decode parses an order-id produced by Encode. Surplus bytes after the
// email field are ignored for forward compatibility. Any shape violation
// (wrong prefix, non-numeric length, missing ':', insufficient remaining
// bytes) returns ok=false.
func Decode(orderID string) (domain.BookingIdentifier, bool) {
	if !strings.HasPrefix(orderID, Prefix) {
		return domain.BookingIdentifier{}, false
	}
	remaining := orderID[len(Prefix):]

	appRef, remaining, ok := extractLengthPrefixed(remaining)
	if !ok {
		return domain.BookingIdentifier{}, false
	}
	email, _, ok := extractLengthPrefixed(remaining)
	if !ok {
		return domain.BookingIdentifier{}, false
	}
	return domain.BookingIdentifier{AppReference: appRef, Email: email}, true
}

// extractLengthPrefixed reads one "$LEN:" + LEN-bytes segment from the
// front of input, returning the segment and whatever remains after it.
func extractLengthPrefixed(input string) (value string, rest string, ok bool) {
	if !strings.HasPrefix(input, "$") {
		return "", "", false
	}
	input = input[1:]

	colon := strings.IndexByte(input, ':')
	if colon < 0 {
		return "", "", false
	}

	length, err := strconv.Atoi(input[:colon])
	if err != nil || length < 0 {
		return "", "", false
	}

	input = input[colon+1:]
	if len(input) < length {
		return "", "", false
	}

	return input[:length], input[length:], true
}
