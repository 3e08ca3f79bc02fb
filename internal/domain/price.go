package domain

// Price is the display-only price shown on a search results list.
type Price struct {
	RoomPrice    float64
	CurrencyCode string
}

// DetailedPrice is the full price breakdown used once a booking is selected.
// Invariant: OfferedPrice <= PublishedPrice.
type DetailedPrice struct {
	PublishedPrice float64
	OfferedPrice   float64
	SuggestedPrice float64
	Tax            float64
	ExtraGuestFee  float64
	ChildFee       float64
	Other          float64
	CurrencyCode   string
}

// Valid reports whether the published/offered invariant holds.
func (p DetailedPrice) Valid() bool {
	return p.OfferedPrice <= p.PublishedPrice
}

// TaxLine is one named tax or fee component of a rate.
type TaxLine struct {
	Description  string
	Amount       float64
	CurrencyCode string
	Included     bool
}

// PriceExcludingIncludedTaxesForOption applies PriceExcludingIncludedTaxes
// to a RoomOption, using its offered price as the room_price (the sellable
// price among DetailedPrice's published/offered/suggested variants).
func PriceExcludingIncludedTaxesForOption(r RoomOption) float64 {
	return PriceExcludingIncludedTaxes(r.Price.OfferedPrice, r.TaxLines)
}

// PriceExcludingIncludedTaxes computes room_price - sum(included tax
// amounts), floored at 0.
func PriceExcludingIncludedTaxes(roomPrice float64, taxLines []TaxLine) float64 {
	sum := 0.0
	for _, t := range taxLines {
		if t.Included {
			sum += t.Amount
		}
	}
	excl := roomPrice - sum
	if excl < 0 {
		return 0
	}
	return excl
}
