package domain

import "time"

// RoomOption is one concrete sellable rate row as returned by an adapter,
// before grouping. RateKey is unique among rows in a single rates response.
type RoomOption struct {
	MappedRoomID         string
	Price                DetailedPrice
	TaxLines             []TaxLine
	RoomData             RoomData
	MealPlan             string
	OccupancyInfo        *OccupancyInfo
	CancellationPolicies []CancellationPolicy
	OfferID              string
	RateKey              string
}

// RoomData is the room-level description carried by a RoomOption, distinct
// from the static room catalogue entry it may or may not correspond to.
type RoomData struct {
	Name string
}

// OccupancyInfo describes who a rate is priced for.
type OccupancyInfo struct {
	Adults       int
	Children     int
	ChildrenAges []int
}

// CancellationPolicy is one cancellation rule attached to a rate.
type CancellationPolicy struct {
	Description      string
	FreeUntil        *time.Time
	PenaltyAmount    float64
	PenaltyCurrency  string
}

// RoomVariant is the per-offer rollup produced by the grouping engine.
type RoomVariant struct {
	OfferID                    string
	RateKey                    string
	RoomName                   string
	MappedRoomID               string
	RoomCount                  int
	TotalPriceForAllRooms      float64
	PricePerRoomExcludingTaxes float64
	Currency                   string
	TaxBreakdown               []TaxLine
	OccupancyInfo              *OccupancyInfo
	CancellationInfo           []CancellationPolicy
}

// RoomGroup is the user-facing aggregation of all offers sharing a mapped
// room or combined-room signature. Invariant: MinPrice equals the smallest
// variant's PricePerRoomExcludingTaxes, and Variants is sorted ascending by
// that field.
type RoomGroup struct {
	Name         string
	MappedRoomID string
	MinPrice     float64
	Currency     string
	Images       []string
	Amenities    []string
	BedTypes     []string
	Variants     []RoomVariant
}

// StaticRoom is a provider's catalogue entry for a physical room type,
// independent of any particular rate.
type StaticRoom struct {
	MappedRoomID string
	Name         string
	Images       []string
	Amenities    []string
	BedTypes     []string
}

// HotelStaticDetails is the provider-agnostic hotel description.
type HotelStaticDetails struct {
	HotelID       string
	Name          string
	Code          string
	StarRating    int
	Address       string
	Facilities    []string
	Images        []string
	StaticRooms   []StaticRoom
	Latitude      float64
	Longitude     float64
	CheckInTime   string
	CheckOutTime  string
	Policies      []string
}

// HotelSummary is the lightweight per-hotel result of the first phase of a
// two-phase search: static-ish metadata plus the minimum display price
// found across all room types and rates.
type HotelSummary struct {
	HotelID    string
	Name       string
	City       string
	CountryCode string
	StarRating int
	MinPrice   Price
}

// HotelListAfterSearch is what search_hotels returns: the hotel summaries
// found for one search criteria.
type HotelListAfterSearch struct {
	HotelResults []HotelSummary
}

// GroupedRoomRates is what get_hotel_rates returns once grouping has run.
type GroupedRoomRates struct {
	HotelID string
	Groups  []RoomGroup
}
