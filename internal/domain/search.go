package domain

import (
	"fmt"
	"time"
)

// SelectedDateRange is an inclusive check-in, exclusive check-out span.
type SelectedDateRange struct {
	Start time.Time
	End   time.Time
}

// Nights returns end-start in whole days. Callers should validate the range
// first; Nights does not itself enforce End > Start.
func (r SelectedDateRange) Nights() int {
	return int(r.End.Sub(r.Start).Hours() / 24)
}

// Validate enforces End > Start.
func (r SelectedDateRange) Validate() error {
	if !r.End.After(r.Start) {
		return fmt.Errorf("date range invalid: end %s is not after start %s", r.End, r.Start)
	}
	return nil
}

// RoomGuest is the guest composition for a single room.
type RoomGuest struct {
	Adults       int
	Children     int
	ChildrenAges []int
}

// Validate enforces adults >= 1 and len(children_ages) == children when
// children > 0.
func (g RoomGuest) Validate() error {
	if g.Adults < 1 {
		return fmt.Errorf("room guest requires at least 1 adult, got %d", g.Adults)
	}
	if g.Children > 0 && len(g.ChildrenAges) != g.Children {
		return fmt.Errorf("room guest declares %d children but has %d ages", g.Children, len(g.ChildrenAges))
	}
	return nil
}

// Pagination carries an opaque cursor/page request for search.
type Pagination struct {
	Page     int
	PageSize int
}

// HotelSearchCriteria is the normalized search request handed to a provider.
type HotelSearchCriteria struct {
	PlaceID          string
	CheckIn          time.Time
	CheckOut         time.Time
	NoOfNights       int
	NoOfRooms        int
	RoomGuests       []RoomGuest
	GuestNationality string // ISO-2
	Pagination       *Pagination
}

// Validate checks every invariant named in the data model: no_of_rooms >= 1,
// at least one room_guest, and sum(adults) >= no_of_rooms.
func (c HotelSearchCriteria) Validate() error {
	if c.NoOfRooms < 1 {
		return fmt.Errorf("no_of_rooms must be >= 1, got %d", c.NoOfRooms)
	}
	if len(c.RoomGuests) == 0 {
		return fmt.Errorf("room_guests must not be empty")
	}
	adults := 0
	for i, g := range c.RoomGuests {
		if err := g.Validate(); err != nil {
			return fmt.Errorf("room_guests[%d]: %w", i, err)
		}
		adults += g.Adults
	}
	if adults < c.NoOfRooms {
		return fmt.Errorf("sum of room_guests.adults (%d) must be >= no_of_rooms (%d)", adults, c.NoOfRooms)
	}
	return nil
}

// HotelInfoCriteria narrows a rate lookup to one hotel.
type HotelInfoCriteria struct {
	HotelID string
	Search  HotelSearchCriteria
}

// UISearchFilters are caller-supplied narrowing filters that adapters may
// use to shape the upstream request (star rating, price band, amenities).
// The core treats these as opaque passthrough.
type UISearchFilters struct {
	MinStarRating int
	MaxPrice      *int
	Amenities     []string
}
