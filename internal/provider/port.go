// Package provider defines the abstract contract every inventory and place
// provider implements, independent of any upstream wire format.
package provider

import (
	"context"

	"github.com/hotelforge/aggregator/internal/domain"
	"github.com/hotelforge/aggregator/internal/providererr"
)

// HotelProvider is the capability set an adapter or the composite exposes
// for hotel inventory. Every operation is idempotent from the caller's
// view except BlockRoom and BookRoom, which have provider-side side
// effects and MUST NOT be transparently retried.
type HotelProvider interface {
	Name() string
	IsHealthy() bool

	SearchHotels(ctx context.Context, criteria domain.HotelSearchCriteria, uiFilters domain.UISearchFilters) (domain.HotelListAfterSearch, *providererr.ProviderError)
	GetHotelStaticDetails(ctx context.Context, hotelID string) (domain.HotelStaticDetails, *providererr.ProviderError)
	GetHotelRates(ctx context.Context, criteria domain.HotelInfoCriteria) (domain.GroupedRoomRates, *providererr.ProviderError)
	GetMinRates(ctx context.Context, criteria domain.HotelSearchCriteria, hotelIDs []string) (map[string]domain.Price, *providererr.ProviderError)
	BlockRoom(ctx context.Context, request domain.BlockRoomRequest) (domain.BlockRoomResponse, *providererr.ProviderError)
	BookRoom(ctx context.Context, request domain.BookRoomRequest) (domain.BookRoomResponse, *providererr.ProviderError)
	GetBookingDetails(ctx context.Context, request domain.GetBookingRequest) (domain.GetBookingResponse, *providererr.ProviderError)
}

// PlaceProvider is the analogous contract for place/geocoding lookups.
type PlaceProvider interface {
	Name() string
	IsHealthy() bool

	SearchPlaces(ctx context.Context, criteria domain.PlacesSearchPayload) (domain.PlacesResponse, *providererr.ProviderError)
	GetSinglePlaceDetails(ctx context.Context, payload domain.PlaceDetailsPayload) (domain.PlaceDetails, *providererr.ProviderError)
}
