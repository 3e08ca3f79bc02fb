package hotelbeds

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"

	"github.com/hotelforge/aggregator/internal/domain"
	"github.com/hotelforge/aggregator/internal/grouping"
	"github.com/hotelforge/aggregator/internal/platform/logger"
	"github.com/hotelforge/aggregator/internal/provider"
	"github.com/hotelforge/aggregator/internal/providererr"
)

const providerName = "hotelbeds"
const consecutiveFailuresUntilUnhealthy = 3

// Adapter implements provider.HotelProvider and provider.PlaceProvider
// against a Hotelbeds-shaped upstream API.
type Adapter struct {
	client              *Client
	consecutiveFailures int32
}

// New builds an Adapter. requestsPerMinute bounds the adapter's own
// outbound call rate, independent of any caller-side throttling.
func New(apiKey, sharedSecret, baseURL string, requestsPerMinute int) *Adapter {
	return &Adapter{client: NewClient(apiKey, sharedSecret, baseURL, requestsPerMinute)}
}

func (a *Adapter) Name() string { return providerName }

// IsHealthy reports false once enough consecutive calls have failed in a
// row; a single success resets the counter.
func (a *Adapter) IsHealthy() bool {
	return atomic.LoadInt32(&a.consecutiveFailures) < consecutiveFailuresUntilUnhealthy
}

func (a *Adapter) recordSuccess() {
	atomic.StoreInt32(&a.consecutiveFailures, 0)
}

func (a *Adapter) recordFailure() {
	atomic.AddInt32(&a.consecutiveFailures, 1)
}

func toProviderError(err error, step providererr.Step) *providererr.ProviderError {
	if httpErr, ok := err.(*httpError); ok {
		return providererr.FromHTTPStatus(providerName, step, httpErr.status, httpErr.body)
	}
	return providererr.Network(providerName, step, err.Error())
}

func readJSON(resp *http.Response, out interface{}) error {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (a *Adapter) SearchHotels(ctx context.Context, criteria domain.HotelSearchCriteria, _ domain.UISearchFilters) (domain.HotelListAfterSearch, *providererr.ProviderError) {
	if err := criteria.Validate(); err != nil {
		return domain.HotelListAfterSearch{}, providererr.Validation(providerName, providererr.StepHotelSearch, err.Error())
	}

	req := toAvailabilityRequest(criteria)
	endpoint := fmt.Sprintf("/hotel-api/1.0/hotels/%s/availability", criteria.PlaceID)
	resp, err := a.client.post(ctx, endpoint, req)
	if err != nil {
		a.recordFailure()
		return domain.HotelListAfterSearch{}, toProviderError(err, providererr.StepHotelSearch)
	}

	var wire availabilityResponse
	if err := readJSON(resp, &wire); err != nil {
		a.recordFailure()
		return domain.HotelListAfterSearch{}, providererr.Parse(providerName, providererr.StepHotelSearch, err.Error())
	}

	a.recordSuccess()
	return domain.HotelListAfterSearch{HotelResults: toHotelSummaries(wire)}, nil
}

func (a *Adapter) GetHotelStaticDetails(ctx context.Context, hotelID string) (domain.HotelStaticDetails, *providererr.ProviderError) {
	endpoint := fmt.Sprintf("/hotel-content-api/1.0/hotels/%s/details?language=ENG", hotelID)
	resp, err := a.client.get(ctx, endpoint)
	if err != nil {
		a.recordFailure()
		return domain.HotelStaticDetails{}, toProviderError(err, providererr.StepHotelDetails)
	}

	var wire hotelContentResponse
	if err := readJSON(resp, &wire); err != nil {
		a.recordFailure()
		return domain.HotelStaticDetails{}, providererr.Parse(providerName, providererr.StepHotelDetails, err.Error())
	}

	a.recordSuccess()
	return toStaticDetails(wire), nil
}

func (a *Adapter) GetHotelRates(ctx context.Context, criteria domain.HotelInfoCriteria) (domain.GroupedRoomRates, *providererr.ProviderError) {
	if err := criteria.Search.Validate(); err != nil {
		return domain.GroupedRoomRates{}, providererr.Validation(providerName, providererr.StepHotelRate, err.Error())
	}

	req := toAvailabilityRequest(criteria.Search)
	endpoint := fmt.Sprintf("/hotel-api/1.0/hotels/%s/availability", criteria.HotelID)
	resp, err := a.client.post(ctx, endpoint, req)
	if err != nil {
		a.recordFailure()
		return domain.GroupedRoomRates{}, toProviderError(err, providererr.StepHotelRate)
	}

	var wire availabilityResponse
	if err := readJSON(resp, &wire); err != nil {
		a.recordFailure()
		return domain.GroupedRoomRates{}, providererr.Parse(providerName, providererr.StepHotelRate, err.Error())
	}

	a.recordSuccess()
	options := toRoomOptions(wire)
	groups, groupErr := grouping.Group(options, nil)
	if groupErr != nil {
		return domain.GroupedRoomRates{}, providererr.Other(providerName, providererr.StepHotelRate, groupErr.Error())
	}
	return domain.GroupedRoomRates{HotelID: criteria.HotelID, Groups: groups}, nil
}

func (a *Adapter) GetMinRates(ctx context.Context, criteria domain.HotelSearchCriteria, hotelIDs []string) (map[string]domain.Price, *providererr.ProviderError) {
	if err := criteria.Validate(); err != nil {
		return nil, providererr.Validation(providerName, providererr.StepHotelSearch, err.Error())
	}

	req := toAvailabilityRequest(criteria)
	endpoint := fmt.Sprintf("/hotel-api/1.0/hotels/availability?codes=%s", joinIDs(hotelIDs))
	resp, err := a.client.post(ctx, endpoint, req)
	if err != nil {
		a.recordFailure()
		return nil, toProviderError(err, providererr.StepHotelSearch)
	}

	var wire availabilityResponse
	if err := readJSON(resp, &wire); err != nil {
		a.recordFailure()
		return nil, providererr.Parse(providerName, providererr.StepHotelSearch, err.Error())
	}

	a.recordSuccess()
	return toMinRates(wire), nil
}

func (a *Adapter) BlockRoom(ctx context.Context, request domain.BlockRoomRequest) (domain.BlockRoomResponse, *providererr.ProviderError) {
	req := toBookingRequest(request)
	endpoint := "/hotel-api/1.0/checkrates"
	resp, err := a.client.post(ctx, endpoint, req)
	if err != nil {
		a.recordFailure()
		return domain.BlockRoomResponse{}, toProviderError(err, providererr.StepHotelBlockRoom)
	}

	var wire bookingResponse
	if err := readJSON(resp, &wire); err != nil {
		a.recordFailure()
		return domain.BlockRoomResponse{}, providererr.Parse(providerName, providererr.StepHotelBlockRoom, err.Error())
	}

	a.recordSuccess()
	return toBlockRoomResponse(wire), nil
}

func (a *Adapter) BookRoom(ctx context.Context, request domain.BookRoomRequest) (domain.BookRoomResponse, *providererr.ProviderError) {
	req := bookingRequest{ClientReference: request.BlockID}
	req.Holder.Name = request.UserDetails.FirstName
	req.Holder.Surname = request.UserDetails.LastName

	endpoint := "/hotel-api/1.0/bookings"
	resp, err := a.client.post(ctx, endpoint, req)
	if err != nil {
		a.recordFailure()
		return domain.BookRoomResponse{}, toProviderError(err, providererr.StepHotelBookRoom)
	}

	var wire bookingResponse
	if err := readJSON(resp, &wire); err != nil {
		a.recordFailure()
		return domain.BookRoomResponse{}, providererr.Parse(providerName, providererr.StepHotelBookRoom, err.Error())
	}

	a.recordSuccess()
	logger.Infof("hotelbeds booking created: reference=%s", wire.Booking.Reference)
	return toBookRoomResponse(wire), nil
}

func (a *Adapter) GetBookingDetails(ctx context.Context, request domain.GetBookingRequest) (domain.GetBookingResponse, *providererr.ProviderError) {
	endpoint := fmt.Sprintf("/hotel-api/1.0/bookings/%s", request.ProviderBookingID)
	resp, err := a.client.get(ctx, endpoint)
	if err != nil {
		a.recordFailure()
		return domain.GetBookingResponse{}, toProviderError(err, providererr.StepGetBookingDetails)
	}

	var wire bookingResponse
	if err := readJSON(resp, &wire); err != nil {
		a.recordFailure()
		return domain.GetBookingResponse{}, providererr.Parse(providerName, providererr.StepGetBookingDetails, err.Error())
	}

	a.recordSuccess()
	return toGetBookingResponse(wire), nil
}

func (a *Adapter) SearchPlaces(ctx context.Context, criteria domain.PlacesSearchPayload) (domain.PlacesResponse, *providererr.ProviderError) {
	endpoint := fmt.Sprintf("/hotel-content-api/1.0/locations/destinations?countryCode=%s&fields=all", criteria.Country)
	resp, err := a.client.get(ctx, endpoint)
	if err != nil {
		a.recordFailure()
		return domain.PlacesResponse{}, toProviderError(err, providererr.StepPlaceSearch)
	}

	var wire destinationsResponse
	if err := readJSON(resp, &wire); err != nil {
		a.recordFailure()
		return domain.PlacesResponse{}, providererr.Parse(providerName, providererr.StepPlaceSearch, err.Error())
	}

	a.recordSuccess()
	return domain.PlacesResponse{Places: toPlaces(wire)}, nil
}

func (a *Adapter) GetSinglePlaceDetails(ctx context.Context, payload domain.PlaceDetailsPayload) (domain.PlaceDetails, *providererr.ProviderError) {
	endpoint := fmt.Sprintf("/hotel-content-api/1.0/locations/destinations/%s", payload.PlaceID)
	resp, err := a.client.get(ctx, endpoint)
	if err != nil {
		a.recordFailure()
		return domain.PlaceDetails{}, toProviderError(err, providererr.StepPlaceDetails)
	}

	var wire destinationWire
	if err := readJSON(resp, &wire); err != nil {
		a.recordFailure()
		return domain.PlaceDetails{}, providererr.Parse(providerName, providererr.StepPlaceDetails, err.Error())
	}

	a.recordSuccess()
	return domain.PlaceDetails{
		Place: domain.Place{
			PlaceID:   wire.Code,
			Latitude:  wire.Latitude,
			Longitude: wire.Longitude,
		},
		Name: wire.Name.Content,
	}, nil
}

func joinIDs(ids []string) string {
	out := ""
	for i, id := range ids {
		if i > 0 {
			out += ","
		}
		out += id
	}
	return out
}

var (
	_ provider.HotelProvider = (*Adapter)(nil)
	_ provider.PlaceProvider = (*Adapter)(nil)
)
