package hotelplanner

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"

	"github.com/hotelforge/aggregator/internal/domain"
	"github.com/hotelforge/aggregator/internal/grouping"
	"github.com/hotelforge/aggregator/internal/provider"
	"github.com/hotelforge/aggregator/internal/providererr"
)

const providerName = "hotelplanner"
const consecutiveFailuresUntilUnhealthy = 3

// Adapter implements provider.HotelProvider against a HotelPlanner-shaped
// upstream API. HotelPlanner has no place/geocoding endpoint in this
// integration, so Adapter does not implement provider.PlaceProvider.
type Adapter struct {
	client              *Client
	consecutiveFailures int32
}

// New builds an Adapter.
func New(apiKey, baseURL string) *Adapter {
	return &Adapter{client: NewClient(apiKey, baseURL)}
}

func (a *Adapter) Name() string { return providerName }

func (a *Adapter) IsHealthy() bool {
	return atomic.LoadInt32(&a.consecutiveFailures) < consecutiveFailuresUntilUnhealthy
}

func (a *Adapter) recordSuccess() { atomic.StoreInt32(&a.consecutiveFailures, 0) }
func (a *Adapter) recordFailure() { atomic.AddInt32(&a.consecutiveFailures, 1) }

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

	resp, err := a.client.post(ctx, "/v2/search", toSearchRequest(criteria))
	if err != nil {
		a.recordFailure()
		return domain.HotelListAfterSearch{}, toProviderError(err, providererr.StepHotelSearch)
	}

	var wire searchResponse
	if err := readJSON(resp, &wire); err != nil {
		a.recordFailure()
		return domain.HotelListAfterSearch{}, providererr.Parse(providerName, providererr.StepHotelSearch, err.Error())
	}

	a.recordSuccess()
	return domain.HotelListAfterSearch{HotelResults: toHotelSummaries(wire)}, nil
}

func (a *Adapter) GetHotelStaticDetails(ctx context.Context, hotelID string) (domain.HotelStaticDetails, *providererr.ProviderError) {
	resp, err := a.client.get(ctx, "/v2/hotels/"+hotelID)
	if err != nil {
		a.recordFailure()
		return domain.HotelStaticDetails{}, toProviderError(err, providererr.StepHotelDetails)
	}

	var wire hotelDetailsWire
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

	req := toSearchRequest(criteria.Search)
	req.HotelID = criteria.HotelID
	resp, err := a.client.post(ctx, "/v2/search", req)
	if err != nil {
		a.recordFailure()
		return domain.GroupedRoomRates{}, toProviderError(err, providererr.StepHotelRate)
	}

	var wire searchResponse
	if err := readJSON(resp, &wire); err != nil {
		a.recordFailure()
		return domain.GroupedRoomRates{}, providererr.Parse(providerName, providererr.StepHotelRate, err.Error())
	}

	a.recordSuccess()
	groups, groupErr := grouping.Group(toRoomOptions(wire), nil)
	if groupErr != nil {
		return domain.GroupedRoomRates{}, providererr.Other(providerName, providererr.StepHotelRate, groupErr.Error())
	}
	return domain.GroupedRoomRates{HotelID: criteria.HotelID, Groups: groups}, nil
}

func (a *Adapter) GetMinRates(ctx context.Context, criteria domain.HotelSearchCriteria, _ []string) (map[string]domain.Price, *providererr.ProviderError) {
	if err := criteria.Validate(); err != nil {
		return nil, providererr.Validation(providerName, providererr.StepHotelSearch, err.Error())
	}

	resp, err := a.client.post(ctx, "/v2/search", toSearchRequest(criteria))
	if err != nil {
		a.recordFailure()
		return nil, toProviderError(err, providererr.StepHotelSearch)
	}

	var wire searchResponse
	if err := readJSON(resp, &wire); err != nil {
		a.recordFailure()
		return nil, providererr.Parse(providerName, providererr.StepHotelSearch, err.Error())
	}

	a.recordSuccess()
	return toMinRates(wire), nil
}

func (a *Adapter) BlockRoom(ctx context.Context, request domain.BlockRoomRequest) (domain.BlockRoomResponse, *providererr.ProviderError) {
	if len(request.SelectedRooms) == 0 {
		return domain.BlockRoomResponse{}, providererr.Validation(providerName, providererr.StepHotelBlockRoom, "no rooms selected")
	}
	room := request.SelectedRooms[0]

	resp, err := a.client.post(ctx, "/v2/holds", toBookingRequest(room.RateKey, request.UserDetails, room.RoomCount))
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
	resp, err := a.client.post(ctx, "/v2/bookings", map[string]string{
		"hold_id":     request.BlockID,
		"guest_first": request.UserDetails.FirstName,
		"guest_last":  request.UserDetails.LastName,
		"guest_email": request.UserDetails.Email,
	})
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
	return toBookRoomResponse(wire), nil
}

func (a *Adapter) GetBookingDetails(ctx context.Context, request domain.GetBookingRequest) (domain.GetBookingResponse, *providererr.ProviderError) {
	resp, err := a.client.get(ctx, "/v2/bookings/"+request.ProviderBookingID)
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

var _ provider.HotelProvider = (*Adapter)(nil)
