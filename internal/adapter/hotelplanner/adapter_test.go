package hotelplanner

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/h2non/gock.v1"

	"github.com/hotelforge/aggregator/internal/domain"
)

func testCriteria() domain.HotelSearchCriteria {
	return domain.HotelSearchCriteria{
		PlaceID:    "hp-100",
		CheckIn:    time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		NoOfRooms:  1,
		RoomGuests: []domain.RoomGuest{{Adults: 2}},
	}
}

func newTestAdapter() *Adapter {
	a := New("test-key", "https://api.test.hotelplanner.com")
	gock.InterceptClient(a.client.httpClient)
	return a
}

func TestSearchHotels(t *testing.T) {
	defer gock.Off()
	a := newTestAdapter()

	gock.New("https://api.test.hotelplanner.com").
		Post("/v2/search").
		Reply(200).
		JSON(map[string]interface{}{
			"hotels": []map[string]interface{}{
				{
					"id":    "hp-100",
					"name":  "Riverside Inn",
					"city":  "Austin",
					"stars": 3,
					"rooms": []map[string]interface{}{
						{"room_id": "r1", "room_name": "Queen Room", "rate_id": "rate-1", "nightly_rate": 80.0, "nights": 3, "currency": "USD", "max_adults": 2},
					},
				},
			},
		})

	result, err := a.SearchHotels(context.Background(), testCriteria(), domain.UISearchFilters{})
	require.Nil(t, err)
	require.Len(t, result.HotelResults, 1)
	assert.Equal(t, "hp-100", result.HotelResults[0].HotelID)
	assert.Equal(t, "Riverside Inn", result.HotelResults[0].Name)
	assert.Equal(t, 3, result.HotelResults[0].StarRating)
	assert.Equal(t, 240.0, result.HotelResults[0].MinPrice.RoomPrice)
	assert.True(t, a.IsHealthy())
}

func TestSearchHotels_ValidationError(t *testing.T) {
	a := newTestAdapter()

	criteria := testCriteria()
	criteria.NoOfRooms = 0

	_, err := a.SearchHotels(context.Background(), criteria, domain.UISearchFilters{})
	require.NotNil(t, err)
	assert.Equal(t, "validation", string(err.Kind))
}

func TestSearchHotels_HTTPErrorMapsToServiceUnavailable(t *testing.T) {
	defer gock.Off()
	a := newTestAdapter()

	gock.New("https://api.test.hotelplanner.com").
		Post("/v2/search").
		Reply(503).
		BodyString("upstream down")

	_, err := a.SearchHotels(context.Background(), testCriteria(), domain.UISearchFilters{})
	require.NotNil(t, err)
	assert.Equal(t, "service_unavailable", string(err.Kind))
	assert.True(t, err.ShouldFallback())
}

func TestIsHealthy_FlipsAfterConsecutiveFailures(t *testing.T) {
	defer gock.Off()
	a := newTestAdapter()

	for i := 0; i < consecutiveFailuresUntilUnhealthy; i++ {
		gock.New("https://api.test.hotelplanner.com").
			Post("/v2/search").
			Reply(500).
			BodyString("down")
	}

	for i := 0; i < consecutiveFailuresUntilUnhealthy; i++ {
		_, err := a.SearchHotels(context.Background(), testCriteria(), domain.UISearchFilters{})
		require.NotNil(t, err)
	}

	assert.False(t, a.IsHealthy())
}

func TestGetHotelStaticDetails(t *testing.T) {
	defer gock.Off()
	a := newTestAdapter()

	gock.New("https://api.test.hotelplanner.com").
		Get("/v2/hotels/hp-100").
		Reply(200).
		JSON(map[string]interface{}{
			"id":             "hp-100",
			"name":           "Riverside Inn",
			"stars":          3,
			"address":        "1 River Rd",
			"check_in_time":  "15:00",
			"check_out_time": "10:00",
		})

	details, err := a.GetHotelStaticDetails(context.Background(), "hp-100")
	require.Nil(t, err)
	assert.Equal(t, "Riverside Inn", details.Name)
	assert.Equal(t, 3, details.StarRating)
	assert.Equal(t, "15:00", details.CheckInTime)
}

func TestBlockRoom(t *testing.T) {
	defer gock.Off()
	a := newTestAdapter()

	gock.New("https://api.test.hotelplanner.com").
		Post("/v2/holds").
		Reply(200).
		JSON(map[string]interface{}{
			"booking_id":   "HOLD-1",
			"status":       "HELD",
			"room_name":    "Queen Room",
			"total_amount": 240.0,
			"currency":     "USD",
		})

	resp, err := a.BlockRoom(context.Background(), domain.BlockRoomRequest{
		SelectedRooms: []domain.SelectedRoom{{RateKey: "rate-1", RoomCount: 1}},
		UserDetails:   domain.UserDetails{FirstName: "Ada", LastName: "Lovelace"},
	})
	require.Nil(t, err)
	assert.Equal(t, "HOLD-1", resp.BlockID)
	assert.Equal(t, 240.0, resp.TotalPrice.OfferedPrice)
}

func TestBookRoom(t *testing.T) {
	defer gock.Off()
	a := newTestAdapter()

	gock.New("https://api.test.hotelplanner.com").
		Post("/v2/bookings").
		Reply(200).
		JSON(map[string]interface{}{
			"booking_id":   "BK-9",
			"status":       "CONFIRMED",
			"room_name":    "Queen Room",
			"total_amount": 240.0,
			"currency":     "USD",
		})

	resp, err := a.BookRoom(context.Background(), domain.BookRoomRequest{
		BlockID:     "HOLD-1",
		UserDetails: domain.UserDetails{FirstName: "Ada", LastName: "Lovelace"},
	})
	require.Nil(t, err)
	assert.Equal(t, "BK-9", resp.ProviderBookingID)
	assert.Equal(t, "CONFIRMED", resp.Status)
}

func TestGetBookingDetails(t *testing.T) {
	defer gock.Off()
	a := newTestAdapter()

	gock.New("https://api.test.hotelplanner.com").
		Get("/v2/bookings/BK-9").
		Reply(200).
		JSON(map[string]interface{}{
			"booking_id":   "BK-9",
			"status":       "CONFIRMED",
			"room_name":    "Queen Room",
			"total_amount": 240.0,
			"currency":     "USD",
		})

	resp, err := a.GetBookingDetails(context.Background(), domain.GetBookingRequest{ProviderBookingID: "BK-9"})
	require.Nil(t, err)
	assert.Equal(t, "BK-9", resp.ProviderBookingID)
	assert.Equal(t, "CONFIRMED", resp.Status)
}
