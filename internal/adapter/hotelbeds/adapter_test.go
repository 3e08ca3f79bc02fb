package hotelbeds

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
		PlaceID:    "6619",
		CheckIn:    time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC),
		NoOfRooms:  1,
		RoomGuests: []domain.RoomGuest{{Adults: 2}},
	}
}

func newTestAdapter() *Adapter {
	a := New("test-key", "test-secret", "https://api.test.hotelbeds.com", 1000)
	gock.InterceptClient(a.client.httpClient)
	return a
}

func TestSearchHotels(t *testing.T) {
	defer gock.Off()
	a := newTestAdapter()

	gock.New("https://api.test.hotelbeds.com").
		Post("/hotel-api/1.0/hotels/6619/availability").
		Reply(200).
		JSON(map[string]interface{}{
			"hotels": map[string]interface{}{
				"hotels": []map[string]interface{}{
					{
						"code":         "6619",
						"name":         "Grand Hotel",
						"zone":         map[string]interface{}{"name": "Downtown"},
						"categoryCode": map[string]interface{}{"code": "4"},
						"minRate":      "120.50",
						"currency":     "EUR",
					},
				},
			},
		})

	result, err := a.SearchHotels(context.Background(), testCriteria(), domain.UISearchFilters{})
	require.Nil(t, err)
	require.Len(t, result.HotelResults, 1)
	assert.Equal(t, "6619", result.HotelResults[0].HotelID)
	assert.Equal(t, "Grand Hotel", result.HotelResults[0].Name)
	assert.Equal(t, 4, result.HotelResults[0].StarRating)
	assert.Equal(t, 120.50, result.HotelResults[0].MinPrice.RoomPrice)
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

	gock.New("https://api.test.hotelbeds.com").
		Post("/hotel-api/1.0/hotels/6619/availability").
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
		gock.New("https://api.test.hotelbeds.com").
			Post("/hotel-api/1.0/hotels/6619/availability").
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

	gock.New("https://api.test.hotelbeds.com").
		Get("/hotel-content-api/1.0/hotels/6619/details").
		Reply(200).
		JSON(map[string]interface{}{
			"hotel": map[string]interface{}{
				"code":         "6619",
				"name":         map[string]interface{}{"content": "Grand Hotel"},
				"categoryCode": "4",
				"address":      map[string]interface{}{"content": "123 Main St"},
				"coordinates":  map[string]interface{}{"latitude": 41.1, "longitude": 2.1},
				"checkIn":      "14:00",
				"checkOut":     "11:00",
			},
		})

	details, err := a.GetHotelStaticDetails(context.Background(), "6619")
	require.Nil(t, err)
	assert.Equal(t, "Grand Hotel", details.Name)
	assert.Equal(t, 4, details.StarRating)
	assert.Equal(t, "14:00", details.CheckInTime)
}

func TestBookRoom(t *testing.T) {
	defer gock.Off()
	a := newTestAdapter()

	gock.New("https://api.test.hotelbeds.com").
		Post("/hotel-api/1.0/bookings").
		Reply(200).
		JSON(map[string]interface{}{
			"booking": map[string]interface{}{
				"reference": "BK-12345",
				"status":    "CONFIRMED",
				"totalNet":  "240.00",
				"currency":  "EUR",
				"hotel": map[string]interface{}{
					"rooms": []map[string]interface{}{
						{"name": "Deluxe Room", "rates": []map[string]interface{}{{"net": "240.00"}}},
					},
				},
			},
		})

	resp, err := a.BookRoom(context.Background(), domain.BookRoomRequest{
		BlockID:     "BK-HOLD-1",
		UserDetails: domain.UserDetails{FirstName: "Ada", LastName: "Lovelace"},
	})
	require.Nil(t, err)
	assert.Equal(t, "BK-12345", resp.ProviderBookingID)
	assert.Equal(t, "CONFIRMED", resp.Status)
	assert.Equal(t, 240.0, resp.TotalPrice.OfferedPrice)
}

func TestSearchPlaces(t *testing.T) {
	defer gock.Off()
	a := newTestAdapter()

	gock.New("https://api.test.hotelbeds.com").
		Get("/hotel-content-api/1.0/locations/destinations").
		Reply(200).
		JSON(map[string]interface{}{
			"destinations": []map[string]interface{}{
				{"code": "BCN", "name": map[string]interface{}{"content": "Barcelona"}, "countryCode": "ES"},
			},
		})

	resp, err := a.SearchPlaces(context.Background(), domain.PlacesSearchPayload{Country: "ES"})
	require.Nil(t, err)
	require.Len(t, resp.Places, 1)
	assert.Equal(t, "BCN", resp.Places[0].PlaceID)
}
