package hotelplanner

import "github.com/hotelforge/aggregator/internal/domain"

func toSearchRequest(criteria domain.HotelSearchCriteria) searchRequest {
	adults := 0
	for _, g := range criteria.RoomGuests {
		adults += g.Adults
	}
	return searchRequest{
		HotelID:     criteria.PlaceID,
		CheckIn:     formatDate(criteria.CheckIn),
		CheckOut:    formatDate(criteria.CheckOut),
		RoomCount:   criteria.NoOfRooms,
		AdultsTotal: adults,
	}
}

func toHotelSummaries(resp searchResponse) []domain.HotelSummary {
	summaries := make([]domain.HotelSummary, 0, len(resp.Hotels))
	for _, h := range resp.Hotels {
		minPrice := 0.0
		currency := ""
		for i, r := range h.Rooms {
			total := r.NightlyRate * float64(r.Nights)
			if i == 0 || total < minPrice {
				minPrice = total
				currency = r.Currency
			}
		}
		summaries = append(summaries, domain.HotelSummary{
			HotelID:    h.ID,
			Name:       h.Name,
			City:       h.City,
			StarRating: h.Stars,
			MinPrice:   domain.Price{RoomPrice: minPrice, CurrencyCode: currency},
		})
	}
	return summaries
}

func toMinRates(resp searchResponse) map[string]domain.Price {
	rates := make(map[string]domain.Price, len(resp.Hotels))
	for _, s := range toHotelSummaries(resp) {
		rates[s.HotelID] = s.MinPrice
	}
	return rates
}

func toRoomOptions(resp searchResponse) []domain.RoomOption {
	var options []domain.RoomOption
	for _, h := range resp.Hotels {
		for _, r := range h.Rooms {
			total := r.NightlyRate * float64(r.Nights)
			var taxLines []domain.TaxLine
			if r.TaxAmount > 0 {
				taxLines = append(taxLines, domain.TaxLine{
					Description:  "service_tax",
					Amount:       r.TaxAmount,
					CurrencyCode: r.Currency,
					Included:     r.TaxIncluded,
				})
			}
			options = append(options, domain.RoomOption{
				Price: domain.DetailedPrice{
					PublishedPrice: total,
					OfferedPrice:   total,
					CurrencyCode:   r.Currency,
				},
				TaxLines: taxLines,
				RoomData: domain.RoomData{Name: r.RoomName},
				OccupancyInfo: &domain.OccupancyInfo{
					Adults: r.MaxAdults,
				},
				OfferID: r.RateID,
				RateKey: r.RateID,
			})
		}
	}
	return options
}

func toStaticDetails(resp hotelDetailsWire) domain.HotelStaticDetails {
	staticRooms := make([]domain.StaticRoom, 0, len(resp.RoomTypes))
	for _, rt := range resp.RoomTypes {
		staticRooms = append(staticRooms, domain.StaticRoom{
			MappedRoomID: rt.RoomID,
			Name:         rt.Name,
			Images:       rt.PhotoURLs,
			Amenities:    rt.Amenities,
		})
	}

	return domain.HotelStaticDetails{
		HotelID:      resp.ID,
		Name:         resp.Name,
		Code:         resp.ID,
		StarRating:   resp.Stars,
		Address:      resp.Address,
		Facilities:   resp.Amenities,
		Images:       resp.PhotoURLs,
		StaticRooms:  staticRooms,
		Latitude:     resp.Lat,
		Longitude:    resp.Lng,
		CheckInTime:  resp.CheckInTime,
		CheckOutTime: resp.CheckOutTime,
	}
}

func toBookingRequest(rateID string, guests domain.UserDetails, roomCount int) bookingRequest {
	return bookingRequest{
		RateID:     rateID,
		GuestFirst: guests.FirstName,
		GuestLast:  guests.LastName,
		GuestEmail: guests.Email,
		RoomCount:  roomCount,
	}
}

func toBlockRoomResponse(resp bookingResponse) domain.BlockRoomResponse {
	price := domain.DetailedPrice{OfferedPrice: resp.TotalAmount, PublishedPrice: resp.TotalAmount, CurrencyCode: resp.Currency}
	return domain.BlockRoomResponse{
		BlockID:       resp.BookingID,
		BlockedRooms:  []domain.BlockedRoom{{RoomName: resp.RoomName, Price: price}},
		TotalPrice:    price,
		ProviderData:  map[string]string{"status": resp.Status},
	}
}

func toBookRoomResponse(resp bookingResponse) domain.BookRoomResponse {
	price := domain.DetailedPrice{OfferedPrice: resp.TotalAmount, PublishedPrice: resp.TotalAmount, CurrencyCode: resp.Currency}
	return domain.BookRoomResponse{
		ProviderBookingID: resp.BookingID,
		Status:            resp.Status,
		BookedRooms:       []domain.BlockedRoom{{RoomName: resp.RoomName, Price: price}},
		TotalPrice:        price,
	}
}

func toGetBookingResponse(resp bookingResponse) domain.GetBookingResponse {
	booked := toBookRoomResponse(resp)
	return domain.GetBookingResponse{
		ProviderBookingID: booked.ProviderBookingID,
		Status:            booked.Status,
		BookedRooms:       booked.BookedRooms,
		TotalPrice:        booked.TotalPrice,
	}
}
