package hotelbeds

import (
	"strconv"

	"github.com/hotelforge/aggregator/internal/domain"
)

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func toOccupancies(criteria domain.HotelSearchCriteria) []occupancy {
	occupancies := make([]occupancy, 0, len(criteria.RoomGuests))
	for _, g := range criteria.RoomGuests {
		paxes := make([]pax, 0, g.Adults+g.Children)
		for i := 0; i < g.Adults; i++ {
			paxes = append(paxes, pax{Type: "AD"})
		}
		for i, age := range g.ChildrenAges {
			_ = i
			paxes = append(paxes, pax{Type: "CH", Age: age})
		}
		occupancies = append(occupancies, occupancy{
			Rooms:    1,
			Adults:   g.Adults,
			Children: g.Children,
			Paxes:    paxes,
		})
	}
	return occupancies
}

func toAvailabilityRequest(criteria domain.HotelSearchCriteria) availabilityRequest {
	req := availabilityRequest{Occupancies: toOccupancies(criteria)}
	req.Stay.CheckIn = formatDate(criteria.CheckIn)
	req.Stay.CheckOut = formatDate(criteria.CheckOut)
	req.Stay.Shift = "STANDARD"
	return req
}

// toHotelSummaries flattens every hotel's minimum rate into a display summary.
func toHotelSummaries(resp availabilityResponse) []domain.HotelSummary {
	summaries := make([]domain.HotelSummary, 0, len(resp.Hotels.Hotels))
	for _, h := range resp.Hotels.Hotels {
		stars, _ := strconv.Atoi(h.Category.Code)
		summaries = append(summaries, domain.HotelSummary{
			HotelID:    h.Code,
			Name:       h.Name,
			City:       h.Zone.Name,
			StarRating: stars,
			MinPrice: domain.Price{
				RoomPrice:    parseFloat(h.MinRate),
				CurrencyCode: h.Currency,
			},
		})
	}
	return summaries
}

func toMinRates(resp availabilityResponse) map[string]domain.Price {
	rates := make(map[string]domain.Price, len(resp.Hotels.Hotels))
	for _, h := range resp.Hotels.Hotels {
		rates[h.Code] = domain.Price{RoomPrice: parseFloat(h.MinRate), CurrencyCode: h.Currency}
	}
	return rates
}

// toRoomOptions flattens every room/rate pair of one hotel's availability
// response into the un-grouped rows the grouping engine consumes.
func toRoomOptions(resp availabilityResponse) []domain.RoomOption {
	var options []domain.RoomOption
	for _, h := range resp.Hotels.Hotels {
		for _, room := range h.Rooms {
			for _, r := range room.Rates {
				options = append(options, toRoomOption(room, r))
			}
		}
	}
	return options
}

func toRoomOption(room roomRate, r rate) domain.RoomOption {
	net := parseFloat(r.Net)
	selling := parseFloat(r.SellingRate)
	if selling == 0 {
		selling = net
	}

	var taxLines []domain.TaxLine
	if r.Taxes != nil {
		for _, t := range r.Taxes.Taxes {
			taxLines = append(taxLines, domain.TaxLine{
				Description:  t.Type,
				Amount:       parseFloat(t.Amount),
				CurrencyCode: t.Currency,
				Included:     t.Included,
			})
		}
	}

	var cancellationPolicies []domain.CancellationPolicy
	for _, c := range r.CancellationPolicies {
		cancellationPolicies = append(cancellationPolicies, domain.CancellationPolicy{
			PenaltyAmount: parseFloat(c.Amount),
		})
	}

	return domain.RoomOption{
		MappedRoomID: room.Code,
		Price: domain.DetailedPrice{
			PublishedPrice: selling,
			OfferedPrice:   net,
			CurrencyCode:   "EUR",
		},
		TaxLines: taxLines,
		RoomData: domain.RoomData{Name: room.Name},
		MealPlan: r.RateClass,
		OccupancyInfo: &domain.OccupancyInfo{
			Adults:   r.Adults,
			Children: r.Children,
		},
		CancellationPolicies: cancellationPolicies,
		OfferID:              r.RateKey,
		RateKey:               r.RateKey,
	}
}

func toStaticDetails(resp hotelContentResponse) domain.HotelStaticDetails {
	h := resp.Hotel
	stars, _ := strconv.Atoi(h.CategoryCode)

	images := make([]string, 0, len(h.Images))
	for _, img := range h.Images {
		images = append(images, img.Path)
	}

	facilities := make([]string, 0, len(h.Facilities))
	for _, f := range h.Facilities {
		facilities = append(facilities, f.Description.Content)
	}

	staticRooms := make([]domain.StaticRoom, 0, len(h.Rooms))
	for _, r := range h.Rooms {
		roomImages := make([]string, 0, len(r.Images))
		for _, img := range r.Images {
			roomImages = append(roomImages, img.Path)
		}
		roomFacilities := make([]string, 0, len(r.Facilities))
		for _, f := range r.Facilities {
			roomFacilities = append(roomFacilities, f.Description.Content)
		}
		staticRooms = append(staticRooms, domain.StaticRoom{
			MappedRoomID: r.RoomCode,
			Name:         r.Description.Content,
			Images:       roomImages,
			Amenities:    roomFacilities,
		})
	}

	return domain.HotelStaticDetails{
		HotelID:      h.Code,
		Name:         h.Name.Content,
		Code:         h.Code,
		StarRating:   stars,
		Address:      h.Address.Content,
		Facilities:   facilities,
		Images:       images,
		StaticRooms:  staticRooms,
		Latitude:     h.Coordinates.Latitude,
		Longitude:    h.Coordinates.Longitude,
		CheckInTime:  h.CheckIn,
		CheckOutTime: h.CheckOut,
	}
}

func toBookingRequest(request domain.BlockRoomRequest) bookingRequest {
	req := bookingRequest{ClientReference: request.HotelInfoCriteria.HotelID}
	req.Holder.Name = request.UserDetails.FirstName
	req.Holder.Surname = request.UserDetails.LastName

	for _, room := range request.SelectedRooms {
		paxes := make([]pax, 0, room.RoomCount)
		for i := 0; i < room.RoomCount; i++ {
			paxes = append(paxes, pax{Type: "AD"})
		}
		req.Rooms = append(req.Rooms, bookingRoom{RateKey: room.RateKey, Paxes: paxes})
	}
	return req
}

func toBlockRoomResponse(resp bookingResponse) domain.BlockRoomResponse {
	b := resp.Booking
	var blocked []domain.BlockedRoom
	total := 0.0
	for _, r := range b.Hotel.Rooms {
		price := 0.0
		if len(r.Rates) > 0 {
			price = parseFloat(r.Rates[0].Net)
		}
		total += price
		blocked = append(blocked, domain.BlockedRoom{
			RoomName: r.Name,
			Price:    domain.DetailedPrice{OfferedPrice: price, PublishedPrice: price, CurrencyCode: b.Currency},
		})
	}

	return domain.BlockRoomResponse{
		BlockID: b.Reference,
		BlockedRooms: blocked,
		TotalPrice: domain.DetailedPrice{
			OfferedPrice:   parseFloat(b.TotalNet),
			PublishedPrice: parseFloat(b.TotalNet),
			CurrencyCode:   b.Currency,
		},
		ProviderData: map[string]string{"status": b.Status},
	}
}

func toBookRoomResponse(resp bookingResponse) domain.BookRoomResponse {
	b := resp.Booking
	var booked []domain.BlockedRoom
	for _, r := range b.Hotel.Rooms {
		price := 0.0
		if len(r.Rates) > 0 {
			price = parseFloat(r.Rates[0].Net)
		}
		booked = append(booked, domain.BlockedRoom{
			RoomName: r.Name,
			Price:    domain.DetailedPrice{OfferedPrice: price, PublishedPrice: price, CurrencyCode: b.Currency},
		})
	}

	return domain.BookRoomResponse{
		ProviderBookingID: b.Reference,
		Status:            b.Status,
		BookedRooms:       booked,
		TotalPrice: domain.DetailedPrice{
			OfferedPrice:   parseFloat(b.TotalNet),
			PublishedPrice: parseFloat(b.TotalNet),
			CurrencyCode:   b.Currency,
		},
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

func toPlaces(resp destinationsResponse) []domain.Place {
	places := make([]domain.Place, 0, len(resp.Destinations))
	for _, d := range resp.Destinations {
		places = append(places, domain.Place{
			PlaceID:   d.Code,
			Latitude:  d.Latitude,
			Longitude: d.Longitude,
		})
	}
	return places
}
