// Package composite implements the health-routing, policy-driven fallback
// provider that wraps an ordered list of concrete adapters behind the
// same HotelProvider/PlaceProvider ports they each implement.
package composite

import (
	"context"

	"github.com/hotelforge/aggregator/internal/domain"
	"github.com/hotelforge/aggregator/internal/platform/logger"
	"github.com/hotelforge/aggregator/internal/provider"
	"github.com/hotelforge/aggregator/internal/providererr"
)

// FallbackStrategy governs whether a failed provider call tries the next
// provider in the list.
type FallbackStrategy int

const (
	// Sequential always falls back, trying every healthy provider in order.
	Sequential FallbackStrategy = iota
	// OnRetryableError falls back only when the error's own Kind marks it
	// retryable.
	OnRetryableError
	// NeverFallback propagates the first error encountered.
	NeverFallback
)

func shouldFallback(strategy FallbackStrategy, err *providererr.ProviderError) bool {
	switch strategy {
	case Sequential:
		return true
	case OnRetryableError:
		return err.ShouldFallback()
	case NeverFallback:
		return false
	default:
		return false
	}
}

// HotelProvider multiplexes multiple HotelProvider adapters.
type HotelProvider struct {
	providers []provider.HotelProvider
	strategy  FallbackStrategy
}

// New creates a composite with the default Sequential strategy.
func New(providers []provider.HotelProvider) *HotelProvider {
	return &HotelProvider{providers: providers, strategy: Sequential}
}

// NewWithStrategy creates a composite with an explicit fallback strategy.
func NewWithStrategy(providers []provider.HotelProvider, strategy FallbackStrategy) *HotelProvider {
	return &HotelProvider{providers: providers, strategy: strategy}
}

func (c *HotelProvider) Name() string { return "CompositeHotelProvider" }

// IsHealthy is the disjunction of its members.
func (c *HotelProvider) IsHealthy() bool {
	for _, p := range c.providers {
		if p.IsHealthy() {
			return true
		}
	}
	return false
}

func (c *HotelProvider) healthy() []provider.HotelProvider {
	out := make([]provider.HotelProvider, 0, len(c.providers))
	for _, p := range c.providers {
		if p.IsHealthy() {
			out = append(out, p)
		}
	}
	return out
}

func (c *HotelProvider) SearchHotels(ctx context.Context, criteria domain.HotelSearchCriteria, uiFilters domain.UISearchFilters) (domain.HotelListAfterSearch, *providererr.ProviderError) {
	providers := c.healthy()
	var lastErr *providererr.ProviderError
	for _, p := range providers {
		logger.Infof("composite: trying provider %s for hotel search", p.Name())
		result, err := p.SearchHotels(ctx, criteria, uiFilters)
		if err == nil {
			return result, nil
		}
		logger.Warnf("composite: provider %s search failed: %v", p.Name(), err)
		if !shouldFallback(c.strategy, err) {
			return domain.HotelListAfterSearch{}, err
		}
		lastErr = err
	}
	return domain.HotelListAfterSearch{}, exhausted(lastErr, providererr.StepHotelSearch)
}

func (c *HotelProvider) GetHotelStaticDetails(ctx context.Context, hotelID string) (domain.HotelStaticDetails, *providererr.ProviderError) {
	providers := c.healthy()
	var lastErr *providererr.ProviderError
	for _, p := range providers {
		result, err := p.GetHotelStaticDetails(ctx, hotelID)
		if err == nil {
			return result, nil
		}
		if !shouldFallback(c.strategy, err) {
			return domain.HotelStaticDetails{}, err
		}
		lastErr = err
	}
	return domain.HotelStaticDetails{}, exhausted(lastErr, providererr.StepHotelDetails)
}

func (c *HotelProvider) GetHotelRates(ctx context.Context, criteria domain.HotelInfoCriteria) (domain.GroupedRoomRates, *providererr.ProviderError) {
	providers := c.healthy()
	var lastErr *providererr.ProviderError
	for _, p := range providers {
		result, err := p.GetHotelRates(ctx, criteria)
		if err == nil {
			return result, nil
		}
		if !shouldFallback(c.strategy, err) {
			return domain.GroupedRoomRates{}, err
		}
		lastErr = err
	}
	return domain.GroupedRoomRates{}, exhausted(lastErr, providererr.StepHotelRate)
}

func (c *HotelProvider) GetMinRates(ctx context.Context, criteria domain.HotelSearchCriteria, hotelIDs []string) (map[string]domain.Price, *providererr.ProviderError) {
	providers := c.healthy()
	var lastErr *providererr.ProviderError
	for _, p := range providers {
		result, err := p.GetMinRates(ctx, criteria, hotelIDs)
		if err == nil {
			return result, nil
		}
		if !shouldFallback(c.strategy, err) {
			return nil, err
		}
		lastErr = err
	}
	return nil, exhausted(lastErr, providererr.StepHotelRate)
}

func (c *HotelProvider) BlockRoom(ctx context.Context, request domain.BlockRoomRequest) (domain.BlockRoomResponse, *providererr.ProviderError) {
	providers := c.healthy()
	var lastErr *providererr.ProviderError
	for _, p := range providers {
		result, err := p.BlockRoom(ctx, request)
		if err == nil {
			return result, nil
		}
		if !shouldFallback(c.strategy, err) {
			return domain.BlockRoomResponse{}, err
		}
		lastErr = err
	}
	return domain.BlockRoomResponse{}, exhausted(lastErr, providererr.StepHotelBlockRoom)
}

// BookRoom deliberately never falls back. The user has already chosen an
// offer from a specific provider via a prior BlockRoom, so only the first
// healthy provider is tried; strategy and should_fallback are irrelevant
// here.
func (c *HotelProvider) BookRoom(ctx context.Context, request domain.BookRoomRequest) (domain.BookRoomResponse, *providererr.ProviderError) {
	providers := c.healthy()
	if len(providers) == 0 {
		return domain.BookRoomResponse{}, providererr.ServiceUnavailable(c.Name(), providererr.StepHotelBookRoom, "no healthy providers available")
	}
	return providers[0].BookRoom(ctx, request)
}

func (c *HotelProvider) GetBookingDetails(ctx context.Context, request domain.GetBookingRequest) (domain.GetBookingResponse, *providererr.ProviderError) {
	providers := c.healthy()
	var lastErr *providererr.ProviderError
	for _, p := range providers {
		result, err := p.GetBookingDetails(ctx, request)
		if err == nil {
			return result, nil
		}
		if !shouldFallback(c.strategy, err) {
			return domain.GetBookingResponse{}, err
		}
		lastErr = err
	}
	return domain.GetBookingResponse{}, exhausted(lastErr, providererr.StepGetBookingDetails)
}

func exhausted(lastErr *providererr.ProviderError, step providererr.Step) *providererr.ProviderError {
	if lastErr != nil {
		return lastErr
	}
	return providererr.ServiceUnavailable("CompositeHotelProvider", step, "no healthy providers available")
}
