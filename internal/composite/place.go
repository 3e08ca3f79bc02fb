package composite

import (
	"context"

	"github.com/hotelforge/aggregator/internal/domain"
	"github.com/hotelforge/aggregator/internal/provider"
	"github.com/hotelforge/aggregator/internal/providererr"
)

// PlaceProvider multiplexes multiple PlaceProvider adapters. Places have
// no booking operation, so there is no BookRoom-style special case here.
type PlaceProvider struct {
	providers []provider.PlaceProvider
	strategy  FallbackStrategy
}

// NewPlace creates a place composite with the default Sequential strategy.
func NewPlace(providers []provider.PlaceProvider) *PlaceProvider {
	return &PlaceProvider{providers: providers, strategy: Sequential}
}

func (c *PlaceProvider) Name() string { return "CompositePlaceProvider" }

func (c *PlaceProvider) IsHealthy() bool {
	for _, p := range c.providers {
		if p.IsHealthy() {
			return true
		}
	}
	return false
}

func (c *PlaceProvider) healthy() []provider.PlaceProvider {
	out := make([]provider.PlaceProvider, 0, len(c.providers))
	for _, p := range c.providers {
		if p.IsHealthy() {
			out = append(out, p)
		}
	}
	return out
}

func (c *PlaceProvider) SearchPlaces(ctx context.Context, criteria domain.PlacesSearchPayload) (domain.PlacesResponse, *providererr.ProviderError) {
	providers := c.healthy()
	var lastErr *providererr.ProviderError
	for _, p := range providers {
		result, err := p.SearchPlaces(ctx, criteria)
		if err == nil {
			return result, nil
		}
		if !shouldFallback(c.strategy, err) {
			return domain.PlacesResponse{}, err
		}
		lastErr = err
	}
	return domain.PlacesResponse{}, exhaustedPlace(lastErr, providererr.StepPlaceSearch)
}

func (c *PlaceProvider) GetSinglePlaceDetails(ctx context.Context, payload domain.PlaceDetailsPayload) (domain.PlaceDetails, *providererr.ProviderError) {
	providers := c.healthy()
	var lastErr *providererr.ProviderError
	for _, p := range providers {
		result, err := p.GetSinglePlaceDetails(ctx, payload)
		if err == nil {
			return result, nil
		}
		if !shouldFallback(c.strategy, err) {
			return domain.PlaceDetails{}, err
		}
		lastErr = err
	}
	return domain.PlaceDetails{}, exhaustedPlace(lastErr, providererr.StepPlaceDetails)
}

func exhaustedPlace(lastErr *providererr.ProviderError, step providererr.Step) *providererr.ProviderError {
	if lastErr != nil {
		return lastErr
	}
	return providererr.ServiceUnavailable("CompositePlaceProvider", step, "no healthy providers available")
}
