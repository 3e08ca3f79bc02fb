// Package cityupdater refreshes the place-reference file consumed by
// search-time hotel lookups. It runs as a long-lived background service
// with two cooperative timers: one drives the actual refresh, the other
// just logs time-to-next-update so an operator tailing logs can tell the
// service is still alive between refreshes.
package cityupdater

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/hotelforge/aggregator/internal/domain"
	"github.com/hotelforge/aggregator/internal/platform/logger"
	"github.com/hotelforge/aggregator/internal/provider"
	"github.com/hotelforge/aggregator/internal/providererr"
)

// Country is one input unit of the refresh: a code/name pair to search
// places for.
type Country struct {
	Code string
	Name string
}

// Config controls the two timers and where the merged file lands.
type Config struct {
	UpdateInterval    time.Duration
	HeartbeatInterval time.Duration
	OutputPath        string
	Countries         []Country
}

// Service periodically merges place-provider results into a sorted JSON
// file, keyed by "<cityName>_<countryCode>" so re-runs add only new keys
// and leave existing entries exactly as they are.
type Service struct {
	cfg      Config
	provider provider.PlaceProvider

	mu          sync.Mutex
	lastUpdated time.Time
}

// New builds a Service. provider is whichever PlaceProvider the caller
// wires in — a live adapter in production, a fake in tests.
func New(cfg Config, placeProvider provider.PlaceProvider) *Service {
	return &Service{cfg: cfg, provider: placeProvider}
}

// Run blocks until ctx is cancelled, running an immediate refresh and then
// firing on cfg.UpdateInterval, with a separate cfg.HeartbeatInterval timer
// logging time-to-next-update in between.
func (s *Service) Run(ctx context.Context) {
	updateTicker := time.NewTicker(s.cfg.UpdateInterval)
	defer updateTicker.Stop()
	heartbeatTicker := time.NewTicker(s.cfg.HeartbeatInterval)
	defer heartbeatTicker.Stop()

	s.refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			logger.Info("city updater stopped")
			return
		case <-updateTicker.C:
			s.refresh(ctx)
		case <-heartbeatTicker.C:
			s.logHeartbeat()
		}
	}
}

func (s *Service) logHeartbeat() {
	s.mu.Lock()
	last := s.lastUpdated
	s.mu.Unlock()

	next := last.Add(s.cfg.UpdateInterval)
	logger.Infof("city updater heartbeat: next update in %s", time.Until(next).Round(time.Second))
}

// refresh fetches every configured country's cities, merges them into the
// existing file's contents and atomically replaces it. A country whose
// place lookup fails is counted and skipped; it never aborts the whole run.
func (s *Service) refresh(ctx context.Context) {
	existing, err := s.loadExisting()
	if err != nil {
		logger.ErrorWithErr(err, "city updater: failed to load existing city file, starting from empty")
		existing = map[string]domain.City{}
	}

	var failures int
	for _, country := range s.cfg.Countries {
		cities, err := s.fetchCities(ctx, country)
		if err != nil {
			failures++
			logger.ErrorWithErr(err, fmt.Sprintf("city updater: failed to fetch cities for %s", country.Code))
			continue
		}
		for _, city := range cities {
			key := city.CityName + "_" + city.CountryCode
			if _, ok := existing[key]; ok {
				// Existing keys are preserved verbatim; only new keys are inserted.
				continue
			}
			existing[key] = city
		}
	}

	if err := s.writeAtomic(existing); err != nil {
		logger.ErrorWithErr(err, "city updater: failed to write city file")
		return
	}

	s.mu.Lock()
	s.lastUpdated = time.Now()
	s.mu.Unlock()

	logger.Infof("city updater: refresh complete, %d cities, %d country failures", len(existing), failures)
}

func (s *Service) fetchCities(ctx context.Context, country Country) ([]domain.City, *providererr.ProviderError) {
	resp, providerErr := s.provider.SearchPlaces(ctx, domain.PlacesSearchPayload{Country: country.Code})
	if providerErr != nil {
		return nil, providerErr
	}

	cities := make([]domain.City, 0, len(resp.Places))
	for _, place := range resp.Places {
		cityName := place.PlaceID
		if len(place.AddressComponents) > 0 {
			cityName = place.AddressComponents[0]
		}
		city := domain.City{
			CityCode:    place.PlaceID,
			CityName:    cityName,
			CountryName: country.Name,
			CountryCode: country.Code,
		}
		if place.Latitude != nil {
			city.Latitude = *place.Latitude
		}
		if place.Longitude != nil {
			city.Longitude = *place.Longitude
		}
		cities = append(cities, city)
	}
	return cities, nil
}

func (s *Service) loadExisting() (map[string]domain.City, error) {
	data, err := os.ReadFile(s.cfg.OutputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]domain.City{}, nil
		}
		return nil, err
	}

	var cities []domain.City
	if err := json.Unmarshal(data, &cities); err != nil {
		return nil, err
	}

	out := make(map[string]domain.City, len(cities))
	for _, c := range cities {
		out[c.CityName+"_"+c.CountryCode] = c
	}
	return out, nil
}

// writeAtomic serializes cities sorted by city_name and replaces the
// output file via temp-write-then-rename, so concurrent readers always see
// either the previous generation or the new one in full, never a partial
// write.
func (s *Service) writeAtomic(cities map[string]domain.City) error {
	list := make([]domain.City, 0, len(cities))
	for _, c := range cities {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CityName < list[j].CityName })

	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal city list: %w", err)
	}

	dir := filepath.Dir(s.cfg.OutputPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".cities-*.json.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.cfg.OutputPath); err != nil {
		return fmt.Errorf("failed to replace city file: %w", err)
	}
	return nil
}
