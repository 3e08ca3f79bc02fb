// Package grouping collapses heterogeneous per-rate RoomOption rows into
// display-ready RoomGroups. The algorithm is a deterministic single
// pass: dedup by rate_key, bucket by offer_id, roll each offer up into one
// RoomVariant, then assign variants to groups keyed by mapped room or by
// the combined-room signature.
package grouping

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/hotelforge/aggregator/internal/domain"
)

// Group collapses options into ordered RoomGroups with ordered variants.
// staticRooms, if non-nil, supplies catalogue names/photos/amenities for
// mapped groups.
func Group(options []domain.RoomOption, staticRooms []domain.StaticRoom) ([]domain.RoomGroup, error) {
	staticByID := make(map[string]domain.StaticRoom, len(staticRooms))
	for _, sr := range staticRooms {
		staticByID[sr.MappedRoomID] = sr
	}

	deduped := dedupeByRateKey(options)

	offerOrder, offers := bucketByOffer(deduped)

	type groupState struct {
		group domain.RoomGroup
	}
	groupOrder := make([]string, 0)
	groups := make(map[string]*groupState)

	for _, offerID := range offerOrder {
		rows := offers[offerID]
		variant, mapped, mappedID, rawNames, err := rollupOffer(offerID, rows)
		if err != nil {
			return nil, err
		}

		key := groupKey(mapped, mappedID, rawNames)

		st, exists := groups[key]
		if !exists {
			g := domain.RoomGroup{
				MinPrice: variant.PricePerRoomExcludingTaxes,
				Currency: variant.Currency,
			}
			if mapped {
				g.MappedRoomID = mappedID
				if sr, ok := staticByID[mappedID]; ok {
					g.Name = sr.Name
					g.Images = sr.Images
					g.Amenities = sr.Amenities
					g.BedTypes = sr.BedTypes
				} else {
					g.Name = variant.RoomName
				}
			} else {
				g.Name = variant.RoomName
			}
			st = &groupState{group: g}
			groups[key] = st
			groupOrder = append(groupOrder, key)
		} else {
			if variant.PricePerRoomExcludingTaxes < st.group.MinPrice {
				st.group.MinPrice = variant.PricePerRoomExcludingTaxes
			}
		}
		st.group.Variants = append(st.group.Variants, variant)
	}

	result := make([]domain.RoomGroup, 0, len(groupOrder))
	for _, key := range groupOrder {
		g := groups[key].group
		sortVariants(g.Variants)
		result = append(result, g)
	}
	sortGroups(result)
	return result, nil
}

// dedupeByRateKey drops any row whose rate_key already occurred, keeping
// the first occurrence, preserving original order for everything else.
func dedupeByRateKey(options []domain.RoomOption) []domain.RoomOption {
	seen := make(map[string]struct{}, len(options))
	out := make([]domain.RoomOption, 0, len(options))
	for _, o := range options {
		if _, ok := seen[o.RateKey]; ok {
			continue
		}
		seen[o.RateKey] = struct{}{}
		out = append(out, o)
	}
	return out
}

// bucketByOffer groups rows by offer_id, preserving first-seen offer order.
func bucketByOffer(options []domain.RoomOption) ([]string, map[string][]domain.RoomOption) {
	order := make([]string, 0)
	buckets := make(map[string][]domain.RoomOption)
	for _, o := range options {
		if _, ok := buckets[o.OfferID]; !ok {
			order = append(order, o.OfferID)
		}
		buckets[o.OfferID] = append(buckets[o.OfferID], o)
	}
	return order, buckets
}

// rollupOffer computes one RoomVariant from all rows belonging to one
// offer_id, along with whether the offer is "mapped" and, for combined
// offers, the raw room names used to derive the group key.
// tax_breakdown and rate_key come from the first row only. mapped_room_id
// is decided across the whole offer: track the set of distinct non-empty
// mapped_room_ids seen; exactly one -> mapped to that id; zero or more
// than one (a later row disagreeing with an earlier one demotes the
// offer) -> combined.
func rollupOffer(offerID string, rows []domain.RoomOption) (domain.RoomVariant, bool, string, []string, error) {
	rawNames := make([]string, 0, len(rows))
	nameCounts := make(map[string]int)
	distinctMapped := make(map[string]struct{})

	totalExclTax := 0.0
	currency := rows[0].Price.CurrencyCode

	for _, r := range rows {
		if r.Price.CurrencyCode != currency {
			return domain.RoomVariant{}, false, "", nil, fmt.Errorf(
				"offer %s mixes currencies %s and %s within one offer", offerID, currency, r.Price.CurrencyCode)
		}
		totalExclTax += domain.PriceExcludingIncludedTaxesForOption(r)
		if r.MappedRoomID != "" {
			distinctMapped[r.MappedRoomID] = struct{}{}
		}
		name := r.RoomData.Name
		rawNames = append(rawNames, name)
		nameCounts[name]++
	}

	count := len(rows)
	first := rows[0]
	mappedID := ""
	mapped := len(distinctMapped) == 1
	if mapped {
		for id := range distinctMapped {
			mappedID = id
		}
	}

	variant := domain.RoomVariant{
		OfferID:                    offerID,
		RateKey:                    first.RateKey,
		MappedRoomID:               mappedID,
		RoomName:                   formatRoomName(nameCounts),
		RoomCount:                  count,
		TotalPriceForAllRooms:      totalExclTax,
		PricePerRoomExcludingTaxes: totalExclTax / float64(count),
		Currency:                   currency,
		TaxBreakdown:               first.TaxLines,
		OccupancyInfo:              first.OccupancyInfo,
		CancellationInfo:           first.CancellationPolicies,
	}
	return variant, mapped, mappedID, rawNames, nil
}

// formatRoomName renders a deterministic "N x name, N x name" string,
// iterating names in sorted order so output is stable regardless of input
// ordering.
func formatRoomName(counts map[string]int) string {
	names := make([]string, 0, len(counts))
	for n := range counts {
		names = append(names, n)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, n := range names {
		c := counts[n]
		if c > 1 {
			parts = append(parts, fmt.Sprintf("%d x %s", c, n))
		} else {
			parts = append(parts, n)
		}
	}
	return strings.Join(parts, ", ")
}

// groupKey computes the RoomGroup key: "MAPPED_"+id for mapped offers,
// otherwise the sorted, joined concatenation of the offer's raw row room
// names (not the counted display name).
func groupKey(mapped bool, mappedID string, rawNames []string) string {
	if mapped {
		return "MAPPED_" + mappedID
	}
	sorted := append([]string(nil), rawNames...)
	sort.Strings(sorted)
	return strings.Join(sorted, "|")
}

func sortVariants(variants []domain.RoomVariant) {
	sort.SliceStable(variants, func(i, j int) bool {
		return lessNaNSafe(variants[i].PricePerRoomExcludingTaxes, variants[j].PricePerRoomExcludingTaxes)
	})
}

func sortGroups(groups []domain.RoomGroup) {
	sort.SliceStable(groups, func(i, j int) bool {
		return lessNaNSafe(groups[i].MinPrice, groups[j].MinPrice)
	})
}

// lessNaNSafe compares two floats for ascending sort, treating NaN as equal
// to everything (falls back to stable order) rather than panicking or
// producing an inconsistent ordering.
func lessNaNSafe(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	return a < b
}
