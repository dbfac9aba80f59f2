// Package catalog derives the display list of bonds from the full registry
// list and a filter/sort configuration. Derivation is pure and deterministic:
// the output is always a reordered subsequence of the input.
package catalog

import (
	"sort"
	"strings"

	"bondbazaar/internal/models"
)

// SortKey selects the comparator for the derived list.
type SortKey string

const (
	SortCouponDesc        SortKey = "coupon-desc"
	SortCouponAsc         SortKey = "coupon-asc"
	SortTenureAsc         SortKey = "tenure-asc"
	SortTenureDesc        SortKey = "tenure-desc"
	SortMinInvestmentAsc  SortKey = "min-investment-asc"
	SortMinInvestmentDesc SortKey = "min-investment-desc"
)

// DefaultSortKey is applied when no sort is requested.
const DefaultSortKey = SortCouponDesc

// Filter is the catalog filter/sort configuration.
//
// SearchQuery matches case-insensitively against the issuer name only; the
// empty string matches everything. A bond passes the risk-tag filter when it
// carries at least one selected tag, or when no tags are selected.
type Filter struct {
	SearchQuery string
	RiskTags    map[models.RiskTag]bool
	SortKey     SortKey
}

// matches reports whether a single listing passes both filters.
func (f Filter) matches(b *models.BondListing) bool {
	if f.SearchQuery != "" {
		q := strings.ToLower(f.SearchQuery)
		if !strings.Contains(strings.ToLower(b.Issuer), q) {
			return false
		}
	}
	if len(f.RiskTags) > 0 {
		found := false
		for _, tag := range b.RiskTags {
			if f.RiskTags[tag] {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// sortValue returns the numeric value compared under the given key.
func sortValue(key SortKey, b *models.BondListing) int64 {
	switch key {
	case SortCouponDesc, SortCouponAsc:
		return b.CouponRate
	case SortTenureAsc, SortTenureDesc:
		return b.Tenure
	case SortMinInvestmentAsc, SortMinInvestmentDesc:
		return b.MinInvestment
	default:
		return b.CouponRate
	}
}

// descending reports whether the key sorts high-to-low.
func descending(key SortKey) bool {
	switch key {
	case SortCouponDesc, SortTenureDesc, SortMinInvestmentDesc:
		return true
	default:
		return false
	}
}

// Derive produces the display list for the given filter: search filter, then
// risk-tag filter, then a stable sort. Ties keep their original relative
// order so re-sorting after a filter change does not shuffle equal bonds.
func Derive(bonds []models.BondListing, f Filter) []models.BondListing {
	if f.SortKey == "" {
		f.SortKey = DefaultSortKey
	}

	out := make([]models.BondListing, 0, len(bonds))
	for i := range bonds {
		if f.matches(&bonds[i]) {
			out = append(out, bonds[i])
		}
	}

	desc := descending(f.SortKey)
	sort.SliceStable(out, func(i, j int) bool {
		vi, vj := sortValue(f.SortKey, &out[i]), sortValue(f.SortKey, &out[j])
		if desc {
			return vi > vj
		}
		return vi < vj
	})

	return out
}

// DeriveWithIDs is Derive over id-tagged listings, preserving each bond's
// registry id through filtering and sorting.
func DeriveWithIDs(bonds []models.BondListingWithID, f Filter) []models.BondListingWithID {
	if f.SortKey == "" {
		f.SortKey = DefaultSortKey
	}

	out := make([]models.BondListingWithID, 0, len(bonds))
	for i := range bonds {
		if f.matches(&bonds[i].Listing) {
			out = append(out, bonds[i])
		}
	}

	desc := descending(f.SortKey)
	sort.SliceStable(out, func(i, j int) bool {
		vi, vj := sortValue(f.SortKey, &out[i].Listing), sortValue(f.SortKey, &out[j].Listing)
		if desc {
			return vi > vj
		}
		return vi < vj
	})

	return out
}

// ParseSortKey validates a sort key string, falling back to the default for
// empty input.
func ParseSortKey(s string) (SortKey, bool) {
	switch SortKey(s) {
	case SortCouponDesc, SortCouponAsc, SortTenureAsc, SortTenureDesc,
		SortMinInvestmentAsc, SortMinInvestmentDesc:
		return SortKey(s), true
	case "":
		return DefaultSortKey, true
	default:
		return "", false
	}
}
