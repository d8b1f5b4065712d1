package catalog

import "strings"

// Price bucket codes accepted by the catalog filter.
const (
	PriceBudget  = "budget"  // 6,000 - 10,000 yen
	PricePremium = "premium" // 10,001 - 20,000 yen
	PriceLuxury  = "luxury"  // 20,001 yen and up
)

// Filters holds the catalog filter selections.  Empty fields are
// inactive; set fields combine with AND.
type Filters struct {
	Location string `json:"location" query:"location"`
	Language string `json:"language" query:"language"`
	Price    string `json:"price" query:"price"`
	Search   string `json:"search" query:"search"`
}

// Empty reports whether no filter is active.
func (f Filters) Empty() bool {
	return f.Location == "" && f.Language == "" && f.Price == "" && f.Search == ""
}

// Apply returns the guides passing every active filter.
func (f Filters) Apply(guides []Guide) []Guide {
	if f.Empty() {
		out := make([]Guide, len(guides))
		copy(out, guides)
		return out
	}
	out := make([]Guide, 0, len(guides))
	for _, g := range guides {
		if f.matches(g) {
			out = append(out, g)
		}
	}
	return out
}

func (f Filters) matches(g Guide) bool {
	if f.Location != "" && g.Location != f.Location {
		return false
	}
	if f.Language != "" && !containsString(g.Languages, f.Language) {
		return false
	}
	if !priceInBucket(g.Price, f.Price) {
		return false
	}
	if f.Search != "" && !searchMatches(g, f.Search) {
		return false
	}
	return true
}

// priceInBucket checks a price against a bucket code.  An empty or
// unrecognized code matches everything, so a stale select value never
// empties the catalog.
func priceInBucket(price int, bucket string) bool {
	switch bucket {
	case PriceBudget:
		return price >= 6000 && price <= 10000
	case PricePremium:
		return price >= 10001 && price <= 20000
	case PriceLuxury:
		return price >= 20001
	default:
		return true
	}
}

func searchMatches(g Guide, term string) bool {
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(g.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(g.Description), term) {
		return true
	}
	if strings.Contains(strings.ToLower(LocationName(g.Location)), term) {
		return true
	}
	for _, sp := range g.Specialties {
		if strings.Contains(strings.ToLower(sp), term) {
			return true
		}
	}
	return false
}

func containsString(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}
