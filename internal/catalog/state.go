package catalog // package catalog implements the public guide listing: state, filters, paging and card rendering

import (
	"sync"
)

// PageSize is the number of guide cards shown per catalog page.  It is
// fixed so every environment paginates identically.
const PageSize = 12

// Guide is the catalog view of a tourism guide.  It is intentionally
// looser than the persisted record: entries coming from the API and the
// built-in defaults both coerce into it.
type Guide struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	City        string   `json:"city,omitempty"`
	Rating      float64  `json:"rating"`
	Price       int      `json:"price"`
	Image       string   `json:"image,omitempty"`
	Description string   `json:"description,omitempty"`
	Languages   []string `json:"languages"`
	Specialties []string `json:"specialties"`
}

// State is the single source of truth for the catalog page.  It replaces
// a set of scattered globals with one guarded object.
type State struct {
	mu sync.RWMutex

	guides      []Guide
	currentPage int
	filters     Filters
	searchTerm  string
	locale      string

	// PersistFilters controls whether active filters survive a guide
	// reload.  Off by default: a fresh dataset starts unfiltered.
	persistFilters bool
}

// NewState returns a catalog state holding the given guides, open at
// page one with no filters.
func NewState(guides []Guide) *State {
	s := &State{
		currentPage: 1,
		locale:      "ja",
	}
	s.guides = append(s.guides, guides...)
	return s
}

// SetPersistFilters toggles whether SetGuides keeps the active filters.
func (s *State) SetPersistFilters(keep bool) {
	s.mu.Lock()
	s.persistFilters = keep
	s.mu.Unlock()
}

// SetGuides replaces the guide set.  A nil slice is treated as empty.
// The current page resets to one, and unless filter persistence is on
// the filters reset too.
func (s *State) SetGuides(guides []Guide) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.guides = s.guides[:0]
	s.guides = append(s.guides, guides...)
	s.currentPage = 1
	if !s.persistFilters {
		s.filters = Filters{}
		s.searchTerm = ""
	}
}

// Guides returns a copy of the full guide set.
func (s *State) Guides() []Guide {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Guide, len(s.guides))
	copy(out, s.guides)
	return out
}

// Filtered returns the guides matching the active filters.
func (s *State) Filtered() []Guide {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters.Apply(s.guides)
}

// TotalPages reports how many pages the filtered set spans.  An empty
// set still has one page, so the pager never renders "page 1 of 0".
func (s *State) TotalPages() int {
	filtered := len(s.Filtered())
	pages := (filtered + PageSize - 1) / PageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// CurrentPage returns the page the catalog is on.
func (s *State) CurrentPage() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentPage
}

// GoToPage moves to the given page, clamped into [1, TotalPages].
func (s *State) GoToPage(page int) int {
	total := s.TotalPages()
	s.mu.Lock()
	defer s.mu.Unlock()
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}
	s.currentPage = page
	return s.currentPage
}

// NextPage advances one page if one exists.
func (s *State) NextPage() int {
	return s.GoToPage(s.CurrentPage() + 1)
}

// PrevPage steps back one page if one exists.
func (s *State) PrevPage() int {
	return s.GoToPage(s.CurrentPage() - 1)
}

// SetFilters replaces the active filters and snaps back to page one.
func (s *State) SetFilters(f Filters) {
	s.mu.Lock()
	s.filters = f
	s.currentPage = 1
	s.mu.Unlock()
}

// ResetFilters clears every active filter and returns to page one.
func (s *State) ResetFilters() {
	s.SetFilters(Filters{})
}

// ActiveFilters returns the filters currently applied.
func (s *State) ActiveFilters() Filters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

// Page describes one rendered catalog page.
type Page struct {
	Guides     []Guide
	Number     int
	TotalPages int
	Filtered   int // guides matching the filters
	Total      int // guides in the full set
	RangeStart int // 1-based index of the first card shown
	RangeEnd   int // 1-based index of the last card shown
	HasPrev    bool
	HasNext    bool
}

// BuildPage computes one catalog page from a guide set, a filter set and
// a requested page number.  It touches no shared state, so concurrent
// requests with different parameters never see each other's view; the
// page number is clamped into [1, TotalPages].
func BuildPage(guides []Guide, f Filters, page int) Page {
	filtered := f.Apply(guides)

	pages := (len(filtered) + PageSize - 1) / PageSize
	if pages < 1 {
		pages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	p := Page{
		Guides:     filtered[start:end],
		Number:     page,
		TotalPages: pages,
		Filtered:   len(filtered),
		Total:      len(guides),
		HasPrev:    page > 1,
		HasNext:    page < pages,
	}
	if len(p.Guides) > 0 {
		p.RangeStart = start + 1
		p.RangeEnd = end
	}
	return p
}

// CurrentPageSlice returns the page the dispatcher-driven state is on,
// with the pager bookkeeping the UI needs.
func (s *State) CurrentPageSlice() Page {
	s.mu.RLock()
	guides := make([]Guide, len(s.guides))
	copy(guides, s.guides)
	page := s.currentPage
	filters := s.filters
	s.mu.RUnlock()

	return BuildPage(guides, filters, page)
}
