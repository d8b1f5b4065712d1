package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeGuides(n int) []Guide {
	out := make([]Guide, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, Guide{
			ID:       fmt.Sprintf("g-%d", i),
			Name:     fmt.Sprintf("Guide %d", i),
			Location: "tokyo",
			Price:    7000 + i*100,
			Rating:   4.5,
		})
	}
	return out
}

func TestStateTotalPages(t *testing.T) {
	t.Run("empty set still has one page", func(t *testing.T) {
		s := NewState(nil)
		assert.Equal(t, 1, s.TotalPages())
	})

	t.Run("exactly one page", func(t *testing.T) {
		s := NewState(makeGuides(PageSize))
		assert.Equal(t, 1, s.TotalPages())
	})

	t.Run("one over boundary adds a page", func(t *testing.T) {
		s := NewState(makeGuides(PageSize + 1))
		assert.Equal(t, 2, s.TotalPages())
	})

	t.Run("rounds up partial pages", func(t *testing.T) {
		s := NewState(makeGuides(30))
		assert.Equal(t, 3, s.TotalPages())
	})
}

func TestStatePaging(t *testing.T) {
	s := NewState(makeGuides(30)) // 3 pages: 12, 12, 6

	t.Run("starts on page one with prev disabled", func(t *testing.T) {
		p := s.CurrentPageSlice()
		assert.Equal(t, 1, p.Number)
		assert.False(t, p.HasPrev)
		assert.True(t, p.HasNext)
		assert.Len(t, p.Guides, PageSize)
		assert.Equal(t, 1, p.RangeStart)
		assert.Equal(t, 12, p.RangeEnd)
	})

	t.Run("last page is short with next disabled", func(t *testing.T) {
		s.GoToPage(3)
		p := s.CurrentPageSlice()
		assert.Equal(t, 3, p.Number)
		assert.True(t, p.HasPrev)
		assert.False(t, p.HasNext)
		assert.Len(t, p.Guides, 6)
		assert.Equal(t, 25, p.RangeStart)
		assert.Equal(t, 30, p.RangeEnd)
	})

	t.Run("goto clamps out-of-range pages", func(t *testing.T) {
		assert.Equal(t, 3, s.GoToPage(99))
		assert.Equal(t, 1, s.GoToPage(-5))
	})

	t.Run("next and prev stop at the edges", func(t *testing.T) {
		s.GoToPage(1)
		assert.Equal(t, 1, s.PrevPage())
		s.GoToPage(3)
		assert.Equal(t, 3, s.NextPage())
	})
}

func TestStateSetGuides(t *testing.T) {
	t.Run("replaces the set and resets the page", func(t *testing.T) {
		s := NewState(makeGuides(30))
		s.GoToPage(3)
		s.SetGuides(makeGuides(5))
		assert.Equal(t, 1, s.CurrentPage())
		assert.Len(t, s.Guides(), 5)
	})

	t.Run("nil becomes empty", func(t *testing.T) {
		s := NewState(makeGuides(3))
		s.SetGuides(nil)
		assert.Empty(t, s.Guides())
		assert.Equal(t, 1, s.TotalPages())
	})

	t.Run("clears filters by default", func(t *testing.T) {
		s := NewState(makeGuides(10))
		s.SetFilters(Filters{Location: "tokyo"})
		s.SetGuides(makeGuides(4))
		assert.True(t, s.ActiveFilters().Empty())
	})

	t.Run("keeps filters when persistence is on", func(t *testing.T) {
		s := NewState(makeGuides(10))
		s.SetPersistFilters(true)
		s.SetFilters(Filters{Location: "osaka"})
		s.SetGuides(makeGuides(4))
		assert.Equal(t, "osaka", s.ActiveFilters().Location)
	})
}

func TestBuildPage(t *testing.T) {
	guides := makeGuides(30)

	t.Run("computes without touching any state", func(t *testing.T) {
		p := BuildPage(guides, Filters{}, 2)
		assert.Equal(t, 2, p.Number)
		assert.Equal(t, 3, p.TotalPages)
		assert.Len(t, p.Guides, PageSize)
		assert.Equal(t, 13, p.RangeStart)
		assert.Equal(t, 24, p.RangeEnd)
	})

	t.Run("clamps the requested page", func(t *testing.T) {
		assert.Equal(t, 3, BuildPage(guides, Filters{}, 99).Number)
		assert.Equal(t, 1, BuildPage(guides, Filters{}, -1).Number)
	})

	t.Run("applies filters to the given set only", func(t *testing.T) {
		p := BuildPage(guides, Filters{Location: "nowhere"}, 1)
		assert.Zero(t, p.Filtered)
		assert.Equal(t, 30, p.Total)
		assert.Equal(t, 1, p.TotalPages)
	})
}

func TestStateFilteredPaging(t *testing.T) {
	guides := makeGuides(20)
	for i := range guides {
		if i%2 == 0 {
			guides[i].Location = "kyoto"
		}
	}
	s := NewState(guides)
	s.SetFilters(Filters{Location: "kyoto"})

	p := s.CurrentPageSlice()
	require.Equal(t, 10, p.Filtered)
	assert.Equal(t, 20, p.Total)
	assert.Equal(t, 1, p.TotalPages)
	for _, g := range p.Guides {
		assert.Equal(t, "kyoto", g.Location)
	}
}
