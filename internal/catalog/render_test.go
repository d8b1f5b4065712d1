package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "¥8,000", FormatPrice(8000))
	assert.Equal(t, "¥150", FormatPrice(150))
	assert.Equal(t, "¥1,234,567", FormatPrice(1234567))
	assert.Equal(t, "料金応相談", FormatPrice(0))
	assert.Equal(t, "料金応相談", FormatPrice(-5))
}

func TestCounterText(t *testing.T) {
	assert.Equal(t, "5人のガイドが見つかりました（全12人中）", CounterText(5, 12))
	assert.Equal(t, "総数: 12人", TotalCounterText(12))
	assert.Equal(t, "ページ 2", PageInfoText(2))
}

func TestRangeText(t *testing.T) {
	s := NewState(makeGuides(30))
	assert.Equal(t, "1-12", RangeText(s.CurrentPageSlice()))
	s.GoToPage(3)
	assert.Equal(t, "25-30", RangeText(s.CurrentPageSlice()))

	empty := NewState(nil)
	assert.Equal(t, "0-0", RangeText(empty.CurrentPageSlice()))
}

func TestRenderCards(t *testing.T) {
	t.Run("renders one column per guide", func(t *testing.T) {
		html, err := RenderCards(DefaultGuides())
		require.NoError(t, err)
		assert.Equal(t, 12, strings.Count(string(html), `data-action="view-details"`))
		assert.Contains(t, string(html), "田中健太")
		assert.Contains(t, string(html), "東京")
		assert.Contains(t, string(html), "¥8,000")
	})

	t.Run("applies fallbacks for sparse guides", func(t *testing.T) {
		html, err := RenderCards([]Guide{{ID: "x", Name: "Nameless", Location: "unknown-place"}})
		require.NoError(t, err)
		assert.Contains(t, string(html), defaultCardPhoto)
		assert.Contains(t, string(html), defaultCardDescription)
		assert.Contains(t, string(html), "料金応相談")
	})

	t.Run("escapes hostile input", func(t *testing.T) {
		html, err := RenderCards([]Guide{{ID: "x", Name: `<script>alert("x")</script>`, Price: 100}})
		require.NoError(t, err)
		assert.NotContains(t, string(html), "<script>alert")
	})

	t.Run("empty set renders nothing", func(t *testing.T) {
		html, err := RenderCards(nil)
		require.NoError(t, err)
		assert.Empty(t, string(html))
	})
}
