package catalog

import (
	"fmt"
	"html/template"
	"strings"
)

// cardTemplate renders one guide card.  The markup mirrors the public
// site's Bootstrap card layout.
var cardTemplate = template.Must(template.New("guideCard").Funcs(template.FuncMap{
	"formatPrice": FormatPrice,
	"joinComma":   func(ss []string) string { return strings.Join(ss, ", ") },
}).Parse(`
<div class="col-md-6 col-lg-4 mb-4">
  <div class="guide-card h-100" data-guide-id="{{.ID}}">
    <div class="position-relative">
      <img src="{{.Photo}}" class="card-img-top" alt="{{.Name}}">
      <div class="position-absolute top-0 end-0 m-2">
        <span class="badge rating-badge">評価 {{.Rating}} ⭐</span>
      </div>
    </div>
    <div class="card-body p-4">
      <h5 class="card-title fw-bold mb-2">{{.Name}}</h5>
      <p class="text-muted mb-2"><i class="bi bi-geo-alt"></i> {{.Place}}</p>
      <p class="card-text text-muted mb-3">{{.Description}}</p>
      <div class="mb-3">
        <div class="d-flex justify-content-between align-items-center mb-2">
          <small class="text-muted">対応言語</small>
          <small class="fw-semibold">{{joinComma .Languages}}</small>
        </div>
        <div class="d-flex justify-content-between align-items-center mb-2">
          <small class="text-muted">料金</small>
          <small class="fw-bold text-primary">{{formatPrice .Price}}</small>
        </div>
        {{if .Specialties}}
        <div class="d-flex justify-content-between align-items-center">
          <small class="text-muted">特徴</small>
          <small class="text-info">{{joinComma .Specialties}}</small>
        </div>
        {{end}}
      </div>
      <div class="d-grid gap-2">
        <button class="btn btn-primary" data-action="view-details" data-guide-id="{{.ID}}">詳しく見る</button>
      </div>
    </div>
  </div>
</div>`))

// cardView is the template payload for one card, with fallbacks applied.
type cardView struct {
	Guide
	Photo string
	Place string
}

const (
	defaultCardPhoto       = "/assets/img/guides/default-1.svg"
	defaultCardDescription = "地域の魅力をご案内します"
	defaultCardRating      = 4.8
)

// RenderCards renders the guides as an HTML fragment of card columns.
func RenderCards(guides []Guide) (template.HTML, error) {
	var b strings.Builder
	for _, g := range guides {
		view := cardView{Guide: g, Photo: g.Image, Place: g.City}
		if view.Place == "" {
			view.Place = LocationName(g.Location)
		}
		if view.Photo == "" {
			view.Photo = defaultCardPhoto
		}
		if view.Description == "" {
			view.Description = defaultCardDescription
		}
		if view.Rating == 0 {
			view.Rating = defaultCardRating
		}
		if len(view.Specialties) > 3 {
			view.Specialties = view.Specialties[:3]
		}
		if err := cardTemplate.Execute(&b, view); err != nil {
			return "", err
		}
	}
	return template.HTML(b.String()), nil
}

// FormatPrice renders a price in yen with thousands separators.  Zero
// and negative prices fall back to the rate-on-request label.
func FormatPrice(price int) string {
	if price <= 0 {
		return "料金応相談"
	}
	return "¥" + groupThousands(price)
}

// CounterText is the filtered/total summary shown above the cards.
func CounterText(filtered, total int) string {
	return fmt.Sprintf("%d人のガイドが見つかりました（全%d人中）", filtered, total)
}

// TotalCounterText labels the running total of guides.
func TotalCounterText(total int) string {
	return fmt.Sprintf("総数: %d人", total)
}

// PageInfoText labels the current page in the pager.
func PageInfoText(page int) string {
	return fmt.Sprintf("ページ %d", page)
}

// RangeText labels which cards of the filtered set are visible.
func RangeText(p Page) string {
	if p.Filtered == 0 {
		return "0-0"
	}
	return fmt.Sprintf("%d-%d", p.RangeStart, p.RangeEnd)
}

func groupThousands(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
