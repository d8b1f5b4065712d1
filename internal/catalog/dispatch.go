package catalog

import (
	"log"
	"sync"
)

// ResultKind tells the client what to do with a dispatch result.
type ResultKind string

const (
	KindRender   ResultKind = "render"   // re-render the card grid from Page
	KindModal    ResultKind = "modal"    // open the named modal element
	KindRedirect ResultKind = "redirect" // navigate to URL
	KindNotice   ResultKind = "notice"   // show an informational dialog
	KindOpen     ResultKind = "open"     // open URL in a new tab
	KindEmail    ResultKind = "email"    // open a mailto link
	KindScroll   ResultKind = "scroll"   // scroll to the named anchor
	KindNoop     ResultKind = "noop"     // nothing to do
)

// Request carries one data-action event from the page.
type Request struct {
	Action    string  `json:"action"`
	GuideID   string  `json:"guideId,omitempty"`
	BookingID string  `json:"bookingId,omitempty"`
	Target    string  `json:"target,omitempty"`
	Email     string  `json:"email,omitempty"`
	Page      int     `json:"page,omitempty"`
	Filters   Filters `json:"filters"`
}

// Result is what the page does in response to a dispatched action.
type Result struct {
	Action  string     `json:"action"`
	Kind    ResultKind `json:"kind"`
	Handled bool       `json:"handled"`
	Modal   string     `json:"modal,omitempty"`
	Title   string     `json:"title,omitempty"`
	Message string     `json:"message,omitempty"`
	URL     string     `json:"url,omitempty"`
	Anchor  string     `json:"anchor,omitempty"`
	Page    *Page      `json:"page,omitempty"`
}

type actionFunc func(Request) Result

// Dispatcher routes data-action events to their handlers.  Every action
// the public pages emit has an entry; anything else is logged and
// answered with a no-op so a stray attribute never breaks the page.
type Dispatcher struct {
	state    *State
	initOnce sync.Once
	handlers map[string]actionFunc
}

// NewDispatcher returns a dispatcher bound to the given catalog state.
func NewDispatcher(state *State) *Dispatcher {
	return &Dispatcher{state: state}
}

// Dispatch runs the handler registered for the request's action.
func (d *Dispatcher) Dispatch(req Request) Result {
	d.initOnce.Do(d.register)
	if h, ok := d.handlers[req.Action]; ok {
		res := h(req)
		res.Action = req.Action
		res.Handled = true
		return res
	}
	log.Printf("catalog: unknown action %q ignored", req.Action)
	return Result{Action: req.Action, Kind: KindNoop, Handled: false}
}

// Known reports whether an action has a registered handler.
func (d *Dispatcher) Known(action string) bool {
	d.initOnce.Do(d.register)
	_, ok := d.handlers[action]
	return ok
}

func (d *Dispatcher) register() {
	d.handlers = map[string]actionFunc{
		// filtering and search
		"search":        d.applyFilters,
		"filter-change": d.applyFilters,
		"reset":         d.resetFilters,

		// pagination
		"next-page": func(Request) Result { d.state.NextPage(); return d.renderCurrent() },
		"prev-page": func(Request) Result { d.state.PrevPage(); return d.renderCurrent() },
		"goto-page": func(r Request) Result {
			if r.Page > 0 {
				d.state.GoToPage(r.Page)
			}
			return d.renderCurrent()
		},

		// sponsor entry points
		"open-sponsor-registration":  redirect("/sponsor-registration.html"),
		"open-sponsor-login":         modal("sponsorLoginModal"),
		"process-sponsor-login":      modal("sponsorLoginModal"),
		"open-management":            modal("managementCenterModal"),
		"show-management-center":     modal("managementCenterModal"),
		"redirect-sponsor-dashboard": redirect("/sponsor-dashboard.html"),

		// registration flows
		"toggle-login-dropdown":           noop(),
		"open-tourist-registration":       modal("touristRegistrationModal"),
		"show-tourist-registration-modal": modal("touristRegistrationModal"),
		"open-guide-registration":         modal("guideRegistrationModal"),
		"show-guide-registration-modal":   modal("guideRegistrationModal"),

		// guide card actions
		"book-guide":        d.guideModal("bookingModal"),
		"contact-guide":     d.guideModal("contactModal"),
		"show-guide-detail": d.guideModal("guideDetailModal"),
		"view-details":      d.guideModal("guideDetailModal"),

		// bookmarks and comparison
		"remove-bookmark":        d.guideNotice("ブックマークを削除しました"),
		"remove-from-comparison": d.guideNotice("比較リストから削除しました"),
		"view-booking-details": func(r Request) Result {
			if r.BookingID == "" {
				return Result{Kind: KindNoop}
			}
			return Result{Kind: KindModal, Modal: "bookingDetailModal"}
		},

		// utility
		"trigger-photo-upload": noop(),
		"open-chat": func(r Request) Result {
			if r.Target == "" {
				return Result{Kind: KindNoop}
			}
			return Result{Kind: KindOpen, URL: r.Target}
		},
		"send-email": func(r Request) Result {
			if r.Email == "" {
				return Result{Kind: KindNoop}
			}
			return Result{Kind: KindEmail, URL: "mailto:" + r.Email}
		},
		"scroll-to-guides": func(Request) Result {
			return Result{Kind: KindScroll, Anchor: "guideCardsContainer"}
		},

		// footer and information dialogs
		"show-faq":                     notice("よくある質問", "よくある質問ページは準備中です"),
		"show-cancellation":            notice("キャンセルポリシー", "キャンセルポリシーページは準備中です"),
		"show-safety":                  notice("安全ガイドライン", "安全ガイドラインページは準備中です"),
		"show-payment-help":            notice("お支払いについて", "お支払いヘルプは準備中です"),
		"show-guide-registration-help": notice("ガイド登録について", "ガイド登録ヘルプは準備中です"),
		"show-profile-optimization":    notice("プロフィール最適化", "プロフィール最適化のヒントは準備中です"),
		"show-earnings-dashboard":      notice("収益ダッシュボード", "収益ダッシュボードは準備中です"),
		"show-guide-resources":         notice("ガイドリソース", "ガイドリソースは準備中です"),
		"show-cookie-settings":         notice("Cookie設定", "Cookie設定パネルは開発中です"),
		"clear-all-cookies":            notice("Cookie削除", "Cookie削除機能は開発中です"),
		"show-help":                    notice("ヘルプ", "ヘルプページは準備中です"),
		"show-about":                   notice("TomoTripについて", "会社情報ページは準備中です"),
		"show-terms":                   notice("利用規約", "利用規約ページは準備中です"),
		"show-privacy":                 notice("プライバシーポリシー", "プライバシーポリシーページは準備中です"),
		"show-cookies":                 notice("Cookieポリシー", "Cookieポリシーページは準備中です"),
		"show-compliance":              notice("コンプライアンス", "コンプライアンス情報は準備中です"),
	}
}

func (d *Dispatcher) applyFilters(r Request) Result {
	d.state.SetFilters(r.Filters)
	return d.renderCurrent()
}

func (d *Dispatcher) resetFilters(Request) Result {
	d.state.ResetFilters()
	return d.renderCurrent()
}

func (d *Dispatcher) renderCurrent() Result {
	page := d.state.CurrentPageSlice()
	return Result{Kind: KindRender, Page: &page}
}

func (d *Dispatcher) guideModal(name string) actionFunc {
	return func(r Request) Result {
		if r.GuideID == "" {
			return Result{Kind: KindNoop}
		}
		return Result{Kind: KindModal, Modal: name}
	}
}

func (d *Dispatcher) guideNotice(msg string) actionFunc {
	return func(r Request) Result {
		if r.GuideID == "" {
			return Result{Kind: KindNoop}
		}
		return d.renderCurrent().withNotice(msg)
	}
}

func (r Result) withNotice(msg string) Result {
	r.Message = msg
	return r
}

func modal(name string) actionFunc {
	return func(Request) Result { return Result{Kind: KindModal, Modal: name} }
}

func redirect(url string) actionFunc {
	return func(Request) Result { return Result{Kind: KindRedirect, URL: url} }
}

func notice(title, msg string) actionFunc {
	return func(Request) Result { return Result{Kind: KindNotice, Title: title, Message: msg} }
}

func noop() actionFunc {
	return func(Request) Result { return Result{Kind: KindNoop} }
}
