package etoalium

// Page is the coarse top-level view selector derived from the current route.
type Page uint8

const (
	PageUnknown Page = iota // no route matched (also the initial page)
	PageHome                // "/"
	PageWork                // "/works" and "/works/<slug>"
)

func (p Page) String() string {
	switch p {
	case PageHome:
		return "home"
	case PageWork:
		return "work"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable view of State at one point in time.
type Snapshot struct {
	Page Page
	Slug Slug
}

// State owns the current page and slug. It is written only through Apply,
// SetPage and SetSlug, and is not safe for concurrent use; the whole app runs
// on the ebiten update goroutine.
type State struct {
	page Page
	slug Slug

	observers []*observer
}

type observer struct {
	fn func(Snapshot)
}

// NewState returns a State on PageUnknown with SlugRoot selected.
func NewState() *State {
	return &State{page: PageUnknown, slug: SlugRoot}
}

// Page returns the current page.
func (s *State) Page() Page { return s.page }

// Slug returns the current slug. It is retained across non-work pages.
func (s *State) Slug() Slug { return s.slug }

// Snapshot returns the current page and slug.
func (s *State) Snapshot() Snapshot {
	return Snapshot{Page: s.page, Slug: s.slug}
}

// Subscribe registers fn to be called after every transition that changed
// the page or the slug. The returned func removes the subscription.
func (s *State) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	o := &observer{fn: fn}
	s.observers = append(s.observers, o)
	return func() {
		for i, cur := range s.observers {
			if cur == o {
				s.observers = append(s.observers[:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

// SetPage sets the page and notifies observers. Setting the current value
// is a no-op and reports false.
func (s *State) SetPage(p Page) bool {
	if s.page == p {
		return false
	}
	s.page = p
	s.notify()
	return true
}

// SetSlug sets the slug and notifies observers. Setting the current value
// is a no-op and reports false.
func (s *State) SetSlug(slug Slug) bool {
	if s.slug == slug {
		return false
	}
	s.slug = slug
	s.notify()
	return true
}

// Apply runs one transition for a decode result. ok == false means the path
// was unroutable. Page and slug change together, so observers see at most
// one notification per call and never a half-applied transition.
func (s *State) Apply(r Route, ok bool) bool {
	page, slug := s.page, s.slug
	if !ok {
		page = PageUnknown
	} else {
		switch r.Kind {
		case RouteHome:
			page = PageHome
		case RouteWorksIndex:
			page, slug = PageWork, SlugRoot
		case RouteWork:
			page, slug = PageWork, r.Slug
		}
	}
	if page == s.page && slug == s.slug {
		return false
	}
	s.page, s.slug = page, slug
	s.notify()
	return true
}

// Navigate decodes path and applies the result.
func (s *State) Navigate(path string) (Route, bool) {
	r, ok := ParsePath(path)
	s.Apply(r, ok)
	return r, ok
}

func (s *State) notify() {
	if len(s.observers) == 0 {
		return
	}
	snap := s.Snapshot()
	// Copy so observers may unsubscribe during notification.
	obs := append([]*observer(nil), s.observers...)
	for _, o := range obs {
		o.fn(snap)
	}
}
