package etoalium

import (
	"fmt"
	"net/url"
	"strings"
)

// Slug names a showcased work. Each slug has exactly one canonical
// kebab-case form used in URLs.
type Slug uint8

const (
	SlugRoot             Slug = iota // the works index itself
	SlugClockExample                 // analog canvas clock
	SlugWavingDotsSquare             // breathing grid of dots
	SlugSeigaiha                     // rotating chipped-arc wave pattern
)

// slugNames is the single source of truth for slug <-> string mapping.
// Order matches the Slug constants.
var slugNames = [...]string{
	SlugRoot:             "root",
	SlugClockExample:     "mdn-clock-example",
	SlugWavingDotsSquare: "dm-waving-dots-square",
	SlugSeigaiha:         "dm-seigaiha",
}

var slugByName = func() map[string]Slug {
	m := make(map[string]Slug, len(slugNames))
	for i, name := range slugNames {
		m[name] = Slug(i)
	}
	return m
}()

// Slugs returns every known slug in declaration order.
func Slugs() []Slug {
	out := make([]Slug, len(slugNames))
	for i := range slugNames {
		out[i] = Slug(i)
	}
	return out
}

// String returns the slug's URL form.
func (s Slug) String() string {
	if int(s) < len(slugNames) {
		return slugNames[s]
	}
	return fmt.Sprintf("Slug(%d)", uint8(s))
}

// Valid reports whether s is one of the declared slugs.
func (s Slug) Valid() bool {
	return int(s) < len(slugNames)
}

// ParseSlug looks up a slug by its URL form. Matching is exact.
func ParseSlug(s string) (Slug, bool) {
	slug, ok := slugByName[s]
	return slug, ok
}

// MarshalText implements encoding.TextMarshaler.
func (s Slug) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("etoalium: invalid slug %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Slug) UnmarshalText(text []byte) error {
	slug, ok := ParseSlug(string(text))
	if !ok {
		return fmt.Errorf("etoalium: unknown slug %q", text)
	}
	*s = slug
	return nil
}

// RouteKind distinguishes the variants of a Route.
type RouteKind uint8

const (
	RouteHome       RouteKind = iota // "/"
	RouteWorksIndex                  // "/works"
	RouteWork                        // "/works/<slug>"
)

// worksSegment is the first path segment of every works route.
const worksSegment = "works"

// Route is a decoded navigable path. Slug is only meaningful for RouteWork.
type Route struct {
	Kind RouteKind
	Slug Slug
}

// HomeRoute returns the route for "/".
func HomeRoute() Route { return Route{Kind: RouteHome} }

// WorksIndexRoute returns the route for "/works".
func WorksIndexRoute() Route { return Route{Kind: RouteWorksIndex} }

// WorkRoute returns the route for "/works/<slug>".
func WorkRoute(slug Slug) Route { return Route{Kind: RouteWork, Slug: slug} }

// Segments encodes the route as path segments.
func (r Route) Segments() []string {
	switch r.Kind {
	case RouteWorksIndex:
		return []string{worksSegment}
	case RouteWork:
		return []string{worksSegment, r.Slug.String()}
	default:
		return []string{}
	}
}

// Path encodes the route as an absolute URL path.
func (r Route) Path() string {
	return "/" + strings.Join(r.Segments(), "/")
}

func (r Route) String() string {
	return r.Path()
}

// DecodeSegments decodes path segments into a Route. It reports false for
// any input that is not exactly one of the known shapes.
func DecodeSegments(segs []string) (Route, bool) {
	switch len(segs) {
	case 0:
		return HomeRoute(), true
	case 1:
		if segs[0] == worksSegment {
			return WorksIndexRoute(), true
		}
	case 2:
		if segs[0] != worksSegment {
			break
		}
		if slug, ok := ParseSlug(segs[1]); ok {
			return WorkRoute(slug), true
		}
	}
	return Route{}, false
}

// ParsePath decodes a URL path (optionally with query or fragment, which are
// ignored). Empty segments produced by repeated or trailing slashes are
// dropped, so "/works/" decodes like "/works". Malformed escapes are matched
// verbatim and so never decode.
func ParsePath(path string) (Route, bool) {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if p, err := url.PathUnescape(path); err == nil {
		path = p
	}
	return DecodeSegments(splitPath(path))
}

func splitPath(path string) []string {
	parts := strings.Split(path, "/")
	segs := parts[:0]
	for _, p := range parts {
		if p != "" {
			segs = append(segs, p)
		}
	}
	return segs
}
