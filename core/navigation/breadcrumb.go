package navigation

import (
	"net/url"
	"path"
	"strings"
	"sync/atomic"
)

// SectionSource provides the section list the resolver matches against.
type SectionSource interface {
	MenuSections() []MenuSection
}

// Home is the breadcrumb used when the URL matches no menu item.
func Home() Breadcrumb {
	return Breadcrumb{{Label: HomeLabel, Active: true}}
}

// Resolve derives the breadcrumb for rawURL.
//
// Sections are walked in order and items in insertion order. The first item
// whose route is a segment prefix of the URL wins, so /a/b/123 matches a
// registered /a/b. Query string and fragment are ignored.
func Resolve(sections []MenuSection, rawURL string) Breadcrumb {
	current := urlSegments(rawURL)

	for _, section := range sections {
		for _, item := range section.Items {
			if item.Route == "" {
				continue
			}
			if hasPrefix(current, routeSegments(item.Route)) {
				return Breadcrumb{
					{Label: section.Title},
					{Label: item.Label, Active: true},
				}
			}
		}
	}
	return Home()
}

// routeSegments resolves a route against the root and splits it.
func routeSegments(route string) []string {
	return splitPath(path.Clean("/" + route))
}

func urlSegments(rawURL string) []string {
	p := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		p = u.Path
	} else if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	return splitPath(path.Clean("/" + p))
}

func splitPath(p string) []string {
	parts := strings.Split(p, "/")
	out := parts[:0]
	for _, s := range parts {
		if s == "" {
			continue
		}
		// Matrix parameters belong to the segment, not its identity.
		if i := strings.IndexByte(s, ';'); i >= 0 {
			s = s[:i]
		}
		out = append(out, s)
	}
	return out
}

func hasPrefix(current, route []string) bool {
	if len(route) > len(current) {
		return false
	}
	for i := range route {
		if current[i] != route[i] {
			return false
		}
	}
	return true
}

// Tracker keeps the breadcrumb of one navigation context (a browser session).
// Each completed navigation replaces the whole trail; the last one wins.
type Tracker struct {
	source  SectionSource
	current atomic.Pointer[Breadcrumb]
}

// NewTracker creates a tracker starting at Home.
func NewTracker(source SectionSource) *Tracker {
	t := &Tracker{source: source}
	home := Home()
	t.current.Store(&home)
	return t
}

// NavigationEnd recomputes the breadcrumb for the URL that was just reached.
func (t *Tracker) NavigationEnd(rawURL string) Breadcrumb {
	bc := Resolve(t.source.MenuSections(), rawURL)
	t.current.Store(&bc)
	return bc
}

// Current returns the last computed breadcrumb.
func (t *Tracker) Current() Breadcrumb {
	return *t.current.Load()
}
