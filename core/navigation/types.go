package navigation

// Fixed section ids. Sections are created with the registry and never added at runtime.
const (
	SectionConsultas = "consultas"
	SectionReportes  = "reportes"
	SectionSistema   = "sistema"
)

// HomeLabel is the breadcrumb shown when no menu item matches the current URL.
const HomeLabel = "Inicio"

// MenuItem is a single navigation entry contributed by a plugin.
type MenuItem struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Icon        string   `json:"icon,omitempty"`
	Route       string   `json:"route,omitempty"`
	Roles       []string `json:"roles,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
	// Enabled is optional; nil means enabled.
	Enabled   *bool  `json:"enabled,omitempty"`
	Order     int    `json:"order,omitempty"`
	SectionID string `json:"sectionId,omitempty"`
}

// IsEnabled reports whether the item should be shown at all.
func (m MenuItem) IsEnabled() bool {
	return m.Enabled == nil || *m.Enabled
}

// MenuSection groups menu items under a title in the navigation chrome.
type MenuSection struct {
	ID    string     `json:"id"`
	Title string     `json:"title"`
	Items []MenuItem `json:"items"`
	Order int        `json:"order"`
}

// Route describes an HTTP route exposed by a plugin together with the
// roles and permissions required to activate it.
type Route struct {
	Method      string   `json:"method"`
	Path        string   `json:"path"`
	Roles       []string `json:"roles,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
}

// PluginDescriptor is the static declaration of a feature module.
// Descriptors are built once at startup and never modified.
type PluginDescriptor struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Version      string     `json:"version"`
	Enabled      bool       `json:"enabled"`
	MenuItems    []MenuItem `json:"menuItems"`
	Routes       []Route    `json:"routes"`
	Dependencies []string   `json:"dependencies"`
}

// Crumb is one element of a breadcrumb trail.
type Crumb struct {
	Label  string `json:"label"`
	Active bool   `json:"active,omitempty"`
}

// Breadcrumb is the trail describing the current location.
type Breadcrumb []Crumb

// DefaultSections returns the sections that exist before any plugin registers.
func DefaultSections() []MenuSection {
	return []MenuSection{
		{ID: SectionConsultas, Title: "Consultas", Items: []MenuItem{}, Order: 1},
		{ID: SectionReportes, Title: "Reportes", Items: []MenuItem{}, Order: 2},
		{ID: SectionSistema, Title: "Sistema", Items: []MenuItem{}, Order: 3},
	}
}

// Bool returns a pointer to b, for MenuItem.Enabled literals.
func Bool(b bool) *bool {
	return &b
}

func cloneSections(in []MenuSection) []MenuSection {
	out := make([]MenuSection, len(in))
	for i, s := range in {
		out[i] = s
		out[i].Items = append([]MenuItem(nil), s.Items...)
		if out[i].Items == nil {
			out[i].Items = []MenuItem{}
		}
	}
	return out
}
