package navigation_test

import (
	"testing"
	"time"

	"redelex-panel/core/navigation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func consultas(t *testing.T, sections []navigation.MenuSection) navigation.MenuSection {
	t.Helper()
	for _, s := range sections {
		if s.ID == navigation.SectionConsultas {
			return s
		}
	}
	t.Fatalf("consultas section not found")
	return navigation.MenuSection{}
}

func itemIDs(items []navigation.MenuItem) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}

func TestNewRegistry_DefaultSections(t *testing.T) {
	r := navigation.NewRegistry(zap.NewNop())
	sections := r.MenuSections()

	require.Len(t, sections, 3)
	assert.Equal(t, "consultas", sections[0].ID)
	assert.Equal(t, "Consultas", sections[0].Title)
	assert.Equal(t, "reportes", sections[1].ID)
	assert.Equal(t, "sistema", sections[2].ID)
	for _, s := range sections {
		assert.Empty(t, s.Items)
	}
}

func TestRegister_DependencyOrder(t *testing.T) {
	r := navigation.NewRegistry(zap.NewNop())

	ok := r.Register(navigation.PluginDescriptor{ID: "auth", Enabled: true})
	require.True(t, ok)

	ok = r.Register(navigation.PluginDescriptor{
		ID:           "redelex",
		Enabled:      true,
		Dependencies: []string{"auth"},
		MenuItems: []navigation.MenuItem{
			{ID: "x", Label: "X", Route: "/panel/consultas/x", SectionID: "consultas"},
		},
	})
	require.True(t, ok)

	assert.Equal(t, []string{"x"}, itemIDs(consultas(t, r.MenuSections()).Items))
}

func TestRegister_MissingDependency(t *testing.T) {
	r := navigation.NewRegistry(zap.NewNop())

	ok := r.Register(navigation.PluginDescriptor{
		ID:           "redelex",
		Enabled:      true,
		Dependencies: []string{"auth"},
		MenuItems:    []navigation.MenuItem{{ID: "x", Label: "X", Route: "/x"}},
	})

	assert.False(t, ok)
	assert.Empty(t, consultas(t, r.MenuSections()).Items)
	_, found := r.Plugin("redelex")
	assert.False(t, found)

	// Registering the dependency later does not resurrect the skipped plugin.
	r.Register(navigation.PluginDescriptor{ID: "auth", Enabled: true})
	assert.Empty(t, consultas(t, r.MenuSections()).Items)
}

func TestRegister_DisabledLeavesSectionsUnchanged(t *testing.T) {
	r := navigation.NewRegistry(zap.NewNop())
	r.Register(navigation.PluginDescriptor{
		ID:        "auth",
		Enabled:   true,
		MenuItems: []navigation.MenuItem{{ID: "a", Label: "A", Route: "/a"}},
	})
	before := r.MenuSections()

	ok := r.Register(navigation.PluginDescriptor{
		ID:        "off",
		Enabled:   false,
		MenuItems: []navigation.MenuItem{{ID: "b", Label: "B", Route: "/b"}},
	})

	assert.False(t, ok)
	assert.Equal(t, before, r.MenuSections())
	assert.Len(t, r.EnabledPlugins(), 1)
}

func TestRegister_Idempotent(t *testing.T) {
	r := navigation.NewRegistry(zap.NewNop())
	d := navigation.PluginDescriptor{
		ID:      "redelex",
		Enabled: true,
		MenuItems: []navigation.MenuItem{
			{ID: "x", Label: "X", Route: "/x"},
			{ID: "y", Label: "Y", Route: "/y"},
		},
	}

	r.Register(d)
	r.Register(d)

	assert.Equal(t, []string{"x", "y"}, itemIDs(consultas(t, r.MenuSections()).Items))
	assert.Len(t, r.EnabledPlugins(), 1)
}

func TestRegister_DuplicateIDLastWriteWins(t *testing.T) {
	r := navigation.NewRegistry(zap.NewNop())
	r.Register(navigation.PluginDescriptor{ID: "p", Version: "1.0.0", Enabled: true})
	r.Register(navigation.PluginDescriptor{ID: "p", Version: "2.0.0", Enabled: true})

	d, ok := r.Plugin("p")
	require.True(t, ok)
	assert.Equal(t, "2.0.0", d.Version)
	assert.Len(t, r.EnabledPlugins(), 1)
}

// Items declare their own section but are always placed in consultas.
func TestRegister_ItemsAlwaysGoToConsultas(t *testing.T) {
	r := navigation.NewRegistry(zap.NewNop())
	r.Register(navigation.PluginDescriptor{
		ID:      "reports",
		Enabled: true,
		MenuItems: []navigation.MenuItem{
			{ID: "r1", Label: "Reporte", Route: "/panel/reportes/procesos", SectionID: navigation.SectionReportes},
			{ID: "s1", Label: "Usuarios", Route: "/panel/usuarios", SectionID: navigation.SectionSistema},
		},
	})

	sections := r.MenuSections()
	assert.Equal(t, []string{"r1", "s1"}, itemIDs(sections[0].Items))
	assert.Empty(t, sections[1].Items)
	assert.Empty(t, sections[2].Items)
}

func TestPlugin_Unknown(t *testing.T) {
	r := navigation.NewRegistry(nil)
	d, ok := r.Plugin("nope")
	assert.False(t, ok)
	assert.Empty(t, d.ID)
}

func TestEnabledPlugins_RegistrationOrder(t *testing.T) {
	r := navigation.NewRegistry(zap.NewNop())
	r.Register(navigation.PluginDescriptor{ID: "auth", Enabled: true})
	r.Register(navigation.PluginDescriptor{ID: "redelex", Enabled: true, Dependencies: []string{"auth"}})
	r.Register(navigation.PluginDescriptor{ID: "admin", Enabled: true, Dependencies: []string{"auth"}})

	var ids []string
	for _, p := range r.EnabledPlugins() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"auth", "redelex", "admin"}, ids)
}

func TestMenuSections_ReturnsCopy(t *testing.T) {
	r := navigation.NewRegistry(zap.NewNop())
	r.Register(navigation.PluginDescriptor{
		ID:        "p",
		Enabled:   true,
		MenuItems: []navigation.MenuItem{{ID: "x", Label: "X"}},
	})

	s := r.MenuSections()
	s[0].Items[0].Label = "mutated"
	s[0].Items = append(s[0].Items, navigation.MenuItem{ID: "z"})

	again := r.MenuSections()
	assert.Equal(t, "X", again[0].Items[0].Label)
	assert.Len(t, again[0].Items, 1)
}

func TestSubscribe_ReceivesCurrentAndUpdates(t *testing.T) {
	r := navigation.NewRegistry(zap.NewNop())
	ch, cancel := r.Subscribe()
	defer cancel()

	first := <-ch
	assert.Empty(t, first[0].Items)

	r.Register(navigation.PluginDescriptor{
		ID:        "p",
		Enabled:   true,
		MenuItems: []navigation.MenuItem{{ID: "x", Label: "X"}},
	})

	select {
	case next := <-ch:
		assert.Equal(t, []string{"x"}, itemIDs(next[0].Items))
	case <-time.After(time.Second):
		t.Fatal("no snapshot published")
	}
}

func TestSubscribe_SlowReaderSeesLatest(t *testing.T) {
	r := navigation.NewRegistry(zap.NewNop())
	ch, cancel := r.Subscribe()
	defer cancel()

	r.Register(navigation.PluginDescriptor{ID: "a", Enabled: true, MenuItems: []navigation.MenuItem{{ID: "a"}}})
	r.Register(navigation.PluginDescriptor{ID: "b", Enabled: true, MenuItems: []navigation.MenuItem{{ID: "b"}}})

	latest := <-ch
	assert.Equal(t, []string{"a", "b"}, itemIDs(latest[0].Items))

	select {
	case extra := <-ch:
		t.Fatalf("unexpected queued snapshot: %v", extra)
	default:
	}
}

func TestSubscribe_CancelClosesChannel(t *testing.T) {
	r := navigation.NewRegistry(zap.NewNop())
	ch, cancel := r.Subscribe()
	<-ch

	cancel()
	cancel()

	_, open := <-ch
	assert.False(t, open)

	// Publishing after cancel must not panic.
	assert.True(t, r.Register(navigation.PluginDescriptor{ID: "p", Enabled: true}))
}
