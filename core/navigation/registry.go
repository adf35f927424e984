package navigation

import (
	"sync"

	"go.uber.org/zap"
)

// Registry aggregates plugin descriptors into the ordered menu tree.
//
// A Registry is built once at startup and handed to whatever needs it.
// Published section lists are never mutated after publication; every
// successful registration builds a fresh copy and swaps it in.
type Registry struct {
	mu       sync.RWMutex
	logger   *zap.Logger
	plugins  map[string]PluginDescriptor
	order    []string
	sections []MenuSection

	subs    map[int]chan []MenuSection
	nextSub int
}

// NewRegistry creates a registry holding the default sections.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		logger:   logger,
		plugins:  make(map[string]PluginDescriptor),
		sections: DefaultSections(),
		subs:     make(map[int]chan []MenuSection),
	}
}

// Register adds a plugin to the registry.
//
// Disabled plugins and plugins whose dependencies are not registered yet are
// skipped with a warning and leave the registry untouched. The returned bool
// reports whether the plugin was accepted.
func (r *Registry) Register(d PluginDescriptor) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	l := r.logger.With(zap.String("plugin", d.ID))

	if !d.Enabled {
		l.Warn("Plugin is disabled, skipping registration")
		return false
	}

	for _, dep := range d.Dependencies {
		if _, ok := r.plugins[dep]; !ok {
			l.Warn("Plugin dependency is not registered, skipping registration",
				zap.String("dependency", dep))
			return false
		}
	}

	if _, exists := r.plugins[d.ID]; !exists {
		r.order = append(r.order, d.ID)
	}
	r.plugins[d.ID] = d

	next := cloneSections(r.sections)
	r.addMenuItems(next, d.MenuItems)
	r.sections = next
	r.publish()

	l.Info("Plugin registered",
		zap.String("version", d.Version),
		zap.Int("menu_items", len(d.MenuItems)))
	return true
}

// addMenuItems appends items into the consultas section, whatever their
// SectionID says. Items whose id is already present are skipped.
func (r *Registry) addMenuItems(sections []MenuSection, items []MenuItem) {
	for i := range sections {
		if sections[i].ID != SectionConsultas {
			continue
		}
		for _, item := range items {
			if containsItem(sections[i].Items, item.ID) {
				continue
			}
			sections[i].Items = append(sections[i].Items, item)
		}
		return
	}
}

func containsItem(items []MenuItem, id string) bool {
	for _, it := range items {
		if it.ID == id {
			return true
		}
	}
	return false
}

// publish pushes the current sections to every subscriber. Must hold r.mu.
func (r *Registry) publish() {
	for _, ch := range r.subs {
		// Replace an unread snapshot so slow readers only see the latest one.
		select {
		case <-ch:
		default:
		}
		ch <- cloneSections(r.sections)
	}
}

// MenuSections returns a copy of the current section list.
func (r *Registry) MenuSections() []MenuSection {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneSections(r.sections)
}

// Subscribe returns a channel that receives the current section list right
// away and again after every successful registration. Only the latest
// snapshot is buffered. The returned cancel func closes the channel.
func (r *Registry) Subscribe() (<-chan []MenuSection, func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextSub
	r.nextSub++

	ch := make(chan []MenuSection, 1)
	ch <- cloneSections(r.sections)
	r.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			delete(r.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

// EnabledPlugins returns registered plugins in first-registration order.
func (r *Registry) EnabledPlugins() []PluginDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]PluginDescriptor, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.plugins[id])
	}
	return out
}

// Plugin looks up a registered plugin by id.
func (r *Registry) Plugin(id string) (PluginDescriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.plugins[id]
	return d, ok
}
