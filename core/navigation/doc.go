// Package navigation composes the panel's navigation chrome.
//
// Feature modules describe themselves with a PluginDescriptor (routes, menu
// items, dependencies). The Registry accepts descriptors at startup, keeps
// them by id and maintains the ordered list of MenuSections that the shell
// renders.
//
// # Registration rules
//
//   - Disabled plugins are skipped.
//   - A plugin whose dependencies are not registered yet is skipped.
//   - Menu items always land in the "consultas" section and are de-duplicated by id.
//
// Skips are logged, never returned as errors.
//
// # Observing the menu
//
// Subscribe returns a channel that always holds the latest section list.
// Snapshots are copies; a reader never sees a half-applied registration.
//
// # Breadcrumbs
//
// Resolve matches a URL against the registered menu routes using segment
// prefix semantics and returns either [section, item] or [Inicio].
// Tracker stores the result of the last completed navigation.
package navigation
