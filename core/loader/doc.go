// Package loader provides the plugin-like feature loading system.
//
// Each panel feature (auth, procesos, usuarios, ...) implements Feature: a
// static navigation.PluginDescriptor and the handlers for the routes it
// declares.
//
// # Feature Interface
//
//	type Feature interface {
//	    Descriptor() navigation.PluginDescriptor
//	    Handlers() map[string]fiber.Handler
//	}
//
// # Manager
//
// The Manager feeds descriptors to the navigation registry in registration
// order and remembers which features were accepted. LoadAll then mounts the
// accepted features only, wrapping each route in an access guard built from
// the route's declared roles and permissions. Public routes declare neither.
package loader
