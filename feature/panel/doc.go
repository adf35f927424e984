// Package panel serves the chrome of the administrative panel.
//
// The Shell follows the navigation registry and keeps one breadcrumb tracker
// per session token. The client reports every completed navigation to
// POST /panel/navigation/end and renders the menu returned by
// GET /panel/navigation, already filtered for the session user's role and
// permissions.
package panel
