// Package domain contains the few entities this service owns itself: the
// billing customer bound to a project, its subscription state, and password
// reset tokens. Everything else (sites, pages, scans, content jobs, team
// members) belongs to the backend and is relayed as opaque JSON.
package domain
