// Package server implements the HTTP server using Echo framework.
//
// Routes: dashboard page (html/template), analysis API, health probes,
// prometheus metrics, version. Handlers split by concern:
// handlers_dashboard.go, handlers_api.go, handlers_health.go.
package server
