// Package app provides the application service layer.
//
// Orchestrates one full pipeline recomputation per user action:
// live-or-cached source selection, time-window filtering, keyword
// filtering and sentiment annotation, then aggregation. Sits between
// HTTP handlers and the domain transformations. Depends on domain
// interfaces, not concrete implementations.
package app
