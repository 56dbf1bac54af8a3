// Package analysis holds the pure dataset transformations: keyword
// filtering, sentiment annotation, time-window filtering, and the
// hourly/top-K aggregations. Every function returns a new Dataset or
// aggregate; inputs are never mutated.
package analysis
