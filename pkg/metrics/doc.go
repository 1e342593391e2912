// Package metrics computes derived values over download series (aggregate
// summaries, a glyph sparkline, trend reports) and renders the direct
// dependency listing of a package. Everything here is pure computation over
// records produced by the integrations clients.
package metrics
