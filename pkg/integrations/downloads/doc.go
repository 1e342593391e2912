// Package downloads implements the npm download-counts API client: point
// counts over a period, daily range series, and multi-package comparison.
//
// The period token (last-day, last-week, last-month, last-year) is treated
// as opaque and forwarded unvalidated; an unknown token surfaces whatever
// error the upstream returns.
package downloads
