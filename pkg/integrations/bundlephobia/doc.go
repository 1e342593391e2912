// Package bundlephobia implements the bundlephobia.com size-analysis API
// client. Input accepts either a bare package name or a name@version spec;
// a bare name is pinned to @latest before the request.
package bundlephobia
