// Package registry implements the npm registry client: full-text package
// search and package-document lookup.
//
// The registry's JSON is loosely typed (license and repository may be
// strings or objects, most fields are optional), so responses are decoded
// into permissive shapes and immediately mapped to strict records with
// explicit per-field defaults.
package registry
