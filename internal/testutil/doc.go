// Package testutil provides shared fixtures and builders for tests.
//
// The embedded record tree under fixtures/ is a miniature but complete
// data directory: STO-3G in two versions (H/C, then H/C/O), 6-31G with a
// two-component carbon (tests assembly order and reference broadcast),
// an ECP demonstration set, a jfit auxiliary wired to 6-31G, and a
// YAML-encoded set whose numbers use quoted D-notation strings. Tests
// across store, compose, catalog, render and cli packages share it.
package testutil
