// Package a11y provides an accessibility-criteria catalog and its query
// operations. The catalog is a fixed, in-memory tree of components organized
// by platform and category; queries resolve component names (exact match with
// a substring fallback), rank keyword searches with deterministic weighted
// scoring, and report which optional content sections a component carries.
//
// This package contains domain types, the query core, and service interfaces
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., content/,
// mcpserver/, goquery/).
package a11y
