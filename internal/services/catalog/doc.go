// Package catalog implements the catalog operations over a TreeStore.
//
// Each call loads the full document, walks the identifier path by linear
// search, applies its change and saves the document back. A path segment that
// does not resolve fails with a NotFoundError naming that level; the first
// unresolved segment wins. Change events are published only after the save
// succeeded.
package catalog
