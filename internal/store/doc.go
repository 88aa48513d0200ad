// Package store provides file-based persistence for the catalog.
//
// The whole Domain/Category/Question/Option tree lives in a single JSON
// document of the form {"domains": [...]}. There is no index, log or cache
// next to it: every operation reads the full file and every mutation rewrites
// it.
//
// Writes go to a temporary file in the same directory which is synced and
// renamed over the target, so a reader never observes a half-written document
// and a failed write leaves the previous contents in place.
package store
