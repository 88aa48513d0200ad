// Package domain defines the catalog data model and the contracts shared
// across the app. It contains plain types (wire/state) and interfaces only.
//
// The catalog is a strict tree: a Document owns Domains, a Domain owns
// Categories, a Category owns Questions, a Question owns Options. Children are
// held by value inside their parent and are never shared.
package domain
