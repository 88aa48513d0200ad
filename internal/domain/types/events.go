package types

import "encoding/json"

// EventType names a change applied to the catalog.
type EventType string

const (
	DomainCreated   EventType = "domain.created"
	DomainUpdated   EventType = "domain.updated"
	DomainDeleted   EventType = "domain.deleted"
	CategoryCreated EventType = "category.created"
	CategoryUpdated EventType = "category.updated"
	CategoryDeleted EventType = "category.deleted"
	QuestionCreated EventType = "question.created"
	QuestionUpdated EventType = "question.updated"
	QuestionDeleted EventType = "question.deleted"

	// StoreReloaded means the document was replaced outside the API; clients
	// should refetch.
	StoreReloaded EventType = "store.reloaded"
)

// Event describes one persisted mutation. Resource holds the created or
// updated entity and is empty for deletions.
type Event struct {
	Type       EventType       `json:"type"`
	DomainID   DomainID        `json:"domainId"`
	CategoryID CategoryID      `json:"categoryId,omitempty"`
	QuestionID QuestionID      `json:"questionId,omitempty"`
	Resource   json.RawMessage `json:"resource,omitempty"`
	At         int64           `json:"at"`
}
