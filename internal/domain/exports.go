package domain

import (
	interfaces "quizadmin/internal/domain/interfaces"
	types "quizadmin/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	DomainID      = types.DomainID
	CategoryID    = types.CategoryID
	QuestionID    = types.QuestionID
	OptionID      = types.OptionID
	Document      = types.Document
	Domain        = types.Domain
	Category      = types.Category
	Question      = types.Question
	Option        = types.Option
	DomainInput   = types.DomainInput
	CategoryInput = types.CategoryInput
	QuestionInput = types.QuestionInput
	QuestionMatch = types.QuestionMatch
	Entity        = types.Entity
	NotFoundError = types.NotFoundError
	Event         = types.Event
	EventType     = types.EventType
)

// Interface aliases expose contracts from the interfaces subpackage.
type (
	TreeStore      = interfaces.TreeStore
	IDGenerator    = interfaces.IDGenerator
	Catalog        = interfaces.Catalog
	EventPublisher = interfaces.EventPublisher
)

var (
	ErrNotFound     = types.ErrNotFound
	ErrCorruptStore = types.ErrCorruptStore
	ErrPersistence  = types.ErrPersistence
	ErrBadRequest   = types.ErrBadRequest
	ErrInvalidQuery = types.ErrInvalidQuery
)

const (
	EntityDomain   = types.EntityDomain
	EntityCategory = types.EntityCategory
	EntityQuestion = types.EntityQuestion

	DomainCreated   = types.DomainCreated
	DomainUpdated   = types.DomainUpdated
	DomainDeleted   = types.DomainDeleted
	CategoryCreated = types.CategoryCreated
	CategoryUpdated = types.CategoryUpdated
	CategoryDeleted = types.CategoryDeleted
	QuestionCreated = types.QuestionCreated
	QuestionUpdated = types.QuestionUpdated
	QuestionDeleted = types.QuestionDeleted
	StoreReloaded   = types.StoreReloaded
)

// NotFound returns the not-found error for entity.
func NotFound(entity Entity) error { return types.NotFound(entity) }
