package interfaces

import (
	"context"

	domaintypes "quizadmin/internal/domain/types"
)

// Catalog is the full set of catalog operations. The catalog service
// implements it over the store and the HTTP client implements it over the API.
type Catalog interface {
	ListDomains(ctx context.Context) ([]domaintypes.Domain, error)
	GetDomain(ctx context.Context, id domaintypes.DomainID) (domaintypes.Domain, error)
	CreateDomain(ctx context.Context, in domaintypes.DomainInput) (domaintypes.Domain, error)
	UpdateDomain(
		ctx context.Context,
		id domaintypes.DomainID,
		in domaintypes.DomainInput,
	) (domaintypes.Domain, error)
	DeleteDomain(ctx context.Context, id domaintypes.DomainID) error

	CreateCategory(
		ctx context.Context,
		domainID domaintypes.DomainID,
		in domaintypes.CategoryInput,
	) (domaintypes.Category, error)
	UpdateCategory(
		ctx context.Context,
		domainID domaintypes.DomainID,
		id domaintypes.CategoryID,
		in domaintypes.CategoryInput,
	) (domaintypes.Category, error)
	DeleteCategory(ctx context.Context, domainID domaintypes.DomainID, id domaintypes.CategoryID) error

	CreateQuestion(
		ctx context.Context,
		domainID domaintypes.DomainID,
		categoryID domaintypes.CategoryID,
		in domaintypes.QuestionInput,
	) (domaintypes.Question, error)
	UpdateQuestion(
		ctx context.Context,
		domainID domaintypes.DomainID,
		categoryID domaintypes.CategoryID,
		id domaintypes.QuestionID,
		in domaintypes.QuestionInput,
	) (domaintypes.Question, error)
	DeleteQuestion(
		ctx context.Context,
		domainID domaintypes.DomainID,
		categoryID domaintypes.CategoryID,
		id domaintypes.QuestionID,
	) error

	// Search returns the domains whose name, category names or question texts
	// contain query, case-insensitively.
	Search(ctx context.Context, query string) ([]domaintypes.Domain, error)
	// FilterQuestions returns every question for which the boolean
	// expression where holds.
	FilterQuestions(ctx context.Context, where string) ([]domaintypes.QuestionMatch, error)
}

// EventPublisher fans out change events to subscribers.
type EventPublisher interface {
	Publish(ev domaintypes.Event)
}
