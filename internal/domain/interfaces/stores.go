package interfaces

import (
	"context"

	domaintypes "quizadmin/internal/domain/types"
)

// TreeStore persists the whole catalog as a single document.
type TreeStore interface {
	// Load reads and parses the persisted document.
	Load(ctx context.Context) (domaintypes.Document, error)
	// Save replaces the persisted document with doc.
	Save(ctx context.Context, doc domaintypes.Document) error
	// Update runs fn between a Load and a Save while holding the writer lock.
	// Nothing is saved when fn returns an error.
	Update(ctx context.Context, fn func(doc *domaintypes.Document) error) error
}

// IDGenerator hands out numeric identifiers for new entities.
type IDGenerator interface {
	Next() int64
	// Observe tells the generator an id is already taken.
	Observe(id int64)
}
