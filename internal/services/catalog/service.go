package catalog

import (
	"context"
	"encoding/json"
	"slices"
	"time"

	"quizadmin/internal/domain"
)

// Service applies catalog operations to the persisted tree.
type Service struct {
	store  domain.TreeStore
	ids    domain.IDGenerator
	events domain.EventPublisher
	now    func() time.Time
}

// New constructs a Service. events may be nil.
func New(store domain.TreeStore, ids domain.IDGenerator, events domain.EventPublisher) *Service {
	return &Service{store: store, ids: ids, events: events, now: time.Now}
}

// ListDomains returns every domain with its full subtree, in insertion order.
func (s *Service) ListDomains(ctx context.Context) ([]domain.Domain, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Domains, nil
}

// GetDomain returns one domain with its subtree.
func (s *Service) GetDomain(ctx context.Context, id domain.DomainID) (domain.Domain, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return domain.Domain{}, err
	}
	d, err := locateDomain(&doc, id)
	if err != nil {
		return domain.Domain{}, err
	}
	return *d, nil
}

// CreateDomain appends a new, empty domain.
func (s *Service) CreateDomain(ctx context.Context, in domain.DomainInput) (domain.Domain, error) {
	var created domain.Domain
	err := s.store.Update(ctx, func(doc *domain.Document) error {
		created = domain.Domain{
			ID:         domain.DomainID(s.nextID(doc)),
			Name:       in.Name,
			Categories: []domain.Category{},
		}
		doc.Domains = append(doc.Domains, created)
		return nil
	})
	if err != nil {
		return domain.Domain{}, err
	}
	s.publish(domain.Event{Type: domain.DomainCreated, DomainID: created.ID}, created)
	return created, nil
}

// UpdateDomain replaces the domain's name and returns the whole domain.
func (s *Service) UpdateDomain(ctx context.Context, id domain.DomainID, in domain.DomainInput) (domain.Domain, error) {
	var updated domain.Domain
	err := s.store.Update(ctx, func(doc *domain.Document) error {
		d, err := locateDomain(doc, id)
		if err != nil {
			return err
		}
		d.Name = in.Name
		updated = d.Clone()
		return nil
	})
	if err != nil {
		return domain.Domain{}, err
	}
	s.publish(domain.Event{Type: domain.DomainUpdated, DomainID: id}, updated)
	return updated, nil
}

// DeleteDomain removes the domain and everything beneath it.
func (s *Service) DeleteDomain(ctx context.Context, id domain.DomainID) error {
	err := s.store.Update(ctx, func(doc *domain.Document) error {
		i := doc.FindDomain(id)
		if i < 0 {
			return domain.NotFound(domain.EntityDomain)
		}
		doc.Domains = slices.Delete(doc.Domains, i, i+1)
		return nil
	})
	if err != nil {
		return err
	}
	s.publish(domain.Event{Type: domain.DomainDeleted, DomainID: id}, nil)
	return nil
}

// CreateCategory appends a new, empty category to a domain.
func (s *Service) CreateCategory(ctx context.Context, domainID domain.DomainID, in domain.CategoryInput) (domain.Category, error) {
	var created domain.Category
	err := s.store.Update(ctx, func(doc *domain.Document) error {
		d, err := locateDomain(doc, domainID)
		if err != nil {
			return err
		}
		created = domain.Category{
			ID:        domain.CategoryID(s.nextID(doc)),
			Name:      in.Name,
			Questions: []domain.Question{},
		}
		d.Categories = append(d.Categories, created)
		return nil
	})
	if err != nil {
		return domain.Category{}, err
	}
	s.publish(domain.Event{Type: domain.CategoryCreated, DomainID: domainID, CategoryID: created.ID}, created)
	return created, nil
}

// UpdateCategory replaces the category's name and returns the whole category.
func (s *Service) UpdateCategory(
	ctx context.Context,
	domainID domain.DomainID,
	id domain.CategoryID,
	in domain.CategoryInput,
) (domain.Category, error) {
	var updated domain.Category
	err := s.store.Update(ctx, func(doc *domain.Document) error {
		c, err := locateCategory(doc, domainID, id)
		if err != nil {
			return err
		}
		c.Name = in.Name
		updated = c.Clone()
		return nil
	})
	if err != nil {
		return domain.Category{}, err
	}
	s.publish(domain.Event{Type: domain.CategoryUpdated, DomainID: domainID, CategoryID: id}, updated)
	return updated, nil
}

// DeleteCategory removes the category and its questions.
func (s *Service) DeleteCategory(ctx context.Context, domainID domain.DomainID, id domain.CategoryID) error {
	err := s.store.Update(ctx, func(doc *domain.Document) error {
		d, err := locateDomain(doc, domainID)
		if err != nil {
			return err
		}
		i := d.FindCategory(id)
		if i < 0 {
			return domain.NotFound(domain.EntityCategory)
		}
		d.Categories = slices.Delete(d.Categories, i, i+1)
		return nil
	})
	if err != nil {
		return err
	}
	s.publish(domain.Event{Type: domain.CategoryDeleted, DomainID: domainID, CategoryID: id}, nil)
	return nil
}

// CreateQuestion appends a new question to a category.
func (s *Service) CreateQuestion(
	ctx context.Context,
	domainID domain.DomainID,
	categoryID domain.CategoryID,
	in domain.QuestionInput,
) (domain.Question, error) {
	var created domain.Question
	err := s.store.Update(ctx, func(doc *domain.Document) error {
		c, err := locateCategory(doc, domainID, categoryID)
		if err != nil {
			return err
		}
		created = domain.Question{
			ID:      domain.QuestionID(s.nextID(doc)),
			Text:    in.Text,
			Options: numberOptions(in.Options),
		}
		c.Questions = append(c.Questions, created)
		return nil
	})
	if err != nil {
		return domain.Question{}, err
	}
	s.publish(domain.Event{
		Type:       domain.QuestionCreated,
		DomainID:   domainID,
		CategoryID: categoryID,
		QuestionID: created.ID,
	}, created)
	return created, nil
}

// UpdateQuestion replaces the question's text and its complete option list.
func (s *Service) UpdateQuestion(
	ctx context.Context,
	domainID domain.DomainID,
	categoryID domain.CategoryID,
	id domain.QuestionID,
	in domain.QuestionInput,
) (domain.Question, error) {
	var updated domain.Question
	err := s.store.Update(ctx, func(doc *domain.Document) error {
		c, err := locateCategory(doc, domainID, categoryID)
		if err != nil {
			return err
		}
		i := c.FindQuestion(id)
		if i < 0 {
			return domain.NotFound(domain.EntityQuestion)
		}
		c.Questions[i].Text = in.Text
		c.Questions[i].Options = numberOptions(in.Options)
		updated = c.Questions[i].Clone()
		return nil
	})
	if err != nil {
		return domain.Question{}, err
	}
	s.publish(domain.Event{
		Type:       domain.QuestionUpdated,
		DomainID:   domainID,
		CategoryID: categoryID,
		QuestionID: id,
	}, updated)
	return updated, nil
}

// DeleteQuestion removes the question and its options.
func (s *Service) DeleteQuestion(
	ctx context.Context,
	domainID domain.DomainID,
	categoryID domain.CategoryID,
	id domain.QuestionID,
) error {
	err := s.store.Update(ctx, func(doc *domain.Document) error {
		c, err := locateCategory(doc, domainID, categoryID)
		if err != nil {
			return err
		}
		i := c.FindQuestion(id)
		if i < 0 {
			return domain.NotFound(domain.EntityQuestion)
		}
		c.Questions = slices.Delete(c.Questions, i, i+1)
		return nil
	})
	if err != nil {
		return err
	}
	s.publish(domain.Event{
		Type:       domain.QuestionDeleted,
		DomainID:   domainID,
		CategoryID: categoryID,
		QuestionID: id,
	}, nil)
	return nil
}

// nextID returns an id larger than any already in doc.
func (s *Service) nextID(doc *domain.Document) int64 {
	s.ids.Observe(doc.MaxID())
	return s.ids.Next()
}

func (s *Service) publish(ev domain.Event, resource any) {
	if s.events == nil {
		return
	}
	if resource != nil {
		if b, err := json.Marshal(resource); err == nil {
			ev.Resource = b
		}
	}
	ev.At = s.now().UnixMilli()
	s.events.Publish(ev)
}

func locateDomain(doc *domain.Document, id domain.DomainID) (*domain.Domain, error) {
	i := doc.FindDomain(id)
	if i < 0 {
		return nil, domain.NotFound(domain.EntityDomain)
	}
	return &doc.Domains[i], nil
}

func locateCategory(doc *domain.Document, domainID domain.DomainID, id domain.CategoryID) (*domain.Category, error) {
	d, err := locateDomain(doc, domainID)
	if err != nil {
		return nil, err
	}
	i := d.FindCategory(id)
	if i < 0 {
		return nil, domain.NotFound(domain.EntityCategory)
	}
	return &d.Categories[i], nil
}

// numberOptions copies opts and assigns ids 1..n in list order. Option ids
// are scoped to their question, so they are regenerated on every write.
func numberOptions(opts []domain.Option) []domain.Option {
	out := make([]domain.Option, len(opts))
	for i, o := range opts {
		out[i] = domain.Option{ID: domain.OptionID(i + 1), Text: o.Text, IsCorrect: o.IsCorrect}
	}
	return out
}

// Compile-time assertion that Service implements domain.Catalog.
var _ domain.Catalog = (*Service)(nil)
