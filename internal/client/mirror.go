package client

import (
	"context"
	"slices"
	"sync"

	"quizadmin/internal/domain"
)

// Status is the load state of a Mirror.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Mirror is a local copy of the server's domain tree.
//
// Fetch loads the tree. Each mutation calls the API and, on success, applies
// the same structural edit locally (append, replace or remove at the right
// level). The mirror is never reconciled with the server otherwise.
type Mirror struct {
	api domain.Catalog

	mu      sync.RWMutex
	domains []domain.Domain
	status  Status
	err     error
}

// NewMirror returns an idle, empty mirror over api.
func NewMirror(api domain.Catalog) *Mirror {
	return &Mirror{api: api, domains: []domain.Domain{}, status: StatusIdle}
}

// Status reports the state of the last Fetch.
func (m *Mirror) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

// Err returns the error of the most recent call, or nil if it succeeded.
func (m *Mirror) Err() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.err
}

// Domains returns a deep copy of the mirrored tree.
func (m *Mirror) Domains() []domain.Domain {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return domain.Document{Domains: m.domains}.Clone().Domains
}

// Fetch replaces the mirror with the server's tree.
func (m *Mirror) Fetch(ctx context.Context) error {
	m.mu.Lock()
	m.status = StatusLoading
	m.mu.Unlock()

	domains, err := m.api.ListDomains(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	if err != nil {
		m.status = StatusFailed
		return err
	}
	if domains == nil {
		domains = []domain.Domain{}
	}
	m.domains = domains
	m.status = StatusSucceeded
	return nil
}

func (m *Mirror) AddDomain(ctx context.Context, name string) (domain.Domain, error) {
	d, err := m.api.CreateDomain(ctx, domain.DomainInput{Name: name})
	return d, m.apply(err, func() {
		m.domains = append(m.domains, d.Clone())
	})
}

func (m *Mirror) UpdateDomain(ctx context.Context, id domain.DomainID, name string) (domain.Domain, error) {
	d, err := m.api.UpdateDomain(ctx, id, domain.DomainInput{Name: name})
	return d, m.apply(err, func() {
		if i := m.domainIndex(d.ID); i >= 0 {
			m.domains[i] = d.Clone()
		}
	})
}

func (m *Mirror) DeleteDomain(ctx context.Context, id domain.DomainID) error {
	err := m.api.DeleteDomain(ctx, id)
	return m.apply(err, func() {
		m.domains = slices.DeleteFunc(m.domains, func(d domain.Domain) bool { return d.ID == id })
	})
}

func (m *Mirror) AddCategory(ctx context.Context, domainID domain.DomainID, name string) (domain.Category, error) {
	c, err := m.api.CreateCategory(ctx, domainID, domain.CategoryInput{Name: name})
	return c, m.apply(err, func() {
		if d := m.lookupDomain(domainID); d != nil {
			d.Categories = append(d.Categories, c.Clone())
		}
	})
}

func (m *Mirror) UpdateCategory(
	ctx context.Context,
	domainID domain.DomainID,
	id domain.CategoryID,
	name string,
) (domain.Category, error) {
	c, err := m.api.UpdateCategory(ctx, domainID, id, domain.CategoryInput{Name: name})
	return c, m.apply(err, func() {
		if d := m.lookupDomain(domainID); d != nil {
			if i := d.FindCategory(id); i >= 0 {
				d.Categories[i] = c.Clone()
			}
		}
	})
}

func (m *Mirror) DeleteCategory(ctx context.Context, domainID domain.DomainID, id domain.CategoryID) error {
	err := m.api.DeleteCategory(ctx, domainID, id)
	return m.apply(err, func() {
		if d := m.lookupDomain(domainID); d != nil {
			d.Categories = slices.DeleteFunc(d.Categories, func(c domain.Category) bool { return c.ID == id })
		}
	})
}

func (m *Mirror) AddQuestion(
	ctx context.Context,
	domainID domain.DomainID,
	categoryID domain.CategoryID,
	in domain.QuestionInput,
) (domain.Question, error) {
	q, err := m.api.CreateQuestion(ctx, domainID, categoryID, in)
	return q, m.apply(err, func() {
		if c := m.lookupCategory(domainID, categoryID); c != nil {
			c.Questions = append(c.Questions, q.Clone())
		}
	})
}

func (m *Mirror) UpdateQuestion(
	ctx context.Context,
	domainID domain.DomainID,
	categoryID domain.CategoryID,
	id domain.QuestionID,
	in domain.QuestionInput,
) (domain.Question, error) {
	q, err := m.api.UpdateQuestion(ctx, domainID, categoryID, id, in)
	return q, m.apply(err, func() {
		if c := m.lookupCategory(domainID, categoryID); c != nil {
			if i := c.FindQuestion(id); i >= 0 {
				c.Questions[i] = q.Clone()
			}
		}
	})
}

func (m *Mirror) DeleteQuestion(
	ctx context.Context,
	domainID domain.DomainID,
	categoryID domain.CategoryID,
	id domain.QuestionID,
) error {
	err := m.api.DeleteQuestion(ctx, domainID, categoryID, id)
	return m.apply(err, func() {
		if c := m.lookupCategory(domainID, categoryID); c != nil {
			c.Questions = slices.DeleteFunc(c.Questions, func(q domain.Question) bool { return q.ID == id })
		}
	})
}

// apply records err and, when it is nil, runs edit under the write lock.
func (m *Mirror) apply(err error, edit func()) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	if err != nil {
		return err
	}
	edit()
	return nil
}

// The helpers below must be called with m.mu held.

func (m *Mirror) domainIndex(id domain.DomainID) int {
	doc := domain.Document{Domains: m.domains}
	return doc.FindDomain(id)
}

func (m *Mirror) lookupDomain(id domain.DomainID) *domain.Domain {
	if i := m.domainIndex(id); i >= 0 {
		return &m.domains[i]
	}
	return nil
}

func (m *Mirror) lookupCategory(domainID domain.DomainID, id domain.CategoryID) *domain.Category {
	d := m.lookupDomain(domainID)
	if d == nil {
		return nil
	}
	if i := d.FindCategory(id); i >= 0 {
		return &d.Categories[i]
	}
	return nil
}
