package client_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizadmin/internal/client"
	"quizadmin/internal/domain"
	"quizadmin/internal/ids"
	"quizadmin/internal/services/catalog"
	"quizadmin/internal/store"
)

// flakyCatalog fails every call once broken is set.
type flakyCatalog struct {
	domain.Catalog
	broken bool
}

var errOffline = errors.New("offline")

func (f *flakyCatalog) ListDomains(ctx context.Context) ([]domain.Domain, error) {
	if f.broken {
		return nil, errOffline
	}
	return f.Catalog.ListDomains(ctx)
}

func (f *flakyCatalog) CreateDomain(ctx context.Context, in domain.DomainInput) (domain.Domain, error) {
	if f.broken {
		return domain.Domain{}, errOffline
	}
	return f.Catalog.CreateDomain(ctx, in)
}

func (f *flakyCatalog) DeleteDomain(ctx context.Context, id domain.DomainID) error {
	if f.broken {
		return errOffline
	}
	return f.Catalog.DeleteDomain(ctx, id)
}

func localCatalog(t *testing.T) domain.Catalog {
	t.Helper()
	return catalog.New(store.NewTreeFileStore(filepath.Join(t.TempDir(), "db.json")), ids.NewMonotonic(), nil)
}

func assertMirrors(t *testing.T, api domain.Catalog, m *client.Mirror) {
	t.Helper()
	server, err := api.ListDomains(context.Background())
	require.NoError(t, err)
	if diff := cmp.Diff(server, m.Domains()); diff != "" {
		t.Errorf("mirror differs from server (-server +mirror):\n%s", diff)
	}
}

func TestMirror_FetchTransitions(t *testing.T) {
	ctx := context.Background()
	api := localCatalog(t)
	_, err := api.CreateDomain(ctx, domain.DomainInput{Name: "Math"})
	require.NoError(t, err)

	m := client.NewMirror(api)
	assert.Equal(t, client.StatusIdle, m.Status())
	assert.Empty(t, m.Domains())

	require.NoError(t, m.Fetch(ctx))
	assert.Equal(t, client.StatusSucceeded, m.Status())
	require.Len(t, m.Domains(), 1)
	assert.Equal(t, "Math", m.Domains()[0].Name)
}

func TestMirror_FetchFailure(t *testing.T) {
	m := client.NewMirror(&flakyCatalog{Catalog: localCatalog(t), broken: true})

	err := m.Fetch(context.Background())
	assert.ErrorIs(t, err, errOffline)
	assert.Equal(t, client.StatusFailed, m.Status())
	assert.ErrorIs(t, m.Err(), errOffline)
}

func TestMirror_TracksServerWithoutRefetching(t *testing.T) {
	ctx := context.Background()
	api := localCatalog(t)
	m := client.NewMirror(api)
	require.NoError(t, m.Fetch(ctx))

	d, err := m.AddDomain(ctx, "Math")
	require.NoError(t, err)
	c, err := m.AddCategory(ctx, d.ID, "Algebra")
	require.NoError(t, err)
	q, err := m.AddQuestion(ctx, d.ID, c.ID, domain.QuestionInput{
		Text:    "2+2?",
		Options: []domain.Option{{Text: "4", IsCorrect: true}, {Text: "5"}},
	})
	require.NoError(t, err)
	_, err = m.UpdateDomain(ctx, d.ID, "Mathematics")
	require.NoError(t, err)
	_, err = m.UpdateCategory(ctx, d.ID, c.ID, "Arithmetic")
	require.NoError(t, err)
	_, err = m.UpdateQuestion(ctx, d.ID, c.ID, q.ID, domain.QuestionInput{
		Text:    "3+3?",
		Options: []domain.Option{{Text: "6", IsCorrect: true}, {Text: "7"}},
	})
	require.NoError(t, err)
	h, err := m.AddDomain(ctx, "History")
	require.NoError(t, err)

	assertMirrors(t, api, m)

	require.NoError(t, m.DeleteQuestion(ctx, d.ID, c.ID, q.ID))
	require.NoError(t, m.DeleteCategory(ctx, d.ID, c.ID))
	require.NoError(t, m.DeleteDomain(ctx, h.ID))

	assertMirrors(t, api, m)
	require.Len(t, m.Domains(), 1)
	assert.Empty(t, m.Domains()[0].Categories)
	assert.NoError(t, m.Err())
}

func TestMirror_FailedActionLeavesMirrorUnchanged(t *testing.T) {
	ctx := context.Background()
	flaky := &flakyCatalog{Catalog: localCatalog(t)}
	m := client.NewMirror(flaky)
	d, err := m.AddDomain(ctx, "Math")
	require.NoError(t, err)
	before := m.Domains()

	flaky.broken = true
	_, err = m.AddDomain(ctx, "History")
	assert.ErrorIs(t, err, errOffline)
	assert.ErrorIs(t, m.DeleteDomain(ctx, d.ID), errOffline)
	assert.Equal(t, before, m.Domains())
	assert.ErrorIs(t, m.Err(), errOffline)

	_, err = m.UpdateDomain(ctx, 999999, "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, before, m.Domains())
}

func TestMirror_DomainsIsACopy(t *testing.T) {
	ctx := context.Background()
	m := client.NewMirror(localCatalog(t))
	d, err := m.AddDomain(ctx, "Math")
	require.NoError(t, err)
	_, err = m.AddCategory(ctx, d.ID, "Algebra")
	require.NoError(t, err)

	snapshot := m.Domains()
	snapshot[0].Name = "changed"
	snapshot[0].Categories[0].Name = "changed"

	assert.Equal(t, "Math", m.Domains()[0].Name)
	assert.Equal(t, "Algebra", m.Domains()[0].Categories[0].Name)
}

func TestMirror_OverHTTP(t *testing.T) {
	ctx := context.Background()
	env := newAPI(t)
	m := client.NewMirror(env.api)
	require.NoError(t, m.Fetch(ctx))

	d, err := m.AddDomain(ctx, "Math")
	require.NoError(t, err)
	_, err = m.AddCategory(ctx, d.ID, "Algebra")
	require.NoError(t, err)

	fresh := client.NewMirror(env.api)
	require.NoError(t, fresh.Fetch(ctx))
	assert.Equal(t, fresh.Domains(), m.Domains())
}
