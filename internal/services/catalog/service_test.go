package catalog_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizadmin/internal/domain"
	"quizadmin/internal/ids"
	"quizadmin/internal/services/catalog"
	"quizadmin/internal/store"
)

type recorder struct {
	mu     sync.Mutex
	events []domain.Event
}

func (r *recorder) Publish(ev domain.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) types() []domain.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.EventType, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Type
	}
	return out
}

type fixture struct {
	svc    *catalog.Service
	events *recorder
	path   string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db.json")
	clock := func() time.Time { return time.UnixMilli(1700000000000) }
	rec := &recorder{}
	return fixture{
		svc:    catalog.New(store.NewTreeFileStore(path), ids.NewMonotonicWithClock(clock), rec),
		events: rec,
		path:   path,
	}
}

// seed builds Math > Algebra > "2+2?" and returns the three ids.
func seed(t *testing.T, svc *catalog.Service) (domain.DomainID, domain.CategoryID, domain.QuestionID) {
	t.Helper()
	ctx := context.Background()
	d, err := svc.CreateDomain(ctx, domain.DomainInput{Name: "Math"})
	require.NoError(t, err)
	c, err := svc.CreateCategory(ctx, d.ID, domain.CategoryInput{Name: "Algebra"})
	require.NoError(t, err)
	q, err := svc.CreateQuestion(ctx, d.ID, c.ID, domain.QuestionInput{
		Text: "2+2?",
		Options: []domain.Option{
			{Text: "4", IsCorrect: true},
			{Text: "5", IsCorrect: false},
		},
	})
	require.NoError(t, err)
	return d.ID, c.ID, q.ID
}

func TestCreateDomain_AssignsFreshIDAndEmptyCategories(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.CreateDomain(ctx, domain.DomainInput{Name: "Math"})
	require.NoError(t, err)
	second, err := f.svc.CreateDomain(ctx, domain.DomainInput{Name: "History"})
	require.NoError(t, err)

	assert.Equal(t, "Math", first.Name)
	assert.NotNil(t, first.Categories)
	assert.Empty(t, first.Categories)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreateQuestion_TreeReadsBackInOrder(t *testing.T) {
	f := newFixture(t)
	dID, cID, qID := seed(t, f.svc)

	domains, err := f.svc.ListDomains(context.Background())
	require.NoError(t, err)
	require.Len(t, domains, 1)
	require.Equal(t, dID, domains[0].ID)
	require.Len(t, domains[0].Categories, 1)
	require.Equal(t, cID, domains[0].Categories[0].ID)
	require.Len(t, domains[0].Categories[0].Questions, 1)

	q := domains[0].Categories[0].Questions[0]
	assert.Equal(t, qID, q.ID)
	assert.Equal(t, "2+2?", q.Text)
	assert.Equal(t, []domain.Option{
		{ID: 1, Text: "4", IsCorrect: true},
		{ID: 2, Text: "5", IsCorrect: false},
	}, q.Options)
}

func TestNotFound_ReportsOutermostMissingLevel(t *testing.T) {
	f := newFixture(t)
	dID, cID, _ := seed(t, f.svc)
	ctx := context.Background()

	cases := []struct {
		name string
		call func() error
		want string
	}{
		{"category under missing domain", func() error {
			_, err := f.svc.CreateCategory(ctx, 999999, domain.CategoryInput{Name: "x"})
			return err
		}, "Domain not found"},
		{"missing domain and category", func() error {
			return f.svc.DeleteCategory(ctx, 999999, 888888)
		}, "Domain not found"},
		{"missing category", func() error {
			_, err := f.svc.UpdateCategory(ctx, dID, 888888, domain.CategoryInput{Name: "x"})
			return err
		}, "Category not found"},
		{"question under missing category", func() error {
			_, err := f.svc.CreateQuestion(ctx, dID, 888888, domain.QuestionInput{Text: "x"})
			return err
		}, "Category not found"},
		{"missing question", func() error {
			return f.svc.DeleteQuestion(ctx, dID, cID, 777777)
		}, "Question not found"},
		{"update missing question", func() error {
			_, err := f.svc.UpdateQuestion(ctx, dID, cID, 777777, domain.QuestionInput{Text: "x"})
			return err
		}, "Question not found"},
		{"get missing domain", func() error {
			_, err := f.svc.GetDomain(ctx, 999999)
			return err
		}, "Domain not found"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrNotFound)
			assert.EqualError(t, err, tc.want)
		})
	}
}

func TestUpdateDomain_KeepsIdentityAndChildren(t *testing.T) {
	f := newFixture(t)
	dID, cID, _ := seed(t, f.svc)
	ctx := context.Background()

	updated, err := f.svc.UpdateDomain(ctx, dID, domain.DomainInput{Name: "Mathematics"})
	require.NoError(t, err)
	assert.Equal(t, dID, updated.ID)
	assert.Equal(t, "Mathematics", updated.Name)
	require.Len(t, updated.Categories, 1)
	assert.Equal(t, cID, updated.Categories[0].ID)

	got, err := f.svc.GetDomain(ctx, dID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestUpdateQuestion_ReplacesTextAndOptions(t *testing.T) {
	f := newFixture(t)
	dID, cID, qID := seed(t, f.svc)

	updated, err := f.svc.UpdateQuestion(context.Background(), dID, cID, qID, domain.QuestionInput{
		Text: "3+3?",
		Options: []domain.Option{
			{ID: 42, Text: "5"},
			{ID: 42, Text: "6", IsCorrect: true},
			{Text: "7"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, qID, updated.ID)
	assert.Equal(t, "3+3?", updated.Text)
	assert.Equal(t, []domain.Option{
		{ID: 1, Text: "5"},
		{ID: 2, Text: "6", IsCorrect: true},
		{ID: 3, Text: "7"},
	}, updated.Options)
}

func TestUpdateQuestion_OmittedFieldsAreCleared(t *testing.T) {
	f := newFixture(t)
	dID, cID, qID := seed(t, f.svc)

	updated, err := f.svc.UpdateQuestion(context.Background(), dID, cID, qID, domain.QuestionInput{})
	require.NoError(t, err)
	assert.Equal(t, "", updated.Text)
	assert.NotNil(t, updated.Options)
	assert.Empty(t, updated.Options)
}

func TestDeleteDomain_CascadesAndLeavesNoTrace(t *testing.T) {
	f := newFixture(t)
	dID, cID, qID := seed(t, f.svc)
	ctx := context.Background()
	other, err := f.svc.CreateDomain(ctx, domain.DomainInput{Name: "History"})
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteDomain(ctx, dID))

	domains, err := f.svc.ListDomains(ctx)
	require.NoError(t, err)
	require.Len(t, domains, 1)
	assert.Equal(t, other.ID, domains[0].ID)

	raw, err := os.ReadFile(f.path)
	require.NoError(t, err)
	for _, id := range []string{dID.String(), cID.String(), qID.String()} {
		assert.NotContains(t, string(raw), id)
	}

	err = f.svc.DeleteDomain(ctx, dID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteCategory_CascadesQuestions(t *testing.T) {
	f := newFixture(t)
	dID, cID, _ := seed(t, f.svc)
	ctx := context.Background()

	require.NoError(t, f.svc.DeleteCategory(ctx, dID, cID))

	d, err := f.svc.GetDomain(ctx, dID)
	require.NoError(t, err)
	assert.Empty(t, d.Categories)

	err = f.svc.DeleteCategory(ctx, dID, cID)
	assert.EqualError(t, err, "Category not found")
}

func TestDeleteQuestion_RemovesOnlyThatQuestion(t *testing.T) {
	f := newFixture(t)
	dID, cID, qID := seed(t, f.svc)
	ctx := context.Background()
	keep, err := f.svc.CreateQuestion(ctx, dID, cID, domain.QuestionInput{Text: "keep"})
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteQuestion(ctx, dID, cID, qID))

	d, err := f.svc.GetDomain(ctx, dID)
	require.NoError(t, err)
	require.Len(t, d.Categories[0].Questions, 1)
	assert.Equal(t, keep.ID, d.Categories[0].Questions[0].ID)
}

func TestCreate_IDsUniqueWithinSameMillisecond(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	seen := map[domain.DomainID]bool{}
	for i := 0; i < 25; i++ {
		d, err := f.svc.CreateDomain(ctx, domain.DomainInput{Name: "d" + strconv.Itoa(i)})
		require.NoError(t, err)
		require.False(t, seen[d.ID], "duplicate id %d", d.ID)
		seen[d.ID] = true
	}
}

func TestCreate_IDsStayAboveExistingDocumentIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"domains":[{"id":9999999999999,"name":"Future","categories":[]}]}`), 0o644))
	clock := func() time.Time { return time.UnixMilli(1700000000000) }
	svc := catalog.New(store.NewTreeFileStore(path), ids.NewMonotonicWithClock(clock), nil)

	d, err := svc.CreateDomain(context.Background(), domain.DomainInput{Name: "Now"})
	require.NoError(t, err)
	assert.Greater(t, int64(d.ID), int64(9999999999999))
}

func TestEvents_PublishedAfterEachMutation(t *testing.T) {
	f := newFixture(t)
	dID, cID, qID := seed(t, f.svc)
	ctx := context.Background()

	_, err := f.svc.UpdateQuestion(ctx, dID, cID, qID, domain.QuestionInput{Text: "q"})
	require.NoError(t, err)
	require.NoError(t, f.svc.DeleteDomain(ctx, dID))
	_ = f.svc.DeleteDomain(ctx, dID) // not found: no event

	assert.Equal(t, []domain.EventType{
		domain.DomainCreated,
		domain.CategoryCreated,
		domain.QuestionCreated,
		domain.QuestionUpdated,
		domain.DomainDeleted,
	}, f.events.types())

	created := f.events.events[2]
	assert.Equal(t, dID, created.DomainID)
	assert.Equal(t, cID, created.CategoryID)
	assert.Equal(t, qID, created.QuestionID)
	var q domain.Question
	require.NoError(t, json.Unmarshal(created.Resource, &q))
	assert.Equal(t, "2+2?", q.Text)
	assert.Empty(t, f.events.events[4].Resource)
}

// brokenStore loads fine but can never persist.
type brokenStore struct{ doc domain.Document }

func (b *brokenStore) Load(context.Context) (domain.Document, error) { return b.doc.Clone(), nil }

func (b *brokenStore) Save(context.Context, domain.Document) error { return domain.ErrPersistence }

func (b *brokenStore) Update(ctx context.Context, fn func(*domain.Document) error) error {
	doc := b.doc.Clone()
	if err := fn(&doc); err != nil {
		return err
	}
	return b.Save(ctx, doc)
}

func TestPersistenceFailure_MutationNotApplied(t *testing.T) {
	bs := &brokenStore{doc: domain.Document{Domains: []domain.Domain{{ID: 1, Name: "Math", Categories: []domain.Category{}}}}}
	rec := &recorder{}
	svc := catalog.New(bs, ids.NewMonotonic(), rec)
	ctx := context.Background()

	_, err := svc.CreateDomain(ctx, domain.DomainInput{Name: "History"})
	assert.ErrorIs(t, err, domain.ErrPersistence)
	_, err = svc.UpdateDomain(ctx, 1, domain.DomainInput{Name: "Maths"})
	assert.ErrorIs(t, err, domain.ErrPersistence)

	domains, err := svc.ListDomains(ctx)
	require.NoError(t, err)
	require.Len(t, domains, 1)
	assert.Equal(t, "Math", domains[0].Name)
	assert.Empty(t, rec.types())
}
