package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizadmin/internal/client"
	"quizadmin/internal/domain"
	"quizadmin/internal/ids"
	"quizadmin/internal/server"
	"quizadmin/internal/services/catalog"
	"quizadmin/internal/store"
)

type apiEnv struct {
	srv *httptest.Server
	hub *server.Hub
	api *client.HTTP
}

func newAPI(t *testing.T) *apiEnv {
	t.Helper()
	hub := server.NewHub(nil)
	svc := catalog.New(store.NewTreeFileStore(filepath.Join(t.TempDir(), "db.json")), ids.NewMonotonic(), hub)
	srv := httptest.NewServer(server.New(svc, hub, nil))
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})
	return &apiEnv{srv: srv, hub: hub, api: client.NewHTTP(srv.URL+"/api/", srv.Client())}
}

func TestHTTP_RoundTripsEveryOperation(t *testing.T) {
	api := newAPI(t).api
	ctx := context.Background()

	d, err := api.CreateDomain(ctx, domain.DomainInput{Name: "Math"})
	require.NoError(t, err)
	c, err := api.CreateCategory(ctx, d.ID, domain.CategoryInput{Name: "Algebra"})
	require.NoError(t, err)
	q, err := api.CreateQuestion(ctx, d.ID, c.ID, domain.QuestionInput{
		Text:    "2+2?",
		Options: []domain.Option{{Text: "4", IsCorrect: true}, {Text: "5"}},
	})
	require.NoError(t, err)
	assert.Len(t, q.Options, 2)

	d, err = api.UpdateDomain(ctx, d.ID, domain.DomainInput{Name: "Mathematics"})
	require.NoError(t, err)
	assert.Len(t, d.Categories, 1)
	c, err = api.UpdateCategory(ctx, d.ID, c.ID, domain.CategoryInput{Name: "Arithmetic"})
	require.NoError(t, err)
	assert.Len(t, c.Questions, 1)
	q, err = api.UpdateQuestion(ctx, d.ID, c.ID, q.ID, domain.QuestionInput{Text: "3+3?"})
	require.NoError(t, err)
	assert.Equal(t, "3+3?", q.Text)

	got, err := api.GetDomain(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mathematics", got.Name)
	assert.Equal(t, "Arithmetic", got.Categories[0].Name)
	assert.Equal(t, "3+3?", got.Categories[0].Questions[0].Text)

	found, err := api.Search(ctx, "arith")
	require.NoError(t, err)
	assert.Len(t, found, 1)
	matches, err := api.FilterQuestions(ctx, `text == "3+3?"`)
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	require.NoError(t, api.DeleteQuestion(ctx, d.ID, c.ID, q.ID))
	require.NoError(t, api.DeleteCategory(ctx, d.ID, c.ID))
	require.NoError(t, api.DeleteDomain(ctx, d.ID))

	domains, err := api.ListDomains(ctx)
	require.NoError(t, err)
	assert.Empty(t, domains)
}

func TestHTTP_ErrorsCarryStatusAndMessage(t *testing.T) {
	api := newAPI(t).api
	ctx := context.Background()

	_, err := api.CreateCategory(ctx, 999999, domain.CategoryInput{Name: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Domain not found", apiErr.Message)
	assert.Equal(t, http.MethodPost, apiErr.Method)
	assert.Equal(t, "/domains/999999/categories", apiErr.Path)

	_, err = api.FilterQuestions(ctx, "text ==")
	assert.ErrorIs(t, err, domain.ErrBadRequest)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestHTTP_CancelledContext(t *testing.T) {
	api := newAPI(t).api
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := api.ListDomains(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
