package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"quizadmin/internal/domain"
)

// HTTP is a JSON client for the catalog API rooted at Base, e.g.
// http://localhost:3001/api.
type HTTP struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for base. A nil httpClient means http.DefaultClient.
func NewHTTP(base string, httpClient *http.Client) *HTTP {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: httpClient}
}

func domainPath(id domain.DomainID) string { return "/domains/" + id.String() }

func categoryPath(domainID domain.DomainID, id domain.CategoryID) string {
	return domainPath(domainID) + "/categories/" + id.String()
}

func questionPath(domainID domain.DomainID, categoryID domain.CategoryID, id domain.QuestionID) string {
	return categoryPath(domainID, categoryID) + "/questions/" + id.String()
}

func (c *HTTP) ListDomains(ctx context.Context) ([]domain.Domain, error) {
	var out []domain.Domain
	return out, c.do(ctx, http.MethodGet, "/domains", nil, &out)
}

func (c *HTTP) GetDomain(ctx context.Context, id domain.DomainID) (domain.Domain, error) {
	var out domain.Domain
	return out, c.do(ctx, http.MethodGet, domainPath(id), nil, &out)
}

func (c *HTTP) CreateDomain(ctx context.Context, in domain.DomainInput) (domain.Domain, error) {
	var out domain.Domain
	return out, c.do(ctx, http.MethodPost, "/domains", in, &out)
}

func (c *HTTP) UpdateDomain(ctx context.Context, id domain.DomainID, in domain.DomainInput) (domain.Domain, error) {
	var out domain.Domain
	return out, c.do(ctx, http.MethodPut, domainPath(id), in, &out)
}

func (c *HTTP) DeleteDomain(ctx context.Context, id domain.DomainID) error {
	return c.do(ctx, http.MethodDelete, domainPath(id), nil, nil)
}

func (c *HTTP) CreateCategory(ctx context.Context, domainID domain.DomainID, in domain.CategoryInput) (domain.Category, error) {
	var out domain.Category
	return out, c.do(ctx, http.MethodPost, domainPath(domainID)+"/categories", in, &out)
}

func (c *HTTP) UpdateCategory(
	ctx context.Context,
	domainID domain.DomainID,
	id domain.CategoryID,
	in domain.CategoryInput,
) (domain.Category, error) {
	var out domain.Category
	return out, c.do(ctx, http.MethodPut, categoryPath(domainID, id), in, &out)
}

func (c *HTTP) DeleteCategory(ctx context.Context, domainID domain.DomainID, id domain.CategoryID) error {
	return c.do(ctx, http.MethodDelete, categoryPath(domainID, id), nil, nil)
}

func (c *HTTP) CreateQuestion(
	ctx context.Context,
	domainID domain.DomainID,
	categoryID domain.CategoryID,
	in domain.QuestionInput,
) (domain.Question, error) {
	var out domain.Question
	return out, c.do(ctx, http.MethodPost, categoryPath(domainID, categoryID)+"/questions", in, &out)
}

func (c *HTTP) UpdateQuestion(
	ctx context.Context,
	domainID domain.DomainID,
	categoryID domain.CategoryID,
	id domain.QuestionID,
	in domain.QuestionInput,
) (domain.Question, error) {
	var out domain.Question
	return out, c.do(ctx, http.MethodPut, questionPath(domainID, categoryID, id), in, &out)
}

func (c *HTTP) DeleteQuestion(
	ctx context.Context,
	domainID domain.DomainID,
	categoryID domain.CategoryID,
	id domain.QuestionID,
) error {
	return c.do(ctx, http.MethodDelete, questionPath(domainID, categoryID, id), nil, nil)
}

func (c *HTTP) Search(ctx context.Context, query string) ([]domain.Domain, error) {
	var out []domain.Domain
	return out, c.do(ctx, http.MethodGet, "/search?"+url.Values{"q": {query}}.Encode(), nil, &out)
}

func (c *HTTP) FilterQuestions(ctx context.Context, where string) ([]domain.QuestionMatch, error) {
	var out []domain.QuestionMatch
	return out, c.do(ctx, http.MethodGet, "/questions?"+url.Values{"where": {where}}.Encode(), nil, &out)
}

func (c *HTTP) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return err
		}
		body = buf
	}
	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		apiErr := &APIError{Method: method, Path: path, Status: resp.StatusCode}
		var e struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&e) == nil {
			apiErr.Message = e.Error
		}
		return apiErr
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

var _ domain.Catalog = (*HTTP)(nil)
