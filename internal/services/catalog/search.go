package catalog

import (
	"context"
	"fmt"
	"strings"

	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"

	"quizadmin/internal/domain"
)

// Search returns the domains matching query. A domain matches when its name,
// one of its category names or one of its question texts contains query,
// ignoring case. A blank query matches every domain.
func (s *Service) Search(ctx context.Context, query string) ([]domain.Domain, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(query) == "" {
		return doc.Domains, nil
	}
	q := strings.ToLower(query)

	out := make([]domain.Domain, 0, len(doc.Domains))
	for _, d := range doc.Domains {
		if domainMatches(d, q) {
			out = append(out, d)
		}
	}
	return out, nil
}

func domainMatches(d domain.Domain, q string) bool {
	if strings.Contains(strings.ToLower(d.Name), q) {
		return true
	}
	for _, c := range d.Categories {
		if strings.Contains(strings.ToLower(c.Name), q) {
			return true
		}
	}
	for _, c := range d.Categories {
		for _, question := range c.Questions {
			if strings.Contains(strings.ToLower(question.Text), q) {
				return true
			}
		}
	}
	return false
}

// FilterQuestions evaluates where against every question and returns the
// ones for which it is true, in document order. The expression sees:
//
//	domain    name of the owning domain
//	category  name of the owning category
//	text      question text
//	options   list of {text, isCorrect}
//	correct   number of options marked correct
//
// An empty expression selects every question.
func (s *Service) FilterQuestions(ctx context.Context, where string) ([]domain.QuestionMatch, error) {
	var program *exprvm.Program
	if strings.TrimSpace(where) != "" {
		p, err := compileFilter(where)
		if err != nil {
			return nil, err
		}
		program = p
	}

	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	out := []domain.QuestionMatch{}
	for _, d := range doc.Domains {
		for _, c := range d.Categories {
			for _, q := range c.Questions {
				if program != nil {
					ok, err := runFilter(program, where, filterEnv(d, c, q))
					if err != nil {
						return nil, err
					}
					if !ok {
						continue
					}
				}
				out = append(out, domain.QuestionMatch{
					DomainID:     d.ID,
					DomainName:   d.Name,
					CategoryID:   c.ID,
					CategoryName: c.Name,
					Question:     q,
				})
			}
		}
	}
	return out, nil
}

func compileFilter(where string) (*exprvm.Program, error) {
	program, err := exprlang.Compile(where,
		exprlang.Env(filterEnv(domain.Domain{}, domain.Category{}, domain.Question{})),
		exprlang.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", domain.ErrInvalidQuery, where, err)
	}
	return program, nil
}

func runFilter(program *exprvm.Program, where string, env map[string]any) (bool, error) {
	result, err := exprlang.Run(program, env)
	if err != nil {
		return false, fmt.Errorf("%w: %q: %v", domain.ErrInvalidQuery, where, err)
	}
	ok, _ := result.(bool)
	return ok, nil
}

func filterEnv(d domain.Domain, c domain.Category, q domain.Question) map[string]any {
	options := make([]map[string]any, len(q.Options))
	correct := 0
	for i, o := range q.Options {
		options[i] = map[string]any{"text": o.Text, "isCorrect": o.IsCorrect}
		if o.IsCorrect {
			correct++
		}
	}
	return map[string]any{
		"domain":   d.Name,
		"category": c.Name,
		"text":     q.Text,
		"options":  options,
		"correct":  correct,
	}
}
