package commands

import (
	"fmt"
	"strconv"
	"strings"

	"quizadmin/internal/domain"
)

func parseID(kind, s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s id %q", kind, s)
	}
	return id, nil
}

func parseDomainID(s string) (domain.DomainID, error) {
	id, err := parseID("domain", s)
	return domain.DomainID(id), err
}

func parseCategoryID(s string) (domain.CategoryID, error) {
	id, err := parseID("category", s)
	return domain.CategoryID(id), err
}

func parseQuestionID(s string) (domain.QuestionID, error) {
	id, err := parseID("question", s)
	return domain.QuestionID(id), err
}

// parseOptions turns "text" and "*text" arguments into options; the star
// marks a correct answer.
func parseOptions(args []string) []domain.Option {
	opts := make([]domain.Option, 0, len(args))
	for _, a := range args {
		text, correct := strings.CutPrefix(a, "*")
		opts = append(opts, domain.Option{Text: text, IsCorrect: correct})
	}
	return opts
}
