package types

import "strconv"

// DomainID identifies a domain; unique across the whole document.
type DomainID int64

// String returns the decimal form of the identifier.
func (id DomainID) String() string { return strconv.FormatInt(int64(id), 10) }

// CategoryID identifies a category within its domain.
type CategoryID int64

// String returns the decimal form of the identifier.
func (id CategoryID) String() string { return strconv.FormatInt(int64(id), 10) }

// QuestionID identifies a question within its category.
type QuestionID int64

// String returns the decimal form of the identifier.
func (id QuestionID) String() string { return strconv.FormatInt(int64(id), 10) }

// OptionID identifies an option within its question.
type OptionID int64

// Document is the persisted root: the ordered list of domains.
type Document struct {
	Domains []Domain `json:"domains" yaml:"domains"`
}

// Domain is a top-level grouping of assessment content.
type Domain struct {
	ID         DomainID   `json:"id" yaml:"id"`
	Name       string     `json:"name" yaml:"name"`
	Categories []Category `json:"categories" yaml:"categories"`
}

// Category groups questions inside a domain.
type Category struct {
	ID        CategoryID `json:"id" yaml:"id"`
	Name      string     `json:"name" yaml:"name"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Question is a single multiple-choice item.
type Question struct {
	ID      QuestionID `json:"id" yaml:"id"`
	Text    string     `json:"text" yaml:"text"`
	Options []Option   `json:"options" yaml:"options"`
}

// Option is one selectable answer of a question.
type Option struct {
	ID        OptionID `json:"id" yaml:"id"`
	Text      string   `json:"text" yaml:"text"`
	IsCorrect bool     `json:"isCorrect" yaml:"isCorrect"`
}

// DomainInput carries the mutable fields of a domain.
type DomainInput struct {
	Name string `json:"name"`
}

// CategoryInput carries the mutable fields of a category.
type CategoryInput struct {
	Name string `json:"name"`
}

// QuestionInput carries the mutable fields of a question. Options replace the
// previous list wholesale.
type QuestionInput struct {
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

// QuestionMatch is a question together with the path that leads to it.
type QuestionMatch struct {
	DomainID     DomainID   `json:"domainId"`
	DomainName   string     `json:"domainName"`
	CategoryID   CategoryID `json:"categoryId"`
	CategoryName string     `json:"categoryName"`
	Question     Question   `json:"question"`
}
