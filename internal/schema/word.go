package schema

import (
	"github.com/mrlokans/learnvocab/internal/entities"
)

const (
	msgRequired    = "is required"
	msgInvalidDate = "must be a date in YYYY-MM-DD format"
)

// WordForm is the insertable shape for a word. System-generated fields
// (id, createdAt) are absent by construction.
type WordForm struct {
	Word        string   `json:"word"`
	Definition  string   `json:"definition"`
	Example     *string  `json:"example"`
	Tags        []string `json:"tags"`
	DateLearned string   `json:"dateLearned"`
}

// Validate checks the form and returns a normalized entity ready for
// insertion. Tags default to an empty list and dateLearned to the
// current date when omitted.
func (f WordForm) Validate() (*entities.Word, *ValidationError) {
	ve := newValidationError()

	if f.Word == "" {
		ve.add("word", msgRequired)
	}
	if f.Definition == "" {
		ve.add("definition", msgRequired)
	}

	dateLearned := entities.Today()
	if f.DateLearned != "" {
		parsed, err := entities.ParseDate(f.DateLearned)
		if err != nil {
			ve.add("dateLearned", msgInvalidDate)
		} else {
			dateLearned = parsed
		}
	}

	if ve.hasErrors() {
		return nil, ve
	}

	tags := entities.StringList{}
	if f.Tags != nil {
		tags = entities.StringList(f.Tags)
	}

	return &entities.Word{
		Word:        f.Word,
		Definition:  f.Definition,
		Example:     f.Example,
		Tags:        tags,
		DateLearned: dateLearned,
	}, nil
}

// WordPatch is the partial-update shape: every field is optional and
// only present fields are validated and applied.
//
// A field that is absent from the payload, or present as JSON null, is
// left unchanged (encoding/json cannot tell the two apart for pointer
// fields). Clearing example is done by sending an empty string.
type WordPatch struct {
	Word        *string   `json:"word"`
	Definition  *string   `json:"definition"`
	Example     *string   `json:"example"`
	Tags        *[]string `json:"tags"`
	DateLearned *string   `json:"dateLearned"`
}

// Validate checks the supplied fields and returns a column→value set
// for the persistence gateway.
func (p WordPatch) Validate() (map[string]any, *ValidationError) {
	ve := newValidationError()
	updates := make(map[string]any)

	if p.Word != nil {
		if *p.Word == "" {
			ve.add("word", msgRequired)
		} else {
			updates["word"] = *p.Word
		}
	}
	if p.Definition != nil {
		if *p.Definition == "" {
			ve.add("definition", msgRequired)
		} else {
			updates["definition"] = *p.Definition
		}
	}
	if p.Example != nil {
		updates["example"] = *p.Example
	}
	if p.Tags != nil {
		updates["tags"] = entities.StringList(*p.Tags)
	}
	if p.DateLearned != nil {
		parsed, err := entities.ParseDate(*p.DateLearned)
		if err != nil {
			ve.add("dateLearned", msgInvalidDate)
		} else {
			updates["date_learned"] = parsed
		}
	}

	if ve.hasErrors() {
		return nil, ve
	}
	return updates, nil
}
