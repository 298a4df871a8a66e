package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/learnvocab/internal/entities"
)

func TestWordFormValidate(t *testing.T) {
	t.Run("valid form", func(t *testing.T) {
		form := WordForm{
			Word:        "Ephemeral",
			Definition:  "Lasting for a very short time.",
			Tags:        []string{"language"},
			DateLearned: "2023-06-15",
		}

		word, ve := form.Validate()
		require.Nil(t, ve)
		assert.Equal(t, "Ephemeral", word.Word)
		assert.Equal(t, "Lasting for a very short time.", word.Definition)
		assert.Nil(t, word.Example)
		assert.Equal(t, entities.StringList{"language"}, word.Tags)
		assert.Equal(t, "2023-06-15", word.DateLearned.String())
	})

	t.Run("missing word and definition report both fields", func(t *testing.T) {
		_, ve := WordForm{}.Validate()
		require.NotNil(t, ve)
		assert.Contains(t, ve.Fields, "word")
		assert.Contains(t, ve.Fields, "definition")
	})

	t.Run("tags default to empty list", func(t *testing.T) {
		word, ve := WordForm{Word: "Test", Definition: "A test"}.Validate()
		require.Nil(t, ve)
		require.NotNil(t, word.Tags)
		assert.Empty(t, word.Tags)
	})

	t.Run("dateLearned defaults to today", func(t *testing.T) {
		word, ve := WordForm{Word: "Test", Definition: "A test"}.Validate()
		require.Nil(t, ve)
		assert.Equal(t, entities.Today().String(), word.DateLearned.String())
	})

	t.Run("invalid date is a field error", func(t *testing.T) {
		_, ve := WordForm{Word: "Test", Definition: "A test", DateLearned: "June 15th"}.Validate()
		require.NotNil(t, ve)
		assert.Contains(t, ve.Fields, "dateLearned")
	})

	t.Run("duplicate tags are kept as given", func(t *testing.T) {
		word, ve := WordForm{Word: "Test", Definition: "A test", Tags: []string{"x", "x"}}.Validate()
		require.Nil(t, ve)
		assert.Equal(t, entities.StringList{"x", "x"}, word.Tags)
	})
}

func TestWordPatchValidate(t *testing.T) {
	strptr := func(s string) *string { return &s }

	t.Run("only supplied fields appear in the update set", func(t *testing.T) {
		updates, ve := WordPatch{Definition: strptr("X")}.Validate()
		require.Nil(t, ve)
		assert.Equal(t, map[string]any{"definition": "X"}, updates)
	})

	t.Run("empty patch yields empty update set", func(t *testing.T) {
		updates, ve := WordPatch{}.Validate()
		require.Nil(t, ve)
		assert.Empty(t, updates)
	})

	t.Run("present empty word is rejected", func(t *testing.T) {
		_, ve := WordPatch{Word: strptr("")}.Validate()
		require.NotNil(t, ve)
		assert.Contains(t, ve.Fields, "word")
	})

	t.Run("example can be cleared with an empty string", func(t *testing.T) {
		updates, ve := WordPatch{Example: strptr("")}.Validate()
		require.Nil(t, ve)
		assert.Equal(t, "", updates["example"])
	})

	t.Run("tags replace wholesale", func(t *testing.T) {
		tags := []string{"tech"}
		updates, ve := WordPatch{Tags: &tags}.Validate()
		require.Nil(t, ve)
		assert.Equal(t, entities.StringList{"tech"}, updates["tags"])
	})

	t.Run("invalid date is a field error", func(t *testing.T) {
		_, ve := WordPatch{DateLearned: strptr("not-a-date")}.Validate()
		require.NotNil(t, ve)
		assert.Contains(t, ve.Fields, "dateLearned")
	})

	t.Run("valid date is normalized", func(t *testing.T) {
		updates, ve := WordPatch{DateLearned: strptr("2024-01-02")}.Validate()
		require.Nil(t, ve)
		date, ok := updates["date_learned"].(entities.Date)
		require.True(t, ok)
		assert.Equal(t, "2024-01-02", date.String())
	})
}

func TestUserFormValidate(t *testing.T) {
	t.Run("valid form", func(t *testing.T) {
		user, ve := UserForm{Username: "alice", Password: "hunter2"}.Validate()
		require.Nil(t, ve)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "hunter2", user.Password)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, ve := UserForm{}.Validate()
		require.NotNil(t, ve)
		assert.Contains(t, ve.Fields, "username")
		assert.Contains(t, ve.Fields, "password")
	})
}

func TestValidationErrorMessage(t *testing.T) {
	_, ve := WordForm{}.Validate()
	require.NotNil(t, ve)
	assert.Contains(t, ve.Error(), "word")
	assert.Contains(t, ve.Error(), "definition")
}
