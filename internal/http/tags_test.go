package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllTags(t *testing.T) {
	t.Run("returns empty list when no words exist", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t)
		defer cleanup()

		w := doJSON(router, "GET", "/api/tags", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var tags []string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tags))
		assert.Empty(t, tags)
	})

	t.Run("deduplicates tags across words", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t)
		defer cleanup()

		createWord(t, router, map[string]any{"word": "Ubiquitous", "definition": "Everywhere.", "tags": []string{"tech", "language"}})
		createWord(t, router, map[string]any{"word": "Eloquent", "definition": "Fluent.", "tags": []string{"language", "communication"}})

		w := doJSON(router, "GET", "/api/tags", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var tags []string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tags))
		assert.ElementsMatch(t, []string{"tech", "language", "communication"}, tags)
	})

	t.Run("seeded database yields the full sample tag set", func(t *testing.T) {
		router, db, cleanup := setupTestRouter(t)
		defer cleanup()

		require.NoError(t, db.SeedSampleWords())

		w := doJSON(router, "GET", "/api/tags", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var tags []string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tags))
		assert.ElementsMatch(t,
			[]string{"language", "philosophy", "communication", "tech", "life", "computer science", "business"},
			tags)
	})
}
