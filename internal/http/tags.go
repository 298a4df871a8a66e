package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/learnvocab/internal/entities"
)

// WordReader provides read access to words for derived endpoints.
type WordReader interface {
	GetAllWords() ([]entities.Word, error)
}

type TagsController struct {
	store WordReader
}

func NewTagsController(store WordReader) *TagsController {
	return &TagsController{store: store}
}

// GetAllTags returns the distinct tag values across all words, in
// first-seen order.
// GET /api/tags
func (tc *TagsController) GetAllTags(c *gin.Context) {
	words, err := tc.store.GetAllWords()
	if err != nil {
		respondInternalError(c, err, "get all tags")
		return
	}

	seen := make(map[string]struct{})
	tags := []string{}
	for _, word := range words {
		for _, tag := range word.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}

	c.JSON(http.StatusOK, tags)
}
