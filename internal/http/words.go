package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/learnvocab/internal/entities"
	"github.com/mrlokans/learnvocab/internal/schema"
)

// WordStore defines the gateway operations the words API depends on.
type WordStore interface {
	CreateWord(word *entities.Word) error
	GetAllWords() ([]entities.Word, error)
	GetWordByID(id uint) (*entities.Word, error)
	UpdateWord(id uint, updates map[string]any) (*entities.Word, error)
	DeleteWord(id uint) (bool, error)
	SearchWords(term string) ([]entities.Word, error)
	FilterWordsByTag(tag string) ([]entities.Word, error)
}

type WordsController struct {
	store WordStore
}

func NewWordsController(store WordStore) *WordsController {
	return &WordsController{store: store}
}

// ListWords returns all words, optionally narrowed by a free-text
// search or an exact tag filter. Search wins when both are present.
// GET /api/words?search=term&tag=label
func (wc *WordsController) ListWords(c *gin.Context) {
	var (
		words []entities.Word
		err   error
	)

	if search := c.Query("search"); search != "" {
		words, err = wc.store.SearchWords(search)
	} else if tag := c.Query("tag"); tag != "" {
		words, err = wc.store.FilterWordsByTag(tag)
	} else {
		words, err = wc.store.GetAllWords()
	}

	if err != nil {
		respondInternalError(c, err, "list words")
		return
	}

	if words == nil {
		words = []entities.Word{}
	}
	c.JSON(http.StatusOK, words)
}

// GetWord returns a single word by id.
// GET /api/words/:id
func (wc *WordsController) GetWord(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	word, err := wc.store.GetWordByID(id)
	if err != nil {
		respondInternalError(c, err, "get word")
		return
	}
	if word == nil {
		respondNotFound(c, "word")
		return
	}

	c.JSON(http.StatusOK, word)
}

// CreateWord validates the request body against the word form shape
// and inserts a new word.
// POST /api/words
func (wc *WordsController) CreateWord(c *gin.Context) {
	var form schema.WordForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondBadRequest(c, "invalid JSON body")
		return
	}

	word, ve := form.Validate()
	if ve != nil {
		respondValidationError(c, ve)
		return
	}

	if err := wc.store.CreateWord(word); err != nil {
		respondInternalError(c, err, "create word")
		return
	}

	c.JSON(http.StatusCreated, word)
}

// UpdateWord applies a partial update to an existing word. Fields
// absent from the payload keep their prior values.
// PUT /api/words/:id
func (wc *WordsController) UpdateWord(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	existing, err := wc.store.GetWordByID(id)
	if err != nil {
		respondInternalError(c, err, "update word")
		return
	}
	if existing == nil {
		respondNotFound(c, "word")
		return
	}

	var patch schema.WordPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBadRequest(c, "invalid JSON body")
		return
	}

	updates, ve := patch.Validate()
	if ve != nil {
		respondValidationError(c, ve)
		return
	}

	updated, err := wc.store.UpdateWord(id, updates)
	if err != nil {
		respondInternalError(c, err, "update word")
		return
	}
	if updated == nil {
		respondNotFound(c, "word")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteWord removes a word by id.
// DELETE /api/words/:id
func (wc *WordsController) DeleteWord(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	existing, err := wc.store.GetWordByID(id)
	if err != nil {
		respondInternalError(c, err, "delete word")
		return
	}
	if existing == nil {
		respondNotFound(c, "word")
		return
	}

	deleted, err := wc.store.DeleteWord(id)
	if err != nil {
		respondInternalError(c, err, "delete word")
		return
	}
	if !deleted {
		respondNotFound(c, "word")
		return
	}

	c.Status(http.StatusNoContent)
}
