package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/learnvocab/internal/database"
)

// RouterConfig carries the dependencies for NewRouter, so the router
// can be assembled with fakes in tests.
type RouterConfig struct {
	Database  *database.Database
	WordStore WordStore
	Version   string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database, cfg.Version)
	wordsController := NewWordsController(cfg.WordStore)
	tagsController := NewTagsController(cfg.WordStore)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Words API endpoints
	router.GET("/api/words", wordsController.ListWords)
	router.GET("/api/words/:id", wordsController.GetWord)
	router.POST("/api/words", wordsController.CreateWord)
	router.PUT("/api/words/:id", wordsController.UpdateWord)
	router.DELETE("/api/words/:id", wordsController.DeleteWord)

	// Derived tag listing
	router.GET("/api/tags", tagsController.GetAllTags)

	return router
}
