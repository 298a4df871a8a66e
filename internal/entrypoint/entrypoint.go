package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/learnvocab/internal/config"
	"github.com/mrlokans/learnvocab/internal/database"
	http_controllers "github.com/mrlokans/learnvocab/internal/http"
)

// Serve runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully within the configured timeout.
func Serve(router *gin.Engine, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting LearnVocab v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	// Seeding is best-effort: a failure here must never prevent the
	// HTTP layer from starting.
	if cfg.Seed.Enabled {
		if err := db.SeedSampleWords(); err != nil {
			log.Printf("WARNING: Failed to seed sample words: %v", err)
		}
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Database:  db,
		WordStore: db,
		Version:   version,
	})

	Serve(router, cfg)
}
