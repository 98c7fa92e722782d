package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/plinden/chronos-api-go/pkg/auth"
	"github.com/plinden/chronos-api-go/pkg/database"
	"github.com/plinden/chronos-api-go/pkg/handlers"
	"github.com/plinden/chronos-api-go/pkg/store"
)

func main() {
	// Load .env if it exists
	// Try root and parent directories for flexibility
	envPaths := []string{".env", "../.env", "../../.env"}
	for _, p := range envPaths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			break
		}
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	db := database.InitDB()
	_ = auth.EnsureAdminExists(db)

	session, err := handlers.NewSession(store.NewFileStore(os.Getenv("DATA_PATH")))
	if err != nil {
		log.Fatalf("could not restore roster data: %v", err)
	}

	h := &handlers.Handler{DB: db, Session: session}

	r := gin.Default()
	h.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		log.Printf("Server starting on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("could not run server: %v", err)
		}
	}()

	// Save the roster on the way out so nothing entered this session is lost
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	session.Lock()
	if err := session.Save(); err != nil {
		log.Printf("final save failed: %v", err)
	}
	session.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
