package handler

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/plinden/chronos-api-go/pkg/auth"
	"github.com/plinden/chronos-api-go/pkg/database"
	"github.com/plinden/chronos-api-go/pkg/handlers"
	"github.com/plinden/chronos-api-go/pkg/store"
)

var r *gin.Engine

func init() {
	// Load .env if it exists (for local testing with vercel dev)
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	db := database.InitDB()
	_ = auth.EnsureAdminExists(db)

	session, err := handlers.NewSession(store.NewFileStore(os.Getenv("DATA_PATH")))
	if err != nil {
		log.Fatalf("could not restore roster data: %v", err)
	}

	h := &handlers.Handler{DB: db, Session: session}

	gin.SetMode(gin.ReleaseMode)
	r = gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	h.RegisterRoutes(r)
}

// Handler is the entry point for the serverless Go runtime
func Handler(w http.ResponseWriter, req *http.Request) {
	r.ServeHTTP(w, req)
}
