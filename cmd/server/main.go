package main

import (
	"database/sql"
	"distance-matrix-service/internal/adapters/distance"
	"distance-matrix-service/internal/adapters/repositories"
	"distance-matrix-service/internal/api"
	"distance-matrix-service/internal/config"
	"distance-matrix-service/internal/domain"
	"distance-matrix-service/internal/platform/db"
	"distance-matrix-service/internal/ports"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQLite or Postgres, Google Maps) behind ports
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")

	apiKey := os.Getenv("GOOGLE_MAPS_API_KEY")
	if strings.TrimSpace(apiKey) == "" {
		log.Fatal("GOOGLE_MAPS_API_KEY is required")
	}

	units, err := domain.ParseUnits(config.Get("UNITS", string(domain.UnitsImperial)))
	if err != nil {
		log.Fatal(err)
	}

	repo, closeDB, err := openLookupRepository()
	if err != nil {
		log.Fatal(err)
	}
	defer closeDB()

	provider, err := distance.NewGoogleDistanceProvider(apiKey, units)
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(repo, provider)

	// The write timeout covers one blocking upstream call per request.
	log.Printf("Server listening addr=:%s units=%s", port, units)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openLookupRepository selects the history store: Postgres when DATABASE_URL
// is set, a local SQLite file otherwise.
func openLookupRepository() (ports.LookupRepository, func(), error) {
	if databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL")); databaseURL != "" {
		pg, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, err
		}

		if err := repositories.InitSQLSchema(pg); err != nil {
			pg.Close()
			return nil, nil, err
		}

		return repositories.NewSQLLookupRepository(pg), func() { pg.Close() }, nil
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	sq, err := openSqlite(dbPath)
	if err != nil {
		return nil, nil, err
	}

	if err := repositories.InitSqliteSchema(sq); err != nil {
		sq.Close()
		return nil, nil, err
	}

	return repositories.NewSqliteLookupRepository(sq), func() { sq.Close() }, nil
}

func openSqlite(dbPath string) (*sql.DB, error) {
	sq, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openSqlite: open sqlite database %q: %w", dbPath, err)
	}

	if err := sq.Ping(); err != nil {
		return nil, fmt.Errorf("openSqlite: verify sqlite connection to %q: %w", dbPath, err)
	}

	return sq, nil
}
