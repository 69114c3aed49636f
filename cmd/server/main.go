package main

import (
	"cargo-coverage-service/internal/adapters/repositories"
	"cargo-coverage-service/internal/api"
	"cargo-coverage-service/internal/config"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires the SQL stores behind their ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/coverage.db")
	port := config.Get("PORT", "8080")

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Schema is idempotent; creating it on startup keeps local runs
	// zero-setup.
	if err := repositories.InitSchema(db); err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(
		repositories.NewSQLCoverageStore(db),
		repositories.NewSQLPolicyStore(db),
		repositories.NewSQLVesselStore(db),
		repositories.NewSQLDocumentStore(db),
		repositories.NewSQLShipmentStore(db),
	)

	log.Printf("Server listening addr=:%s", port)
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

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}
