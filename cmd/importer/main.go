package main

import (
	"cargo-coverage-service/internal/adapters/csvimport"
	"cargo-coverage-service/internal/adapters/repositories"
	"cargo-coverage-service/internal/config"
	"cargo-coverage-service/internal/domain"
	"cargo-coverage-service/internal/platform/db"
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

type shipmentWriter interface {
	BulkCreate(ctx context.Context, shipments []*domain.Shipment) error
}

const shipmentsFile = "logistics_shipment.csv"

// One-shot shipment import. Reads the fixed-schema CSV export and bulk
// inserts every row in a single transaction: a malformed row anywhere
// fails the run before any write.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	conn, usePG, err := open()
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	// The two engines differ in DDL and placeholder dialect, so each
	// gets its own schema init and shipment writer.
	var store shipmentWriter
	if usePG {
		if err := repositories.InitSchemaPG(conn); err != nil {
			log.Fatalf("schema initialization failed: %v", err)
		}
		store = repositories.NewPGShipmentStore(conn)
	} else {
		if err := repositories.InitSchema(conn); err != nil {
			log.Fatalf("schema initialization failed: %v", err)
		}
		store = repositories.NewSQLShipmentStore(conn)
	}

	path := filepath.Join(config.Get("DATA_PATH", "data"), shipmentsFile)
	shipments, err := csvimport.ReadShipments(path)
	if err != nil {
		log.Fatal(err)
	}

	if err := store.BulkCreate(context.Background(), shipments); err != nil {
		log.Fatalf("import failed: %v", err)
	}

	log.Printf("Imported shipments file=%s rows=%d", path, len(shipments))
}

// open prefers a postgres DATABASE_URL and falls back to the local
// sqlite file the server uses. The second return reports which engine
// was picked.
func open() (*sql.DB, bool, error) {
	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		conn, err := db.Open(databaseURL)
		return conn, true, err
	}

	dbPath := config.Get("DB_PATH", "data/coverage.db")
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, false, fmt.Errorf("open sqlite database %q: %w", dbPath, err)
	}

	if err := conn.Ping(); err != nil {
		return nil, false, fmt.Errorf("verify sqlite connection to %q: %w", dbPath, err)
	}

	return conn, false, nil
}
