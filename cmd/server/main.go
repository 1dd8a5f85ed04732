/*
main.go - Application entry point

PURPOSE:
  Starts the occupancy analytics server. Handles configuration, the one-time
  record load, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load .env (if present) and parse command-line flags
  2. Open the SQLite record store
  3. Load room-type configuration
  4. Load all stay records ONCE into the in-memory engine
  5. Start the HTTP server with graceful shutdown

COMMAND-LINE FLAGS (env vars override defaults):
  -port       HTTP server port (default: 8080, env PORT)
  -db         SQLite database path (default: stays.db, env DB_PATH)
              Use ":memory:" for an in-memory database
  -roomtypes  Room type config JSON (default: config/roomtypes.json,
              env ROOMTYPES_PATH)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close the database connection

SEE ALSO:
  - api/server.go: Router configuration
  - store/sqlite/sqlite.go: Record store
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/spark/occupancy-engine/api"
	"github.com/spark/occupancy-engine/factory"
	"github.com/spark/occupancy-engine/occupancy"
	"github.com/spark/occupancy-engine/store/sqlite"
)

func main() {
	// .env is optional; flags fall back to env vars, env vars to defaults
	_ = godotenv.Load()

	port := flag.Int("port", envInt("PORT", 8080), "HTTP server port")
	dbPath := flag.String("db", envStr("DB_PATH", "stays.db"), "SQLite database path")
	roomTypesPath := flag.String("roomtypes", envStr("ROOMTYPES_PATH", "config/roomtypes.json"), "Room type config JSON")
	flag.Parse()

	// Record store
	recordStore, err := sqlite.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer recordStore.Close()

	// Room type configuration; an absent file means every type falls back to
	// zero supply and area, which the engine handles
	config, err := factory.LoadRoomTypes(*roomTypesPath)
	if err != nil {
		log.Printf("Warning: no room type config (%v); using zero-supply defaults", err)
		config = occupancy.RoomTypeConfigMap{}
	}

	// One-time record load; queries after this point do no I/O
	handler := api.NewHandler(recordStore, config)
	if err := handler.LoadRecords(context.Background()); err != nil {
		log.Fatalf("Failed to load stay records: %v", err)
	}

	router := api.NewRouter(handler)
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on http://localhost:%d", *port)
		log.Printf("API available at http://localhost:%d/api", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
