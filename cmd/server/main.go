package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"delivery-analytics-service/internal/adapters/cache"
	"delivery-analytics-service/internal/adapters/repositories"
	"delivery-analytics-service/internal/api"
	"delivery-analytics-service/internal/lookup"
	"delivery-analytics-service/internal/platform/db"
	"delivery-analytics-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	port := getEnv("PORT", "8080")

	database, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	repo := repositories.NewPostgresDeliveryRepository(database)
	mads := repositories.NewPostgresMadStore(database)
	depots, carriers := loadLookupTables()

	// The result cache is optional: without Redis every analysis request
	// recomputes from the database.
	var resultCache ports.ResultCache
	if addr := strings.TrimSpace(os.Getenv("REDIS_ADDR")); addr != "" {
		ttl, err := time.ParseDuration(getEnv("CACHE_TTL", "5m"))
		if err != nil {
			log.Fatalf("invalid CACHE_TTL: %v", err)
		}
		client := redis.NewClient(&redis.Options{Addr: addr})
		resultCache = cache.NewRedisResultCache(client, ttl)
		log.Printf("Result cache enabled addr=%s ttl=%s", addr, ttl)
	} else {
		log.Println("REDIS_ADDR not set (running without result cache)")
	}

	router := api.NewRouter(repo, mads, resultCache, depots, carriers)

	// Timeouts are tuned for cold-cache analysis runs over large record sets.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Lookup tables are configuration, not computation: they come from JSON rule
// files when provided and stay empty otherwise, letting the fallback rules
// in the tables themselves take over.
func loadLookupTables() (*lookup.DepotTable, *lookup.CarrierTable) {
	var depotRules []lookup.PrefixRule
	if path := os.Getenv("DEPOT_RULES_PATH"); path != "" {
		rules, err := lookup.LoadDepotRules(path)
		if err != nil {
			log.Fatal(err)
		}
		depotRules = rules
	}

	var carrierRules []lookup.CarrierRule
	if path := os.Getenv("CARRIER_RULES_PATH"); path != "" {
		rules, err := lookup.LoadCarrierRules(path)
		if err != nil {
			log.Fatal(err)
		}
		carrierRules = rules
	}

	depots := lookup.NewDepotTable(depotRules)
	carriers := lookup.NewCarrierTable(carrierRules, getEnv("DEFAULT_CARRIER", "Internal"))
	return depots, carriers
}
