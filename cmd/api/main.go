package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/ncjobshub/ncjobshub/internal/config"
	"github.com/ncjobshub/ncjobshub/internal/handlers"
	"github.com/ncjobshub/ncjobshub/internal/services"
	"github.com/ncjobshub/ncjobshub/internal/store"
)

func main() {
	// 1. Environment: .env is optional, env vars win either way.
	if err := godotenv.Load(); err == nil {
		log.Println("[api] .env loaded")
	}
	cfg := config.Load()

	// 2. Canonical state, seeded with the fixture dataset.
	st := store.NewSeeded()
	log.Printf("[api] store seeded with %d jobs", len(st.ListJobs()))

	// 3. Core services.
	llm := services.NewLLMService(cfg.GeminiAPIKey, cfg.GeminiModel)
	scorer := services.NewRelevanceService(llm)
	emailer := services.NewEmailService(llm)
	jobService := services.NewJobService(st, scorer)

	// 4. Digest emitter for the bot feed.
	digest := services.NewDigestService(st, cfg.DigestIntervalHrs)
	if err := digest.Start(); err != nil {
		log.Printf("[api] digest scheduler failed to start: %v", err)
	}
	defer digest.Stop()

	// 5. Handlers and router.
	jobHandler := handlers.NewJobHandler(jobService, emailer, st)
	identityHandler := handlers.NewIdentityHandler(st, jobService)
	logHandler := handlers.NewLogHandler(st)
	openclawHandler := handlers.NewOpenClawHandler(st, cfg.DashboardDeepLink)

	r := handlers.NewRouter(jobHandler, identityHandler, logHandler, openclawHandler)

	log.Printf("[api] NC Jobs Hub API running at http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
