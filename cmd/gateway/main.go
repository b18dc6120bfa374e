package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/prepdeck/prepdeck/internal/api/http"
	"github.com/prepdeck/prepdeck/internal/auth"
	"github.com/prepdeck/prepdeck/internal/bank"
	"github.com/prepdeck/prepdeck/internal/config"
	"github.com/prepdeck/prepdeck/internal/db"
	"github.com/prepdeck/prepdeck/internal/history"
	"github.com/prepdeck/prepdeck/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.FromEnv()

	// --- Question bank (explicit use-default policy, decided once here) ---
	qbank, err := bank.Load(cfg.BankPath)
	if err != nil {
		log.Printf("bank %s unusable (%v), using built-in bank", cfg.BankPath, err)
		qbank = bank.Default()
	}

	// --- History ---
	var store history.Store
	switch cfg.HistoryDriver {
	case "file":
		store = history.NewFileStore(cfg.HistoryPath)
	case "sqlite", "postgres":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		dbh, err := db.Open(ctx, db.Driver(cfg.HistoryDriver), cfg.DBDSN)
		if err != nil {
			log.Fatalf("db open failed: %v", err)
		}
		store = history.NewSQLStore(dbh)
	default:
		log.Fatalf("unsupported history driver: %s", cfg.HistoryDriver)
	}

	mgr := session.NewManager(qbank, store, time.Duration(cfg.ExamDurationSec)*time.Second)
	authSvc := auth.NewService(cfg.AuthHMACSecret)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/guest", auth.GuestHandler(authSvc))

	r.Group(func(pr chi.Router) {
		pr.Use(auth.Middleware(authSvc))

		pr.Get("/bank/sections", api.ListSectionsHandler(qbank))

		pr.Post("/attempt", api.StartAttemptHandler(mgr))
		pr.Get("/attempt", api.GetAttemptHandler(mgr))
		pr.Post("/attempt/answer", api.AnswerHandler(mgr))
		pr.Post("/attempt/navigate", api.NavigateHandler(mgr))
		pr.Post("/attempt/submit", api.SubmitAttemptHandler(mgr))

		pr.Get("/history", api.ListHistoryHandler(store))
		pr.Get("/history/latest", api.LatestResultHandler(store))
		pr.Get("/history/stats", api.HistoryStatsHandler(store))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (history=%s)", cfg.HTTPAddr, cfg.HistoryDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
