package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/ariapay/ariapay-core/pkg/gateway"
	"github.com/ariapay/ariapay-core/pkg/handlers/auth"
	"github.com/ariapay/ariapay-core/pkg/handlers/payments"
	"github.com/ariapay/ariapay-core/pkg/handlers/wallets"
	"github.com/ariapay/ariapay-core/pkg/ledger"
	ariamw "github.com/ariapay/ariapay-core/pkg/middleware"
	"github.com/ariapay/ariapay-core/pkg/quickpay"
	"github.com/ariapay/ariapay-core/pkg/repository"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Gateway configuration from the environment.
	cfg := gateway.Config{
		Delays: gateway.DefaultDelays(),
		Seed:   true,
	}
	if os.Getenv("FAST_MODE") == "true" {
		cfg.Delays = gateway.Delays{}
	}
	if rate := os.Getenv("SUCCESS_RATE"); rate != "" {
		parsed, err := strconv.ParseFloat(rate, 64)
		if err != nil || parsed < 0 || parsed > 1 {
			log.Fatalf("Invalid SUCCESS_RATE %q", rate)
		}
		cfg.Outcome = gateway.NewOutcome(parsed, nil)
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logger.Warn("JWT_SECRET not set, using development secret")
	} else {
		cfg.JWTSecret = []byte(secret)
	}

	// Compose the core: ledger -> gateway -> repository -> quick-pay.
	store := ledger.New()
	api := gateway.NewMock(store, cfg)
	repo := repository.New(api)
	quick := quickpay.New(repo)

	authHandler := auth.NewAuthHandler(repo)
	walletsHandler := wallets.NewWalletsHandler(repo, api)
	paymentsHandler := payments.NewPaymentsHandler(repo, quick, api)

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(ariamw.NewStructuredLogger(logger))
	router.Use(chimw.Recoverer)

	router.Route("/auth", func(r chi.Router) {
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
		r.Get("/session", authHandler.Session)
	})

	router.Route("/wallet", func(r chi.Router) {
		r.Get("/", walletsHandler.GetWallet)
		r.Get("/default-card", walletsHandler.GetDefaultCard)
		r.Post("/cards", walletsHandler.AddCard)
		r.Delete("/cards/{cardId}", func(w http.ResponseWriter, req *http.Request) {
			walletsHandler.RemoveCard(w, req, chi.URLParam(req, "cardId"))
		})
		r.Put("/cards/{cardId}/default", func(w http.ResponseWriter, req *http.Request) {
			walletsHandler.SetDefaultCard(w, req, chi.URLParam(req, "cardId"))
		})
	})

	router.Route("/transactions", func(r chi.Router) {
		r.Post("/", paymentsHandler.CreateTransaction)
		r.Get("/", paymentsHandler.TransactionHistory)
		r.Get("/stream", paymentsHandler.StreamTransactions)
	})

	router.Route("/payments", func(r chi.Router) {
		r.Post("/nfc", paymentsHandler.ProcessNfcPayment)
		r.Post("/quickpay", paymentsHandler.QuickPayTransaction)
	})

	router.Get("/nfc/tokens/{tokenId}", func(w http.ResponseWriter, req *http.Request) {
		paymentsHandler.ValidateNfcToken(w, req, chi.URLParam(req, "tokenId"))
	})

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	log.Printf("Starting server on port %s", port)

	err = http.ListenAndServe(":"+port, router)
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
