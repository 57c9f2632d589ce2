package main

import (
	"log"
	"net/http"

	"paygate-be/internal/config"
	"paygate-be/internal/db"
	"paygate-be/internal/logger"
	"paygate-be/internal/middleware"
	"paygate-be/internal/payment"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	var repo payment.Repository
	if cfg.DBHost != "" {
		database := db.InitDB(cfg)
		defer database.Close()
		repo = payment.NewRepository(database)
	}

	var transport http.RoundTripper
	if cfg.UseMockGateway {
		transport = payment.NewMockTransport()
	}
	gateway := payment.NewPaystackGateway(cfg.PaystackBaseURL, cfg.PaystackSecretKey, transport)

	svc := payment.NewService(gateway, repo)
	handler := payment.NewHandler(svc)

	srv := setupServer(handler)

	log.Printf("payment API listening on :%s", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, srv))
}

func setupServer(handler *payment.Handler) http.Handler {
	mux := handler.Routes()

	var srv http.Handler = mux
	srv = middleware.RateLimitMiddleware(srv)
	srv = logger.LoggingMiddleware(srv)
	srv = logger.RequestIDMiddleware(srv)
	srv = middleware.RecoverMiddleware(srv)
	return srv
}
