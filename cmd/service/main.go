package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/livestream-service/internal/client/account"
	"github.com/s21platform/livestream-service/internal/client/invoice"
	"github.com/s21platform/livestream-service/internal/config"
	api "github.com/s21platform/livestream-service/internal/generated"
	"github.com/s21platform/livestream-service/internal/infra"
	"github.com/s21platform/livestream-service/internal/pkg/tx"
	"github.com/s21platform/livestream-service/internal/pkg/validator"
	db "github.com/s21platform/livestream-service/internal/repository/postgres"
	"github.com/s21platform/livestream-service/internal/rest"
)

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	invoiceClient := invoice.New(cfg)
	defer invoiceClient.Close()

	accountClient := account.New(cfg)
	defer accountClient.Close()

	vldtr := validator.New()

	handler := rest.New(dbRepo, invoiceClient, accountClient, vldtr, cfg.Service.PublicURL)
	router := chi.NewRouter()

	router.Use(func(next http.Handler) http.Handler {
		return infra.AuthInterceptorHTTP(next, accountClient)
	})
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})
	router.Use(func(next http.Handler) http.Handler {
		return tx.TxMiddlewareHTTP(dbRepo)(next)
	})

	api.HandlerFromMux(handler, router)
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Service.Port),
		Handler: router,
	}

	g, _ := errgroup.WithContext(context.Background())

	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
