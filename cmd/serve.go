package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"auditor/internal/analyzer"
	"auditor/internal/api"
	"auditor/internal/api/handler/v1handler"
	"auditor/internal/billing"
	"auditor/internal/config"
	"auditor/internal/contracts"
	"auditor/internal/intent"
	"auditor/internal/simulator"
	"auditor/internal/worker"
	"auditor/pkg/aiprovider"
	"auditor/pkg/aiprovider/anthropic"
	"auditor/pkg/aiprovider/grok"
	"auditor/pkg/aiprovider/openai"
	"auditor/pkg/logger"
	"auditor/pkg/x402"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// setupAIManager builds the provider fallback chain from the configured API
// keys, in the fixed openai, claude, grok priority order.
func setupAIManager(ctx context.Context, cfg *config.Config) *aiprovider.Manager {
	httpClient := &http.Client{Timeout: cfg.AI.RequestTimeout}

	var clients []aiprovider.Client
	if cfg.AI.OpenAIKey != "" {
		clients = append(clients, openai.New(httpClient, cfg.AI.OpenAIKey))
	}
	if cfg.AI.AnthropicKey != "" {
		clients = append(clients, anthropic.New(httpClient, cfg.AI.AnthropicKey))
	}
	if cfg.AI.XAIKey != "" {
		clients = append(clients, grok.New(httpClient, cfg.AI.XAIKey))
	}

	manager, err := aiprovider.NewManager(clients...)
	if err != nil {
		logger.Fatal(ctx, "could not create AI provider manager", zap.Error(err))
	}

	return manager
}

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			aiManager := setupAIManager(ctx, cfg)
			facilitator := x402.New(&http.Client{Timeout: cfg.X402.RequestTimeout}, cfg.X402.BaseURL)

			contractsService := contracts.New(strg)
			billingService := billing.New(strg, facilitator, billing.Options{
				ReceiverAddress: cfg.X402.ReceiverAddress,
			})

			riverClient, err := worker.Start(ctx, strg.Pool, cfg, billingService, contractsService)
			if err != nil {
				logger.Fatal(ctx, "could not start background workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{Deps: v1handler.Deps{
				Contracts: contractsService,
				Analyzer:  analyzer.New(strg, aiManager),
				Simulator: simulator.New(strg, aiManager),
				Intent:    intent.New(strg, aiManager),
				Billing:   billingService,
			}})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(ctx, "stopping background workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop background workers", zap.Error(err))
			}
		},
	}

	return cmd
}
