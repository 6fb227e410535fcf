package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nivethitha870/BANK/internal/api"
	"github.com/nivethitha870/BANK/internal/config"
	"github.com/nivethitha870/BANK/internal/logging"
	"github.com/nivethitha870/BANK/internal/repository"
	"github.com/nivethitha870/BANK/internal/service"
	"github.com/nivethitha870/BANK/internal/session"
	"github.com/nivethitha870/BANK/internal/storage"
	"github.com/nivethitha870/BANK/internal/utils"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "bank",
		Short:   "Banking demo backend over a JSON record store",
		Version: "1.0.0",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe()
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Initialize the store with sample data",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runSeed()
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Delete the store file",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runReset()
			},
		},
	)
	return root
}

func runServe() error {
	// 1. Load .env and config
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg := config.New()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()

	// 2. Open the store
	store, err := storage.Open(cfg.StorePath)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	logger.Info("store opened", zap.String("path", cfg.StorePath))

	// 3. Wire the layers
	accountRepo := repository.NewAccountRepository(store)
	transactionRepo := repository.NewTransactionRepository(store)
	cardRepo := repository.NewCardRepository(store)
	loanRepo := repository.NewLoanRepository(store)
	investmentRepo := repository.NewInvestmentRepository(store)

	sessions := session.NewManager(store)
	tokens := utils.NewTokenSource(cfg.JWTSecret, cfg.TokenTTL)

	authService := service.NewAuthService(accountRepo, sessions, tokens)
	accountService := service.NewAccountService(accountRepo)
	transactionService := service.NewTransactionService(store, accountRepo, transactionRepo, cfg.TransferLimit, cfg.ProcessingDelay)
	cardService := service.NewCardService(cardRepo, accountRepo)
	loanService := service.NewLoanService(loanRepo, accountRepo)
	investmentService := service.NewInvestmentService(store, investmentRepo, accountRepo)

	handler := api.SetupRoutes(api.Handlers{
		Auth:         api.NewAuthHandler(authService, accountService),
		Accounts:     api.NewAccountHandler(accountService, authService),
		Transactions: api.NewTransactionHandler(transactionService),
		Cards:        api.NewCardHandler(cardService),
		Loans:        api.NewLoanHandler(loanService),
		Investments:  api.NewInvestmentHandler(investmentService),
	}, tokens, logger)

	// 4. Seed on first run
	if err := repository.EnsureSeeded(store); err != nil {
		return fmt.Errorf("failed to seed store: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Watch for external writes to the store file
	if cfg.WatchStore {
		watcher, err := storage.NewWatcher(store, logger)
		if err != nil {
			return fmt.Errorf("failed to create store watcher: %w", err)
		}
		if err := watcher.Start(ctx); err != nil {
			return fmt.Errorf("failed to start store watcher: %w", err)
		}
		defer watcher.Stop()
	}

	// 6. Serve until interrupted
	server := api.NewHTTPServer(cfg, handler)
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("address", cfg.ServerAddress))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		return server.Shutdown(context.Background())
	}
	return nil
}

func runSeed() error {
	godotenv.Load()
	cfg := config.New()
	store, err := storage.Open(cfg.StorePath)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	if err := repository.EnsureSeeded(store); err != nil {
		return fmt.Errorf("failed to seed store: %w", err)
	}
	fmt.Printf("store seeded at %s\n", cfg.StorePath)
	return nil
}

func runReset() error {
	godotenv.Load()
	cfg := config.New()
	if err := os.Remove(cfg.StorePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove store: %w", err)
	}
	fmt.Printf("store reset at %s\n", cfg.StorePath)
	return nil
}
