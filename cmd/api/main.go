package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/homebill/internal/budget"
	budgetStore "github.com/MrJamesThe3rd/homebill/internal/budget/store"
	"github.com/MrJamesThe3rd/homebill/internal/card"
	cardStore "github.com/MrJamesThe3rd/homebill/internal/card/store"
	"github.com/MrJamesThe3rd/homebill/internal/config"
	"github.com/MrJamesThe3rd/homebill/internal/database"
	homebillHttp "github.com/MrJamesThe3rd/homebill/internal/http"
	budgetHandler "github.com/MrJamesThe3rd/homebill/internal/http/budget"
	cardHandler "github.com/MrJamesThe3rd/homebill/internal/http/card"
	importHandler "github.com/MrJamesThe3rd/homebill/internal/http/importcsv"
	installmentHandler "github.com/MrJamesThe3rd/homebill/internal/http/installment"
	reconcileHandler "github.com/MrJamesThe3rd/homebill/internal/http/reconcile"
	txHandler "github.com/MrJamesThe3rd/homebill/internal/http/transaction"
	"github.com/MrJamesThe3rd/homebill/internal/importer"
	"github.com/MrJamesThe3rd/homebill/internal/reconcile"
	"github.com/MrJamesThe3rd/homebill/internal/syncer"
	"github.com/MrJamesThe3rd/homebill/internal/transaction"
	txStore "github.com/MrJamesThe3rd/homebill/internal/transaction/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), cfg.Server.Timeout)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		transactionService = transaction.NewService(txStore.New(db))
		cardService        = card.NewService(cardStore.New(db))
		reconcileService   = reconcile.NewService(transactionService, cardService)
		budgetService      = budget.NewService(budgetStore.New(db), reconcileService)
		importService      = importer.NewService()
	)

	// The database is the local source of truth; the snapshot file is only
	// written, never applied at startup. Loading without applying would arm
	// echo suppression and swallow the first real edit's save.
	sync := syncer.New(
		syncer.NewFileRemote(cfg.Sync.SnapshotPath),
		snapshotter(transactionService, cardService, budgetService),
		cfg.Sync.Debounce,
	)

	var (
		transactionH = txHandler.NewHandler(transactionService)
		cardH        = cardHandler.NewHandler(cardService)
		reconcileH   = reconcileHandler.NewHandler(reconcileService)
		budgetH      = budgetHandler.NewHandler(budgetService)
		installmentH = installmentHandler.NewHandler(transactionService)
		importH      = importHandler.NewHandler(importService, transactionService)
	)

	router := homebillHttp.New(transactionH, cardH, reconcileH, budgetH, installmentH, importH, sync.Status, sync.Changed)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{
		Addr:         port,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	go func() {
		slog.Info("starting server", "name", cfg.App.Name, "port", port)

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	slog.Info("shutting down")

	// Push any debounced edits out before the process goes away.
	sync.Flush()

	if err := server.Shutdown(context.Background()); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
}

// snapshotter assembles the full document the sync layer persists. Categories
// and card banks are derived from the data itself rather than stored.
func snapshotter(txs *transaction.Service, cards *card.Service, budgets *budget.Service) syncer.SnapshotFunc {
	return func(ctx context.Context) (*syncer.Snapshot, error) {
		transactions, err := txs.List(ctx, transaction.ListFilter{})
		if err != nil {
			return nil, fmt.Errorf("snapshot transactions: %w", err)
		}

		settings, err := cards.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("snapshot card settings: %w", err)
		}

		budgetList, err := budgets.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("snapshot budgets: %w", err)
		}

		sources, err := budgets.IncomeSources(ctx)
		if err != nil {
			return nil, fmt.Errorf("snapshot income sources: %w", err)
		}

		return &syncer.Snapshot{
			Transactions:  transactions,
			CardSettings:  settings,
			Budgets:       budgetList,
			IncomeSources: sources,
			Categories:    distinctCategories(transactions),
			CardBanks:     distinctBanks(settings),
		}, nil
	}
}

func distinctCategories(txs []*transaction.Transaction) []string {
	seen := make(map[string]bool)

	var out []string

	for _, tx := range txs {
		if tx.Category == "" || seen[tx.Category] {
			continue
		}

		seen[tx.Category] = true
		out = append(out, tx.Category)
	}

	sort.Strings(out)

	return out
}

func distinctBanks(settings []*card.Setting) []string {
	out := make([]string, 0, len(settings))
	for _, s := range settings {
		out = append(out, s.Bank)
	}

	sort.Strings(out)

	return out
}
