package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/cwehmeyer/belegwerk/internal/auth"
	"github.com/cwehmeyer/belegwerk/internal/config"
	"github.com/cwehmeyer/belegwerk/internal/customer"
	customerStore "github.com/cwehmeyer/belegwerk/internal/customer/store"
	"github.com/cwehmeyer/belegwerk/internal/database"
	"github.com/cwehmeyer/belegwerk/internal/extract"
	belegwerkHttp "github.com/cwehmeyer/belegwerk/internal/http"
	customerHandler "github.com/cwehmeyer/belegwerk/internal/http/customer"
	openItemHandler "github.com/cwehmeyer/belegwerk/internal/http/openitem"
	receiptHandler "github.com/cwehmeyer/belegwerk/internal/http/receipt"
	ustvaHandler "github.com/cwehmeyer/belegwerk/internal/http/ustva"
	"github.com/cwehmeyer/belegwerk/internal/ingest"
	"github.com/cwehmeyer/belegwerk/internal/mail"
	"github.com/cwehmeyer/belegwerk/internal/openitem"
	openItemStore "github.com/cwehmeyer/belegwerk/internal/openitem/store"
	"github.com/cwehmeyer/belegwerk/internal/receipt"
	receiptStore "github.com/cwehmeyer/belegwerk/internal/receipt/store"
	"github.com/cwehmeyer/belegwerk/internal/scheduler"
	"github.com/cwehmeyer/belegwerk/internal/ustva"
	ustvaStore "github.com/cwehmeyer/belegwerk/internal/ustva/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(context.Background(), cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	mailer := mail.NewMailer(mail.Config{
		APIKey:    cfg.Mailjet.APIKey,
		APISecret: cfg.Mailjet.APISecret,
		FromEmail: cfg.Mailjet.FromEmail,
		FromName:  cfg.Mailjet.FromName,
	})

	receiptService := receipt.NewService(
		receiptStore.New(db),
		ingest.NewService(),
		receipt.NewDiskStorage(cfg.Uploads.Dir),
		extract.SlogNotifier{},
	)

	var (
		customerService = customer.NewService(customerStore.New(db))
		ustvaService    = ustva.NewService(ustva.NewEngine(receiptService), ustvaStore.New(db))
		openItemService = openitem.NewService(openItemStore.New(db))
	)

	authn := auth.New(cfg.Auth.Secret, cfg.Auth.TokenTTL)

	var (
		customerH = customerHandler.NewHandler(customerService)
		receiptH  = receiptHandler.NewHandler(receiptService)
		ustvaH    = ustvaHandler.NewHandler(ustvaService)
		openItemH = openItemHandler.NewHandler(openItemService)
	)

	if cfg.Scheduler.Enabled {
		jobs := scheduler.New(customerService, ustvaService, receiptService, openItemService, mailer)
		if err := jobs.Start(); err != nil {
			slog.Error("failed to start scheduler", "error", err)
			os.Exit(1)
		}
		defer jobs.Stop()
	}

	router := belegwerkHttp.New(authn, customerH, receiptH, ustvaH, openItemH)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  2 * time.Minute,
	}

	slog.Info("starting server", "addr", addr)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
