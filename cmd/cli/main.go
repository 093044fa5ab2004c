package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/bookdesk/internal/buildinfo"
	"github.com/dmitrijs2005/bookdesk/internal/client/api"
	"github.com/dmitrijs2005/bookdesk/internal/client/cli"
	"github.com/dmitrijs2005/bookdesk/internal/client/config"
	"github.com/dmitrijs2005/bookdesk/internal/client/notify"
	"github.com/dmitrijs2005/bookdesk/internal/client/router"
	"github.com/dmitrijs2005/bookdesk/internal/client/services"
	"github.com/dmitrijs2005/bookdesk/internal/client/session"
	"github.com/dmitrijs2005/bookdesk/internal/client/storage"
	"github.com/dmitrijs2005/bookdesk/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, config.LoadConfig()); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}

	db, err := storage.Open(ctx, cfg.SessionDB)
	if err != nil {
		return err
	}
	defer db.Close()

	store := session.NewStore(db, logger)
	store.Load(ctx)

	notifier := notify.NewTerminal(os.Stdout, cfg.NoColor)

	table, err := router.NewTable(router.Routes())
	if err != nil {
		return err
	}
	nav := router.NewNavigator(table, store, notifier, logger)

	client := api.NewClient(cfg.BaseURL, cfg.RequestTimeout, store, notifier, nav, logger)

	app := cli.NewApp(cli.Deps{
		Session:      store,
		Navigator:    nav,
		Notifier:     notifier,
		Auth:         services.NewAuthService(client, store, notifier, logger),
		Books:        services.NewBookService(client, logger),
		Borrows:      services.NewBorrowService(client, logger),
		Categories:   services.NewCategoryService(client, logger),
		Reservations: services.NewReservationService(client, logger),
		Users:        services.NewUserService(client, logger),
		Log:          logger,
		In:           os.Stdin,
		Out:          os.Stdout,
	})

	logger.Debug(ctx, "client started", "base_url", cfg.BaseURL, "session_db", cfg.SessionDB)
	app.Run(ctx)
	return nil
}
