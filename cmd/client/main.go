package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gayya20/taskmanager-client/internal/client/api"
	"github.com/gayya20/taskmanager-client/internal/client/cli"
	"github.com/gayya20/taskmanager-client/internal/client/config"
	"github.com/gayya20/taskmanager-client/internal/client/session"
	"github.com/gayya20/taskmanager-client/internal/logging"

	_ "modernc.org/sqlite"
)

func main() {
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := session.InitDatabase(ctx, cfg.StoreDSN)
	if err != nil {
		log.Fatalf("error initializing session store: %v", err)
	}
	defer db.Close()

	store := session.NewStore(session.NewSQLiteRepository(db))

	// the session manager owns the session; the API client reads the
	// credential through it on every request
	var manager *session.Manager
	client := api.NewHTTPClient(cfg.ServerBaseURL, func() string { return manager.Token() }, logger)
	manager = session.NewManager(store, client, logger)

	app := cli.NewApp(cfg, manager, client, nil, logger)
	app.Run(ctx)
}
