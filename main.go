package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/hackforge/hackslot/allocator"
	"github.com/hackforge/hackslot/catalog"
	"github.com/hackforge/hackslot/cliparse"
	"github.com/hackforge/hackslot/db"
	"github.com/hackforge/hackslot/router"
	"github.com/hackforge/hackslot/status"
	"github.com/hackforge/hackslot/teamdir"
)

func main() {
	// Load .env if present; real env vars win
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database
	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	// Verify connection
	if err := conn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "backend", cfg.DatabaseType)

	// Validate the built-in catalog at startup
	cat := catalog.Default()
	slog.Info("Problem catalog loaded", "problems", cat.Len())

	// Shared components
	alloc := allocator.New(conn, cat, cfg.ClaimRetryLimit)
	reader := status.NewReader(conn, cat)
	broadcaster := status.NewBroadcaster()
	dir := teamdir.New(conn, cfg.JoinCodeSalt)

	// Capacity change feed
	feedCtx, stopFeed := context.WithCancel(context.Background())
	defer stopFeed()
	feed := status.NewFeed(reader, broadcaster, cfg.DatabaseType, cfg.DatabaseURL, cfg.FeedPollInterval)
	go feed.Run(feedCtx)

	// Create router
	mux := router.NewRouter(router.Deps{
		DB:          conn,
		Cfg:         cfg,
		Catalog:     cat,
		Allocator:   alloc,
		Reader:      reader,
		Broadcaster: broadcaster,
		Directory:   dir,
	})

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		stopFeed()
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
