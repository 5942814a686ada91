package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/danielhkuo/quickly-vote/auth"
	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/db"
	"github.com/danielhkuo/quickly-vote/events"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/router"
	"github.com/danielhkuo/quickly-vote/voting"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Helper mode: hand out a signature and exit
	if cfg.Sign != "" {
		fmt.Println(auth.SignIdentity(cfg.Sign, cfg.IdentitySalt))
		return
	}

	ctx := context.Background()

	// Connect to the journal database
	dbConn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn, cfg.DatabaseType); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(dbConn, cfg.DatabaseType),
	)

	// Notification bus and audit log
	bus := events.NewEventBus(reg, slog.Default())
	defer bus.Stop()
	auditLog := db.NewAuditLog(dbConn, slog.Default())
	auditLog.Subscribe(bus)

	// Restore the session from the journal; replay emits no notifications
	journal := db.NewJournal(dbConn)
	entries, err := journal.Load(ctx)
	if err != nil {
		slog.Error("journal load failed", "error", err)
		os.Exit(1)
	}
	session := voting.NewSession(voting.Identity(cfg.AdminIdentity),
		voting.WithGenesisProposal(cfg.GenesisProposal),
		voting.WithJournal(journal),
		voting.WithNotifier(bus),
		voting.WithLogger(slog.Default()),
	)
	if err := session.Replay(ctx, entries); err != nil {
		slog.Error("journal replay failed", "error", err)
		os.Exit(1)
	}

	// Create router
	mux := router.NewRouter(session, auditLog, cfg, reg)

	// Create server
	server := http.Server{
		Handler:           middleware.CORS(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	// Start server
	slog.Info("Listening",
		"port", cfg.Port,
		"status", session.WorkflowStatus().String(),
		"genesis_proposal", cfg.GenesisProposal,
	)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
