package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stellar/go-stellar-sdk/clients/horizonclient"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/goodnatureofminers/unlockclaimer/internal/claim/audit"
	"github.com/goodnatureofminers/unlockclaimer/internal/claim/fee"
	"github.com/goodnatureofminers/unlockclaimer/internal/claim/ledgerclock"
	"github.com/goodnatureofminers/unlockclaimer/internal/claim/model"
	"github.com/goodnatureofminers/unlockclaimer/internal/claim/repository/clickhouse"
	"github.com/goodnatureofminers/unlockclaimer/internal/claim/scheduler"
	"github.com/goodnatureofminers/unlockclaimer/internal/claim/stellar"
	"github.com/goodnatureofminers/unlockclaimer/internal/claim/submission"
	"github.com/goodnatureofminers/unlockclaimer/internal/claim/txfactory"
	"github.com/goodnatureofminers/unlockclaimer/internal/claim/watcher"
	"github.com/goodnatureofminers/unlockclaimer/internal/clock"
	"github.com/goodnatureofminers/unlockclaimer/internal/config"
	"github.com/goodnatureofminers/unlockclaimer/internal/metrics"
	"github.com/goodnatureofminers/unlockclaimer/internal/transport"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Parse(os.Args)
	if err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		_, _ = fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.LogJSON)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("claimer failed", zap.Error(err))
	}
}

func newLogger(json bool) (*zap.Logger, error) {
	if json {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	network := model.Network(cfg.Network)
	logger = logger.With(zap.String("network", cfg.Network))

	claimant, err := stellar.ParseIdentity(cfg.ClaimantSecret)
	if err != nil {
		return fmt.Errorf("claimant identity: %w", err)
	}
	var sponsor model.Identity
	if cfg.SponsorSecret != "" {
		id, err := stellar.ParseIdentity(cfg.SponsorSecret)
		if err != nil {
			return fmt.Errorf("sponsor identity: %w", err)
		}
		sponsor = id
	}

	codec, err := stellar.NewCodec(cfg.NetworkPassphrase)
	if err != nil {
		return err
	}
	factory, err := txfactory.New(codec, claimant, sponsor, cfg.Destination, cfg.Factory())
	if err != nil {
		return fmt.Errorf("init transaction factory: %w", err)
	}
	estimator, err := fee.NewEstimator(cfg.Fee())
	if err != nil {
		return fmt.Errorf("init fee estimator: %w", err)
	}

	clients := make([]stellar.HorizonClient, 0, len(cfg.HorizonURLs))
	submitters := make([]submission.Submitter, 0, len(cfg.HorizonURLs))
	for _, url := range cfg.HorizonURLs {
		client := stellar.NewObservedClient(
			&horizonclient.Client{HorizonURL: url, HTTP: &http.Client{Timeout: cfg.SubmitTimeout}},
			metrics.NewHorizonClient(network, url),
			cfg.RequestsPerSecond,
		)
		clients = append(clients, client)
		submitters = append(submitters, stellar.NewWriter(client, url))
	}
	reader := stellar.NewReader(clients[0], logger)

	wallClock := clock.Real{}
	journal := audit.NewJournal(cfg.JournalSize)
	var (
		attemptRecorder submission.Recorder
		outcomeRecorder scheduler.Recorder = journal
	)
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init audit repository: %w", err)
		}
		defer func() {
			if err := repo.Close(); err != nil {
				logger.Warn("failed to close audit repository", zap.Error(err))
			}
		}()
		sink := audit.NewSink(repo, cfg.Batcher(), logger)
		sink.Start(ctx)
		defer sink.Stop()
		attemptRecorder = sink
		outcomeRecorder = audit.Tee{journal, sink}
	}

	balances, err := watcher.New(reader, metrics.NewWatcher(network), wallClock, claimant.Address(), logger)
	if err != nil {
		return fmt.Errorf("init watcher: %w", err)
	}
	engine, err := submission.NewEngine(
		submitters,
		reader,
		estimator,
		factory,
		attemptRecorder,
		metrics.NewSubmissionEngine(network),
		wallClock,
		cfg.Submission(),
		logger,
	)
	if err != nil {
		return fmt.Errorf("init submission engine: %w", err)
	}
	sched, err := scheduler.New(scheduler.Dependencies{
		Watcher:     balances,
		Ledger:      reader,
		LedgerClock: ledgerclock.New(cfg.LedgerHistory, wallClock.Now),
		Fees:        estimator,
		Factory:     factory,
		Engine:      engine,
		Recorder:    outcomeRecorder,
		Metrics:     metrics.NewScheduler(network),
		Clock:       wallClock,
	}, cfg.Scheduler(claimant.Address()), logger)
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}

	status, err := transport.NewServer(journal, transport.ServerConfig{
		GRPCAddr: cfg.StatusGRPCAddr,
		HTTPAddr: cfg.StatusHTTPAddr,
	}, logger)
	if err != nil {
		return fmt.Errorf("init status server: %w", err)
	}

	logger.Info("starting claimer",
		zap.String("claimant", claimant.Address()),
		zap.String("fee_payer", factory.FeePayer()),
		zap.Strings("endpoints", cfg.HorizonURLs),
		zap.Bool("audit", cfg.ClickhouseDSN != ""),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return status.Run(gctx)
	})
	g.Go(func() error {
		return serveMetrics(gctx, cfg.MetricsAddr, logger)
	})
	g.Go(func() error {
		status.SetServing(true)
		defer status.SetServing(false)
		return sched.Run(gctx)
	})
	return g.Wait()
}

func serveMetrics(ctx context.Context, addr string, logger *zap.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("shutting down the metrics server")
		if err := s.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()

	logger.Info("starting metrics server", zap.String("addr", addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
