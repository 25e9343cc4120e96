// Package config holds the claimer's command line and environment settings.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/goodnatureofminers/unlockclaimer/internal/claim/fee"
	"github.com/goodnatureofminers/unlockclaimer/internal/claim/model"
	"github.com/goodnatureofminers/unlockclaimer/internal/claim/scheduler"
	"github.com/goodnatureofminers/unlockclaimer/internal/claim/submission"
	"github.com/goodnatureofminers/unlockclaimer/internal/claim/txfactory"
	"github.com/goodnatureofminers/unlockclaimer/pkg/batcher"
)

// MaxEarlyOffset is the furthest ahead of the unlock instant a submission may leave.
const MaxEarlyOffset = 10 * time.Second

// Config is populated from flags and CLAIMER_* environment variables.
type Config struct {
	HorizonURLs       []string `long:"horizon-url" env:"CLAIMER_HORIZON_URL" env-delim:"," description:"Horizon endpoint; the first one is read from, all are submitted to" required:"true"`
	NetworkPassphrase string   `long:"network-passphrase" env:"CLAIMER_NETWORK_PASSPHRASE" description:"network passphrase transactions are signed for" required:"true"`
	Network           string   `long:"network" env:"CLAIMER_NETWORK" description:"network label for metrics and audit records" default:"testnet"`
	ClaimantSecret    string   `long:"claimant-secret" env:"CLAIMER_CLAIMANT_SECRET" description:"secret seed of the claimant account" required:"true"`
	SponsorSecret     string   `long:"sponsor-secret" env:"CLAIMER_SPONSOR_SECRET" description:"secret seed of the fee paying account, defaults to the claimant"`
	Destination       string   `long:"destination" env:"CLAIMER_DESTINATION" description:"account receiving claimed funds, defaults to the claimant"`

	FeeFloor            int64   `long:"fee-floor" env:"CLAIMER_FEE_FLOOR" description:"minimum per-operation bid in stroops" default:"100000"`
	FeeCeiling          int64   `long:"fee-ceiling" env:"CLAIMER_FEE_CEILING" description:"maximum per-operation bid in stroops" default:"500000"`
	FeeMultiplier       float64 `long:"fee-multiplier" env:"CLAIMER_FEE_MULTIPLIER" description:"multiplier applied to the observed percentile" default:"10"`
	FeePercentile       int     `long:"fee-percentile" env:"CLAIMER_FEE_PERCENTILE" description:"fee statistics percentile to bid from" default:"99"`
	FeeGranularity      int64   `long:"fee-granularity" env:"CLAIMER_FEE_GRANULARITY" description:"bids are rounded up to this step" default:"100"`
	FeeEscalationFactor float64 `long:"fee-escalation-factor" env:"CLAIMER_FEE_ESCALATION_FACTOR" description:"bid growth after a fee rejection" default:"1.5"`

	MaxSubmissionAttempts int           `long:"max-submission-attempts" env:"CLAIMER_MAX_SUBMISSION_ATTEMPTS" description:"submission rounds per candidate" default:"5"`
	EarlySubmitOffset     time.Duration `long:"early-submit-offset" env:"CLAIMER_EARLY_SUBMIT_OFFSET" description:"how long before the unlock instant to submit" default:"1s"`
	GracePeriod           time.Duration `long:"grace-period" env:"CLAIMER_GRACE_PERIOD" description:"validity window after the unlock instant" default:"60s"`
	PollInterval          time.Duration `long:"poll-interval" env:"CLAIMER_POLL_INTERVAL" description:"wait between watcher polls when nothing is due" default:"5s"`
	RecheckInterval       time.Duration `long:"recheck-interval" env:"CLAIMER_RECHECK_INTERVAL" description:"longest single sleep while waiting for a trigger" default:"1s"`
	Lookahead             time.Duration `long:"lookahead" env:"CLAIMER_LOOKAHEAD" description:"how far ahead resources are considered due" default:"60s"`
	FloodCopyCount        int           `long:"flood-copy-count" env:"CLAIMER_FLOOD_COPY_COUNT" description:"copies sent per submission round" default:"3"`
	FloodSpacing          time.Duration `long:"flood-spacing" env:"CLAIMER_FLOOD_SPACING" description:"delay between flood copies" default:"200ms"`
	SubmitTimeout         time.Duration `long:"submit-timeout" env:"CLAIMER_SUBMIT_TIMEOUT" description:"timeout of one submit call" default:"10s"`
	RetryDelay            time.Duration `long:"retry-delay" env:"CLAIMER_RETRY_DELAY" description:"pause between submission rounds" default:"250ms"`
	LedgerHistory         int           `long:"ledger-history" env:"CLAIMER_LEDGER_HISTORY" description:"ledger closes kept for interval estimation" default:"10"`
	RequestsPerSecond     int           `long:"requests-per-second" env:"CLAIMER_REQUESTS_PER_SECOND" description:"Horizon read requests per second per endpoint, 0 disables pacing" default:"20"`

	ClickhouseDSN      string        `long:"clickhouse-dsn" env:"CLAIMER_CLICKHOUSE_DSN" description:"ClickHouse DSN for the audit trail, disabled when empty"`
	AuditFlushSize     int           `long:"audit-flush-size" env:"CLAIMER_AUDIT_FLUSH_SIZE" description:"audit rows buffered before a flush" default:"500"`
	AuditFlushInterval time.Duration `long:"audit-flush-interval" env:"CLAIMER_AUDIT_FLUSH_INTERVAL" description:"longest delay before buffered audit rows are flushed" default:"2s"`
	AuditFlushRate     int           `long:"audit-flushes-per-second" env:"CLAIMER_AUDIT_FLUSHES_PER_SECOND" description:"upper bound on audit flushes per second" default:"5"`
	JournalSize        int           `long:"journal-size" env:"CLAIMER_JOURNAL_SIZE" description:"outcomes kept in memory for the status API" default:"1000"`

	MetricsAddr    string `long:"metrics-addr" env:"CLAIMER_METRICS_ADDR" description:"address for Prometheus metrics" default:":9100"`
	StatusGRPCAddr string `long:"status-grpc-addr" env:"CLAIMER_STATUS_GRPC_ADDR" description:"gRPC health listener" default:":9090"`
	StatusHTTPAddr string `long:"status-http-addr" env:"CLAIMER_STATUS_HTTP_ADDR" description:"REST status listener" default:":8080"`
	LogJSON        bool   `long:"log-json" env:"CLAIMER_LOG_JSON" description:"emit production JSON logs"`
}

// Parse fills a Config from args and the environment. A help request is returned as
// a *flags.Error with type flags.ErrHelp.
func Parse(args []string) (Config, error) {
	var cfg Config
	if _, err := flags.ParseArgs(&cfg, args); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Validate reports every inconsistent setting at once.
func (c Config) Validate() error {
	var errs []error
	if len(c.HorizonURLs) == 0 {
		errs = append(errs, errors.New("at least one horizon url is required"))
	}
	if err := c.Fee().Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.MaxSubmissionAttempts < 1 {
		errs = append(errs, errors.New("max submission attempts must be at least 1"))
	}
	if c.EarlySubmitOffset < 0 || c.EarlySubmitOffset > MaxEarlyOffset {
		errs = append(errs, fmt.Errorf("early submit offset %s outside [0, %s]", c.EarlySubmitOffset, MaxEarlyOffset))
	}
	if c.GracePeriod <= 0 {
		errs = append(errs, errors.New("grace period must be positive"))
	}
	if c.FloodCopyCount < 1 {
		errs = append(errs, errors.New("flood copy count must be at least 1"))
	}
	if c.FloodSpacing < 0 || c.RetryDelay < 0 {
		errs = append(errs, errors.New("flood spacing and retry delay must not be negative"))
	}
	if c.SubmitTimeout <= 0 || c.PollInterval <= 0 || c.RecheckInterval <= 0 {
		errs = append(errs, errors.New("submit timeout, poll interval and recheck interval must be positive"))
	}
	if c.Lookahead < c.EarlySubmitOffset {
		errs = append(errs, errors.New("lookahead must cover the early submit offset"))
	}
	if c.LedgerHistory < 2 {
		errs = append(errs, errors.New("ledger history must keep at least 2 closes"))
	}
	if c.JournalSize < 1 {
		errs = append(errs, errors.New("journal size must be at least 1"))
	}
	return errors.Join(errs...)
}

// Fee returns the fee estimator settings.
func (c Config) Fee() fee.Config {
	return fee.Config{
		Floor:            c.FeeFloor,
		Ceiling:          c.FeeCeiling,
		Multiplier:       c.FeeMultiplier,
		Percentile:       c.FeePercentile,
		Granularity:      c.FeeGranularity,
		EscalationFactor: c.FeeEscalationFactor,
	}
}

// Factory returns the transaction factory settings.
func (c Config) Factory() txfactory.Config {
	return txfactory.Config{EarlyOffset: c.EarlySubmitOffset, GracePeriod: c.GracePeriod}
}

// Submission returns the submission engine settings.
func (c Config) Submission() submission.Config {
	return submission.Config{
		Network:       model.Network(c.Network),
		MaxAttempts:   c.MaxSubmissionAttempts,
		FloodCopies:   c.FloodCopyCount,
		FloodSpacing:  c.FloodSpacing,
		SubmitTimeout: c.SubmitTimeout,
		RetryDelay:    c.RetryDelay,
	}
}

// Scheduler returns the scheduler settings for claimant.
func (c Config) Scheduler(claimant string) scheduler.Config {
	return scheduler.Config{
		Network:         model.Network(c.Network),
		Claimant:        claimant,
		EarlyOffset:     c.EarlySubmitOffset,
		GracePeriod:     c.GracePeriod,
		Lookahead:       c.Lookahead,
		RecheckInterval: c.RecheckInterval,
		IdleInterval:    c.PollInterval,
		LedgerHistory:   c.LedgerHistory,
	}
}

// Batcher returns the audit batcher settings.
func (c Config) Batcher() batcher.Config {
	return batcher.Config{
		FlushSize:        c.AuditFlushSize,
		FlushInterval:    c.AuditFlushInterval,
		FlushesPerSecond: c.AuditFlushRate,
	}
}
