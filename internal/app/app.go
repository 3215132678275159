// Package app wires configuration, the integer kernel, and the CLI
// presentation into the mpcalc executable.
package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/agbru/mpint/internal/alloc"
	"github.com/agbru/mpint/internal/cli"
	"github.com/agbru/mpint/internal/config"
	apperrors "github.com/agbru/mpint/internal/errors"
	"github.com/agbru/mpint/internal/logging"
	"github.com/agbru/mpint/internal/metrics"
	"github.com/agbru/mpint/internal/mpint"
	"github.com/agbru/mpint/internal/sysmon"
	"github.com/agbru/mpint/internal/ui"
)

// Application represents the mpcalc application instance.
type Application struct {
	Config    config.AppConfig
	Source    mpint.Source
	Logger    logging.Logger
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithSource sets a custom randomness source for the application.
func WithSource(src mpint.Source) AppOption {
	return func(a *Application) { a.Source = src }
}

// WithLogger sets a custom logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Logger == nil {
		app.Logger = logging.NewLogger(errWriter, "mpcalc")
	}

	programName := "mpcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	if app.Source == nil {
		if cfg.Seed != 0 {
			app.Source = newSeededSource(cfg.Seed)
		} else {
			app.Source = mpint.NewCryptoSource()
		}
	}

	app.Config = cfg
	return app, nil
}

// Run executes a generation batch and renders the report. The returned
// value is the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(a.Config.Theme)

	if err := mpint.InitConstants(); err != nil {
		a.Logger.Error("constant registry init failed", logging.Err(err))
		return apperrors.ExitErrorGeneric
	}
	defer mpint.DestroyConstants()

	if a.Config.PooledAlloc {
		prev := alloc.SetDefault(alloc.NewPooledAllocator())
		defer alloc.SetDefault(prev)
	}

	stopMetrics := a.serveMetrics()
	defer stopMetrics()

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	a.Logger.Debug("starting batch",
		logging.Int("bits", a.Config.Bits),
		logging.Int("count", a.Config.Count),
		logging.Int("workers", a.Config.Workers))

	memCollector := metrics.NewMemoryCollector()
	memBefore := memCollector.Snapshot()

	stopSpinner := cli.StartGenerationSpinner(a.ErrWriter, a.Config.Count, a.Config.Bits)
	results := a.generateBatch(ctx)
	stopSpinner()

	for _, res := range results {
		cli.DisplayResult(out, res, a.Config.ShowLimbs)
	}
	cli.DisplaySummaryTable(out, results)
	cli.DisplayMemoryStats(out, memBefore, memCollector.Snapshot())
	cli.DisplayResourceStats(out, sysmon.Sample())

	if ctx.Err() != nil {
		a.Logger.Warn("batch interrupted", logging.Err(ctx.Err()))
		return apperrors.ExitErrorCancel
	}
	for _, res := range results {
		if res.Err != nil {
			return apperrors.ExitErrorGeneric
		}
	}
	return apperrors.ExitSuccess
}

// serveMetrics exposes the Prometheus registry over HTTP when a metrics
// address is configured. The returned function shuts the server down.
func (a *Application) serveMetrics() func() {
	if a.Config.MetricsAddr == "" {
		return func() {}
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	srv := &http.Server{
		Addr:              a.Config.MetricsAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		a.Logger.Info("metrics listening", logging.String("addr", a.Config.MetricsAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Logger.Error("metrics server failed", logging.Err(err))
		}
	}()

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.Logger.Warn("metrics shutdown failed", logging.Err(err))
		}
	}
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
