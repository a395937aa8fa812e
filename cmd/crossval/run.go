package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/born-ml/crossval/internal/classifier"
	"github.com/born-ml/crossval/internal/config"
	"github.com/born-ml/crossval/internal/eval"
	"github.com/born-ml/crossval/internal/frame"
	"github.com/born-ml/crossval/internal/logging"
	"github.com/born-ml/crossval/internal/source"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	foldStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	meanStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run cross-validation",
		Example: `  crossval run --data weather.csv --target play --folds 5 --classifier knn --k 3
  crossval run --config runs/churn.yaml --workers 8`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := godotenv.Load(); err != nil {
				slog.Debug("no .env file loaded", "error", err)
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logging.Setup(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)

			if addr, _ := cmd.Flags().GetString("metrics-addr"); addr != "" {
				stop := serveMetrics(addr)
				defer stop()
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			_, err = runEvaluation(ctx, cfg, cmd.OutOrStdout())
			return err
		},
	}

	f := cmd.Flags()
	f.String("config", "", "YAML run file")
	f.String("data", "", "CSV file to evaluate on")
	f.String("query", "", "SQL query to load the table from PostgreSQL")
	f.String("target", "", "nominal target column")
	f.StringSlice("nominal", nil, "columns to treat as nominal")
	f.String("strategy", "", "split strategy: kfold, loo, subsample, bootstrap, stratified")
	f.Int("folds", 0, "number of folds")
	f.Int("repeats", 0, "repeats for subsample and bootstrap")
	f.Float64("fraction", 0, "train fraction for subsample")
	f.Int64("seed", 0, "random seed")
	f.String("classifier", "", "classifier: zeror, knn, naivebayes")
	f.Int("k", 0, "neighbours for knn")
	f.Int("workers", 0, "folds evaluated concurrently")
	f.String("log-level", "", "debug, info, warn, error")
	f.String("log-format", "", "text or json")
	f.String("metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9090")
	return cmd
}

// loadConfig reads --config when given, then applies explicitly set flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	f := cmd.Flags()
	cfg := config.Default()
	if path, _ := f.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}

	str := func(name string, dst *string) {
		if f.Changed(name) {
			*dst, _ = f.GetString(name)
		}
	}
	num := func(name string, dst *int) {
		if f.Changed(name) {
			*dst, _ = f.GetInt(name)
		}
	}
	str("data", &cfg.Data.Path)
	str("query", &cfg.Data.Query)
	str("target", &cfg.Target)
	str("strategy", &cfg.Strategy.Kind)
	str("classifier", &cfg.Classifier.Name)
	str("log-level", &cfg.Logging.Level)
	str("log-format", &cfg.Logging.Format)
	num("folds", &cfg.Strategy.Folds)
	num("repeats", &cfg.Strategy.Repeats)
	num("k", &cfg.Classifier.K)
	num("workers", &cfg.Workers)
	if f.Changed("fraction") {
		cfg.Strategy.TrainFraction, _ = f.GetFloat64("fraction")
	}
	if f.Changed("seed") {
		cfg.Strategy.Seed, _ = f.GetInt64("seed")
	}
	if f.Changed("nominal") {
		cfg.Data.Nominal, _ = f.GetStringSlice("nominal")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// runEvaluation loads the table, runs the configured evaluation and writes the
// report to out.
func runEvaluation(ctx context.Context, cfg *config.Config, out io.Writer) (*eval.Result, error) {
	table, err := loadTable(ctx, cfg)
	if err != nil {
		return nil, err
	}
	strategy, err := cfg.SplitStrategy()
	if err != nil {
		return nil, err
	}
	factory, err := classifier.New(cfg.Classifier.Name, classifier.Options{K: cfg.Classifier.K})
	if err != nil {
		return nil, err
	}

	reporter := eval.NewTextReporter(out)
	ev, err := eval.New(eval.Config{
		Strategy: strategy,
		Factory:  factory,
		Workers:  cfg.Workers,
		Reporter: eval.ReporterFunc(func(s string) {
			style := foldStyle
			if strings.HasPrefix(s, "mean") {
				style = meanStyle
			}
			reporter.Line(style.Render(s))
		}),
	})
	if err != nil {
		return nil, err
	}

	reporter.Line(titleStyle.Render(fmt.Sprintf("%s / %s on %q (%d rows, seed %d)",
		strategy.Name(), cfg.Classifier.Name, cfg.Target, table.RowCount(), cfg.Strategy.Seed)))

	rng := rand.New(rand.NewSource(cfg.Strategy.Seed)) //nolint:gosec // Deterministic seed for reproducible splits
	res, err := ev.Run(ctx, table, cfg.Target, rng)
	if err != nil {
		return nil, err
	}
	writeConfusion(reporter, res)
	return res, nil
}

func loadTable(ctx context.Context, cfg *config.Config) (frame.Table, error) {
	opts := source.Options{Nominal: cfg.Data.Nominal}
	if cfg.Data.Query == "" {
		return source.LoadCSV(cfg.Data.Path, opts)
	}

	dsn, err := cfg.ConnString()
	if err != nil {
		return nil, err
	}
	pool, err := source.Connect(ctx, dsn)
	if err != nil {
		return nil, err
	}
	defer pool.Close()
	return source.LoadQuery(ctx, pool, cfg.Data.Query, opts)
}

func writeConfusion(r eval.Reporter, res *eval.Result) {
	if len(res.Levels) == 0 {
		return
	}
	width := 8
	for _, l := range res.Levels {
		width = max(width, len(l)+1)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%*s", width, "actual\\pred")
	for _, l := range res.Levels {
		fmt.Fprintf(&sb, " %*s", width, l)
	}
	r.Line(sb.String())
	for i, row := range res.Confusion {
		sb.Reset()
		fmt.Fprintf(&sb, "%*s", width, res.Levels[i])
		for _, n := range row {
			fmt.Fprintf(&sb, " %*d", width, n)
		}
		r.Line(sb.String())
	}
}

// serveMetrics exposes the Prometheus default registry and returns a function
// that shuts the server down.
func serveMetrics(addr string) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("metrics server failed", "addr", addr, "error", err)
		}
	}()
	slog.Info("serving metrics", "addr", addr)

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
