// cmd/backtest replays historical OHLC bars through a moving-average
// crossover sweep and writes the scored parameter sets to a results file.
//
// Usage:
//
//	go run ./cmd/backtest --data=data/bars.csv --spec=sweeps/nifty.yaml
//	go run ./cmd/backtest --sqlite=data/bars.db --symbol=NIFTY
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"tradingtools/config"
	"tradingtools/internal/batch"
	"tradingtools/internal/logger"
	"tradingtools/internal/metrics"
	"tradingtools/internal/ohlc"
)

func main() {
	cfg := config.Load()

	dataPath := flag.String("data", cfg.DataPath, "Path to a delimited OHLC file")
	skipLines := flag.Int("skip", 0, "Leading lines to skip in the data file")
	delimiter := flag.String("delim", "", "Field delimiter (empty = whitespace)")
	noVolume := flag.Bool("no-volume", false, "Data file has no volume column")
	descending := flag.Bool("descending", false, "Data file is newest-first")
	sqlitePath := flag.String("sqlite", cfg.SQLitePath, "Path to a SQLite bars database (overrides --data)")
	postgresDSN := flag.String("postgres", cfg.PostgresDSN, "Postgres DSN (overrides --data and --sqlite)")
	symbol := flag.String("symbol", cfg.Symbol, "Symbol filter for database sources")
	specPath := flag.String("spec", cfg.SweepSpecPath, "YAML sweep spec (empty = defaults)")
	resultsDir := flag.String("results", cfg.ResultsDir, "Directory for the results file")
	topResults := flag.Int("top", cfg.TopResults, "Result rows to keep (0 = all)")
	metricsAddr := flag.String("metrics", cfg.MetricsAddr, "Metrics listen address (empty = disabled)")
	flag.Parse()

	logger.Init("backtest", parseLevel(cfg.LogLevel))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	ctx = logger.WithRunID(ctx, logger.GenerateRunID("backtest", time.Now()))

	// Sweep spec
	spec := batch.DefaultSweepSpec()
	if *specPath != "" {
		var err error
		spec, err = batch.LoadSpec(*specPath)
		if err != nil {
			log.Fatalf("[backtest] %v", err)
		}
	}
	sweep, err := spec.Sweep()
	if err != nil {
		log.Fatalf("[backtest] %v", err)
	}
	top := *topResults
	if spec.Top > 0 {
		top = spec.Top
	}

	// Data source
	source, closeSource, err := openSource(*postgresDSN, *sqlitePath, *symbol, *dataPath, *skipLines, *delimiter, *noVolume, *descending)
	if err != nil {
		log.Fatalf("[backtest] %v", err)
	}
	defer closeSource()

	// Metrics endpoint
	var m *metrics.Metrics
	if *metricsAddr != "" {
		m = metrics.NewMetrics()
		srv := metrics.NewServer(*metricsAddr)
		srv.Start()
		defer func() {
			shutCtx, shutCancel := context.WithTimeout(context.Background(), 3*time.Second)
			srv.Stop(shutCtx)
			shutCancel()
		}()
	}

	if err := os.MkdirAll(*resultsDir, 0o755); err != nil {
		log.Fatalf("[backtest] results dir: %v", err)
	}
	writer := batch.NewFileWriter(*resultsDir)
	writer.ShowResults = top
	if m != nil {
		writer.Written = func(rows int) { m.ResultsWritten.Add(float64(rows)) }
	}

	runner, err := batch.NewRunner(source, m, writer.OnFinish)
	if err != nil {
		log.Fatalf("[backtest] %v", err)
	}

	slog.Info("starting sweep",
		append(logger.LogWithRun(ctx),
			slog.String("spec", spec.Name),
			slog.Int("short_min", sweep.ShortMin), slog.Int("short_max", sweep.ShortMax),
			slog.Int("long_min", sweep.LongMin), slog.Int("long_max", sweep.LongMax),
		)...)

	reports, err := runner.Run(ctx, sweep)
	if err != nil {
		log.Fatalf("[backtest] %v", err)
	}

	for _, report := range reports {
		printSummary(report, top)
	}
}

func openSource(postgresDSN, sqlitePath, symbol, dataPath string, skip int, delim string, noVolume, descending bool) (ohlc.Source, func(), error) {
	switch {
	case postgresDSN != "":
		r, err := ohlc.NewPostgresReader(postgresDSN, symbol)
		if err != nil {
			return nil, nil, err
		}
		return r, func() { r.Close() }, nil
	case sqlitePath != "":
		r, err := ohlc.NewSQLiteReader(sqlitePath, symbol)
		if err != nil {
			return nil, nil, err
		}
		return r, func() { r.Close() }, nil
	default:
		r := &ohlc.FileReader{
			Path:       dataPath,
			SkipLines:  skip,
			Delimiter:  delim,
			NoVolume:   noVolume,
			Descending: descending,
		}
		return r, func() {}, nil
	}
}

func printSummary(report *batch.Report, top int) {
	rows := report.SortedResults(true)
	if top == 0 || top > len(rows) {
		top = len(rows)
	}

	fmt.Println()
	fmt.Println(strings.Repeat("=", 46))
	fmt.Printf("  %s\n", report.Name)
	fmt.Printf("  scenarios: %d   elapsed: %s\n", len(report.Results), report.Elapsed.Round(time.Millisecond))
	fmt.Println(strings.Repeat("-", 46))
	for i := 0; i < top; i++ {
		fmt.Printf("  %8.2f%%  %s\n", rows[i].Value, rows[i].Descriptor)
	}
	fmt.Println(strings.Repeat("=", 46))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
