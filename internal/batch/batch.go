// Package batch runs parameter-sweep simulations over historical OHLC bars
// and collects their scored results.
//
// A Runner and the simulations it drives are single-goroutine objects. To
// run batches concurrently, build one Runner and one simulation set per
// goroutine.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"tradingtools/internal/logger"
	"tradingtools/internal/metrics"
	"tradingtools/internal/ohlc"
)

// Result is a value/descriptor pair scored by a simulation. Value is
// typically the percent gain of the parameter set named by Descriptor.
type Result struct {
	Value      float64
	Descriptor string
}

// Simulation runs a set of scenarios over a bar series and reports one
// Result per scenario.
type Simulation interface {
	Name() string
	Description() string
	Run(bars []ohlc.Bar) ([]Result, error)
}

// Report holds the outcome of one simulation executed by a Runner.
type Report struct {
	Name        string
	Description string
	Results     []Result
	Elapsed     time.Duration
}

// SortedResults returns a copy of the results ordered by value,
// descending by default.
func (r *Report) SortedResults(descending bool) []Result {
	out := make([]Result, len(r.Results))
	copy(out, r.Results)
	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return out[i].Value > out[j].Value
		}
		return out[i].Value < out[j].Value
	})
	return out
}

// Runner loads bars from a Source and executes simulations against them.
type Runner struct {
	source   ohlc.Source
	metrics  *metrics.Metrics
	onFinish func(*Report)

	bars []ohlc.Bar
}

// NewRunner creates a Runner over the given source. The metrics and
// onFinish callback are optional.
func NewRunner(source ohlc.Source, m *metrics.Metrics, onFinish func(*Report)) (*Runner, error) {
	if source == nil {
		return nil, fmt.Errorf("batch: nil source")
	}
	return &Runner{source: source, metrics: m, onFinish: onFinish}, nil
}

// Run loads the bars (once, then cached) and executes each simulation in
// order. Every simulation gets the full bar series. A simulation error
// aborts the batch.
func (r *Runner) Run(ctx context.Context, sims ...Simulation) ([]*Report, error) {
	if err := r.loadBars(ctx); err != nil {
		return nil, err
	}

	reports := make([]*Report, 0, len(sims))
	for _, sim := range sims {
		select {
		case <-ctx.Done():
			return reports, ctx.Err()
		default:
		}

		start := time.Now()
		results, err := sim.Run(r.bars)
		elapsed := time.Since(start)

		if err != nil {
			if r.metrics != nil {
				r.metrics.SimulationErrors.Inc()
			}
			return reports, fmt.Errorf("batch: simulation %s: %w", sim.Name(), err)
		}

		report := &Report{
			Name:        sim.Name(),
			Description: sim.Description(),
			Results:     results,
			Elapsed:     elapsed,
		}
		reports = append(reports, report)

		if r.metrics != nil {
			r.metrics.SimulationsTotal.WithLabelValues(sim.Name()).Inc()
			r.metrics.SimulationDur.Observe(elapsed.Seconds())
			if top := report.SortedResults(true); len(top) > 0 {
				r.metrics.BestResult.WithLabelValues(sim.Name()).Set(top[0].Value)
			}
		}

		args := append(logger.LogWithRun(ctx),
			slog.String("simulation", sim.Name()),
			slog.Int("scenarios", len(results)),
			slog.Duration("elapsed", elapsed),
		)
		slog.Info("simulation complete", args...)

		if r.onFinish != nil {
			r.onFinish(report)
		}
	}
	return reports, nil
}

func (r *Runner) loadBars(ctx context.Context) error {
	if r.bars != nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	start := time.Now()
	bars, err := r.source.Bars()
	if err != nil {
		return fmt.Errorf("batch: load bars: %w", err)
	}
	if len(bars) == 0 {
		return fmt.Errorf("batch: source returned no bars")
	}
	r.bars = bars

	if r.metrics != nil {
		r.metrics.BarsReplayed.Add(float64(len(bars)))
		r.metrics.BarReadDur.Observe(time.Since(start).Seconds())
	}
	return nil
}
