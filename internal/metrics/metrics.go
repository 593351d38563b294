package metrics

import (
	"context"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the backtest harness.
type Metrics struct {
	BarsReplayed     prometheus.Counter
	BarReadDur       prometheus.Histogram
	SimulationsTotal *prometheus.CounterVec // labels: simulation
	SimulationDur    prometheus.Histogram
	SimulationErrors prometheus.Counter
	ResultsWritten   prometheus.Counter
	BestResult       *prometheus.GaugeVec // labels: simulation
}

// NewMetrics registers and returns all Prometheus metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		BarsReplayed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "backtest_bars_replayed_total",
			Help: "Total OHLC bars fed into simulations",
		}),
		BarReadDur: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "backtest_bar_read_duration_seconds",
			Help:    "Time spent loading bars from the configured source",
			Buckets: prometheus.DefBuckets,
		}),
		SimulationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "backtest_simulations_total",
			Help: "Simulations completed (by simulation name)",
		}, []string{"simulation"}),
		SimulationDur: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "backtest_simulation_duration_seconds",
			Help:    "Wall-clock time per simulation run",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		}),
		SimulationErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "backtest_simulation_errors_total",
			Help: "Simulations that returned an error",
		}),
		ResultsWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "backtest_results_written_total",
			Help: "Result rows written to the output file",
		}),
		BestResult: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "backtest_best_result_value",
			Help: "Top result value per simulation",
		}, []string{"simulation"}),
	}

	prometheus.MustRegister(
		m.BarsReplayed,
		m.BarReadDur,
		m.SimulationsTotal,
		m.SimulationDur,
		m.SimulationErrors,
		m.ResultsWritten,
		m.BestResult,
	)

	return m
}

// Server runs an HTTP server exposing /metrics.
type Server struct {
	addr string
	srv  *http.Server
}

// NewServer creates a metrics server on the given address.
func NewServer(addr string) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &Server{
		addr: addr,
		srv: &http.Server{
			Addr:    addr,
			Handler: mux,
		},
	}
}

// Start launches the HTTP server in a goroutine.
func (s *Server) Start() {
	go func() {
		log.Printf("[metrics] server listening on %s", s.addr)
		if err := s.srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("[metrics] server error: %v", err)
		}
	}()
}

// Stop gracefully shuts down the metrics server.
func (s *Server) Stop(ctx context.Context) {
	s.srv.Shutdown(ctx)
}
