package batch

import (
	"fmt"

	"tradingtools/internal/indicator"
	"tradingtools/internal/ohlc"
)

// CrossoverSweep runs a moving-average crossover simulation for every
// (short, long) period pair in the configured ranges and scores each pair
// by the percent gain of a naive long-only fill model: buy the full stake
// on a fresh buy signal, sell it all on a fresh sell signal, liquidate on
// the final bar.
type CrossoverSweep struct {
	ShortMin, ShortMax int
	LongMin, LongMax   int
	Invert             bool
}

// NewCrossoverSweep creates a sweep over short periods [shortMin, shortMax]
// and long periods [longMin, longMax]. Pairs where short >= long are skipped
// during the run.
func NewCrossoverSweep(shortMin, shortMax, longMin, longMax int) (*CrossoverSweep, error) {
	if shortMin < 1 || longMin < 1 {
		return nil, fmt.Errorf("batch: %w: periods must be positive", indicator.ErrInvalidConfig)
	}
	if shortMax < shortMin || longMax < longMin {
		return nil, fmt.Errorf("batch: %w: empty period range", indicator.ErrInvalidConfig)
	}
	return &CrossoverSweep{
		ShortMin: shortMin, ShortMax: shortMax,
		LongMin: longMin, LongMax: longMax,
	}, nil
}

func (s *CrossoverSweep) Name() string { return "ma-crossover-sweep" }

func (s *CrossoverSweep) Description() string {
	return fmt.Sprintf("SMA crossover sweep, short %d-%d vs long %d-%d, long-only fills",
		s.ShortMin, s.ShortMax, s.LongMin, s.LongMax)
}

// Run sweeps every valid period pair over the bar series.
func (s *CrossoverSweep) Run(bars []ohlc.Bar) ([]Result, error) {
	var results []Result
	for short := s.ShortMin; short <= s.ShortMax; short++ {
		for long := s.LongMin; long <= s.LongMax; long++ {
			if short >= long {
				continue
			}
			gain, err := s.simulatePair(short, long, bars)
			if err != nil {
				return nil, err
			}
			results = append(results, Result{
				Value:      gain,
				Descriptor: fmt.Sprintf("short=%d long=%d", short, long),
			})
		}
	}
	return results, nil
}

// simulatePair replays the bars through one crossover classifier and
// returns the percent gain of the fill model.
func (s *CrossoverSweep) simulatePair(short, long int, bars []ohlc.Bar) (float64, error) {
	cross, err := indicator.NewSMACrossover(short, long, s.Invert)
	if err != nil {
		return 0, err
	}

	const stake = 100.0
	cash := stake
	shares := 0.0

	for _, bar := range bars {
		if err := cross.Update(bar.Close); err != nil {
			return 0, fmt.Errorf("bar %s: %w", bar.Date.Format("2006-01-02"), err)
		}
		if !cross.Accurate() || !cross.Fresh() {
			continue
		}
		switch cross.Signal() {
		case indicator.Buy:
			if shares == 0 && bar.Close > 0 {
				shares = cash / bar.Close
				cash = 0
			}
		case indicator.Sell:
			if shares > 0 {
				cash = shares * bar.Close
				shares = 0
			}
		}
	}

	if shares > 0 {
		cash = shares * bars[len(bars)-1].Close
	}
	return (cash - stake) / stake * 100, nil
}
