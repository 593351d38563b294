// Package ohlc loads historical open/high/low/close/volume bars from
// files and databases for replay through the indicator core. Sources are
// read-only: bars come out oldest-first and nothing is written back.
package ohlc

import "time"

// Bar is one trading period's worth of price action.
type Bar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// TypicalPrice returns (high + low + close) / 3.
func (b Bar) TypicalPrice() float64 {
	return (b.High + b.Low + b.Close) / 3.0
}

// Source supplies bars in ascending date order.
type Source interface {
	Bars() ([]Bar, error)
}
