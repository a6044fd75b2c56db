package model

import (
	"fmt"
	"math"
	"time"
)

// Bar represents a single OHLCV candlestick bar.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Validate checks the structural invariants of a single bar: all fields
// finite, prices strictly positive, volume non-negative, and the
// high/low envelope containing open and close.
func (b Bar) Validate() error {
	for _, v := range []float64{b.Open, b.High, b.Low, b.Close, b.Volume} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("non-finite field in bar at %s", b.Time.Format("2006-01-02"))
		}
	}
	if b.Open <= 0 || b.High <= 0 || b.Low <= 0 || b.Close <= 0 {
		return fmt.Errorf("non-positive price in bar at %s", b.Time.Format("2006-01-02"))
	}
	if b.Volume < 0 {
		return fmt.Errorf("negative volume in bar at %s", b.Time.Format("2006-01-02"))
	}
	if b.High < b.Open || b.High < b.Close || b.High < b.Low {
		return fmt.Errorf("high %.4f below open/close/low in bar at %s", b.High, b.Time.Format("2006-01-02"))
	}
	if b.Low > b.Open || b.Low > b.Close {
		return fmt.Errorf("low %.4f above open/close in bar at %s", b.Low, b.Time.Format("2006-01-02"))
	}
	return nil
}

// Series holds an ordered sequence of daily bars for one symbol.
// Timestamps must be strictly increasing. The analysis engine only
// reads a Series; it never mutates one.
type Series struct {
	Symbol string
	Bars   []Bar
}

// Len returns the number of bars in the series.
func (s Series) Len() int { return len(s.Bars) }

// Latest returns the most recent bar, or false for an empty series.
func (s Series) Latest() (Bar, bool) {
	if len(s.Bars) == 0 {
		return Bar{}, false
	}
	return s.Bars[len(s.Bars)-1], true
}
