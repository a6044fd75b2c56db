package model

import "math"

// Undefined returns the explicit "no value" marker used for indicator
// positions inside their warm-up window. It is NaN so that any formula
// consuming an undefined input produces an undefined output instead of
// a silently wrong number.
func Undefined() float64 { return math.NaN() }

// IsDefined reports whether an indicator value is outside its warm-up
// window.
func IsDefined(v float64) bool { return !math.IsNaN(v) }

// IndicatorSet holds every derived column computed from a Series. Each
// column is aligned 1:1 with the source bars by index; positions before
// an indicator's warm-up length hold Undefined().
type IndicatorSet struct {
	SMA20  []float64
	SMA50  []float64
	SMA200 []float64

	EMA12 []float64
	EMA26 []float64

	MACD       []float64
	MACDSignal []float64
	MACDHist   []float64

	RSI []float64

	BBUpper  []float64
	BBMiddle []float64
	BBLower  []float64

	StochK []float64
	StochD []float64

	ATR []float64
	OBV []float64

	DailyReturn []float64 // day-over-day close change, percent
	PriceChange []float64 // day-over-day close change, absolute
}

// Len returns the common length of all columns (equal to the source
// series length).
func (s *IndicatorSet) Len() int { return len(s.SMA20) }
