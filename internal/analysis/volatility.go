package analysis

import (
	"math"

	"StockScope/internal/model"
)

// AnalyzeVolatility computes annualized historical volatility from the
// daily-return column and classifies the close against the Bollinger
// envelope. The latest ATR is surfaced verbatim.
func AnalyzeVolatility(ind *model.IndicatorSet, latest model.Bar) model.VolatilitySnapshot {
	last := ind.Len() - 1
	snap := model.VolatilitySnapshot{
		CurrentPrice:   latest.Close,
		BBUpper:        ind.BBUpper[last],
		BBMiddle:       ind.BBMiddle[last],
		BBLower:        ind.BBLower[last],
		ATR:            ind.ATR[last],
		HistVolatility: historicalVolatility(ind.DailyReturn),
	}

	switch {
	case !model.IsDefined(snap.BBUpper) || !model.IsDefined(snap.BBLower):
		snap.BandPosition = model.BandUndetermined
	case snap.CurrentPrice > snap.BBUpper:
		snap.BandPosition = model.BandAboveUpper
	case snap.CurrentPrice < snap.BBLower:
		snap.BandPosition = model.BandBelowLower
	default:
		snap.BandPosition = model.BandWithin
	}

	return snap
}

// historicalVolatility is the sample standard deviation of the defined
// daily returns (already in percent), annualized by sqrt(252). It needs
// at least two returns; otherwise it stays undefined.
func historicalVolatility(dailyReturns []float64) float64 {
	var sum float64
	var n int
	for _, r := range dailyReturns {
		if model.IsDefined(r) {
			sum += r
			n++
		}
	}
	if n < 2 {
		return model.Undefined()
	}
	mean := sum / float64(n)
	var sq float64
	for _, r := range dailyReturns {
		if model.IsDefined(r) {
			d := r - mean
			sq += d * d
		}
	}
	stddev := math.Sqrt(sq / float64(n-1))
	return stddev * math.Sqrt(TradingDaysPerYear)
}
