package analysis

import (
	"math"

	"StockScope/internal/model"
)

// Indicator windows and thresholds, named so the classification logic
// and the tests can reference them directly.
const (
	SMAShortWindow = 20
	SMAMidWindow   = 50
	SMALongWindow  = 200

	EMAFastWindow    = 12
	EMASlowWindow    = 26
	MACDSignalWindow = 9

	RSIWindow = 14

	BollingerWindow = 20
	BollingerK      = 2.0

	StochWindow       = 14
	StochSmoothWindow = 3

	ATRWindow = 14

	// TradingDaysPerYear annualizes daily-return volatility.
	TradingDaysPerYear = 252
)

// ComputeIndicators derives every indicator column from a validated
// series. It is a pure function: the input is only read, and the
// returned set is freshly allocated. Positions inside an indicator's
// warm-up window hold model.Undefined(); undefined inputs propagate
// into undefined outputs, never into zeros.
func ComputeIndicators(s model.Series) *model.IndicatorSet {
	n := s.Len()
	closes := make([]float64, n)
	highs := make([]float64, n)
	lows := make([]float64, n)
	volumes := make([]float64, n)
	for i, b := range s.Bars {
		closes[i] = b.Close
		highs[i] = b.High
		lows[i] = b.Low
		volumes[i] = b.Volume
	}

	ind := &model.IndicatorSet{
		SMA20:  smaSeries(closes, SMAShortWindow),
		SMA50:  smaSeries(closes, SMAMidWindow),
		SMA200: smaSeries(closes, SMALongWindow),
		EMA12:  emaSeries(closes, EMAFastWindow),
		EMA26:  emaSeries(closes, EMASlowWindow),
		RSI:    rsiSeries(closes, RSIWindow),
		ATR:    atrSeries(highs, lows, closes, ATRWindow),
		OBV:    obvSeries(closes, volumes),
	}

	ind.MACD = subSeries(ind.EMA12, ind.EMA26)
	ind.MACDSignal = emaSeries(ind.MACD, MACDSignalWindow)
	ind.MACDHist = subSeries(ind.MACD, ind.MACDSignal)

	ind.BBMiddle = smaSeries(closes, BollingerWindow)
	ind.BBUpper, ind.BBLower = bollingerBands(closes, ind.BBMiddle, BollingerWindow, BollingerK)

	ind.StochK = stochKSeries(highs, lows, closes, StochWindow)
	ind.StochD = smaSeries(ind.StochK, StochSmoothWindow)

	ind.DailyReturn, ind.PriceChange = changeSeries(closes)
	return ind
}

// undefinedSeries allocates a column of length n filled with the
// undefined marker.
func undefinedSeries(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = model.Undefined()
	}
	return out
}

// smaSeries computes the arithmetic mean over the trailing window,
// inclusive of the current position. A window containing any undefined
// input yields an undefined output, so warm-up gaps in derived columns
// (e.g. %K feeding %D) propagate instead of skewing the mean.
func smaSeries(values []float64, window int) []float64 {
	out := undefinedSeries(len(values))
	if window <= 0 {
		return out
	}
	for i := window - 1; i < len(values); i++ {
		sum := 0.0
		defined := true
		for j := i - window + 1; j <= i; j++ {
			if !model.IsDefined(values[j]) {
				defined = false
				break
			}
			sum += values[j]
		}
		if defined {
			out[i] = sum / float64(window)
		}
	}
	return out
}

// emaSeries computes an exponential moving average with smoothing
// factor 2/(window+1), seeded with the simple mean of the first full
// window of defined values. Leading undefined inputs (as in the MACD
// column feeding the signal line) shift the seed position accordingly.
func emaSeries(values []float64, window int) []float64 {
	out := undefinedSeries(len(values))
	if window <= 0 {
		return out
	}
	first := 0
	for first < len(values) && !model.IsDefined(values[first]) {
		first++
	}
	if len(values)-first < window {
		return out
	}
	seed := 0.0
	for i := first; i < first+window; i++ {
		seed += values[i]
	}
	seed /= float64(window)
	out[first+window-1] = seed

	alpha := 2.0 / float64(window+1)
	prev := seed
	for i := first + window; i < len(values); i++ {
		prev = alpha*values[i] + (1-alpha)*prev
		out[i] = prev
	}
	return out
}

// subSeries subtracts b from a position-wise. Undefined operands yield
// undefined results via NaN arithmetic.
func subSeries(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

// rsiSeries computes the Wilder-smoothed Relative Strength Index. The
// average gain and loss are seeded with the simple mean of the first
// `window` day-over-day deltas, then updated with Wilder's recurrence
// avg = (avg*(window-1) + value) / window.
func rsiSeries(closes []float64, window int) []float64 {
	out := undefinedSeries(len(closes))
	if window <= 0 || len(closes) < window+1 {
		return out
	}
	var avgGain, avgLoss float64
	for i := 1; i <= window; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}
	avgGain /= float64(window)
	avgLoss /= float64(window)
	out[window] = rsiValue(avgGain, avgLoss)

	for i := window + 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(window-1) + gain) / float64(window)
		avgLoss = (avgLoss*float64(window-1) + loss) / float64(window)
		out[i] = rsiValue(avgGain, avgLoss)
	}
	return out
}

// rsiValue maps smoothed gain/loss averages to the bounded [0,100]
// index. A flat market (both averages zero) reads neutral 50; pure
// gains read 100.
func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		if avgGain == 0 {
			return 50.0
		}
		return 100.0
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs)
}

// bollingerBands returns the upper and lower bands around the given
// middle (SMA) column using k population standard deviations of the
// close over the same window.
func bollingerBands(closes, middle []float64, window int, k float64) (upper, lower []float64) {
	upper = undefinedSeries(len(closes))
	lower = undefinedSeries(len(closes))
	for i := window - 1; i < len(closes); i++ {
		if !model.IsDefined(middle[i]) {
			continue
		}
		variance := 0.0
		for j := i - window + 1; j <= i; j++ {
			d := closes[j] - middle[i]
			variance += d * d
		}
		band := k * math.Sqrt(variance/float64(window))
		upper[i] = middle[i] + band
		lower[i] = middle[i] - band
	}
	return upper, lower
}

// stochKSeries computes the raw stochastic %K: where the close sits
// inside the trailing window's high/low range, scaled to [0,100]. A
// flat range reads neutral 50 instead of dividing by zero.
func stochKSeries(highs, lows, closes []float64, window int) []float64 {
	out := undefinedSeries(len(closes))
	for i := window - 1; i < len(closes); i++ {
		hh := math.Inf(-1)
		ll := math.Inf(1)
		for j := i - window + 1; j <= i; j++ {
			if highs[j] > hh {
				hh = highs[j]
			}
			if lows[j] < ll {
				ll = lows[j]
			}
		}
		if hh == ll {
			out[i] = 50.0
			continue
		}
		out[i] = 100.0 * (closes[i] - ll) / (hh - ll)
	}
	return out
}

// atrSeries computes the Average True Range: Wilder smoothing of the
// true range, seeded with the simple mean of the first `window` true
// ranges. The first bar's true range is its high-low span since there
// is no prior close.
func atrSeries(highs, lows, closes []float64, window int) []float64 {
	out := undefinedSeries(len(closes))
	if window <= 0 || len(closes) < window {
		return out
	}
	tr := make([]float64, len(closes))
	tr[0] = highs[0] - lows[0]
	for i := 1; i < len(closes); i++ {
		hl := highs[i] - lows[i]
		hc := math.Abs(highs[i] - closes[i-1])
		lc := math.Abs(lows[i] - closes[i-1])
		tr[i] = math.Max(hl, math.Max(hc, lc))
	}

	seed := 0.0
	for i := 0; i < window; i++ {
		seed += tr[i]
	}
	atr := seed / float64(window)
	out[window-1] = atr
	for i := window; i < len(closes); i++ {
		atr = (atr*float64(window-1) + tr[i]) / float64(window)
		out[i] = atr
	}
	return out
}

// obvSeries computes On-Balance Volume: a running total where each bar
// adds its volume on an up-close, subtracts it on a down-close, and
// contributes nothing on an unchanged close. The first bar contributes
// zero.
func obvSeries(closes, volumes []float64) []float64 {
	out := make([]float64, len(closes))
	if len(closes) == 0 {
		return out
	}
	total := 0.0
	out[0] = total
	for i := 1; i < len(closes); i++ {
		switch {
		case closes[i] > closes[i-1]:
			total += volumes[i]
		case closes[i] < closes[i-1]:
			total -= volumes[i]
		}
		out[i] = total
	}
	return out
}

// changeSeries computes the day-over-day close change in percent and
// absolute terms. Both are undefined at position zero.
func changeSeries(closes []float64) (returns, changes []float64) {
	returns = undefinedSeries(len(closes))
	changes = undefinedSeries(len(closes))
	for i := 1; i < len(closes); i++ {
		returns[i] = (closes[i]/closes[i-1] - 1) * 100
		changes[i] = closes[i] - closes[i-1]
	}
	return returns, changes
}
