package analysis

import (
	"math"
	"testing"

	"StockScope/internal/model"
)

func TestComputeIndicators_ColumnLengths(t *testing.T) {
	s := barsFromCloses("TEST", walkCloses(250, 7))
	ind := ComputeIndicators(s)

	columns := map[string][]float64{
		"SMA20": ind.SMA20, "SMA50": ind.SMA50, "SMA200": ind.SMA200,
		"EMA12": ind.EMA12, "EMA26": ind.EMA26,
		"MACD": ind.MACD, "MACDSignal": ind.MACDSignal, "MACDHist": ind.MACDHist,
		"RSI":     ind.RSI,
		"BBUpper": ind.BBUpper, "BBMiddle": ind.BBMiddle, "BBLower": ind.BBLower,
		"StochK": ind.StochK, "StochD": ind.StochD,
		"ATR": ind.ATR, "OBV": ind.OBV,
		"DailyReturn": ind.DailyReturn, "PriceChange": ind.PriceChange,
	}
	for name, col := range columns {
		if len(col) != s.Len() {
			t.Errorf("%s: length %d, want %d", name, len(col), s.Len())
		}
	}
}

func TestComputeIndicators_WarmupPositions(t *testing.T) {
	s := barsFromCloses("TEST", walkCloses(250, 11))
	ind := ComputeIndicators(s)

	tests := []struct {
		name      string
		col       []float64
		firstIdx  int // first defined position
	}{
		{"SMA20", ind.SMA20, 19},
		{"SMA50", ind.SMA50, 49},
		{"SMA200", ind.SMA200, 199},
		{"EMA12", ind.EMA12, 11},
		{"EMA26", ind.EMA26, 25},
		{"MACD", ind.MACD, 25},
		{"MACDSignal", ind.MACDSignal, 33},
		{"MACDHist", ind.MACDHist, 33},
		{"RSI", ind.RSI, 14},
		{"BBUpper", ind.BBUpper, 19},
		{"StochK", ind.StochK, 13},
		{"StochD", ind.StochD, 15},
		{"ATR", ind.ATR, 13},
		{"DailyReturn", ind.DailyReturn, 1},
		{"PriceChange", ind.PriceChange, 1},
	}
	for _, tt := range tests {
		for i := 0; i < tt.firstIdx; i++ {
			if model.IsDefined(tt.col[i]) {
				t.Errorf("%s[%d]: expected undefined inside warm-up, got %.4f", tt.name, i, tt.col[i])
			}
		}
		if !model.IsDefined(tt.col[tt.firstIdx]) {
			t.Errorf("%s[%d]: expected first defined value, got undefined", tt.name, tt.firstIdx)
		}
	}
}

func TestComputeIndicators_ConstantSeries(t *testing.T) {
	const price = 100.0
	s := barsFromCloses("FLAT", flatCloses(250, price))
	ind := ComputeIndicators(s)
	last := ind.Len() - 1

	for name, col := range map[string][]float64{
		"SMA20": ind.SMA20, "SMA50": ind.SMA50, "SMA200": ind.SMA200,
		"EMA12": ind.EMA12, "EMA26": ind.EMA26, "BBMiddle": ind.BBMiddle,
	} {
		if math.Abs(col[last]-price) > 1e-9 {
			t.Errorf("%s on constant series: got %.6f, want %.1f", name, col[last], price)
		}
	}
	if width := ind.BBUpper[last] - ind.BBLower[last]; math.Abs(width) > 1e-9 {
		t.Errorf("Bollinger bandwidth on constant series: got %.9f, want 0", width)
	}
	if math.Abs(ind.RSI[last]-50) > 1e-9 {
		t.Errorf("RSI on flat series: got %.4f, want 50", ind.RSI[last])
	}
	if math.Abs(ind.MACD[last]) > 1e-9 || math.Abs(ind.MACDHist[last]) > 1e-9 {
		t.Errorf("MACD on flat series: macd=%.9f hist=%.9f, want 0", ind.MACD[last], ind.MACDHist[last])
	}
}

func TestRSI_MonotonicExtremes(t *testing.T) {
	up := ComputeIndicators(barsFromCloses("UP", trendingCloses(30, 100, 1)))
	if got := up.RSI[len(up.RSI)-1]; math.Abs(got-100) > 1e-9 {
		t.Errorf("RSI on strictly rising series: got %.4f, want 100", got)
	}

	down := ComputeIndicators(barsFromCloses("DOWN", trendingCloses(30, 200, -1)))
	if got := down.RSI[len(down.RSI)-1]; math.Abs(got) > 1e-9 {
		t.Errorf("RSI on strictly falling series: got %.4f, want 0", got)
	}
}

func TestStochK_BoundsAndFlatRange(t *testing.T) {
	ind := ComputeIndicators(barsFromCloses("WALK", walkCloses(120, 3)))
	for i, k := range ind.StochK {
		if !model.IsDefined(k) {
			continue
		}
		if k < 0 || k > 100 {
			t.Errorf("StochK[%d] = %.4f outside [0,100]", i, k)
		}
	}

	flat := ComputeIndicators(barsFromCloses("FLAT", flatCloses(20, 50)))
	last := flat.Len() - 1
	// 2-point high/low band is constant, but the range is non-zero, so
	// the close sits exactly mid-range.
	if math.Abs(flat.StochK[last]-50) > 1e-9 {
		t.Errorf("StochK mid-range: got %.4f, want 50", flat.StochK[last])
	}
}

func TestStochK_ZeroRange(t *testing.T) {
	// Degenerate bars where high == low == close: the 14-bar range is
	// zero and %K must read neutral 50 by convention.
	closes := flatCloses(20, 75)
	s := barsFromCloses("PIN", closes)
	for i := range s.Bars {
		s.Bars[i].High = 75
		s.Bars[i].Low = 75
		s.Bars[i].Open = 75
	}
	ind := ComputeIndicators(s)
	if got := ind.StochK[ind.Len()-1]; math.Abs(got-50) > 1e-9 {
		t.Errorf("StochK on zero range: got %.4f, want 50", got)
	}
}

func TestOBV_Accumulation(t *testing.T) {
	closes := []float64{100, 101, 99, 99, 102}
	ind := ComputeIndicators(barsFromCloses("OBV", closes))
	want := []float64{0, 1_000_000, 0, 0, 1_000_000}
	for i, w := range want {
		if math.Abs(ind.OBV[i]-w) > 1e-9 {
			t.Errorf("OBV[%d] = %.0f, want %.0f", i, ind.OBV[i], w)
		}
	}
}

func TestATR_ConstantRange(t *testing.T) {
	// Every bar spans exactly 2 points and closes mid-range, so every
	// true range is 2 and the smoothed ATR stays 2.
	ind := ComputeIndicators(barsFromCloses("ATR", flatCloses(40, 100)))
	if got := ind.ATR[ind.Len()-1]; math.Abs(got-2) > 1e-9 {
		t.Errorf("ATR on constant 2-point bars: got %.4f, want 2", got)
	}
}

func TestDailyReturn_Values(t *testing.T) {
	closes := []float64{100, 110, 99}
	ind := ComputeIndicators(barsFromCloses("RET", closes))
	if model.IsDefined(ind.DailyReturn[0]) {
		t.Error("DailyReturn[0] must be undefined")
	}
	if math.Abs(ind.DailyReturn[1]-10) > 1e-9 {
		t.Errorf("DailyReturn[1] = %.4f, want 10", ind.DailyReturn[1])
	}
	if math.Abs(ind.DailyReturn[2]-(-10)) > 1e-9 {
		t.Errorf("DailyReturn[2] = %.4f, want -10", ind.DailyReturn[2])
	}
	if math.Abs(ind.PriceChange[2]-(-11)) > 1e-9 {
		t.Errorf("PriceChange[2] = %.4f, want -11", ind.PriceChange[2])
	}
}

func TestComputeIndicators_ShortSeriesAllUndefined(t *testing.T) {
	ind := ComputeIndicators(barsFromCloses("SHORT", walkCloses(10, 5)))
	last := ind.Len() - 1
	for name, col := range map[string][]float64{
		"SMA20": ind.SMA20, "SMA200": ind.SMA200, "RSI": ind.RSI,
		"MACD": ind.MACD, "BBUpper": ind.BBUpper, "ATR": ind.ATR,
	} {
		if model.IsDefined(col[last]) {
			t.Errorf("%s on 10-bar series: expected undefined, got %.4f", name, col[last])
		}
	}
}
