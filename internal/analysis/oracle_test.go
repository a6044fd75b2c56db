package analysis

import (
	"math"
	"testing"

	"github.com/markcheno/go-talib"
)

// Cross-checks against go-talib, which implements the same SMA-seeded
// EMA and Wilder-smoothed RSI recurrences. talib marks warm-up
// positions with zeros rather than NaN, so comparisons start at each
// indicator's first defined position.

const oracleTolerance = 1e-6

func TestSMA_MatchesTalib(t *testing.T) {
	closes := walkCloses(300, 42)
	got := smaSeries(closes, SMAShortWindow)
	want := talib.Sma(closes, SMAShortWindow)
	for i := SMAShortWindow - 1; i < len(closes); i++ {
		if math.Abs(got[i]-want[i]) > oracleTolerance {
			t.Fatalf("SMA20[%d]: got %.8f, talib %.8f", i, got[i], want[i])
		}
	}
}

func TestEMA_MatchesTalib(t *testing.T) {
	closes := walkCloses(300, 43)
	for _, window := range []int{EMAFastWindow, EMASlowWindow} {
		got := emaSeries(closes, window)
		want := talib.Ema(closes, window)
		for i := window - 1; i < len(closes); i++ {
			if math.Abs(got[i]-want[i]) > oracleTolerance {
				t.Fatalf("EMA%d[%d]: got %.8f, talib %.8f", window, i, got[i], want[i])
			}
		}
	}
}

func TestRSI_MatchesTalib(t *testing.T) {
	closes := walkCloses(300, 44)
	got := rsiSeries(closes, RSIWindow)
	want := talib.Rsi(closes, RSIWindow)
	for i := RSIWindow; i < len(closes); i++ {
		if math.Abs(got[i]-want[i]) > oracleTolerance {
			t.Fatalf("RSI[%d]: got %.8f, talib %.8f", i, got[i], want[i])
		}
	}
}
