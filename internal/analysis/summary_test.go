package analysis

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"StockScope/internal/model"
)

func TestAnalyze_EmptySeries(t *testing.T) {
	_, err := Analyze(model.Series{Symbol: "EMPTY"})
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestAnalyze_MalformedBar(t *testing.T) {
	s := barsFromCloses("BAD", flatCloses(5, 100))
	s.Bars[2].High = 50 // below low
	_, err := Analyze(s)
	if !errors.Is(err, ErrMalformedBar) {
		t.Fatalf("expected ErrMalformedBar, got %v", err)
	}
}

func TestAnalyze_OutOfOrderTimestamps(t *testing.T) {
	s := barsFromCloses("OOO", flatCloses(5, 100))
	s.Bars[3].Time = s.Bars[1].Time
	_, err := Analyze(s)
	if !errors.Is(err, ErrMalformedBar) {
		t.Fatalf("expected ErrMalformedBar, got %v", err)
	}
}

// A 250-bar flat series: sideways trend, neutral RSI, within bands.
// MACD equals its signal line, and the tie rule makes that a bearish
// vote, so the result is a weak SELL at 1/3.
func TestAnalyze_FlatScenario(t *testing.T) {
	sum, err := Analyze(barsFromCloses("FLAT", flatCloses(250, 100)))
	if err != nil {
		t.Fatal(err)
	}
	if sum.Trend.ShortTerm != model.TrendSideways {
		t.Errorf("trend: got %s, want %s", sum.Trend.ShortTerm, model.TrendSideways)
	}
	if sum.Momentum.RSISignal != model.OscNeutral {
		t.Errorf("RSI signal: got %s (RSI=%.2f), want %s", sum.Momentum.RSISignal, sum.Momentum.RSI, model.OscNeutral)
	}
	if sum.Volatility.BandPosition != model.BandWithin {
		t.Errorf("band position: got %s, want %s", sum.Volatility.BandPosition, model.BandWithin)
	}
	if sum.Momentum.MACDTrend != model.MACDBearish {
		t.Errorf("MACD trend: got %s, want %s", sum.Momentum.MACDTrend, model.MACDBearish)
	}
	if sum.Signal.Recommendation != model.RecommendSell || sum.Signal.Confidence != "1/3" {
		t.Errorf("signal: got %s %s, want SELL 1/3",
			sum.Signal.Recommendation, sum.Signal.Confidence)
	}
}

// 201 bars rising $1/day from $100: golden cross and a clean uptrend.
func TestAnalyze_RisingScenario(t *testing.T) {
	sum, err := Analyze(barsFromCloses("RISE", trendingCloses(201, 100, 1)))
	if err != nil {
		t.Fatal(err)
	}
	if sum.Trend.SMA50 <= sum.Trend.SMA200 {
		t.Errorf("SMA50 %.2f should exceed SMA200 %.2f", sum.Trend.SMA50, sum.Trend.SMA200)
	}
	if sum.Trend.LongTerm != model.LongTrendGoldenCross {
		t.Errorf("long-term: got %s, want %s", sum.Trend.LongTerm, model.LongTrendGoldenCross)
	}
	if sum.Trend.ShortTerm != model.TrendUp {
		t.Errorf("short-term: got %s, want %s", sum.Trend.ShortTerm, model.TrendUp)
	}
	// Strictly rising closes pin RSI at 100 (overbought sell vote) while
	// trend and MACD vote buy.
	if sum.Momentum.RSISignal != model.OscOverbought {
		t.Errorf("RSI signal: got %s, want %s", sum.Momentum.RSISignal, model.OscOverbought)
	}
	if sum.Signal.Recommendation != model.RecommendBuy || sum.Signal.Confidence != "2/3" {
		t.Errorf("signal: got %s %s, want BUY 2/3", sum.Signal.Recommendation, sum.Signal.Confidence)
	}
}

// 10 bars: far below every long window. Nothing errors; long windows
// degrade to Undetermined and no votes are cast.
func TestAnalyze_ShortSeriesDegrades(t *testing.T) {
	sum, err := Analyze(barsFromCloses("SHORT", walkCloses(10, 9)))
	if err != nil {
		t.Fatal(err)
	}
	if model.IsDefined(sum.Trend.SMA200) {
		t.Errorf("SMA200 should be undefined on 10 bars, got %.2f", sum.Trend.SMA200)
	}
	if sum.Trend.LongTerm != model.LongTrendUndetermined {
		t.Errorf("long-term: got %s, want %s", sum.Trend.LongTerm, model.LongTrendUndetermined)
	}
	if sum.Trend.ShortTerm != model.TrendUndetermined {
		t.Errorf("short-term: got %s, want %s", sum.Trend.ShortTerm, model.TrendUndetermined)
	}
	if sum.Momentum.MACDTrend != model.MACDUndetermined {
		t.Errorf("MACD: got %s, want %s", sum.Momentum.MACDTrend, model.MACDUndetermined)
	}
	if sum.Signal.Recommendation != model.RecommendHold || sum.Signal.Confidence != "0/3" {
		t.Errorf("signal: got %s %s, want HOLD 0/3", sum.Signal.Recommendation, sum.Signal.Confidence)
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	s := barsFromCloses("IDEM", walkCloses(250, 21))
	first, err := Analyze(s)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Analyze(s)
	if err != nil {
		t.Fatal(err)
	}
	// reflect.DeepEqual cannot compare columns holding NaN markers, so
	// compare the rendered values instead; bit-identical results render
	// identically.
	a, b := *first, *second
	a.Indicators, b.Indicators = nil, nil
	if fmt.Sprintf("%#v", a) != fmt.Sprintf("%#v", b) {
		t.Error("two analyses of the same series produced different summaries")
	}
	if fmt.Sprintf("%#v", *first.Indicators) != fmt.Sprintf("%#v", *second.Indicators) {
		t.Error("two analyses of the same series produced different indicator sets")
	}
}

func TestAnalyze_DoesNotMutateInput(t *testing.T) {
	s := barsFromCloses("RO", walkCloses(60, 13))
	before := make([]model.Bar, len(s.Bars))
	copy(before, s.Bars)
	if _, err := Analyze(s); err != nil {
		t.Fatal(err)
	}
	for i := range before {
		if before[i] != s.Bars[i] {
			t.Fatalf("bar %d mutated during analysis", i)
		}
	}
}

func TestAnalyze_LatestBar(t *testing.T) {
	s := barsFromCloses("LAST", flatCloses(30, 100))
	sum, err := Analyze(s)
	if err != nil {
		t.Fatal(err)
	}
	wantTime := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 29)
	if !sum.Latest.Time.Equal(wantTime) {
		t.Errorf("latest bar time: got %s, want %s", sum.Latest.Time, wantTime)
	}
}
