package model

// TrendSnapshot captures the latest trend indicator values and their
// classification. Scalar fields hold Undefined() when the underlying
// indicator has not warmed up.
type TrendSnapshot struct {
	CurrentPrice float64
	SMA20        float64
	SMA50        float64
	SMA200       float64
	ShortTerm    TrendLabel
	LongTerm     LongTrendLabel
}

// MomentumSnapshot captures the latest momentum readings and their
// classifications.
type MomentumSnapshot struct {
	RSI         float64
	MACD        float64
	MACDSignal  float64
	StochK      float64
	StochD      float64
	RSISignal   OscillatorLabel
	MACDTrend   MACDLabel
	StochSignal OscillatorLabel
}

// VolatilitySnapshot captures the latest volatility readings and the
// Bollinger band position.
type VolatilitySnapshot struct {
	CurrentPrice   float64
	BBUpper        float64
	BBMiddle       float64
	BBLower        float64
	ATR            float64
	HistVolatility float64 // annualized, percent
	BandPosition   BandLabel
}

// AnalysisSummary is the composite result of one analysis invocation:
// the three category snapshots, the voted signal, the latest bar, and
// the full indicator set. It is created once per invocation and never
// mutated afterwards.
type AnalysisSummary struct {
	Symbol     string
	Latest     Bar
	Trend      TrendSnapshot
	Momentum   MomentumSnapshot
	Volatility VolatilitySnapshot
	Signal     SignalResult
	Indicators *IndicatorSet
}
