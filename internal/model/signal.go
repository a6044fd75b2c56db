package model

// TrendLabel classifies the short-term price trend from moving-average
// alignment.
type TrendLabel string

const (
	TrendUp           TrendLabel = "UPTREND"
	TrendDown         TrendLabel = "DOWNTREND"
	TrendSideways     TrendLabel = "SIDEWAYS"
	TrendUndetermined TrendLabel = "UNDETERMINED"
)

// LongTrendLabel classifies the long-term trend from the SMA50/SMA200
// cross.
type LongTrendLabel string

const (
	LongTrendGoldenCross  LongTrendLabel = "GOLDEN_CROSS_UPTREND"
	LongTrendDeathCross   LongTrendLabel = "DEATH_CROSS_DOWNTREND"
	LongTrendNeutral      LongTrendLabel = "NEUTRAL"
	LongTrendUndetermined LongTrendLabel = "UNDETERMINED"
)

// OscillatorLabel classifies a bounded oscillator reading (RSI,
// Stochastic %K) against its overbought/oversold thresholds.
type OscillatorLabel string

const (
	OscOverbought   OscillatorLabel = "OVERBOUGHT"
	OscOversold     OscillatorLabel = "OVERSOLD"
	OscNeutral      OscillatorLabel = "NEUTRAL"
	OscUndetermined OscillatorLabel = "UNDETERMINED"
)

// MACDLabel classifies the MACD line against its signal line. There is
// no neutral state: equality counts as Bearish, matching the
// strict-greater bullish rule.
type MACDLabel string

const (
	MACDBullish      MACDLabel = "BULLISH"
	MACDBearish      MACDLabel = "BEARISH"
	MACDUndetermined MACDLabel = "UNDETERMINED"
)

// BandLabel classifies the close relative to the Bollinger envelope.
type BandLabel string

const (
	BandAboveUpper   BandLabel = "ABOVE_UPPER_BAND"
	BandBelowLower   BandLabel = "BELOW_LOWER_BAND"
	BandWithin       BandLabel = "WITHIN_BANDS"
	BandUndetermined BandLabel = "UNDETERMINED"
)

// Recommendation is the final trading recommendation.
type Recommendation string

const (
	RecommendBuy  Recommendation = "BUY"
	RecommendSell Recommendation = "SELL"
	RecommendHold Recommendation = "HOLD"
)

// SignalResult is the outcome of the three-vote signal generator,
// including the raw per-category labels that fed the vote.
type SignalResult struct {
	Recommendation Recommendation
	Confidence     string // "k/3" with k = max(BuyVotes, SellVotes)
	BuyVotes       int
	SellVotes      int

	Trend        TrendLabel
	RSISignal    OscillatorLabel
	MACDTrend    MACDLabel
	BandPosition BandLabel
}
