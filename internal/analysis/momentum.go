package analysis

import "StockScope/internal/model"

// Momentum classification thresholds.
const (
	RSIOverbought = 70.0
	RSIOversold   = 30.0

	StochOverbought = 80.0
	StochOversold   = 20.0
)

// AnalyzeMomentum classifies the latest oscillator readings. The MACD
// comparison deliberately has no neutral state: equality with the
// signal line counts as Bearish, matching the strict-greater bullish
// rule.
func AnalyzeMomentum(ind *model.IndicatorSet) model.MomentumSnapshot {
	last := ind.Len() - 1
	snap := model.MomentumSnapshot{
		RSI:        ind.RSI[last],
		MACD:       ind.MACD[last],
		MACDSignal: ind.MACDSignal[last],
		StochK:     ind.StochK[last],
		StochD:     ind.StochD[last],
	}

	switch {
	case !model.IsDefined(snap.RSI):
		snap.RSISignal = model.OscUndetermined
	case snap.RSI > RSIOverbought:
		snap.RSISignal = model.OscOverbought
	case snap.RSI < RSIOversold:
		snap.RSISignal = model.OscOversold
	default:
		snap.RSISignal = model.OscNeutral
	}

	switch {
	case !model.IsDefined(snap.MACD) || !model.IsDefined(snap.MACDSignal):
		snap.MACDTrend = model.MACDUndetermined
	case snap.MACD > snap.MACDSignal:
		snap.MACDTrend = model.MACDBullish
	default:
		snap.MACDTrend = model.MACDBearish
	}

	switch {
	case !model.IsDefined(snap.StochK):
		snap.StochSignal = model.OscUndetermined
	case snap.StochK > StochOverbought:
		snap.StochSignal = model.OscOverbought
	case snap.StochK < StochOversold:
		snap.StochSignal = model.OscOversold
	default:
		snap.StochSignal = model.OscNeutral
	}

	return snap
}
