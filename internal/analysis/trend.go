package analysis

import "StockScope/internal/model"

// AnalyzeTrend classifies the short- and long-term trend from the
// latest moving averages. Ties fall to the neutral branch; any
// undefined input makes the corresponding classification Undetermined
// rather than a guess.
func AnalyzeTrend(ind *model.IndicatorSet, latest model.Bar) model.TrendSnapshot {
	last := ind.Len() - 1
	snap := model.TrendSnapshot{
		CurrentPrice: latest.Close,
		SMA20:        ind.SMA20[last],
		SMA50:        ind.SMA50[last],
		SMA200:       ind.SMA200[last],
	}

	switch {
	case !model.IsDefined(snap.SMA20) || !model.IsDefined(snap.SMA50):
		snap.ShortTerm = model.TrendUndetermined
	case snap.CurrentPrice > snap.SMA20 && snap.SMA20 > snap.SMA50:
		snap.ShortTerm = model.TrendUp
	case snap.CurrentPrice < snap.SMA20 && snap.SMA20 < snap.SMA50:
		snap.ShortTerm = model.TrendDown
	default:
		snap.ShortTerm = model.TrendSideways
	}

	switch {
	case !model.IsDefined(snap.SMA50) || !model.IsDefined(snap.SMA200):
		snap.LongTerm = model.LongTrendUndetermined
	case snap.SMA50 > snap.SMA200:
		snap.LongTerm = model.LongTrendGoldenCross
	case snap.SMA50 < snap.SMA200:
		snap.LongTerm = model.LongTrendDeathCross
	default:
		snap.LongTerm = model.LongTrendNeutral
	}

	return snap
}
