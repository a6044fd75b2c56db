// Package analysis is the indicator and signal engine: it turns a raw
// OHLCV series into trend, momentum, and volatility indicators and
// derives a rule-based trading recommendation from them. Every entry
// point is a pure function of its input; concurrent invocations over
// distinct series need no synchronization.
package analysis

import "StockScope/internal/model"

// Analyze runs the full pipeline over one series: validation, the
// indicator engine, the three category analyzers, and the signal vote.
// Only validation can fail; everything else degrades through
// Undetermined classifications. The result is freshly allocated and
// deterministic for identical input.
func Analyze(s model.Series) (*model.AnalysisSummary, error) {
	if err := ValidateSeries(s); err != nil {
		return nil, err
	}

	ind := ComputeIndicators(s)
	latest, _ := s.Latest()

	trend := AnalyzeTrend(ind, latest)
	momentum := AnalyzeMomentum(ind)
	volatility := AnalyzeVolatility(ind, latest)

	return &model.AnalysisSummary{
		Symbol:     s.Symbol,
		Latest:     latest,
		Trend:      trend,
		Momentum:   momentum,
		Volatility: volatility,
		Signal:     GenerateSignal(trend, momentum, volatility),
		Indicators: ind,
	}, nil
}
