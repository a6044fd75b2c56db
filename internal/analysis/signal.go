package analysis

import (
	"fmt"

	"StockScope/internal/model"
)

// GenerateSignal casts the three-vote recommendation from the category
// snapshots:
//
//  1. short-term trend: up votes buy, down votes sell, sideways abstains
//  2. RSI: oversold votes buy, overbought votes sell, neutral abstains
//  3. MACD: bullish votes buy, bearish votes sell (never abstains while
//     defined; an equality tie is bearish)
//
// Undetermined categories cast no vote, so a short series degrades to
// HOLD instead of failing. Confidence is the winning vote count out of
// three.
func GenerateSignal(trend model.TrendSnapshot, momentum model.MomentumSnapshot, volatility model.VolatilitySnapshot) model.SignalResult {
	buy, sell := 0, 0

	switch trend.ShortTerm {
	case model.TrendUp:
		buy++
	case model.TrendDown:
		sell++
	}

	switch momentum.RSISignal {
	case model.OscOversold:
		buy++
	case model.OscOverbought:
		sell++
	}

	switch momentum.MACDTrend {
	case model.MACDBullish:
		buy++
	case model.MACDBearish:
		sell++
	}

	rec := model.RecommendHold
	if buy > sell {
		rec = model.RecommendBuy
	} else if sell > buy {
		rec = model.RecommendSell
	}

	return model.SignalResult{
		Recommendation: rec,
		Confidence:     fmt.Sprintf("%d/3", max(buy, sell)),
		BuyVotes:       buy,
		SellVotes:      sell,
		Trend:          trend.ShortTerm,
		RSISignal:      momentum.RSISignal,
		MACDTrend:      momentum.MACDTrend,
		BandPosition:   volatility.BandPosition,
	}
}
