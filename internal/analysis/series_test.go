package analysis

import (
	"math/rand"
	"time"

	"StockScope/internal/model"
)

// barsFromCloses builds a valid daily series around the given closes,
// with a fixed 2-point high/low band and flat volume.
func barsFromCloses(symbol string, closes []float64) model.Series {
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	bars := make([]model.Bar, len(closes))
	for i, c := range closes {
		bars[i] = model.Bar{
			Time:   start.AddDate(0, 0, i),
			Open:   c,
			High:   c + 1,
			Low:    c - 1,
			Close:  c,
			Volume: 1_000_000,
		}
	}
	return model.Series{Symbol: symbol, Bars: bars}
}

func flatCloses(n int, price float64) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = price
	}
	return closes
}

func trendingCloses(n int, start, step float64) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = start + float64(i)*step
	}
	return closes
}

// walkCloses generates a reproducible pseudo-random walk that stays
// comfortably positive.
func walkCloses(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	closes := make([]float64, n)
	price := 100.0
	for i := range closes {
		price += rng.Float64()*4 - 2
		if price < 20 {
			price = 20
		}
		closes[i] = price
	}
	return closes
}
