package collector

import (
	"time"

	"StockScope/internal/model"
)

// MockFetcher returns controllable fixed data for development and
// testing.
type MockFetcher struct {
	Series model.Series
	Info   *model.CompanyInfo
	Err    error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchHistory(symbol, _ string) (model.Series, error) {
	if m.Err != nil {
		return model.Series{}, m.Err
	}
	if m.Series.Bars != nil {
		s := m.Series
		s.Symbol = symbol
		return s, nil
	}
	return GenerateBars(symbol, 100.0, 260), nil
}

func (m *MockFetcher) FetchCompanyInfo(symbol string) (*model.CompanyInfo, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Info != nil {
		return m.Info, nil
	}
	return &model.CompanyInfo{Symbol: symbol, Name: symbol + " Inc."}, nil
}

// GenerateBars builds a deterministic synthetic series drifting gently
// around the base price.
func GenerateBars(symbol string, basePrice float64, count int) model.Series {
	bars := make([]model.Bar, count)
	start := time.Now().UTC().AddDate(0, 0, -count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Bar{
			Time:   start.AddDate(0, 0, i),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1_000_000,
		}
	}
	return model.Series{Symbol: symbol, Bars: bars}
}
