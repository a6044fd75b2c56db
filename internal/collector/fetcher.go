package collector

import "StockScope/internal/model"

// Fetcher defines the interface for fetching market data and company
// metadata for a ticker.
type Fetcher interface {
	// FetchHistory returns daily bars for the given lookback period
	// (Yahoo-style period strings: 1mo, 3mo, 6mo, 1y, 2y, 5y, 10y,
	// ytd, max), sorted by time ascending.
	FetchHistory(symbol, period string) (model.Series, error)
	// FetchCompanyInfo returns static company metadata. Missing fields
	// are nil, not an error.
	FetchCompanyInfo(symbol string) (*model.CompanyInfo, error)
	Name() string
}

// ValidPeriods lists the accepted lookback period strings.
var ValidPeriods = map[string]bool{
	"1mo": true, "3mo": true, "6mo": true,
	"1y": true, "2y": true, "5y": true, "10y": true,
	"ytd": true, "max": true,
}
