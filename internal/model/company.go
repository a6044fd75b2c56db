package model

// CompanyInfo holds static metadata about the company behind a ticker.
// Numeric fields are pointers because the upstream provider omits them
// for many instruments (ETFs, indices); nil means "not reported".
type CompanyInfo struct {
	Symbol   string
	Name     string
	Sector   string
	Industry string

	MarketCap     *float64
	PERatio       *float64
	ForwardPE     *float64
	DividendYield *float64
	Beta          *float64
	High52Week    *float64
	Low52Week     *float64
	CurrentPrice  *float64
	TargetPrice   *float64

	Recommendation string // analyst consensus key, e.g. "buy", "hold"
}
