package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"StockScope/internal/model"
)

// YahooFetcher implements Fetcher using the Yahoo Finance public API.
type YahooFetcher struct {
	Client *http.Client
}

// NewYahooFetcher creates a new Yahoo Finance fetcher, optionally
// routed through an HTTP proxy.
func NewYahooFetcher(proxyURL string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooFetcher{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// yahooChart is the response structure from the Yahoo Finance chart API.
// Price fields arrive as nullable numbers; nulls mark holiday gaps.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func (f *YahooFetcher) getJSON(u string, out any) error {
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("yahoo decode: %w", err)
	}
	return nil
}

// FetchHistory retrieves daily OHLCV bars for the given period. Bars
// with null prices (holidays, halts) are skipped; structurally invalid
// bars fail the fetch rather than entering the analysis engine.
func (f *YahooFetcher) FetchHistory(symbol, period string) (model.Series, error) {
	if !ValidPeriods[period] {
		return model.Series{}, fmt.Errorf("invalid period %q", period)
	}
	u := fmt.Sprintf("https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=1d&range=%s",
		url.PathEscape(symbol), period)

	var chart yahooChart
	if err := f.getJSON(u, &chart); err != nil {
		return model.Series{}, err
	}
	if chart.Chart.Error != nil {
		return model.Series{}, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return model.Series{}, fmt.Errorf("yahoo: no data returned for %s", symbol)
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return model.Series{}, fmt.Errorf("yahoo: no quote data for %s", symbol)
	}
	quote := result.Indicators.Quote[0]
	bars := make([]model.Bar, 0, len(result.Timestamp))

	at := func(col []*float64, i int) float64 {
		if i >= len(col) {
			return 0
		}
		return deref(col[i])
	}
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) || quote.Close[i] == nil {
			continue // null bar (holiday etc.)
		}
		bar := model.Bar{
			Time:   time.Unix(ts, 0).UTC(),
			Open:   at(quote.Open, i),
			High:   at(quote.High, i),
			Low:    at(quote.Low, i),
			Close:  *quote.Close[i],
			Volume: at(quote.Volume, i),
		}
		if err := bar.Validate(); err != nil {
			return model.Series{}, fmt.Errorf("yahoo: %s: %w", symbol, err)
		}
		bars = append(bars, bar)
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })

	return model.Series{Symbol: symbol, Bars: bars}, nil
}

// yahooQuoteSummary is the response structure from the quoteSummary API.
// Every numeric field is wrapped in a {raw, fmt} object and may be
// absent entirely.
type yahooQuoteSummary struct {
	QuoteSummary struct {
		Result []struct {
			AssetProfile *struct {
				Sector   string `json:"sector"`
				Industry string `json:"industry"`
			} `json:"assetProfile"`
			Price *struct {
				LongName           string      `json:"longName"`
				ShortName          string      `json:"shortName"`
				RegularMarketPrice yahooNumber `json:"regularMarketPrice"`
				MarketCap          yahooNumber `json:"marketCap"`
			} `json:"price"`
			SummaryDetail *struct {
				TrailingPE       yahooNumber `json:"trailingPE"`
				ForwardPE        yahooNumber `json:"forwardPE"`
				DividendYield    yahooNumber `json:"dividendYield"`
				Beta             yahooNumber `json:"beta"`
				FiftyTwoWeekHigh yahooNumber `json:"fiftyTwoWeekHigh"`
				FiftyTwoWeekLow  yahooNumber `json:"fiftyTwoWeekLow"`
			} `json:"summaryDetail"`
			FinancialData *struct {
				TargetMeanPrice   yahooNumber `json:"targetMeanPrice"`
				RecommendationKey string      `json:"recommendationKey"`
			} `json:"financialData"`
		} `json:"result"`
		Error *struct {
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

type yahooNumber struct {
	Raw *float64 `json:"raw"`
}

// FetchCompanyInfo retrieves static company metadata. Fields the
// provider does not report stay nil.
func (f *YahooFetcher) FetchCompanyInfo(symbol string) (*model.CompanyInfo, error) {
	u := fmt.Sprintf("https://query1.finance.yahoo.com/v10/finance/quoteSummary/%s?modules=assetProfile,price,summaryDetail,financialData",
		url.PathEscape(symbol))

	var qs yahooQuoteSummary
	if err := f.getJSON(u, &qs); err != nil {
		return nil, err
	}
	if qs.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", qs.QuoteSummary.Error.Description)
	}
	if len(qs.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("yahoo: no company info for %s", symbol)
	}

	r := qs.QuoteSummary.Result[0]
	info := &model.CompanyInfo{Symbol: symbol}
	if r.AssetProfile != nil {
		info.Sector = r.AssetProfile.Sector
		info.Industry = r.AssetProfile.Industry
	}
	if r.Price != nil {
		info.Name = r.Price.LongName
		if info.Name == "" {
			info.Name = r.Price.ShortName
		}
		info.CurrentPrice = r.Price.RegularMarketPrice.Raw
		info.MarketCap = r.Price.MarketCap.Raw
	}
	if r.SummaryDetail != nil {
		info.PERatio = r.SummaryDetail.TrailingPE.Raw
		info.ForwardPE = r.SummaryDetail.ForwardPE.Raw
		info.DividendYield = r.SummaryDetail.DividendYield.Raw
		info.Beta = r.SummaryDetail.Beta.Raw
		info.High52Week = r.SummaryDetail.FiftyTwoWeekHigh.Raw
		info.Low52Week = r.SummaryDetail.FiftyTwoWeekLow.Raw
	}
	if r.FinancialData != nil {
		info.TargetPrice = r.FinancialData.TargetMeanPrice.Raw
		info.Recommendation = r.FinancialData.RecommendationKey
	}
	return info, nil
}
