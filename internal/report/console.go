package report

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"StockScope/internal/model"
)

// fmtNum renders an indicator value, using "n/a" for undefined
// warm-up readings.
func fmtNum(v float64, decimals int) string {
	if !model.IsDefined(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.*f", decimals, v)
}

func fmtOpt(v *float64, decimals int) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.*f", decimals, *v)
}

// FormatCompanyInfo renders company metadata as a short section.
func FormatCompanyInfo(info *model.CompanyInfo) string {
	if info == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Company: %s\n", info.Name))
	if info.Sector != "" {
		b.WriteString(fmt.Sprintf("  Sector: %s | Industry: %s\n", info.Sector, info.Industry))
	}
	if info.MarketCap != nil {
		b.WriteString(fmt.Sprintf("  Market cap: $%s\n", humanizeCap(*info.MarketCap)))
	}
	b.WriteString(fmt.Sprintf("  P/E: %s | Dividend yield: %s | Beta: %s\n",
		fmtOpt(info.PERatio, 2), fmtOpt(info.DividendYield, 4), fmtOpt(info.Beta, 2)))
	if info.TargetPrice != nil {
		b.WriteString(fmt.Sprintf("  Analyst target: $%.2f (%s)\n", *info.TargetPrice, info.Recommendation))
	}
	return b.String()
}

func humanizeCap(v float64) string {
	switch {
	case v >= 1e12:
		return fmt.Sprintf("%.2fT", v/1e12)
	case v >= 1e9:
		return fmt.Sprintf("%.2fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.2fM", v/1e6)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

// FormatSummary renders the full analysis result for one ticker.
func FormatSummary(sum *model.AnalysisSummary) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("=== %s | %s ===\n\n", sum.Symbol, sum.Latest.Time.Format("2006-01-02")))

	tr := sum.Trend
	b.WriteString("TREND\n")
	b.WriteString(fmt.Sprintf("  Price: $%.2f\n", tr.CurrentPrice))
	b.WriteString(fmt.Sprintf("  SMA20: %s | SMA50: %s | SMA200: %s\n",
		fmtNum(tr.SMA20, 2), fmtNum(tr.SMA50, 2), fmtNum(tr.SMA200, 2)))
	b.WriteString(fmt.Sprintf("  Short-term: %s | Long-term: %s\n\n", tr.ShortTerm, tr.LongTerm))

	mo := sum.Momentum
	b.WriteString("MOMENTUM\n")
	b.WriteString(fmt.Sprintf("  RSI(14): %s (%s)\n", fmtNum(mo.RSI, 2), mo.RSISignal))
	b.WriteString(fmt.Sprintf("  MACD: %s vs signal %s (%s)\n",
		fmtNum(mo.MACD, 4), fmtNum(mo.MACDSignal, 4), mo.MACDTrend))
	b.WriteString(fmt.Sprintf("  Stochastic %%K: %s (%s)\n\n", fmtNum(mo.StochK, 2), mo.StochSignal))

	vo := sum.Volatility
	b.WriteString("VOLATILITY\n")
	b.WriteString(fmt.Sprintf("  Historical volatility: %s%%\n", fmtNum(vo.HistVolatility, 2)))
	b.WriteString(fmt.Sprintf("  ATR(14): %s\n", fmtNum(vo.ATR, 2)))
	b.WriteString(fmt.Sprintf("  Bollinger: %s [%s .. %s] (%s)\n\n",
		fmtNum(vo.BBMiddle, 2), fmtNum(vo.BBLower, 2), fmtNum(vo.BBUpper, 2), vo.BandPosition))

	sig := sum.Signal
	b.WriteString("SIGNAL\n")
	b.WriteString(fmt.Sprintf("  Recommendation: %s (confidence %s, %d buy / %d sell)\n",
		sig.Recommendation, sig.Confidence, sig.BuyVotes, sig.SellVotes))

	return b.String()
}

// SummaryTable renders the multi-ticker overview table.
func SummaryTable(summaries []*model.AnalysisSummary) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Ticker", "Price", "Trend", "RSI", "Recommendation", "Confidence"})
	for _, sum := range summaries {
		if sum == nil {
			continue
		}
		t.AppendRow(table.Row{
			sum.Symbol,
			fmt.Sprintf("$%.2f", sum.Latest.Close),
			string(sum.Trend.ShortTerm),
			fmtNum(sum.Momentum.RSI, 2),
			string(sum.Signal.Recommendation),
			sum.Signal.Confidence,
		})
	}
	return t.Render()
}

// SheetRows converts summaries to the tabular form written back to the
// spreadsheet, header row included.
func SheetRows(summaries []*model.AnalysisSummary) [][]any {
	rows := [][]any{
		{"Ticker", "Price", "Trend", "RSI", "Recommendation", "Confidence"},
	}
	for _, sum := range summaries {
		if sum == nil {
			continue
		}
		rows = append(rows, []any{
			sum.Symbol,
			fmt.Sprintf("$%.2f", sum.Latest.Close),
			string(sum.Trend.ShortTerm),
			fmtNum(sum.Momentum.RSI, 2),
			string(sum.Signal.Recommendation),
			sum.Signal.Confidence,
		})
	}
	return rows
}
