package visualizer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"StockScope/internal/model"
)

// Visualizer renders analysis results as self-contained HTML chart
// pages under the output directory.
type Visualizer struct {
	OutputDir string
}

func New(outputDir string) *Visualizer {
	return &Visualizer{OutputDir: outputDir}
}

// lineData converts an indicator column to chart points, mapping
// undefined warm-up values to gaps instead of NaN (which would break
// the rendered JSON).
func lineData(col []float64) []opts.LineData {
	items := make([]opts.LineData, len(col))
	for i, v := range col {
		if model.IsDefined(v) {
			items[i] = opts.LineData{Value: v}
		} else {
			items[i] = opts.LineData{Value: nil}
		}
	}
	return items
}

func overlayLine(x []string, name string, col []float64) *charts.Line {
	line := charts.NewLine()
	line.SetXAxis(x).AddSeries(name, lineData(col))
	return line
}

// RenderAnalysis writes the full chart page for one analyzed series:
// candlestick with moving-average overlays, volume, RSI, and MACD
// panels.
func (v *Visualizer) RenderAnalysis(s model.Series, sum *model.AnalysisSummary) (string, error) {
	if err := os.MkdirAll(v.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("create chart dir: %w", err)
	}

	x := make([]string, s.Len())
	klineItems := make([]opts.KlineData, s.Len())
	volumeItems := make([]opts.BarData, s.Len())
	for i, b := range s.Bars {
		x[i] = b.Time.Format("2006-01-02")
		klineItems[i] = opts.KlineData{Value: [4]float64{b.Open, b.Close, b.Low, b.High}}
		volumeItems[i] = opts.BarData{Value: b.Volume}
	}

	kline := charts.NewKLine()
	kline.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: s.Symbol + " price & moving averages"}),
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "500px"}),
	)
	kline.SetXAxis(x).AddSeries("OHLC", klineItems)
	ind := sum.Indicators
	kline.Overlap(
		overlayLine(x, "SMA 20", ind.SMA20),
		overlayLine(x, "SMA 50", ind.SMA50),
		overlayLine(x, "SMA 200", ind.SMA200),
		overlayLine(x, "BB upper", ind.BBUpper),
		overlayLine(x, "BB lower", ind.BBLower),
	)

	volume := charts.NewBar()
	volume.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: s.Symbol + " volume"}),
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "220px"}),
	)
	volume.SetXAxis(x).AddSeries("Volume", volumeItems)

	rsi := charts.NewLine()
	rsi.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: s.Symbol + " RSI(14)"}),
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "260px"}),
	)
	rsi.SetXAxis(x).AddSeries("RSI", lineData(ind.RSI))

	macd := charts.NewLine()
	macd.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: s.Symbol + " MACD(12,26,9)"}),
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "260px"}),
	)
	macd.SetXAxis(x).
		AddSeries("MACD", lineData(ind.MACD)).
		AddSeries("Signal", lineData(ind.MACDSignal)).
		AddSeries("Histogram", lineData(ind.MACDHist))

	page := components.NewPage()
	page.AddCharts(kline, volume, rsi, macd)

	path := filepath.Join(v.OutputDir, fmt.Sprintf("%s_analysis.html", s.Symbol))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		return "", fmt.Errorf("render charts: %w", err)
	}
	return path, nil
}

// RenderComparison writes a single chart of normalized closes (first
// defined close = 100) for several tickers.
func (v *Visualizer) RenderComparison(series []model.Series) (string, error) {
	if len(series) < 2 {
		return "", fmt.Errorf("comparison needs at least two series, got %d", len(series))
	}
	if err := os.MkdirAll(v.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("create chart dir: %w", err)
	}

	// Use the longest series for the shared date axis; shorter series
	// get leading gaps.
	longest := 0
	for _, s := range series {
		if s.Len() > longest {
			longest = s.Len()
		}
	}
	axisSrc := series[0]
	for _, s := range series {
		if s.Len() == longest {
			axisSrc = s
			break
		}
	}
	x := make([]string, longest)
	for i, b := range axisSrc.Bars {
		x[i] = b.Time.Format("2006-01-02")
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Normalized close comparison (start = 100)"}),
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "500px"}),
	)
	line.SetXAxis(x)
	for _, s := range series {
		items := make([]opts.LineData, longest)
		pad := longest - s.Len()
		for i := 0; i < pad; i++ {
			items[i] = opts.LineData{Value: nil}
		}
		if s.Len() > 0 {
			base := s.Bars[0].Close
			for i, b := range s.Bars {
				items[pad+i] = opts.LineData{Value: b.Close / base * 100}
			}
		}
		line.AddSeries(s.Symbol, items)
	}

	path := filepath.Join(v.OutputDir, "comparison.html")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()
	if err := line.Render(f); err != nil {
		return "", fmt.Errorf("render comparison: %w", err)
	}
	return path, nil
}
