// Package runner orchestrates the fetch, analyze, record, and chart
// steps for one or more tickers.
package runner

import (
	"context"
	"fmt"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"StockScope/internal/analysis"
	"StockScope/internal/collector"
	"StockScope/internal/model"
	"StockScope/internal/recorder"
	"StockScope/internal/visualizer"
)

// Result bundles everything produced for one ticker.
type Result struct {
	Symbol    string
	Series    model.Series
	Summary   *model.AnalysisSummary
	Info      *model.CompanyInfo
	ChartPath string
	Err       error
}

// Runner runs the analysis pipeline.
type Runner struct {
	fetcher     collector.Fetcher
	recorder    recorder.Recorder
	visualizer  *visualizer.Visualizer
	period      string
	concurrency int
}

func New(f collector.Fetcher, r recorder.Recorder, v *visualizer.Visualizer, period string, concurrency int) *Runner {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Runner{fetcher: f, recorder: r, visualizer: v, period: period, concurrency: concurrency}
}

// AnalyzeSymbol runs the full pipeline for one ticker.
func (r *Runner) AnalyzeSymbol(symbol string) Result {
	res := Result{Symbol: symbol}

	series, err := r.fetcher.FetchHistory(symbol, r.period)
	if err != nil {
		res.Err = fmt.Errorf("fetch %s: %w", symbol, err)
		return res
	}
	res.Series = series

	sum, err := analysis.Analyze(series)
	if err != nil {
		res.Err = fmt.Errorf("analyze %s: %w", symbol, err)
		return res
	}
	res.Summary = sum

	// Company metadata is best-effort; a failed lookup does not fail
	// the run.
	if info, err := r.fetcher.FetchCompanyInfo(symbol); err != nil {
		log.Printf("[WARN] company info for %s: %v", symbol, err)
	} else {
		res.Info = info
	}

	if err := r.recorder.RecordSummary(sum); err != nil {
		log.Printf("[WARN] record %s: %v", symbol, err)
	}

	if r.visualizer != nil {
		path, err := r.visualizer.RenderAnalysis(series, sum)
		if err != nil {
			log.Printf("[WARN] chart %s: %v", symbol, err)
		} else {
			res.ChartPath = path
		}
	}

	return res
}

// AnalyzeAll analyzes the given tickers concurrently, preserving input
// order in the result slice. Per-ticker failures are recorded in the
// Result, not returned; only context cancellation aborts the batch.
func (r *Runner) AnalyzeAll(ctx context.Context, symbols []string) ([]Result, error) {
	results := make([]Result, len(symbols))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, symbol := range symbols {
		i, symbol := i, symbol
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res := r.AnalyzeSymbol(symbol)
			if res.Err != nil {
				log.Printf("[ERROR] %v", res.Err)
			}
			mu.Lock()
			results[i] = res
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Summaries extracts the successful summaries from a batch, in order.
func Summaries(results []Result) []*model.AnalysisSummary {
	out := make([]*model.AnalysisSummary, 0, len(results))
	for _, res := range results {
		if res.Err == nil && res.Summary != nil {
			out = append(out, res.Summary)
		}
	}
	return out
}
