package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"StockScope/internal/collector"
	"StockScope/internal/config"
	"StockScope/internal/model"
	"StockScope/internal/recorder"
	"StockScope/internal/report"
	"StockScope/internal/runner"
	"StockScope/internal/scheduler"
	"StockScope/internal/sheets"
	"StockScope/internal/visualizer"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	var (
		tickerFlag  = flag.String("ticker", "", "analyze a single ticker symbol")
		tickersFlag = flag.String("tickers", "", "comma-separated list of ticker symbols")
		sheetFlag   = flag.Bool("sheet", false, "read the watchlist from Google Sheets and write results back")
		periodFlag  = flag.String("period", "", "lookback period (1mo, 3mo, 6mo, 1y, 2y, 5y, 10y, ytd, max)")
		configFlag  = flag.String("config", "", "config file path")
		noCharts    = flag.Bool("no-charts", false, "skip chart generation")
		watchFlag   = flag.Bool("watch", false, "keep running and re-analyze on the configured cron schedule")
	)
	flag.Parse()

	log.Println("[INFO] StockScope starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	if *configFlag != "" {
		cfgPath = *configFlag
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if *periodFlag != "" {
		cfg.DataSource.Period = *periodFlag
	}
	if *noCharts {
		cfg.Charts.Disabled = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Resolve the watchlist
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var sheetClient *sheets.Client
	var tickers []string
	switch {
	case *tickerFlag != "":
		tickers = []string{strings.ToUpper(strings.TrimSpace(*tickerFlag))}
	case *tickersFlag != "":
		for _, t := range strings.Split(*tickersFlag, ",") {
			if t = strings.ToUpper(strings.TrimSpace(t)); t != "" {
				tickers = append(tickers, t)
			}
		}
	case *sheetFlag:
		if cfg.Sheets.SpreadsheetID == "" {
			log.Fatal("[FATAL] -sheet requires sheets.spreadsheet_id (or SPREADSHEET_ID)")
		}
		sheetClient, err = sheets.NewClient(ctx, cfg.Sheets.CredentialsFile, cfg.Sheets.SpreadsheetID, cfg.Sheets.ResultsSheet)
		if err != nil {
			log.Fatalf("[FATAL] init sheets client: %v", err)
		}
		tickers, err = sheetClient.ReadTickers(ctx)
		if err != nil {
			log.Fatalf("[FATAL] read watchlist: %v", err)
		}
		log.Printf("[INFO] watchlist from spreadsheet: %v", tickers)
	default:
		fmt.Fprintln(os.Stderr, "usage: stockscope -ticker AAPL | -tickers AAPL,MSFT | -sheet")
		flag.PrintDefaults()
		os.Exit(2)
	}

	// Init fetcher
	fetcher := collector.NewYahooFetcher(cfg.Proxy)
	log.Printf("[INFO] data source: %s, period: %s", fetcher.Name(), cfg.DataSource.Period)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Init visualizer
	var viz *visualizer.Visualizer
	if !cfg.Charts.Disabled {
		viz = visualizer.New(cfg.Charts.OutputDir)
	}

	run := runner.New(fetcher, rec, viz, cfg.DataSource.Period, cfg.Concurrency)

	task := func() {
		results, err := run.AnalyzeAll(ctx, tickers)
		if err != nil {
			log.Printf("[ERROR] analysis batch aborted: %v", err)
			return
		}

		for _, res := range results {
			if res.Err != nil {
				continue
			}
			if info := report.FormatCompanyInfo(res.Info); info != "" {
				fmt.Println(info)
			}
			fmt.Println(report.FormatSummary(res.Summary))
			if res.ChartPath != "" {
				log.Printf("[INFO] chart written: %s", res.ChartPath)
			}
		}

		sums := runner.Summaries(results)
		if len(sums) > 1 {
			fmt.Println(report.SummaryTable(sums))
		}

		if viz != nil {
			var seriesList []model.Series
			for _, res := range results {
				if res.Err == nil {
					seriesList = append(seriesList, res.Series)
				}
			}
			if len(seriesList) > 1 {
				if path, err := viz.RenderComparison(seriesList); err != nil {
					log.Printf("[WARN] comparison chart: %v", err)
				} else {
					log.Printf("[INFO] comparison chart written: %s", path)
				}
			}
		}

		if sheetClient != nil && len(sums) > 0 {
			if err := sheetClient.WriteResults(ctx, report.SheetRows(sums)); err != nil {
				log.Printf("[ERROR] write results to spreadsheet: %v", err)
			} else {
				log.Printf("[INFO] wrote %d result rows to %q", len(sums), cfg.Sheets.ResultsSheet)
			}
		}
	}

	if !*watchFlag {
		task()
		return
	}

	// Watch mode: run once now, then on the cron schedule.
	if cfg.Watch.Cron == "" {
		cfg.Watch.Cron = "0 0 18 * * 1-5"
	}
	sched := scheduler.New()
	if err := sched.Register(cfg.Watch.Cron, task); err != nil {
		log.Fatalf("[FATAL] register watch task: %v", err)
	}
	sched.Start()
	defer sched.Stop()
	go task()

	log.Printf("[INFO] watch mode on %q. Press Ctrl+C to stop.", cfg.Watch.Cron)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] StockScope stopped")
}
