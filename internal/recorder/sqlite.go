package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"

	"StockScope/internal/model"
)

// SQLiteRecorder persists analysis snapshots to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs
// migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance while the
	// analyzer writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmt := `CREATE TABLE IF NOT EXISTS analysis_snapshots (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp       INTEGER NOT NULL,
		symbol          TEXT NOT NULL,
		close           REAL,
		sma20           REAL,
		sma50           REAL,
		sma200          REAL,
		rsi             REAL,
		macd            REAL,
		macd_signal     REAL,
		stoch_k         REAL,
		atr             REAL,
		hist_volatility REAL,
		bb_upper        REAL,
		bb_lower        REAL,
		short_trend     TEXT,
		long_trend      TEXT,
		rsi_signal      TEXT,
		macd_trend      TEXT,
		bb_position     TEXT,
		recommendation  TEXT,
		confidence      TEXT,
		buy_votes       INTEGER,
		sell_votes      INTEGER
	)`
	if _, err := r.db.Exec(stmt); err != nil {
		return fmt.Errorf("create analysis_snapshots: %w", err)
	}
	if _, err := r.db.Exec(`CREATE INDEX IF NOT EXISTS idx_snapshots_symbol_ts ON analysis_snapshots(symbol, timestamp)`); err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	return nil
}

// nullable maps undefined indicator values to SQL NULL instead of NaN,
// which SQLite cannot store.
func nullable(v float64) any {
	if !model.IsDefined(v) {
		return nil
	}
	return v
}

func (r *SQLiteRecorder) RecordSummary(sum *model.AnalysisSummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO analysis_snapshots
		(timestamp, symbol, close,
		 sma20, sma50, sma200, rsi, macd, macd_signal, stoch_k, atr,
		 hist_volatility, bb_upper, bb_lower,
		 short_trend, long_trend, rsi_signal, macd_trend, bb_position,
		 recommendation, confidence, buy_votes, sell_votes)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		sum.Latest.Time.Unix(), sum.Symbol, sum.Latest.Close,
		nullable(sum.Trend.SMA20), nullable(sum.Trend.SMA50), nullable(sum.Trend.SMA200),
		nullable(sum.Momentum.RSI), nullable(sum.Momentum.MACD), nullable(sum.Momentum.MACDSignal),
		nullable(sum.Momentum.StochK), nullable(sum.Volatility.ATR),
		nullable(sum.Volatility.HistVolatility), nullable(sum.Volatility.BBUpper), nullable(sum.Volatility.BBLower),
		string(sum.Trend.ShortTerm), string(sum.Trend.LongTerm),
		string(sum.Momentum.RSISignal), string(sum.Momentum.MACDTrend), string(sum.Volatility.BandPosition),
		string(sum.Signal.Recommendation), sum.Signal.Confidence,
		sum.Signal.BuyVotes, sum.Signal.SellVotes,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
