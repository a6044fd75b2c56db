package recorder

import "StockScope/internal/model"

// Recorder persists analysis results for later inspection (e.g. via
// Grafana over the SQLite file). Implementations must tolerate
// undefined indicator values.
type Recorder interface {
	RecordSummary(sum *model.AnalysisSummary) error
	Close() error
}
