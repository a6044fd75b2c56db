package recorder

import "StockScope/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not
// configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordSummary(_ *model.AnalysisSummary) error { return nil }
func (n *NoopRecorder) Close() error                                 { return nil }
