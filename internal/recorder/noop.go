package recorder

import "TrendAdvisor/internal/analyzer"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordAnalysis(_ *analyzer.Report) error { return nil }
func (n *NoopRecorder) Close() error                            { return nil }
