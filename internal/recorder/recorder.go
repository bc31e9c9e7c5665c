package recorder

import "TrendAdvisor/internal/analyzer"

// Recorder persists completed analyses for later inspection.
type Recorder interface {
	RecordAnalysis(r *analyzer.Report) error
	Close() error
}
