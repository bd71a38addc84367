package git

import "github.com/hmurata/commitcal-go/internal/heatmap"

// HistorySource materializes commit events from a repository.
// This abstraction allows for easier testing and potential alternative
// ingestion implementations.
type HistorySource interface {
	ReadEvents() ([]heatmap.CommitEvent, error)
}

// Compile-time interface conformance checks.
var (
	_ HistorySource = (*HistoryReader)(nil)
	_ HistorySource = (*MockHistorySource)(nil)
)
