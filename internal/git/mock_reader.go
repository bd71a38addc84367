package git

import "github.com/hmurata/commitcal-go/internal/heatmap"

// MockHistorySource is a test double for HistoryReader. It lets tests
// provide predefined commit events without a real Git repository.
type MockHistorySource struct {
	Events []heatmap.CommitEvent
	Error  error
}

// NewMockHistorySource creates a new MockHistorySource with the given data.
func NewMockHistorySource(events []heatmap.CommitEvent, err error) *MockHistorySource {
	return &MockHistorySource{Events: events, Error: err}
}

// ReadEvents returns the predefined events or error.
func (m *MockHistorySource) ReadEvents() ([]heatmap.CommitEvent, error) {
	return m.Events, m.Error
}
