package heatmap

import (
	"testing"
	"time"
)

func TestMemoizer_CacheHit(t *testing.T) {
	a, err := NewAssembler(testConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m := NewMemoizer()
	events := []CommitEvent{
		eventAt(time.Date(2024, time.January, 2, 9, 0, 0, 0, time.UTC)),
		eventAt(time.Date(2024, time.January, 2, 10, 0, 0, 0, time.UTC)),
	}

	first, err := m.Assemble(a, events)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := m.Assemble(a, events)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != second {
		t.Error("second call did not return the cached heatmap")
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
}

func TestMemoizer_DistinctInputsDistinctEntries(t *testing.T) {
	m := NewMemoizer()

	a, err := NewAssembler(testConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	events := []CommitEvent{
		eventAt(time.Date(2024, time.January, 2, 9, 0, 0, 0, time.UTC)),
	}
	if _, err := m.Assemble(a, events); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Different events, same configuration.
	other := []CommitEvent{
		eventAt(time.Date(2024, time.January, 3, 9, 0, 0, 0, time.UTC)),
	}
	if _, err := m.Assemble(a, other); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 after distinct event sets", m.Len())
	}

	// Same events, different configuration.
	cfg := testConfig()
	cfg.WeekStart = time.Sunday
	b, err := NewAssembler(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := m.Assemble(b, events); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 after distinct configurations", m.Len())
	}
}

func TestMemoizer_FailuresNotCached(t *testing.T) {
	cfg := testConfig()
	cfg.MinYear = 2024
	cfg.MaxYear = 2024
	a, err := NewAssembler(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m := NewMemoizer()
	bad := []CommitEvent{
		eventAt(time.Date(1999, time.June, 1, 0, 0, 0, 0, time.UTC)),
	}
	if _, err := m.Assemble(a, bad); !IsKind(err, KindInvalidTimestamp) {
		t.Fatalf("expected invalid_timestamp error, got %v", err)
	}
	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0 after failed run", m.Len())
	}
}

func TestFingerprint_Stability(t *testing.T) {
	cfg := testConfig()
	events := []CommitEvent{
		eventAt(time.Date(2024, time.January, 2, 9, 0, 0, 0, time.UTC)),
	}

	if Fingerprint(cfg, events) != Fingerprint(cfg, events) {
		t.Error("identical inputs produced different fingerprints")
	}

	shifted := []CommitEvent{
		{When: events[0].When, UTCOffsetMinutes: 540},
	}
	if Fingerprint(cfg, events) == Fingerprint(cfg, shifted) {
		t.Error("differing commit offsets produced the same fingerprint")
	}

	other := cfg
	other.LevelCount = 5
	other.Thresholds = []int{2, 3, 4}
	if Fingerprint(cfg, events) == Fingerprint(other, events) {
		t.Error("differing configurations produced the same fingerprint")
	}
}
