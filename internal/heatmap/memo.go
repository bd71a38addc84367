package heatmap

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Memoizer caches assembled heatmaps keyed on a fingerprint of the
// commit set and the configuration. Callers that re-render the same
// history pass one explicitly; there is no package-level cache.
type Memoizer struct {
	entries map[string]*Heatmap
}

// NewMemoizer creates an empty memoizer.
func NewMemoizer() *Memoizer {
	return &Memoizer{entries: make(map[string]*Heatmap)}
}

// Assemble returns the cached heatmap for (events, a's configuration)
// or runs the assembler and caches the result. Failed runs are not
// cached; the pipeline is deterministic, so a failure would only
// repeat.
func (m *Memoizer) Assemble(a *Assembler, events []CommitEvent) (*Heatmap, error) {
	key := Fingerprint(a.cfg, events)
	if h, ok := m.entries[key]; ok {
		return h, nil
	}
	h, err := a.Assemble(events)
	if err != nil {
		return nil, err
	}
	m.entries[key] = h
	return h, nil
}

// Len returns the number of cached heatmaps.
func (m *Memoizer) Len() int {
	return len(m.entries)
}

// Fingerprint hashes a configuration and commit set into a stable
// cache key. Event order matters; callers with unordered input should
// not rely on two permutations sharing an entry.
func Fingerprint(cfg Config, events []CommitEvent) string {
	h := sha256.New()
	fmt.Fprintf(h, "cfg|%d|%t|%d|%d|%d|%d|%s|%v|%s|%s|%d\n",
		cfg.TimezoneOffsetMinutes, cfg.UseCommitOffset, cfg.MinYear, cfg.MaxYear,
		cfg.WeekStart, cfg.LevelCount, cfg.Mode, cfg.Thresholds,
		cfg.RangeStart, cfg.RangeEnd, cfg.MaxCellCount)
	for _, ev := range events {
		fmt.Fprintf(h, "%d|%d\n", ev.When.UnixNano(), ev.UTCOffsetMinutes)
	}
	return hex.EncodeToString(h.Sum(nil))
}
