package heatmap

import (
	"sort"

	"github.com/hmurata/commitcal-go/internal/calendar"
)

// Level is a discrete activity intensity ordinal. Level 0 always means
// "no activity"; higher levels mean more daily commits.
type Level int

// ThresholdMode selects how raw counts map to levels.
type ThresholdMode string

const (
	// ModeFixed uses a caller-supplied ascending threshold list.
	ModeFixed ThresholdMode = "fixed"
	// ModeQuantile derives thresholds from the observed non-zero
	// counts so each non-zero level covers roughly the same number of
	// active days.
	ModeQuantile ThresholdMode = "quantile"
)

// BucketizerOptions configures count-to-level mapping.
type BucketizerOptions struct {
	// LevelCount is the total number of levels including level 0.
	// Must be at least 2.
	LevelCount int

	Mode ThresholdMode

	// Thresholds is the fixed ascending threshold list for ModeFixed.
	// It must hold exactly LevelCount-2 values; a count equal to a
	// threshold takes the higher level.
	Thresholds []int
}

// IntensityBucketizer maps day counts to levels.
type IntensityBucketizer struct {
	levelCount int
	mode       ThresholdMode
	thresholds []int
}

// NewIntensityBucketizer validates options eagerly and returns a
// bucketizer. Malformed options fail with invalid_configuration.
func NewIntensityBucketizer(opts BucketizerOptions) (*IntensityBucketizer, error) {
	if opts.LevelCount < 2 {
		return nil, newError(StageBucketize, KindInvalidConfiguration,
			"level count must be at least 2, got %d", opts.LevelCount)
	}

	switch opts.Mode {
	case ModeQuantile:
		return &IntensityBucketizer{levelCount: opts.LevelCount, mode: ModeQuantile}, nil
	case ModeFixed, "":
		// Fixed is the default mode.
	default:
		return nil, newError(StageBucketize, KindInvalidConfiguration,
			"unknown threshold mode %q", opts.Mode)
	}

	if len(opts.Thresholds) != opts.LevelCount-2 {
		return nil, newError(StageBucketize, KindInvalidConfiguration,
			"fixed mode with %d levels needs %d thresholds, got %d",
			opts.LevelCount, opts.LevelCount-2, len(opts.Thresholds))
	}
	prev := 0
	for i, t := range opts.Thresholds {
		if t <= prev {
			return nil, newError(StageBucketize, KindInvalidConfiguration,
				"thresholds must be strictly ascending positive integers, got %v at index %d", t, i)
		}
		prev = t
	}

	thresholds := make([]int, len(opts.Thresholds))
	copy(thresholds, opts.Thresholds)
	return &IntensityBucketizer{levelCount: opts.LevelCount, mode: ModeFixed, thresholds: thresholds}, nil
}

// Bucketize maps every date present in counts to a level. Counts of
// zero (which AggregateByDay never emits) map to level 0.
func (b *IntensityBucketizer) Bucketize(counts DayCounts) map[calendar.Date]Level {
	levels := make(map[calendar.Date]Level, len(counts))

	thresholds := b.thresholds
	if b.mode == ModeQuantile {
		nonZero := sortedNonZeroCounts(counts)
		if distinctValues(nonZero) <= 1 {
			// No useful split exists; all active days are maximally hot.
			top := Level(b.levelCount - 1)
			for d, n := range counts {
				if n > 0 {
					levels[d] = top
				} else {
					levels[d] = 0
				}
			}
			return levels
		}
		thresholds = quantileThresholds(nonZero, b.levelCount)
	}

	for d, n := range counts {
		levels[d] = levelFor(n, thresholds, b.levelCount)
	}
	return levels
}

// EffectiveThresholds returns the threshold list in effect for the
// given counts: the configured list in fixed mode, or the derived one
// in quantile mode (nil when no split is possible).
func (b *IntensityBucketizer) EffectiveThresholds(counts DayCounts) []int {
	if b.mode != ModeQuantile {
		out := make([]int, len(b.thresholds))
		copy(out, b.thresholds)
		return out
	}
	nonZero := sortedNonZeroCounts(counts)
	if distinctValues(nonZero) <= 1 {
		return nil
	}
	return quantileThresholds(nonZero, b.levelCount)
}

// LevelCount returns the total number of levels including level 0.
func (b *IntensityBucketizer) LevelCount() int {
	return b.levelCount
}

// levelFor maps a count to a level against an ascending threshold
// list. Counts at a threshold boundary take the higher level.
func levelFor(count int, thresholds []int, levelCount int) Level {
	if count <= 0 {
		return 0
	}
	level := 1
	for _, t := range thresholds {
		if count >= t {
			level++
		}
	}
	if level > levelCount-1 {
		level = levelCount - 1
	}
	return Level(level)
}

// quantileThresholds splits the sorted non-zero count multiset into
// levelCount-1 groups of roughly equal size and returns the group
// boundaries, deduplicated to stay strictly ascending.
func quantileThresholds(sortedNonZero []int, levelCount int) []int {
	groups := levelCount - 1
	var thresholds []int
	for k := 1; k < groups; k++ {
		t := sortedNonZero[k*len(sortedNonZero)/groups]
		if len(thresholds) == 0 || t > thresholds[len(thresholds)-1] {
			thresholds = append(thresholds, t)
		}
	}
	return thresholds
}

func sortedNonZeroCounts(counts DayCounts) []int {
	out := make([]int, 0, len(counts))
	for _, n := range counts {
		if n > 0 {
			out = append(out, n)
		}
	}
	sort.Ints(out)
	return out
}

func distinctValues(sorted []int) int {
	distinct := 0
	prev := 0
	for i, v := range sorted {
		if i == 0 || v != prev {
			distinct++
		}
		prev = v
	}
	return distinct
}
