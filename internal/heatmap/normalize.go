package heatmap

import (
	"time"

	"github.com/hmurata/commitcal-go/internal/calendar"
)

// CommitEvent is one ingested commit: the absolute instant it was
// created, the UTC offset (in minutes) of the author's clock at that
// instant, and the author identity. Author is carried through for
// upstream filtering and ignored by the pipeline itself.
type CommitEvent struct {
	When             time.Time
	UTCOffsetMinutes int
	Author           string
}

// DefaultYearSpread bounds the supported date range around the current
// year when no explicit bounds are configured. It exists to cap the
// memory the grid builder can be asked for.
const DefaultYearSpread = 100

// NormalizerOptions configures timestamp-to-civil-date conversion.
type NormalizerOptions struct {
	// TargetOffsetMinutes is the fixed UTC offset used to select the
	// calendar day. Not DST-aware.
	TargetOffsetMinutes int

	// UseCommitOffset selects each commit's day in the author's own
	// timezone instead of the target offset.
	UseCommitOffset bool

	// MinYear and MaxYear bound the representable date range. Both
	// zero means now ± DefaultYearSpread.
	MinYear int
	MaxYear int
}

// TimeNormalizer converts commit instants to civil dates in one target
// timezone.
type TimeNormalizer struct {
	opts NormalizerOptions
}

// NewTimeNormalizer creates a normalizer, filling in default year bounds.
func NewTimeNormalizer(opts NormalizerOptions) *TimeNormalizer {
	if opts.MinYear == 0 && opts.MaxYear == 0 {
		year := time.Now().Year()
		opts.MinYear = year - DefaultYearSpread
		opts.MaxYear = year + DefaultYearSpread
	}
	return &TimeNormalizer{opts: opts}
}

// Normalize converts each event to the civil date it falls on,
// preserving input order. It fails with an invalid_timestamp error if
// any event lands outside the configured year bounds.
func (n *TimeNormalizer) Normalize(events []CommitEvent) ([]calendar.Date, error) {
	dates := make([]calendar.Date, 0, len(events))
	for _, ev := range events {
		d, err := n.normalizeOne(ev)
		if err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, nil
}

func (n *TimeNormalizer) normalizeOne(ev CommitEvent) (calendar.Date, error) {
	offset := n.opts.TargetOffsetMinutes
	if n.opts.UseCommitOffset {
		offset = ev.UTCOffsetMinutes
	}

	// Reinterpret the absolute instant at the chosen offset. Shifting
	// the UTC instant by the offset and truncating to a date is
	// equivalent to reading a wall clock at that offset, and decides
	// which side of midnight boundary commits fall on.
	local := ev.When.UTC().Add(time.Duration(offset) * time.Minute)
	d := calendar.DateOf(local)

	if d.Year < n.opts.MinYear || d.Year > n.opts.MaxYear {
		return calendar.Date{}, newError(StageNormalize, KindInvalidTimestamp,
			"commit at %s normalizes to year %d, outside supported range [%d, %d]",
			ev.When.Format(time.RFC3339), d.Year, n.opts.MinYear, n.opts.MaxYear)
	}
	return d, nil
}
