package output

import (
	"io"
	"os"
	"time"

	"github.com/hmurata/commitcal-go/internal/heatmap"
)

const reportDateLayout = "2006-01-02"

// defaultGlyphs is the level ramp for glyph renderers, lowest first.
const defaultGlyphs = "·░▒▓█"

var weekdayAbbrev = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// rowWeekday maps a grid row index to its weekday given the configured
// week start.
func rowWeekday(weekStart time.Weekday, row int) time.Weekday {
	return time.Weekday((int(weekStart) + row) % 7)
}

// rampIndex scales a level in [0, levelCount) onto a ramp of rampLen
// entries, keeping 0 at 0 and the top level at the top entry.
func rampIndex(level heatmap.Level, levelCount, rampLen int) int {
	if levelCount <= 1 || rampLen <= 1 {
		return 0
	}
	idx := int(level) * (rampLen - 1) / (levelCount - 1)
	if idx >= rampLen {
		idx = rampLen - 1
	}
	return idx
}

// glyphFor picks the glyph for a level from the configured ramp,
// falling back to the default ramp when the configured one is too
// short to be scaled.
func glyphFor(level heatmap.Level, levelCount int, glyphs string) rune {
	runes := []rune(glyphs)
	if len(runes) < 2 {
		runes = []rune(defaultGlyphs)
	}
	return runes[rampIndex(level, levelCount, len(runes))]
}

func openOutputWriter(outputPath string) (io.Writer, *os.File, error) {
	if outputPath == "" {
		return os.Stdout, nil, nil
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}
