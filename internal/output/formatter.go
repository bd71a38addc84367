package output

import (
	"time"

	"github.com/hmurata/commitcal-go/internal/heatmap"
)

// Compile-time interface conformance checks.
var (
	_ HeatmapWriter = (*ConsoleHeatmapWriter)(nil)
	_ HeatmapWriter = (*TextHeatmapWriter)(nil)
	_ HeatmapWriter = (*JSONHeatmapWriter)(nil)
	_ HeatmapWriter = (*CSVHeatmapWriter)(nil)
	_ HeatmapWriter = (*MarkdownHeatmapWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatConsole  OutputFormat = "console"
	FormatText     OutputFormat = "text"
	FormatJSON     OutputFormat = "json"
	FormatCSV      OutputFormat = "csv"
	FormatMarkdown OutputFormat = "markdown"
)

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	OutputPath string

	// Glyphs maps levels to runes for the text and markdown
	// renderers, lowest level first.
	Glyphs string
}

// HeatmapReport holds an assembled heatmap together with its
// provenance for rendering.
type HeatmapReport struct {
	RepoPath    string
	GeneratedAt time.Time
	Heatmap     *heatmap.Heatmap
}

// HeatmapWriter renders a heatmap report. Implementations are
// selected by configuration and consume the report read-only.
type HeatmapWriter interface {
	Write(report *HeatmapReport, options OutputOptions) error
}

// NewHeatmapWriter creates a report writer for the specified format.
func NewHeatmapWriter(format OutputFormat) HeatmapWriter {
	switch format {
	case FormatText:
		return &TextHeatmapWriter{}
	case FormatJSON:
		return &JSONHeatmapWriter{}
	case FormatCSV:
		return &CSVHeatmapWriter{}
	case FormatMarkdown:
		return &MarkdownHeatmapWriter{}
	default:
		return &ConsoleHeatmapWriter{}
	}
}
