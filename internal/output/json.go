package output

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// JSONHeatmapWriter writes heatmap reports as JSON.
type JSONHeatmapWriter struct{}

// JSONHeatmapReport is the JSON output structure for a heatmap.
type JSONHeatmapReport struct {
	RepoPath       string       `json:"repo"`
	GeneratedAt    string       `json:"generatedAt"`
	RangeStart     string       `json:"rangeStart"`
	RangeEnd       string       `json:"rangeEnd"`
	WeekStartDay   string       `json:"weekStartDay"`
	LevelCount     int          `json:"levelCount"`
	TotalCommits   int          `json:"totalCommits"`
	ActiveDayCount int          `json:"activeDayCount"`
	MaxDailyCount  int          `json:"maxDailyCount"`
	Weeks          [][]JSONCell `json:"weeks"`
}

// JSONCell is the JSON output structure for a single grid cell.
type JSONCell struct {
	Date    string `json:"date"`
	Level   int    `json:"level"`
	InRange bool   `json:"inRange"`
}

// Write outputs the heatmap report as JSON.
func (w *JSONHeatmapWriter) Write(report *HeatmapReport, options OutputOptions) error {
	hm := report.Heatmap
	grid := hm.Grid

	weeks := make([][]JSONCell, len(grid.Weeks))
	for i, week := range grid.Weeks {
		cells := make([]JSONCell, len(week))
		for j, cell := range week {
			cells[j] = JSONCell{
				Date:    cell.Date.String(),
				Level:   int(cell.Level),
				InRange: cell.InRange,
			}
		}
		weeks[i] = cells
	}

	jsonReport := JSONHeatmapReport{
		RepoPath:       report.RepoPath,
		GeneratedAt:    report.GeneratedAt.Format(time.RFC3339),
		RangeStart:     grid.RangeStart.String(),
		RangeEnd:       grid.RangeEnd.String(),
		WeekStartDay:   strings.ToLower(grid.WeekStart.String()),
		LevelCount:     hm.LevelCount,
		TotalCommits:   hm.TotalCommits,
		ActiveDayCount: hm.ActiveDays,
		MaxDailyCount:  hm.MaxDailyCount,
		Weeks:          weeks,
	}

	return writeJSON(jsonReport, options.OutputPath)
}

func writeJSON(data interface{}, outputPath string) error {
	encoder := json.NewEncoder(os.Stdout)
	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return err
		}
		defer file.Close()
		encoder = json.NewEncoder(file)
	}

	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
