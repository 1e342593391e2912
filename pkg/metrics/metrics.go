package metrics

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/npmscout/npmscout/pkg/integrations/downloads"
)

// TailLength is the number of trailing daily points included in a trend
// report for tabular display.
const TailLength = 14

// sparkRamp is the 8-level glyph ramp used for sparklines, lightest first.
var sparkRamp = []rune("▁▂▃▄▅▆▇█")

// Summary holds aggregate statistics over a daily download series.
// All fields are 0 for an empty series.
type Summary struct {
	Total   int `json:"total"`
	Average int `json:"average"`
	Min     int `json:"min"`
	Max     int `json:"max"`
}

// TrendReport is the caller-facing download trend: aggregates, a sparkline,
// and the chronological tail of the series for tabular display.
type TrendReport struct {
	Package   string            `json:"package"`
	Start     string            `json:"start"`
	End       string            `json:"end"`
	Summary   Summary           `json:"summary"`
	Sparkline string            `json:"sparkline"`
	Tail      []downloads.Point `json:"tail"`
}

// Summarize computes total, average (rounded half-up), min, and max over a
// daily series. An empty series yields all zeros rather than an error.
func Summarize(points []downloads.Point) Summary {
	if len(points) == 0 {
		return Summary{}
	}

	data := make(stats.Float64Data, len(points))
	for i, p := range points {
		data[i] = float64(p.Downloads)
	}

	total, _ := data.Sum()
	mean, _ := data.Mean()
	minVal, _ := data.Min()
	maxVal, _ := data.Max()

	return Summary{
		Total:   int(total),
		Average: int(math.Round(mean)),
		Min:     int(minVal),
		Max:     int(maxVal),
	}
}

// Sparkline renders one glyph per point, scaled against the series maximum:
// level = floor(downloads/max * 7), clamped to [0,7]. Returns the empty
// string when the series is empty or its maximum is 0.
func Sparkline(points []downloads.Point) string {
	maxVal := 0
	for _, p := range points {
		if p.Downloads > maxVal {
			maxVal = p.Downloads
		}
	}
	if maxVal == 0 {
		return ""
	}

	glyphs := make([]rune, len(points))
	for i, p := range points {
		level := int(float64(p.Downloads) / float64(maxVal) * 7)
		if level < 0 {
			level = 0
		}
		if level > 7 {
			level = 7
		}
		glyphs[i] = sparkRamp[level]
	}
	return string(glyphs)
}

// BuildTrend assembles the trend report for a range result: summary,
// sparkline, and the last [TailLength] points (all points when fewer).
func BuildTrend(rs *downloads.RangeStats) *TrendReport {
	tail := rs.Points
	if len(tail) > TailLength {
		tail = tail[len(tail)-TailLength:]
	}
	return &TrendReport{
		Package:   rs.Package,
		Start:     rs.Start,
		End:       rs.End,
		Summary:   Summarize(rs.Points),
		Sparkline: Sparkline(rs.Points),
		Tail:      tail,
	}
}
