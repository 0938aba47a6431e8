package tui

import (
	"fmt"
	"strings"

	"github.com/muse-labs/trackboard/internal/stats"
)

// Chart layout constants.
const (
	chartLabelWidth = 22
	chartBarWidth   = 24
	labelTruncate   = 3
)

// RenderBarChart renders a categorical distribution as labeled terminal
// bars, longest count first. A nil chart renders the placeholder.
func RenderBarChart(chart *stats.BarChart, placeholder string) string {
	if chart == nil || len(chart.Entries) == 0 {
		return SubtleStyle.Render(placeholder)
	}

	maxCount := chart.Entries[0].Count
	for _, e := range chart.Entries {
		if e.Count > maxCount {
			maxCount = e.Count
		}
	}

	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render(chart.Title))
	sb.WriteString("\n")
	for _, e := range chart.Entries {
		sb.WriteString(renderBarRow(e.Label, e.Count, maxCount, ""))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// RenderPieChart renders a proportion chart as bars annotated with each
// kept category's percentage share.
func RenderPieChart(chart *stats.PieChart, placeholder string) string {
	if chart == nil || len(chart.Entries) == 0 {
		return SubtleStyle.Render(placeholder)
	}

	maxCount := 0
	for _, e := range chart.Entries {
		if e.Count > maxCount {
			maxCount = e.Count
		}
	}

	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render(chart.Title))
	sb.WriteString("\n")
	for _, e := range chart.Entries {
		pct := fmt.Sprintf("%5.1f%%", e.Percent)
		sb.WriteString(renderBarRow(e.Label, e.Count, maxCount, pct))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// RenderHistogram renders a fixed-bin histogram with numeric bin edges.
func RenderHistogram(chart *stats.HistogramChart, placeholder string) string {
	if chart == nil || len(chart.Bins) == 0 {
		return SubtleStyle.Render(placeholder)
	}

	maxCount := 0
	for _, b := range chart.Bins {
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}

	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render(chart.Title))
	sb.WriteString("\n")
	for _, b := range chart.Bins {
		edge := fmt.Sprintf("%.2f-%.2f", b.Low, b.High)
		sb.WriteString(renderBarRow(edge, b.Count, maxCount, ""))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// renderBarRow renders one "label ███ count suffix" line.
func renderBarRow(label string, count, maxCount int, suffix string) string {
	width := 0
	if maxCount > 0 {
		width = count * chartBarWidth / maxCount
	}
	if width == 0 && count > 0 {
		width = 1
	}

	bar := BarStyle.Render(strings.Repeat("█", width))
	line := fmt.Sprintf("%s %s %s",
		LabelStyle.Render(fmt.Sprintf("%-*s", chartLabelWidth, truncate(label, chartLabelWidth))),
		bar,
		ValueStyle.Render(fmt.Sprintf("%d", count)),
	)
	if suffix != "" {
		line += " " + SubtleStyle.Render(suffix)
	}
	return line
}

// truncate shortens a string to maxLen runes with an ellipsis.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= labelTruncate {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-labelTruncate]) + "..."
}
