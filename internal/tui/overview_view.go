package tui

import (
	"fmt"
	"strings"

	"github.com/muse-labs/trackboard/internal/stats"
)

// Placeholder messages for absent chart data.
const (
	placeholderNoData      = "No data available for this chart."
	placeholderNoAnnotated = "No AI annotations found in this dataset."
)

// RenderOverview produces the full aggregate view: the summary counter
// line, the annotation-derived charts (or a single placeholder when the
// dataset carries no annotation columns), and the audio-feature charts.
func RenderOverview(ov *stats.Overview) string {
	if ov == nil {
		return SubtleStyle.Render(placeholderNoData)
	}

	sections := []string{renderSummary(ov.Summary)}

	if ov.AnnotationsAvailable {
		sections = append(sections,
			RenderPieChart(ov.Sentiment, placeholderNoData),
			RenderBarChart(ov.Themes, placeholderNoData),
		)
	} else {
		sections = append(sections, SubtleStyle.Render(placeholderNoAnnotated))
	}

	for _, mood := range ov.Moods {
		sections = append(sections, RenderPieChart(mood, placeholderNoData))
	}

	sections = append(sections,
		RenderPieChart(ov.KeyScale, placeholderNoData),
		RenderPieChart(ov.Timbre, placeholderNoData),
		RenderBarChart(ov.Genre, placeholderNoData),
		RenderHistogram(ov.Danceability, placeholderNoData),
	)

	return strings.Join(sections, "\n\n")
}

// renderSummary renders the dataset counters as a single info line.
func renderSummary(s stats.Summary) string {
	parts := []string{
		fmt.Sprintf("%s %s", LabelStyle.Render("Tracks:"), ValueStyle.Render(fmt.Sprintf("%d", s.Total))),
		fmt.Sprintf("%s %s", LabelStyle.Render("With lyrics:"), ValueStyle.Render(fmt.Sprintf("%d", s.WithLyrics))),
		fmt.Sprintf("%s %s", LabelStyle.Render("Annotated:"), ValueStyle.Render(fmt.Sprintf("%d", s.Annotated))),
	}
	return HeaderStyle.Render("Library Overview") + "\n" + strings.Join(parts, "   ")
}
