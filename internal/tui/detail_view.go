package tui

import (
	"fmt"
	"strings"

	"github.com/muse-labs/trackboard/internal/catalog"
)

const (
	placeholderNoLyrics    = "No lyrics available for this track."
	placeholderNoAnalysis  = "No AI analysis available for this track."
	placeholderNoOtherData = "No other data for this track."
)

// detailShown lists the columns rendered by the named sections; the
// catch-all block at the bottom covers everything else.
var detailShown = map[string]struct{}{ //nolint:gochecknoglobals
	catalog.ColTrackName:      {},
	catalog.ColAlbumTitle:     {},
	catalog.ColLyrics:         {},
	catalog.ColAITheme:        {},
	catalog.ColAISentiment:    {},
	catalog.ColAISentimentCat: {},
	catalog.ColAINotes:        {},
	catalog.ColCreditLyricist: {},
	catalog.ColCreditComposer: {},
	catalog.ColCreditProducer: {},
	catalog.ColCreditArranger: {},
}

// RenderDetail produces the per-track view: header, lyrics, the AI
// annotation block when the record is annotated, credits, and a
// catch-all listing of every remaining column.
func RenderDetail(cat *catalog.Catalog, rec *catalog.Record) string {
	if rec == nil {
		return SubtleStyle.Render(placeholderNoData)
	}

	sections := []string{
		renderDetailHeader(rec),
		renderLyrics(rec),
		renderAnnotations(rec),
		renderCredits(rec),
		renderRemaining(cat, rec),
	}

	out := make([]string, 0, len(sections))
	for _, s := range sections {
		if s != "" {
			out = append(out, s)
		}
	}
	return strings.Join(out, "\n\n")
}

func renderDetailHeader(rec *catalog.Record) string {
	mark := PlainMark
	if rec.Annotated {
		mark = AnnotatedMark
	}
	return HeaderStyle.Render(fmt.Sprintf("%s %s", mark, rec.Label))
}

func renderLyrics(rec *catalog.Record) string {
	title := HeaderStyle.Render("Lyrics")
	lyrics, ok := rec.Text(catalog.ColLyrics)
	if !ok {
		return title + "\n" + SubtleStyle.Render(placeholderNoLyrics)
	}
	return title + "\n" + lyrics
}

func renderAnnotations(rec *catalog.Record) string {
	title := HeaderStyle.Render("AI Analysis")
	if !rec.Annotated {
		return title + "\n" + SubtleStyle.Render(placeholderNoAnalysis)
	}

	rows := []struct {
		label  string
		column string
	}{
		{"Theme", catalog.ColAITheme},
		{"Sentiment", catalog.ColAISentiment},
		{"Category", catalog.ColAISentimentCat},
		{"Notes", catalog.ColAINotes},
	}

	var sb strings.Builder
	sb.WriteString(title)
	for _, row := range rows {
		sb.WriteString("\n")
		sb.WriteString(renderField(row.label, textOrPlaceholder(rec, row.column)))
	}
	return sb.String()
}

func renderCredits(rec *catalog.Record) string {
	rows := []struct {
		label  string
		column string
	}{
		{"Lyricist", catalog.ColCreditLyricist},
		{"Composer", catalog.ColCreditComposer},
		{"Producer", catalog.ColCreditProducer},
		{"Arranger", catalog.ColCreditArranger},
	}

	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render("Credits"))
	for _, row := range rows {
		sb.WriteString("\n")
		sb.WriteString(renderField(row.label, textOrPlaceholder(rec, row.column)))
	}
	return sb.String()
}

// renderRemaining lists every header column not covered above that the
// record actually carries, in source column order. Missing cells are
// omitted, not padded; when nothing remains an info line is shown.
func renderRemaining(cat *catalog.Catalog, rec *catalog.Record) string {
	if cat == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render("Other Fields"))
	wrote := false
	for _, col := range cat.Columns {
		if _, shown := detailShown[col]; shown {
			continue
		}
		if !rec.Has(col) {
			continue
		}
		sb.WriteString("\n")
		sb.WriteString(renderField(col, fieldValue(cat, rec, col)))
		wrote = true
	}
	if !wrote {
		sb.WriteString("\n")
		sb.WriteString(SubtleStyle.Render(placeholderNoOtherData))
	}
	return sb.String()
}

// fieldValue formats a cell for display, preferring the numeric
// representation for feature columns.
func fieldValue(cat *catalog.Catalog, rec *catalog.Record, col string) string {
	if cat.IsNumericColumn(col) {
		if v, ok := rec.Number(col); ok {
			return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.4f", v), "0"), ".")
		}
		return SubtleStyle.Render(catalog.Placeholder)
	}
	return textOrPlaceholder(rec, col)
}

func textOrPlaceholder(rec *catalog.Record, col string) string {
	if v, ok := rec.Text(col); ok {
		return v
	}
	return SubtleStyle.Render(catalog.Placeholder)
}

func renderField(label, value string) string {
	return fmt.Sprintf("%s %s", LabelStyle.Render(label+":"), value)
}
