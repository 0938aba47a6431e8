package stats

import (
	"strings"

	"github.com/muse-labs/trackboard/internal/catalog"
)

// Binarization labels for the continuous mood sub-scores.
const (
	MoodHighLabel = "high"
	MoodLowLabel  = "low"

	// moodThreshold splits a [0,1] mood score into high/low.
	moodThreshold = 0.5
)

// keyNames maps the musical key index 0-11 to a note name.
var keyNames = [12]string{ //nolint:gochecknoglobals // Fixed chromatic lookup table.
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

// KeyName maps a key index to its note name. Only the exact integral
// values 0 through 11 map; everything else is missing.
func KeyName(v float64) (string, bool) {
	idx := int(v)
	if float64(idx) != v || idx < 0 || idx >= len(keyNames) {
		return "", false
	}
	return keyNames[idx], true
}

// KeyScale describes the "key + scale" proportion chart: the key index
// mapped to a note name, concatenated with the scale, for records where
// both are present.
func KeyScale(c *catalog.Catalog, title string, n int) *PieChart {
	if !c.HasColumn(catalog.ColKey) || !c.HasColumn(catalog.ColScale) {
		return nil
	}

	var labels []string
	for i := range c.Records {
		r := &c.Records[i]
		keyIdx, ok := r.Number(catalog.ColKey)
		if !ok {
			continue
		}
		name, ok := KeyName(keyIdx)
		if !ok {
			continue
		}
		scale, ok := r.Text(catalog.ColScale)
		if !ok {
			continue
		}
		labels = append(labels, name+" "+scale)
	}

	return proportionFromLabels(catalog.ColKey, title, labels, n)
}

// MoodProportion binarizes one continuous mood sub-score at the 0.5
// threshold and describes its high/low proportion chart. Missing scores
// are excluded entirely, counted in neither bucket.
func MoodProportion(c *catalog.Catalog, field string, n int) *PieChart {
	if !c.HasColumn(field) {
		return nil
	}

	var labels []string
	for i := range c.Records {
		v, ok := c.Records[i].Number(field)
		if !ok {
			continue
		}
		if v >= moodThreshold {
			labels = append(labels, MoodHighLabel)
		} else {
			labels = append(labels, MoodLowLabel)
		}
	}

	return proportionFromLabels(field, MoodTitle(field), labels, n)
}

// MoodTitle derives a display title from a mood_* column name.
func MoodTitle(field string) string {
	name := strings.TrimPrefix(field, catalog.MoodColumnPrefix)
	if name == "" {
		return field
	}
	return "Mood: " + strings.ToUpper(name[:1]) + name[1:]
}

// SentimentChart describes the annotation sentiment-category proportion,
// computed over annotated records only. Nil when annotations are
// unavailable, no record is annotated, or the category column is absent.
func SentimentChart(c *catalog.Catalog, n int) *PieChart {
	labels := annotatedTextValues(c, catalog.ColAISentimentCat)
	return proportionFromLabels(catalog.ColAISentimentCat, "Sentiment Category", labels, n)
}

// ThemeChart describes the top-N AI theme distribution over annotated
// records only.
func ThemeChart(c *catalog.Catalog, n int) *BarChart {
	labels := annotatedTextValues(c, catalog.ColAITheme)
	entries := countLabels(labels, n)
	if entries == nil {
		return nil
	}
	return &BarChart{Field: catalog.ColAITheme, Title: "AI Themes", Entries: entries}
}

// annotatedTextValues collects field values from annotated records.
// Returns nil when annotation views are unavailable this session.
func annotatedTextValues(c *catalog.Catalog, field string) []string {
	if !c.AnnotationsAvailable() || !c.HasColumn(field) {
		return nil
	}
	var labels []string
	for i := range c.Records {
		r := &c.Records[i]
		if !r.Annotated {
			continue
		}
		if v, ok := r.Text(field); ok {
			labels = append(labels, v)
		}
	}
	return labels
}
