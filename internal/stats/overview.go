package stats

import "github.com/muse-labs/trackboard/internal/catalog"

// themeTopN caps the AI theme bar chart, matching the overview layout.
const themeTopN = 10

// Overview is the fixed sequence of descriptors behind the aggregate
// view. Nil chart fields mean "no chart" and render as placeholders.
type Overview struct {
	Summary Summary `json:"summary"`

	// AnnotationsAvailable reflects the session-wide schema check;
	// Sentiment and Themes are nil whenever it is false.
	AnnotationsAvailable bool `json:"annotations_available"`

	Sentiment    *PieChart       `json:"sentiment,omitempty"`
	Themes       *BarChart       `json:"themes,omitempty"`
	Moods        []*PieChart     `json:"moods,omitempty"`
	KeyScale     *PieChart       `json:"key_scale,omitempty"`
	Timbre       *PieChart       `json:"timbre,omitempty"`
	Genre        *BarChart       `json:"genre,omitempty"`
	Danceability *HistogramChart `json:"danceability,omitempty"`
}

// BuildOverview computes every aggregate descriptor for the catalog.
func BuildOverview(c *catalog.Catalog, topN, bins int) *Overview {
	o := &Overview{
		Summary:              Summarize(c),
		AnnotationsAvailable: c.AnnotationsAvailable(),
	}

	o.Sentiment = SentimentChart(c, topN)
	o.Themes = ThemeChart(c, themeTopN)

	for _, mood := range c.MoodColumns() {
		if chart := MoodProportion(c, mood, topN); chart != nil {
			o.Moods = append(o.Moods, chart)
		}
	}

	o.KeyScale = KeyScale(c, "Key & Scale", topN)
	o.Timbre = Proportion(c, catalog.ColTimbre, "Timbre", topN)
	o.Genre = Categorical(c, catalog.ColGenre, "Genre", topN)
	o.Danceability = Histogram(c, catalog.ColDanceability, "Danceability", bins)

	return o
}
