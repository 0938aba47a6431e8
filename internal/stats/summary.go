package stats

import "github.com/muse-labs/trackboard/internal/catalog"

// Summary carries the overview counters.
type Summary struct {
	// Total is the record count.
	Total int `json:"total"`

	// WithLyrics counts records carrying lyric text.
	WithLyrics int `json:"with_lyrics"`

	// Annotated counts records with a usable AI annotation.
	Annotated int `json:"annotated"`
}

// Summarize computes the overview counters. A zero-row catalog yields the
// zero Summary.
func Summarize(c *catalog.Catalog) Summary {
	var s Summary
	s.Total = len(c.Records)
	for i := range c.Records {
		r := &c.Records[i]
		if _, ok := r.Text(catalog.ColLyrics); ok {
			s.WithLyrics++
		}
		if r.Annotated {
			s.Annotated++
		}
	}
	return s
}
