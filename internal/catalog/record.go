// Package catalog loads and normalizes the dashboard's source table: one
// CSV of song metadata, lyrics, upstream AI annotations and audio
// features. The catalog is immutable after load; views never write to it.
package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Column names with dedicated semantics in the source table.
const (
	ColTrackName      = "track_name"
	ColAlbumTitle     = "album_title"
	ColLyrics         = "lyrics_text"
	ColAITheme        = "ai_theme"
	ColAISentiment    = "ai_sentiment"
	ColAISentimentCat = "ai_sentiment_category"
	ColAINotes        = "ai_notes"
	ColGenre          = "genre_ros"
	ColKey            = "key_key"
	ColScale          = "key_scale"
	ColTimbre         = "timbre"
	ColDanceability   = "danceability"
	MoodColumnPrefix  = "mood_"
	ColCreditLyricist = "lyricist"
	ColCreditComposer = "composer"
	ColCreditProducer = "producer"
	ColCreditArranger = "arranger"
)

// Placeholder shown when an identity field is absent.
const Placeholder = "N/A"

// Upstream failure markers in ai_theme. A record carrying one of these is
// not annotated even though the cell is non-empty.
const (
	MarkerSkipped = "SKIPPED"
	MarkerError   = "ERROR"
)

// annotationColumns must all be present in the header for annotation
// views to be available at all this session.
var annotationColumns = []string{ColAITheme, ColAISentiment, ColAINotes} //nolint:gochecknoglobals // Fixed schema contract.

// CreditColumns are the four credit fields shown in the detail view.
var CreditColumns = []string{ //nolint:gochecknoglobals // Fixed schema contract.
	ColCreditLyricist, ColCreditComposer, ColCreditProducer, ColCreditArranger,
}

// Record is one song's row. Text holds raw string cells, Numbers holds the
// coerced numeric-feature cells; a key absent from both maps is missing.
type Record struct {
	index   int
	text    map[string]string
	numbers map[string]float64

	// Annotated is true iff ai_theme is present and not a failure marker,
	// and the annotation columns exist in the schema.
	Annotated bool

	// Label is the display label used as the selection key. Always set;
	// not guaranteed unique.
	Label string
}

// Text returns the raw string cell for field, and whether it is present.
// Numeric-feature cells are not visible through Text.
func (r *Record) Text(field string) (string, bool) {
	v, ok := r.text[field]
	return v, ok
}

// Number returns the coerced numeric cell for field, and whether a finite
// value is present.
func (r *Record) Number(field string) (float64, bool) {
	v, ok := r.numbers[field]
	return v, ok
}

// Has reports whether the record carries a non-missing value for field.
func (r *Record) Has(field string) bool {
	if _, ok := r.text[field]; ok {
		return true
	}
	_, ok := r.numbers[field]
	return ok
}

// Index is the record's position in the source table.
func (r *Record) Index() int {
	return r.index
}

// Catalog is the normalized record set for one source file.
type Catalog struct {
	// Columns preserves source header order.
	Columns []string

	Records []Record

	numericColumns       map[string]bool
	annotationsAvailable bool
}

// AnnotationsAvailable reports whether the annotation schema was present
// at load time. When false, every record is unannotated and annotation
// views stay disabled for the whole session.
func (c *Catalog) AnnotationsAvailable() bool {
	return c.annotationsAvailable
}

// HasColumn reports whether the source header contained name.
func (c *Catalog) HasColumn(name string) bool {
	for _, col := range c.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// IsNumericColumn reports whether name was coerced as a numeric feature.
func (c *Catalog) IsNumericColumn(name string) bool {
	return c.numericColumns[name]
}

// MoodColumns returns the mood_* columns in header order.
func (c *Catalog) MoodColumns() []string {
	var cols []string
	for _, col := range c.Columns {
		if strings.HasPrefix(col, MoodColumnPrefix) {
			cols = append(cols, col)
		}
	}
	return cols
}

// Find resolves a display label to a record. When several records share
// the label, the first by source order wins, deterministically.
func (c *Catalog) Find(label string) (*Record, bool) {
	for i := range c.Records {
		if c.Records[i].Label == label {
			return &c.Records[i], true
		}
	}
	return nil, false
}

// Entry is one selector row: a display label and its annotation status.
type Entry struct {
	Label     string
	Annotated bool
}

// SelectionEntries returns the selector ordering: annotated records first,
// then collated label order within each group. Duplicate labels collapse
// to their first occurrence.
func (c *Catalog) SelectionEntries() []Entry {
	seen := make(map[string]bool, len(c.Records))
	entries := make([]Entry, 0, len(c.Records))
	for i := range c.Records {
		r := &c.Records[i]
		if seen[r.Label] {
			continue
		}
		seen[r.Label] = true
		entries = append(entries, Entry{Label: r.Label, Annotated: r.Annotated})
	}

	coll := collate.New(language.Und)
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Annotated != entries[j].Annotated {
			return entries[i].Annotated
		}
		// Distinct labels can collate equal; break the tie by bytes so
		// the ordering is a total order.
		if cmp := coll.CompareString(entries[i].Label, entries[j].Label); cmp != 0 {
			return cmp < 0
		}
		return entries[i].Label < entries[j].Label
	})
	return entries
}
