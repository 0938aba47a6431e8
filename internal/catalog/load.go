package catalog

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/muse-labs/trackboard/internal/logging"
)

// Load-time failure classes. Both are fatal: no partial dashboard is
// shown over a missing or unparsable source.
var (
	ErrSourceMissing   = errors.New("source file missing")
	ErrSourceMalformed = errors.New("source file malformed")
)

// utf8BOM is stripped when the exporter wrote a byte-order mark.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF} //nolint:gochecknoglobals // Constant byte sequence.

// Options tunes normalization. The zero value is usable.
type Options struct {
	// NumericExtras are coerced to float64 in addition to the built-in
	// numeric feature set (mood_*, danceability, key_key).
	NumericExtras []string
}

// Load reads and normalizes the source table at path.
func Load(ctx context.Context, path string, opts Options) (*Catalog, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Str("component", "catalog").
		Str("operation", "load").
		Str("path", path).
		Msg("loading source table")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceMissing, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	c, err := Parse(ctx, data, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Debug().
		Str("component", "catalog").
		Int("records", len(c.Records)).
		Int("columns", len(c.Columns)).
		Bool("annotations_available", c.annotationsAvailable).
		Msg("source table loaded")

	return c, nil
}

// Parse normalizes a source table already in memory.
//
// Numeric-feature cells that fail coercion become missing for that cell
// only; coercion never fails the load.
func Parse(ctx context.Context, data []byte, opts Options) (*Catalog, error) {
	log := logging.FromContext(ctx)

	data = bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // Short rows degrade to missing cells, not a failed load.
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceMalformed, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty file, header row required", ErrSourceMalformed)
	}

	header := rows[0]
	c := &Catalog{
		Columns:        make([]string, len(header)),
		numericColumns: make(map[string]bool),
	}
	for i, name := range header {
		c.Columns[i] = strings.TrimSpace(name)
	}

	for _, col := range c.Columns {
		if isNumericFeature(col, opts.NumericExtras) {
			c.numericColumns[col] = true
		}
	}

	c.annotationsAvailable = true
	for _, col := range annotationColumns {
		if !c.HasColumn(col) {
			c.annotationsAvailable = false
			break
		}
	}

	coercionMisses := 0
	c.Records = make([]Record, 0, len(rows)-1)
	for rowIdx, row := range rows[1:] {
		rec := Record{
			index:   rowIdx,
			text:    make(map[string]string),
			numbers: make(map[string]float64),
		}

		for colIdx, col := range c.Columns {
			if colIdx >= len(row) {
				break
			}
			cell := strings.TrimSpace(row[colIdx])
			if cell == "" {
				continue
			}
			if c.numericColumns[col] {
				// ParseFloat accepts "NaN" and "Inf"; a numeric cell is
				// either finite or missing, so those are misses too.
				v, parseErr := strconv.ParseFloat(cell, 64)
				if parseErr != nil || math.IsNaN(v) || math.IsInf(v, 0) {
					coercionMisses++
					continue
				}
				rec.numbers[col] = v
				continue
			}
			rec.text[col] = cell
		}

		rec.Annotated = c.annotationsAvailable && isAnnotated(&rec)
		rec.Label = displayLabel(&rec)
		c.Records = append(c.Records, rec)
	}

	if coercionMisses > 0 {
		log.Debug().
			Str("component", "catalog").
			Int("cells", coercionMisses).
			Msg("numeric cells failed coercion and were marked missing")
	}

	return c, nil
}

// isNumericFeature reports whether col belongs to the numeric feature set.
func isNumericFeature(col string, extras []string) bool {
	if strings.HasPrefix(col, MoodColumnPrefix) {
		return true
	}
	if col == ColDanceability || col == ColKey {
		return true
	}
	for _, extra := range extras {
		if col == extra {
			return true
		}
	}
	return false
}

// isAnnotated applies the annotation rule: ai_theme present and not an
// upstream failure marker.
func isAnnotated(r *Record) bool {
	theme, ok := r.Text(ColAITheme)
	if !ok {
		return false
	}
	return theme != MarkerSkipped && theme != MarkerError
}

// displayLabel derives the selection key: "track | album" with the
// placeholder filling either missing side.
func displayLabel(r *Record) string {
	track, ok := r.Text(ColTrackName)
	if !ok {
		track = Placeholder
	}
	album, ok := r.Text(ColAlbumTitle)
	if !ok {
		album = Placeholder
	}
	return track + " | " + album
}
