// Package stats computes aggregate chart descriptors over a catalog.
// Every function is pure: (catalog, field, params) in, descriptor out,
// nothing written back to the records. A nil descriptor means "no chart"
// for the field (absent column or no usable values); callers render a
// placeholder instead.
package stats

import (
	"sort"

	"github.com/muse-labs/trackboard/internal/catalog"
)

// CategoryCount is one bar: a distinct value and how many records carry it.
type CategoryCount struct {
	Label string
	Count int
}

// BarChart describes a categorical distribution, capped and sorted by
// descending count.
type BarChart struct {
	Field   string
	Title   string
	Entries []CategoryCount
}

// Slice is one pie segment. Percent is the share of the kept (top-N)
// total, not the unfiltered population.
type Slice struct {
	Label   string
	Count   int
	Percent float64
}

// PieChart describes a proportion chart.
type PieChart struct {
	Field   string
	Title   string
	Entries []Slice
}

// Bin is one histogram bucket over [Low, High).
// The last bucket is right-closed.
type Bin struct {
	Low   float64
	High  float64
	Count int
}

// HistogramChart describes a fixed-bin-count histogram.
type HistogramChart struct {
	Field string
	Title string
	Bins  []Bin
}

// Categorical counts the distinct values of a text field, keeping the top
// n by count. Ties break by first-seen order. Returns nil when the field
// is absent or has no values.
func Categorical(c *catalog.Catalog, field, title string, n int) *BarChart {
	labels := textValues(c, field)
	entries := countLabels(labels, n)
	if entries == nil {
		return nil
	}
	return &BarChart{Field: field, Title: title, Entries: entries}
}

// Proportion is Categorical with per-entry percentages of the kept total.
func Proportion(c *catalog.Catalog, field, title string, n int) *PieChart {
	labels := textValues(c, field)
	return proportionFromLabels(field, title, labels, n)
}

// Histogram drops missing values of a numeric field and buckets the rest
// into a fixed number of equal-width bins over [min, max]. Returns nil
// when the field is absent or has no values.
func Histogram(c *catalog.Catalog, field, title string, bins int) *HistogramChart {
	if bins <= 0 || !c.HasColumn(field) {
		return nil
	}

	var values []float64
	for i := range c.Records {
		if v, ok := c.Records[i].Number(field); ok {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return nil
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	if lo == hi {
		// One distinct value collapses to a single full bucket.
		return &HistogramChart{
			Field: field,
			Title: title,
			Bins:  []Bin{{Low: lo, High: hi, Count: len(values)}},
		}
	}

	width := (hi - lo) / float64(bins)
	out := make([]Bin, bins)
	for i := range out {
		out[i].Low = lo + float64(i)*width
		out[i].High = lo + float64(i+1)*width
	}
	out[bins-1].High = hi

	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1 // v == max lands in the right-closed last bin.
		}
		out[idx].Count++
	}

	return &HistogramChart{Field: field, Title: title, Bins: out}
}

// textValues collects the non-missing values of field across the records.
// Returns nil when the column does not exist.
func textValues(c *catalog.Catalog, field string) []string {
	if !c.HasColumn(field) {
		return nil
	}
	var labels []string
	for i := range c.Records {
		if v, ok := c.Records[i].Text(field); ok {
			labels = append(labels, v)
		}
	}
	return labels
}

// countLabels counts occurrences, keeps the top n by count (ties by
// first-seen order) and sorts descending. Returns nil for no input.
func countLabels(labels []string, n int) []CategoryCount {
	if len(labels) == 0 || n <= 0 {
		return nil
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0
	for _, l := range labels {
		if _, ok := counts[l]; !ok {
			firstSeen[l] = order
			order++
		}
		counts[l]++
	}

	entries := make([]CategoryCount, 0, len(counts))
	for l, cnt := range counts {
		entries = append(entries, CategoryCount{Label: l, Count: cnt})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return firstSeen[entries[i].Label] < firstSeen[entries[j].Label]
	})

	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// proportionFromLabels builds a pie descriptor from raw labels.
// Percentages are computed over the kept entries' total.
func proportionFromLabels(field, title string, labels []string, n int) *PieChart {
	entries := countLabels(labels, n)
	if entries == nil {
		return nil
	}

	kept := 0
	for _, e := range entries {
		kept += e.Count
	}

	slices := make([]Slice, len(entries))
	for i, e := range entries {
		slices[i] = Slice{
			Label:   e.Label,
			Count:   e.Count,
			Percent: float64(e.Count) / float64(kept) * 100,
		}
	}
	return &PieChart{Field: field, Title: title, Entries: slices}
}
