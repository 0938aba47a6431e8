package stats

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muse-labs/trackboard/internal/catalog"
)

func mustParse(t *testing.T, data string) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Parse(context.Background(), []byte(data), catalog.Options{})
	require.NoError(t, err)
	return c
}

func TestCategoricalTopN(t *testing.T) {
	c := mustParse(t, `track_name,genre_ros
a,rock
b,rock
c,rock
d,pop
e,pop
f,jazz
g,folk
`)

	chart := Categorical(c, "genre_ros", "Genre", 3)
	require.NotNil(t, chart)
	require.Len(t, chart.Entries, 3, "top-N caps the entries")

	assert.Equal(t, CategoryCount{Label: "rock", Count: 3}, chart.Entries[0])
	assert.Equal(t, CategoryCount{Label: "pop", Count: 2}, chart.Entries[1])
	// jazz and folk tie at 1; jazz was seen first.
	assert.Equal(t, CategoryCount{Label: "jazz", Count: 1}, chart.Entries[2])
}

func TestCategoricalAbsentColumn(t *testing.T) {
	c := mustParse(t, "track_name\na\n")
	assert.Nil(t, Categorical(c, "genre_ros", "Genre", 10))
}

func TestCategoricalZeroRows(t *testing.T) {
	c := mustParse(t, "track_name,genre_ros\n")
	assert.Nil(t, Categorical(c, "genre_ros", "Genre", 10))
}

func TestProportionPercentOverKeptTotal(t *testing.T) {
	c := mustParse(t, `track_name,timbre
a,bright
b,bright
c,bright
d,dark
e,warm
`)

	// n=2 keeps bright(3) and dark(1); warm is cut. Percentages are over
	// the kept total of 4, not the population of 5.
	chart := Proportion(c, "timbre", "Timbre", 2)
	require.NotNil(t, chart)
	require.Len(t, chart.Entries, 2)

	assert.Equal(t, "bright", chart.Entries[0].Label)
	assert.InDelta(t, 75.0, chart.Entries[0].Percent, 1e-9)
	assert.Equal(t, "dark", chart.Entries[1].Label)
	assert.InDelta(t, 25.0, chart.Entries[1].Percent, 1e-9)

	total := 0.0
	for _, e := range chart.Entries {
		total += e.Percent
	}
	assert.InDelta(t, 100.0, total, 1e-9)
}

func TestHistogramBuckets(t *testing.T) {
	c := mustParse(t, `track_name,danceability
a,0.0
b,0.1
c,0.5
d,0.9
e,1.0
`)

	chart := Histogram(c, "danceability", "Danceability", 2)
	require.NotNil(t, chart)
	require.Len(t, chart.Bins, 2)

	// [0, 0.5) holds 0.0 and 0.1; [0.5, 1.0] holds 0.5, 0.9 and the
	// right-closed max.
	assert.InDelta(t, 0.0, chart.Bins[0].Low, 1e-9)
	assert.InDelta(t, 0.5, chart.Bins[0].High, 1e-9)
	assert.Equal(t, 2, chart.Bins[0].Count)
	assert.Equal(t, 3, chart.Bins[1].Count)
}

func TestHistogramSingleValue(t *testing.T) {
	c := mustParse(t, "track_name,danceability\na,0.7\nb,0.7\n")

	chart := Histogram(c, "danceability", "Danceability", 10)
	require.NotNil(t, chart)
	require.Len(t, chart.Bins, 1)
	assert.Equal(t, 2, chart.Bins[0].Count)
	assert.InDelta(t, 0.7, chart.Bins[0].Low, 1e-9)
	assert.InDelta(t, 0.7, chart.Bins[0].High, 1e-9)
}

func TestHistogramSkipsMissing(t *testing.T) {
	c := mustParse(t, "track_name,danceability\na,0.2\nb,\nc,bogus\nd,0.8\n")

	chart := Histogram(c, "danceability", "Danceability", 2)
	require.NotNil(t, chart)

	total := 0
	for _, b := range chart.Bins {
		total += b.Count
	}
	assert.Equal(t, 2, total, "missing and unparsable cells stay out of every bucket")
}

func TestHistogramNonFiniteCells(t *testing.T) {
	c := mustParse(t, "track_name,danceability\na,0.1\nb,0.9\nc,NaN\nd,Inf\n")

	chart := Histogram(c, "danceability", "Danceability", 5)
	require.NotNil(t, chart)

	total := 0
	for _, b := range chart.Bins {
		total += b.Count
	}
	assert.Equal(t, 2, total, "non-finite cells never reach a bucket")
}

func TestHistogramNoValues(t *testing.T) {
	c := mustParse(t, "track_name,danceability\na,\n")
	assert.Nil(t, Histogram(c, "danceability", "Danceability", 5))
	assert.Nil(t, Histogram(c, "absent", "Absent", 5))
}
