package stats

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const overviewCSV = `track_name,album_title,lyrics_text,ai_theme,ai_sentiment,ai_sentiment_category,ai_notes,genre_ros,key_key,key_scale,timbre,mood_happy,mood_sad,danceability
One,Album,words here,love,positive,warm,notes,pop,0,major,bright,0.8,0.2,0.5
Two,Album,,SKIPPED,,,,rock,5,minor,dark,0.3,0.9,0.7
Three,Album,more words,loss,negative,dark,notes,pop,7,major,bright,0.6,0.4,0.2
`

func TestSummarize(t *testing.T) {
	c := mustParse(t, overviewCSV)
	s := Summarize(c)

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 2, s.WithLyrics)
	assert.Equal(t, 2, s.Annotated)
}

func TestSummarizeZeroRows(t *testing.T) {
	c := mustParse(t, "track_name,lyrics_text\n")
	assert.Equal(t, Summary{}, Summarize(c))
}

func TestBuildOverview(t *testing.T) {
	c := mustParse(t, overviewCSV)
	o := BuildOverview(c, 10, 5)

	assert.True(t, o.AnnotationsAvailable)
	require.NotNil(t, o.Sentiment)
	require.NotNil(t, o.Themes)
	require.Len(t, o.Moods, 2, "one pie per mood_* column")
	assert.Equal(t, "Mood: Happy", o.Moods[0].Title)
	assert.Equal(t, "Mood: Sad", o.Moods[1].Title)
	require.NotNil(t, o.KeyScale)
	require.NotNil(t, o.Timbre)
	require.NotNil(t, o.Genre)
	require.NotNil(t, o.Danceability)
}

func TestBuildOverviewSparse(t *testing.T) {
	// Bare schema: everything chart-shaped is nil, counters still work.
	c := mustParse(t, "track_name,album_title\nOne,Album\n")
	o := BuildOverview(c, 10, 5)

	assert.False(t, o.AnnotationsAvailable)
	assert.Nil(t, o.Sentiment)
	assert.Nil(t, o.Themes)
	assert.Empty(t, o.Moods)
	assert.Nil(t, o.KeyScale)
	assert.Nil(t, o.Timbre)
	assert.Nil(t, o.Genre)
	assert.Nil(t, o.Danceability)
	assert.Equal(t, 1, o.Summary.Total)
}

func TestOverviewJSONOmitsNilCharts(t *testing.T) {
	c := mustParse(t, "track_name,album_title\nOne,Album\n")
	o := BuildOverview(c, 10, 5)

	data, err := json.Marshal(o)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "danceability")
	assert.Contains(t, string(data), `"total":1`)
}
