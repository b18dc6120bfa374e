package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statsFixture() []Record {
	return []Record{
		{ID: "1", Section: "MCQ Quiz", Timestamp: "2024-05-01T10:00:00Z", Score: 2},
		{ID: "2", Section: "Mock Interview", Timestamp: "2024-05-01T11:00:00Z", Score: 40},
		{ID: "3", Section: "MCQ Quiz", Timestamp: "2024-05-01T12:00:00Z", Score: 3},
		{ID: "4", Section: "Mock Interview", Timestamp: "2024-05-01T13:00:00Z", Score: 65.5},
	}
}

func TestBySection(t *testing.T) {
	got := BySection(statsFixture())
	require.Len(t, got, 2)

	// Sorted by section name.
	assert.Equal(t, "MCQ Quiz", got[0].Section)
	assert.Equal(t, 2, got[0].Attempts)
	assert.Equal(t, 2.5, got[0].MeanScore)

	assert.Equal(t, "Mock Interview", got[1].Section)
	assert.Equal(t, 2, got[1].Attempts)
	assert.Equal(t, 52.75, got[1].MeanScore)
}

func TestBySectionEmpty(t *testing.T) {
	assert.Empty(t, BySection(nil))
}

func TestSeries(t *testing.T) {
	got := Series(statsFixture(), "MCQ Quiz")
	require.Len(t, got, 2)
	assert.Equal(t, 2.0, got[0].Score)
	assert.Equal(t, 3.0, got[1].Score)
	assert.Equal(t, "2024-05-01T10:00:00Z", got[0].Timestamp)

	assert.Empty(t, Series(statsFixture(), "No Such Section"))
}

func TestLatest(t *testing.T) {
	rec, ok := Latest(statsFixture())
	require.True(t, ok)
	assert.Equal(t, "4", rec.ID)

	_, ok = Latest(nil)
	assert.False(t, ok)
}
