package bank

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlatSection(t *testing.T) {
	data := []byte(`{
		"MCQ Quiz": {
			"Easy": [{"q":"pick one","a":"B","options":["A","B"]}],
			"Hard": []
		}
	}`)
	b, err := Parse(data)
	require.NoError(t, err)

	sec, ok := b["MCQ Quiz"]
	require.True(t, ok)
	assert.Equal(t, FlatByDifficulty, sec.Shape)
	require.Len(t, sec.Flat[DifficultyEasy], 1)
	assert.Equal(t, "B", sec.Flat[DifficultyEasy][0].Answer)
	assert.True(t, sec.Flat[DifficultyEasy][0].ClosedForm())
	assert.Empty(t, sec.Flat[DifficultyHard]) // empty leaf lists are legitimate
}

func TestParseTopicSection(t *testing.T) {
	data := []byte(`{
		"Practice": {
			"Arrays": {"Easy": [{"q":"what is an array","a":"contiguous memory"}]},
			"Graphs": {"Medium": []}
		}
	}`)
	b, err := Parse(data)
	require.NoError(t, err)

	sec := b["Practice"]
	assert.Equal(t, ByTopic, sec.Shape)
	assert.Equal(t, []string{"Arrays", "Graphs"}, sec.TopicNames())
	require.Len(t, sec.Topics["Arrays"][DifficultyEasy], 1)
	assert.False(t, sec.Topics["Arrays"][DifficultyEasy][0].ClosedForm())
}

func TestParseMixedShapesCoexist(t *testing.T) {
	data := []byte(`{
		"MCQ Quiz": {"Easy": []},
		"Practice": {"Arrays": {"Easy": []}}
	}`)
	b, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, FlatByDifficulty, b["MCQ Quiz"].Shape)
	assert.Equal(t, ByTopic, b["Practice"].Shape)
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte(`{"Section": "not an object"`))
	assert.Error(t, err)

	_, err = Parse([]byte(`{"Section": {"Topic": {"Easy": "not a list"}}}`))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"MCQ Quiz":{"Easy":[{"q":"x","a":"y"}]}}`), 0o644))

	b, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, b.Pool("MCQ Quiz", "", DifficultyEasy), 1)
}

func TestPoolResolution(t *testing.T) {
	b := Default()

	assert.NotEmpty(t, b.Pool("MCQ Quiz", "", DifficultyEasy))
	assert.NotEmpty(t, b.Pool("Practice", "Data Structures", DifficultyMedium))

	assert.Nil(t, b.Pool("No Such Section", "", DifficultyEasy))
	assert.Nil(t, b.Pool("Practice", "No Such Topic", DifficultyEasy))
	// Topic is ignored for flat sections.
	assert.NotEmpty(t, b.Pool("MCQ Quiz", "whatever", DifficultyEasy))
}

func TestDefaultBankShapes(t *testing.T) {
	b := Default()
	assert.Equal(t, FlatByDifficulty, b["MCQ Quiz"].Shape)
	assert.Equal(t, ByTopic, b["Practice"].Shape)
	assert.Equal(t, ByTopic, b["Mock Interview"].Shape)

	// Every MCQ question must be closed-form or exact grading is meaningless.
	for diff, qs := range b["MCQ Quiz"].Flat {
		for _, q := range qs {
			assert.True(t, q.ClosedForm(), "MCQ %s question %q has no options", diff, q.Text)
		}
	}
}
