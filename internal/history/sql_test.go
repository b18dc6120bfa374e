package history_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepdeck/prepdeck/internal/db"
	"github.com/prepdeck/prepdeck/internal/history"
)

func openSQLite(t *testing.T) *history.SQLStore {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "history.db")
	dbh, err := db.Open(context.Background(), db.DriverSQLite, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbh.Close() })
	return history.NewSQLStore(dbh)
}

func TestSQLStoreAppendLoad(t *testing.T) {
	s := openSQLite(t)

	recs, err := s.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, recs)

	r1 := history.Record{
		ID:        "r1",
		Section:   "MCQ Quiz",
		Timestamp: "2024-05-01T10:00:00Z",
		Score:     2,
		Details: []history.Detail{
			{Question: "fifo structure", Answer: "Queue", Expected: "Queue", Score: 1},
		},
	}
	r2 := history.Record{
		ID:        "r2",
		Section:   "Mock Interview",
		Topic:     "HR Round",
		Timestamp: "2024-05-01T11:00:00Z",
		Score:     48.5,
		Details:   []history.Detail{},
	}
	require.NoError(t, s.Append(r1))
	require.NoError(t, s.Append(r2))

	recs, err = s.LoadAll()
	require.NoError(t, err)
	require.Len(t, recs, 2)

	// Append order survives the round trip.
	assert.Equal(t, "r1", recs[0].ID)
	assert.Equal(t, "r2", recs[1].ID)
	assert.Equal(t, "HR Round", recs[1].Topic)
	assert.Equal(t, 48.5, recs[1].Score)
	require.Len(t, recs[0].Details, 1)
	assert.Equal(t, "Queue", recs[0].Details[0].Expected)
}

func TestSQLStoreDuplicateID(t *testing.T) {
	s := openSQLite(t)
	rec := history.Record{ID: "dup", Section: "MCQ Quiz", Timestamp: "2024-05-01T10:00:00Z"}
	require.NoError(t, s.Append(rec))
	assert.Error(t, s.Append(rec))
}
