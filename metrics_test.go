package seqdb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theflywheel/seqdb"
	"github.com/theflywheel/seqdb/testutil"
)

func TestBasicMetricsObserver(t *testing.T) {
	obs := &seqdb.BasicMetricsObserver{}
	s, err := seqdb.New(101, nil, seqdb.WithMetricsObserver(obs))
	require.NoError(t, err)

	records := testutil.NewRNG(12).Records(54, 8, seqdb.DefaultLocations)
	for _, r := range records {
		require.True(t, s.Insert(r))
	}
	s.Insert(records[0])
	s.Remove(seqdb.NewRecord("NOPE", 1000))
	s.Find(records[1].Sequence, records[1].Location)
	s.Find("NOPE", 1000)

	st := obs.Snapshot()
	assert.Equal(t, int64(54), st.Inserts)
	assert.Equal(t, int64(1), st.InsertRejects)
	assert.Equal(t, int64(0), st.Removes)
	assert.Equal(t, int64(1), st.RemoveRejects)
	assert.Equal(t, int64(2), st.Finds)
	assert.Equal(t, int64(1), st.FindMisses)
	assert.Equal(t, int64(1), st.RehashStarts)
	assert.Equal(t, int64(4), st.RehashSteps)
	assert.Equal(t, int64(1), st.RehashDone)
	assert.Equal(t, int64(51), st.RecordsMoved)
	assert.Equal(t, int64(211), st.ActiveCapacity)
}
