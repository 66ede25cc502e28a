package seqdb_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theflywheel/seqdb"
	"github.com/theflywheel/seqdb/testutil"
)

func TestInvalidOptions(t *testing.T) {
	testCases := []struct {
		name  string
		opt   seqdb.Option
		field string
	}{
		{"LocationMinZero", seqdb.WithLocationRange(0, 10), "location range"},
		{"LocationInverted", seqdb.WithLocationRange(10, 5), "location range"},
		{"CapacityNotPrime", seqdb.WithCapacityRange(100, 211), "capacity range"},
		{"CapacityInverted", seqdb.WithCapacityRange(211, 101), "capacity range"},
		{"GrowZero", seqdb.WithGrowThreshold(0), "grow threshold"},
		{"GrowOne", seqdb.WithGrowThreshold(1), "grow threshold"},
		{"TombstoneZero", seqdb.WithTombstoneThreshold(0), "tombstone threshold"},
		{"TombstoneAboveOne", seqdb.WithTombstoneThreshold(1.5), "tombstone threshold"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := seqdb.New(101, nil, tc.opt)
			assert.Nil(t, s)
			require.ErrorIs(t, err, seqdb.ErrInvalidConfig)

			var ce *seqdb.ConfigError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, tc.field, ce.Field)
		})
	}
}

func TestCustomBounds(t *testing.T) {
	s, err := seqdb.New(1, nil,
		seqdb.WithLocationRange(1, 50),
		seqdb.WithCapacityRange(7, 97),
	)
	require.NoError(t, err)
	assert.Equal(t, 7, s.Capacity())
	assert.Equal(t, seqdb.LocationRange{Min: 1, Max: 50}, s.Locations())

	lr := s.Locations()
	for loc := 1; loc <= 4; loc++ {
		require.True(t, s.Insert(lr.Record("A", loc)))
	}
	// 4/7 crosses 0.5; next prime above 16 is 17.
	assert.Equal(t, seqdb.PhaseQuarter, s.Phase())
	assert.Equal(t, 17, s.Capacity())

	assert.False(t, s.Insert(seqdb.NewRecord("A", 1000)))
}

func TestGrowThreshold(t *testing.T) {
	s, err := seqdb.New(101, nil, seqdb.WithGrowThreshold(0.25))
	require.NoError(t, err)

	rng := testutil.NewRNG(1)
	for _, r := range rng.Records(25, 8, seqdb.DefaultLocations) {
		require.True(t, s.Insert(r))
	}
	assert.Equal(t, seqdb.PhaseIdle, s.Phase())
	require.True(t, s.Insert(seqdb.NewRecord("GGGGGGGGG", 1000)))
	assert.Equal(t, seqdb.PhaseQuarter, s.Phase())
}

func TestTombstoneThreshold(t *testing.T) {
	s, err := seqdb.New(101, nil, seqdb.WithTombstoneThreshold(0.5))
	require.NoError(t, err)

	records := testutil.NewRNG(2).Records(10, 8, seqdb.DefaultLocations)
	for _, r := range records {
		require.True(t, s.Insert(r))
	}
	for _, r := range records[:5] {
		require.True(t, s.Remove(r))
	}
	assert.Equal(t, seqdb.PhaseIdle, s.Phase())
	require.True(t, s.Remove(records[5]))
	assert.Equal(t, seqdb.PhaseQuarter, s.Phase())
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := seqdb.NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s, err := seqdb.New(101, nil, seqdb.WithLogger(logger))
	require.NoError(t, err)

	for _, r := range testutil.NewRNG(4).Records(54, 8, seqdb.DefaultLocations) {
		require.True(t, s.Insert(r))
	}
	require.Equal(t, seqdb.PhaseIdle, s.Phase())

	out := buf.String()
	assert.Contains(t, out, `"msg":"rehash started"`)
	assert.Contains(t, out, `"to_capacity":211`)
	assert.Contains(t, out, `"msg":"rehash step"`)
	assert.Contains(t, out, `"phase":"three-quarter"`)
	assert.Contains(t, out, `"msg":"rehash completed"`)
}

func TestNilLoggerAndObserver(t *testing.T) {
	s, err := seqdb.New(101, nil, seqdb.WithLogger(nil), seqdb.WithMetricsObserver(nil))
	require.NoError(t, err)
	for _, r := range testutil.NewRNG(8).Records(60, 8, seqdb.DefaultLocations) {
		require.True(t, s.Insert(r))
	}
}
