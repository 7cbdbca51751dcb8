package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accesstree/pkg/schema"
)

func testUpdate(focusLo uint64) schema.TreeUpdate {
	root := schema.NewNode(schema.RoleWindow)
	return schema.TreeUpdate{
		Nodes: []schema.NodeEntry{{ID: schema.NodeID{Lo: 1}, Node: root}},
		Tree:  schema.NewTree(schema.NodeID{Lo: 1}),
		Focus: schema.NodeID{Lo: focusLo},
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "updates.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndIterate(t *testing.T) {
	s := openTestStore(t)

	for i := uint64(1); i <= 3; i++ {
		seq, err := s.Append(testUpdate(i))
		require.NoError(t, err)
		assert.Equal(t, int64(i), seq)
	}

	count, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	var seen []uint64
	err = s.Iterate(func(r Record) error {
		assert.False(t, r.RecordedAt.IsZero(), "record has zero timestamp")
		seen = append(seen, r.Update.Focus.Lo)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2, 3}, seen)
}

func TestIterateStopsOnError(t *testing.T) {
	s := openTestStore(t)
	for i := uint64(1); i <= 3; i++ {
		_, err := s.Append(testUpdate(i))
		require.NoError(t, err)
	}

	stop := errors.New("stop")
	calls := 0
	err := s.Iterate(func(Record) error {
		calls++
		return stop
	})
	assert.True(t, errors.Is(err, stop), "Iterate error = %v, want stop", err)
	assert.Equal(t, 1, calls)
}

func TestClear(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Append(testUpdate(1))
	require.NoError(t, err)
	require.NoError(t, s.Clear())

	count, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	// The sequence restarts after a clear.
	seq, err := s.Append(testUpdate(2))
	require.NoError(t, err)
	assert.Equal(t, int64(1), seq)
}

func TestReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "updates.db")
	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.Append(testUpdate(7))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	count, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
