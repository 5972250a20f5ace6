package record

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "records.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestInsertAndLoadAll(t *testing.T) {
	store := openTestStore(t)

	records := []Record{
		{ID: "r1", Name: "alpha", Keywords: []string{"disease"}},
		{ID: "r2", Name: "beta", Keywords: []string{"healthy", "control"}},
		{Name: "gamma", Keywords: []string{"disease"}},
	}
	for i := range records {
		require.NoError(t, store.Insert(&records[i]))
	}

	// Blank ID was filled in
	assert.NotEmpty(t, records[2].ID)

	loaded, err := store.LoadAll()
	require.NoError(t, err)
	require.Len(t, loaded, 3)

	// Insertion order is preserved
	assert.Equal(t, "r1", loaded[0].ID)
	assert.Equal(t, []string{"healthy", "control"}, loaded[1].Keywords)
	assert.Nil(t, loaded[0].GroupIndex)
	assert.Empty(t, loaded[0].GroupName)
}

func TestSaveAssignments(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []Record{
		{ID: "r1", Keywords: []string{"disease"}},
		{ID: "r2", Keywords: []string{"healthy"}},
	} {
		require.NoError(t, store.Insert(&r))
	}

	err := store.SaveAssignments([]string{"disease", "healthy"}, []int{0, 1}, []string{"r1", "r2"})
	require.NoError(t, err)

	loaded, err := store.LoadAll()
	require.NoError(t, err)
	require.NotNil(t, loaded[0].GroupIndex)
	assert.Equal(t, 0, *loaded[0].GroupIndex)
	assert.Equal(t, "disease", loaded[0].GroupName)
	assert.Equal(t, 1, *loaded[1].GroupIndex)
	assert.Equal(t, "healthy", loaded[1].GroupName)
}

func TestSaveAssignmentsReplaces(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []Record{
		{ID: "r1", Keywords: []string{"disease"}},
		{ID: "r2", Keywords: []string{"healthy"}},
	} {
		require.NoError(t, store.Insert(&r))
	}

	require.NoError(t, store.SaveAssignments(
		[]string{"disease", "healthy"}, []int{0, 1}, []string{"r1", "r2"}))

	// A second save covering only r2 must clear r1's old assignment
	require.NoError(t, store.SaveAssignments(
		[]string{"everything"}, []int{0}, []string{"r2"}))

	loaded, err := store.LoadAll()
	require.NoError(t, err)
	assert.Nil(t, loaded[0].GroupIndex)
	assert.Empty(t, loaded[0].GroupName)
	require.NotNil(t, loaded[1].GroupIndex)
	assert.Equal(t, "everything", loaded[1].GroupName)
}

func TestSaveAssignmentsValidation(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.Insert(&Record{ID: "r1", Keywords: []string{"x"}}))

	// Length mismatch
	err := store.SaveAssignments([]string{"g"}, []int{0, 1}, []string{"r1"})
	assert.Error(t, err)

	// Index out of range
	err = store.SaveAssignments([]string{"g"}, []int{3}, []string{"r1"})
	assert.Error(t, err)
}

func TestHasKeyword(t *testing.T) {
	r := Record{Keywords: []string{"disease", "acute"}}

	assert.True(t, r.HasKeyword("disease"))
	assert.False(t, r.HasKeyword("Disease")) // case-sensitive
	assert.False(t, r.HasKeyword("healthy"))
}
