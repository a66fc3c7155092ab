package varstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/operator-framework/nondet/pkg/varstore"
)

func names(refs []varstore.Ref) []string {
	out := make([]string, len(refs))
	for i, r := range refs {
		out[i] = r.Name()
	}
	return out
}

func TestStoreWatchesAndLookups(t *testing.T) {
	s := varstore.New()
	root := s.Top()

	var updates [][]string
	record := func(path []string) {
		updates = append(updates, append([]string(nil), path...))
	}

	_, rootWatch, err := root.Watch(record)
	require.NoError(t, err)
	assert.Empty(t, updates)

	children, err := root.List()
	require.NoError(t, err)
	assert.Empty(t, children)

	d2 := root.Child("d1").Child("d2")

	// deriving a ref touches nothing
	children, err = root.List()
	require.NoError(t, err)
	assert.Empty(t, children)
	assert.Empty(t, updates)

	// the first put creates d1 under the watched root
	require.NoError(t, d2.Child("v1").Put(1))
	v, err := root.At("d1", "d2", "v1").Get()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	children, err = root.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"d1"}, names(children))
	require.Len(t, updates, 1)
	assert.Empty(t, updates[0])
	updates = nil

	// no new directory under the root this time
	require.NoError(t, root.At("d1", "d2").Child("v2").Put(2))
	v, err = d2.Child("v2").Get()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Empty(t, updates)

	// a watch on the leaf fires on every put
	current, leafWatch, err := d2.Child("v1").Watch(record)
	require.NoError(t, err)
	assert.Equal(t, 1, current)
	require.NoError(t, d2.Child("v1").Put(2))
	require.Len(t, updates, 1)
	assert.Equal(t, []string{"d1", "d2", "v1"}, updates[0])
	updates = nil

	d2.Child("v1").Unwatch(leafWatch)
	require.NoError(t, d2.Child("v1").Put(3))
	assert.Empty(t, updates)

	children, err = d2.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"v1", "v2"}, names(children))

	assert.Equal(t, 3, d2.Lookup("v1", nil))
	assert.Nil(t, d2.Lookup("vx", nil))
	assert.Equal(t, 2, d2.Lookup("vx", 2))

	_, err = d2.Child("vx").Get()
	assert.ErrorIs(t, err, varstore.ErrNotFound)

	root.Unwatch(rootWatch)
}

func TestStoreTraversalThroughLeaf(t *testing.T) {
	s := varstore.New()
	require.NoError(t, s.Top().Child("leaf").Put(1))

	err := s.Top().At("leaf", "below").Put(2)
	assert.ErrorIs(t, err, varstore.ErrNotDir)

	_, err = s.Top().At("leaf", "below").Get()
	assert.ErrorIs(t, err, varstore.ErrNotDir)

	_, err = s.Top().Child("leaf").List()
	assert.ErrorIs(t, err, varstore.ErrNotDir)
}

func TestStoreMkDirRemoveClear(t *testing.T) {
	s := varstore.New()
	dir := s.Top().At("a", "b")

	require.NoError(t, dir.MkDir())
	children, err := s.Top().Child("a").List()
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, names(children))

	// idempotent for directories, an error for leaves
	require.NoError(t, dir.MkDir())
	require.NoError(t, dir.Child("leaf").Put(1))
	assert.ErrorIs(t, dir.Child("leaf").MkDir(), varstore.ErrNotDir)

	require.NoError(t, dir.Child("leaf").Remove())
	assert.ErrorIs(t, dir.Child("leaf").Remove(), varstore.ErrNotFound)

	// clear tolerates absence
	dir.Child("leaf").Clear()
	require.NoError(t, dir.Child("leaf").Put(2))
	dir.Child("leaf").Clear()
	_, err = dir.Child("leaf").Get()
	assert.ErrorIs(t, err, varstore.ErrNotFound)
}

func TestWatchMissingPath(t *testing.T) {
	s := varstore.New()
	_, _, err := s.Top().Child("missing").Watch(func([]string) {})
	assert.ErrorIs(t, err, varstore.ErrNotFound)
}
