package store

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitStoreCacheWrap(t *testing.T) {
	s := MemCommitStore()
	defer s.Close()

	k, v := []byte("account"), []byte("100")

	cache := s.CacheWrap()
	require.NoError(t, cache.Set(k, v))
	assertGetHas(t, cache, k, v, true)
	// Nothing is persisted before the cache is written.
	assertGetHas(t, s, k, nil, false)

	require.NoError(t, cache.Write())
	assertGetHas(t, s, k, v, true)

	// Discarded changes never reach the database.
	cache = s.CacheWrap()
	require.NoError(t, cache.Set(k, []byte("0")))
	require.NoError(t, cache.Delete(k))
	cache.Discard()
	assertGetHas(t, s, k, v, true)
}

func TestCommitStorePersistence(t *testing.T) {
	dir, err := ioutil.TempDir("", "chill-store-")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	s, err := OpenCommitStore(dir)
	require.NoError(t, err)

	cache := s.CacheWrap()
	require.NoError(t, cache.Set([]byte("a"), []byte("b")))
	require.NoError(t, cache.Write())
	require.NoError(t, s.Close())

	s, err = OpenCommitStore(dir)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("b"), got)
}
