package store

import (
	"bytes"

	"github.com/google/btree"
)

// btreeDegree is the degree of every cache tree.
const btreeDegree = 8

// cacheEntry is a pending write. A deleted entry hides the key in the
// underlying store.
type cacheEntry struct {
	key     []byte
	value   []byte
	deleted bool
}

func (e cacheEntry) Less(than btree.Item) bool {
	return bytes.Compare(e.key, than.(cacheEntry).key) < 0
}

// BTreeCacheWrap collects writes in a btree in front of a read only store.
// Reads see pending writes first. Nothing reaches the batch target before
// Write is called.
type BTreeCacheWrap struct {
	tree  *btree.BTree
	back  ReadOnlyKVStore
	batch Batch
}

var _ KVCacheWrap = BTreeCacheWrap{}

// NewBTreeCacheWrap returns a cache over kv. All writes are flushed through
// given batch.
func NewBTreeCacheWrap(kv ReadOnlyKVStore, batch Batch) BTreeCacheWrap {
	return BTreeCacheWrap{
		tree:  btree.New(btreeDegree),
		back:  kv,
		batch: batch,
	}
}

// MemStore returns a store without persistence, useful for tests.
func MemStore() CacheableKVStore {
	e := EmptyKVStore{}
	return NewBTreeCacheWrap(e, e.NewBatch())
}

// CacheWrap layers another cache on top of this one.
func (b BTreeCacheWrap) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(b, b.NewBatch())
}

// NewBatch returns a batch that writes to this cache.
func (b BTreeCacheWrap) NewBatch() Batch {
	return newMemBatch(b)
}

// Write flushes all pending writes and empties the cache.
func (b BTreeCacheWrap) Write() error {
	err := b.batch.Write()
	b.Discard()
	return err
}

// Discard drops all pending writes.
func (b BTreeCacheWrap) Discard() {
	for b.tree.Len() > 0 {
		b.tree.DeleteMin()
	}
}

func (b BTreeCacheWrap) Set(key, value []byte) error {
	b.tree.ReplaceOrInsert(cacheEntry{key: key, value: value})
	return b.batch.Set(key, value)
}

func (b BTreeCacheWrap) Delete(key []byte) error {
	b.tree.ReplaceOrInsert(cacheEntry{key: key, deleted: true})
	return b.batch.Delete(key)
}

func (b BTreeCacheWrap) Get(key []byte) ([]byte, error) {
	if e, ok := b.pending(key); ok {
		if e.deleted {
			return nil, nil
		}
		return e.value, nil
	}
	return b.back.Get(key)
}

func (b BTreeCacheWrap) Has(key []byte) (bool, error) {
	if e, ok := b.pending(key); ok {
		return !e.deleted, nil
	}
	return b.back.Has(key)
}

// pending returns the cached entry for given key, if any.
func (b BTreeCacheWrap) pending(key []byte) (cacheEntry, bool) {
	item := b.tree.Get(cacheEntry{key: key})
	if item == nil {
		return cacheEntry{}, false
	}
	return item.(cacheEntry), true
}
