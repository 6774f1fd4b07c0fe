package store

import chill "github.com/chill-token/chill"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = chill.ReadOnlyKVStore
type SetDeleter = chill.SetDeleter
type KVStore = chill.KVStore
type Batch = chill.Batch
type CacheableKVStore = chill.CacheableKVStore
type KVCacheWrap = chill.KVCacheWrap
