package store

import (
	"github.com/chill-token/chill/errors"
	dbm "github.com/tendermint/tendermint/libs/db"
)

// CommitStore is the persistent base layer of the ledger. It is backed by
// a tendermint database and writes all cached changes with a single
// synchronous batch, so a unit of work is either fully stored or not at
// all.
type CommitStore struct {
	db dbm.DB
}

var _ CacheableKVStore = (*CommitStore)(nil)

// NewCommitStore wraps given database.
func NewCommitStore(db dbm.DB) *CommitStore {
	return &CommitStore{db: db}
}

// OpenCommitStore opens (or creates) a goleveldb database stored under
// given directory. The database is locked for the lifetime of the returned
// store, a second process opening the same directory fails.
func OpenCommitStore(dir string) (*CommitStore, error) {
	db, err := dbm.NewGoLevelDB("ledger", dir)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrDatabase, "cannot open %q: %s", dir, err)
	}
	return NewCommitStore(db), nil
}

// MemCommitStore returns a CommitStore backed by an in memory database.
func MemCommitStore() *CommitStore {
	return NewCommitStore(dbm.NewMemDB())
}

// Get returns nil iff key doesn't exist.
func (s *CommitStore) Get(key []byte) (val []byte, err error) {
	defer recoverDB(&err)
	return s.db.Get(key), nil
}

// Has checks if a key exists.
func (s *CommitStore) Has(key []byte) (ok bool, err error) {
	defer recoverDB(&err)
	return s.db.Has(key), nil
}

// Set writes directly to the database. Prefer CacheWrap.
func (s *CommitStore) Set(key, value []byte) (err error) {
	defer recoverDB(&err)
	s.db.SetSync(key, value)
	return nil
}

// Delete removes directly from the database. Prefer CacheWrap.
func (s *CommitStore) Delete(key []byte) (err error) {
	defer recoverDB(&err)
	s.db.DeleteSync(key)
	return nil
}

// NewBatch returns an atomic database batch.
func (s *CommitStore) NewBatch() Batch {
	return &commitBatch{batch: s.db.NewBatch()}
}

// CacheWrap returns a btree cache that is written to the database with a
// single atomic batch.
func (s *CommitStore) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(s, s.NewBatch())
}

// Close releases the database.
func (s *CommitStore) Close() (err error) {
	defer recoverDB(&err)
	s.db.Close()
	return nil
}

type commitBatch struct {
	batch dbm.Batch
}

var _ Batch = (*commitBatch)(nil)

func (b *commitBatch) Set(key, value []byte) (err error) {
	defer recoverDB(&err)
	b.batch.Set(key, value)
	return nil
}

func (b *commitBatch) Delete(key []byte) (err error) {
	defer recoverDB(&err)
	b.batch.Delete(key)
	return nil
}

func (b *commitBatch) Write() (err error) {
	defer recoverDB(&err)
	b.batch.WriteSync()
	return nil
}

// recoverDB converts a panic of the database layer into an error.
// Tendermint database implementations panic on I/O failures.
func recoverDB(err *error) {
	if r := recover(); r != nil {
		*err = errors.Wrapf(errors.ErrDatabase, "%v", r)
	}
}
