package store

// EmptyKVStore never holds any data. It is the base layer of MemStore.
type EmptyKVStore struct{}

var _ KVStore = EmptyKVStore{}

func (EmptyKVStore) Get(key []byte) ([]byte, error) { return nil, nil }
func (EmptyKVStore) Has(key []byte) (bool, error)   { return false, nil }
func (EmptyKVStore) Set(key, value []byte) error    { return nil }
func (EmptyKVStore) Delete(key []byte) error        { return nil }
func (e EmptyKVStore) NewBatch() Batch              { return newMemBatch(e) }

// memOp is a single recorded write.
type memOp struct {
	key     []byte
	value   []byte
	deleted bool
}

// memBatch records writes and replays them in order on Write. It is not
// atomic, so it is only used between in memory layers.
type memBatch struct {
	out SetDeleter
	ops []memOp
}

var _ Batch = (*memBatch)(nil)

func newMemBatch(out SetDeleter) *memBatch {
	return &memBatch{out: out}
}

func (b *memBatch) Set(key, value []byte) error {
	b.ops = append(b.ops, memOp{key: key, value: value})
	return nil
}

func (b *memBatch) Delete(key []byte) error {
	b.ops = append(b.ops, memOp{key: key, deleted: true})
	return nil
}

// Write replays all recorded writes and resets the batch.
func (b *memBatch) Write() error {
	for _, op := range b.ops {
		var err error
		if op.deleted {
			err = b.out.Delete(op.key)
		} else {
			err = b.out.Set(op.key, op.value)
		}
		if err != nil {
			return err
		}
	}
	b.ops = nil
	return nil
}
