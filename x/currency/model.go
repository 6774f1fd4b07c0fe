package currency

import (
	chill "github.com/chill-token/chill"
	"github.com/chill-token/chill/errors"
	"github.com/chill-token/chill/orm"
)

// MaxDecimals is the highest precision a mint can declare. Any higher value
// would not leave room for a single whole token in an uint64 amount.
const MaxDecimals = 18

var _ chill.Model = (*Mint)(nil)

// Validate ensures the mint is in a consistent state.
func (m *Mint) Validate() error {
	if err := m.Authority.Validate(); err != nil {
		return errors.Wrap(err, "authority")
	}
	if m.Decimals > MaxDecimals {
		return errors.Wrapf(errors.ErrModel, "%d decimals, at most %d allowed", m.Decimals, MaxDecimals)
	}
	return nil
}

// MintBucket stores Mint instances, using the mint address as the key.
type MintBucket struct {
	orm.Bucket
	seq orm.Sequence
}

// NewMintBucket returns a bucket for managing mints.
func NewMintBucket() *MintBucket {
	return &MintBucket{
		Bucket: orm.NewBucket("mint", &Mint{}),
		seq:    orm.NewSequence("mint", "id"),
	}
}

// Get returns the mint stored under given address. ErrNotFound is returned
// if no such mint exists.
func (b *MintBucket) Get(db chill.ReadOnlyKVStore, addr chill.Address) (*Mint, error) {
	var m Mint
	if err := b.One(db, addr, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Create stores given mint under a newly allocated address, that is returned.
func (b *MintBucket) Create(db chill.KVStore, m *Mint) (chill.Address, error) {
	id, err := b.seq.NextVal(db)
	if err != nil {
		return nil, errors.Wrap(err, "cannot allocate mint address")
	}
	addr := MintAddress(id)
	if err := b.Put(db, addr, m); err != nil {
		return nil, err
	}
	return addr, nil
}

// Save writes the state of an existing mint.
func (b *MintBucket) Save(db chill.KVStore, addr chill.Address, m *Mint) error {
	return b.Put(db, addr, m)
}

// MintAddress returns the address of a mint created with given sequence
// value.
func MintAddress(id []byte) chill.Address {
	return chill.NewCondition("currency", "mint", id).Address()
}
