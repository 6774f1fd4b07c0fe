package currency

import (
	chill "github.com/chill-token/chill"
	"github.com/chill-token/chill/errors"
)

// Controller exposes the mint operations other extensions depend on.
type Controller interface {
	CreateMint(db chill.KVStore, authority chill.Address, decimals uint32, fixedSupply bool) (chill.Address, error)
	Mint(db chill.ReadOnlyKVStore, addr chill.Address) (*Mint, error)
	Issue(db chill.KVStore, addr chill.Address, signer chill.Address, amount uint64) (*Mint, error)
}

// MintController is the default Controller implementation.
type MintController struct {
	bucket *MintBucket
}

var _ Controller = MintController{}

// NewController returns a controller that operates on given bucket.
func NewController(bucket *MintBucket) MintController {
	return MintController{bucket: bucket}
}

// CreateMint registers a new mint with no supply.
func (c MintController) CreateMint(db chill.KVStore, authority chill.Address, decimals uint32, fixedSupply bool) (chill.Address, error) {
	m := &Mint{
		Authority:   authority,
		Decimals:    decimals,
		FixedSupply: fixedSupply,
	}
	addr, err := c.bucket.Create(db, m)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create mint")
	}
	return addr, nil
}

// Mint returns the mint with given address or ErrNotFound.
func (c MintController) Mint(db chill.ReadOnlyKVStore, addr chill.Address) (*Mint, error) {
	return c.bucket.Get(db, addr)
}

// Issue increases the supply of a mint. Only the mint authority can issue.
// A fixed supply mint can be issued only once.
func (c MintController) Issue(db chill.KVStore, addr chill.Address, signer chill.Address, amount uint64) (*Mint, error) {
	m, err := c.bucket.Get(db, addr)
	if err != nil {
		return nil, errors.Wrapf(err, "mint %s", addr)
	}
	if !m.Authority.Equals(signer) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "%s is not the mint authority", signer)
	}
	if m.FixedSupply && m.Supply != 0 {
		return nil, errors.Wrapf(errors.ErrState, "supply of mint %s is fixed", addr)
	}
	if m.Supply+amount < m.Supply {
		return nil, errors.Wrap(errors.ErrOverflow, "supply")
	}
	m.Supply += amount
	if err := c.bucket.Save(db, addr, m); err != nil {
		return nil, errors.Wrap(err, "cannot save mint")
	}
	return m, nil
}
