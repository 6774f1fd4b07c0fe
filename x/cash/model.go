package cash

import (
	"bytes"

	chill "github.com/chill-token/chill"
	"github.com/chill-token/chill/errors"
	"github.com/chill-token/chill/orm"
)

var _ chill.Model = (*Account)(nil)

// Validate ensures the account references a valid owner and mint.
func (a *Account) Validate() error {
	if err := a.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if err := a.Mint.Validate(); err != nil {
		return errors.Wrap(err, "mint")
	}
	return nil
}

// Address returns the address of this account.
func (a *Account) Address() chill.Address {
	return AccountAddress(a.Owner, a.Mint)
}

// AccountAddress returns the address of the account that holds tokens of
// given mint for given owner.
func AccountAddress(owner, mint chill.Address) chill.Address {
	data := bytes.Join([][]byte{owner, mint}, []byte("|"))
	return chill.NewCondition("cash", "account", data).Address()
}

// AccountBucket stores Account instances under their derived address.
type AccountBucket struct {
	orm.Bucket
}

// NewAccountBucket returns a bucket for managing accounts.
func NewAccountBucket() AccountBucket {
	return AccountBucket{
		Bucket: orm.NewBucket("cash", &Account{}),
	}
}

// Get returns the account stored under given address, or nil if there is
// no such account.
func (b AccountBucket) Get(db chill.ReadOnlyKVStore, addr chill.Address) (*Account, error) {
	var a Account
	switch err := b.One(db, addr, &a); {
	case err == nil:
		return &a, nil
	case errors.ErrNotFound.Is(err):
		return nil, nil
	default:
		return nil, err
	}
}

// GetOrCreate returns the account of an owner for a mint. A new account
// with no balance is returned if it does not exist yet. The new account is
// not saved.
func (b AccountBucket) GetOrCreate(db chill.ReadOnlyKVStore, owner, mint chill.Address) (*Account, error) {
	a, err := b.Get(db, AccountAddress(owner, mint))
	if err != nil {
		return nil, err
	}
	if a == nil {
		a = &Account{Owner: owner, Mint: mint}
	}
	return a, nil
}

// Save writes given account.
func (b AccountBucket) Save(db chill.KVStore, a *Account) error {
	return b.Put(db, a.Address(), a)
}
