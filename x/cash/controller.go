package cash

import (
	chill "github.com/chill-token/chill"
	"github.com/chill-token/chill/errors"
)

// Credit is a single balance increase made by an operation.
type Credit struct {
	Owner  chill.Address
	Amount uint64
}

// Controller is the functionality other extensions need to manage token
// accounts.
type Controller interface {
	Balance(db chill.ReadOnlyKVStore, owner, mint chill.Address) (*Account, error)
	AccountBalance(db chill.ReadOnlyKVStore, account chill.Address) (*Account, error)
	Ensure(db chill.KVStore, owner, mint chill.Address) (*Account, error)
	Issue(db chill.KVStore, owner, mint chill.Address, amount uint64) (*Account, error)
	Move(db chill.KVStore, mint, src, dest chill.Address, amount uint64) error
}

// BaseController is a simple implementation of the Controller.
type BaseController struct {
	bucket AccountBucket
}

var _ Controller = BaseController{}

// NewController returns a controller that operates on given bucket.
func NewController(bucket AccountBucket) BaseController {
	return BaseController{bucket: bucket}
}

// Balance returns the account of an owner for given mint. A nil account is
// returned if the owner was never credited with tokens of that mint.
func (c BaseController) Balance(db chill.ReadOnlyKVStore, owner, mint chill.Address) (*Account, error) {
	return c.AccountBalance(db, AccountAddress(owner, mint))
}

// AccountBalance returns the account with given address, or nil if there is
// no such account.
func (c BaseController) AccountBalance(db chill.ReadOnlyKVStore, account chill.Address) (*Account, error) {
	a, err := c.bucket.Get(db, account)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read account")
	}
	return a, nil
}

// Ensure creates the account of an owner for a mint if it does not exist.
func (c BaseController) Ensure(db chill.KVStore, owner, mint chill.Address) (*Account, error) {
	return c.Issue(db, owner, mint, 0)
}

// Issue credits the account of an owner with given amount of tokens. The
// account is created if needed.
func (c BaseController) Issue(db chill.KVStore, owner, mint chill.Address, amount uint64) (*Account, error) {
	a, err := c.bucket.GetOrCreate(db, owner, mint)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read account")
	}
	if a.Balance+amount < a.Balance {
		return nil, errors.Wrapf(errors.ErrOverflow, "balance of %s", a.Address())
	}
	a.Balance += amount
	if err := c.bucket.Save(db, a); err != nil {
		return nil, errors.Wrap(err, "cannot save account")
	}
	return a, nil
}

// Move transfers tokens of a mint between two owners. It fails with
// ErrInsufficientBalance if the source does not hold enough tokens. A
// missing source account holds no tokens. The destination account is
// always created.
func (c BaseController) Move(db chill.KVStore, mint, src, dest chill.Address, amount uint64) error {
	sender, err := c.Balance(db, src, mint)
	if err != nil {
		return err
	}
	var balance uint64
	if sender != nil {
		balance = sender.Balance
	}
	if balance < amount {
		return errors.Wrapf(errors.ErrInsufficientBalance,
			"%s holds %d, %d required", src, balance, amount)
	}
	if amount > 0 {
		sender.Balance -= amount
		if err := c.bucket.Save(db, sender); err != nil {
			return errors.Wrap(err, "cannot save sender")
		}
	}
	if _, err := c.Issue(db, dest, mint, amount); err != nil {
		return errors.Wrap(err, "cannot credit recipient")
	}
	return nil
}
