/*
Package minter issues new supply of a mint.

Minted tokens go either to an explicit target, or are split between the
recipients of the revenue share registry bound to the mint. Without a target
and without a registry the whole amount goes to the mint authority.
*/
package minter

import (
	chill "github.com/chill-token/chill"
	"github.com/chill-token/chill/errors"
	"github.com/chill-token/chill/x/cash"
	"github.com/chill-token/chill/x/currency"
	"github.com/chill-token/chill/x/registry"
	"github.com/chill-token/chill/x/split"
)

// Request describes a single mint operation.
type Request struct {
	// Mint is the address of the mint to issue.
	Mint chill.Address
	// Authority signs the operation and must own the mint.
	Authority chill.Address
	Amount    uint64
	// Target is optional. When set, the whole amount is credited to it
	// and no split applies.
	Target chill.Address
}

// Validate returns an error if the request is malformed.
func (r Request) Validate() error {
	if err := r.Mint.Validate(); err != nil {
		return errors.Wrap(err, "mint")
	}
	if err := r.Authority.Validate(); err != nil {
		return errors.Wrap(err, "authority")
	}
	if r.Target != nil {
		if err := r.Target.Validate(); err != nil {
			return errors.Wrap(err, "target")
		}
	}
	return nil
}

// Beneficiary returns the owner whose balance is reported back.
func (r Request) Beneficiary() chill.Address {
	if r.Target != nil {
		return r.Target
	}
	return r.Authority
}

// Result is the outcome of a mint operation.
type Result struct {
	// Supply is the total supply of the mint after the operation.
	Supply uint64
	// Balance is the balance of the beneficiary after the operation.
	Balance uint64
	Credits []cash.Credit
}

// Minter issues new tokens.
type Minter struct {
	mints    currency.Controller
	accounts cash.Controller
}

// NewMinter returns a minter that uses given controllers.
func NewMinter(mints currency.Controller, accounts cash.Controller) Minter {
	return Minter{mints: mints, accounts: accounts}
}

// Mint increases the supply of a mint and credits the new tokens. All
// changes are written to given store, so the caller decides if they are
// committed.
func (m Minter) Mint(db chill.KVStore, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, errors.Wrap(err, "request")
	}
	mint, err := m.mints.Issue(db, req.Mint, req.Authority, req.Amount)
	if err != nil {
		return nil, errors.Wrap(err, "cannot issue")
	}

	var credits []cash.Credit
	if req.Amount > 0 {
		credits, err = m.credits(db, req)
		if err != nil {
			return nil, err
		}
		for _, c := range credits {
			if _, err := m.accounts.Issue(db, c.Owner, req.Mint, c.Amount); err != nil {
				return nil, errors.Wrapf(err, "cannot credit %s", c.Owner)
			}
		}
	}

	res := &Result{Supply: mint.Supply, Credits: credits}
	acc, err := m.accounts.Balance(db, req.Beneficiary(), req.Mint)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read beneficiary balance")
	}
	if acc != nil {
		res.Balance = acc.Balance
	}
	return res, nil
}

// credits computes who receives the minted amount.
func (m Minter) credits(db chill.ReadOnlyKVStore, req Request) ([]cash.Credit, error) {
	if req.Target != nil {
		return []cash.Credit{{Owner: req.Target, Amount: req.Amount}}, nil
	}

	reg, err := registry.ForMint(db, req.Mint)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return []cash.Credit{{Owner: req.Authority, Amount: req.Amount}}, nil
	}

	table, err := reg.Table()
	if err != nil {
		return nil, errors.Wrap(err, "registry")
	}
	portions, err := split.Split(req.Amount, table.MintShares())
	if err != nil {
		return nil, errors.Wrap(err, "cannot split")
	}
	recipients := table.Recipients()
	credits := make([]cash.Credit, len(portions))
	for i, p := range portions {
		credits[i] = cash.Credit{Owner: recipients[i], Amount: p}
	}
	return credits, nil
}
