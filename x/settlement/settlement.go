/*
Package settlement moves tokens between owners.

Transfers of the mint bound to the revenue share registry pay a cut to the
registry recipients, split by their transaction shares. The transferee
receives whatever is left. Transfers of any other mint, and of fixed supply
mints in particular, are never split.
*/
package settlement

import (
	chill "github.com/chill-token/chill"
	"github.com/chill-token/chill/errors"
	"github.com/chill-token/chill/x/cash"
	"github.com/chill-token/chill/x/currency"
	"github.com/chill-token/chill/x/registry"
	"github.com/chill-token/chill/x/split"
)

// Request describes a single transfer.
type Request struct {
	Mint      chill.Address
	Sender    chill.Address
	Recipient chill.Address
	Amount    uint64
}

// Validate returns an error if the request is malformed.
func (r Request) Validate() error {
	if err := r.Mint.Validate(); err != nil {
		return errors.Wrap(err, "mint")
	}
	if err := r.Sender.Validate(); err != nil {
		return errors.Wrap(err, "sender")
	}
	if err := r.Recipient.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	return nil
}

// Report is the outcome of a transfer.
type Report struct {
	// Credits lists every balance increase. Share recipients come first
	// and the transferee is always last.
	Credits []cash.Credit
	// SenderBalance is the balance of the sender after the transfer.
	SenderBalance uint64
}

// Redirected returns the total amount paid to the share recipients.
func (r *Report) Redirected() uint64 {
	var sum uint64
	for _, c := range r.Credits[:len(r.Credits)-1] {
		sum += c.Amount
	}
	return sum
}

// Settlement executes transfers.
type Settlement struct {
	mints    currency.Controller
	accounts cash.Controller
}

// NewSettlement returns a settlement that uses given controllers.
func NewSettlement(mints currency.Controller, accounts cash.Controller) Settlement {
	return Settlement{mints: mints, accounts: accounts}
}

// Transfer moves the amount from the sender. On failure the store might
// hold partial changes, so the caller must discard it.
func (s Settlement) Transfer(db chill.KVStore, req Request) (*Report, error) {
	if err := req.Validate(); err != nil {
		return nil, errors.Wrap(err, "request")
	}
	mint, err := s.mints.Mint(db, req.Mint)
	if err != nil {
		return nil, errors.Wrapf(err, "mint %s", req.Mint)
	}

	sender, err := s.accounts.Balance(db, req.Sender, req.Mint)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read sender")
	}
	var balance uint64
	if sender != nil {
		balance = sender.Balance
	}
	if balance < req.Amount {
		return nil, errors.Wrapf(errors.ErrInsufficientBalance,
			"%s holds %d, %d required", req.Sender, balance, req.Amount)
	}

	var credits []cash.Credit
	if !mint.FixedSupply {
		credits, err = s.shares(db, req)
		if err != nil {
			return nil, err
		}
	}

	var redirected uint64
	for _, c := range credits {
		if err := s.accounts.Move(db, req.Mint, req.Sender, c.Owner, c.Amount); err != nil {
			return nil, errors.Wrapf(err, "cannot pay share to %s", c.Owner)
		}
		redirected += c.Amount
	}
	residual := cash.Credit{Owner: req.Recipient, Amount: req.Amount - redirected}
	if err := s.accounts.Move(db, req.Mint, req.Sender, residual.Owner, residual.Amount); err != nil {
		return nil, errors.Wrap(err, "cannot pay recipient")
	}

	after, err := s.accounts.Balance(db, req.Sender, req.Mint)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read sender")
	}
	rep := &Report{Credits: append(credits, residual)}
	if after != nil {
		rep.SenderBalance = after.Balance
	}
	return rep, nil
}

// shares returns the credits paid to the registry recipients. A portion
// that belongs to the sender stays with the transfer.
func (s Settlement) shares(db chill.ReadOnlyKVStore, req Request) ([]cash.Credit, error) {
	reg, err := registry.ForMint(db, req.Mint)
	if err != nil || reg == nil {
		return nil, err
	}
	cut, err := split.Cut(req.Amount, reg.TransactionFee)
	if err != nil {
		return nil, errors.Wrap(err, "transaction fee")
	}
	table, err := reg.Table()
	if err != nil {
		return nil, errors.Wrap(err, "registry")
	}
	portions, err := split.Split(cut, table.TransactionShares())
	if err != nil {
		return nil, errors.Wrap(err, "cannot split")
	}

	var credits []cash.Credit
	for i, owner := range table.Recipients() {
		if portions[i] == 0 || owner.Equals(req.Sender) {
			continue
		}
		credits = append(credits, cash.Credit{Owner: owner, Amount: portions[i]})
	}
	return credits, nil
}
