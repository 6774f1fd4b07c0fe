package app

import (
	chill "github.com/chill-token/chill"
	"github.com/chill-token/chill/errors"
	"github.com/chill-token/chill/x/cash"
	"github.com/chill-token/chill/x/currency"
	"github.com/chill-token/chill/x/minter"
	"github.com/chill-token/chill/x/nft"
	"github.com/chill-token/chill/x/registry"
	"github.com/chill-token/chill/x/settlement"
)

// CreateMint registers a new fungible mint owned by the authority.
func (l *Ledger) CreateMint(conf Config, decimals uint32) (chill.Address, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	var addr chill.Address
	err := l.Atomic("create-mint", func(db chill.KVStore) error {
		var err error
		addr, err = l.mints.CreateMint(db, conf.Authority, decimals, false)
		return err
	})
	return addr, err
}

// MintResult is the outcome of Ledger.Mint.
type MintResult struct {
	minter.Result
	// Mint is the address of the issued mint.
	Mint chill.Address
	// Created is true if the default mint was created by the operation.
	Created bool
}

// Mint issues new supply of the default mint. See minter.Minter for how the
// amount is credited. If the configuration names no default mint, a new
// one is created within the same operation.
func (l *Ledger) Mint(conf Config, amount uint64, target chill.Address) (*MintResult, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	var res MintResult
	err := l.Atomic("mint", func(db chill.KVStore) error {
		var err error
		if res.Mint, res.Created, err = l.defaultMint(db, conf); err != nil {
			return err
		}
		r, err := l.minter.Mint(db, minter.Request{
			Mint:      res.Mint,
			Authority: conf.Authority,
			Amount:    amount,
			Target:    target,
		})
		if err != nil {
			return err
		}
		res.Result = *r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// defaultMint returns the default mint. When the configuration names none,
// a mint owned by the authority is created in db and true is returned.
func (l *Ledger) defaultMint(db chill.KVStore, conf Config) (chill.Address, bool, error) {
	if conf.DefaultMint != nil {
		return conf.DefaultMint, false, nil
	}
	mint, err := l.mints.CreateMint(db, conf.Authority, conf.Decimals, false)
	if err != nil {
		return nil, false, err
	}
	return mint, true, nil
}

// Transfer moves tokens of given mint, or the default one if not given,
// from the authority to the recipient.
func (l *Ledger) Transfer(conf Config, mint, recipient chill.Address, amount uint64) (*settlement.Report, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	mint, err := conf.mint(mint)
	if err != nil {
		return nil, err
	}
	var rep *settlement.Report
	err = l.Atomic("transfer", func(db chill.KVStore) error {
		var err error
		rep, err = l.settle.Transfer(db, settlement.Request{
			Mint:      mint,
			Sender:    conf.Authority,
			Recipient: recipient,
			Amount:    amount,
		})
		return err
	})
	return rep, err
}

// MintNFT creates a non fungible token owned by the authority and returns
// its mint address.
func (l *Ledger) MintNFT(conf Config, category nft.Category, name, uri string) (chill.Address, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	var addr chill.Address
	err := l.Atomic("mint-nft", func(db chill.KVStore) error {
		var err error
		addr, err = l.nfts.MintNFT(db, nft.Request{
			Authority: conf.Authority,
			Category:  category,
			Name:      name,
			URI:       uri,
		})
		return err
	})
	return addr, err
}

// InitResult is the outcome of Ledger.Initialize.
type InitResult struct {
	Registry *registry.Registry
	// Created is true if the default mint was created by the operation.
	Created bool
}

// Initialize creates the revenue share registry for the default mint. Only
// the authority of the mint can initialize it. If the configuration names
// no default mint, a new one is created within the same operation.
func (l *Ledger) Initialize(
	conf Config,
	recipients []registry.RecipientShare,
	weights registry.CategoryWeights,
	transactionFee uint32,
) (*InitResult, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	var res InitResult
	err := l.Atomic("initialize", func(db chill.KVStore) error {
		mint, created, err := l.defaultMint(db, conf)
		if err != nil {
			return err
		}
		m, err := l.mints.Mint(db, mint)
		if err != nil {
			return errors.Wrapf(err, "mint %s", mint)
		}
		if !m.Authority.Equals(conf.Authority) {
			return errors.Wrapf(errors.ErrUnauthorized,
				"%s is not the authority of mint %s", conf.Authority, mint)
		}
		res.Registry, err = registry.Initialize(db, mint, recipients, weights, transactionFee)
		res.Created = created
		return err
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// Balance returns the account of an owner for given mint, or the default
// one. A nil account is returned if the owner was never credited.
func (l *Ledger) Balance(conf Config, owner, mint chill.Address) (*cash.Account, error) {
	mint, err := conf.mint(mint)
	if err != nil {
		return nil, err
	}
	if err := owner.Validate(); err != nil {
		return nil, errors.Wrap(err, "owner")
	}
	var acc *cash.Account
	err = l.View(func(db chill.ReadOnlyKVStore) error {
		var err error
		acc, err = l.accounts.Balance(db, owner, mint)
		return err
	})
	return acc, err
}

// AccountBalance returns the account with given address or nil.
func (l *Ledger) AccountBalance(account chill.Address) (*cash.Account, error) {
	if err := account.Validate(); err != nil {
		return nil, errors.Wrap(err, "account")
	}
	var acc *cash.Account
	err := l.View(func(db chill.ReadOnlyKVStore) error {
		var err error
		acc, err = l.accounts.AccountBalance(db, account)
		return err
	})
	return acc, err
}

// MintInfo returns the mint with given address.
func (l *Ledger) MintInfo(addr chill.Address) (*currency.Mint, error) {
	var m *currency.Mint
	err := l.View(func(db chill.ReadOnlyKVStore) error {
		var err error
		m, err = l.mints.Mint(db, addr)
		return errors.Wrapf(err, "mint %s", addr)
	})
	return m, err
}

// Info describes the state of the default mint and its registry.
type Info struct {
	MintAddress chill.Address
	Mint        *currency.Mint
	// Registry is nil if it was not initialized.
	Registry *registry.Registry
}

// Info returns the default mint and the registry.
func (l *Ledger) Info(conf Config) (*Info, error) {
	mint, err := conf.mint(nil)
	if err != nil {
		return nil, err
	}
	info := &Info{MintAddress: mint}
	if info.Mint, err = l.MintInfo(mint); err != nil {
		return nil, err
	}
	err = l.View(func(db chill.ReadOnlyKVStore) error {
		var err error
		info.Registry, err = registry.ForMint(db, mint)
		return err
	})
	if err != nil {
		return nil, err
	}
	return info, nil
}

// Asset returns the description of a non fungible token.
func (l *Ledger) Asset(mint chill.Address) (*nft.Asset, error) {
	var asset *nft.Asset
	err := l.View(func(db chill.ReadOnlyKVStore) error {
		var err error
		asset, err = l.assets.Get(db, mint)
		return err
	})
	return asset, err
}
