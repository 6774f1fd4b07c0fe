package nft

import (
	chill "github.com/chill-token/chill"
	"github.com/chill-token/chill/errors"
	"github.com/chill-token/chill/x/currency"
	"github.com/chill-token/chill/x/minter"
)

// Request describes a non fungible token to mint.
type Request struct {
	Authority chill.Address
	Category  Category
	Name      string
	URI       string
}

// Validate returns an error if the request is malformed.
func (r Request) Validate() error {
	if err := r.Authority.Validate(); err != nil {
		return errors.Wrap(err, "authority")
	}
	if err := r.Category.Validate(); err != nil {
		return err
	}
	return validateMetadata(r.Name, r.URI)
}

// Minter creates non fungible tokens.
type Minter struct {
	mints  currency.Controller
	minter minter.Minter
	assets AssetBucket
}

// NewMinter returns a non fungible token minter.
func NewMinter(mints currency.Controller, m minter.Minter, assets AssetBucket) Minter {
	return Minter{mints: mints, minter: m, assets: assets}
}

// MintNFT creates a new fixed supply mint, credits its single unit to the
// authority and stores the asset description. The address of the new mint
// is returned.
func (m Minter) MintNFT(db chill.KVStore, req Request) (chill.Address, error) {
	if err := req.Validate(); err != nil {
		return nil, errors.Wrap(err, "request")
	}
	addr, err := m.mints.CreateMint(db, req.Authority, 0, true)
	if err != nil {
		return nil, err
	}
	_, err = m.minter.Mint(db, minter.Request{
		Mint:      addr,
		Authority: req.Authority,
		Amount:    1,
		Target:    req.Authority,
	})
	if err != nil {
		return nil, errors.Wrap(err, "cannot mint token")
	}
	asset := &Asset{
		Mint:     addr,
		Category: string(req.Category),
		Name:     req.Name,
		URI:      req.URI,
	}
	if err := m.assets.Save(db, asset); err != nil {
		return nil, errors.Wrap(err, "cannot save asset")
	}
	return addr, nil
}
