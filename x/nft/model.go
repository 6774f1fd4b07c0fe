package nft

import (
	"unicode/utf8"

	chill "github.com/chill-token/chill"
	"github.com/chill-token/chill/errors"
	"github.com/chill-token/chill/orm"
)

const (
	maxNameLength = 32
	maxURILength  = 200
)

var _ chill.Model = (*Asset)(nil)

// Validate ensures the asset metadata is within limits.
func (a *Asset) Validate() error {
	if err := a.Mint.Validate(); err != nil {
		return errors.Wrap(err, "mint")
	}
	if err := Category(a.Category).Validate(); err != nil {
		return err
	}
	return validateMetadata(a.Name, a.URI)
}

func validateMetadata(name, uri string) error {
	if n := utf8.RuneCountInString(name); n == 0 || n > maxNameLength {
		return errors.Wrapf(errors.ErrInput, "name must be 1 to %d characters", maxNameLength)
	}
	if n := utf8.RuneCountInString(uri); n == 0 || n > maxURILength {
		return errors.Wrapf(errors.ErrInput, "uri must be 1 to %d characters", maxURILength)
	}
	return nil
}

// AssetBucket stores assets using the mint address as the key.
type AssetBucket struct {
	orm.Bucket
}

// NewAssetBucket returns a bucket for managing assets.
func NewAssetBucket() AssetBucket {
	return AssetBucket{
		Bucket: orm.NewBucket("asset", &Asset{}),
	}
}

// Get returns the asset of given mint. ErrNotFound is returned if the mint
// is not a non fungible token.
func (b AssetBucket) Get(db chill.ReadOnlyKVStore, mint chill.Address) (*Asset, error) {
	var a Asset
	if err := b.One(db, mint, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Save writes given asset.
func (b AssetBucket) Save(db chill.KVStore, a *Asset) error {
	return b.Put(db, a.Mint, a)
}
