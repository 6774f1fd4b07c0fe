package registry

import (
	chill "github.com/chill-token/chill"
	"github.com/chill-token/chill/errors"
	"github.com/chill-token/chill/gconf"
)

// PkgName is the name under which the registry is stored.
const PkgName = "registry"

// Initialize validates and stores the registry. It can be done only once,
// any further call fails with ErrAlreadyInitialized.
func Initialize(
	db chill.KVStore,
	mint chill.Address,
	recipients []RecipientShare,
	weights CategoryWeights,
	transactionFee uint32,
) (*Registry, error) {
	table, err := NewShareTable(recipients...)
	if err != nil {
		return nil, err
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}

	switch ok, err := gconf.Has(db, PkgName); {
	case err != nil:
		return nil, errors.Wrap(err, "cannot check registry")
	case ok:
		return nil, errors.Wrap(errors.ErrAlreadyInitialized, "registry")
	}

	r := &Registry{
		Mint:           mint,
		Weights:        &weights,
		TransactionFee: transactionFee,
	}
	for _, s := range table.Entries() {
		s := s
		r.Recipients = append(r.Recipients, &s)
	}
	if err := gconf.Save(db, PkgName, r); err != nil {
		return nil, errors.Wrap(err, "cannot save registry")
	}
	return r, nil
}

// Load returns the stored registry. ErrNotFound is returned if the registry
// was not initialized.
func Load(db chill.ReadOnlyKVStore) (*Registry, error) {
	var r Registry
	if err := gconf.Load(db, PkgName, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// ForMint returns the registry if it distributes given mint. nil is
// returned if there is no registry or it is bound to a different mint.
func ForMint(db chill.ReadOnlyKVStore, mint chill.Address) (*Registry, error) {
	r, err := Load(db)
	switch {
	case errors.ErrNotFound.Is(err):
		return nil, nil
	case err != nil:
		return nil, errors.Wrap(err, "cannot load registry")
	case !r.Mint.Equals(mint):
		return nil, nil
	}
	return r, nil
}
