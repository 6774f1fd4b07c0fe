package app

import (
	chill "github.com/chill-token/chill"
	"github.com/chill-token/chill/errors"
)

// Config carries the identity an operation is executed with.
type Config struct {
	// Authority is the address of the signer. It owns the default mint.
	Authority chill.Address
	// DefaultMint is used whenever an operation does not name a mint. It
	// can be empty until the first mint is created.
	DefaultMint chill.Address
	// Decimals is the precision of the default mint if an operation has
	// to create it.
	Decimals uint32
}

// Validate returns an error if the configuration cannot be used to sign
// operations.
func (c Config) Validate() error {
	if err := c.Authority.Validate(); err != nil {
		return errors.Wrap(err, "authority")
	}
	if c.DefaultMint != nil {
		if err := c.DefaultMint.Validate(); err != nil {
			return errors.Wrap(err, "default mint")
		}
	}
	return nil
}

// mint returns given mint or the default one.
func (c Config) mint(addr chill.Address) (chill.Address, error) {
	if addr != nil {
		return addr, nil
	}
	if c.DefaultMint == nil {
		return nil, errors.Wrap(errors.ErrNotFound, "no default mint")
	}
	return c.DefaultMint, nil
}
