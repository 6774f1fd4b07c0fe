package main

import (
	"math"
	"math/big"

	"github.com/chill-token/chill/errors"
	"github.com/shopspring/decimal"
)

// parseAmount converts a human readable token amount into the smallest unit
// of a mint with given number of decimals.
func parseAmount(raw string, decimals uint32) (uint64, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, errors.Wrapf(errors.ErrAmount, "%q is not a number", raw)
	}
	if d.Sign() < 0 {
		return 0, errors.Wrapf(errors.ErrAmount, "negative amount %s", raw)
	}
	units := d.Shift(int32(decimals))
	if !units.Equal(units.Truncate(0)) {
		return 0, errors.Wrapf(errors.ErrAmount, "%s has more than %d decimals", raw, decimals)
	}
	n := units.BigInt()
	if !n.IsUint64() {
		return 0, errors.Wrapf(errors.ErrOverflow, "amount %s above %d units", raw, uint64(math.MaxUint64))
	}
	return n.Uint64(), nil
}

// formatAmount returns a human readable representation of an amount given
// in the smallest unit of a mint.
func formatAmount(units uint64, decimals uint32) string {
	n := new(big.Int).SetUint64(units)
	return decimal.NewFromBigInt(n, -int32(decimals)).String()
}
