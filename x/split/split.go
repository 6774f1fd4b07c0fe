package split

import (
	"math/bits"

	"github.com/chill-token/chill/errors"
)

const (
	// Whole is the sum that all shares of a table must add up to.
	Whole = 100

	// MaxBasisPoints is the value of basis points representing the whole
	// amount.
	MaxBasisPoints = 10000
)

// Split partitions given amount according to the shares. Returned portions
// are in the same order as the shares and their sum is always equal to the
// amount.
func Split(amount uint64, shares []uint32) ([]uint64, error) {
	if len(shares) == 0 {
		return nil, errors.ErrEmptyShareTable
	}
	var sum uint64
	for _, s := range shares {
		sum += uint64(s)
	}
	if sum != Whole {
		return nil, errors.Wrapf(errors.ErrShareSumMismatch, "shares sum to %d", sum)
	}

	portions := make([]uint64, len(shares))
	var given uint64
	last := len(shares) - 1
	for i, s := range shares[:last] {
		portions[i] = fraction(amount, uint64(s), Whole)
		given += portions[i]
	}
	// Rounding leftovers always go to the last entry.
	portions[last] = amount - given
	return portions, nil
}

// Cut returns the part of an amount that given basis points represent,
// rounded down.
func Cut(amount uint64, basisPoints uint32) (uint64, error) {
	if basisPoints > MaxBasisPoints {
		return 0, errors.Wrapf(errors.ErrInput, "%d basis points", basisPoints)
	}
	return fraction(amount, uint64(basisPoints), MaxBasisPoints), nil
}

// fraction returns floor(amount * num / den). The product is computed on 128
// bits so it cannot overflow. Result never exceeds the amount as long as
// num <= den.
func fraction(amount, num, den uint64) uint64 {
	hi, lo := bits.Mul64(amount, num)
	q, _ := bits.Div64(hi, lo, den)
	return q
}
