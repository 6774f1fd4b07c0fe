package registry

import (
	"math"

	chill "github.com/chill-token/chill"
	"github.com/chill-token/chill/errors"
	"github.com/chill-token/chill/x/split"
)

// MaxRecipients is the capacity of a share table.
const MaxRecipients = 3

var _ chill.Model = (*Registry)(nil)

// Validate returns an error if the registry does not hold a complete and
// consistent configuration.
func (r *Registry) Validate() error {
	if err := r.Mint.Validate(); err != nil {
		return errors.Wrap(err, "mint")
	}
	table, err := r.Table()
	if err != nil {
		return err
	}
	if err := table.Validate(); err != nil {
		return err
	}
	if r.Weights == nil {
		return errors.Wrap(errors.ErrModel, "missing category weights")
	}
	if err := r.Weights.Validate(); err != nil {
		return errors.Wrap(err, "category weights")
	}
	if r.TransactionFee > split.MaxBasisPoints {
		return errors.Wrapf(errors.ErrInput, "transaction fee of %d basis points", r.TransactionFee)
	}
	return nil
}

// Table returns the ordered share table of this registry.
func (r *Registry) Table() (ShareTable, error) {
	shares := make([]RecipientShare, 0, len(r.Recipients))
	for i, rs := range r.Recipients {
		if rs == nil {
			return ShareTable{}, errors.Wrapf(errors.ErrModel, "recipient %d is nil", i)
		}
		shares = append(shares, *rs)
	}
	return NewShareTable(shares...)
}

// Validate returns an error if any of the weights is not a finite,
// non-negative number.
func (w *CategoryWeights) Validate() error {
	weights := []struct {
		name  string
		value float64
	}{
		{"character", w.Character},
		{"pet", w.Pet},
		{"emote", w.Emote},
		{"tileset", w.Tileset},
		{"item", w.Item},
	}
	for _, c := range weights {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) || c.value < 0 {
			return errors.Wrapf(errors.ErrInput, "%s weight %v", c.name, c.value)
		}
	}
	return nil
}

// ShareTable is an ordered list of one to MaxRecipients recipient shares.
// The capacity is fixed, so a table can never hold more recipients than
// allowed.
type ShareTable struct {
	entries [MaxRecipients]RecipientShare
	size    int
}

// NewShareTable returns a table holding given shares in the same order.
// ErrInvalidShareCount is returned when there are no shares or more than
// the table can hold.
func NewShareTable(shares ...RecipientShare) (ShareTable, error) {
	var t ShareTable
	switch n := len(shares); {
	case n == 0:
		return t, errors.Wrap(errors.ErrInvalidShareCount, "no recipients")
	case n > MaxRecipients:
		return t, errors.Wrapf(errors.ErrInvalidShareCount,
			"%d recipients, at most %d allowed", n, MaxRecipients)
	}
	t.size = copy(t.entries[:], shares)
	return t, nil
}

// Validate returns an error if the mint shares or the transaction shares do
// not sum up to a whole, or if any recipient address is invalid or
// repeated.
func (t ShareTable) Validate() error {
	var mintSum, txSum uint64
	for _, s := range t.Entries() {
		mintSum += uint64(s.MintShare)
		txSum += uint64(s.TransactionShare)
	}
	if mintSum != split.Whole {
		return errors.Wrapf(errors.ErrShareSumMismatch, "mint shares sum to %d", mintSum)
	}
	if txSum != split.Whole {
		return errors.Wrapf(errors.ErrShareSumMismatch, "transaction shares sum to %d", txSum)
	}

	addresses := make(map[string]struct{})
	for i, s := range t.Entries() {
		if err := s.Address.Validate(); err != nil {
			return errors.Wrapf(err, "recipient %d address", i)
		}
		addr := s.Address.String()
		if _, ok := addresses[addr]; ok {
			return errors.Wrapf(errors.ErrInput, "recipient %q is not unique", addr)
		}
		addresses[addr] = struct{}{}
	}
	return nil
}

// Len returns the number of recipients.
func (t ShareTable) Len() int {
	return t.size
}

// Entries returns a copy of all recipient shares in order.
func (t ShareTable) Entries() []RecipientShare {
	out := make([]RecipientShare, t.size)
	copy(out, t.entries[:t.size])
	return out
}

// Recipients returns addresses of all recipients in order.
func (t ShareTable) Recipients() []chill.Address {
	out := make([]chill.Address, t.size)
	for i, s := range t.entries[:t.size] {
		out[i] = s.Address
	}
	return out
}

// MintShares returns the mint shares of all recipients in order.
func (t ShareTable) MintShares() []uint32 {
	out := make([]uint32, t.size)
	for i, s := range t.entries[:t.size] {
		out[i] = s.MintShare
	}
	return out
}

// TransactionShares returns the transaction shares of all recipients in
// order.
func (t ShareTable) TransactionShares() []uint32 {
	out := make([]uint32, t.size)
	for i, s := range t.entries[:t.size] {
		out[i] = s.TransactionShare
	}
	return out
}
