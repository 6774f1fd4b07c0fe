package registry

import (
	"math"
	"strings"
	"testing"

	chill "github.com/chill-token/chill"
	"github.com/chill-token/chill/chilltest"
	"github.com/chill-token/chill/chilltest/assert"
	"github.com/chill-token/chill/errors"
	"github.com/chill-token/chill/store"
)

func TestInitialize(t *testing.T) {
	mint := chilltest.RandomAddr(t)
	alice := chilltest.RandomAddr(t)
	bob := chilltest.RandomAddr(t)
	charlie := chilltest.RandomAddr(t)
	dave := chilltest.RandomAddr(t)

	weights := CategoryWeights{Character: 0.5, Pet: 0.1, Emote: 0.1, Tileset: 0.2, Item: 0.1}

	cases := map[string]struct {
		Recipients []RecipientShare
		Weights    CategoryWeights
		Fee        uint32
		WantErr    *errors.Error
	}{
		"single recipient": {
			Recipients: []RecipientShare{
				{Address: alice, MintShare: 100, TransactionShare: 100},
			},
			Weights: weights,
			Fee:     10000,
		},
		"three recipients with independent shares": {
			Recipients: []RecipientShare{
				{Address: alice, MintShare: 50, TransactionShare: 0},
				{Address: bob, MintShare: 25, TransactionShare: 60},
				{Address: charlie, MintShare: 25, TransactionShare: 40},
			},
			Weights: weights,
			Fee:     250,
		},
		"no recipients": {
			Recipients: nil,
			Weights:    weights,
			WantErr:    errors.ErrInvalidShareCount,
		},
		"four recipients": {
			Recipients: []RecipientShare{
				{Address: alice, MintShare: 25, TransactionShare: 25},
				{Address: bob, MintShare: 25, TransactionShare: 25},
				{Address: charlie, MintShare: 25, TransactionShare: 25},
				{Address: dave, MintShare: 25, TransactionShare: 25},
			},
			Weights: weights,
			WantErr: errors.ErrInvalidShareCount,
		},
		"mint shares below whole": {
			Recipients: []RecipientShare{
				{Address: alice, MintShare: 50, TransactionShare: 50},
				{Address: bob, MintShare: 49, TransactionShare: 50},
			},
			Weights: weights,
			WantErr: errors.ErrShareSumMismatch,
		},
		"transaction shares above whole": {
			Recipients: []RecipientShare{
				{Address: alice, MintShare: 50, TransactionShare: 50},
				{Address: bob, MintShare: 50, TransactionShare: 51},
			},
			Weights: weights,
			WantErr: errors.ErrShareSumMismatch,
		},
		"repeated recipient": {
			Recipients: []RecipientShare{
				{Address: alice, MintShare: 50, TransactionShare: 50},
				{Address: alice, MintShare: 50, TransactionShare: 50},
			},
			Weights: weights,
			WantErr: errors.ErrInput,
		},
		"invalid recipient address": {
			Recipients: []RecipientShare{
				{Address: chill.Address("short"), MintShare: 100, TransactionShare: 100},
			},
			Weights: weights,
			WantErr: errors.ErrInput,
		},
		"negative weight": {
			Recipients: []RecipientShare{
				{Address: alice, MintShare: 100, TransactionShare: 100},
			},
			Weights: CategoryWeights{Pet: -1},
			WantErr: errors.ErrInput,
		},
		"not a number weight": {
			Recipients: []RecipientShare{
				{Address: alice, MintShare: 100, TransactionShare: 100},
			},
			Weights: CategoryWeights{Item: math.NaN()},
			WantErr: errors.ErrInput,
		},
		"fee above whole transfer": {
			Recipients: []RecipientShare{
				{Address: alice, MintShare: 100, TransactionShare: 100},
			},
			Weights: weights,
			Fee:     10001,
			WantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()

			r, err := Initialize(db, mint, tc.Recipients, tc.Weights, tc.Fee)
			assert.IsErr(t, tc.WantErr, err)

			loaded, lerr := Load(db)
			if tc.WantErr != nil {
				// Nothing must be stored on failure.
				assert.IsErr(t, errors.ErrNotFound, lerr)
				return
			}
			assert.Nil(t, lerr)
			assert.Equal(t, r, loaded)

			table, err := loaded.Table()
			assert.Nil(t, err)
			assert.Equal(t, len(tc.Recipients), table.Len())
			for i, want := range tc.Recipients {
				got := table.Entries()[i]
				if !want.Address.Equals(got.Address) {
					t.Fatalf("recipient %d: want %s, got %s", i, want.Address, got.Address)
				}
				assert.Equal(t, want.MintShare, got.MintShare)
				assert.Equal(t, want.TransactionShare, got.TransactionShare)
			}
		})
	}
}

func TestInitializeOnlyOnce(t *testing.T) {
	db := store.MemStore()
	mint := chilltest.RandomAddr(t)
	first := []RecipientShare{{Address: chilltest.RandomAddr(t), MintShare: 100, TransactionShare: 100}}
	second := []RecipientShare{{Address: chilltest.RandomAddr(t), MintShare: 100, TransactionShare: 100}}

	_, err := Initialize(db, mint, first, CategoryWeights{}, 10000)
	assert.Nil(t, err)

	_, err = Initialize(db, mint, second, CategoryWeights{}, 10000)
	assert.IsErr(t, errors.ErrAlreadyInitialized, err)

	// The original configuration is kept.
	r, err := Load(db)
	assert.Nil(t, err)
	assert.Equal(t, first[0].Address, r.Recipients[0].Address)
}

func TestForMint(t *testing.T) {
	db := store.MemStore()
	mint := chilltest.RandomAddr(t)

	r, err := ForMint(db, mint)
	assert.Nil(t, err)
	assert.Nil(t, r)

	recipients := []RecipientShare{{Address: chilltest.RandomAddr(t), MintShare: 100, TransactionShare: 100}}
	_, err = Initialize(db, mint, recipients, CategoryWeights{}, 10000)
	assert.Nil(t, err)

	r, err = ForMint(db, mint)
	assert.Nil(t, err)
	if r == nil {
		t.Fatal("registry not found")
	}

	r, err = ForMint(db, chilltest.RandomAddr(t))
	assert.Nil(t, err)
	assert.Nil(t, r)
}

func TestShareTable(t *testing.T) {
	alice := chilltest.RandomAddr(t)
	bob := chilltest.RandomAddr(t)

	table, err := NewShareTable(
		RecipientShare{Address: alice, MintShare: 70, TransactionShare: 10},
		RecipientShare{Address: bob, MintShare: 30, TransactionShare: 90},
	)
	assert.Nil(t, err)
	assert.Nil(t, table.Validate())
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, []uint32{70, 30}, table.MintShares())
	assert.Equal(t, []uint32{10, 90}, table.TransactionShares())
	assert.Equal(t, []chill.Address{alice, bob}, table.Recipients())

	// Entries returns a copy.
	table.Entries()[0].MintShare = 1
	assert.Equal(t, []uint32{70, 30}, table.MintShares())
}

func TestCategoryWeightsReportFirstInvalid(t *testing.T) {
	w := CategoryWeights{Character: 1, Pet: -1, Emote: math.Inf(1), Item: math.NaN()}
	// Repeat to make sure the reported weight does not depend on
	// iteration order.
	for i := 0; i < 20; i++ {
		err := w.Validate()
		assert.IsErr(t, errors.ErrInput, err)
		if got := err.Error(); !strings.HasPrefix(got, "pet weight") {
			t.Fatalf("unexpected error: %q", got)
		}
	}
}
