package nft

import (
	"strings"
	"testing"

	"github.com/chill-token/chill/chilltest"
	"github.com/chill-token/chill/chilltest/assert"
	"github.com/chill-token/chill/errors"
	"github.com/chill-token/chill/store"
	"github.com/chill-token/chill/x/cash"
	"github.com/chill-token/chill/x/currency"
	"github.com/chill-token/chill/x/minter"
	"github.com/chill-token/chill/x/settlement"
)

func TestMintNFT(t *testing.T) {
	db := store.MemStore()
	mints := currency.NewController(currency.NewMintBucket())
	accounts := cash.NewController(cash.NewAccountBucket())
	assets := NewAssetBucket()
	m := NewMinter(mints, minter.NewMinter(mints, accounts), assets)
	authority := chilltest.RandomAddr(t)

	addr, err := m.MintNFT(db, Request{
		Authority: authority,
		Category:  Pet,
		Name:      "Fluffy",
		URI:       "https://example.com/fluffy.json",
	})
	assert.Nil(t, err)

	mint, err := mints.Mint(db, addr)
	assert.Nil(t, err)
	assert.Equal(t, uint64(1), mint.Supply)
	assert.Equal(t, uint32(0), mint.Decimals)
	assert.Equal(t, true, mint.FixedSupply)

	acc, err := accounts.Balance(db, authority, addr)
	assert.Nil(t, err)
	assert.Equal(t, uint64(1), acc.Balance)

	asset, err := assets.Get(db, addr)
	assert.Nil(t, err)
	assert.Equal(t, &Asset{Mint: addr, Category: "pet", Name: "Fluffy", URI: "https://example.com/fluffy.json"}, asset)

	// Supply cannot grow any further.
	_, err = minter.NewMinter(mints, accounts).Mint(db, minter.Request{Mint: addr, Authority: authority, Amount: 1})
	assert.IsErr(t, errors.ErrState, err)

	// Every token is a separate mint.
	other, err := m.MintNFT(db, Request{Authority: authority, Category: Item, Name: "Sword", URI: "ipfs://sword"})
	assert.Nil(t, err)
	if other.Equals(addr) {
		t.Fatal("two tokens share a mint")
	}
}

func TestTransferNFT(t *testing.T) {
	db := store.MemStore()
	mints := currency.NewController(currency.NewMintBucket())
	accounts := cash.NewController(cash.NewAccountBucket())
	m := NewMinter(mints, minter.NewMinter(mints, accounts), NewAssetBucket())
	authority := chilltest.RandomAddr(t)
	bob := chilltest.RandomAddr(t)

	addr, err := m.MintNFT(db, Request{Authority: authority, Category: Character, Name: "Hero", URI: "ipfs://hero"})
	assert.Nil(t, err)

	_, err = settlement.NewSettlement(mints, accounts).Transfer(db, settlement.Request{
		Mint: addr, Sender: authority, Recipient: bob, Amount: 1,
	})
	assert.Nil(t, err)

	acc, err := accounts.Balance(db, authority, addr)
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), acc.Balance)
	acc, err = accounts.Balance(db, bob, addr)
	assert.Nil(t, err)
	assert.Equal(t, uint64(1), acc.Balance)
}

func TestMintNFTValidation(t *testing.T) {
	authority := chilltest.RandomAddr(t)

	cases := map[string]struct {
		Req     Request
		WantErr *errors.Error
	}{
		"valid": {
			Req: Request{Authority: authority, Category: Tileset, Name: "Forest", URI: "ipfs://forest"},
		},
		"unknown category": {
			Req:     Request{Authority: authority, Category: "vehicle", Name: "Car", URI: "ipfs://car"},
			WantErr: errors.ErrInput,
		},
		"missing name": {
			Req:     Request{Authority: authority, Category: Emote, URI: "ipfs://smile"},
			WantErr: errors.ErrInput,
		},
		"name too long": {
			Req:     Request{Authority: authority, Category: Emote, Name: strings.Repeat("x", 33), URI: "ipfs://smile"},
			WantErr: errors.ErrInput,
		},
		"missing uri": {
			Req:     Request{Authority: authority, Category: Emote, Name: "Smile"},
			WantErr: errors.ErrInput,
		},
		"uri too long": {
			Req:     Request{Authority: authority, Category: Emote, Name: "Smile", URI: strings.Repeat("u", 201)},
			WantErr: errors.ErrInput,
		},
		"missing authority": {
			Req:     Request{Category: Emote, Name: "Smile", URI: "ipfs://smile"},
			WantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			mints := currency.NewController(currency.NewMintBucket())
			accounts := cash.NewController(cash.NewAccountBucket())
			m := NewMinter(mints, minter.NewMinter(mints, accounts), NewAssetBucket())

			_, err := m.MintNFT(db, tc.Req)
			assert.IsErr(t, tc.WantErr, err)
		})
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories {
		got, err := ParseCategory(string(c))
		assert.Nil(t, err)
		assert.Equal(t, c, got)
	}
	_, err := ParseCategory("Pet")
	assert.IsErr(t, errors.ErrInput, err)
}
