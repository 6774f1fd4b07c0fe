package settlement

import (
	"testing"

	chill "github.com/chill-token/chill"
	"github.com/chill-token/chill/chilltest"
	"github.com/chill-token/chill/chilltest/assert"
	"github.com/chill-token/chill/errors"
	"github.com/chill-token/chill/store"
	"github.com/chill-token/chill/x/cash"
	"github.com/chill-token/chill/x/currency"
	"github.com/chill-token/chill/x/registry"
)

type fixture struct {
	db        chill.CacheableKVStore
	mints     currency.Controller
	accounts  cash.Controller
	settle    Settlement
	authority chill.Address
}

func newFixture(t testing.TB) fixture {
	t.Helper()
	mints := currency.NewController(currency.NewMintBucket())
	accounts := cash.NewController(cash.NewAccountBucket())
	return fixture{
		db:        store.MemStore(),
		mints:     mints,
		accounts:  accounts,
		settle:    NewSettlement(mints, accounts),
		authority: chilltest.RandomAddr(t),
	}
}

// fund creates a mint and credits the authority with given amount.
func (f fixture) fund(t testing.TB, amount uint64, fixed bool) chill.Address {
	t.Helper()
	mint, err := f.mints.CreateMint(f.db, f.authority, 0, fixed)
	assert.Nil(t, err)
	_, err = f.mints.Issue(f.db, mint, f.authority, amount)
	assert.Nil(t, err)
	_, err = f.accounts.Issue(f.db, f.authority, mint, amount)
	assert.Nil(t, err)
	return mint
}

func (f fixture) balance(t testing.TB, owner, mint chill.Address) uint64 {
	t.Helper()
	a, err := f.accounts.Balance(f.db, owner, mint)
	assert.Nil(t, err)
	if a == nil {
		return 0
	}
	return a.Balance
}

func TestTransferWithoutRegistry(t *testing.T) {
	f := newFixture(t)
	mint := f.fund(t, 100, false)
	bob := chilltest.RandomAddr(t)

	rep, err := f.settle.Transfer(f.db, Request{Mint: mint, Sender: f.authority, Recipient: bob, Amount: 40})
	assert.Nil(t, err)
	assert.Equal(t, uint64(60), rep.SenderBalance)
	assert.Equal(t, []cash.Credit{{Owner: bob, Amount: 40}}, rep.Credits)
	assert.Equal(t, uint64(0), rep.Redirected())
	assert.Equal(t, uint64(60), f.balance(t, f.authority, mint))
	assert.Equal(t, uint64(40), f.balance(t, bob, mint))
}

func TestZeroTransfer(t *testing.T) {
	f := newFixture(t)
	mint := f.fund(t, 100, false)
	bob := chilltest.RandomAddr(t)

	_, err := f.settle.Transfer(f.db, Request{Mint: mint, Sender: f.authority, Recipient: bob, Amount: 0})
	assert.Nil(t, err)
	assert.Equal(t, uint64(100), f.balance(t, f.authority, mint))

	// Recipient account is created even though nothing was moved.
	acc, err := f.accounts.Balance(f.db, bob, mint)
	assert.Nil(t, err)
	if acc == nil {
		t.Fatal("recipient account not created")
	}
	assert.Equal(t, uint64(0), acc.Balance)
}

func TestTransferFailures(t *testing.T) {
	cases := map[string]struct {
		Amount  uint64
		Mint    func(f fixture, funded chill.Address) chill.Address
		Sender  func(f fixture) chill.Address
		WantErr *errors.Error
	}{
		"insufficient balance": {
			Amount:  101,
			WantErr: errors.ErrInsufficientBalance,
		},
		"sender without an account": {
			Amount:  1,
			Sender:  func(fixture) chill.Address { return chilltest.RandomAddr(t) },
			WantErr: errors.ErrInsufficientBalance,
		},
		"unknown mint": {
			Amount:  1,
			Mint:    func(fixture, chill.Address) chill.Address { return chilltest.RandomAddr(t) },
			WantErr: errors.ErrNotFound,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			f := newFixture(t)
			funded := f.fund(t, 100, false)
			bob := chilltest.RandomAddr(t)

			req := Request{Mint: funded, Sender: f.authority, Recipient: bob, Amount: tc.Amount}
			if tc.Mint != nil {
				req.Mint = tc.Mint(f, funded)
			}
			if tc.Sender != nil {
				req.Sender = tc.Sender(f)
			}
			_, err := f.settle.Transfer(f.db, req)
			assert.IsErr(t, tc.WantErr, err)

			assert.Equal(t, uint64(100), f.balance(t, f.authority, funded))
			acc, err := f.accounts.Balance(f.db, bob, funded)
			assert.Nil(t, err)
			assert.Nil(t, acc)
		})
	}
}

func TestTransferSplitByRegistry(t *testing.T) {
	alice := chilltest.RandomAddr(t)
	bob := chilltest.RandomAddr(t)
	transferee := chilltest.RandomAddr(t)

	cases := map[string]struct {
		Shares []registry.RecipientShare
		Fee    uint32
		Amount uint64
		// SenderIsAlice makes alice, funded by the authority, the
		// sender.
		SenderIsAlice  bool
		WantRedirected map[string]uint64
		WantResidual   uint64
	}{
		"whole amount split by transaction shares": {
			Shares: []registry.RecipientShare{
				{Address: alice, MintShare: 100, TransactionShare: 30},
				{Address: bob, TransactionShare: 70},
			},
			Fee:            10000,
			Amount:         100,
			WantRedirected: map[string]uint64{alice.String(): 30, bob.String(): 70},
			WantResidual:   0,
		},
		"one percent fee": {
			Shares: []registry.RecipientShare{
				{Address: alice, MintShare: 50, TransactionShare: 50},
				{Address: bob, MintShare: 50, TransactionShare: 50},
			},
			Fee:            100,
			Amount:         1000,
			WantRedirected: map[string]uint64{alice.String(): 5, bob.String(): 5},
			WantResidual:   990,
		},
		"no fee": {
			Shares: []registry.RecipientShare{
				{Address: alice, MintShare: 100, TransactionShare: 100},
			},
			Fee:            0,
			Amount:         1000,
			WantRedirected: map[string]uint64{},
			WantResidual:   1000,
		},
		"rounding leftovers go to the last share recipient": {
			Shares: []registry.RecipientShare{
				{Address: alice, MintShare: 50, TransactionShare: 33},
				{Address: bob, MintShare: 50, TransactionShare: 67},
			},
			Fee:            10000,
			Amount:         10,
			WantRedirected: map[string]uint64{alice.String(): 3, bob.String(): 7},
			WantResidual:   0,
		},
		"sender portion stays with the transfer": {
			Shares: []registry.RecipientShare{
				{Address: alice, MintShare: 50, TransactionShare: 40},
				{Address: bob, MintShare: 50, TransactionShare: 60},
			},
			Fee:            10000,
			Amount:         100,
			SenderIsAlice:  true,
			WantRedirected: map[string]uint64{bob.String(): 60},
			WantResidual:   40,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			f := newFixture(t)
			mint := f.fund(t, 1000, false)
			_, err := registry.Initialize(f.db, mint, tc.Shares, registry.CategoryWeights{}, tc.Fee)
			assert.Nil(t, err)

			sender := f.authority
			if tc.SenderIsAlice {
				assert.Nil(t, f.accounts.Move(f.db, mint, f.authority, alice, tc.Amount))
				sender = alice
			}
			before := f.balance(t, sender, mint)
			shareBefore := map[string]uint64{
				alice.String(): f.balance(t, alice, mint),
				bob.String():   f.balance(t, bob, mint),
			}

			rep, err := f.settle.Transfer(f.db, Request{Mint: mint, Sender: sender, Recipient: transferee, Amount: tc.Amount})
			assert.Nil(t, err)

			assert.Equal(t, before-tc.Amount, f.balance(t, sender, mint))
			assert.Equal(t, before-tc.Amount, rep.SenderBalance)
			assert.Equal(t, tc.WantResidual, f.balance(t, transferee, mint))

			redirected := make(map[string]uint64)
			for _, c := range rep.Credits[:len(rep.Credits)-1] {
				redirected[c.Owner.String()] = c.Amount
				assert.Equal(t, shareBefore[c.Owner.String()]+c.Amount, f.balance(t, c.Owner, mint))
			}
			assert.Equal(t, tc.WantRedirected, redirected)

			// Everything that left the sender arrived somewhere.
			var received uint64
			for _, c := range rep.Credits {
				received += c.Amount
			}
			assert.Equal(t, tc.Amount, received)
			assert.Equal(t, tc.Amount-tc.WantResidual, rep.Redirected())
		})
	}
}

func TestFixedSupplyIsNotSplit(t *testing.T) {
	f := newFixture(t)
	nft := f.fund(t, 1, true)
	alice := chilltest.RandomAddr(t)
	bob := chilltest.RandomAddr(t)

	// Even a registry bound to the mint does not apply.
	_, err := registry.Initialize(f.db, nft,
		[]registry.RecipientShare{{Address: alice, MintShare: 100, TransactionShare: 100}},
		registry.CategoryWeights{}, 10000)
	assert.Nil(t, err)

	rep, err := f.settle.Transfer(f.db, Request{Mint: nft, Sender: f.authority, Recipient: bob, Amount: 1})
	assert.Nil(t, err)
	assert.Equal(t, []cash.Credit{{Owner: bob, Amount: 1}}, rep.Credits)
	assert.Equal(t, uint64(0), f.balance(t, f.authority, nft))
	assert.Equal(t, uint64(1), f.balance(t, bob, nft))
	assert.Equal(t, uint64(0), f.balance(t, alice, nft))
}
