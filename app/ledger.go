package app

import (
	chill "github.com/chill-token/chill"
	"github.com/chill-token/chill/errors"
	"github.com/chill-token/chill/store"
	"github.com/chill-token/chill/x/cash"
	"github.com/chill-token/chill/x/currency"
	"github.com/chill-token/chill/x/minter"
	"github.com/chill-token/chill/x/nft"
	"github.com/chill-token/chill/x/settlement"
	"github.com/tendermint/tendermint/libs/log"
)

// Ledger executes operations on top of a persistent store.
type Ledger struct {
	logger log.Logger
	store  *store.CommitStore

	mints    currency.MintController
	accounts cash.BaseController
	assets   nft.AssetBucket
	minter   minter.Minter
	settle   settlement.Settlement
	nfts     nft.Minter
}

// NewLedger returns a ledger that keeps its state in given store.
func NewLedger(s *store.CommitStore) *Ledger {
	mints := currency.NewController(currency.NewMintBucket())
	accounts := cash.NewController(cash.NewAccountBucket())
	assets := nft.NewAssetBucket()
	m := minter.NewMinter(mints, accounts)
	return &Ledger{
		logger:   log.NewNopLogger(),
		store:    s,
		mints:    mints,
		accounts: accounts,
		assets:   assets,
		minter:   m,
		settle:   settlement.NewSettlement(mints, accounts),
		nfts:     nft.NewMinter(mints, m, assets),
	}
}

// OpenLedger returns a ledger backed by an on disk database in given
// directory.
func OpenLedger(dir string) (*Ledger, error) {
	s, err := store.OpenCommitStore(dir)
	if err != nil {
		return nil, err
	}
	return NewLedger(s), nil
}

// WithLogger sets the logger on the ledger and returns it, to make it easy
// to chain in initialization.
func (l *Ledger) WithLogger(logger log.Logger) *Ledger {
	l.logger = logger.With("module", "ledger")
	return l
}

// Close releases the database.
func (l *Ledger) Close() error {
	return l.store.Close()
}

// Atomic runs given function with a store that collects all writes. The
// writes are committed only if the function succeeds. A panic is turned
// into an error and the writes are discarded.
func (l *Ledger) Atomic(op string, fn func(db chill.KVStore) error) (err error) {
	cache := l.store.CacheWrap()
	defer func() {
		if err != nil {
			cache.Discard()
			l.logger.Error("operation failed", "op", op, "err", err)
		}
	}()
	defer errors.Recover(&err)

	if err := fn(cache); err != nil {
		return err
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "commit")
	}
	l.logger.Info("operation committed", "op", op)
	return nil
}

// View runs given function with a read only view of the committed state.
func (l *Ledger) View(fn func(db chill.ReadOnlyKVStore) error) (err error) {
	defer errors.Recover(&err)
	return fn(l.store)
}
