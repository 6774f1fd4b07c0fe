/*
Package chill contains the shared building blocks of the chill token
ledger: addresses, the key value store abstraction and the model contract
used by all extensions under x/.

Extensions are small packages that each own a prefixed part of the store:

	x/registry    revenue share recipients (singleton)
	x/split       loss free split of an amount by percentage shares
	x/currency    mints and their supply
	x/cash        token accounts and balances
	x/minter      minting new supply, optionally split between recipients
	x/settlement  transfers with a transaction share cut
	x/nft         single supply tokens tagged with a category

All state changes of a single command are applied through app.Ledger, which
commits them atomically or not at all.
*/
package chill
