/*
Package cash keeps token accounts.

An account holds the balance of a single owner for a single mint. Its address
is derived from the owner and the mint, so it can be found without any index.
Accounts are created when they are credited for the first time and are never
removed, even when their balance drops to zero.
*/
package cash
