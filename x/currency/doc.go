/*
Package currency keeps the registry of mints.

A mint identifies a class of tokens, either fungible or not. It is owned by
an authority that is the only one allowed to issue new supply. A mint with a
fixed supply accepts a single issuance and is used for non fungible tokens.
*/
package currency
