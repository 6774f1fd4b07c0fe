/*
Package nft mints non fungible tokens.

Every token is a mint of its own, with supply fixed at one unit and no
decimals. The whole unit is credited to the authority and no revenue split
applies. Next to the mint an asset record keeps the category, the name and
the URI of the token.
*/
package nft
