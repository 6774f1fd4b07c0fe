/*
Package registry keeps the revenue share configuration.

The registry is a singleton that is created once and never modified. It binds
a mint to an ordered table of up to three recipients. Each recipient declares
two independent shares, one for newly minted supply and one for transfers.
Both kinds of shares must sum up to exactly 100 across the table.
*/
package registry
