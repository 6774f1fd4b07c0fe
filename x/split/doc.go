/*
Package split implements the arithmetic of revenue sharing.

An amount is partitioned across an ordered table of percentage shares. Every
entry but the last receives the floor of its share, the last entry receives
whatever is left. The sum of all portions is always equal to the split
amount.
*/
package split
