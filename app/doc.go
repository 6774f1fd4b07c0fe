/*
Package app wires all extensions into a ledger.

Every operation runs as a single atomic unit of work. All writes are
collected in a cache and committed to the database with one synchronous batch
when the operation succeeds. Failed operations leave no trace.
*/
package app
