// Package chilltest provides helpers for testing code that works with
// addresses, keys and stores.
package chilltest

import (
	"crypto/rand"
	"testing"

	chill "github.com/chill-token/chill"
	"github.com/chill-token/chill/crypto"
)

// RandomAddr returns a valid random address generated on the fly.
func RandomAddr(t testing.TB) chill.Address {
	t.Helper()
	raw := make([]byte, chill.AddressLength)
	if _, err := rand.Read(raw); err != nil {
		t.Fatalf("cannot generate a random address: %s", err)
	}
	a := chill.Address(raw)
	if err := a.Validate(); err != nil {
		t.Fatalf("generated address is not a valid address: %s", err)
	}
	return a
}

// ParseAddress takes an address in a human readable format and returns
// its binary representation.
func ParseAddress(t testing.TB, encodedAddress string) chill.Address {
	t.Helper()
	addr, err := chill.ParseAddress(encodedAddress)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encodedAddress, err)
	}
	return addr
}

// NewKey returns a new random private key.
func NewKey(t testing.TB) *crypto.PrivateKey {
	t.Helper()
	key, err := crypto.GenPrivKeyEd25519()
	if err != nil {
		t.Fatalf("cannot generate a key: %s", err)
	}
	return key
}
