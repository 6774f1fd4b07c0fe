package crypto

import (
	"crypto/rand"

	chill "github.com/chill-token/chill"
	"github.com/chill-token/chill/errors"
	"golang.org/x/crypto/ed25519"
)

// ExtensionName is used for the conditions we get from signatures.
const ExtensionName = "sigs"

// PrivateKey is an ed25519 private key that owns mints and token accounts.
type PrivateKey struct {
	key ed25519.PrivateKey
}

// GenPrivKeyEd25519 returns a random new private key read from the default
// source of randomness.
func GenPrivKeyEd25519() (*PrivateKey, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, errors.Wrap(err, "generate ed25519 key")
	}
	return &PrivateKey{key: priv}, nil
}

// PrivKeyEd25519FromSeed will deterministically generate a private key from
// a given seed. Use if you have a strong source of external randomness,
// or for deterministic keys in test cases.
func PrivKeyEd25519FromSeed(seed []byte) *PrivateKey {
	return &PrivateKey{key: ed25519.NewKeyFromSeed(seed)}
}

// ParsePrivateKey loads a private key from its raw binary representation.
func ParsePrivateKey(raw []byte) (*PrivateKey, error) {
	if len(raw) != ed25519.PrivateKeySize {
		return nil, errors.Wrapf(errors.ErrInput,
			"want %d bytes of ed25519 private key, got %d", ed25519.PrivateKeySize, len(raw))
	}
	key := make(ed25519.PrivateKey, len(raw))
	copy(key, raw)
	return &PrivateKey{key: key}, nil
}

// Bytes returns the raw binary representation of the key, as accepted by
// ParsePrivateKey.
func (p *PrivateKey) Bytes() []byte {
	out := make([]byte, len(p.key))
	copy(out, p.key)
	return out
}

// PublicKey returns the corresponding PublicKey
func (p *PrivateKey) PublicKey() PublicKey {
	return PublicKey(p.key.Public().(ed25519.PublicKey))
}

// PublicKey is an ed25519 public key.
type PublicKey []byte

// Condition encodes the public key into a chill condition.
func (p PublicKey) Condition() chill.Condition {
	return chill.NewCondition(ExtensionName, "ed25519", p)
}

// Address returns the address owned by this public key.
func (p PublicKey) Address() chill.Address {
	return p.Condition().Address()
}
