package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	chill "github.com/chill-token/chill"
	"github.com/chill-token/chill/app"
	"github.com/chill-token/chill/crypto"
	"github.com/chill-token/chill/errors"
	"golang.org/x/crypto/ed25519"
)

// session is the explicit context of a single command execution. It holds
// the opened ledger and the identity that operations are executed with.
type session struct {
	ledger   *app.Ledger
	conf     app.Config
	keyPath  string
	mintFile string
	// newKey is a generated key that is not written to keyPath yet.
	newKey *crypto.PrivateKey
}

// openSession loads the authority key and the default mint and opens the
// ledger. When createKey is set and there is no private key file, a new key
// is generated. It is written to disk only by saveKey. Otherwise a missing
// key leaves the session without an authority.
func openSession(c commonFlags, createKey bool) (*session, error) {
	s := &session{keyPath: *c.key, mintFile: *c.mintFile}

	key, err := loadKey(s.keyPath)
	if err != nil {
		return nil, err
	}
	if key == nil && createKey {
		if key, err = crypto.GenPrivKeyEd25519(); err != nil {
			return nil, err
		}
		s.newKey = key
	}
	if key != nil {
		s.conf.Authority = key.PublicKey().Address()
	}
	if s.conf.DefaultMint, err = readMintFile(s.mintFile); err != nil {
		return nil, err
	}

	logger, err := newLogger()
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	if err := os.MkdirAll(*c.db, 0700); err != nil {
		return nil, errors.Wrapf(errors.ErrDatabase, "cannot create ledger directory: %s", err)
	}
	ledger, err := app.OpenLedger(*c.db)
	if err != nil {
		return nil, err
	}
	s.ledger = ledger.WithLogger(logger)
	return s, nil
}

// Close releases the ledger.
func (s *session) Close() error {
	return s.ledger.Close()
}

// requireAuthority returns an error if there is no private key.
func (s *session) requireAuthority() error {
	if s.conf.Authority == nil {
		return errors.Wrapf(errors.ErrUnauthorized, "no private key file %q, run keygen first", s.keyPath)
	}
	return nil
}

// saveKey writes the private key generated by openSession. It must be
// called once all input is validated and before the ledger is changed.
func (s *session) saveKey() error {
	if s.newKey == nil {
		return nil
	}
	if err := writeKey(s.keyPath, s.newKey); err != nil {
		return err
	}
	s.newKey = nil
	return nil
}

// mintDecimals returns the precision of the default mint. If there is no
// default mint yet, given value is used for the mint that is going to be
// created.
func (s *session) mintDecimals(decimals uint32) (uint32, error) {
	if s.conf.DefaultMint == nil {
		s.conf.Decimals = decimals
		return decimals, nil
	}
	m, err := s.ledger.MintInfo(s.conf.DefaultMint)
	if err != nil {
		return 0, err
	}
	return m.Decimals, nil
}

// mintCreated stores the address of a newly created default mint in the
// mint file.
func (s *session) mintCreated(output io.Writer, mint chill.Address) error {
	if err := writeMintFile(s.mintFile, mint); err != nil {
		return err
	}
	s.conf.DefaultMint = mint
	_, err := fmt.Fprintf(output, "Mint: %s\n", mint)
	return err
}

// loadKey reads an ed25519 private key from given file. If the file does not
// exist, nil is returned.
func loadKey(path string) (*crypto.PrivateKey, error) {
	raw, err := ioutil.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		return nil, nil
	case err != nil:
		return nil, errors.Wrapf(errors.ErrInput, "cannot read private key file: %s", err)
	}
	key, err := crypto.ParsePrivateKey(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "private key file %q", path)
	}
	return key, nil
}

// writeKey creates a new private key file. An existing file is never
// overwritten.
func writeKey(path string, key *crypto.PrivateKey) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot create private key directory: %s", err)
	}
	fd, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot create private key file: %s", err)
	}
	defer fd.Close()

	if _, err := fd.Write(key.Bytes()); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot write private key: %s", err)
	}
	if err := fd.Close(); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot close private key file: %s", err)
	}
	return nil
}

// readMintFile returns the address stored in the mint file or nil if the
// file does not exist.
func readMintFile(path string) (chill.Address, error) {
	raw, err := ioutil.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		return nil, nil
	case err != nil:
		return nil, errors.Wrapf(errors.ErrInput, "cannot read mint file: %s", err)
	}
	mint, err := chill.ParseAddress(strings.TrimSpace(string(raw)))
	if err != nil {
		return nil, errors.Wrapf(err, "mint file %q", path)
	}
	return mint, nil
}

func writeMintFile(path string, mint chill.Address) error {
	if err := ioutil.WriteFile(path, []byte(mint.String()+"\n"), 0644); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot write mint file: %s", err)
	}
	return nil
}

// resolveAddress accepts an address in any of the supported formats, or a
// path to a file. A private key file resolves to the address of its owner.
// Any other file must contain an address.
func resolveAddress(raw string) (chill.Address, error) {
	addr, err := chill.ParseAddress(raw)
	if err == nil {
		return addr, nil
	}
	content, ferr := ioutil.ReadFile(raw)
	if ferr != nil {
		// Not a file, so the parse error is the relevant one.
		return nil, err
	}
	if len(content) == ed25519.PrivateKeySize {
		key, err := crypto.ParsePrivateKey(content)
		if err != nil {
			return nil, err
		}
		return key.PublicKey().Address(), nil
	}
	addr, err = chill.ParseAddress(strings.TrimSpace(string(content)))
	if err != nil {
		return nil, errors.Wrapf(err, "file %q", raw)
	}
	return addr, nil
}
