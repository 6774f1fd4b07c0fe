package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chill-token/chill/crypto"
	"github.com/chill-token/chill/errors"
)

func cmdKeygen(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ContinueOnError)
	fl.Usage = func() {
		fmt.Fprint(fl.Output(), `
Generate a new private key.

When successful a new file with binary content containing private key is
created. This command fails if the private key file already exists.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = fl.String("key", env("CHILLCLI_PRIV_KEY", filepath.Join(homeDir(), "id.key")),
			"Path to the private key file. You can use CHILLCLI_PRIV_KEY environment variable to set it.")
	)
	if _, err := parseInterspersed(fl, args); err != nil {
		return err
	}

	if _, err := os.Stat(*keyPathFl); !os.IsNotExist(err) {
		// Do not allow to overwrite already existing private key. User
		// must manually delete it first.
		return errors.Wrapf(errors.ErrDuplicate, "private key file %q already exists, delete this file and try again", *keyPathFl)
	}
	key, err := crypto.GenPrivKeyEd25519()
	if err != nil {
		return err
	}
	if err := writeKey(*keyPathFl, key); err != nil {
		return err
	}
	_, err = fmt.Fprintln(output, key.PublicKey().Address())
	return err
}

func cmdKeyaddr(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ContinueOnError)
	fl.Usage = func() {
		fmt.Fprint(fl.Output(), `
Print out the address associated with your private key.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = fl.String("key", env("CHILLCLI_PRIV_KEY", filepath.Join(homeDir(), "id.key")),
			"Path to the private key file. You can use CHILLCLI_PRIV_KEY environment variable to set it.")
		bech32Fl = fl.Bool("bech32", false, "Print the address in bech32 format.")
	)
	if _, err := parseInterspersed(fl, args); err != nil {
		return err
	}

	key, err := loadKey(*keyPathFl)
	if err != nil {
		return err
	}
	if key == nil {
		return errors.Wrapf(errors.ErrNotFound, "private key file %q", *keyPathFl)
	}
	addr := key.PublicKey().Address()
	if !*bech32Fl {
		_, err = fmt.Fprintln(output, addr)
		return err
	}
	enc, err := addr.Bech32()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(output, enc)
	return err
}
