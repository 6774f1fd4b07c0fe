package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/chill-token/chill/errors"
	"github.com/chill-token/chill/x/nft"
)

func cmdMintNFT(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ContinueOnError)
	fl.Usage = func() {
		fmt.Fprint(fl.Output(), `
Mint a non fungible token owned by the authority.

  mint-nft <category> <name> <uri>

Category is one of character, pet, emote, tileset or item. The address of
the new token mint is printed in the first line.
`)
		fl.PrintDefaults()
	}
	common := registerCommonFlags(fl)
	positional, err := parseInterspersed(fl, args)
	if err != nil {
		return err
	}
	if len(positional) != 3 {
		return errors.Wrap(errors.ErrInput, "category, name and uri are required")
	}
	category, err := nft.ParseCategory(positional[0])
	if err != nil {
		return err
	}

	s, err := openSession(common, true)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.saveKey(); err != nil {
		return err
	}
	mint, err := s.ledger.MintNFT(s.conf, category, positional[1], positional[2])
	if err != nil {
		return err
	}
	asset, err := s.ledger.Asset(mint)
	if err != nil {
		return err
	}
	fmt.Fprintf(output, "Mint: %s\n", mint)
	fmt.Fprintf(output, "Category: %s\n", asset.Category)
	fmt.Fprintf(output, "Name: %s\n", asset.Name)
	_, err = fmt.Fprintf(output, "URI: %s\n", asset.URI)
	return err
}
