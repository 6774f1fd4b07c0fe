package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/chill-token/chill/errors"
	"github.com/chill-token/chill/x/currency"
	"github.com/chill-token/chill/x/registry"
	"github.com/chill-token/chill/x/split"
)

func cmdInitialize(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ContinueOnError)
	fl.Usage = func() {
		fmt.Fprint(fl.Output(), `
Initialize the revenue share registry of the default mint.

  initialize -recipient <addr> -mint-share <pct> -transaction-share <pct> ...

Between one and three recipients can be declared. Each recipient flag must
be followed by its mint share and transaction share. Mint shares as well as
transaction shares must each sum to 100. The registry can be initialized
only once.
`)
		fl.PrintDefaults()
	}
	var (
		recipients        addressList
		mintShares        percentList
		transactionShares percentList
	)
	fl.Var(&recipients, "recipient", "Address or key file of a share recipient. Can be repeated.")
	fl.Var(&mintShares, "mint-share", "Percentage of minted tokens a recipient receives. Can be repeated.")
	fl.Var(&transactionShares, "transaction-share", "Percentage of the transaction fee a recipient receives. Can be repeated.")
	var (
		common      = registerCommonFlags(fl)
		feeFl       = fl.Uint("transaction-fee", split.MaxBasisPoints, "Part of every transfer, in basis points, that is paid to the recipients.")
		decimalsFl  = fl.Uint("decimals", 9, "Number of decimals of the default mint, used only when the mint is created.")
		characterFl = fl.Float64("character", 0, "Mint fee weight of the character category.")
		petFl       = fl.Float64("pet", 0, "Mint fee weight of the pet category.")
		emoteFl     = fl.Float64("emote", 0, "Mint fee weight of the emote category.")
		tilesetFl   = fl.Float64("tileset", 0, "Mint fee weight of the tileset category.")
		itemFl      = fl.Float64("item", 0, "Mint fee weight of the item category.")
	)
	positional, err := parseInterspersed(fl, args)
	if err != nil {
		return err
	}
	if len(positional) != 0 {
		return errors.Wrapf(errors.ErrInput, "unexpected arguments: %q", positional)
	}
	decimals, err := uint32Flag("decimals", *decimalsFl, currency.MaxDecimals)
	if err != nil {
		return err
	}
	fee, err := uint32Flag("transaction-fee", *feeFl, split.MaxBasisPoints)
	if err != nil {
		return err
	}
	if len(recipients) != len(mintShares) || len(recipients) != len(transactionShares) {
		return errors.Wrapf(errors.ErrInvalidShareCount,
			"%d recipients, %d mint shares and %d transaction shares",
			len(recipients), len(mintShares), len(transactionShares))
	}
	shares := make([]registry.RecipientShare, len(recipients))
	for i, addr := range recipients {
		shares[i] = registry.RecipientShare{
			Address:          addr,
			MintShare:        mintShares[i],
			TransactionShare: transactionShares[i],
		}
	}
	table, err := registry.NewShareTable(shares...)
	if err != nil {
		return err
	}
	if err := table.Validate(); err != nil {
		return err
	}
	weights := registry.CategoryWeights{
		Character: *characterFl,
		Pet:       *petFl,
		Emote:     *emoteFl,
		Tileset:   *tilesetFl,
		Item:      *itemFl,
	}
	if err := weights.Validate(); err != nil {
		return errors.Wrap(err, "weights")
	}

	s, err := openSession(common, true)
	if err != nil {
		return err
	}
	defer s.Close()

	s.conf.Decimals = decimals
	if err := s.saveKey(); err != nil {
		return err
	}
	res, err := s.ledger.Initialize(s.conf, shares, weights, fee)
	if err != nil {
		return err
	}
	if res.Created {
		if err := s.mintCreated(output, res.Registry.Mint); err != nil {
			return err
		}
	}
	info, err := s.ledger.Info(s.conf)
	if err != nil {
		return err
	}
	return printInfo(output, info)
}
