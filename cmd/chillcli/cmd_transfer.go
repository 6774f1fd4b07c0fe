package main

import (
	"flag"
	"fmt"
	"io"

	chill "github.com/chill-token/chill"
	"github.com/chill-token/chill/errors"
)

func cmdTransfer(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ContinueOnError)
	fl.Usage = func() {
		fmt.Fprint(fl.Output(), `
Transfer tokens from the authority to the recipient.

  transfer <recipient> <amount> [-mint-address <address>]

The recipient is an address or a key file. When the registry is
initialized for the transferred mint, the transaction fee is split between
the revenue share recipients and only the rest reaches the recipient.
`)
		fl.PrintDefaults()
	}
	var (
		common = registerCommonFlags(fl)
		mintFl = fl.String("mint-address", "", "Address of the mint or a file holding it. Defaults to the default mint.")
	)
	positional, err := parseInterspersed(fl, args)
	if err != nil {
		return err
	}
	if len(positional) != 2 {
		return errors.Wrap(errors.ErrInput, "recipient and amount are required")
	}
	recipient, err := resolveAddress(positional[0])
	if err != nil {
		return errors.Wrap(err, "recipient")
	}
	var mintAddr chill.Address
	if *mintFl != "" {
		if mintAddr, err = resolveAddress(*mintFl); err != nil {
			return errors.Wrap(err, "mint address")
		}
	}

	s, err := openSession(common, false)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.requireAuthority(); err != nil {
		return err
	}
	if mintAddr == nil {
		if mintAddr = s.conf.DefaultMint; mintAddr == nil {
			return errors.Wrap(errors.ErrNotFound, "no default mint, run mint first")
		}
	}
	mint, err := s.ledger.MintInfo(mintAddr)
	if err != nil {
		return err
	}
	amount, err := parseAmount(positional[1], mint.Decimals)
	if err != nil {
		return err
	}

	rep, err := s.ledger.Transfer(s.conf, mintAddr, recipient, amount)
	if err != nil {
		return err
	}
	for _, c := range rep.Credits[:len(rep.Credits)-1] {
		fmt.Fprintf(output, "Share: %s %s\n", c.Owner, formatAmount(c.Amount, mint.Decimals))
	}
	last := rep.Credits[len(rep.Credits)-1]
	fmt.Fprintf(output, "Transferred: %s %s\n", last.Owner, formatAmount(last.Amount, mint.Decimals))
	_, err = fmt.Fprintf(output, "Balance: %s tokens\n", formatAmount(rep.SenderBalance, mint.Decimals))
	return err
}
