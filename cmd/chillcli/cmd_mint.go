package main

import (
	"flag"
	"fmt"
	"io"

	chill "github.com/chill-token/chill"
	"github.com/chill-token/chill/errors"
	"github.com/chill-token/chill/x/currency"
)

func cmdMint(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ContinueOnError)
	fl.Usage = func() {
		fmt.Fprint(fl.Output(), `
Mint new tokens of the default mint.

  mint <amount> [-recipient <address|keyfile>] [-decimals <n>]

Without a recipient, the amount is split between the revenue share
recipients if the registry was initialized, or credited to the authority
otherwise. The default mint is created when it does not exist yet, using
given number of decimals. The balance of the beneficiary is printed.
`)
		fl.PrintDefaults()
	}
	var (
		common      = registerCommonFlags(fl)
		recipientFl = fl.String("recipient", "", "Optional address or key file that all minted tokens are credited to.")
		decimalsFl  = fl.Uint("decimals", 9, "Number of decimals of the default mint, used only when the mint is created.")
	)
	positional, err := parseInterspersed(fl, args)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return errors.Wrap(errors.ErrInput, "amount is required")
	}

	decimals, err := uint32Flag("decimals", *decimalsFl, currency.MaxDecimals)
	if err != nil {
		return err
	}
	var target chill.Address
	if *recipientFl != "" {
		if target, err = resolveAddress(*recipientFl); err != nil {
			return errors.Wrap(err, "recipient")
		}
	}

	s, err := openSession(common, true)
	if err != nil {
		return err
	}
	defer s.Close()

	if decimals, err = s.mintDecimals(decimals); err != nil {
		return err
	}
	amount, err := parseAmount(positional[0], decimals)
	if err != nil {
		return err
	}
	if err := s.saveKey(); err != nil {
		return err
	}

	res, err := s.ledger.Mint(s.conf, amount, target)
	if err != nil {
		return err
	}
	if res.Created {
		if err := s.mintCreated(output, res.Mint); err != nil {
			return err
		}
	}
	for _, c := range res.Credits {
		if target == nil && !c.Owner.Equals(s.conf.Authority) {
			fmt.Fprintf(output, "Share: %s %s\n", c.Owner, formatAmount(c.Amount, decimals))
		}
	}
	_, err = fmt.Fprintf(output, "Balance: %s tokens\n", formatAmount(res.Balance, decimals))
	return err
}
