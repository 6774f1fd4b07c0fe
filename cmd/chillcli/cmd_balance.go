package main

import (
	"flag"
	"fmt"
	"io"

	chill "github.com/chill-token/chill"
	"github.com/chill-token/chill/errors"
	"github.com/chill-token/chill/x/cash"
)

func cmdBalance(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ContinueOnError)
	fl.Usage = func() {
		fmt.Fprint(fl.Output(), `
Print the balance of an account.

  balance [-owner <address|keyfile>] [-mint-address <address>]
  balance -account <address>

By default the balance of the authority in the default mint is printed.
`)
		fl.PrintDefaults()
	}
	var (
		common    = registerCommonFlags(fl)
		ownerFl   = fl.String("owner", "", "Address or key file of the account owner. Defaults to the authority.")
		mintFl    = fl.String("mint-address", "", "Address of the mint or a file holding it. Defaults to the default mint.")
		accountFl = fl.String("account", "", "Address of the account. Takes precedence over the owner and the mint.")
	)
	positional, err := parseInterspersed(fl, args)
	if err != nil {
		return err
	}
	if len(positional) != 0 {
		return errors.Wrapf(errors.ErrInput, "unexpected arguments: %q", positional)
	}

	s, err := openSession(common, false)
	if err != nil {
		return err
	}
	defer s.Close()

	var acc *cash.Account
	if *accountFl != "" {
		account, err := chill.ParseAddress(*accountFl)
		if err != nil {
			return errors.Wrap(err, "account")
		}
		if acc, err = s.ledger.AccountBalance(account); err != nil {
			return err
		}
	} else {
		owner := s.conf.Authority
		if *ownerFl != "" {
			if owner, err = resolveAddress(*ownerFl); err != nil {
				return errors.Wrap(err, "owner")
			}
		}
		if owner == nil {
			return s.requireAuthority()
		}
		var mint chill.Address
		if *mintFl != "" {
			if mint, err = resolveAddress(*mintFl); err != nil {
				return errors.Wrap(err, "mint address")
			}
		}
		if acc, err = s.ledger.Balance(s.conf, owner, mint); err != nil {
			return err
		}
	}

	if acc == nil {
		_, err := fmt.Fprintln(output, "Account does not exist")
		return err
	}
	mint, err := s.ledger.MintInfo(acc.Mint)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(output, "Balance: %s tokens\n", formatAmount(acc.Balance, mint.Decimals))
	return err
}
