package main

import (
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/chill-token/chill/app"
	"github.com/chill-token/chill/errors"
)

func cmdInfo(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ContinueOnError)
	fl.Usage = func() {
		fmt.Fprint(fl.Output(), `
Print the default mint and its revenue share registry.
`)
		fl.PrintDefaults()
	}
	common := registerCommonFlags(fl)
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

	info, err := s.ledger.Info(s.conf)
	if err != nil {
		return err
	}
	return printInfo(output, info)
}

func printInfo(output io.Writer, info *app.Info) error {
	w := tabwriter.NewWriter(output, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Mint:\t%s\n", info.MintAddress)
	fmt.Fprintf(w, "Authority:\t%s\n", info.Mint.Authority)
	fmt.Fprintf(w, "Supply:\t%s\n", formatAmount(info.Mint.Supply, info.Mint.Decimals))
	fmt.Fprintf(w, "Decimals:\t%d\n", info.Mint.Decimals)

	reg := info.Registry
	if reg == nil {
		fmt.Fprintln(w, "Registry:\tnot initialized")
		return w.Flush()
	}
	fmt.Fprintf(w, "Transaction fee:\t%d bps\n", reg.TransactionFee)
	fmt.Fprintln(w, "\nMINT FEES")
	fmt.Fprintf(w, "Character:\t%g\n", reg.Weights.Character)
	fmt.Fprintf(w, "Pet:\t%g\n", reg.Weights.Pet)
	fmt.Fprintf(w, "Emote:\t%g\n", reg.Weights.Emote)
	fmt.Fprintf(w, "Tileset:\t%g\n", reg.Weights.Tileset)
	fmt.Fprintf(w, "Item:\t%g\n", reg.Weights.Item)
	fmt.Fprintln(w, "\nRECIPIENTS")
	fmt.Fprintln(w, "Address\tMint share\tTransaction share")
	for _, r := range reg.Recipients {
		fmt.Fprintf(w, "%s\t%d%%\t%d%%\n", r.Address, r.MintShare, r.TransactionShare)
	}
	return w.Flush()
}
