package main

import (
	"flag"
	"strconv"
	"strings"

	chill "github.com/chill-token/chill"
	"github.com/chill-token/chill/errors"
)

// parseInterspersed parses flags that can be mixed with positional
// arguments. The standard flag package stops parsing at the first
// positional argument, so parsing is repeated for the remaining arguments.
// All positional arguments are returned in order.
// Arguments following "--" are all positional.
func parseInterspersed(fl *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fl.Parse(args); err != nil {
			return nil, errors.Wrap(errors.ErrInput, err.Error())
		}
		if fl.NArg() == 0 {
			return positional, nil
		}
		if terminated(args, fl.Args()) {
			return append(positional, fl.Args()...), nil
		}
		positional = append(positional, fl.Arg(0))
		args = fl.Args()[1:]
	}
}

// terminated returns true if the flag set stopped parsing because of the
// "--" terminator, which it consumes.
func terminated(args, rest []string) bool {
	n := len(args) - len(rest)
	return n > 0 && args[n-1] == "--"
}

// uint32Flag returns the value of a uint flag, or an error if it is above
// max.
func uint32Flag(name string, v uint, max uint32) (uint32, error) {
	if v > uint(max) {
		return 0, errors.Wrapf(errors.ErrInput, "-%s %d is above %d", name, v, max)
	}
	return uint32(v), nil
}

// addressList is a flag value that collects every occurrence of a flag.
type addressList []chill.Address

func (l addressList) String() string {
	s := make([]string, len(l))
	for i, a := range l {
		s[i] = a.String()
	}
	return strings.Join(s, ",")
}

func (l *addressList) Set(raw string) error {
	a, err := resolveAddress(raw)
	if err != nil {
		return err
	}
	*l = append(*l, a)
	return nil
}

// percentList is a flag value that collects every occurrence of a flag.
// Each value is an integer percentage.
type percentList []uint32

func (l percentList) String() string {
	s := make([]string, len(l))
	for i, v := range l {
		s[i] = strconv.FormatUint(uint64(v), 10)
	}
	return strings.Join(s, ",")
}

func (l *percentList) Set(raw string) error {
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "percentage %q", raw)
	}
	if v > 100 {
		return errors.Wrapf(errors.ErrInput, "percentage %d above 100", v)
	}
	*l = append(*l, uint32(v))
	return nil
}
