package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/chill-token/chill/errors"
)

// commands is a register of all availables commands that can be executed by
// this program. The name is used to match with the first argument given.
//
// When a cmd function is called it is given stdin, stdout and command line
// arguments except the program name and this command name. It is the
// responsibility of the command function to parse the arguments.
//
// Every command that changes the ledger state is executed as a single atomic
// operation. A failed command never leaves partial changes behind.
var commands = map[string]func(input io.Reader, output io.Writer, args []string) error{
	"balance":    cmdBalance,
	"info":       cmdInfo,
	"initialize": cmdInitialize,
	"keyaddr":    cmdKeyaddr,
	"keygen":     cmdKeygen,
	"mint":       cmdMint,
	"mint-nft":   cmdMintNFT,
	"transfer":   cmdTransfer,
	"version":    cmdVersion,
}

func main() {
	os.Exit(run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]))
}

// run executes the command named by the first argument and returns the
// process exit code.
func run(input io.Reader, output, stderr io.Writer, args []string) int {
	if len(args) == 0 {
		fmt.Fprintf(stderr, "%s is a command line client for the chill token ledger.\n\n", os.Args[0])
		fmt.Fprintf(stderr, "Usage: %s <command> [<flags>]\n", os.Args[0])
		fmt.Fprintf(stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		fmt.Fprintf(stderr, "Run '%s <command> -help' to learn more about each command.\n", os.Args[0])
		return 2
	}
	cmd, ok := commands[args[0]]
	if !ok {
		err := errors.Wrapf(errors.ErrUnknownCommand, "%q", args[0])
		fmt.Fprintln(stderr, err)
		fmt.Fprintf(stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		return 2
	}

	// Skip the first argument. It is the command name that we just
	// consumed.
	if err := cmd(input, output, args[1:]); err != nil {
		_, msg := errors.Report(err, debugMode())
		fmt.Fprintln(stderr, msg)
		return 1
	}
	return 0
}

func availableCmds() []string {
	available := make([]string, 0, len(commands))
	for name := range commands {
		available = append(available, name)
	}
	sort.Strings(available)
	return available
}

func cmdVersion(input io.Reader, output io.Writer, args []string) error {
	_, err := fmt.Fprintln(output, gitHash)
	return err
}

// gitHash is set during the compilation time.
var gitHash string = "dev"
