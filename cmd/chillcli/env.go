package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/tendermint/tendermint/libs/log"
)

// env returns the value of an environment variable if provided (even if empty)
// or a fallback value.
func env(name, fallback string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return fallback
}

func homeDir() string {
	return filepath.Join(os.Getenv("HOME"), ".chill")
}

// commonFlags are the flags that every ledger command accepts.
type commonFlags struct {
	key      *string
	mintFile *string
	db       *string
}

func registerCommonFlags(fl *flag.FlagSet) commonFlags {
	return commonFlags{
		key: fl.String("key", env("CHILLCLI_PRIV_KEY", filepath.Join(homeDir(), "id.key")),
			"Path to the private key file of the authority. You can use CHILLCLI_PRIV_KEY environment variable to set it."),
		mintFile: fl.String("mint-file", env("CHILLCLI_MINT_FILE", "mint.devnet.pubkey"),
			"Path to the file holding the default mint address. You can use CHILLCLI_MINT_FILE environment variable to set it."),
		db: fl.String("db", env("CHILLCLI_DB", filepath.Join(homeDir(), "ledger")),
			"Path to the ledger database directory. You can use CHILLCLI_DB environment variable to set it."),
	}
}

// logLevel returns the configured log level. Only errors are logged by
// default.
func logLevel() string {
	return env("CHILLCLI_LOG", "error")
}

// debugMode returns true if full error information should be printed.
func debugMode() bool {
	return logLevel() == "debug"
}

// newLogger returns a logger writing to stderr, filtered by the configured
// log level.
func newLogger() (log.Logger, error) {
	allowed, err := log.AllowLevel(logLevel())
	if err != nil {
		return nil, err
	}
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stderr))
	return log.NewFilter(logger, allowed), nil
}
