package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/log"
	"github.com/etnz/expenses/store"
	"github.com/joho/godotenv"
)

// Environment variables used as defaults for the global flags. They are also
// passed down to extensions.
const (
	EnvLedgerFile = "XT_LEDGER_FILE"
	EnvBackend    = "XT_BACKEND"
	EnvCurrency   = "XT_CURRENCY"
	EnvVerbose    = "XT_VERBOSE"
)

// envFlags maps environment variables to the global flag they set.
var envFlags = map[string]string{
	EnvLedgerFile: "ledger-file",
	EnvBackend:    "backend",
	EnvCurrency:   "currency",
	EnvVerbose:    "v",
}

// Config is the resolved application configuration.
type Config struct {
	LedgerFile string
	Backend    store.Backend
	Currency   string
	Verbose    bool
}

// CurrentConfig returns the configuration held by the global flags.
func CurrentConfig() Config {
	return Config{
		LedgerFile: *ledgerFile,
		Backend:    store.Backend(*backend),
		Currency:   *currency,
		Verbose:    *verbose,
	}
}

// Validate returns all the configuration problems at once.
func (c Config) Validate() error {
	var errs error
	if c.LedgerFile == "" {
		errs = errors.Join(errs, errors.New("ledger file cannot be empty"))
	}
	if !c.Backend.IsValid() {
		errs = errors.Join(errs, fmt.Errorf("invalid backend %q: must be one of %v", c.Backend, store.Backends))
	}
	if c.Currency != "" && money.GetCurrency(c.Currency) == nil {
		errs = errors.Join(errs, fmt.Errorf("unknown currency %q", c.Currency))
	}
	return errs
}

// Env returns the configuration as environment variable assignments.
func (c Config) Env() []string {
	return []string{
		EnvLedgerFile + "=" + c.LedgerFile,
		EnvBackend + "=" + string(c.Backend),
		EnvCurrency + "=" + c.Currency,
		EnvVerbose + "=" + strconv.FormatBool(c.Verbose),
	}
}

// Configure completes the parsed command line with the environment: the
// .env file in the working directory is loaded if present, then every
// global flag not set on the command line takes its XT_* variable, if any.
// The resulting configuration is validated.
func Configure() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not load .env file: %w", err)
	}
	if err := applyEnv(flag.CommandLine, os.LookupEnv); err != nil {
		return err
	}
	cfg := CurrentConfig()
	if cfg.Verbose {
		logger.SetLevel(log.DebugLevel)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration:\n%w", err)
	}
	logger.Debug("configuration", "ledger", cfg.LedgerFile, "backend", cfg.Backend, "currency", cfg.Currency)
	return nil
}

// applyEnv sets the flags that were not explicitly set, from the environment.
func applyEnv(flags *flag.FlagSet, lookup func(string) (string, bool)) error {
	set := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) { set[f.Name] = true })

	for env, name := range envFlags {
		if set[name] || flags.Lookup(name) == nil {
			continue
		}
		value, ok := lookup(env)
		if !ok {
			continue
		}
		if err := flags.Set(name, value); err != nil {
			return fmt.Errorf("invalid %s=%q: %w", env, value, err)
		}
	}
	return nil
}
