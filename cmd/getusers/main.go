package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jhunt/go-ansi"
	"github.com/mordilloSan/go-logger/logger"

	"github.com/mordilloSan/getusers/accounts"
	"github.com/mordilloSan/getusers/common/config"
	"github.com/mordilloSan/getusers/common/version"
	"github.com/mordilloSan/getusers/logins"
	"github.com/mordilloSan/getusers/report"
	"github.com/mordilloSan/getusers/sudo"
	"github.com/mordilloSan/getusers/sysinfo"
)

const banner = `
   ______     __     __  __
  / ____/__  / /_   / / / /_______  __________
 / / __/ _ \/ __/  / / / / ___/ _ \/ ___/ ___/
/ /_/ /  __/ /_   / /_/ (__  )  __/ /  (__  )
\____/\___/\__/   \____/____/\___/_/  /____/
`

// options are the parsed command line flags.
type options struct {
	System  bool
	Regular bool
	All     bool
	Full    bool
	Version bool
	JSON    bool
	Verbose bool
	Config  string
}

// test seams (override in tests)
var (
	stdout   io.Writer = os.Stdout
	hostLine           = sysinfo.Summary
	newQuery           = logins.Command
)

func main() {
	opts := parseArgs(os.Args[1:])

	if err := run(opts); err != nil {
		ansi.Fprintf(os.Stderr, "@R{!! %s}\n", err)
		os.Exit(1)
	}
}

func parseArgs(args []string) options {
	fs := flag.NewFlagSet("getusers", flag.ExitOnError)

	var opts options
	fs.BoolVar(&opts.Version, "v", false, "print the version and exit")
	fs.BoolVar(&opts.Version, "version", false, "print the version and exit")
	fs.BoolVar(&opts.System, "s", false, "show system users")
	fs.BoolVar(&opts.System, "system-users", false, "show system users")
	fs.BoolVar(&opts.Regular, "u", false, "show standard users (the default)")
	fs.BoolVar(&opts.Regular, "users", false, "show standard users (the default)")
	fs.BoolVar(&opts.All, "a", false, "show all users")
	fs.BoolVar(&opts.All, "all-users", false, "show all users")
	fs.BoolVar(&opts.Full, "F", false, "show the full user information")
	fs.BoolVar(&opts.Full, "show-full", false, "show the full user information")
	fs.BoolVar(&opts.JSON, "json", false, "emit the report as JSON")
	fs.BoolVar(&opts.Verbose, "V", false, "verbose logging")
	fs.BoolVar(&opts.Verbose, "verbose", false, "verbose logging")
	fs.StringVar(&opts.Config, "config", "", "path to a YAML config file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Report the user accounts present on this host

Usage:
  getusers [flags]

Flags:
  -s, -system-users    show system users
  -u, -users           show standard users (the default)
  -a, -all-users       show all users
  -F, -show-full       include the group ID and GECOS columns
  -v, -version         print the version and exit
  -json                emit the report as JSON instead of a table
  -config <path>       YAML file overriding the data source locations
  -V, -verbose         verbose logging
`)
	}

	_ = fs.Parse(args)
	return opts
}

// selectMode picks the report mode: the first matching flag wins, and no
// selection flag at all means standard users.
func selectMode(opts options) (accounts.Mode, string) {
	switch {
	case opts.System:
		return accounts.ModeSystem, "Showing system users"
	case opts.Regular:
		return accounts.ModeRegular, "Showing standard users"
	case opts.All:
		return accounts.ModeAll, "Showing all users"
	}

	return accounts.ModeRegular, "Default: Showing standard users"
}

func run(opts options) error {
	levels := []logger.Level{logger.WarnLevel, logger.ErrorLevel}
	if opts.Verbose {
		levels = logger.AllLevels()
	}
	logger.Init(logger.Config{Levels: levels})

	// Version mode never touches the data sources.
	if opts.Version {
		printBanner()
		ansi.Fprintf(stdout, "@M{Showing version}\n\n")
		ansi.Fprintf(stdout, "@G{Version: %s}\n", version.Version)
		return nil
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		return err
	}

	if !opts.JSON {
		printBanner()
	}

	selected, builder, err := load(cfg, opts)
	if err != nil {
		return err
	}

	if opts.JSON {
		out, err := json.MarshalIndent(builder.Entries(selected), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		fmt.Fprintln(stdout, string(out))
		return nil
	}

	_, label := selectMode(opts)
	ansi.Fprintf(stdout, "@M{%s}\n\n", label)
	report.Render(stdout, report.Headers(opts.Full), builder.Build(selected, opts.Full))
	return nil
}

// load pulls in the four data sources plus the login history and returns
// the accounts selected by the mode flags. Any source failing to load is
// fatal; only the login history degrades.
func load(cfg config.Config, opts options) ([]accounts.Account, *report.Builder, error) {
	accts, err := accounts.Load(cfg.PasswdFile)
	if err != nil {
		return nil, nil, err
	}
	logger.Debugf("loaded %d accounts from %s", len(accts), cfg.PasswdFile)

	checker, err := sudo.Load(cfg.GroupFile, cfg.SudoersFile)
	if err != nil {
		return nil, nil, err
	}

	th, err := accounts.LoadThresholds(cfg.DefsFile)
	if err != nil {
		return nil, nil, err
	}
	logger.Debugf("uid thresholds: system <= %d, regular %d..%d", th.SysUIDMax, th.UIDMin, th.UIDMax)

	query := newQuery(cfg.LastCommand, time.Duration(cfg.LastTimeout)*time.Second)
	history := logins.Build(context.Background(), query, cfg.WtmpFile)

	mode, _ := selectMode(opts)
	selected := accounts.Classify(accts, mode, th)
	logger.Debugf("selected %d of %d accounts (%s)", len(selected), len(accts), mode)

	return selected, &report.Builder{Sudo: checker, Logins: history}, nil
}

func printBanner() {
	ansi.Fprintf(stdout, "@G{%s}\n", banner)
	if line, err := hostLine(); err == nil {
		ansi.Fprintf(stdout, "@K{%s}\n\n", line)
	}
}
