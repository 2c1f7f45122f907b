package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/eringen/siteconfig"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: stderr}).With().Timestamp().Logger().Level(zerolog.WarnLevel)

	if len(args) < 1 {
		printUsage(stderr)
		return 1
	}

	switch args[0] {
	case "check", "print":
		siteconfig.LoadDotenv()
		path := siteconfig.EnvOr("SITE_CONFIG", "")
		if len(args) > 1 {
			path = args[1]
		}
		cfg, err := siteconfig.Load(path)
		if err != nil {
			reportError(stderr, err)
			return 1
		}
		if args[0] == "check" {
			fmt.Fprintf(stdout, "ok: %s (%d social links, %d active)\n",
				cfg.Site().Title, len(cfg.Socials()), len(cfg.ActiveSocials()))
			return 0
		}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cfg); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	case "version":
		fmt.Fprintf(stdout, "siteconfig %s\n", version)
	case "help", "-h", "--help":
		printUsage(stdout)
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return 1
	}
	return 0
}

func reportError(w io.Writer, err error) {
	var verr *siteconfig.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintln(w, "Error: invalid site configuration")
		for _, fe := range verr.Errors {
			fmt.Fprintf(w, "  %s\n", fe)
		}
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `siteconfig - validate and inspect the blog site configuration

Usage:
  siteconfig <command> [config.yaml]

Commands:
  check [file]  Build the configuration and report every invalid field
  print [file]  Print the validated configuration as JSON
  version       Print the siteconfig version
  help          Show this help message

The file defaults to $SITE_CONFIG. SITE_* environment variables and a
.env file in the working directory override file values.`)
}
