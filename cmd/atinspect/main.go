// atinspect is the inspection CLI for accesstree update logs and live
// producers.
package main

import (
	"flag"
	"fmt"
	"os"

	"accesstree/internal/config"
	"accesstree/internal/logging"
)

var (
	configPath = flag.String("config", "", "path to config file")
	follow     = flag.Bool("follow", false, "replay: keep applying updates as the log grows")
	dbPath     = flag.String("db", "", "record: database path (default from config)")
	socketPath = flag.String("socket", "", "serve: unix socket path (default from config)")
)

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	cmd := flag.Arg(0)

	switch cmd {
	case "validate":
		if flag.NArg() < 2 {
			fmt.Fprintln(os.Stderr, "Usage: atinspect validate <file>")
			os.Exit(1)
		}
		cmdValidate(flag.Arg(1))
	case "dump":
		if flag.NArg() < 2 {
			fmt.Fprintln(os.Stderr, "Usage: atinspect dump <file>")
			os.Exit(1)
		}
		cmdDump(flag.Arg(1))
	case "replay":
		if flag.NArg() < 2 {
			fmt.Fprintln(os.Stderr, "Usage: atinspect replay [-follow] <file>")
			os.Exit(1)
		}
		cmdReplay(flag.Arg(1), *follow)
	case "record":
		if flag.NArg() < 2 {
			fmt.Fprintln(os.Stderr, "Usage: atinspect record [-db <path>] <file>")
			os.Exit(1)
		}
		cmdRecord(flag.Arg(1))
	case "serve":
		cmdServe()
	case "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `atinspect - Inspection utility for accessibility tree updates

Usage: atinspect [options] <command> [args]

Commands:
  validate <file>  Check every update in a JSONL log against the schema
  dump <file>      Apply a JSONL log and print the resulting tree
  replay <file>    Apply a JSONL log, printing each change event
  record <file>    Copy a JSONL log into the SQLite update database
  serve            Listen on the unix socket and print change events
  help             Show this help message

Options:
  -config <path>   Path to config file (TOML, YAML or JSON)
  -follow          replay: keep applying updates as the log grows
  -db <path>       record: database path (default from config)
  -socket <path>   serve: unix socket path (default from config)`)
}

func loadConfig() *config.Config {
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func newLogger(cfg *config.Config) *logging.Logger {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	format, err := logging.ParseFormat(cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logging.New(&logging.Config{
		Level:     level,
		Format:    format,
		Component: "atinspect",
	})
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
