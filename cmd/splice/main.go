// Package main is the entry point for the splice command, a small tool that
// decodes the string elements of a JSON array inside the file's own byte
// buffer and reports the decoded values.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// options holds the parsed command line.
type options struct {
	ConfigPath string
	LogLevel   string
	OutPath    string
	Pretty     bool
	Watch      bool
	File       string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := LoadConfig(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.Pretty {
		cfg.Output.Pretty = true
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q\n", cfg.Log.Level)
		return 1
	}
	log.SetLevel(level)

	report, err := processFile(opts.File, log)
	if err != nil {
		log.WithError(err).Error("processing failed")
		return 1
	}
	if err := writeReport(report, opts.OutPath, cfg.Output.Pretty); err != nil {
		log.WithError(err).Error("writing report failed")
		return 1
	}

	if opts.Watch {
		if err := watchFile(opts.File, opts, cfg, log); err != nil {
			log.WithError(err).Error("watch failed")
			return 1
		}
	}

	return 0
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.OutPath, "out", "", "Write the report to a file instead of stdout")
	flag.StringVar(&opts.OutPath, "o", "", "Write the report to a file (shorthand)")
	flag.BoolVar(&opts.Pretty, "pretty", false, "Pretty-print the JSON report")
	flag.BoolVar(&opts.Watch, "watch", false, "Reprocess the file whenever it changes")
	flag.BoolVar(&opts.Watch, "w", false, "Reprocess on change (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "splice - in-place JSON string array decoder\n\n")
		fmt.Fprintf(os.Stderr, "Usage: splice [options] <file.json>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  splice strings.json             Decode and report\n")
		fmt.Fprintf(os.Stderr, "  splice -pretty strings.json     Pretty-printed report\n")
		fmt.Fprintf(os.Stderr, "  splice -w -o out.json in.json   Reprocess on every save\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("splice %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	opts.File = flag.Arg(0)

	return opts
}
