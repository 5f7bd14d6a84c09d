// Package cli turns command-line arguments into run options.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

// ExitError carries the process exit code for a failed parse.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// Options is the parsed command line. WeeksBefore and WeeksAfter are -1 when
// the flag was not given, so the config file value applies.
type Options struct {
	ConfigPath  string
	WeeksBefore int
	WeeksAfter  int
	Date        time.Time
	Out         string
	Format      string
	ServeAddr   string
	Preview     bool
	InitConfig  bool
	LogLevel    string
	LogFormat   string
}

// Parse processes args. It returns the options, whether the program should
// exit cleanly (help was printed), or an *ExitError.
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	flagSet := flag.NewFlagSet("notecal", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
notecal - a printable multi-week calendar.

Usage:
  notecal [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	opts := &Options{}
	flagSet.StringVar(&opts.ConfigPath, "config", "", "Path to a config.json or config.yaml file. Defaults to ~/.config/notecal/config.json.")
	flagSet.IntVar(&opts.WeeksBefore, "weeks-before", -1, "Weeks shown before the current week. Overrides the config file.")
	flagSet.IntVar(&opts.WeeksAfter, "weeks-after", -1, "Weeks shown after the current week. Overrides the config file.")
	dateFlag := flagSet.String("date", "", "Reference date as YYYY-MM-DD. Defaults to today.")
	flagSet.StringVar(&opts.Out, "out", "-", "Output file. '-' writes to stdout.")
	formatFlag := flagSet.String("format", "html", "Output format. Options: 'html' or 'text'.")
	flagSet.StringVar(&opts.ServeAddr, "serve", "", "Serve the calendar over HTTP on this address, e.g. ':8080'.")
	flagSet.BoolVar(&opts.Preview, "preview", false, "Open the interactive terminal preview.")
	flagSet.BoolVar(&opts.InitConfig, "init-config", false, "Write the default config file and exit.")
	logLevelFlag := flagSet.String("log-level", "info", "Logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", flagSet.Arg(0))}
	}

	if *dateFlag != "" {
		d, err := time.Parse("2006-01-02", *dateFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid date %q: must be YYYY-MM-DD", *dateFlag)}
		}
		opts.Date = d
	}

	if flagPassed(flagSet, "weeks-before") && opts.WeeksBefore < 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid weeks-before: must be non-negative"}
	}
	if flagPassed(flagSet, "weeks-after") && opts.WeeksAfter < 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid weeks-after: must be non-negative"}
	}

	opts.Format = strings.ToLower(*formatFlag)
	if opts.Format != "html" && opts.Format != "text" {
		return nil, false, &ExitError{Code: 2, Message: "invalid format: must be 'html' or 'text'"}
	}

	opts.LogFormat = strings.ToLower(*logFormatFlag)
	if opts.LogFormat != "text" && opts.LogFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	opts.LogLevel = strings.ToLower(*logLevelFlag)
	switch opts.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if opts.Preview && opts.ServeAddr != "" {
		return nil, false, &ExitError{Code: 2, Message: "-preview and -serve cannot be combined"}
	}

	slog.Debug("CLI arguments parsed.", "options", opts)
	return opts, false, nil
}

func flagPassed(flagSet *flag.FlagSet, name string) bool {
	passed := false
	flagSet.Visit(func(f *flag.Flag) {
		if f.Name == name {
			passed = true
		}
	})
	return passed
}

// NewLogger builds a slog.Logger writing text or JSON to w. It does not set
// the global logger.
func NewLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}
