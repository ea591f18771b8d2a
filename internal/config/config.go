// Package config defines the numgroup configuration and parses it from
// command-line flags, NUMGROUP_* environment variables and an optional YAML
// file. Precedence is flags, then environment, then file, then defaults.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"
	"time"

	apperrors "github.com/agbru/numgroup/internal/errors"
	"github.com/agbru/numgroup/internal/format"
	"github.com/agbru/numgroup/internal/logging"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "NUMGROUP_"

const (
	// DefaultTimeout bounds a whole CLI run.
	DefaultTimeout = time.Minute
	// DefaultPort is the HTTP port used in server mode.
	DefaultPort = 8080
)

// AppConfig holds the settings of one numgroup run.
type AppConfig struct {
	// Inputs are the positional arguments. Empty or "-" means stdin.
	Inputs []string
	// InPlace selects the in-place grouping operation.
	InPlace bool
	// Quiet prints only the grouped values.
	Quiet bool
	// Verbose prints input/output pairs and timing.
	Verbose bool
	// OutputFile, when set, also receives the results.
	OutputFile string
	// Workers bounds batch concurrency.
	Workers int
	// Timeout bounds a CLI run.
	Timeout time.Duration
	// ConfigFile is the YAML file the settings were read from, if any.
	ConfigFile string
	// Server starts the HTTP server instead of formatting inputs.
	Server bool
	// Port is the HTTP listen port.
	Port int
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// Mode returns the grouping operation selected by the configuration.
func (c AppConfig) Mode() format.Mode {
	if c.InPlace {
		return format.ModeInPlace
	}
	return format.ModeAllocate
}

// ReadsStdin reports whether inputs come from standard input.
func (c AppConfig) ReadsStdin() bool {
	return len(c.Inputs) == 0 || (len(c.Inputs) == 1 && c.Inputs[0] == "-")
}

// Validate checks the configuration for inconsistent or out-of-range values.
func (c AppConfig) Validate() error {
	if c.Workers < 0 {
		return apperrors.NewConfigError("workers must not be negative, got %d", c.Workers)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", c.Timeout)
	}
	if c.Port < 1 || c.Port > 65535 {
		return apperrors.NewConfigError("port must be between 1 and 65535, got %d", c.Port)
	}
	if c.Quiet && c.Verbose {
		return apperrors.NewConfigError("quiet and verbose are mutually exclusive")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("%v", err)
	}
	return nil
}

// ParseConfig parses args (without the program name) into an AppConfig.
// Usage and flag package messages are written to errWriter; every other
// error is only returned, the caller reports it. flag.ErrHelp is returned
// unchanged when -h or -help was requested.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [flags] [number ...]\n\n", programName)
		fmt.Fprintln(errWriter, "Groups the integer part of each number with commas. Reads stdin when no number is given.")
		fmt.Fprintln(errWriter)
		fs.PrintDefaults()
	}

	config := AppConfig{}
	fs.BoolVar(&config.InPlace, "in-place", false, "Use the in-place grouping operation.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Print only the grouped values.")
	fs.BoolVar(&config.Quiet, "q", false, "Shorthand for -quiet.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Print input and output pairs with timing.")
	fs.BoolVar(&config.Verbose, "v", false, "Shorthand for -verbose.")
	fs.StringVar(&config.OutputFile, "output", "", "Also write the results to this file.")
	fs.StringVar(&config.OutputFile, "o", "", "Shorthand for -output.")
	fs.IntVar(&config.Workers, "workers", runtime.NumCPU(), "Maximum number of concurrent formatters.")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum duration of a run.")
	fs.StringVar(&config.ConfigFile, "config", "", "YAML configuration file.")
	fs.BoolVar(&config.Server, "server", false, "Serve the HTTP API instead of formatting inputs.")
	fs.IntVar(&config.Port, "port", DefaultPort, "HTTP listen port in server mode.")
	fs.StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn or error.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.NewConfigError("%v", err)
	}
	config.Inputs = fs.Args()

	if !isFlagSet(fs, "config") {
		config.ConfigFile = getEnvString("CONFIG", "")
	}
	if config.ConfigFile != "" {
		fileCfg, err := LoadFile(config.ConfigFile)
		if err != nil {
			return AppConfig{}, err
		}
		fileCfg.apply(&config, fs)
	}
	applyEnvOverrides(&config, fs)

	if err := config.Validate(); err != nil {
		return AppConfig{}, err
	}
	return config, nil
}
