package config

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"os"
	"time"

	apperrors "github.com/agbru/numgroup/internal/errors"
	"gopkg.in/yaml.v3"
)

// FileConfig is the YAML configuration file layout. Pointer fields tell an
// absent key apart from a zero value.
//
//	inPlace: true
//	workers: 4
//	timeout: 30s
//	output: results.txt
//	logLevel: debug
//	server:
//	  enabled: true
//	  port: 9090
type FileConfig struct {
	InPlace  *bool          `yaml:"inPlace"`
	Quiet    *bool          `yaml:"quiet"`
	Verbose  *bool          `yaml:"verbose"`
	Output   *string        `yaml:"output"`
	Workers  *int           `yaml:"workers"`
	Timeout  *time.Duration `yaml:"timeout"`
	LogLevel *string        `yaml:"logLevel"`
	Server   struct {
		Enabled *bool `yaml:"enabled"`
		Port    *int  `yaml:"port"`
	} `yaml:"server"`
}

// LoadFile reads and decodes a YAML configuration file. Unknown keys are
// rejected.
func LoadFile(path string) (FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileConfig{}, apperrors.NewConfigError("read config file %s: %v", path, err)
	}
	return ParseFile(data, path)
}

// ParseFile decodes YAML configuration data. name is used in error messages.
func ParseFile(data []byte, name string) (FileConfig, error) {
	var cfg FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return FileConfig{}, apperrors.NewConfigError("parse config file %s: %v", name, err)
	}
	return cfg, nil
}

// apply copies every key present in the file onto config, skipping settings
// whose flags were given on the command line.
func (f FileConfig) apply(config *AppConfig, fs *flag.FlagSet) {
	setIfPresent(fs, &config.InPlace, f.InPlace, "in-place")
	setIfPresent(fs, &config.Quiet, f.Quiet, "quiet", "q")
	setIfPresent(fs, &config.Verbose, f.Verbose, "verbose", "v")
	setIfPresent(fs, &config.Server, f.Server.Enabled, "server")
	setIfPresent(fs, &config.Workers, f.Workers, "workers")
	setIfPresent(fs, &config.Port, f.Server.Port, "port")
	setIfPresent(fs, &config.OutputFile, f.Output, "output", "o")
	setIfPresent(fs, &config.LogLevel, f.LogLevel, "log-level")
	setIfPresent(fs, &config.Timeout, f.Timeout, "timeout")
}

// setIfPresent copies *src into *dst when the key was present in the file
// and none of flags was set on the command line.
func setIfPresent[T any](fs *flag.FlagSet, dst *T, src *T, flags ...string) {
	if src != nil && !isFlagSetAny(fs, flags...) {
		*dst = *src
	}
}
