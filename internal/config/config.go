// Package config loads the TOML settings shared by the command line tool and
// the language server.
package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"reflect"
	"slices"

	"github.com/naoina/toml"

	"scilla/internal/errors"
)

// Formats lists the accepted values of Output.Format.
var Formats = []string{"text", "json", "yaml"}

type Output struct {
	Format         string
	Color          bool
	ShowProcedures bool
	ShowTypes      bool
}

type LSP struct {
	// Verbosity is passed to commonlog.Configure: 0 is errors only, 2 and
	// above is debug.
	Verbosity int
	LogFile   string `toml:",omitempty"`
}

type Config struct {
	Output Output
	LSP    LSP
}

// Defaults are used for every key a file leaves out.
var Defaults = Config{
	Output: Output{
		Format:         "text",
		Color:          true,
		ShowProcedures: true,
		ShowTypes:      true,
	},
	LSP: LSP{
		Verbosity: 1,
	},
}

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

// Load reads file over the defaults. An empty file name yields the defaults.
func Load(file string) (Config, error) {
	cfg := Defaults
	if file == "" {
		return cfg, nil
	}

	f, err := os.Open(file)
	if err != nil {
		return cfg, errors.Config(file, err)
	}
	defer f.Close()

	if err := Decode(bufio.NewReader(f), &cfg); err != nil {
		return cfg, errors.Config(file, err)
	}
	return cfg, nil
}

// Decode reads TOML from r into cfg and validates the result.
func Decode(r io.Reader, cfg *Config) error {
	if err := tomlSettings.NewDecoder(r).Decode(cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

func (c *Config) Validate() error {
	if !slices.Contains(Formats, c.Output.Format) {
		return fmt.Errorf("unknown output format %q, want one of %v", c.Output.Format, Formats)
	}
	if c.LSP.Verbosity < 0 {
		return fmt.Errorf("negative LSP verbosity %d", c.LSP.Verbosity)
	}
	return nil
}

// Marshal renders the configuration as TOML, in the shape Load accepts.
func (c *Config) Marshal() ([]byte, error) {
	return tomlSettings.Marshal(c)
}
