// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 PassForge Contributors

// Package config loads and validates passforge generation settings.
//
// Settings are layered: built-in defaults, then an optional YAML file, then
// command-line flags. Nothing is ever written back; configuration lives for
// a single run.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"

	"github.com/passforge/passforge/internal/password"
)

// Bounds enforced on user-supplied values before the core is invoked.
const (
	MinLength  = 4
	MaxLength  = 128
	MaxMinimum = 10
	MaxCount   = 50
)

// Config holds the user-facing generation settings.
type Config struct {
	Length           int  `koanf:"length"`
	Lowercase        bool `koanf:"lowercase"`
	Uppercase        bool `koanf:"uppercase"`
	Digits           bool `koanf:"digits"`
	Special          bool `koanf:"special"`
	ReadableOnly     bool `koanf:"readable"`
	ExcludeAmbiguous bool `koanf:"exclude-ambiguous"`
	MinDigits        int  `koanf:"min-digits"`
	MinSpecial       int  `koanf:"min-special"`
	Count            int  `koanf:"count"`
}

// Default returns the out-of-the-box configuration.
func Default() Config {
	return Config{
		Length:     16,
		Lowercase:  true,
		Uppercase:  true,
		Digits:     true,
		Special:    true,
		MinDigits:  1,
		MinSpecial: 1,
		Count:      1,
	}
}

// Load layers an optional YAML file and command-line flags over the
// defaults. Later sources win: file values override defaults, and flags the
// user explicitly set override file values. Either path or flags may be
// empty/nil.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, oops.Code("CONFIG_LOAD_FAILED").With("path", path).Wrap(err)
		}
	}
	if flags != nil {
		// Passing k makes unchanged flags defer to file values.
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return Config{}, oops.Code("CONFIG_LOAD_FAILED").Wrap(err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, oops.Code("CONFIG_PARSE_FAILED").Wrap(err)
	}
	return cfg, nil
}

// Validate enforces the interactive bounds. The generator itself accepts any
// Settings; these checks exist so user input fails fast with a clear message
// instead of producing surprising output.
func (c Config) Validate() error {
	errb := oops.Code("CONFIG_INVALID")
	if c.Length < MinLength || c.Length > MaxLength {
		return errb.With("length", c.Length).
			Errorf("length must be between %d and %d", MinLength, MaxLength)
	}
	if !c.Lowercase && !c.Uppercase && !c.Digits && !c.Special {
		return errb.Errorf("at least one character category must be enabled")
	}
	if c.MinDigits < 0 || c.MinDigits > MaxMinimum {
		return errb.With("min-digits", c.MinDigits).
			Errorf("min-digits must be between 0 and %d", MaxMinimum)
	}
	if c.MinSpecial < 0 || c.MinSpecial > MaxMinimum {
		return errb.With("min-special", c.MinSpecial).
			Errorf("min-special must be between 0 and %d", MaxMinimum)
	}
	if c.MinDigits+c.MinSpecial > c.Length {
		return errb.With("min-digits", c.MinDigits).With("min-special", c.MinSpecial).
			Errorf("minimum counts exceed the password length")
	}
	if c.MinDigits > 0 && !c.Digits {
		return errb.Errorf("min-digits requires the digits category")
	}
	if c.MinSpecial > 0 && !c.Special {
		return errb.Errorf("min-special requires the special category")
	}
	if c.Count < 1 || c.Count > MaxCount {
		return errb.With("count", c.Count).
			Errorf("count must be between 1 and %d", MaxCount)
	}
	return nil
}

// Settings converts the configuration to the generator's value type.
func (c Config) Settings() password.Settings {
	return password.Settings{
		Length:           c.Length,
		Lowercase:        c.Lowercase,
		Uppercase:        c.Uppercase,
		Digits:           c.Digits,
		Special:          c.Special,
		ReadableOnly:     c.ReadableOnly,
		ExcludeAmbiguous: c.ExcludeAmbiguous,
		MinDigits:        c.MinDigits,
		MinSpecial:       c.MinSpecial,
	}
}

// Summary returns a single-line description of the settings, used in export
// file headers and the interactive settings screen.
func (c Config) Summary() string {
	var classes []string
	if c.Lowercase {
		classes = append(classes, "lower")
	}
	if c.Uppercase {
		classes = append(classes, "upper")
	}
	if c.Digits {
		classes = append(classes, "digits")
	}
	if c.Special {
		classes = append(classes, "special")
	}
	if len(classes) == 0 {
		classes = append(classes, "none")
	}
	return fmt.Sprintf(
		"length=%d classes=%s readable=%t exclude-ambiguous=%t min-digits=%d min-special=%d",
		c.Length, strings.Join(classes, ","), c.ReadableOnly, c.ExcludeAmbiguous,
		c.MinDigits, c.MinSpecial,
	)
}
