// SPDX-License-Identifier: MIT

// Package config provides alignment settings loaded from environment variables.
//
// Settings are created via New() which handles:
//   - Environment variable parsing with validation
//   - Default value application (the nw package defaults)
package config

import (
	"fmt"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/katalvlaran/seqalign/nw"
)

// Environment variable names.
const (
	EnvMatch      = "SEQALIGN_MATCH"
	EnvMismatch   = "SEQALIGN_MISMATCH"
	EnvGap        = "SEQALIGN_GAP"
	EnvGapSymbol  = "SEQALIGN_GAP_SYMBOL"
	EnvShowMatrix = "SEQALIGN_SHOW_MATRIX"
)

// Settings holds all alignment configuration.
type Settings struct {
	Scoring    nw.Scoring
	GapSymbol  rune
	ShowMatrix bool
}

// Options converts the settings into engine options.
func (s Settings) Options() []nw.Option {
	return []nw.Option{nw.WithGapSymbol(s.GapSymbol)}
}

// New creates settings from environment variables, falling back to the
// engine defaults. Returns an error naming the variable if a value is invalid.
func New() (Settings, error) {
	match, err := getEnvInt(EnvMatch, nw.DefaultMatch)
	if err != nil {
		return Settings{}, err
	}

	mismatch, err := getEnvInt(EnvMismatch, nw.DefaultMismatch)
	if err != nil {
		return Settings{}, err
	}

	gap, err := getEnvInt(EnvGap, nw.DefaultGap)
	if err != nil {
		return Settings{}, err
	}

	gapSymbol, err := getEnvRune(EnvGapSymbol, nw.DefaultGapSymbol)
	if err != nil {
		return Settings{}, err
	}

	showMatrix, err := getEnvBool(EnvShowMatrix, false)
	if err != nil {
		return Settings{}, err
	}

	return Settings{
		Scoring:    nw.Scoring{Match: match, Mismatch: mismatch, Gap: gap},
		GapSymbol:  gapSymbol,
		ShowMatrix: showMatrix,
	}, nil
}

// MustNew creates settings from the environment.
// Panics if environment variables are invalid.
// Use this only when configuration errors should be fatal.
func MustNew() Settings {
	settings, err := New()
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return settings
}

// ParseGapSymbol accepts exactly one rune.
func ParseGapSymbol(val string) (rune, error) {
	if utf8.RuneCountInString(val) != 1 {
		return 0, fmt.Errorf("gap symbol must be a single character, got %q", val)
	}
	r, _ := utf8.DecodeRuneInString(val)
	if r == utf8.RuneError {
		return 0, fmt.Errorf("gap symbol %q is not valid UTF-8", val)
	}
	return r, nil
}

// Environment variable helpers with proper error handling

func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q: %w", key, val, err)
	}
	return i, nil
}

func getEnvBool(key string, defaultVal bool) (bool, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid value for %s: %q: %w", key, val, err)
	}
	return b, nil
}

func getEnvRune(key string, defaultVal rune) (rune, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	r, err := ParseGapSymbol(val)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return r, nil
}
