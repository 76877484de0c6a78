// Package config provides settings loading for anthropac.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Setting keys, read from the environment or the settings file.
const (
	KeyFoldCase    = "ANTHROPAC_FOLD_CASE"
	KeyStrict      = "ANTHROPAC_STRICT"
	KeyTop         = "ANTHROPAC_TOP"
	KeySummaryOnly = "ANTHROPAC_SUMMARY_ONLY"
	KeyVerbose     = "ANTHROPAC_VERBOSE"
)

// Dir returns the anthropac config directory, respecting XDG_CONFIG_HOME.
// Defaults to ~/.config/anthropac if XDG_CONFIG_HOME is not set.
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "anthropac"), nil
}

// Settings holds analysis and display preferences.
type Settings struct {
	FoldCase    bool
	Strict      bool
	SummaryOnly bool
	Verbose     bool
	Top         int // 0 shows every summary row

	// Source is the settings file that was read, or "" if none existed.
	Source string
}

// Load reads {dir}/config and applies environment overrides on top of it.
// Empty environment variables are ignored. A missing file is not an error;
// defaults are used instead.
func Load(dir string) (*Settings, error) {
	s := &Settings{}

	path := filepath.Join(dir, "config")
	values, err := godotenv.Read(path)
	switch {
	case err == nil:
		s.Source = path
	case os.IsNotExist(err):
		values = map[string]string{}
	default:
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	lookup := func(key string) (string, bool) {
		if v := os.Getenv(key); v != "" {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{KeyFoldCase, &s.FoldCase},
		{KeyStrict, &s.Strict},
		{KeySummaryOnly, &s.SummaryOnly},
		{KeyVerbose, &s.Verbose},
	}
	for _, b := range bools {
		raw, ok := lookup(b.key)
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: expected true or false", b.key, raw)
		}
		*b.dst = v
	}

	if raw, ok := lookup(KeyTop); ok && raw != "" {
		top, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: expected an integer", KeyTop, raw)
		}
		s.Top = top
	}

	return s, nil
}

// Validate checks that the settings are usable.
func (s *Settings) Validate() error {
	if s.Top < 0 {
		return fmt.Errorf("invalid top: %d (must be zero or positive)", s.Top)
	}
	return nil
}
