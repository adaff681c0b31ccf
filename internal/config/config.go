package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Order is the configured sort direction.
type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// Rule configures the sort-keys rule for one run. It is immutable once a run
// has started.
type Rule struct {
	Order         Order
	CaseSensitive bool
	Natural       bool
	MinKeys       int
}

// Default returns the rule defaults: ascending, case-sensitive, lexicographic
// comparison, objects with at least two keys.
func Default() Rule {
	return Rule{
		Order:         Asc,
		CaseSensitive: true,
		Natural:       false,
		MinKeys:       2,
	}
}

// Validate rejects configurations the rule cannot honor. This is the schema
// layer; the rule itself assumes a validated configuration.
func (r Rule) Validate() error {
	if r.Order != Asc && r.Order != Desc {
		return fmt.Errorf("invalid order %q: must be %q or %q", r.Order, Asc, Desc)
	}
	if r.MinKeys < 2 {
		return fmt.Errorf("invalid minKeys %d: must be at least 2", r.MinKeys)
	}
	return nil
}

// File is the on-disk configuration, merged under any CLI flag overrides.
type File struct {
	Rule
	Extensions []string
}

// DefaultExtensions lists the file types linted when none are configured.
func DefaultExtensions() []string {
	return []string{".js", ".jsx", ".ts", ".tsx"}
}

// Load reads keysort.yaml (or .keysort.yaml) from dir. A missing file yields
// the defaults; a malformed or invalid file is an error.
func Load(dir string) (File, error) {
	out := File{Rule: Default(), Extensions: DefaultExtensions()}

	v := viper.New()
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	loaded := false
	for _, name := range []string{"keysort", ".keysort"} {
		v.SetConfigName(name)
		err := v.ReadInConfig()
		if err == nil {
			loaded = true
			break
		}
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return out, fmt.Errorf("reading config: %w", err)
		}
	}
	if !loaded {
		return out, nil
	}

	if v.IsSet("order") {
		out.Order = Order(v.GetString("order"))
	}
	if v.IsSet("caseSensitive") {
		out.CaseSensitive = v.GetBool("caseSensitive")
	}
	if v.IsSet("natural") {
		out.Natural = v.GetBool("natural")
	}
	if v.IsSet("minKeys") {
		out.MinKeys = v.GetInt("minKeys")
	}
	if v.IsSet("extensions") {
		out.Extensions = v.GetStringSlice("extensions")
	}

	if err := out.Validate(); err != nil {
		return out, fmt.Errorf("config file %s: %w", v.ConfigFileUsed(), err)
	}
	return out, nil
}
