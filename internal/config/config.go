// Package config loads and validates combiner run configuration from HCL.
package config

import (
	"fmt"
	"os"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/ffdev-info/combiner/pkg/puid"
)

// DefaultOutput is the file the combined document is written to when no
// output is configured. "-" means stdout.
const DefaultOutput = "-"

// Config is the resolved run configuration. Zero-value fields from the HCL
// file are replaced with defaults before validation.
type Config struct {
	// Prefix is the namespace for newly allocated custom PUIDs.
	Prefix string

	// StartIndex is the numeric suffix of the first allocated custom PUID.
	StartIndex int

	// CustomToken is the input namespace treated as custom.
	CustomToken string

	// Authorities is the list of recognized registry namespaces, used by
	// lint to flag typos. Classification does not depend on it.
	Authorities []string

	// Output is the path the combined document is written to; "-" selects
	// stdout.
	Output string
}

// fileConfig mirrors the HCL schema. Pointer fields distinguish "absent"
// from explicit zero values (start_index = 0 is legal).
type fileConfig struct {
	Prefix      *string  `hcl:"prefix,optional"`
	StartIndex  *int     `hcl:"start_index,optional"`
	CustomToken *string  `hcl:"custom_token,optional"`
	Authorities []string `hcl:"authorities,optional"`
	Output      *string  `hcl:"output,optional"`
}

// NewConfig builds a Config from the HCL file at path. An empty path yields
// the defaults (prefix "ffdev", start index 1, custom token "dev").
func NewConfig(path string) (*Config, error) {
	cfg := &Config{
		Prefix:      puid.DefaultPrefix,
		StartIndex:  1,
		CustomToken: puid.DefaultCustomToken,
		Authorities: puid.DefaultAuthorities,
		Output:      DefaultOutput,
	}
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", path)
	}

	var fc fileConfig
	if err := hclsimple.DecodeFile(path, nil, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file: %w", err)
	}

	if fc.Prefix != nil {
		cfg.Prefix = *fc.Prefix
	}
	if fc.StartIndex != nil {
		cfg.StartIndex = *fc.StartIndex
	}
	if fc.CustomToken != nil {
		cfg.CustomToken = *fc.CustomToken
	}
	if fc.Authorities != nil {
		cfg.Authorities = fc.Authorities
	}
	if fc.Output != nil {
		cfg.Output = *fc.Output
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// namespaceToken matches a PUID namespace token: lowercase letters, digits
// and hyphens, as in "fmt" and "x-fmt".
var namespaceToken = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Validate checks the resolved configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Prefix,
			validation.Required,
			validation.Match(namespaceToken).Error("must be a lowercase namespace token"),
		),
		validation.Field(&c.StartIndex, validation.Min(0)),
		validation.Field(&c.CustomToken,
			validation.Required,
			validation.Match(namespaceToken).Error("must be a lowercase namespace token"),
		),
		validation.Field(&c.Output, validation.Required),
	)
}
