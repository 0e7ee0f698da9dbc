package puid

import (
	"fmt"
	"strconv"
	"strings"
)

// Default namespace tokens. The custom token marks PUIDs eligible for
// reallocation; the prefix is the namespace newly allocated PUIDs are
// written under.
const (
	DefaultCustomToken = "dev"
	DefaultPrefix      = "ffdev"
)

// DefaultAuthorities are the external-registry tokens recognized out of the
// box. The set is informational (used by lint); classification itself
// treats any token other than the custom token as authority-issued.
var DefaultAuthorities = []string{"fmt", "x-fmt"}

// Namespace classifies a PUID by its authority token.
type Namespace int

const (
	// NamespaceMalformed marks a string that does not parse as a PUID.
	NamespaceMalformed Namespace = iota
	// NamespaceAuthority marks a registry-issued PUID, passed through
	// unmodified by the combiner.
	NamespaceAuthority
	// NamespaceCustom marks a locally-defined PUID, reallocated by the
	// combiner.
	NamespaceCustom
)

// String returns a human-readable namespace name.
func (n Namespace) String() string {
	switch n {
	case NamespaceAuthority:
		return "authority"
	case NamespaceCustom:
		return "custom"
	default:
		return "malformed"
	}
}

// PUID is a parsed persistent unique identifier.
type PUID struct {
	Authority string
	Number    int
}

// String returns the canonical "<authority>/<number>" form.
func (p PUID) String() string {
	return fmt.Sprintf("%s/%d", p.Authority, p.Number)
}

// MalformedError reports a string that does not parse as
// "<authority>/<number>".
type MalformedError struct {
	Value string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed PUID %q: expected <authority>/<number>", e.Value)
}

// Parse parses a PUID string. The authority must be a non-empty token and
// the suffix a non-negative integer; anything else returns *MalformedError.
func Parse(s string) (PUID, error) {
	authority, suffix, ok := strings.Cut(s, "/")
	if !ok || authority == "" || suffix == "" {
		return PUID{}, &MalformedError{Value: s}
	}
	number, err := strconv.Atoi(suffix)
	if err != nil || number < 0 {
		return PUID{}, &MalformedError{Value: s}
	}
	return PUID{Authority: authority, Number: number}, nil
}

// Classify returns the namespace of p under the given custom token. Any
// authority other than the custom token is treated as registry-issued; the
// authority list is deliberately open-ended so new registry namespaces pass
// through without a code change.
func Classify(p PUID, customToken string) Namespace {
	if customToken == "" {
		customToken = DefaultCustomToken
	}
	if p.Authority == customToken {
		return NamespaceCustom
	}
	return NamespaceAuthority
}
