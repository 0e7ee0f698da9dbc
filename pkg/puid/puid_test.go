package puid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    PUID
		wantErr bool
	}{
		{"authority PUID", "fmt/123", PUID{Authority: "fmt", Number: 123}, false},
		{"extended authority PUID", "x-fmt/44", PUID{Authority: "x-fmt", Number: 44}, false},
		{"custom PUID", "dev/1", PUID{Authority: "dev", Number: 1}, false},
		{"zero suffix", "dev/0", PUID{Authority: "dev", Number: 0}, false},
		{"empty string", "", PUID{}, true},
		{"no separator", "fmt123", PUID{}, true},
		{"empty authority", "/123", PUID{}, true},
		{"empty number", "fmt/", PUID{}, true},
		{"non-numeric suffix", "fmt/abc", PUID{}, true},
		{"negative suffix", "fmt/-1", PUID{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				var malformed *MalformedError
				require.Error(t, err)
				require.True(t, errors.As(err, &malformed))
				assert.Equal(t, tt.input, malformed.Value)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPUID_String(t *testing.T) {
	assert.Equal(t, "fmt/123", PUID{Authority: "fmt", Number: 123}.String())
	assert.Equal(t, "dev/0", PUID{Authority: "dev", Number: 0}.String())
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		puid        PUID
		customToken string
		want        Namespace
	}{
		{"fmt is authority", PUID{Authority: "fmt", Number: 5}, "dev", NamespaceAuthority},
		{"x-fmt is authority", PUID{Authority: "x-fmt", Number: 5}, "dev", NamespaceAuthority},
		{"custom token is custom", PUID{Authority: "dev", Number: 5}, "dev", NamespaceCustom},
		{"unknown token passes through", PUID{Authority: "sfw", Number: 5}, "dev", NamespaceAuthority},
		{"empty token falls back to default", PUID{Authority: "dev", Number: 5}, "", NamespaceCustom},
		{"non-default custom token", PUID{Authority: "local", Number: 5}, "local", NamespaceCustom},
		{"dev is authority under non-default token", PUID{Authority: "dev", Number: 5}, "local", NamespaceAuthority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.puid, tt.customToken))
		})
	}
}

func TestNamespace_String(t *testing.T) {
	assert.Equal(t, "authority", NamespaceAuthority.String())
	assert.Equal(t, "custom", NamespaceCustom.String())
	assert.Equal(t, "malformed", NamespaceMalformed.String())
}

func TestAllocator(t *testing.T) {
	t.Run("sequence starts at start index", func(t *testing.T) {
		a := NewAllocator("dev", 100)
		assert.Equal(t, "dev/100", a.Next().String())
		assert.Equal(t, "dev/101", a.Next().String())
		assert.Equal(t, "dev/102", a.Next().String())
	})

	t.Run("zero start index is allowed", func(t *testing.T) {
		a := NewAllocator("ffdev", 0)
		assert.Equal(t, "ffdev/0", a.Next().String())
	})

	t.Run("empty prefix falls back to default", func(t *testing.T) {
		a := NewAllocator("", 1)
		assert.Equal(t, DefaultPrefix, a.Prefix())
		assert.Equal(t, DefaultPrefix+"/1", a.Next().String())
	})
}
