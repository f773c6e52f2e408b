package options

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"

	"gitlab.com/d21d3q/emvbits/internal/dictionary"
)

type contextKey struct{}

// WithRegistry stores the dictionary registry used for lookups.
func WithRegistry(ctx context.Context, r *dictionary.Registry) context.Context {
	if r == nil {
		return ctx
	}
	return context.WithValue(ctx, contextKey{}, r)
}

// Registry retrieves the registry from context, falling back to the default.
func Registry(ctx context.Context) *dictionary.Registry {
	if v := ctx.Value(contextKey{}); v != nil {
		if r, ok := v.(*dictionary.Registry); ok {
			return r
		}
	}
	return dictionary.Default()
}

// ParseTag validates an EMV tag written in hex, e.g. "9f27".
func ParseTag(input string) (string, error) {
	clean := strings.ToUpper(stripWhitespace(input))
	if clean == "" {
		return "", fmt.Errorf("tag must not be empty")
	}
	if len(clean)%2 != 0 {
		return "", fmt.Errorf("tag must contain an even number of hex digits, got %d", len(clean))
	}
	if _, err := hex.DecodeString(clean); err != nil {
		return "", fmt.Errorf("invalid tag hex: %w", err)
	}
	return clean, nil
}

// LoadRegistry overlays the dictionary at path on top of the default registry.
// An empty path returns the default registry itself.
func LoadRegistry(path string) (*dictionary.Registry, error) {
	if strings.TrimSpace(path) == "" {
		return dictionary.Default(), nil
	}
	r := dictionary.Overlay(dictionary.Default())
	if err := dictionary.LoadInto(r, path); err != nil {
		return nil, err
	}
	return r, nil
}

func stripWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
