package emvbits

import (
	"context"

	internalopts "gitlab.com/d21d3q/emvbits/internal/options"
)

// DecodeOptions configures decoding.
type DecodeOptions struct {
	// DictionaryPath points to a TOML dictionary layered over the built-in
	// ones.
	DictionaryPath string
}

func (opts DecodeOptions) toInternal(ctx context.Context) (context.Context, error) {
	reg, err := internalopts.LoadRegistry(opts.DictionaryPath)
	if err != nil {
		return ctx, err
	}
	return internalopts.WithRegistry(ctx, reg), nil
}
