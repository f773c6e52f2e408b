package emvbits

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"gitlab.com/d21d3q/emvbits/internal/bit"
	"gitlab.com/d21d3q/emvbits/internal/dictionary"
	_ "gitlab.com/d21d3q/emvbits/internal/dictionary/cid" // register dictionary
	_ "gitlab.com/d21d3q/emvbits/internal/dictionary/tsi" // register dictionary
	_ "gitlab.com/d21d3q/emvbits/internal/dictionary/tvr" // register dictionary
	"gitlab.com/d21d3q/emvbits/internal/field"
	"gitlab.com/d21d3q/emvbits/internal/options"
	"gitlab.com/d21d3q/emvbits/internal/tlv"
)

// Result captures the decoded value of one tag.
type Result struct {
	Tag       string
	Name      string
	RawHex    string
	ByteCount int
	Fields    []field.Decoded
}

// String renders a human-readable representation of the result.
func (r Result) String() string {
	summary := map[string]any{
		"tag":        r.Tag,
		"name":       r.Name,
		"byte_count": r.ByteCount,
		"raw_hex":    r.RawHex,
	}
	if len(r.Fields) > 0 {
		summary["fields"] = r.Fields
	}
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Sprintf("tag: %s bytes:%d raw:%s (marshal error: %v)", r.Tag, r.ByteCount, r.RawHex, err)
	}
	return string(data)
}

// DecodeHex decodes the value of tag given as hex using the built-in
// dictionaries.
func DecodeHex(ctx context.Context, tag, raw string) (Result, error) {
	return DecodeHexWithOptions(ctx, tag, raw, DecodeOptions{})
}

// DecodeHexWithOptions decodes the value of tag with custom options. A tag
// missing from the dictionaries yields a result named "unknown".
func DecodeHexWithOptions(ctx context.Context, tag, raw string, opts DecodeOptions) (Result, error) {
	ctx, err := opts.toInternal(ctx)
	if err != nil {
		return Result{}, err
	}
	normalized, err := options.ParseTag(tag)
	if err != nil {
		return Result{}, err
	}
	data, err := decodeHex(raw)
	if err != nil {
		return Result{}, err
	}
	return decodeValue(ctx, normalized, data)
}

// DecodeTLV parses a BER-TLV list and decodes every primitive object whose
// tag has a dictionary entry, in input order.
func DecodeTLV(ctx context.Context, raw string, opts DecodeOptions) ([]Result, error) {
	ctx, err := opts.toInternal(ctx)
	if err != nil {
		return nil, err
	}
	data, err := decodeHex(raw)
	if err != nil {
		return nil, err
	}
	list, err := tlv.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse tlv: %w", err)
	}
	var results []Result
	var walk func([]tlv.TLV) error
	walk = func(objs []tlv.TLV) error {
		for _, obj := range objs {
			if len(obj.Children) > 0 {
				if err := walk(obj.Children); err != nil {
					return err
				}
				continue
			}
			result, err := decodeValue(ctx, obj.TagHex(), obj.Value)
			if err != nil {
				return err
			}
			if result.Name == unknownName {
				continue
			}
			results = append(results, result)
		}
		return nil
	}
	if err := walk(list); err != nil {
		return nil, err
	}
	return results, nil
}

const unknownName = "unknown"

func decodeValue(ctx context.Context, tag string, data []byte) (Result, error) {
	result := Result{
		Tag:       tag,
		Name:      unknownName,
		RawHex:    bit.HexOf(data),
		ByteCount: len(data),
	}
	entry, err := options.Registry(ctx).Lookup(tag)
	if err != nil {
		if errors.Is(err, dictionary.ErrUnknownTag) {
			return result, nil
		}
		return result, err
	}
	result.Name = entry.Name
	result.Fields = entry.Decoder.Decode(data)
	return result, nil
}

func decodeHex(input string) ([]byte, error) {
	clean := strings.ToUpper(stripWhitespace(input))
	clean = strings.TrimPrefix(clean, "0X")
	data, err := bit.FromHex(clean)
	if err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return data, nil
}

func stripWhitespace(s string) string {
	builder := strings.Builder{}
	builder.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '|' || r == '_' {
			continue
		}
		builder.WriteRune(r)
	}
	return builder.String()
}
