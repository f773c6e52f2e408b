package tlv

import (
	"errors"
	"fmt"
	"strings"

	"gitlab.com/d21d3q/emvbits/internal/bit"
)

// ErrTruncated is returned when a tag or length runs past the end of input.
var ErrTruncated = errors.New("tlv truncated")

// TLV is one BER-TLV data object. Constructed objects carry their parsed
// children; Value always holds the raw value bytes.
type TLV struct {
	Tag      []byte
	Value    []byte
	Children []TLV
}

// Constructed reports whether bit 6 of the first tag byte is set.
func (t TLV) Constructed() bool {
	return len(t.Tag) > 0 && t.Tag[0]&0x20 != 0
}

func (t TLV) TagHex() string   { return bit.HexOf(t.Tag) }
func (t TLV) ValueHex() string { return bit.HexOf(t.Value) }

// Parse reads a list of data objects, descending into constructed ones. A
// constructed value that does not itself parse is kept as a primitive.
func Parse(data []byte) ([]TLV, error) {
	return parseList(data, true)
}

// ParsePrimitive reads a list without descending into constructed values.
func ParsePrimitive(data []byte) ([]TLV, error) {
	return parseList(data, false)
}

func parseList(data []byte, nested bool) ([]TLV, error) {
	var list []TLV
	cursor := 0
	for cursor < len(data) {
		// Single zero bytes between objects are padding (EMV SU 69).
		if data[cursor] == 0x00 {
			cursor++
			continue
		}
		tag, n, err := parseTag(data[cursor:])
		if err != nil {
			return nil, err
		}
		cursor += n
		length, n, err := parseLength(data[cursor:])
		if err != nil {
			return nil, fmt.Errorf("tag %s: %w", bit.HexOf(tag), err)
		}
		cursor += n
		end := cursor + length
		if end > len(data) {
			end = len(data)
		}
		obj := TLV{Tag: tag, Value: data[cursor:end]}
		cursor = end
		if nested && obj.Constructed() {
			if children, err := parseList(obj.Value, true); err == nil {
				obj.Children = children
			}
		}
		list = append(list, obj)
	}
	return list, nil
}

func parseTag(data []byte) ([]byte, int, error) {
	if len(data) == 0 {
		return nil, 0, fmt.Errorf("%w: missing tag", ErrTruncated)
	}
	n := 1
	if data[0]&0x1F == 0x1F {
		for {
			if n >= len(data) {
				return nil, 0, fmt.Errorf("%w: multi-byte tag %s", ErrTruncated, bit.HexOf(data))
			}
			more := data[n]&0x80 != 0
			n++
			if !more {
				break
			}
		}
	}
	return data[:n], n, nil
}

func parseLength(data []byte) (int, int, error) {
	if len(data) == 0 {
		return 0, 0, fmt.Errorf("%w: missing length", ErrTruncated)
	}
	first := data[0]
	if first&0x80 == 0 {
		return int(first), 1, nil
	}
	count := int(first & 0x7F)
	if count > 4 {
		return 0, 0, fmt.Errorf("length uses %d bytes", count)
	}
	if 1+count > len(data) {
		return 0, 0, fmt.Errorf("%w: long-form length needs %d bytes", ErrTruncated, count)
	}
	length := 0
	for _, b := range data[1 : 1+count] {
		length = length<<8 | int(b)
	}
	if length < 0 {
		return 0, 0, fmt.Errorf("length overflow")
	}
	return length, 1 + count, nil
}

// Find returns the first object with the given tag, searching depth first.
func Find(list []TLV, tagHex string) (TLV, bool) {
	tagHex = strings.ToUpper(tagHex)
	for _, t := range list {
		if t.TagHex() == tagHex {
			return t, true
		}
		if found, ok := Find(t.Children, tagHex); ok {
			return found, true
		}
	}
	return TLV{}, false
}
