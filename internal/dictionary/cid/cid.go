// Package cid registers the Cryptogram Information Data (tag 9F27) layout.
// Bits 8-7 select the cryptogram type, bit 4 requests advice and bits 3-1
// carry the reason code.
package cid

import (
	"gitlab.com/d21d3q/emvbits/internal/bit"
	"gitlab.com/d21d3q/emvbits/internal/dictionary"
	"gitlab.com/d21d3q/emvbits/internal/field"
)

const (
	Tag    = "9F27"
	Name   = "Cryptogram Information Data"
	Length = 1
)

func init() {
	dictionary.Register(Entry())
}

func pattern(label string, bits ...bit.Bit) field.Field {
	return field.MustEnumerated(bit.MustSetOf(bits...), label)
}

func b(bitNumber int, set bool) bit.Bit {
	return bit.MustNew(1, bitNumber, set)
}

// Entry builds the dictionary entry for tag 9F27.
func Entry() dictionary.Entry {
	return dictionary.Entry{
		Tag:    Tag,
		Name:   Name,
		Length: Length,
		Decoder: field.NewDecoder(
			pattern("AAC", b(8, false), b(7, false)),
			pattern("TC", b(8, false), b(7, true)),
			pattern("ARQC", b(8, true), b(7, false)),
			pattern("Advice required", b(4, true)),
			pattern("No information given", b(3, false), b(2, false), b(1, false)),
			pattern("Service not allowed", b(3, false), b(2, false), b(1, true)),
			pattern("PIN Try Limit exceeded", b(3, false), b(2, true), b(1, false)),
			pattern("Issuer authentication failed", b(3, false), b(2, true), b(1, true)),
		),
	}
}
