package emvbits

import (
	"gitlab.com/d21d3q/emvbits/internal/bit"
	"gitlab.com/d21d3q/emvbits/internal/field"
)

// Building blocks for callers that define their own fields.
type (
	Bit             = bit.Bit
	Package         = bit.Package
	Field           = field.Field
	EnumeratedField = field.Enumerated
	NumericField    = field.Numeric
	Decoder         = field.Decoder
	Decoded         = field.Decoded
)

var (
	ErrInvalidLocator      = bit.ErrInvalidLocator
	ErrInconsistentPackage = bit.ErrInconsistentPackage
	ErrMalformedHex        = bit.ErrMalformedHex
	ErrEmptyLabel          = field.ErrEmptyLabel
	ErrEmptyPackage        = field.ErrEmptyPackage
	ErrInvalidRange        = field.ErrInvalidRange
)

// NewBit addresses bit bitNumber (8 = MSB) of byte byteNumber, both 1-based.
func NewBit(byteNumber, bitNumber int, set bool) (Bit, error) {
	return bit.New(byteNumber, bitNumber, set)
}

func SetOf(bits ...Bit) (Package, error) {
	return bit.SetOf(bits...)
}

// FromHex parses a strict, separator-free hex string.
func FromHex(s string) ([]byte, error) {
	return bit.FromHex(s)
}

func HexOf(buf []byte) string {
	return bit.HexOf(buf)
}

// SetLabels lists the raised bits of buf as "Byte 1 Bit 8,Byte 2 Bit 1".
func SetLabels(buf []byte) string {
	return bit.SetLabels(buf)
}

func NewEnumeratedField(pkg Package, label string) (EnumeratedField, error) {
	return field.NewEnumerated(pkg, label)
}

func NewNumericField(label string, byteNumber, high, low int) (NumericField, error) {
	return field.NewNumeric(label, byteNumber, high, low)
}

func NewDecoder(fields ...Field) Decoder {
	return field.NewDecoder(fields...)
}
