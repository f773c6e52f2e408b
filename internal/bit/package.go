package bit

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInconsistentPackage = errors.New("inconsistent bit package")
	ErrMalformedHex        = errors.New("malformed hex")
)

// Package is an ordered set of bits with expected values. Order only affects
// rendering.
type Package struct {
	bits []Bit
}

// SetOf builds a package keeping the supplied order. Repeating a bit with the
// same value is harmless; repeating it with the opposite value is an error.
func SetOf(bits ...Bit) (Package, error) {
	seen := make(map[[2]int]bool, len(bits))
	out := make([]Bit, 0, len(bits))
	for _, b := range bits {
		if _, err := New(b.ByteNumber, b.BitNumber, b.Set); err != nil {
			return Package{}, err
		}
		key := [2]int{b.ByteNumber, b.BitNumber}
		if set, ok := seen[key]; ok {
			if set != b.Set {
				return Package{}, fmt.Errorf("%w: %s conflicts with %s", ErrInconsistentPackage, b.Describe(), Bit{b.ByteNumber, b.BitNumber, set}.Describe())
			}
			continue
		}
		seen[key] = b.Set
		out = append(out, b)
	}
	return Package{bits: out}, nil
}

// MustSetOf is SetOf for static tables; it panics on invalid input.
func MustSetOf(bits ...Bit) Package {
	p, err := SetOf(bits...)
	if err != nil {
		panic(err)
	}
	return p
}

// FromHex decodes an even-length hex string without separators.
func FromHex(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd number of digits (%d)", ErrMalformedHex, len(s))
	}
	decoded := make([]byte, len(s)/2)
	if _, err := hex.Decode(decoded, []byte(s)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHex, err)
	}
	return decoded, nil
}

// HexOf renders buf as uppercase hex.
func HexOf(buf []byte) string {
	return strings.ToUpper(hex.EncodeToString(buf))
}

// Bits returns a copy of the package contents in insertion order.
func (p Package) Bits() []Bit {
	out := make([]Bit, len(p.bits))
	copy(out, p.bits)
	return out
}

func (p Package) Len() int {
	return len(p.bits)
}

// MinByte returns the lowest byte number referenced, or 0 for an empty package.
func (p Package) MinByte() int {
	lowest := 0
	for _, b := range p.bits {
		if lowest == 0 || b.ByteNumber < lowest {
			lowest = b.ByteNumber
		}
	}
	return lowest
}

// MaxByte returns the highest byte number referenced, or 0 for an empty package.
func (p Package) MaxByte() int {
	highest := 0
	for _, b := range p.bits {
		if b.ByteNumber > highest {
			highest = b.ByteNumber
		}
	}
	return highest
}

// Matches reports whether every bit in the package holds its expected value
// in buf. A buffer too short to hold any of the bits never matches.
func (p Package) Matches(buf []byte) bool {
	for _, b := range p.bits {
		v, ok := b.In(buf)
		if !ok || v != b.Set {
			return false
		}
	}
	return true
}

// Mask returns a buffer as long as buf with only the package's expected-set
// bits raised. Bits expected to be clear do not appear.
func (p Package) Mask(buf []byte) []byte {
	out := make([]byte, len(buf))
	raise(out, p.bits)
	return out
}
