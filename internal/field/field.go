package field

import (
	"errors"
	"fmt"
	"strings"

	"gitlab.com/d21d3q/emvbits/internal/bit"
)

var (
	ErrEmptyLabel   = errors.New("field label must not be empty")
	ErrEmptyPackage = errors.New("field needs at least one bit")
	ErrInvalidRange = errors.New("invalid bit range")
)

// Field is a named piece of a bit string. A nil buffer passed to PositionIn
// means no buffer is available.
type Field interface {
	ValueIn(buf []byte) (string, bool)
	PositionIn(buf []byte) string
	StartBytesOffset() int
	LengthInBytes() int
}

// Enumerated recognises a label when a fixed pattern of bits is present.
type Enumerated struct {
	pkg   bit.Package
	label string
}

var _ Field = Enumerated{}

// NewEnumerated binds label to pkg.
func NewEnumerated(pkg bit.Package, label string) (Enumerated, error) {
	if strings.TrimSpace(label) == "" {
		return Enumerated{}, ErrEmptyLabel
	}
	if pkg.Len() == 0 {
		return Enumerated{}, fmt.Errorf("%w: %q", ErrEmptyPackage, label)
	}
	return Enumerated{pkg: pkg, label: label}, nil
}

// MustEnumerated is NewEnumerated for static tables.
func MustEnumerated(pkg bit.Package, label string) Enumerated {
	f, err := NewEnumerated(pkg, label)
	if err != nil {
		panic(err)
	}
	return f
}

func (f Enumerated) Label() string        { return f.label }
func (f Enumerated) Package() bit.Package { return f.pkg }

// ValueIn returns the label when buf carries the pattern.
func (f Enumerated) ValueIn(buf []byte) (string, bool) {
	if !f.pkg.Matches(buf) {
		return "", false
	}
	return f.label, true
}

// PositionIn lists the bits of the field. Given a buffer, the list is
// prefixed with the hex mask of the set bits and single-bit fields drop the
// "= v" suffix.
func (f Enumerated) PositionIn(buf []byte) string {
	bits := f.pkg.Bits()
	if buf == nil {
		return joinLabels(bits, true)
	}
	withValue := len(bits) > 1
	return fmt.Sprintf("%s (%s)", bit.HexOf(f.pkg.Mask(buf)), joinLabels(bits, withValue))
}

func (f Enumerated) StartBytesOffset() int {
	return f.pkg.MinByte() - 1
}

func (f Enumerated) LengthInBytes() int {
	return f.pkg.MaxByte() - f.pkg.MinByte() + 1
}

func joinLabels(bits []bit.Bit, withValue bool) string {
	labels := make([]string, len(bits))
	for i, b := range bits {
		labels[i] = b.Label(withValue)
	}
	return strings.Join(labels, ", ")
}
