package field

import (
	"fmt"
	"strings"

	"gitlab.com/d21d3q/emvbits/internal/bit"
)

// Numeric reads bits high..low of a single byte as an unsigned integer.
type Numeric struct {
	label      string
	byteNumber int
	high, low  int
}

var _ Field = Numeric{}

// NewNumeric validates the range: 8 >= high >= low >= 1.
func NewNumeric(label string, byteNumber, high, low int) (Numeric, error) {
	if strings.TrimSpace(label) == "" {
		return Numeric{}, ErrEmptyLabel
	}
	if _, err := bit.New(byteNumber, high, true); err != nil {
		return Numeric{}, err
	}
	if _, err := bit.New(byteNumber, low, true); err != nil {
		return Numeric{}, err
	}
	if high < low {
		return Numeric{}, fmt.Errorf("%w: high bit %d below low bit %d", ErrInvalidRange, high, low)
	}
	return Numeric{label: label, byteNumber: byteNumber, high: high, low: low}, nil
}

// MustNumeric is NewNumeric for static tables.
func MustNumeric(label string, byteNumber, high, low int) Numeric {
	f, err := NewNumeric(label, byteNumber, high, low)
	if err != nil {
		panic(err)
	}
	return f
}

func (f Numeric) Label() string { return f.label }

func (f Numeric) mask() byte {
	width := f.high - f.low + 1
	return byte((1<<width)-1) << (f.low - 1)
}

// ValueIn renders "label = n"; absent when buf is too short.
func (f Numeric) ValueIn(buf []byte) (string, bool) {
	idx := f.byteNumber - 1
	if idx >= len(buf) {
		return "", false
	}
	n := (buf[idx] & f.mask()) >> (f.low - 1)
	return fmt.Sprintf("%s = %d", f.label, n), true
}

func (f Numeric) PositionIn(buf []byte) string {
	position := fmt.Sprintf("Byte %d Bits %d-%d", f.byteNumber, f.high, f.low)
	if f.high == f.low {
		position = fmt.Sprintf("Byte %d Bit %d", f.byteNumber, f.high)
	}
	if buf == nil {
		return position
	}
	mask := make([]byte, len(buf))
	if idx := f.byteNumber - 1; idx < len(mask) {
		mask[idx] = f.mask()
	}
	return fmt.Sprintf("%s (%s)", bit.HexOf(mask), position)
}

func (f Numeric) StartBytesOffset() int { return f.byteNumber - 1 }
func (f Numeric) LengthInBytes() int    { return 1 }
