package bit

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidLocator is returned when a byte or bit number is out of range.
var ErrInvalidLocator = errors.New("invalid bit locator")

// Bit addresses a single bit of an EMV byte string together with the value
// it is expected to hold. Bytes are numbered left to right and bits right to
// left, both starting at 1, so bit 8 is the most significant.
type Bit struct {
	ByteNumber int
	BitNumber  int
	Set        bool
}

// New validates and returns a locator.
func New(byteNumber, bitNumber int, set bool) (Bit, error) {
	if byteNumber < 1 {
		return Bit{}, fmt.Errorf("%w: byte %d must be >= 1", ErrInvalidLocator, byteNumber)
	}
	if bitNumber < 1 || bitNumber > 8 {
		return Bit{}, fmt.Errorf("%w: bit %d must be within 1..8", ErrInvalidLocator, bitNumber)
	}
	return Bit{ByteNumber: byteNumber, BitNumber: bitNumber, Set: set}, nil
}

// MustNew is New for static tables; it panics on invalid input.
func MustNew(byteNumber, bitNumber int, set bool) Bit {
	b, err := New(byteNumber, bitNumber, set)
	if err != nil {
		panic(err)
	}
	return b
}

// Value renders the expected value as "1" or "0".
func (b Bit) Value() string {
	if b.Set {
		return "1"
	}
	return "0"
}

// Describe renders the locator as "Byte 3 Bit 8 = 1".
func (b Bit) Describe() string {
	return b.Label(true)
}

func (b Bit) String() string {
	return b.Describe()
}

// Label renders the position, optionally followed by the expected value.
func (b Bit) Label(withValue bool) string {
	if withValue {
		return fmt.Sprintf("Byte %d Bit %d = %s", b.ByteNumber, b.BitNumber, b.Value())
	}
	return fmt.Sprintf("Byte %d Bit %d", b.ByteNumber, b.BitNumber)
}

// Mask returns the byte with only this bit raised.
func (b Bit) Mask() byte {
	return 1 << (b.BitNumber - 1)
}

// In reads the addressed bit from buf. The second result is false when buf
// does not reach the addressed byte.
func (b Bit) In(buf []byte) (bool, bool) {
	idx := b.ByteNumber - 1
	if idx < 0 || idx >= len(buf) {
		return false, false
	}
	return buf[idx]&b.Mask() != 0, true
}

// Compare orders by byte ascending, then bit descending, then unset before set.
func Compare(a, b Bit) int {
	switch {
	case a.ByteNumber != b.ByteNumber:
		if a.ByteNumber < b.ByteNumber {
			return -1
		}
		return 1
	case a.BitNumber != b.BitNumber:
		if a.BitNumber > b.BitNumber {
			return -1
		}
		return 1
	case a.Set != b.Set:
		if !a.Set {
			return -1
		}
		return 1
	}
	return 0
}

// Sort orders bits in place using Compare.
func Sort(bits []Bit) {
	sort.SliceStable(bits, func(i, j int) bool { return Compare(bits[i], bits[j]) < 0 })
}

// Decompose returns every bit of data with its actual value, numbering the
// first byte as firstByteNumber.
func Decompose(data []byte, firstByteNumber int) []Bit {
	bits := make([]Bit, 0, len(data)*8)
	for i, by := range data {
		for n := 8; n >= 1; n-- {
			bits = append(bits, Bit{
				ByteNumber: i + firstByteNumber,
				BitNumber:  n,
				Set:        by&(1<<(n-1)) != 0,
			})
		}
	}
	return bits
}

// SetLabels lists the raised bits of data as "Byte 1 Bit 8,Byte 2 Bit 1".
func SetLabels(data []byte) string {
	var labels []string
	for _, b := range Decompose(data, 1) {
		if b.Set {
			labels = append(labels, b.Label(false))
		}
	}
	return strings.Join(labels, ",")
}

// ToHex raises the set bits of bits in a zeroed buffer of length bytes and
// renders it. Bits past the buffer are ignored.
func ToHex(bits []Bit, length int) string {
	buf := make([]byte, length)
	raise(buf, bits)
	return HexOf(buf)
}

func raise(buf []byte, bits []Bit) {
	for _, b := range bits {
		idx := b.ByteNumber - 1
		if !b.Set || idx < 0 || idx >= len(buf) {
			continue
		}
		buf[idx] |= b.Mask()
	}
}
