package bit

import (
	"errors"
	"testing"
)

func TestNewRejectsOutOfRange(t *testing.T) {
	cases := []struct {
		byteNumber, bitNumber int
	}{
		{0, 1},
		{1, 0},
		{1, 9},
		{-3, 4},
	}
	for _, tc := range cases {
		if _, err := New(tc.byteNumber, tc.bitNumber, true); !errors.Is(err, ErrInvalidLocator) {
			t.Fatalf("New(%d, %d): expected ErrInvalidLocator, got %v", tc.byteNumber, tc.bitNumber, err)
		}
	}
}

func TestDescribe(t *testing.T) {
	b := MustNew(3, 8, true)
	if got := b.Describe(); got != "Byte 3 Bit 8 = 1" {
		t.Fatalf("unexpected describe: %s", got)
	}
	if got := MustNew(3, 7, false).String(); got != "Byte 3 Bit 7 = 0" {
		t.Fatalf("unexpected string: %s", got)
	}
	if got := b.Label(false); got != "Byte 3 Bit 8" {
		t.Fatalf("unexpected label: %s", got)
	}
}

func TestMaskUsesMSBAsBitEight(t *testing.T) {
	if m := MustNew(1, 8, true).Mask(); m != 0x80 {
		t.Fatalf("bit 8 mask 0x%02X", m)
	}
	if m := MustNew(1, 1, true).Mask(); m != 0x01 {
		t.Fatalf("bit 1 mask 0x%02X", m)
	}
}

func TestIn(t *testing.T) {
	buf := []byte{0x00, 0x20}
	v, ok := MustNew(2, 6, true).In(buf)
	if !ok || !v {
		t.Fatalf("expected bit 6 of byte 2 set, got %v %v", v, ok)
	}
	if _, ok := MustNew(3, 1, true).In(buf); ok {
		t.Fatalf("byte 3 should be out of range")
	}
}

func TestCompare(t *testing.T) {
	bits := []Bit{
		MustNew(2, 1, true),
		MustNew(1, 1, false),
		MustNew(1, 8, true),
		MustNew(1, 8, false),
	}
	Sort(bits)
	want := []Bit{
		MustNew(1, 8, false),
		MustNew(1, 8, true),
		MustNew(1, 1, false),
		MustNew(2, 1, true),
	}
	for i := range want {
		if bits[i] != want[i] {
			t.Fatalf("position %d: got %s want %s", i, bits[i], want[i])
		}
	}
}

func TestDecompose(t *testing.T) {
	bits := Decompose([]byte{0x81}, 3)
	if len(bits) != 8 {
		t.Fatalf("expected 8 bits, got %d", len(bits))
	}
	if bits[0] != MustNew(3, 8, true) {
		t.Fatalf("unexpected first bit %s", bits[0])
	}
	if bits[1] != MustNew(3, 7, false) {
		t.Fatalf("unexpected second bit %s", bits[1])
	}
	if bits[7] != MustNew(3, 1, true) {
		t.Fatalf("unexpected last bit %s", bits[7])
	}
}

func TestSetLabels(t *testing.T) {
	if got := SetLabels([]byte{0x80, 0x01}); got != "Byte 1 Bit 8,Byte 2 Bit 1" {
		t.Fatalf("unexpected labels: %s", got)
	}
	if got := SetLabels([]byte{0x00}); got != "" {
		t.Fatalf("expected no labels, got %q", got)
	}
}

func TestToHex(t *testing.T) {
	bits := []Bit{MustNew(2, 8, true), MustNew(2, 6, true), MustNew(2, 7, false), MustNew(4, 1, true)}
	if got := ToHex(bits, 3); got != "00A000" {
		t.Fatalf("unexpected hex: %s", got)
	}
}
