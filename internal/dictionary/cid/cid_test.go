package cid

import (
	"testing"

	"gitlab.com/d21d3q/emvbits/internal/dictionary"
)

func TestRegistered(t *testing.T) {
	e, err := dictionary.Lookup("9f27")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if e.Name != Name {
		t.Fatalf("unexpected name %s", e.Name)
	}
}

func TestDecodeARQCWithAdvice(t *testing.T) {
	decoded := Entry().Decoder.Decode([]byte{0x8A})
	want := []string{"ARQC", "Advice required", "PIN Try Limit exceeded"}
	if len(decoded) != len(want) {
		t.Fatalf("expected %d values, got %+v", len(want), decoded)
	}
	for i, v := range want {
		if decoded[i].Value != v {
			t.Fatalf("entry %d: got %s want %s", i, decoded[i].Value, v)
		}
	}
	if decoded[0].Position != "80 (Byte 1 Bit 8 = 1, Byte 1 Bit 7 = 0)" {
		t.Fatalf("unexpected ARQC position %s", decoded[0].Position)
	}
	if decoded[1].Position != "08 (Byte 1 Bit 4)" {
		t.Fatalf("unexpected advice position %s", decoded[1].Position)
	}
}

func TestDecodeAAC(t *testing.T) {
	decoded := Entry().Decoder.Decode([]byte{0x00})
	if len(decoded) != 2 || decoded[0].Value != "AAC" || decoded[1].Value != "No information given" {
		t.Fatalf("unexpected values %+v", decoded)
	}
	if decoded[0].Position != "00 (Byte 1 Bit 8 = 0, Byte 1 Bit 7 = 0)" {
		t.Fatalf("unexpected AAC position %s", decoded[0].Position)
	}
}
