package dictionary

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"

	"gitlab.com/d21d3q/emvbits/internal/bit"
	"gitlab.com/d21d3q/emvbits/internal/field"
)

func sampleEntry(tag, label string) Entry {
	f := field.MustEnumerated(bit.MustSetOf(bit.MustNew(1, 8, true)), label)
	return Entry{Tag: tag, Name: label, Length: 1, Decoder: field.NewDecoder(f)}
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()
	r.Register(sampleEntry("9f 6c", "ctq"))
	e, err := r.Lookup("9F6C")
	require.NoError(t, err)
	require.Equal(t, "9F6C", e.Tag)

	_, err = r.Lookup("DF01")
	require.True(t, errors.Is(err, ErrUnknownTag))
}

func TestOverlayFallsBack(t *testing.T) {
	base := NewRegistry()
	base.Register(sampleEntry("95", "base"))
	base.Register(sampleEntry("9B", "base"))
	over := Overlay(base)
	over.Register(sampleEntry("95", "override"))

	e, err := over.Lookup("95")
	require.NoError(t, err)
	require.Equal(t, "override", e.Name)

	e, err = over.Lookup("9b")
	require.NoError(t, err)
	require.Equal(t, "base", e.Name)

	require.Equal(t, []string{"95", "9B"}, over.Tags())
	e, err = base.Lookup("95")
	require.NoError(t, err)
	require.Equal(t, "base", e.Name)
}

const ctqDictionary = `
[[tag]]
tag = "9f6c"
name = "Card Transaction Qualifiers"
length = 2

[[tag.field]]
label = "Online PIN Required"
bits = [{ byte = 1, bit = 8, set = true }]

[[tag.field]]
label = "Signature and no CVM"
bits = [{ byte = 1, bit = 7, set = true }, { byte = 1, bit = 6, set = false }]

[[tag.field]]
kind = "numeric"
label = "Reason"
byte = 2
high = 3
low = 1
`

func TestParse(t *testing.T) {
	entries, err := Parse([]byte(ctqDictionary))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	e := entries[0]
	require.Equal(t, "9F6C", e.Tag)
	require.Equal(t, "Card Transaction Qualifiers", e.Name)
	require.Equal(t, 2, e.Length)

	decoded := e.Decoder.Decode([]byte{0xC0, 0x05})
	require.Equal(t, []field.Decoded{
		{Value: "Online PIN Required", Position: "8000 (Byte 1 Bit 8)", StartOffset: 0, Length: 1},
		{Value: "Signature and no CVM", Position: "4000 (Byte 1 Bit 7 = 1, Byte 1 Bit 6 = 0)", StartOffset: 0, Length: 1},
		{Value: "Reason = 5", Position: "0007 (Byte 2 Bits 3-1)", StartOffset: 1, Length: 1},
	}, decoded)
}

const brokenDictionary = `
[[tag]]
tag = "ZZ"

[[tag]]
tag = "9F27"
length = 1

[[tag.field]]
label = "bad bit"
bits = [{ byte = 1, bit = 9, set = true }]

[[tag.field]]
label = "conflict"
bits = [{ byte = 1, bit = 8, set = true }, { byte = 1, bit = 8, set = false }]

[[tag.field]]
label = "too far"
bits = [{ byte = 2, bit = 1, set = true }]

[[tag.field]]
kind = "bogus"
label = "kind"
`

func TestParseAggregatesErrors(t *testing.T) {
	_, err := Parse([]byte(brokenDictionary))
	require.Error(t, err)
	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	require.Len(t, merr.Errors, 2)
	require.True(t, errors.Is(err, bit.ErrInvalidLocator))
	require.True(t, errors.Is(err, bit.ErrInconsistentPackage))
	require.Contains(t, err.Error(), "too far")
	require.Contains(t, err.Error(), "unknown field kind")
}

func TestLoadInto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ctq.toml")
	require.NoError(t, os.WriteFile(path, []byte(ctqDictionary), 0o600))
	r := NewRegistry()
	require.NoError(t, LoadInto(r, path))
	_, err := r.Lookup("9F6C")
	require.NoError(t, err)

	require.Error(t, LoadInto(r, filepath.Join(t.TempDir(), "missing.toml")))
}
