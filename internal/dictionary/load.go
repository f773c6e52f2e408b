package dictionary

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"

	"gitlab.com/d21d3q/emvbits/internal/bit"
	"gitlab.com/d21d3q/emvbits/internal/field"
)

const (
	kindEnumerated = "enumerated"
	kindNumeric    = "numeric"
)

type fileDef struct {
	Tags []tagDef `toml:"tag"`
}

type tagDef struct {
	Tag    string     `toml:"tag"`
	Name   string     `toml:"name"`
	Length int        `toml:"length"`
	Fields []fieldDef `toml:"field"`
}

type fieldDef struct {
	Kind  string   `toml:"kind"`
	Label string   `toml:"label"`
	Bits  []bitDef `toml:"bits"`
	Byte  int      `toml:"byte"`
	High  int      `toml:"high"`
	Low   int      `toml:"low"`
}

type bitDef struct {
	Byte int  `toml:"byte"`
	Bit  int  `toml:"bit"`
	Set  bool `toml:"set"`
}

// LoadFile reads a TOML dictionary from path.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}
	entries, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("dictionary %s: %w", path, err)
	}
	return entries, nil
}

// LoadInto reads path and registers every entry in r.
func LoadInto(r *Registry, path string) error {
	entries, err := LoadFile(path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		r.Register(e)
		logrus.WithFields(logrus.Fields{
			"tag":    e.Tag,
			"name":   e.Name,
			"fields": len(e.Decoder.Fields()),
			"path":   path,
		}).Debug("registered dictionary entry")
	}
	return nil
}

// Parse decodes a TOML dictionary. All invalid tags and fields are reported
// together.
func Parse(data []byte) ([]Entry, error) {
	var def fileDef
	if err := toml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}
	var merr *multierror.Error
	entries := make([]Entry, 0, len(def.Tags))
	for i, td := range def.Tags {
		entry, err := td.build()
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("tag #%d (%s): %w", i+1, td.Tag, err))
			continue
		}
		entries = append(entries, entry)
	}
	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return entries, nil
}

func (td tagDef) build() (Entry, error) {
	tag := NormalizeTag(td.Tag)
	if tag == "" {
		return Entry{}, fmt.Errorf("missing tag")
	}
	if _, err := hex.DecodeString(tag); err != nil {
		return Entry{}, fmt.Errorf("tag %q is not hex: %w", td.Tag, err)
	}
	var merr *multierror.Error
	fields := make([]field.Field, 0, len(td.Fields))
	for i, fd := range td.Fields {
		f, err := fd.build()
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("field #%d (%s): %w", i+1, fd.Label, err))
			continue
		}
		if td.Length > 0 && f.StartBytesOffset()+f.LengthInBytes() > td.Length {
			merr = multierror.Append(merr, fmt.Errorf("field #%d (%s): exceeds tag length %d", i+1, fd.Label, td.Length))
			continue
		}
		fields = append(fields, f)
	}
	if err := merr.ErrorOrNil(); err != nil {
		return Entry{}, err
	}
	return Entry{
		Tag:     tag,
		Name:    td.Name,
		Length:  td.Length,
		Decoder: field.NewDecoder(fields...),
	}, nil
}

func (fd fieldDef) build() (field.Field, error) {
	switch fd.Kind {
	case "", kindEnumerated:
		bits := make([]bit.Bit, 0, len(fd.Bits))
		for _, bd := range fd.Bits {
			b, err := bit.New(bd.Byte, bd.Bit, bd.Set)
			if err != nil {
				return nil, err
			}
			bits = append(bits, b)
		}
		pkg, err := bit.SetOf(bits...)
		if err != nil {
			return nil, err
		}
		return field.NewEnumerated(pkg, fd.Label)
	case kindNumeric:
		return field.NewNumeric(fd.Label, fd.Byte, fd.High, fd.Low)
	default:
		return nil, fmt.Errorf("unknown field kind %q", fd.Kind)
	}
}
