// Package tvr registers the Terminal Verification Results (tag 95) layout
// from EMV Book 3 Annex C5.
package tvr

import (
	"gitlab.com/d21d3q/emvbits/internal/bit"
	"gitlab.com/d21d3q/emvbits/internal/dictionary"
	"gitlab.com/d21d3q/emvbits/internal/field"
)

const (
	Tag    = "95"
	Name   = "Terminal Verification Results"
	Length = 5
)

var labels = []struct {
	byteNumber, bitNumber int
	label                 string
}{
	{1, 8, "Offline data authentication was not performed"},
	{1, 7, "SDA failed"},
	{1, 6, "ICC data missing"},
	{1, 5, "Card appears on terminal exception file"},
	{1, 4, "DDA failed"},
	{1, 3, "CDA failed"},
	{1, 2, "SDA selected"},

	{2, 8, "ICC and terminal have different application versions"},
	{2, 7, "Expired application"},
	{2, 6, "Application not yet effective"},
	{2, 5, "Requested service not allowed for card product"},
	{2, 4, "New card"},

	{3, 8, "Cardholder verification was not successful"},
	{3, 7, "Unrecognised CVM"},
	{3, 6, "PIN Try Limit exceeded"},
	{3, 5, "PIN entry required and PIN pad not present or not working"},
	{3, 4, "PIN entry required, PIN pad present, but PIN was not entered"},
	{3, 3, "Online PIN entered"},

	{4, 8, "Transaction exceeds floor limit"},
	{4, 7, "Lower consecutive offline limit exceeded"},
	{4, 6, "Upper consecutive offline limit exceeded"},
	{4, 5, "Transaction selected randomly for online processing"},
	{4, 4, "Merchant forced transaction online"},

	{5, 8, "Default TDOL used"},
	{5, 7, "Issuer authentication failed"},
	{5, 6, "Script processing failed before final GENERATE AC"},
	{5, 5, "Script processing failed after final GENERATE AC"},
}

func init() {
	dictionary.Register(Entry())
}

// Entry builds the dictionary entry for tag 95.
func Entry() dictionary.Entry {
	fields := make([]field.Field, 0, len(labels))
	for _, l := range labels {
		pkg := bit.MustSetOf(bit.MustNew(l.byteNumber, l.bitNumber, true))
		fields = append(fields, field.MustEnumerated(pkg, l.label))
	}
	return dictionary.Entry{
		Tag:     Tag,
		Name:    Name,
		Length:  Length,
		Decoder: field.NewDecoder(fields...),
	}
}
