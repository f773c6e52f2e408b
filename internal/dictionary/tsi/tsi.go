package tsi

import (
	"gitlab.com/d21d3q/emvbits/internal/bit"
	"gitlab.com/d21d3q/emvbits/internal/dictionary"
	"gitlab.com/d21d3q/emvbits/internal/field"
)

const (
	Tag    = "9B"
	Name   = "Transaction Status Information"
	Length = 2
)

func init() {
	dictionary.Register(Entry())
}

func performed(bitNumber int, label string) field.Field {
	return field.MustEnumerated(bit.MustSetOf(bit.MustNew(1, bitNumber, true)), label)
}

// Entry builds the dictionary entry for tag 9B. Byte 2 is RFU.
func Entry() dictionary.Entry {
	return dictionary.Entry{
		Tag:    Tag,
		Name:   Name,
		Length: Length,
		Decoder: field.NewDecoder(
			performed(8, "Offline data authentication was performed"),
			performed(7, "Cardholder verification was performed"),
			performed(6, "Card risk management was performed"),
			performed(5, "Issuer authentication was performed"),
			performed(4, "Terminal risk management was performed"),
			performed(3, "Script processing was performed"),
		),
	}
}
