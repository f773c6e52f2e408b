package field

// Decoded is one field value found in a buffer.
type Decoded struct {
	Value       string `json:"value"`
	Position    string `json:"position"`
	StartOffset int    `json:"start_offset"`
	Length      int    `json:"length"`
}

// Decoder applies an ordered list of fields to a buffer.
type Decoder struct {
	fields []Field
}

func NewDecoder(fields ...Field) Decoder {
	out := make([]Field, len(fields))
	copy(out, fields)
	return Decoder{fields: out}
}

// Fields returns a copy of the decoder's fields.
func (d Decoder) Fields() []Field {
	out := make([]Field, len(d.fields))
	copy(out, d.fields)
	return out
}

// Decode returns, in field order, every field that yields a value in buf.
func (d Decoder) Decode(buf []byte) []Decoded {
	decoded := make([]Decoded, 0, len(d.fields))
	for _, f := range d.fields {
		value, ok := f.ValueIn(buf)
		if !ok {
			continue
		}
		decoded = append(decoded, Decoded{
			Value:       value,
			Position:    f.PositionIn(buf),
			StartOffset: f.StartBytesOffset(),
			Length:      f.LengthInBytes(),
		})
	}
	return decoded
}
