package emvbits

// FieldSet offers lookups on top of the decoded field list.
type FieldSet struct {
	fields []Decoded
}

// FieldSet returns a FieldSet wrapper for the result's fields.
func (r Result) FieldSet() FieldSet {
	return FieldSet{fields: r.Fields}
}

// List exposes the underlying slice for callers that still need raw access.
func (fs FieldSet) List() []Decoded {
	return fs.fields
}

// Values returns the decoded values in field order.
func (fs FieldSet) Values() []string {
	values := make([]string, len(fs.fields))
	for i, f := range fs.fields {
		values[i] = f.Value
	}
	return values
}

// Has reports whether value was decoded.
func (fs FieldSet) Has(value string) bool {
	_, ok := fs.Position(value)
	return ok
}

// Position returns where value was found.
func (fs FieldSet) Position(value string) (string, bool) {
	for _, f := range fs.fields {
		if f.Value == value {
			return f.Position, true
		}
	}
	return "", false
}

// InByte returns the values whose bits start at the zero-based byte offset.
func (fs FieldSet) InByte(offset int) []string {
	var values []string
	for _, f := range fs.fields {
		if f.StartOffset == offset {
			values = append(values, f.Value)
		}
	}
	return values
}
