package entity

// ValueKind discriminates the shapes a record field can take after
// generation and corruption.
type ValueKind int

const (
	// KindAbsent marks a field that holds no value; it renders as an
	// empty CSV cell
	KindAbsent ValueKind = iota
	// KindText marks a string field
	KindText
	// KindNumber marks a numeric field
	KindNumber
)

// Value is one record field. Fields start out as text or numbers and stay
// that way unless corruption nullifies them or flips their type, so every
// consumer has to check the kind before reading.
type Value struct {
	kind ValueKind
	text string
	num  float64
}

// AbsentValue returns a field holding nothing
func AbsentValue() Value {
	return Value{kind: KindAbsent}
}

// TextValue returns a text field
func TextValue(s string) Value {
	return Value{kind: KindText, text: s}
}

// NumberValue returns a numeric field
func NumberValue(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Kind returns the field's current shape
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsAbsent reports whether the field holds nothing
func (v Value) IsAbsent() bool {
	return v.kind == KindAbsent
}

// IsText reports whether the field holds a string
func (v Value) IsText() bool {
	return v.kind == KindText
}

// IsNumber reports whether the field holds a number
func (v Value) IsNumber() bool {
	return v.kind == KindNumber
}

// Text returns the string content and whether the field is text
func (v Value) Text() (string, bool) {
	return v.text, v.kind == KindText
}

// Number returns the numeric content and whether the field is a number
func (v Value) Number() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// Render returns the field as it appears in an emitted CSV cell: absent
// fields become the empty string, numbers use the canonical plain format.
func (v Value) Render() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumber:
		return FormatNumber(v.num)
	default:
		return ""
	}
}

// IsBlank reports whether the field would render as an empty cell, which
// covers both absent fields and empty text.
func (v Value) IsBlank() bool {
	return v.kind == KindAbsent || (v.kind == KindText && v.text == "")
}
