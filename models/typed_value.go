package models

import (
	"strconv"
	"strings"
	"time"
)

// ValueKind discriminates the variants of a TypedValue
type ValueKind string

const (
	KindText   ValueKind = "text"
	KindNumber ValueKind = "number"
	KindDate   ValueKind = "date"
	KindBool   ValueKind = "bool"
	KindChoice ValueKind = "choice"
)

// dateLayouts are the accepted date/time renderings of a cell or stored value.
// Order matters: the first matching layout wins.
var dateLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01-02-06",
	"1/2/2006 15:04:05",
	"1/2/2006",
	"Jan 2, 2006",
}

// ParseDate reports whether s renders a date/time value under one of the
// accepted layouts, and the parsed time when it does.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// TypedValue is a tagged union over the value kinds a custom field can hold.
// Values live as typed variants everywhere except the storage column, which
// stays text; StorageText and ParseTypedValue are the boundary.
type TypedValue struct {
	Kind   ValueKind
	Text   string
	Number float64
	Date   time.Time
	Bool   bool
	Choice string
}

// ParseTypedValue coerces a raw cell or request value into the variant
// matching the field's declared type. Coercion is best-effort: input that
// does not parse under the declared type degrades to the text variant with
// the raw string unchanged, never an error.
func ParseTypedValue(fieldType FieldType, raw string) TypedValue {
	switch fieldType {
	case FieldTypeNumber:
		if n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			return TypedValue{Kind: KindNumber, Number: n}
		}
	case FieldTypeDate:
		if t, ok := ParseDate(raw); ok {
			return TypedValue{Kind: KindDate, Date: t}
		}
	case FieldTypeCheckbox:
		if b, err := strconv.ParseBool(strings.TrimSpace(strings.ToLower(raw))); err == nil {
			return TypedValue{Kind: KindBool, Bool: b}
		}
	case FieldTypeDropdown:
		return TypedValue{Kind: KindChoice, Choice: raw}
	}
	return TypedValue{Kind: KindText, Text: raw}
}

// StorageText serializes the variant to the text storage column.
// Numbers render without trailing zeros, dates as ISO calendar dates.
func (v TypedValue) StorageText() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case KindDate:
		return v.Date.Format("2006-01-02")
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindChoice:
		return v.Choice
	default:
		return v.Text
	}
}

// ConvertLegacyValue normalizes a value stored by the always-text scheme into
// the canonical storage text for the field's declared type. Unparseable input
// is preserved verbatim.
func ConvertLegacyValue(fieldType FieldType, stored string) string {
	return ParseTypedValue(fieldType, stored).StorageText()
}
