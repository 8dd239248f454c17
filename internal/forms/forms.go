// Package forms defines the input fields of the plot pages and their
// validation rules. Data arrives as pasted text (newline or comma
// separated); the validators guarantee the plotting and outlier code
// only ever sees well-formed numbers within length bounds.
package forms

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	splitPattern    = regexp.MustCompile(`[\s,]+`)
	hexColorPattern = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)
)

// Split tokenizes a pasted data string on commas and/or whitespace,
// dropping empty tokens from repeated or trailing separators.
func Split(s string) []string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	parts := splitPattern.Split(trimmed, -1)
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			items = append(items, p)
		}
	}
	return items
}

// ParseFloats splits a data string and parses every token as a float.
func ParseFloats(s string) ([]float64, error) {
	items := Split(s)
	values := make([]float64, 0, len(items))
	for _, item := range items {
		v, err := strconv.ParseFloat(item, 64)
		if err != nil {
			return nil, fmt.Errorf("not a number: %q", item)
		}
		values = append(values, v)
	}
	return values, nil
}

// Field is a single form field: its submitted value, the default it
// resets to, and any validation errors to display beside it.
type Field struct {
	Label   string
	Value   string
	Default string
	Errors  []string
}

// Reset restores the field to its default value and clears errors.
func (f *Field) Reset() {
	f.Value = f.Default
	f.Errors = nil
}

// Valid reports whether the field accumulated no errors.
func (f *Field) Valid() bool {
	return len(f.Errors) == 0
}

func (f *Field) fail(msg string) {
	f.Errors = append(f.Errors, msg)
}

// Validator checks one field value and returns a message on failure.
type Validator func(value string) string

// Check runs validators in order, recording every failure message.
func (f *Field) Check(validators ...Validator) {
	for _, v := range validators {
		if msg := v(f.Value); msg != "" {
			f.fail(msg)
		}
	}
}

// Required fails on empty or whitespace-only values.
func Required(msg string) Validator {
	return func(value string) string {
		if strings.TrimSpace(value) == "" {
			return msg
		}
		return ""
	}
}

// MaxLength fails when the raw string exceeds max characters.
func MaxLength(max int, msg string) Validator {
	return func(value string) string {
		if len(value) > max {
			return msg
		}
		return ""
	}
}

// DataLength fails when the tokenized data point count is outside
// [min, max]. A max of -1 means unbounded.
func DataLength(min, max int, msg string) Validator {
	return func(value string) string {
		length := len(Split(value))
		if length < min || (max != -1 && length > max) {
			return msg
		}
		return ""
	}
}

// DataFloat fails when any tokenized data point is not a number.
// Empty data is left to Required/DataLength.
func DataFloat(msg string) Validator {
	return func(value string) string {
		if _, err := ParseFloats(value); err != nil {
			return msg
		}
		return ""
	}
}

// HexColor fails on anything but an HTML hex color like #4C72B0 or #FFF.
func HexColor(msg string) Validator {
	return func(value string) string {
		if !hexColorPattern.MatchString(value) {
			return msg
		}
		return ""
	}
}

// checkEqualLength records an error on field when its data point count
// differs from other's. Used for paired X/Y inputs.
func checkEqualLength(field, other *Field, otherName string) {
	if len(Split(field.Value)) != len(Split(other.Value)) {
		field.fail(fmt.Sprintf("Data must be the same length as the %s field", otherName))
	}
}
