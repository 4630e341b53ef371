package table

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// Kind discriminates the variants of a coerced cell value.
type Kind int

const (
	KindNull Kind = iota
	KindInteger
	KindDecimal
	KindText
)

// Value is a coerced cell value: an integer, a decimal number, free text, or
// null. The zero value is null. Values marshal to the corresponding JSON
// number, string, or null.
type Value struct {
	Kind Kind
	Int  int64
	Dec  float64
	Text string
}

func NullValue() Value         { return Value{} }
func IntValue(n int64) Value   { return Value{Kind: KindInteger, Int: n} }
func DecValue(f float64) Value { return Value{Kind: KindDecimal, Dec: f} }
func TextValue(s string) Value { return Value{Kind: KindText, Text: s} }

// numberPattern matches optionally signed integers and decimals, nothing else.
// Strings like "1,200" or "2." stay text.
var numberPattern = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)

// Coerce cleans a source string and converts it to a typed value: an integer
// or decimal when it matches the number pattern, null when empty after
// cleaning, and the cleaned text otherwise.
func Coerce(s string) Value {
	s = Clean(s)
	if s == "" {
		return NullValue()
	}
	if numberPattern.MatchString(s) {
		if strings.Contains(s, ".") {
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return DecValue(f)
			}
		} else if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return IntValue(n)
		}
		// Out-of-range numbers fall through as text.
	}
	return TextValue(s)
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindInteger:
		return strconv.AppendInt(nil, v.Int, 10), nil
	case KindDecimal:
		return strconv.AppendFloat(nil, v.Dec, 'f', -1, 64), nil
	case KindText:
		return json.Marshal(v.Text)
	default:
		return []byte("null"), nil
	}
}

var spaceRuns = regexp.MustCompile(`\s+`)

// Clean converts non-breaking spaces to regular spaces, collapses whitespace
// runs to a single space, and trims.
func Clean(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.TrimSpace(spaceRuns.ReplaceAllString(s, " "))
}
