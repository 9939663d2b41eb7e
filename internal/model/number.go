package model

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
)

// Number is a numeric store value kept at its exact decimal precision.
// It renders as a JSON integer when it has no fractional part and as a
// float otherwise. The zero value is 0.
type Number struct {
	rat *big.Rat
}

// NewInt returns a Number holding i
func NewInt(i int64) Number {
	return Number{rat: new(big.Rat).SetInt64(i)}
}

// ParseNumber converts a decoded store value into a Number. It accepts Go
// integer and float types, decimal strings, and any fmt.Stringer whose text
// is a decimal (json.Number, Mongo Decimal128).
func ParseNumber(v interface{}) (Number, bool) {
	switch n := v.(type) {
	case int:
		return NewInt(int64(n)), true
	case int32:
		return NewInt(int64(n)), true
	case int64:
		return NewInt(n), true
	case float32:
		return fromFloat(float64(n))
	case float64:
		return fromFloat(n)
	case string:
		return parseDecimal(n)
	case fmt.Stringer:
		return parseDecimal(n.String())
	}
	return Number{}, false
}

func fromFloat(f float64) (Number, bool) {
	r := new(big.Rat)
	if r.SetFloat64(f) == nil {
		return Number{}, false
	}
	return Number{rat: r}, true
}

func parseDecimal(s string) (Number, bool) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Number{}, false
	}
	return Number{rat: r}, true
}

// IsInt reports whether the value has no fractional part
func (n Number) IsInt() bool {
	return n.rat == nil || n.rat.IsInt()
}

// String renders the integer form or the shortest float form
func (n Number) String() string {
	if n.rat == nil {
		return "0"
	}
	if n.rat.IsInt() {
		return n.rat.Num().String()
	}
	f, _ := n.rat.Float64()
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// MarshalJSON implements json.Marshaler
func (n Number) MarshalJSON() ([]byte, error) {
	if n.IsInt() {
		return []byte(n.String()), nil
	}
	f, _ := n.rat.Float64()
	return json.Marshal(f)
}

// UnmarshalJSON implements json.Unmarshaler. null leaves the zero value.
func (n *Number) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*n = Number{}
		return nil
	}
	parsed, ok := parseDecimal(s)
	if !ok {
		return fmt.Errorf("invalid number %s", s)
	}
	*n = parsed
	return nil
}
