package model

import (
	"encoding/json"
	"testing"
)

type decimalText string

func (d decimalText) String() string { return string(d) }

func TestNumberJSON(t *testing.T) {
	testCases := []struct {
		name string
		in   interface{}
		want string
	}{
		{"int", 12, "12"},
		{"int32", int32(-4), "-4"},
		{"int64", int64(1 << 40), "1099511627776"},
		{"whole float", 3.0, "3"},
		{"fractional float", 2.5, "2.5"},
		{"decimal string", "10.000", "10"},
		{"fractional string", "0.125", "0.125"},
		{"json number", json.Number("42"), "42"},
		{"decimal128 text", decimalText("1.5E+1"), "15"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n, ok := ParseNumber(tc.in)
			if !ok {
				t.Fatalf("ParseNumber(%v) failed", tc.in)
			}
			data, err := json.Marshal(n)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(data) != tc.want {
				t.Errorf("expected %s, got %s", tc.want, data)
			}
		})
	}
}

func TestParseNumberRejects(t *testing.T) {
	for _, in := range []interface{}{"abc", decimalText("NaN"), true, nil, []int{1}} {
		if _, ok := ParseNumber(in); ok {
			t.Errorf("expected %v to be rejected", in)
		}
	}
}

func TestZeroNumber(t *testing.T) {
	var n Number
	if !n.IsInt() || n.String() != "0" {
		t.Errorf("zero value should render as 0, got %s", n)
	}
}

func TestNumberDecodesItsOwnOutput(t *testing.T) {
	in := QuestionResponse{QuestionText: "Q", QuestionID: NewInt(7)}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out QuestionResponse
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal %s: %v", data, err)
	}
	if out.QuestionID.String() != "7" {
		t.Errorf("expected question id 7, got %s", out.QuestionID)
	}

	for _, raw := range []string{"2.5", "-3", "1e2"} {
		var n Number
		if err := json.Unmarshal([]byte(raw), &n); err != nil {
			t.Errorf("%s: %v", raw, err)
			continue
		}
		want, _ := parseDecimal(raw)
		if n.String() != want.String() {
			t.Errorf("%s: expected %s, got %s", raw, want, n)
		}
	}

	var n Number
	if err := json.Unmarshal([]byte("null"), &n); err != nil || n.String() != "0" {
		t.Errorf("null should decode to zero, got %s (%v)", n, err)
	}
	if err := json.Unmarshal([]byte(`"abc"`), &n); err == nil {
		t.Error("expected an error for a non-numeric value")
	}
}
