package util

import (
	"reflect"
	"testing"
)

func TestParseEnvList(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b ", []string{"a", "b"}},
		{"a,,b", []string{"a", "b"}},
		{",,", []string{}},
		{"dup,dup", []string{"dup", "dup"}},
	}

	for _, tt := range tests {
		got := ParseEnvList(tt.input)
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseEnvList(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestGetEnvWithDefault(t *testing.T) {
	t.Setenv("UTIL_TEST_KEY", "value")
	if got := GetEnvWithDefault("UTIL_TEST_KEY", "fallback"); got != "value" {
		t.Errorf("Expected 'value', got %q", got)
	}

	t.Setenv("UTIL_TEST_KEY", "")
	if got := GetEnvWithDefault("UTIL_TEST_KEY", "fallback"); got != "fallback" {
		t.Errorf("Expected 'fallback', got %q", got)
	}
}

func TestParseFloatOrDefault(t *testing.T) {
	tests := []struct {
		input string
		def   float64
		want  float64
	}{
		{"", 0.7, 0.7},
		{"0.2", 0.7, 0.2},
		{"1", 0.7, 1},
		{"hot", 0.7, 0.7},
	}

	for _, tt := range tests {
		if got := ParseFloatOrDefault(tt.input, tt.def); got != tt.want {
			t.Errorf("ParseFloatOrDefault(%q, %v) = %v, want %v", tt.input, tt.def, got, tt.want)
		}
	}
}

func TestParseIntOrDefault(t *testing.T) {
	tests := []struct {
		input string
		def   int
		want  int
	}{
		{"", 1000, 1000},
		{"50", 1000, 50},
		{"-1", 1000, -1},
		{"lots", 1000, 1000},
		{"3.5", 1000, 1000},
	}

	for _, tt := range tests {
		if got := ParseIntOrDefault(tt.input, tt.def); got != tt.want {
			t.Errorf("ParseIntOrDefault(%q, %d) = %d, want %d", tt.input, tt.def, got, tt.want)
		}
	}
}

func TestTruncateString(t *testing.T) {
	if got := TruncateString("abcdefghij", 2, 2, "..."); got != "ab...ij" {
		t.Errorf("Unexpected truncation: %q", got)
	}
	if got := TruncateString("abc", 2, 2, "..."); got != "abc" {
		t.Errorf("Short strings must pass through, got %q", got)
	}
}

func TestMarshalRoundtrip(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	data, err := MarshalJSON(payload{Name: "x", Count: 2})
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}

	var decoded payload
	if err := UnmarshalJSON(data, &decoded); err != nil {
		t.Fatalf("UnmarshalJSON failed: %v", err)
	}
	if decoded.Name != "x" || decoded.Count != 2 {
		t.Errorf("Roundtrip mismatch: %+v", decoded)
	}
}
