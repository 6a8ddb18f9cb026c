package semver

import (
	"errors"
	"strings"
	"testing"
)

func TestParseSolcVersion(t *testing.T) {
	tests := []struct {
		input string
		want  SolcVersion
	}{
		{"0.8.29", SolcVersion{0, 8, 29}},
		{"0.7.6", SolcVersion{0, 7, 6}},
		{"1.0.0", SolcVersion{1, 0, 0}},
		{"0.8.255", SolcVersion{0, 8, 255}},
		{"  0.8.28\n", SolcVersion{0, 8, 28}},
		{"00.08.010", SolcVersion{0, 8, 10}},
		{"0.8.+29", SolcVersion{0, 8, 29}},
		{"0. 8 .29", SolcVersion{0, 8, 29}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSolcVersion(tt.input)
			if err != nil {
				t.Fatalf("ParseSolcVersion(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseSolcVersion(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSolcVersion_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"two parts", "1.2"},
		{"four parts", "1.2.3.4"},
		{"empty", ""},
		{"non-numeric", "0.8.x"},
		{"v prefix", "v0.8.29"},
		{"build metadata", "0.8.29+commit.ab55807c"},
		{"empty component", "0..29"},
		{"negative", "0.-1.2"},
		{"minor overflow", "0.256.0"},
		{"patch overflow", "0.8.300"},
		{"too long", "0.8." + strings.Repeat("1", maxVersionLength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSolcVersion(tt.input)
			if err == nil {
				t.Fatalf("ParseSolcVersion(%q) expected error, got nil", tt.input)
			}
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("expected ErrInvalidFormat, got %v", err)
			}
		})
	}
}

func TestParseSolcVersion_ErrorContainsInput(t *testing.T) {
	_, err := ParseSolcVersion("1.2")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "1.2") {
		t.Errorf("error %q does not mention the input", err)
	}
}

func TestClean(t *testing.T) {
	tests := map[string]string{
		"0.8.29":                 "0.8.29",
		"0.8.29+commit.ab55807c": "0.8.29",
		"v0.8.20":                "0.8.20",
		"^0.8.0":                 "0.8.0",
		"=0.8.19":                "0.8.19",
		"  0.8.1 \n":             "0.8.1",
	}

	for input, want := range tests {
		if got := Clean(input); got != want {
			t.Errorf("Clean(%q) = %q, want %q", input, got, want)
		}
	}
}
