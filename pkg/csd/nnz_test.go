package csd

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestEncodeNNZ(t *testing.T) {
	tests := []struct {
		value float64
		nnz   int
		want  string
	}{
		{28.5, 4, "+00-00.+"},
		{-0.5, 4, "0.-"},
		{0.0, 4, "0"},
		{0.5, 4, "0.+"},
		{3.14159, 2, "+0-"},
		{3.14159, 3, "+0-.00+"},
	}

	for _, tt := range tests {
		got, err := EncodeNNZ(tt.value, tt.nnz)
		if err != nil {
			t.Fatalf("EncodeNNZ(%v, %d) returned error: %v", tt.value, tt.nnz, err)
		}
		if got != tt.want {
			t.Fatalf("EncodeNNZ(%v, %d) = %q, want %q", tt.value, tt.nnz, got, tt.want)
		}
	}
}

func TestEncodeIntNNZ(t *testing.T) {
	tests := []struct {
		value int32
		nnz   int
		want  string
	}{
		{28, 4, "+00-00"},
		{0, 4, "0"},
		{37, 2, "+00+00"},
		{158, 2, "+0+00000"},
		{158, 8, "+0+000-0"},
	}

	for _, tt := range tests {
		got, err := EncodeIntNNZ(tt.value, tt.nnz)
		if err != nil {
			t.Fatalf("EncodeIntNNZ(%d, %d) returned error: %v", tt.value, tt.nnz, err)
		}
		if got != tt.want {
			t.Fatalf("EncodeIntNNZ(%d, %d) = %q, want %q", tt.value, tt.nnz, got, tt.want)
		}
	}
}

func TestNNZBudgetRespected(t *testing.T) {
	countNonZero := func(s string) int {
		return strings.Count(s, "+") + strings.Count(s, "-")
	}

	for nnz := 0; nnz <= 6; nnz++ {
		for i := -200; i <= 200; i++ {
			v := float64(i) * 0.379
			s, err := EncodeNNZ(v, nnz)
			if err != nil {
				t.Fatalf("EncodeNNZ(%v, %d) returned error: %v", v, nnz, err)
			}
			if got := countNonZero(s); got > nnz {
				t.Fatalf("EncodeNNZ(%v, %d) = %q uses %d non-zero digits", v, nnz, s, got)
			}

			si, err := EncodeIntNNZ(int32(i*7), nnz)
			if err != nil {
				t.Fatalf("EncodeIntNNZ(%d, %d) returned error: %v", i*7, nnz, err)
			}
			if got := countNonZero(si); got > nnz {
				t.Fatalf("EncodeIntNNZ(%d, %d) = %q uses %d non-zero digits", i*7, nnz, si, got)
			}
		}
	}
}

func TestNNZApproximationImproves(t *testing.T) {
	// A larger budget never yields a worse approximation.
	value := 57.382
	prev := math.Inf(1)
	for nnz := 0; nnz <= 8; nnz++ {
		s, err := EncodeNNZ(value, nnz)
		if err != nil {
			t.Fatalf("EncodeNNZ(%v, %d) returned error: %v", value, nnz, err)
		}
		diff := math.Abs(Decode(s) - value)
		if diff > prev {
			t.Fatalf("error grew from %v to %v at nnz=%d (%q)", prev, diff, nnz, s)
		}
		prev = diff
	}
}

func TestNNZInvalidInput(t *testing.T) {
	if _, err := EncodeNNZ(1.5, -1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("EncodeNNZ(1.5, -1) error = %v, want ErrInvalidInput", err)
	}
	if _, err := EncodeNNZ(math.NaN(), 4); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("EncodeNNZ(NaN, 4) error = %v, want ErrInvalidInput", err)
	}
	if _, err := EncodeIntNNZ(5, -2); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("EncodeIntNNZ(5, -2) error = %v, want ErrInvalidInput", err)
	}
}
