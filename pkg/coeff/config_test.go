package coeff

import (
	"os"
	"path/filepath"
	"testing"
)

const samplePlan = `
[multiplier]
width = 8

[[coefficient]]
name = "b0"
value = 28.5
places = 2

[[coefficient]]
name = "b1"
value = 3.14159
nnz = 3
`

func writePlan(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write plan: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	plan, err := Load(writePlan(t, samplePlan))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if plan.Multiplier.Width != 8 {
		t.Fatalf("Width = %d, want 8", plan.Multiplier.Width)
	}
	if len(plan.Coefficients) != 2 {
		t.Fatalf("len(Coefficients) = %d, want 2", len(plan.Coefficients))
	}

	b0, err := plan.Coefficients[0].Encode()
	if err != nil {
		t.Fatalf("b0.Encode() returned error: %v", err)
	}
	if b0 != "+00-00.+0" {
		t.Fatalf("b0.Encode() = %q, want %q", b0, "+00-00.+0")
	}

	b1, err := plan.Coefficients[1].Encode()
	if err != nil {
		t.Fatalf("b1.Encode() returned error: %v", err)
	}
	if b1 != "+0-.00+" {
		t.Fatalf("b1.Encode() = %q, want %q", b1, "+0-.00+")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("Load of missing file succeeded")
	}
}

func TestValidateErrors(t *testing.T) {
	intp := func(v int) *int { return &v }

	tests := []struct {
		name string
		plan Plan
	}{
		{
			name: "width too small",
			plan: Plan{
				Multiplier:   Multiplier{Width: 1},
				Coefficients: []*Coefficient{{Name: "a", Value: 1, Places: intp(2)}},
			},
		},
		{
			name: "no coefficients",
			plan: Plan{Multiplier: Multiplier{Width: 8}},
		},
		{
			name: "unnamed coefficient",
			plan: Plan{
				Multiplier:   Multiplier{Width: 8},
				Coefficients: []*Coefficient{{Value: 1, Places: intp(2)}},
			},
		},
		{
			name: "duplicate names",
			plan: Plan{
				Multiplier: Multiplier{Width: 8},
				Coefficients: []*Coefficient{
					{Name: "a", Value: 1, Places: intp(2)},
					{Name: "a", Value: 2, Places: intp(2)},
				},
			},
		},
		{
			name: "neither mode",
			plan: Plan{
				Multiplier:   Multiplier{Width: 8},
				Coefficients: []*Coefficient{{Name: "a", Value: 1}},
			},
		},
		{
			name: "both modes",
			plan: Plan{
				Multiplier:   Multiplier{Width: 8},
				Coefficients: []*Coefficient{{Name: "a", Value: 1, Places: intp(2), NNZ: intp(3)}},
			},
		},
		{
			name: "negative places",
			plan: Plan{
				Multiplier:   Multiplier{Width: 8},
				Coefficients: []*Coefficient{{Name: "a", Value: 1, Places: intp(-1)}},
			},
		},
		{
			name: "negative nnz",
			plan: Plan{
				Multiplier:   Multiplier{Width: 8},
				Coefficients: []*Coefficient{{Name: "a", Value: 1, NNZ: intp(-1)}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.plan.Validate(); err == nil {
				t.Fatal("Validate() = nil, want error")
			}
		})
	}
}
