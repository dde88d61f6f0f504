package gmode_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/probelab/gmode/gmode"
)

const recipeText = `
noise_tolerance = 3.0
workers = 2
condensed = true

[[filters]]
kind = "harmonic_pass"
fundamental_hz = 8
band_width_hz = 2
harmonics = 2

[[filters]]
kind = "low_pass"
cutoff_hz = 100
`

func writeRecipe(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recipe.toml")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadRecipe(t *testing.T) {
	r, err := gmode.LoadRecipe(writeRecipe(t, recipeText))
	if err != nil {
		t.Fatalf("LoadRecipe: %v", err)
	}

	if r.NoiseTolerance != 3 || r.Workers != 2 || !r.Condensed {
		t.Errorf("recipe = %+v", r)
	}
	if len(r.Filters) != 2 {
		t.Fatalf("filters = %d, want 2", len(r.Filters))
	}
	if r.Filters[0].Kind != "harmonic_pass" || r.Filters[0].Harmonics != 2 {
		t.Errorf("first filter = %+v", r.Filters[0])
	}
}

func TestLoadRecipeRejections(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"no filters", "noise_tolerance = 1.0\n"},
		{"negative tolerance", "noise_tolerance = -1.0\n[[filters]]\nkind = \"low_pass\"\ncutoff_hz = 1.0\n"},
		{"negative workers", "workers = -2\n[[filters]]\nkind = \"low_pass\"\ncutoff_hz = 1.0\n"},
		{"bad toml", "noise_tolerance = [\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := gmode.LoadRecipe(writeRecipe(t, tc.text)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestRecipeBuild(t *testing.T) {
	r, err := gmode.LoadRecipe(writeRecipe(t, recipeText))
	if err != nil {
		t.Fatalf("LoadRecipe: %v", err)
	}

	filters, err := r.Build(1024, 1024)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(filters) != 2 {
		t.Fatalf("built %d filters, want 2", len(filters))
	}
	if filters[0].Name() != "harmonic_pass" || filters[1].Name() != "low_pass" {
		t.Errorf("filter names = %s, %s", filters[0].Name(), filters[1].Name())
	}
}

func TestRecipeBuildUnknownKind(t *testing.T) {
	r := gmode.Recipe{Filters: []gmode.FilterSpec{{Kind: "notch"}}}
	if _, err := r.Build(100, 1000); err == nil {
		t.Error("unknown kind should fail")
	}
}
