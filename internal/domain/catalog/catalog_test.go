package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"etc_takeoffs/internal/domain/entities"
)

func TestDefault(t *testing.T) {
	c := Default()

	t.Run("is valid", func(t *testing.T) {
		if err := c.Validate(); err != nil {
			t.Fatalf("expected default catalog to be valid, got %v", err)
		}
	})

	t.Run("sections keep their order", func(t *testing.T) {
		want := []string{"trailblazers", "type_iii", "sign_stands"}
		if len(c.Sections) != len(want) {
			t.Fatalf("expected %d sections, got %d", len(want), len(c.Sections))
		}
		for i, k := range want {
			if c.Sections[i].Key != k {
				t.Fatalf("section %d: expected %s, got %s", i, k, c.Sections[i].Key)
			}
		}
	})

	t.Run("sandbag weights", func(t *testing.T) {
		cases := map[string]int{
			"6FT RIGHT":           12,
			"4FT LEFT":            10,
			"10FT H-STAND":        6,
			"6FT WING BARRICADE":  4,
			"8FT POST (COMPLETE)": 0,
			"Loose":               0,
			"unknown":             0,
		}
		for structure, want := range cases {
			if got := c.Sandbags(structure); got != want {
				t.Fatalf("%s: expected %d, got %d", structure, want, got)
			}
		}
	})

	t.Run("labels and units", func(t *testing.T) {
		if got := c.SectionLabel("type_iii"); got != "Type IIIs" {
			t.Fatalf("unexpected label %q", got)
		}
		if got := c.SectionLabel("custom"); got != "custom" {
			t.Fatalf("expected key fallback, got %q", got)
		}
		if got := c.PermItemUnit("0941-0011"); got != entities.UnitEach {
			t.Fatalf("expected EA, got %s", got)
		}
		if got := c.PermItemUnit("9999-0000"); got != entities.UnitSquareFeet {
			t.Fatalf("expected SF fallback, got %s", got)
		}
		if key, ok := c.SectionKeyByLabel("Sign Stands"); !ok || key != "sign_stands" {
			t.Fatalf("unexpected reverse lookup %q %v", key, ok)
		}
		if !c.HasStructure("type_iii", "6FT RIGHT") || c.HasStructure("sign_stands", "6FT RIGHT") {
			t.Fatalf("structure membership mismatch")
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("branch catalog from yaml", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "catalog.yaml")
		body := `
sections:
  - key: barrels
    label: Drums
    structures: [Drum, Loose]
sandbags_per_structure:
  Drum: 1
perm_items:
  - item_number: "0941-0001"
    label: Type B Post Mount
    unit: SF
`
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}

		c, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.SectionLabel("barrels") != "Drums" {
			t.Fatalf("unexpected label %q", c.SectionLabel("barrels"))
		}
		if c.Sandbags("Drum") != 1 {
			t.Fatalf("expected 1 sandbag, got %d", c.Sandbags("Drum"))
		}
		if c.PermSignMaterial != entities.SignMaterialAluminum {
			t.Fatalf("expected aluminum default, got %s", c.PermSignMaterial)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("rejects empty catalog", func(t *testing.T) {
		_, err := Parse([]byte("perm_items: []\n"))
		if !errors.Is(err, ErrEmptyCatalog) {
			t.Fatalf("expected ErrEmptyCatalog, got %v", err)
		}
	})

	t.Run("rejects duplicate sections", func(t *testing.T) {
		_, err := Parse([]byte("sections:\n  - key: a\n  - key: a\n"))
		if !errors.Is(err, ErrDuplicateSection) {
			t.Fatalf("expected ErrDuplicateSection, got %v", err)
		}
	})

	t.Run("rejects empty keys", func(t *testing.T) {
		_, err := Parse([]byte("sections:\n  - label: Type IIIs\n"))
		if !errors.Is(err, ErrEmptySectionKey) || errors.Is(err, ErrDuplicateSection) {
			t.Fatalf("expected ErrEmptySectionKey, got %v", err)
		}
		_, err = Parse([]byte("sections:\n  - key: a\nperm_items:\n  - label: Posts\n    unit: EA\n"))
		if !errors.Is(err, ErrEmptyItemNumber) || errors.Is(err, ErrDuplicateItem) {
			t.Fatalf("expected ErrEmptyItemNumber, got %v", err)
		}
	})

	t.Run("rejects bad unit", func(t *testing.T) {
		_, err := Parse([]byte("sections:\n  - key: a\nperm_items:\n  - item_number: x\n    unit: LF\n"))
		if !errors.Is(err, ErrInvalidUnit) {
			t.Fatalf("expected ErrInvalidUnit, got %v", err)
		}
	})
}
