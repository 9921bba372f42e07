// Package catalog holds the structure, sandbag and permanent-sign item tables
// used to aggregate and validate takeoff rows. A branch can ship its own
// catalog file; Default is used otherwise.
package catalog

import (
	"errors"
	"fmt"
	"os"

	"etc_takeoffs/internal/domain/entities"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyCatalog     = errors.New("catalog has no sections")
	ErrEmptySectionKey  = errors.New("section key is required")
	ErrDuplicateSection = errors.New("duplicate section key")
	ErrEmptyItemNumber  = errors.New("permanent sign item number is required")
	ErrDuplicateItem    = errors.New("duplicate permanent sign item number")
	ErrInvalidUnit      = errors.New("invalid unit")
	ErrInvalidMaterial  = errors.New("invalid permanent sign material")
)

// Section is one group of MPT structures (Type IIIs, sign stands...).
type Section struct {
	Key        string   `yaml:"key" json:"key"`
	Label      string   `yaml:"label" json:"label"`
	Structures []string `yaml:"structures" json:"structures"`
}

// PermItem is a contract item number for permanent signs.
type PermItem struct {
	ItemNumber string        `yaml:"item_number" json:"item_number"`
	Label      string        `yaml:"label" json:"label"`
	Unit       entities.Unit `yaml:"unit" json:"unit"`
}

type Catalog struct {
	Sections             []Section             `yaml:"sections" json:"sections"`
	SandbagsPerStructure map[string]int        `yaml:"sandbags_per_structure" json:"sandbags_per_structure"`
	PermItems            []PermItem            `yaml:"perm_items" json:"perm_items"`
	PermSignMaterial     entities.SignMaterial `yaml:"perm_sign_material" json:"perm_sign_material"`
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{
		Sections: []Section{
			{
				Key:   "trailblazers",
				Label: "Trailblazers / H-Stands",
				Structures: []string{
					"Loose",
					"8FT POST (COMPLETE)", "10FT POST (COMPLETE)", "12FT POST (COMPLETE)", "14FT POST (COMPLETE)",
					"8FT H-STAND", "10FT H-STAND", "12FT H-STAND", "14FT H-STAND",
				},
			},
			{
				Key:   "type_iii",
				Label: "Type IIIs",
				Structures: []string{
					"6FT RIGHT", "6FT LEFT", "4FT RIGHT", "4FT LEFT",
					"6FT LEFT/RIGHT", "4FT LEFT/RIGHT", "6FT WING BARRICADE",
				},
			},
			{
				Key:        "sign_stands",
				Label:      "Sign Stands",
				Structures: []string{"Sign Stand", "Loose"},
			},
		},
		SandbagsPerStructure: map[string]int{
			"8FT H-STAND":        6,
			"10FT H-STAND":       6,
			"12FT H-STAND":       6,
			"14FT H-STAND":       6,
			"6FT RIGHT":          12,
			"6FT LEFT":           12,
			"6FT LEFT/RIGHT":     12,
			"4FT RIGHT":          10,
			"4FT LEFT":           10,
			"4FT LEFT/RIGHT":     10,
			"6FT WING BARRICADE": 4,
			"Sign Stand":         2,
		},
		PermItems: []PermItem{
			{ItemNumber: "0941-0001", Label: "Type B Post Mount", Unit: entities.UnitSquareFeet},
			{ItemNumber: "0935-0001", Label: "Type F Post Mount", Unit: entities.UnitSquareFeet},
			{ItemNumber: "0941-0011", Label: "Reset Type B", Unit: entities.UnitEach},
			{ItemNumber: "0945-0001", Label: "Reset Type F", Unit: entities.UnitEach},
			{ItemNumber: "0971-0001", Label: "Remove Type B", Unit: entities.UnitEach},
			{ItemNumber: "0975-0001", Label: "Remove Type F", Unit: entities.UnitEach},
		},
		PermSignMaterial: entities.SignMaterialAluminum,
	}
}

// Load reads a catalog from a YAML file and validates it.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if c.PermSignMaterial == "" {
		c.PermSignMaterial = entities.SignMaterialAluminum
	}
	if c.SandbagsPerStructure == nil {
		c.SandbagsPerStructure = map[string]int{}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) Validate() error {
	if len(c.Sections) == 0 {
		return ErrEmptyCatalog
	}
	seen := map[string]bool{}
	for _, s := range c.Sections {
		if s.Key == "" {
			return fmt.Errorf("%w: section %q", ErrEmptySectionKey, s.Label)
		}
		if seen[s.Key] {
			return fmt.Errorf("%w: %q", ErrDuplicateSection, s.Key)
		}
		seen[s.Key] = true
	}
	items := map[string]bool{}
	for _, it := range c.PermItems {
		if it.ItemNumber == "" {
			return fmt.Errorf("%w: item %q", ErrEmptyItemNumber, it.Label)
		}
		if items[it.ItemNumber] {
			return fmt.Errorf("%w: %q", ErrDuplicateItem, it.ItemNumber)
		}
		items[it.ItemNumber] = true
		if it.Unit != entities.UnitSquareFeet && it.Unit != entities.UnitEach {
			return fmt.Errorf("%w: %q for item %s", ErrInvalidUnit, it.Unit, it.ItemNumber)
		}
	}
	if !c.PermSignMaterial.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidMaterial, c.PermSignMaterial)
	}
	return nil
}

func (c *Catalog) Section(key string) (Section, bool) {
	for _, s := range c.Sections {
		if s.Key == key {
			return s, true
		}
	}
	return Section{}, false
}

// SectionLabel falls back to the key for sections the catalog does not know.
func (c *Catalog) SectionLabel(key string) string {
	if s, ok := c.Section(key); ok {
		return s.Label
	}
	return key
}

// SectionKeyByLabel resolves a category label back to its section key.
func (c *Catalog) SectionKeyByLabel(label string) (string, bool) {
	for _, s := range c.Sections {
		if s.Label == label {
			return s.Key, true
		}
	}
	return "", false
}

func (c *Catalog) PermItem(itemNumber string) (PermItem, bool) {
	for _, it := range c.PermItems {
		if it.ItemNumber == itemNumber {
			return it, true
		}
	}
	return PermItem{}, false
}

// PermItemUnit is SF for item numbers the catalog does not know.
func (c *Catalog) PermItemUnit(itemNumber string) entities.Unit {
	if it, ok := c.PermItem(itemNumber); ok {
		return it.Unit
	}
	return entities.UnitSquareFeet
}

// Sandbags is the per-unit sandbag count for a structure; 0 when unknown.
func (c *Catalog) Sandbags(structure string) int {
	return c.SandbagsPerStructure[structure]
}

// HasStructure reports whether structure belongs to the section.
func (c *Catalog) HasStructure(sectionKey, structure string) bool {
	s, ok := c.Section(sectionKey)
	if !ok {
		return false
	}
	for _, st := range s.Structures {
		if st == structure {
			return true
		}
	}
	return false
}
