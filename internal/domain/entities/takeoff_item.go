package entities

import (
	"errors"
	"fmt"
)

type SignMaterial string

const (
	SignMaterialPlastic  SignMaterial = "PLASTIC"
	SignMaterialAluminum SignMaterial = "ALUMINUM"
	SignMaterialDibond   SignMaterial = "DIBOND"
	SignMaterialACM      SignMaterial = "ACM"

	DefaultSignMaterial = SignMaterialPlastic
)

var signMaterialAbbrev = map[SignMaterial]string{
	SignMaterialPlastic:  "PL",
	SignMaterialAluminum: "AL",
	SignMaterialDibond:   "DI",
	SignMaterialACM:      "ACM",
}

func (m SignMaterial) Valid() bool {
	_, ok := signMaterialAbbrev[m]
	return ok
}

func (m SignMaterial) Abbrev() string {
	if a, ok := signMaterialAbbrev[m]; ok {
		return a
	}
	if m == "" {
		return "—"
	}
	s := []rune(string(m))
	if len(s) > 2 {
		s = s[:2]
	}
	return string(s)
}

type Unit string

const (
	UnitSquareFeet Unit = "SF"
	UnitEach       Unit = "EA"
)

const (
	CategoryAdditionalItems = "Additional Items"
	CategoryVehicles        = "Vehicles"
	CategoryRollingStock    = "Rolling Stock"
	permSignCategoryPrefix  = "Perm Signs — "
)

// PermSignCategory is the category label of a permanent-sign item number.
func PermSignCategory(itemNumber string) string {
	return permSignCategoryPrefix + itemNumber
}

// TakeoffItem is one flattened, persisted line of a takeoff.
type TakeoffItem struct {
	Name     string       `json:"name"`
	Category string       `json:"category"`
	Unit     Unit         `json:"unit"`
	Quantity int          `json:"quantity"`
	Material SignMaterial `json:"material,omitempty"`
	Metadata ItemMetadata `json:"metadata"`
}

// ItemKind tags which payload of ItemMetadata is populated.
type ItemKind string

const (
	ItemKindMPTSign  ItemKind = "mpt_sign"
	ItemKindPermSign ItemKind = "perm_sign"
	ItemKindPlain    ItemKind = "plain"
)

type PlainSource string

const (
	PlainSourceAdditional   PlainSource = "additional"
	PlainSourceVehicle      PlainSource = "vehicle"
	PlainSourceRollingStock PlainSource = "rolling_stock"
	PlainSourceAutoSandbag  PlainSource = "auto_sandbag"
)

var ErrInvalidItemMetadata = errors.New("invalid item metadata")

// ItemMetadata carries the detail that does not fit the flat item columns.
// Exactly one payload matches Kind.
type ItemMetadata struct {
	Kind     ItemKind          `json:"kind"`
	MPTSign  *MPTSignMetadata  `json:"mpt_sign,omitempty"`
	PermSign *PermSignMetadata `json:"perm_sign,omitempty"`
	Plain    *PlainMetadata    `json:"plain,omitempty"`
}

// SignGeometry is shared by MPT and permanent sign metadata.
type SignGeometry struct {
	RowID          string  `json:"row_id"`
	ParentRowID    string  `json:"parent_row_id,omitempty"`
	Description    string  `json:"description,omitempty"`
	Width          float64 `json:"width"`
	Height         float64 `json:"height"`
	DimensionLabel string  `json:"dimension_label,omitempty"`
	Sheeting       string  `json:"sheeting,omitempty"`
	Legend         string  `json:"legend,omitempty"`
	SqFt           float64 `json:"sqft"`
	TotalSqFt      float64 `json:"total_sqft"`
	SortIndex      int     `json:"sort_index"`
	IsCustom       bool    `json:"is_custom,omitempty"`
}

type MPTSignMetadata struct {
	SignGeometry
	SectionKey    string `json:"section_key"`
	StructureType string `json:"structure_type"`
	BLights       string `json:"b_lights,omitempty"`
	LoadOrder     int    `json:"load_order"`
	Cover         bool   `json:"cover"`
	NeedsOrder    bool   `json:"needs_order"`
}

type PermSignMetadata struct {
	SignGeometry
	ItemNumber       string   `json:"item_number"`
	PostSize         string   `json:"post_size,omitempty"`
	PlanSheetNumbers []string `json:"plan_sheet_numbers,omitempty"`
}

type PlainMetadata struct {
	Source        PlainSource `json:"source"`
	RowID         string      `json:"row_id,omitempty"`
	Notes         string      `json:"notes,omitempty"`
	EquipmentType string      `json:"equipment_type,omitempty"`
	EquipmentID   string      `json:"equipment_id,omitempty"`
}

// Validate checks that the populated payload agrees with Kind.
func (m ItemMetadata) Validate() error {
	set := 0
	if m.MPTSign != nil {
		set++
	}
	if m.PermSign != nil {
		set++
	}
	if m.Plain != nil {
		set++
	}
	if set != 1 {
		return fmt.Errorf("%w: kind %q has %d payloads", ErrInvalidItemMetadata, m.Kind, set)
	}

	switch m.Kind {
	case ItemKindMPTSign:
		if m.MPTSign == nil {
			return fmt.Errorf("%w: kind %q without mpt_sign payload", ErrInvalidItemMetadata, m.Kind)
		}
	case ItemKindPermSign:
		if m.PermSign == nil {
			return fmt.Errorf("%w: kind %q without perm_sign payload", ErrInvalidItemMetadata, m.Kind)
		}
	case ItemKindPlain:
		if m.Plain == nil {
			return fmt.Errorf("%w: kind %q without plain payload", ErrInvalidItemMetadata, m.Kind)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidItemMetadata, m.Kind)
	}
	return nil
}

// IsAutoSandbag reports whether the item is the derived sandbag line.
func (i TakeoffItem) IsAutoSandbag() bool {
	return i.Metadata.Kind == ItemKindPlain && i.Metadata.Plain != nil && i.Metadata.Plain.Source == PlainSourceAutoSandbag
}

// IsPrimarySign reports whether the item is a top-level sign row, not a
// secondary sign folded under a parent.
func (i TakeoffItem) IsPrimarySign() bool {
	switch i.Metadata.Kind {
	case ItemKindMPTSign:
		return i.Metadata.MPTSign != nil && i.Metadata.MPTSign.ParentRowID == ""
	case ItemKindPermSign:
		return i.Metadata.PermSign != nil && i.Metadata.PermSign.ParentRowID == ""
	}
	return false
}
