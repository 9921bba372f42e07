package entities

import "strings"

// MPTSignRow is one temporary sign placement on an MPT structure.
type MPTSignRow struct {
	ID             string          `json:"id"`
	IsCustom       bool            `json:"is_custom"`
	Designation    string          `json:"designation"`
	Description    string          `json:"description"`
	Width          float64         `json:"width"`
	Height         float64         `json:"height"`
	DimensionLabel string          `json:"dimension_label"`
	Legend         string          `json:"legend"`
	Sheeting       string          `json:"sheeting"`
	StructureType  string          `json:"structure_type"`
	BLights        string          `json:"b_lights"`
	SqFt           float64         `json:"sqft"`
	Quantity       int             `json:"quantity"`
	NeedsOrder     bool            `json:"needs_order"`
	Cover          bool            `json:"cover"`
	LoadOrder      int             `json:"load_order"`
	Material       SignMaterial    `json:"material,omitempty"`
	SecondarySigns []SecondarySign `json:"secondary_signs,omitempty"`
}

// PermSignRow is one permanent sign under a contract item number.
type PermSignRow struct {
	ID               string          `json:"id"`
	IsCustom         bool            `json:"is_custom"`
	Designation      string          `json:"designation"`
	Description      string          `json:"description"`
	Width            float64         `json:"width"`
	Height           float64         `json:"height"`
	DimensionLabel   string          `json:"dimension_label"`
	Legend           string          `json:"legend"`
	Sheeting         string          `json:"sheeting"`
	SqFt             float64         `json:"sqft"`
	Quantity         int             `json:"quantity"`
	PostSize         string          `json:"post_size"`
	PlanSheetNumbers []string        `json:"plan_sheet_numbers,omitempty"`
	SecondarySigns   []SecondarySign `json:"secondary_signs,omitempty"`
}

// SecondarySign is mounted under a primary sign and shares its structure,
// quantity and material.
type SecondarySign struct {
	ID             string  `json:"id"`
	Designation    string  `json:"designation"`
	Description    string  `json:"description"`
	Width          float64 `json:"width"`
	Height         float64 `json:"height"`
	DimensionLabel string  `json:"dimension_label"`
	Legend         string  `json:"legend"`
	Sheeting       string  `json:"sheeting"`
	SqFt           float64 `json:"sqft"`
}

type AdditionalItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
}

type VehicleAssignment struct {
	ID          string `json:"id"`
	VehicleType string `json:"vehicle_type"`
	Quantity    int    `json:"quantity"`
	Notes       string `json:"notes,omitempty"`
}

// RollingEquipment is a specific rented unit (arrow board, message board...).
type RollingEquipment struct {
	ID            string `json:"id"`
	EquipmentType string `json:"equipment_type"`
	EquipmentID   string `json:"equipment_id"`
	Notes         string `json:"notes,omitempty"`
}

// RowCollections is the full in-memory editing state of a takeoff's rows.
// Map keys are MPT section keys and permanent-sign item numbers.
type RowCollections struct {
	ActiveSections   []string                 `json:"active_sections"`
	MPTRows          map[string][]MPTSignRow  `json:"mpt_rows"`
	ActivePermItems  []string                 `json:"active_perm_items"`
	PermRows         map[string][]PermSignRow `json:"perm_rows"`
	AdditionalItems  []AdditionalItem         `json:"additional_items"`
	Vehicles         []VehicleAssignment      `json:"vehicles"`
	RollingEquipment []RollingEquipment       `json:"rolling_equipment"`
}

func (r RowCollections) SectionActive(key string) bool {
	return containsString(r.ActiveSections, key)
}

func (r RowCollections) PermItemActive(itemNumber string) bool {
	return containsString(r.ActivePermItems, itemNumber)
}

// ApplyMaterialToAll sets every MPT row's material override.
func (r *RowCollections) ApplyMaterialToAll(m SignMaterial) {
	for key, rows := range r.MPTRows {
		for i := range rows {
			rows[i].Material = m
		}
		r.MPTRows[key] = rows
	}
}

// Clone returns a deep copy of every collection.
func (r RowCollections) Clone() RowCollections {
	out := r
	out.ActiveSections = append([]string(nil), r.ActiveSections...)
	out.ActivePermItems = append([]string(nil), r.ActivePermItems...)
	out.MPTRows = make(map[string][]MPTSignRow, len(r.MPTRows))
	for k, rows := range r.MPTRows {
		cp := make([]MPTSignRow, len(rows))
		for i, row := range rows {
			row.SecondarySigns = append([]SecondarySign(nil), row.SecondarySigns...)
			cp[i] = row
		}
		out.MPTRows[k] = cp
	}
	out.PermRows = make(map[string][]PermSignRow, len(r.PermRows))
	for k, rows := range r.PermRows {
		cp := make([]PermSignRow, len(rows))
		for i, row := range rows {
			row.SecondarySigns = append([]SecondarySign(nil), row.SecondarySigns...)
			row.PlanSheetNumbers = append([]string(nil), row.PlanSheetNumbers...)
			cp[i] = row
		}
		out.PermRows[k] = cp
	}
	out.AdditionalItems = append([]AdditionalItem(nil), r.AdditionalItems...)
	out.Vehicles = append([]VehicleAssignment(nil), r.Vehicles...)
	out.RollingEquipment = append([]RollingEquipment(nil), r.RollingEquipment...)
	return out
}

// MissingSignIDs reports whether any sign row or secondary sign has no id.
func (r RowCollections) MissingSignIDs() bool {
	for _, rows := range r.MPTRows {
		for _, row := range rows {
			if row.ID == "" || secondaryMissingID(row.SecondarySigns) {
				return true
			}
		}
	}
	for _, rows := range r.PermRows {
		for _, row := range rows {
			if row.ID == "" || secondaryMissingID(row.SecondarySigns) {
				return true
			}
		}
	}
	return false
}

// AssignSignIDs gives every sign row and secondary sign without an id one
// from newID. Secondary items reference their parent by this id.
func (r *RowCollections) AssignSignIDs(newID func() string) {
	for _, rows := range r.MPTRows {
		for i := range rows {
			if rows[i].ID == "" {
				rows[i].ID = newID()
			}
			assignSecondaryIDs(rows[i].SecondarySigns, newID)
		}
	}
	for _, rows := range r.PermRows {
		for i := range rows {
			if rows[i].ID == "" {
				rows[i].ID = newID()
			}
			assignSecondaryIDs(rows[i].SecondarySigns, newID)
		}
	}
}

func secondaryMissingID(signs []SecondarySign) bool {
	for _, s := range signs {
		if s.ID == "" {
			return true
		}
	}
	return false
}

func assignSecondaryIDs(signs []SecondarySign, newID func() string) {
	for i := range signs {
		if signs[i].ID == "" {
			signs[i].ID = newID()
		}
	}
}

// HasDesignation reports whether a designation has been filled in.
func HasDesignation(s string) bool {
	return strings.TrimSpace(s) != ""
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
