package usecase

import (
	"sort"
	"strings"

	"etc_takeoffs/internal/domain/catalog"
	"etc_takeoffs/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AutoSandbagName is the item name of the derived sandbag line.
const AutoSandbagName = "Sandbags"

var squareInchesPerSquareFoot = decimal.NewFromInt(144)

// ItemAggregator flattens editing rows into persisted takeoff items and
// rebuilds rows from items after a load.
type ItemAggregator struct {
	catalog *catalog.Catalog
}

func NewItemAggregator(c *catalog.Catalog) *ItemAggregator {
	if c == nil {
		c = catalog.Default()
	}
	return &ItemAggregator{catalog: c}
}

// BuildItemPayloads returns items in canonical order: MPT sections, permanent
// sign items, additional items, vehicles, rolling stock. Rows and secondary
// signs without a designation are skipped. Sign rows without an id get one
// first so secondary items always point at their parent.
func (a *ItemAggregator) BuildItemPayloads(workType entities.WorkType, defaultMaterial entities.SignMaterial, rows entities.RowCollections) []entities.TakeoffItem {
	if rows.MissingSignIDs() {
		rows = rows.Clone()
		rows.AssignSignIDs(uuid.NewString)
	}
	if !defaultMaterial.Valid() {
		defaultMaterial = entities.DefaultSignMaterial
	}

	items := make([]entities.TakeoffItem, 0)
	if workType.UsesMPTSections() {
		for _, key := range a.orderedSections(rows) {
			for i, row := range rows.MPTRows[key] {
				items = append(items, a.mptItems(key, i, row, defaultMaterial)...)
			}
		}
	}
	if workType.IsPermanentSigns() {
		for _, n := range a.orderedPermItems(rows) {
			for i, row := range rows.PermRows[n] {
				items = append(items, a.permItems(n, i, row)...)
			}
		}
	}

	for _, it := range rows.AdditionalItems {
		if strings.TrimSpace(it.Name) == "" {
			continue
		}
		items = append(items, plainItem(it.Name, entities.CategoryAdditionalItems, it.Quantity, entities.PlainMetadata{
			Source: entities.PlainSourceAdditional,
			RowID:  it.ID,
			Notes:  it.Notes,
		}))
	}
	for _, v := range rows.Vehicles {
		if strings.TrimSpace(v.VehicleType) == "" {
			continue
		}
		items = append(items, plainItem(v.VehicleType, entities.CategoryVehicles, v.Quantity, entities.PlainMetadata{
			Source: entities.PlainSourceVehicle,
			RowID:  v.ID,
			Notes:  v.Notes,
		}))
	}
	for _, r := range rows.RollingEquipment {
		if strings.TrimSpace(r.EquipmentType) == "" {
			continue
		}
		items = append(items, plainItem(r.EquipmentType, entities.CategoryRollingStock, 1, entities.PlainMetadata{
			Source:        entities.PlainSourceRollingStock,
			RowID:         r.ID,
			Notes:         r.Notes,
			EquipmentType: r.EquipmentType,
			EquipmentID:   r.EquipmentID,
		}))
	}
	return items
}

// SandbagQuantity sums sandbags over every MPT row with a quantity, whether or
// not a sign has been designated yet. Unknown structures contribute nothing.
func (a *ItemAggregator) SandbagQuantity(workType entities.WorkType, rows entities.RowCollections) int {
	if !workType.UsesMPTSections() {
		return 0
	}
	total := 0
	for _, key := range a.orderedSections(rows) {
		for _, row := range rows.MPTRows[key] {
			if row.Quantity <= 0 {
				continue
			}
			total += a.catalog.Sandbags(row.StructureType) * row.Quantity
		}
	}
	return total
}

// AutoSandbagItem is the derived sandbag line appended to a payload.
func AutoSandbagItem(qty int) entities.TakeoffItem {
	return plainItem(AutoSandbagName, entities.CategoryAdditionalItems, qty, entities.PlainMetadata{
		Source: entities.PlainSourceAutoSandbag,
	})
}

// RowsFromItems rebuilds editing rows from persisted items. Items whose
// material equals defaultMaterial come back without an override. The
// derived sandbag line is dropped.
func (a *ItemAggregator) RowsFromItems(defaultMaterial entities.SignMaterial, items []entities.TakeoffItem) entities.RowCollections {
	rows := entities.RowCollections{
		MPTRows:  map[string][]entities.MPTSignRow{},
		PermRows: map[string][]entities.PermSignRow{},
	}

	for _, it := range items {
		switch it.Metadata.Kind {
		case entities.ItemKindMPTSign:
			m := it.Metadata.MPTSign
			if m == nil {
				continue
			}
			key := m.SectionKey
			if key == "" {
				key, _ = a.catalog.SectionKeyByLabel(it.Category)
			}
			if !rows.SectionActive(key) {
				rows.ActiveSections = append(rows.ActiveSections, key)
			}
			if m.ParentRowID != "" {
				rows.MPTRows[key] = attachMPTSecondary(rows.MPTRows[key], it, m)
				continue
			}
			material := it.Material
			if material == defaultMaterial {
				material = ""
			}
			rows.MPTRows[key] = append(rows.MPTRows[key], entities.MPTSignRow{
				ID:             m.RowID,
				IsCustom:       m.IsCustom,
				Designation:    it.Name,
				Description:    m.Description,
				Width:          m.Width,
				Height:         m.Height,
				DimensionLabel: m.DimensionLabel,
				Legend:         m.Legend,
				Sheeting:       m.Sheeting,
				StructureType:  m.StructureType,
				BLights:        m.BLights,
				SqFt:           m.SqFt,
				Quantity:       it.Quantity,
				NeedsOrder:     m.NeedsOrder,
				Cover:          m.Cover,
				LoadOrder:      m.LoadOrder,
				Material:       material,
			})

		case entities.ItemKindPermSign:
			m := it.Metadata.PermSign
			if m == nil {
				continue
			}
			n := m.ItemNumber
			if !rows.PermItemActive(n) {
				rows.ActivePermItems = append(rows.ActivePermItems, n)
			}
			if m.ParentRowID != "" {
				rows.PermRows[n] = attachPermSecondary(rows.PermRows[n], it, m)
				continue
			}
			rows.PermRows[n] = append(rows.PermRows[n], entities.PermSignRow{
				ID:               m.RowID,
				IsCustom:         m.IsCustom,
				Designation:      it.Name,
				Description:      m.Description,
				Width:            m.Width,
				Height:           m.Height,
				DimensionLabel:   m.DimensionLabel,
				Legend:           m.Legend,
				Sheeting:         m.Sheeting,
				SqFt:             m.SqFt,
				Quantity:         it.Quantity,
				PostSize:         m.PostSize,
				PlanSheetNumbers: append([]string(nil), m.PlanSheetNumbers...),
			})

		case entities.ItemKindPlain:
			p := it.Metadata.Plain
			if p == nil {
				continue
			}
			switch p.Source {
			case entities.PlainSourceAdditional:
				rows.AdditionalItems = append(rows.AdditionalItems, entities.AdditionalItem{
					ID: p.RowID, Name: it.Name, Quantity: it.Quantity, Notes: p.Notes,
				})
			case entities.PlainSourceVehicle:
				rows.Vehicles = append(rows.Vehicles, entities.VehicleAssignment{
					ID: p.RowID, VehicleType: it.Name, Quantity: it.Quantity, Notes: p.Notes,
				})
			case entities.PlainSourceRollingStock:
				rows.RollingEquipment = append(rows.RollingEquipment, entities.RollingEquipment{
					ID: p.RowID, EquipmentType: p.EquipmentType, EquipmentID: p.EquipmentID, Notes: p.Notes,
				})
			}
		}
	}
	return rows
}

func (a *ItemAggregator) mptItems(sectionKey string, index int, row entities.MPTSignRow, defaultMaterial entities.SignMaterial) []entities.TakeoffItem {
	material := row.Material
	if !material.Valid() {
		material = defaultMaterial
	}
	category := a.catalog.SectionLabel(sectionKey)

	var out []entities.TakeoffItem
	if entities.HasDesignation(row.Designation) {
		sqft := signSqFt(row.SqFt, row.Width, row.Height)
		out = append(out, entities.TakeoffItem{
			Name:     strings.TrimSpace(row.Designation),
			Category: category,
			Unit:     entities.UnitSquareFeet,
			Quantity: row.Quantity,
			Material: material,
			Metadata: entities.ItemMetadata{
				Kind: entities.ItemKindMPTSign,
				MPTSign: &entities.MPTSignMetadata{
					SignGeometry: entities.SignGeometry{
						RowID:          row.ID,
						Description:    row.Description,
						Width:          row.Width,
						Height:         row.Height,
						DimensionLabel: row.DimensionLabel,
						Sheeting:       row.Sheeting,
						Legend:         row.Legend,
						SqFt:           sqft,
						TotalSqFt:      totalSqFt(sqft, row.Quantity),
						SortIndex:      index,
						IsCustom:       row.IsCustom,
					},
					SectionKey:    sectionKey,
					StructureType: row.StructureType,
					BLights:       row.BLights,
					LoadOrder:     row.LoadOrder,
					Cover:         row.Cover,
					NeedsOrder:    row.NeedsOrder,
				},
			},
		})
	}

	for _, s := range row.SecondarySigns {
		if !entities.HasDesignation(s.Designation) {
			continue
		}
		sqft := signSqFt(s.SqFt, s.Width, s.Height)
		out = append(out, entities.TakeoffItem{
			Name:     strings.TrimSpace(s.Designation),
			Category: category,
			Unit:     entities.UnitSquareFeet,
			Quantity: row.Quantity,
			Material: material,
			Metadata: entities.ItemMetadata{
				Kind: entities.ItemKindMPTSign,
				MPTSign: &entities.MPTSignMetadata{
					SignGeometry:  secondaryGeometry(row.ID, index, s, sqft, row.Quantity),
					SectionKey:    sectionKey,
					StructureType: row.StructureType,
					LoadOrder:     row.LoadOrder,
				},
			},
		})
	}
	return out
}

func (a *ItemAggregator) permItems(itemNumber string, index int, row entities.PermSignRow) []entities.TakeoffItem {
	category := entities.PermSignCategory(itemNumber)
	unit := a.catalog.PermItemUnit(itemNumber)
	material := a.catalog.PermSignMaterial

	var out []entities.TakeoffItem
	if entities.HasDesignation(row.Designation) {
		sqft := signSqFt(row.SqFt, row.Width, row.Height)
		out = append(out, entities.TakeoffItem{
			Name:     strings.TrimSpace(row.Designation),
			Category: category,
			Unit:     unit,
			Quantity: row.Quantity,
			Material: material,
			Metadata: entities.ItemMetadata{
				Kind: entities.ItemKindPermSign,
				PermSign: &entities.PermSignMetadata{
					SignGeometry: entities.SignGeometry{
						RowID:          row.ID,
						Description:    row.Description,
						Width:          row.Width,
						Height:         row.Height,
						DimensionLabel: row.DimensionLabel,
						Sheeting:       row.Sheeting,
						Legend:         row.Legend,
						SqFt:           sqft,
						TotalSqFt:      totalSqFt(sqft, row.Quantity),
						SortIndex:      index,
						IsCustom:       row.IsCustom,
					},
					ItemNumber:       itemNumber,
					PostSize:         row.PostSize,
					PlanSheetNumbers: append([]string(nil), row.PlanSheetNumbers...),
				},
			},
		})
	}

	for _, s := range row.SecondarySigns {
		if !entities.HasDesignation(s.Designation) {
			continue
		}
		sqft := signSqFt(s.SqFt, s.Width, s.Height)
		out = append(out, entities.TakeoffItem{
			Name:     strings.TrimSpace(s.Designation),
			Category: category,
			Unit:     unit,
			Quantity: row.Quantity,
			Material: material,
			Metadata: entities.ItemMetadata{
				Kind: entities.ItemKindPermSign,
				PermSign: &entities.PermSignMetadata{
					SignGeometry: secondaryGeometry(row.ID, index, s, sqft, row.Quantity),
					ItemNumber:   itemNumber,
					PostSize:     row.PostSize,
				},
			},
		})
	}
	return out
}

// orderedSections returns active section keys in catalog order followed by
// active keys the catalog does not know, sorted.
func (a *ItemAggregator) orderedSections(rows entities.RowCollections) []string {
	known := make([]string, 0, len(a.catalog.Sections))
	for _, s := range a.catalog.Sections {
		if rows.SectionActive(s.Key) {
			known = append(known, s.Key)
		}
	}
	var unknown []string
	for _, k := range rows.ActiveSections {
		if _, ok := a.catalog.Section(k); !ok && !containsKey(unknown, k) {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	return append(known, unknown...)
}

func (a *ItemAggregator) orderedPermItems(rows entities.RowCollections) []string {
	known := make([]string, 0, len(a.catalog.PermItems))
	for _, it := range a.catalog.PermItems {
		if rows.PermItemActive(it.ItemNumber) {
			known = append(known, it.ItemNumber)
		}
	}
	var unknown []string
	for _, n := range rows.ActivePermItems {
		if _, ok := a.catalog.PermItem(n); !ok && !containsKey(unknown, n) {
			unknown = append(unknown, n)
		}
	}
	sort.Strings(unknown)
	return append(known, unknown...)
}

func plainItem(name, category string, qty int, meta entities.PlainMetadata) entities.TakeoffItem {
	return entities.TakeoffItem{
		Name:     strings.TrimSpace(name),
		Category: category,
		Unit:     entities.UnitEach,
		Quantity: qty,
		Metadata: entities.ItemMetadata{Kind: entities.ItemKindPlain, Plain: &meta},
	}
}

func secondaryGeometry(parentID string, index int, s entities.SecondarySign, sqft float64, qty int) entities.SignGeometry {
	return entities.SignGeometry{
		RowID:          s.ID,
		ParentRowID:    parentID,
		Description:    s.Description,
		Width:          s.Width,
		Height:         s.Height,
		DimensionLabel: s.DimensionLabel,
		Sheeting:       s.Sheeting,
		Legend:         s.Legend,
		SqFt:           sqft,
		TotalSqFt:      totalSqFt(sqft, qty),
		SortIndex:      index,
	}
}

// signSqFt keeps an explicit area and otherwise derives it from inch dimensions.
func signSqFt(sqft, width, height float64) float64 {
	if sqft > 0 || width <= 0 || height <= 0 {
		return sqft
	}
	v, _ := decimal.NewFromFloat(width).
		Mul(decimal.NewFromFloat(height)).
		Div(squareInchesPerSquareFoot).
		Round(2).
		Float64()
	return v
}

func totalSqFt(sqft float64, qty int) float64 {
	v, _ := decimal.NewFromFloat(sqft).Mul(decimal.NewFromInt(int64(qty))).Round(2).Float64()
	return v
}

// attachMPTSecondary folds a secondary sign item back under its parent row,
// creating an empty placeholder parent when the parent was never emitted.
func attachMPTSecondary(rows []entities.MPTSignRow, it entities.TakeoffItem, m *entities.MPTSignMetadata) []entities.MPTSignRow {
	idx := -1
	for i := range rows {
		if rows[i].ID == m.ParentRowID {
			idx = i
			break
		}
	}
	if idx < 0 {
		rows = append(rows, entities.MPTSignRow{
			ID:            m.ParentRowID,
			StructureType: m.StructureType,
			Quantity:      it.Quantity,
			LoadOrder:     m.LoadOrder,
		})
		idx = len(rows) - 1
	}
	rows[idx].SecondarySigns = append(rows[idx].SecondarySigns, secondaryFromGeometry(it.Name, m.SignGeometry))
	return rows
}

func attachPermSecondary(rows []entities.PermSignRow, it entities.TakeoffItem, m *entities.PermSignMetadata) []entities.PermSignRow {
	idx := -1
	for i := range rows {
		if rows[i].ID == m.ParentRowID {
			idx = i
			break
		}
	}
	if idx < 0 {
		rows = append(rows, entities.PermSignRow{
			ID:       m.ParentRowID,
			Quantity: it.Quantity,
			PostSize: m.PostSize,
		})
		idx = len(rows) - 1
	}
	rows[idx].SecondarySigns = append(rows[idx].SecondarySigns, secondaryFromGeometry(it.Name, m.SignGeometry))
	return rows
}

func secondaryFromGeometry(name string, g entities.SignGeometry) entities.SecondarySign {
	return entities.SecondarySign{
		ID:             g.RowID,
		Designation:    name,
		Description:    g.Description,
		Width:          g.Width,
		Height:         g.Height,
		DimensionLabel: g.DimensionLabel,
		Legend:         g.Legend,
		Sheeting:       g.Sheeting,
		SqFt:           g.SqFt,
	}
}

func containsKey(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
