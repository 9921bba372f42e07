package repository

import "etc_takeoffs/internal/domain/entities"

// takeoffLineItem is one element of the takeoff's items list attribute.
// Exactly one of the metadata maps is set, matching Kind.
type takeoffLineItem struct {
	Name     string         `dynamodbav:"name"`
	Category string         `dynamodbav:"category"`
	Unit     string         `dynamodbav:"unit"`
	Quantity int            `dynamodbav:"quantity"`
	Material string         `dynamodbav:"material,omitempty"`
	Kind     string         `dynamodbav:"kind"`
	MPTSign  *mptSignAttrs  `dynamodbav:"mpt_sign,omitempty"`
	PermSign *permSignAttrs `dynamodbav:"perm_sign,omitempty"`
	Plain    *plainAttrs    `dynamodbav:"plain,omitempty"`
}

type signGeometryAttrs struct {
	RowID          string  `dynamodbav:"row_id"`
	ParentRowID    string  `dynamodbav:"parent_row_id,omitempty"`
	Description    string  `dynamodbav:"description,omitempty"`
	Width          float64 `dynamodbav:"width"`
	Height         float64 `dynamodbav:"height"`
	DimensionLabel string  `dynamodbav:"dimension_label,omitempty"`
	Sheeting       string  `dynamodbav:"sheeting,omitempty"`
	Legend         string  `dynamodbav:"legend,omitempty"`
	SqFt           float64 `dynamodbav:"sqft"`
	TotalSqFt      float64 `dynamodbav:"total_sqft"`
	SortIndex      int     `dynamodbav:"sort_index"`
	IsCustom       bool    `dynamodbav:"is_custom,omitempty"`
}

type mptSignAttrs struct {
	Geometry      signGeometryAttrs `dynamodbav:"geometry"`
	SectionKey    string            `dynamodbav:"section_key"`
	StructureType string            `dynamodbav:"structure_type"`
	BLights       string            `dynamodbav:"b_lights,omitempty"`
	LoadOrder     int               `dynamodbav:"load_order"`
	Cover         bool              `dynamodbav:"cover"`
	NeedsOrder    bool              `dynamodbav:"needs_order"`
}

type permSignAttrs struct {
	Geometry         signGeometryAttrs `dynamodbav:"geometry"`
	ItemNumber       string            `dynamodbav:"item_number"`
	PostSize         string            `dynamodbav:"post_size,omitempty"`
	PlanSheetNumbers []string          `dynamodbav:"plan_sheet_numbers,omitempty"`
}

type plainAttrs struct {
	Source        string `dynamodbav:"source"`
	RowID         string `dynamodbav:"row_id,omitempty"`
	Notes         string `dynamodbav:"notes,omitempty"`
	EquipmentType string `dynamodbav:"equipment_type,omitempty"`
	EquipmentID   string `dynamodbav:"equipment_id,omitempty"`
}

func toLineItems(items []entities.TakeoffItem) []takeoffLineItem {
	out := make([]takeoffLineItem, 0, len(items))
	for _, it := range items {
		li := takeoffLineItem{
			Name:     it.Name,
			Category: it.Category,
			Unit:     string(it.Unit),
			Quantity: it.Quantity,
			Material: string(it.Material),
			Kind:     string(it.Metadata.Kind),
		}
		if m := it.Metadata.MPTSign; m != nil {
			li.MPTSign = &mptSignAttrs{
				Geometry:      toGeometryAttrs(m.SignGeometry),
				SectionKey:    m.SectionKey,
				StructureType: m.StructureType,
				BLights:       m.BLights,
				LoadOrder:     m.LoadOrder,
				Cover:         m.Cover,
				NeedsOrder:    m.NeedsOrder,
			}
		}
		if m := it.Metadata.PermSign; m != nil {
			li.PermSign = &permSignAttrs{
				Geometry:         toGeometryAttrs(m.SignGeometry),
				ItemNumber:       m.ItemNumber,
				PostSize:         m.PostSize,
				PlanSheetNumbers: m.PlanSheetNumbers,
			}
		}
		if m := it.Metadata.Plain; m != nil {
			li.Plain = &plainAttrs{
				Source:        string(m.Source),
				RowID:         m.RowID,
				Notes:         m.Notes,
				EquipmentType: m.EquipmentType,
				EquipmentID:   m.EquipmentID,
			}
		}
		out = append(out, li)
	}
	return out
}

func fromLineItems(lines []takeoffLineItem) []entities.TakeoffItem {
	out := make([]entities.TakeoffItem, 0, len(lines))
	for _, li := range lines {
		it := entities.TakeoffItem{
			Name:     li.Name,
			Category: li.Category,
			Unit:     entities.Unit(li.Unit),
			Quantity: li.Quantity,
			Material: entities.SignMaterial(li.Material),
			Metadata: entities.ItemMetadata{Kind: entities.ItemKind(li.Kind)},
		}
		if m := li.MPTSign; m != nil {
			it.Metadata.MPTSign = &entities.MPTSignMetadata{
				SignGeometry:  fromGeometryAttrs(m.Geometry),
				SectionKey:    m.SectionKey,
				StructureType: m.StructureType,
				BLights:       m.BLights,
				LoadOrder:     m.LoadOrder,
				Cover:         m.Cover,
				NeedsOrder:    m.NeedsOrder,
			}
		}
		if m := li.PermSign; m != nil {
			it.Metadata.PermSign = &entities.PermSignMetadata{
				SignGeometry:     fromGeometryAttrs(m.Geometry),
				ItemNumber:       m.ItemNumber,
				PostSize:         m.PostSize,
				PlanSheetNumbers: m.PlanSheetNumbers,
			}
		}
		if m := li.Plain; m != nil {
			it.Metadata.Plain = &entities.PlainMetadata{
				Source:        entities.PlainSource(m.Source),
				RowID:         m.RowID,
				Notes:         m.Notes,
				EquipmentType: m.EquipmentType,
				EquipmentID:   m.EquipmentID,
			}
		}
		out = append(out, it)
	}
	return out
}

func toGeometryAttrs(g entities.SignGeometry) signGeometryAttrs {
	return signGeometryAttrs{
		RowID:          g.RowID,
		ParentRowID:    g.ParentRowID,
		Description:    g.Description,
		Width:          g.Width,
		Height:         g.Height,
		DimensionLabel: g.DimensionLabel,
		Sheeting:       g.Sheeting,
		Legend:         g.Legend,
		SqFt:           g.SqFt,
		TotalSqFt:      g.TotalSqFt,
		SortIndex:      g.SortIndex,
		IsCustom:       g.IsCustom,
	}
}

func fromGeometryAttrs(g signGeometryAttrs) entities.SignGeometry {
	return entities.SignGeometry{
		RowID:          g.RowID,
		ParentRowID:    g.ParentRowID,
		Description:    g.Description,
		Width:          g.Width,
		Height:         g.Height,
		DimensionLabel: g.DimensionLabel,
		Sheeting:       g.Sheeting,
		Legend:         g.Legend,
		SqFt:           g.SqFt,
		TotalSqFt:      g.TotalSqFt,
		SortIndex:      g.SortIndex,
		IsCustom:       g.IsCustom,
	}
}
