package usecase

import (
	"fmt"
	"strings"

	"etc_takeoffs/internal/domain/catalog"
	"etc_takeoffs/internal/domain/entities"
)

// SubmissionError is a local validation failure. It carries the same code the
// gateway would answer with, so callers can treat both alike.
type SubmissionError struct {
	Code        entities.ErrorCode
	Message     string
	SectionKey  string
	ItemNumber  string
	Designation string
}

func (e *SubmissionError) Error() string {
	return e.Message
}

// SubmissionValidator checks row-level structure before a takeoff leaves for a shop.
type SubmissionValidator struct {
	catalog    *catalog.Catalog
	aggregator *ItemAggregator
}

func NewSubmissionValidator(c *catalog.Catalog) *SubmissionValidator {
	if c == nil {
		c = catalog.Default()
	}
	return &SubmissionValidator{catalog: c, aggregator: NewItemAggregator(c)}
}

// Validate returns the first violation, or nil when the rows may be sent to
// dest. Build shop rows that have a designation need a structure; every sign
// shop row needs a designation.
func (v *SubmissionValidator) Validate(dest entities.Destination, workType entities.WorkType, rows entities.RowCollections) *SubmissionError {
	switch dest {
	case entities.DestinationBuildShop:
		if !workType.UsesMPTSections() {
			return nil
		}
		for _, key := range v.aggregator.orderedSections(rows) {
			label := v.catalog.SectionLabel(key)
			for _, row := range rows.MPTRows[key] {
				if !entities.HasDesignation(row.Designation) {
					continue
				}
				if strings.TrimSpace(row.StructureType) == "" {
					sign := strings.TrimSpace(row.Designation)
					return &SubmissionError{
						Code:        entities.CodeMissingStructure,
						Message:     fmt.Sprintf("%s: sign %s has no structure selected.", label, sign),
						SectionKey:  key,
						Designation: sign,
					}
				}
			}
		}

	case entities.DestinationSignShop:
		for _, n := range v.aggregator.orderedPermItems(rows) {
			for _, row := range rows.PermRows[n] {
				if !entities.HasDesignation(row.Designation) {
					return &SubmissionError{
						Code:       entities.CodeMissingDesignation,
						Message:    fmt.Sprintf("Item %s has a sign without a designation.", n),
						ItemNumber: n,
					}
				}
			}
		}
	}
	return nil
}

// CheckSubmission runs every local gate of a submit in order: routing, at
// least one item, then row structure. items is the aggregated payload.
func (v *SubmissionValidator) CheckSubmission(dest entities.Destination, workType entities.WorkType, rows entities.RowCollections, items []entities.TakeoffItem) *SubmissionError {
	if workType.Destination() != dest {
		code := entities.CodeDestinationMismatch
		if dest == entities.DestinationBuildShop {
			code = entities.CodeIneligibleWorkType
		}
		return &SubmissionError{Code: code, Message: entities.UserMessage(code)}
	}
	if CountSubmittableItems(items) == 0 {
		return &SubmissionError{Code: entities.CodeNoItems, Message: entities.UserMessage(entities.CodeNoItems)}
	}
	return v.Validate(dest, workType, rows)
}

// CountSubmittableItems ignores the derived sandbag line.
func CountSubmittableItems(items []entities.TakeoffItem) int {
	n := 0
	for _, it := range items {
		if !it.IsAutoSandbag() {
			n++
		}
	}
	return n
}
