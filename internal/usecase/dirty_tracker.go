package usecase

import (
	"encoding/json"

	"etc_takeoffs/internal/domain/entities"
)

// DirtyTracker compares the current form against the last persisted snapshot.
type DirtyTracker struct {
	baseline string
}

// NewDirtyTracker starts with form as the baseline.
func NewDirtyTracker(form entities.TakeoffForm) *DirtyTracker {
	d := &DirtyTracker{}
	d.Reset(form)
	return d
}

// Reset makes form the new baseline, after a successful save or load.
func (d *DirtyTracker) Reset(form entities.TakeoffForm) {
	d.baseline = Snapshot(form)
}

func (d *DirtyTracker) IsDirty(form entities.TakeoffForm) bool {
	return Snapshot(form) != d.baseline
}

// Snapshot is a deterministic serialization of every persisted field of the
// form. Nil and empty collections serialize alike.
func Snapshot(form entities.TakeoffForm) string {
	f := canonicalForm(form)
	raw, err := json.Marshal(f)
	if err != nil {
		// Every field is a plain value; Marshal only fails on unsupported
		// floats such as NaN, which never equal a baseline.
		return "!" + err.Error()
	}
	return string(raw)
}

func canonicalForm(form entities.TakeoffForm) entities.TakeoffForm {
	f := form.Clone()
	r := &f.Rows
	if r.ActiveSections == nil {
		r.ActiveSections = []string{}
	}
	if r.ActivePermItems == nil {
		r.ActivePermItems = []string{}
	}
	if r.AdditionalItems == nil {
		r.AdditionalItems = []entities.AdditionalItem{}
	}
	if r.Vehicles == nil {
		r.Vehicles = []entities.VehicleAssignment{}
	}
	if r.RollingEquipment == nil {
		r.RollingEquipment = []entities.RollingEquipment{}
	}
	for k, rows := range r.MPTRows {
		if len(rows) == 0 {
			delete(r.MPTRows, k)
			continue
		}
		for i := range rows {
			if len(rows[i].SecondarySigns) == 0 {
				rows[i].SecondarySigns = nil
			}
		}
	}
	for k, rows := range r.PermRows {
		if len(rows) == 0 {
			delete(r.PermRows, k)
			continue
		}
		for i := range rows {
			if len(rows[i].SecondarySigns) == 0 {
				rows[i].SecondarySigns = nil
			}
			if len(rows[i].PlanSheetNumbers) == 0 {
				rows[i].PlanSheetNumbers = nil
			}
		}
	}
	return f
}
