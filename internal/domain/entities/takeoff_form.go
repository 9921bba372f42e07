package entities

// TakeoffForm is the in-memory editing state of one takeoff: the header
// fields plus every row collection. It is what the dirty tracker snapshots.
type TakeoffForm struct {
	TakeoffFields
	Rows RowCollections `json:"rows"`
}

// NewTakeoffForm returns an empty form with defaults applied.
func NewTakeoffForm(workType WorkType) TakeoffForm {
	f := TakeoffForm{
		TakeoffFields: TakeoffFields{WorkType: workType}.Normalize(),
		Rows: RowCollections{
			MPTRows:  map[string][]MPTSignRow{},
			PermRows: map[string][]PermSignRow{},
		},
	}
	return f
}

// Clone returns a deep copy so callers can mutate it without touching the session.
func (f TakeoffForm) Clone() TakeoffForm {
	out := f
	if f.FlaggingDates != nil {
		d := *f.FlaggingDates
		out.FlaggingDates = &d
	}
	out.Rows = f.Rows.Clone()
	return out
}
