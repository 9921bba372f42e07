package request

import (
	"strings"

	"etc_takeoffs/internal/domain/entities"
)

// UpsertTakeoffRequest is the body of POST /takeoffs and PUT /takeoffs/:id.
// Items replace the stored set in full.
type UpsertTakeoffRequest struct {
	entities.TakeoffFields
	Items []entities.TakeoffItem `json:"items"`
}

func (r UpsertTakeoffRequest) ResolveItems() []entities.TakeoffItem {
	if r.Items == nil {
		return []entities.TakeoffItem{}
	}
	return r.Items
}

type CancelTakeoffRequest struct {
	Reason string `json:"reason" binding:"required"`
	Notes  string `json:"notes"`
}

func (r CancelTakeoffRequest) ResolveReason() entities.CancellationReason {
	return entities.CancellationReason(strings.ToLower(strings.TrimSpace(r.Reason)))
}

// PreviewTakeoffRequest asks the server what a row set would become.
type PreviewTakeoffRequest struct {
	WorkType        entities.WorkType       `json:"work_type" binding:"required"`
	DefaultMaterial entities.SignMaterial   `json:"default_material"`
	Rows            entities.RowCollections `json:"rows"`
}
