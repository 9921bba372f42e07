package response

import (
	"time"

	"etc_takeoffs/internal/domain/entities"
	"etc_takeoffs/internal/usecase"
)

type TakeoffResponse struct {
	entities.Takeoff
	WorkTypeLabel string `json:"work_type_label"`
	Destination   string `json:"destination"`
	ItemCount     int    `json:"item_count"`
}

type LoadedTakeoffResponse struct {
	Takeoff              TakeoffResponse        `json:"takeoff"`
	LinkedWorkOrder      *entities.WorkOrderRef `json:"linked_work_order,omitempty"`
	ManufacturingStarted bool                   `json:"manufacturing_started"`
	Locked               bool                   `json:"locked"`
}

func FromTakeoff(t entities.Takeoff) TakeoffResponse {
	if t.Items == nil {
		t.Items = []entities.TakeoffItem{}
	}
	return TakeoffResponse{
		Takeoff:       t,
		WorkTypeLabel: t.WorkType.Label(),
		Destination:   string(t.WorkType.Destination()),
		ItemCount:     len(t.Items),
	}
}

// FromLoadedTakeoff marks submitted and canceled takeoffs as locked for editing.
func FromLoadedTakeoff(l entities.LoadedTakeoff) LoadedTakeoffResponse {
	return LoadedTakeoffResponse{
		Takeoff:              FromTakeoff(l.Takeoff),
		LinkedWorkOrder:      l.LinkedWorkOrder,
		ManufacturingStarted: l.ManufacturingStarted,
		Locked:               l.Takeoff.Status != entities.TakeoffStatusDraft,
	}
}

type SubmissionProblemResponse struct {
	Code        string `json:"code"`
	Message     string `json:"message"`
	SectionKey  string `json:"section_key,omitempty"`
	ItemNumber  string `json:"item_number,omitempty"`
	Designation string `json:"designation,omitempty"`
}

type PreviewResponse struct {
	Items            []entities.TakeoffItem     `json:"items"`
	SandbagQuantity  int                        `json:"sandbag_quantity"`
	Destination      string                     `json:"destination"`
	DestinationLabel string                     `json:"destination_label"`
	Problem          *SubmissionProblemResponse `json:"problem,omitempty"`
}

func FromPreview(p usecase.PreviewResult) PreviewResponse {
	items := p.Items
	if items == nil {
		items = []entities.TakeoffItem{}
	}
	resp := PreviewResponse{
		Items:            items,
		SandbagQuantity:  p.SandbagQuantity,
		Destination:      string(p.Destination),
		DestinationLabel: p.Destination.Label(),
	}
	if p.Problem != nil {
		resp.Problem = &SubmissionProblemResponse{
			Code:        string(p.Problem.Code),
			Message:     p.Problem.Message,
			SectionKey:  p.Problem.SectionKey,
			ItemNumber:  p.Problem.ItemNumber,
			Designation: p.Problem.Designation,
		}
	}
	return resp
}

type FabricationRequestResponse struct {
	ID                     string     `json:"id"`
	TakeoffID              string     `json:"takeoff_id"`
	Destination            string     `json:"destination"`
	DestinationLabel       string     `json:"destination_label"`
	RevisionNumber         int        `json:"revision_number"`
	ManufacturingStarted   bool       `json:"manufacturing_started"`
	ManufacturingStartedAt *time.Time `json:"manufacturing_started_at,omitempty"`
	CreatedAt              time.Time  `json:"created_at"`
}

func FromFabricationRequest(r entities.FabricationRequest) FabricationRequestResponse {
	return FabricationRequestResponse{
		ID:                     r.ID,
		TakeoffID:              r.TakeoffID,
		Destination:            string(r.Destination),
		DestinationLabel:       r.Destination.Label(),
		RevisionNumber:         r.RevisionNumber,
		ManufacturingStarted:   r.ManufacturingStarted,
		ManufacturingStartedAt: r.ManufacturingStartedAt,
		CreatedAt:              r.CreatedAt,
	}
}
