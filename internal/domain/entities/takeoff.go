package entities

import (
	"strings"
	"time"
)

// TakeoffStatus represents the lifecycle of a takeoff.
//
// Domain notes:
//   - "submitted" is derived: any status that is neither draft nor canceled.
//   - Only the lifecycle state machine moves a takeoff between statuses.

type TakeoffStatus string

const (
	TakeoffStatusDraft           TakeoffStatus = "draft"
	TakeoffStatusSentToBuildShop TakeoffStatus = "sent_to_build_shop"
	TakeoffStatusSentToSignShop  TakeoffStatus = "sent_to_sign_shop"
	TakeoffStatusCanceled        TakeoffStatus = "canceled"
)

func (s TakeoffStatus) Valid() bool {
	switch s {
	case TakeoffStatusDraft, TakeoffStatusSentToBuildShop, TakeoffStatusSentToSignShop, TakeoffStatusCanceled:
		return true
	}
	return false
}

func (s TakeoffStatus) IsSubmitted() bool {
	return s == TakeoffStatusSentToBuildShop || s == TakeoffStatusSentToSignShop
}

type Priority string

const (
	PriorityUrgent   Priority = "urgent"
	PriorityStandard Priority = "standard"
	PriorityLow      Priority = "low"
)

func (p Priority) Valid() bool {
	return p == PriorityUrgent || p == PriorityStandard || p == PriorityLow
}

const (
	ContractedWork = "contracted"
	AdditionalWork = "additional"
)

// DateLayout is the wire and storage format of takeoff calendar dates.
const DateLayout = "2006-01-02"

// DateRange is the span of a multi-day flagging job.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Valid reports whether both ends parse and End is not before Start.
func (r DateRange) Valid() bool {
	start, err := time.Parse(DateLayout, r.Start)
	if err != nil {
		return false
	}
	end, err := time.Parse(DateLayout, r.End)
	if err != nil {
		return false
	}
	return !end.Before(start)
}

// TakeoffFields are the editable, persisted header fields of a takeoff.
type TakeoffFields struct {
	JobID                  string       `json:"job_id"`
	Title                  string       `json:"title"`
	WorkType               WorkType     `json:"work_type"`
	Priority               Priority     `json:"priority"`
	WorkOrderNumber        string       `json:"work_order_number,omitempty"`
	ContractedOrAdditional string       `json:"contracted_or_additional"`
	InstallDate            string       `json:"install_date,omitempty"`
	PickupDate             string       `json:"pickup_date,omitempty"`
	NeededByDate           string       `json:"needed_by_date,omitempty"`
	FlaggingDates          *DateRange   `json:"flagging_dates,omitempty"`
	CrewNotes              string       `json:"crew_notes,omitempty"`
	ShopNotes              string       `json:"shop_notes,omitempty"`
	PrivateNotes           string       `json:"private_notes,omitempty"`
	DefaultMaterial        SignMaterial `json:"default_material"`
}

// Normalize trims free text and fills defaults for optional enumerations.
func (f TakeoffFields) Normalize() TakeoffFields {
	f.JobID = strings.TrimSpace(f.JobID)
	f.Title = strings.TrimSpace(f.Title)
	f.WorkOrderNumber = strings.TrimSpace(f.WorkOrderNumber)
	f.CrewNotes = strings.TrimSpace(f.CrewNotes)
	f.ShopNotes = strings.TrimSpace(f.ShopNotes)
	f.PrivateNotes = strings.TrimSpace(f.PrivateNotes)
	if f.Priority == "" {
		f.Priority = PriorityStandard
	}
	if f.ContractedOrAdditional == "" {
		f.ContractedOrAdditional = ContractedWork
	}
	if f.DefaultMaterial == "" {
		f.DefaultMaterial = DefaultSignMaterial
	}
	return f
}

// Takeoff is the aggregate root: a materials/equipment list routed to a shop.
//
// Storage model (DynamoDB):
//   - PK: id
//   - items are stored inline and replaced in full on every save
type Takeoff struct {
	ID string `json:"id"`
	TakeoffFields
	Status         TakeoffStatus `json:"status"`
	RevisionNumber int           `json:"revision_number"`
	RevisedFromID  string        `json:"revised_from_id,omitempty"`
	Items          []TakeoffItem `json:"items"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// LoadedTakeoff is everything the lifecycle engine needs to resume a persisted takeoff.
type LoadedTakeoff struct {
	Takeoff              Takeoff       `json:"takeoff"`
	LinkedWorkOrder      *WorkOrderRef `json:"linked_work_order,omitempty"`
	ManufacturingStarted bool          `json:"manufacturing_started"`
}

// WorkOrderRef identifies the single work order generated from a takeoff.
type WorkOrderRef struct {
	ID     string `json:"id"`
	Number string `json:"number"`
}

// LinkedWorkOrder is the persisted work order record; PK is the takeoff id,
// which keeps generation idempotent.
type LinkedWorkOrder struct {
	TakeoffID string    `json:"takeoff_id"`
	ID        string    `json:"id"`
	Number    string    `json:"number"`
	CreatedAt time.Time `json:"created_at"`
}

func (w LinkedWorkOrder) Ref() WorkOrderRef {
	return WorkOrderRef{ID: w.ID, Number: w.Number}
}
