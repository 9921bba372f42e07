package entities

import (
	"strings"
	"time"
)

type CancellationReason string

const (
	CancellationReasonJobCanceled     CancellationReason = "job_canceled"
	CancellationReasonCustomerRequest CancellationReason = "customer_request"
	CancellationReasonScopeChange     CancellationReason = "scope_change"
	CancellationReasonDuplicate       CancellationReason = "duplicate"
	CancellationReasonOther           CancellationReason = "other"
)

var cancellationReasonLabels = map[CancellationReason]string{
	CancellationReasonJobCanceled:     "Job canceled",
	CancellationReasonCustomerRequest: "Customer request",
	CancellationReasonScopeChange:     "Scope change",
	CancellationReasonDuplicate:       "Duplicate takeoff",
	CancellationReasonOther:           "Other",
}

// CancellationReasons lists every reason in display order.
func CancellationReasons() []CancellationReason {
	return []CancellationReason{
		CancellationReasonJobCanceled,
		CancellationReasonCustomerRequest,
		CancellationReasonScopeChange,
		CancellationReasonDuplicate,
		CancellationReasonOther,
	}
}

func (r CancellationReason) Valid() bool {
	_, ok := cancellationReasonLabels[r]
	return ok
}

func (r CancellationReason) Label() string {
	if l, ok := cancellationReasonLabels[r]; ok {
		return l
	}
	return string(r)
}

// RequiresNotes reports whether free-text notes must accompany the reason.
func (r CancellationReason) RequiresNotes(notes string) bool {
	return r == CancellationReasonOther && strings.TrimSpace(notes) == ""
}

// CancellationRecord is appended once per cancellation and never removed,
// including when the takeoff is later reopened.
type CancellationRecord struct {
	ID             string             `json:"id"`
	TakeoffID      string             `json:"takeoff_id"`
	Reason         CancellationReason `json:"reason"`
	Notes          string             `json:"notes,omitempty"`
	PreviousStatus TakeoffStatus      `json:"previous_status"`
	CanceledAt     time.Time          `json:"canceled_at"`
}

// FabricationRequest is the shop-side work item created by a submission.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (takeoff_id-index): takeoff_id
type FabricationRequest struct {
	ID                     string      `json:"id"`
	TakeoffID              string      `json:"takeoff_id"`
	Destination            Destination `json:"destination"`
	RevisionNumber         int         `json:"revision_number"`
	ManufacturingStarted   bool        `json:"manufacturing_started"`
	ManufacturingStartedAt *time.Time  `json:"manufacturing_started_at,omitempty"`
	CreatedAt              time.Time   `json:"created_at"`
}

// AnyManufacturingStarted reports whether a shop has begun work on any request.
func AnyManufacturingStarted(reqs []FabricationRequest) bool {
	for _, r := range reqs {
		if r.ManufacturingStarted {
			return true
		}
	}
	return false
}
