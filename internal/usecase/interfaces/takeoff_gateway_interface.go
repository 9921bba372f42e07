package interfaces

import (
	"context"

	"etc_takeoffs/internal/domain/entities"
)

//go:generate mockgen -source=takeoff_gateway_interface.go -destination=mocks/mock_takeoff_gateway_interface.go -package=mock_interfaces

type UpsertResult struct {
	TakeoffID string                 `json:"takeoff_id"`
	Status    entities.TakeoffStatus `json:"status,omitempty"`
	ItemCount int                    `json:"item_count"`
}

// SubmitResult carries BuildRequestID for build shop submissions and
// TakeoffID for sign shop submissions.
type SubmitResult struct {
	BuildRequestID string                 `json:"build_request_id,omitempty"`
	TakeoffID      string                 `json:"takeoff_id,omitempty"`
	TakeoffStatus  entities.TakeoffStatus `json:"takeoff_status,omitempty"`
}

type TransitionResult struct {
	TakeoffStatus entities.TakeoffStatus `json:"takeoff_status,omitempty"`
}

// RevisionResult describes the new draft, not the source takeoff.
type RevisionResult struct {
	TakeoffID      string                 `json:"takeoff_id"`
	RevisionNumber int                    `json:"revision_number"`
	TakeoffStatus  entities.TakeoffStatus `json:"takeoff_status,omitempty"`
}

// ITakeoffGateway is the remote side of the takeoff lifecycle. Structured
// rejections come back as *entities.GatewayError; anything else is a
// transport failure.
type ITakeoffGateway interface {
	Upsert(ctx context.Context, id string, fields entities.TakeoffFields, items []entities.TakeoffItem) (UpsertResult, error)
	SubmitToBuildShop(ctx context.Context, id string) (SubmitResult, error)
	SubmitToSignShop(ctx context.Context, id string) (SubmitResult, error)
	Cancel(ctx context.Context, id string, reason entities.CancellationReason, notes string) (TransitionResult, error)
	Reopen(ctx context.Context, id string) (TransitionResult, error)
	CreateRevision(ctx context.Context, id string) (RevisionResult, error)
	GenerateLinkedWorkOrder(ctx context.Context, id string) (entities.WorkOrderRef, error)
	Load(ctx context.Context, id string) (entities.LoadedTakeoff, error)
}
