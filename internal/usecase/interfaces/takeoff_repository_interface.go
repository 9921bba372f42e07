package interfaces

import (
	"context"

	"etc_takeoffs/internal/domain/entities"
)

//go:generate mockgen -source=takeoff_repository_interface.go -destination=mocks/mock_takeoff_repository_interface.go -package=mock_interfaces

// ITakeoffRepository abstracts DynamoDB persistence for Takeoff.
//
// The store is last-writer-wins: Save replaces the whole record, items
// included. A zero-value Takeoff means "not found".

type ITakeoffRepository interface {
	Create(ctx context.Context, t entities.Takeoff) (entities.Takeoff, error)
	Save(ctx context.Context, t entities.Takeoff) (entities.Takeoff, error)
	GetByID(ctx context.Context, id string) (entities.Takeoff, error)
	UpdateStatus(ctx context.Context, id string, status entities.TakeoffStatus) (entities.Takeoff, error)
	AppendCancellation(ctx context.Context, rec entities.CancellationRecord) error
	ListCancellations(ctx context.Context, takeoffID string) ([]entities.CancellationRecord, error)
}
