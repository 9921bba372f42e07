package interfaces

import (
	"context"

	"etc_takeoffs/internal/domain/entities"
)

//go:generate mockgen -source=fabrication_request_repository_interface.go -destination=mocks/mock_fabrication_request_repository_interface.go -package=mock_interfaces

// IFabricationRequestRepository abstracts DynamoDB persistence for the shop
// requests created by submissions.

type IFabricationRequestRepository interface {
	Create(ctx context.Context, r entities.FabricationRequest) (entities.FabricationRequest, error)
	ListByTakeoffID(ctx context.Context, takeoffID string) ([]entities.FabricationRequest, error)
	MarkManufacturingStarted(ctx context.Context, id string) (entities.FabricationRequest, error)
}
