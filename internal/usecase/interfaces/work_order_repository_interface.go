package interfaces

import (
	"context"

	"etc_takeoffs/internal/domain/entities"
)

//go:generate mockgen -source=work_order_repository_interface.go -destination=mocks/mock_work_order_repository_interface.go -package=mock_interfaces

// IWorkOrderRepository stores at most one work order per takeoff.
//
// CreateIfAbsent returns created=false together with the existing record when
// the takeoff already has one.

type IWorkOrderRepository interface {
	CreateIfAbsent(ctx context.Context, wo entities.LinkedWorkOrder) (existing entities.LinkedWorkOrder, created bool, err error)
	GetByTakeoffID(ctx context.Context, takeoffID string) (entities.LinkedWorkOrder, error)
}
