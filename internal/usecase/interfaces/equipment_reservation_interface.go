package interfaces

import (
	"context"

	"etc_takeoffs/internal/domain/entities"
)

//go:generate mockgen -source=equipment_reservation_interface.go -destination=mocks/mock_equipment_reservation_interface.go -package=mock_interfaces

// IEquipmentReservation books the rolling stock named on a takeoff. It is
// called once, on the takeoff's first save.
type IEquipmentReservation interface {
	Reserve(ctx context.Context, takeoffID string, equipment []entities.TakeoffItem) error
}
