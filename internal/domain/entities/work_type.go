package entities

// WorkType is the kind of field work a takeoff supplies material for.
// It is fixed once the takeoff has been saved.
type WorkType string

const (
	WorkTypeMPT            WorkType = "MPT"
	WorkTypePermanentSigns WorkType = "PERMANENT_SIGNS"
	WorkTypeFlagging       WorkType = "FLAGGING"
	WorkTypeLaneClosure    WorkType = "LANE_CLOSURE"
	WorkTypeService        WorkType = "SERVICE"
	WorkTypeDelivery       WorkType = "DELIVERY"
	WorkTypeRental         WorkType = "RENTAL"
)

var workTypeLabels = map[WorkType]string{
	WorkTypeMPT:            "MPT (Maintenance & Protection of Traffic)",
	WorkTypePermanentSigns: "Permanent Signs",
	WorkTypeFlagging:       "Flagging",
	WorkTypeLaneClosure:    "Lane Closure",
	WorkTypeService:        "Service",
	WorkTypeDelivery:       "Delivery",
	WorkTypeRental:         "Rental",
}

// WorkTypes lists every work type in display order.
func WorkTypes() []WorkType {
	return []WorkType{
		WorkTypeMPT,
		WorkTypePermanentSigns,
		WorkTypeFlagging,
		WorkTypeLaneClosure,
		WorkTypeService,
		WorkTypeDelivery,
		WorkTypeRental,
	}
}

func (w WorkType) Valid() bool {
	_, ok := workTypeLabels[w]
	return ok
}

func (w WorkType) Label() string {
	if l, ok := workTypeLabels[w]; ok {
		return l
	}
	return string(w)
}

// UsesMPTSections reports whether the work type is built from MPT structure sections.
func (w WorkType) UsesMPTSections() bool {
	return w == WorkTypeMPT || w == WorkTypeFlagging
}

func (w WorkType) IsPermanentSigns() bool {
	return w == WorkTypePermanentSigns
}

// Destination routes a work type to its fabrication shop. Permanent signs go
// to the sign shop; everything else, including unknown values, goes to the
// build shop.
func (w WorkType) Destination() Destination {
	if w == WorkTypePermanentSigns {
		return DestinationSignShop
	}
	return DestinationBuildShop
}

// Destination is a fabrication shop a takeoff can be routed to.
type Destination string

const (
	DestinationBuildShop Destination = "build_shop"
	DestinationSignShop  Destination = "sign_shop"
)

func (d Destination) Valid() bool {
	return d == DestinationBuildShop || d == DestinationSignShop
}

// SubmittedStatus is the takeoff status a successful submission to d produces.
func (d Destination) SubmittedStatus() TakeoffStatus {
	if d == DestinationSignShop {
		return TakeoffStatusSentToSignShop
	}
	return TakeoffStatusSentToBuildShop
}

func (d Destination) Label() string {
	if d == DestinationSignShop {
		return "Sign Shop"
	}
	return "Build Shop"
}
