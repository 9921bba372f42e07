package usecase

import (
	"errors"
	"fmt"

	"etc_takeoffs/internal/domain/entities"
)

var ErrInvalidTransition = errors.New("invalid transition")

// LifecycleState is the takeoff's position in the lifecycle, derived from
// whether it has been persisted and its status.
type LifecycleState string

const (
	StateDraftUnsaved       LifecycleState = "draft_unsaved"
	StateDraftSaved         LifecycleState = "draft_saved"
	StateSubmittedBuildShop LifecycleState = "submitted_build_shop"
	StateSubmittedSignShop  LifecycleState = "submitted_sign_shop"
	StateCanceled           LifecycleState = "canceled"
)

type LifecycleEvent string

const (
	EventSave              LifecycleEvent = "save"
	EventSubmitBuildShop   LifecycleEvent = "submit_build_shop"
	EventSubmitSignShop    LifecycleEvent = "submit_sign_shop"
	EventCancel            LifecycleEvent = "cancel"
	EventReopen            LifecycleEvent = "reopen"
	EventCreateRevision    LifecycleEvent = "create_revision"
	EventGenerateWorkOrder LifecycleEvent = "generate_work_order"
)

// transitionGuard is evaluated after the table allows an event.
type transitionGuard func(g LifecycleGuards) bool

// LifecycleGuards carries the facts guards need beyond the state itself.
type LifecycleGuards struct {
	ManufacturingStarted bool
}

type transition struct {
	to    LifecycleState
	guard transitionGuard
}

func manufacturingNotStarted(g LifecycleGuards) bool { return !g.ManufacturingStarted }
func manufacturingStarted(g LifecycleGuards) bool    { return g.ManufacturingStarted }

// lifecycleTable is the only place that decides which event is legal where.
// A target equal to the source means the event does not move the takeoff
// (revision spawns a separate record; work orders are linked records).
var lifecycleTable = map[LifecycleState]map[LifecycleEvent]transition{
	StateDraftUnsaved: {
		EventSave:            {to: StateDraftSaved},
		EventSubmitBuildShop: {to: StateSubmittedBuildShop},
		EventSubmitSignShop:  {to: StateSubmittedSignShop},
	},
	StateDraftSaved: {
		EventSave:              {to: StateDraftSaved},
		EventSubmitBuildShop:   {to: StateSubmittedBuildShop},
		EventSubmitSignShop:    {to: StateSubmittedSignShop},
		EventCancel:            {to: StateCanceled},
		EventGenerateWorkOrder: {to: StateDraftSaved},
	},
	StateSubmittedBuildShop: {
		EventCancel:            {to: StateCanceled},
		EventCreateRevision:    {to: StateSubmittedBuildShop},
		EventGenerateWorkOrder: {to: StateSubmittedBuildShop},
	},
	StateSubmittedSignShop: {
		EventCancel:            {to: StateCanceled},
		EventCreateRevision:    {to: StateSubmittedSignShop},
		EventGenerateWorkOrder: {to: StateSubmittedSignShop},
	},
	StateCanceled: {
		EventReopen:         {to: StateDraftSaved, guard: manufacturingNotStarted},
		EventCreateRevision: {to: StateCanceled, guard: manufacturingStarted},
	},
}

// DeriveState maps the persisted facts of a takeoff onto a lifecycle state.
func DeriveState(id string, status entities.TakeoffStatus) LifecycleState {
	switch status {
	case entities.TakeoffStatusSentToBuildShop:
		return StateSubmittedBuildShop
	case entities.TakeoffStatusSentToSignShop:
		return StateSubmittedSignShop
	case entities.TakeoffStatusCanceled:
		return StateCanceled
	}
	if id == "" {
		return StateDraftUnsaved
	}
	return StateDraftSaved
}

func (s LifecycleState) IsDraft() bool {
	return s == StateDraftUnsaved || s == StateDraftSaved
}

func (s LifecycleState) IsSubmitted() bool {
	return s == StateSubmittedBuildShop || s == StateSubmittedSignShop
}

// SubmittedTo reports the destination a submitted state was routed to.
func (s LifecycleState) SubmittedTo() (entities.Destination, bool) {
	switch s {
	case StateSubmittedBuildShop:
		return entities.DestinationBuildShop, true
	case StateSubmittedSignShop:
		return entities.DestinationSignShop, true
	}
	return "", false
}

// Can reports whether the event is legal from s under the given guards.
func (s LifecycleState) Can(e LifecycleEvent, g LifecycleGuards) bool {
	t, ok := lifecycleTable[s][e]
	if !ok {
		return false
	}
	return t.guard == nil || t.guard(g)
}

// Next returns the state the event leads to, or ErrInvalidTransition.
func (s LifecycleState) Next(e LifecycleEvent, g LifecycleGuards) (LifecycleState, error) {
	if !s.Can(e, g) {
		return s, fmt.Errorf("%w: action '%s' not allowed from state '%s'", ErrInvalidTransition, e, s)
	}
	return lifecycleTable[s][e].to, nil
}

// SubmitEvent is the submit event for a destination.
func SubmitEvent(d entities.Destination) LifecycleEvent {
	if d == entities.DestinationSignShop {
		return EventSubmitSignShop
	}
	return EventSubmitBuildShop
}
