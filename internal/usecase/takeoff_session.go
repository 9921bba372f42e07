package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"etc_takeoffs/internal/domain/catalog"
	"etc_takeoffs/internal/domain/entities"
	"etc_takeoffs/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrActionInProgress = errors.New("another action is in progress")
	ErrNotEditable      = errors.New("takeoff is not editable")
	ErrWorkTypeLocked   = errors.New("work type cannot change after the first save")
	ErrNotSaved         = errors.New("takeoff has not been saved")
	ErrMissingTakeoffID = errors.New("save returned no takeoff id")
)

// TakeoffSession is the editing engine for one takeoff. It owns the form,
// the dirty baseline and the lifecycle state, and talks to the gateway for
// everything that must be persisted. Only one action runs at a time.
type TakeoffSession struct {
	gateway    interfaces.ITakeoffGateway
	aggregator *ItemAggregator
	validator  *SubmissionValidator

	busy atomic.Bool

	mu                   sync.Mutex
	id                   string
	status               entities.TakeoffStatus
	revision             int
	revisedFromID        string
	form                 entities.TakeoffForm
	tracker              *DirtyTracker
	editMode             bool
	manufacturingStarted bool
	linkedWorkOrder      *entities.WorkOrderRef
}

// NewTakeoffSession starts an unsaved draft in edit mode.
func NewTakeoffSession(gateway interfaces.ITakeoffGateway, cat *catalog.Catalog, workType entities.WorkType) *TakeoffSession {
	form := entities.NewTakeoffForm(workType)
	return &TakeoffSession{
		gateway:    gateway,
		aggregator: NewItemAggregator(cat),
		validator:  NewSubmissionValidator(cat),
		status:     entities.TakeoffStatusDraft,
		revision:   1,
		form:       form,
		tracker:    NewDirtyTracker(form),
		editMode:   true,
	}
}

// OpenTakeoffSession loads a persisted takeoff in view mode.
func OpenTakeoffSession(ctx context.Context, gateway interfaces.ITakeoffGateway, cat *catalog.Catalog, id string) (*TakeoffSession, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidTakeoffID
	}
	loaded, err := gateway.Load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load takeoff %s: %w", id, err)
	}

	s := &TakeoffSession{
		gateway:    gateway,
		aggregator: NewItemAggregator(cat),
		validator:  NewSubmissionValidator(cat),
	}
	t := loaded.Takeoff
	s.id = t.ID
	s.status = t.Status
	s.revision = t.RevisionNumber
	s.revisedFromID = t.RevisedFromID
	s.form = entities.TakeoffForm{
		TakeoffFields: t.TakeoffFields.Normalize(),
		Rows:          s.aggregator.RowsFromItems(t.DefaultMaterial, t.Items),
	}
	s.tracker = NewDirtyTracker(s.form)
	s.manufacturingStarted = loaded.ManufacturingStarted
	s.linkedWorkOrder = loaded.LinkedWorkOrder
	return s, nil
}

func (s *TakeoffSession) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

func (s *TakeoffSession) Status() entities.TakeoffStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *TakeoffSession) RevisionNumber() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision
}

func (s *TakeoffSession) RevisedFromID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revisedFromID
}

func (s *TakeoffSession) ManufacturingStarted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.manufacturingStarted
}

func (s *TakeoffSession) LinkedWorkOrder() *entities.WorkOrderRef {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.linkedWorkOrder == nil {
		return nil
	}
	ref := *s.linkedWorkOrder
	return &ref
}

// Form returns a copy of the current editing state.
func (s *TakeoffSession) Form() entities.TakeoffForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.Clone()
}

func (s *TakeoffSession) State() LifecycleState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// Payload is the item set a save would persist, derived sandbag line included.
func (s *TakeoffSession) Payload() []entities.TakeoffItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.payloadLocked()
}

func (s *TakeoffSession) IsDirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.IsDirty(s.form)
}

// CanEdit is true only for drafts in edit mode.
func (s *TakeoffSession) CanEdit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editMode && s.stateLocked().IsDraft()
}

func (s *TakeoffSession) CanReopen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked().Can(EventReopen, s.guardsLocked())
}

// EnterEditMode unlocks editing for a draft opened in view mode.
func (s *TakeoffSession) EnterEditMode() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.stateLocked().Can(EventSave, s.guardsLocked()) {
		return ErrNotEditable
	}
	s.editMode = true
	return nil
}

// Update applies fn to a copy of the form and keeps the result. The work type
// is fixed once the takeoff has an id. New sign rows get their ids here.
func (s *TakeoffSession) Update(fn func(f *entities.TakeoffForm)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.editMode || !s.stateLocked().IsDraft() {
		return ErrNotEditable
	}
	next := s.form.Clone()
	fn(&next)
	if s.id != "" && next.WorkType != s.form.WorkType {
		return ErrWorkTypeLocked
	}
	if next.Rows.MPTRows == nil {
		next.Rows.MPTRows = map[string][]entities.MPTSignRow{}
	}
	if next.Rows.PermRows == nil {
		next.Rows.PermRows = map[string][]entities.PermSignRow{}
	}
	next.Rows.AssignSignIDs(uuid.NewString)
	s.form = next
	return nil
}

func (s *TakeoffSession) SetWorkType(wt entities.WorkType) error {
	return s.Update(func(f *entities.TakeoffForm) { f.WorkType = wt })
}

// Save persists the form. Validation failures never reach the gateway.
func (s *TakeoffSession) Save(ctx context.Context) error {
	if !s.begin() {
		return ErrActionInProgress
	}
	defer s.end()

	if !s.CanEdit() {
		return ErrNotEditable
	}
	return s.save(ctx)
}

// Submit sends the takeoff to the shop its work type routes to.
func (s *TakeoffSession) Submit(ctx context.Context) error {
	s.mu.Lock()
	dest := s.form.WorkType.Destination()
	s.mu.Unlock()
	return s.submit(ctx, dest)
}

func (s *TakeoffSession) SubmitToBuildShop(ctx context.Context) error {
	return s.submit(ctx, entities.DestinationBuildShop)
}

func (s *TakeoffSession) SubmitToSignShop(ctx context.Context) error {
	return s.submit(ctx, entities.DestinationSignShop)
}

func (s *TakeoffSession) submit(ctx context.Context, dest entities.Destination) error {
	if !s.begin() {
		return ErrActionInProgress
	}
	defer s.end()

	s.mu.Lock()
	state := s.stateLocked()
	if to, ok := state.SubmittedTo(); ok && to == dest {
		s.mu.Unlock()
		return nil
	}
	if _, err := state.Next(SubmitEvent(dest), s.guardsLocked()); err != nil {
		s.mu.Unlock()
		return err
	}
	items := s.payloadLocked()
	if problem := s.validator.CheckSubmission(dest, s.form.WorkType, s.form.Rows, items); problem != nil {
		s.mu.Unlock()
		return problem
	}
	needsSave := s.editMode && (s.id == "" || s.tracker.IsDirty(s.form))
	s.mu.Unlock()

	if needsSave {
		if err := s.save(ctx); err != nil {
			return err
		}
	}

	id := s.ID()
	if id == "" {
		return ErrNotSaved
	}

	zap.L().Info("[takeoff][session] submit",
		zap.String("takeoff_id", id),
		zap.String("destination", string(dest)))

	var (
		res interfaces.SubmitResult
		err error
	)
	if dest == entities.DestinationSignShop {
		res, err = s.gateway.SubmitToSignShop(ctx, id)
	} else {
		res, err = s.gateway.SubmitToBuildShop(ctx, id)
	}
	if err != nil {
		if entities.HasCode(err, entities.CodeDuplicateRequest) {
			zap.L().Info("[takeoff][session] duplicate submit treated as success", zap.String("takeoff_id", id))
			s.mu.Lock()
			s.status = dest.SubmittedStatus()
			s.editMode = false
			s.mu.Unlock()
			return nil
		}
		return fmt.Errorf("submit to %s: %w", dest, err)
	}

	if err := s.applyStatus(ctx, res.TakeoffStatus); err != nil {
		return err
	}
	s.mu.Lock()
	s.editMode = false
	s.mu.Unlock()
	return nil
}

// Cancel records a cancellation. Notes are required for reason "other".
func (s *TakeoffSession) Cancel(ctx context.Context, reason entities.CancellationReason, notes string) error {
	if !s.begin() {
		return ErrActionInProgress
	}
	defer s.end()

	if !reason.Valid() {
		return ErrInvalidCancellationReason
	}
	if reason.RequiresNotes(notes) {
		return ErrCancellationNotesRequired
	}

	s.mu.Lock()
	id := s.id
	_, err := s.stateLocked().Next(EventCancel, s.guardsLocked())
	s.mu.Unlock()
	if err != nil {
		return err
	}

	res, err := s.gateway.Cancel(ctx, id, reason, strings.TrimSpace(notes))
	if err != nil {
		return fmt.Errorf("cancel takeoff: %w", err)
	}
	if err := s.applyStatus(ctx, res.TakeoffStatus); err != nil {
		return err
	}
	s.mu.Lock()
	s.editMode = false
	s.mu.Unlock()
	return nil
}

// Reopen returns a canceled takeoff to draft unless a shop has started
// manufacturing it.
func (s *TakeoffSession) Reopen(ctx context.Context) error {
	if !s.begin() {
		return ErrActionInProgress
	}
	defer s.end()

	s.mu.Lock()
	id := s.id
	state := s.stateLocked()
	guards := s.guardsLocked()
	s.mu.Unlock()

	if state == StateCanceled && guards.ManufacturingStarted {
		return entities.NewGatewayError(entities.CodeManufacturingStarted, "")
	}
	if _, err := state.Next(EventReopen, guards); err != nil {
		return err
	}

	res, err := s.gateway.Reopen(ctx, id)
	if err != nil {
		if entities.HasCode(err, entities.CodeManufacturingStarted) {
			s.mu.Lock()
			s.manufacturingStarted = true
			s.mu.Unlock()
		}
		return fmt.Errorf("reopen takeoff: %w", err)
	}
	if err := s.applyStatus(ctx, res.TakeoffStatus); err != nil {
		return err
	}
	s.mu.Lock()
	s.editMode = s.stateLocked().IsDraft()
	s.mu.Unlock()
	return nil
}

// CreateRevision spawns a new draft from this takeoff. The session keeps
// pointing at the source; callers open the returned id.
func (s *TakeoffSession) CreateRevision(ctx context.Context) (interfaces.RevisionResult, error) {
	if !s.begin() {
		return interfaces.RevisionResult{}, ErrActionInProgress
	}
	defer s.end()

	s.mu.Lock()
	id := s.id
	_, err := s.stateLocked().Next(EventCreateRevision, s.guardsLocked())
	s.mu.Unlock()
	if err != nil {
		return interfaces.RevisionResult{}, err
	}

	res, err := s.gateway.CreateRevision(ctx, id)
	if err != nil {
		return interfaces.RevisionResult{}, fmt.Errorf("create revision: %w", err)
	}
	zap.L().Info("[takeoff][session] revision created",
		zap.String("source_id", id),
		zap.String("takeoff_id", res.TakeoffID))
	return res, nil
}

// GenerateLinkedWorkOrder returns the takeoff's work order, creating it on
// first use. An existing work order is returned as success.
func (s *TakeoffSession) GenerateLinkedWorkOrder(ctx context.Context) (entities.WorkOrderRef, error) {
	if !s.begin() {
		return entities.WorkOrderRef{}, ErrActionInProgress
	}
	defer s.end()

	s.mu.Lock()
	if s.linkedWorkOrder != nil {
		ref := *s.linkedWorkOrder
		s.mu.Unlock()
		return ref, nil
	}
	state := s.stateLocked()
	needsSave := s.editMode && state.IsDraft() && (s.id == "" || s.tracker.IsDirty(s.form))
	s.mu.Unlock()

	if needsSave {
		if err := s.save(ctx); err != nil {
			return entities.WorkOrderRef{}, err
		}
	}

	s.mu.Lock()
	id := s.id
	_, err := s.stateLocked().Next(EventGenerateWorkOrder, s.guardsLocked())
	s.mu.Unlock()
	if err != nil {
		return entities.WorkOrderRef{}, err
	}

	ref, err := s.gateway.GenerateLinkedWorkOrder(ctx, id)
	if err != nil {
		ge, ok := entities.AsGatewayError(err)
		if !ok || ge.Code != entities.CodeWorkOrderExists {
			return entities.WorkOrderRef{}, fmt.Errorf("generate work order: %w", err)
		}
		ref = entities.WorkOrderRef{ID: ge.WorkOrderID, Number: ge.WorkOrderNumber}
	}

	s.mu.Lock()
	s.linkedWorkOrder = &ref
	s.mu.Unlock()
	return ref, nil
}

// save upserts the form; callers hold the busy flag.
func (s *TakeoffSession) save(ctx context.Context) error {
	s.mu.Lock()
	if _, err := s.stateLocked().Next(EventSave, s.guardsLocked()); err != nil {
		s.mu.Unlock()
		return err
	}
	fields := s.form.TakeoffFields.Normalize()
	if err := ValidateFields(fields); err != nil {
		s.mu.Unlock()
		return err
	}
	id := s.id
	items := s.payloadLocked()
	before := Snapshot(s.form)
	submitted := s.form.Clone()
	submitted.TakeoffFields = fields
	s.mu.Unlock()

	res, err := s.gateway.Upsert(ctx, id, fields, items)
	if err != nil {
		return fmt.Errorf("save takeoff: %w", err)
	}
	if strings.TrimSpace(res.TakeoffID) == "" {
		return fmt.Errorf("save takeoff: %w", ErrMissingTakeoffID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = res.TakeoffID
	if res.Status != "" {
		s.status = res.Status
	}
	// Edits made while the upsert was in flight stay dirty.
	if Snapshot(s.form) == before {
		s.form.TakeoffFields = fields
	}
	s.tracker.Reset(submitted)
	zap.L().Info("[takeoff][session] saved",
		zap.String("takeoff_id", s.id),
		zap.Int("items", res.ItemCount))
	return nil
}

// applyStatus takes the status the gateway reported, or reads it back when
// the result carried none.
func (s *TakeoffSession) applyStatus(ctx context.Context, status entities.TakeoffStatus) error {
	if status != "" {
		s.mu.Lock()
		s.status = status
		s.mu.Unlock()
		return nil
	}

	id := s.ID()
	loaded, err := s.gateway.Load(ctx, id)
	if err != nil {
		return fmt.Errorf("read back takeoff status: %w", err)
	}
	s.mu.Lock()
	s.status = loaded.Takeoff.Status
	s.manufacturingStarted = loaded.ManufacturingStarted
	if loaded.LinkedWorkOrder != nil {
		ref := *loaded.LinkedWorkOrder
		s.linkedWorkOrder = &ref
	}
	s.mu.Unlock()
	return nil
}

func (s *TakeoffSession) begin() bool {
	return s.busy.CompareAndSwap(false, true)
}

func (s *TakeoffSession) end() {
	s.busy.Store(false)
}

func (s *TakeoffSession) stateLocked() LifecycleState {
	return DeriveState(s.id, s.status)
}

func (s *TakeoffSession) guardsLocked() LifecycleGuards {
	return LifecycleGuards{ManufacturingStarted: s.manufacturingStarted}
}

func (s *TakeoffSession) payloadLocked() []entities.TakeoffItem {
	items := s.aggregator.BuildItemPayloads(s.form.WorkType, s.form.DefaultMaterial, s.form.Rows)
	if qty := s.aggregator.SandbagQuantity(s.form.WorkType, s.form.Rows); qty > 0 {
		items = append(items, AutoSandbagItem(qty))
	}
	return items
}

// UserFacingMessage turns any session or gateway error into the text shown
// to the user.
func UserFacingMessage(err error) string {
	if err == nil {
		return ""
	}
	var se *SubmissionError
	if errors.As(err, &se) {
		return se.Message
	}
	if ge, ok := entities.AsGatewayError(err); ok {
		if ge.Code == entities.CodeInvalidRequest && ge.Message != "" {
			return ge.Message
		}
		return entities.UserMessage(ge.Code)
	}
	switch {
	case errors.Is(err, ErrActionInProgress):
		return "Please wait for the current action to finish."
	case errors.Is(err, ErrTitleRequired),
		errors.Is(err, ErrInvalidWorkType),
		errors.Is(err, ErrInvalidPriority),
		errors.Is(err, ErrInvalidContractFlag),
		errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrInvalidDateRange),
		errors.Is(err, ErrInvalidMaterial),
		errors.Is(err, ErrInvalidCancellationReason),
		errors.Is(err, ErrCancellationNotesRequired):
		return err.Error()
	case errors.Is(err, ErrWorkTypeLocked):
		return entities.UserMessage(entities.CodeWorkTypeLocked)
	case errors.Is(err, ErrNotEditable), errors.Is(err, ErrInvalidTransition):
		return entities.UserMessage(entities.CodeInvalidTransition)
	}
	return entities.GenericFailureMessage
}
