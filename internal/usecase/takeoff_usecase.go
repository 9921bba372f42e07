package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"etc_takeoffs/internal/domain/catalog"
	"etc_takeoffs/internal/domain/entities"
	"etc_takeoffs/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidTakeoffID            = errors.New("invalid takeoff id")
	ErrTitleRequired               = errors.New("title is required")
	ErrInvalidWorkType             = errors.New("invalid work type")
	ErrInvalidPriority             = errors.New("invalid priority")
	ErrInvalidContractFlag         = errors.New("contracted_or_additional must be contracted or additional")
	ErrInvalidDate                 = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidDateRange            = errors.New("invalid flagging date range")
	ErrInvalidMaterial             = errors.New("invalid sign material")
	ErrInvalidItem                 = errors.New("invalid takeoff item")
	ErrInvalidCancellationReason   = errors.New("invalid cancellation reason")
	ErrCancellationNotesRequired   = errors.New("notes are required when the cancellation reason is other")
	ErrInvalidFabricationRequestID = errors.New("invalid fabrication request id")
	ErrFabricationRequestNotFound  = errors.New("fabrication request not found")
)

// PreviewResult is what the aggregator and validator make of a row set
// without persisting anything.
type PreviewResult struct {
	Items           []entities.TakeoffItem `json:"items"`
	SandbagQuantity int                    `json:"sandbag_quantity"`
	Destination     entities.Destination   `json:"destination"`
	Problem         *SubmissionError       `json:"-"`
}

//go:generate mockgen -source=takeoff_usecase.go -destination=../adapter/http/handlers/mocks/mock_takeoff_usecase.go -package=mocks

// ITakeoffUseCase is the server side of the takeoff lifecycle.
//
// It answers every gateway operation with either a result or a
// *entities.GatewayError, and adds the shop-facing manufacturing start.
type ITakeoffUseCase interface {
	interfaces.ITakeoffGateway
	Preview(workType entities.WorkType, defaultMaterial entities.SignMaterial, rows entities.RowCollections) PreviewResult
	MarkManufacturingStarted(ctx context.Context, requestID string) (entities.FabricationRequest, error)
}

type TakeoffUseCase struct {
	takeoffs    interfaces.ITakeoffRepository
	requests    interfaces.IFabricationRequestRepository
	workOrders  interfaces.IWorkOrderRepository
	reservation interfaces.IEquipmentReservation
	aggregator  *ItemAggregator
	validator   *SubmissionValidator
}

var _ ITakeoffUseCase = (*TakeoffUseCase)(nil)

// NewTakeoffUseCase wires the service. reservation may be nil when no
// equipment booking system is configured.
func NewTakeoffUseCase(
	takeoffs interfaces.ITakeoffRepository,
	requests interfaces.IFabricationRequestRepository,
	workOrders interfaces.IWorkOrderRepository,
	reservation interfaces.IEquipmentReservation,
	cat *catalog.Catalog,
) *TakeoffUseCase {
	return &TakeoffUseCase{
		takeoffs:    takeoffs,
		requests:    requests,
		workOrders:  workOrders,
		reservation: reservation,
		aggregator:  NewItemAggregator(cat),
		validator:   NewSubmissionValidator(cat),
	}
}

func (u *TakeoffUseCase) Upsert(ctx context.Context, id string, fields entities.TakeoffFields, items []entities.TakeoffItem) (interfaces.UpsertResult, error) {
	id = strings.TrimSpace(id)
	fields = fields.Normalize()
	if err := ValidateFields(fields); err != nil {
		return interfaces.UpsertResult{}, entities.WrapGatewayError(entities.CodeInvalidRequest, err)
	}
	if err := validateItems(items); err != nil {
		return interfaces.UpsertResult{}, entities.WrapGatewayError(entities.CodeInvalidRequest, err)
	}
	items = append([]entities.TakeoffItem{}, items...)
	now := time.Now().UTC()

	if id == "" {
		t := entities.Takeoff{
			ID:             uuid.NewString(),
			TakeoffFields:  fields,
			Status:         entities.TakeoffStatusDraft,
			RevisionNumber: 1,
			Items:          items,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		created, err := u.takeoffs.Create(ctx, t)
		if err != nil {
			return interfaces.UpsertResult{}, err
		}
		zap.L().Info("[takeoff][usecase] created",
			zap.String("takeoff_id", created.ID),
			zap.String("work_type", string(created.WorkType)),
			zap.Int("items", len(created.Items)))
		u.reserveEquipment(ctx, created)
		return interfaces.UpsertResult{TakeoffID: created.ID, Status: created.Status, ItemCount: len(created.Items)}, nil
	}

	existing, err := u.getTakeoff(ctx, id)
	if err != nil {
		return interfaces.UpsertResult{}, err
	}
	if _, err := DeriveState(existing.ID, existing.Status).Next(EventSave, LifecycleGuards{}); err != nil {
		return interfaces.UpsertResult{}, entities.WrapGatewayError(entities.CodeInvalidTransition, err)
	}
	if fields.WorkType != existing.WorkType {
		return interfaces.UpsertResult{}, entities.NewGatewayError(entities.CodeWorkTypeLocked, "")
	}

	existing.TakeoffFields = fields
	existing.Items = items
	existing.UpdatedAt = now
	saved, err := u.takeoffs.Save(ctx, existing)
	if err != nil {
		return interfaces.UpsertResult{}, err
	}
	if saved.ID == "" {
		return interfaces.UpsertResult{}, entities.NewGatewayError(entities.CodeTakeoffNotFound, "")
	}
	zap.L().Info("[takeoff][usecase] saved",
		zap.String("takeoff_id", saved.ID),
		zap.Int("items", len(saved.Items)))
	return interfaces.UpsertResult{TakeoffID: saved.ID, Status: saved.Status, ItemCount: len(saved.Items)}, nil
}

func (u *TakeoffUseCase) SubmitToBuildShop(ctx context.Context, id string) (interfaces.SubmitResult, error) {
	return u.submit(ctx, id, entities.DestinationBuildShop)
}

func (u *TakeoffUseCase) SubmitToSignShop(ctx context.Context, id string) (interfaces.SubmitResult, error) {
	return u.submit(ctx, id, entities.DestinationSignShop)
}

func (u *TakeoffUseCase) submit(ctx context.Context, id string, dest entities.Destination) (interfaces.SubmitResult, error) {
	t, err := u.getTakeoff(ctx, id)
	if err != nil {
		return interfaces.SubmitResult{}, err
	}
	zap.L().Info("[takeoff][usecase] submit start",
		zap.String("takeoff_id", t.ID),
		zap.String("destination", string(dest)),
		zap.String("status", string(t.Status)))

	state := DeriveState(t.ID, t.Status)
	if to, ok := state.SubmittedTo(); ok && to == dest {
		return interfaces.SubmitResult{}, entities.NewGatewayError(entities.CodeDuplicateRequest, "")
	}
	if _, err := state.Next(SubmitEvent(dest), LifecycleGuards{}); err != nil {
		return interfaces.SubmitResult{}, entities.WrapGatewayError(entities.CodeInvalidTransition, err)
	}

	rows := u.aggregator.RowsFromItems(t.DefaultMaterial, t.Items)
	if problem := u.validator.CheckSubmission(dest, t.WorkType, rows, t.Items); problem != nil {
		zap.L().Warn("[takeoff][usecase] submit rejected",
			zap.String("takeoff_id", t.ID),
			zap.String("code", string(problem.Code)))
		return interfaces.SubmitResult{}, entities.NewGatewayError(problem.Code, problem.Message)
	}

	req, err := u.requests.Create(ctx, entities.FabricationRequest{
		ID:             uuid.NewString(),
		TakeoffID:      t.ID,
		Destination:    dest,
		RevisionNumber: t.RevisionNumber,
		CreatedAt:      time.Now().UTC(),
	})
	if err != nil {
		return interfaces.SubmitResult{}, err
	}
	updated, err := u.updateStatus(ctx, t.ID, dest.SubmittedStatus())
	if err != nil {
		return interfaces.SubmitResult{}, err
	}

	zap.L().Info("[takeoff][usecase] submit done",
		zap.String("takeoff_id", t.ID),
		zap.String("request_id", req.ID),
		zap.String("status", string(updated.Status)))

	res := interfaces.SubmitResult{TakeoffID: t.ID, TakeoffStatus: updated.Status}
	if dest == entities.DestinationBuildShop {
		res.BuildRequestID = req.ID
	}
	return res, nil
}

func (u *TakeoffUseCase) Cancel(ctx context.Context, id string, reason entities.CancellationReason, notes string) (interfaces.TransitionResult, error) {
	if !reason.Valid() {
		return interfaces.TransitionResult{}, entities.WrapGatewayError(entities.CodeInvalidRequest, ErrInvalidCancellationReason)
	}
	if reason.RequiresNotes(notes) {
		return interfaces.TransitionResult{}, entities.WrapGatewayError(entities.CodeInvalidRequest, ErrCancellationNotesRequired)
	}

	t, err := u.getTakeoff(ctx, id)
	if err != nil {
		return interfaces.TransitionResult{}, err
	}
	if _, err := DeriveState(t.ID, t.Status).Next(EventCancel, LifecycleGuards{}); err != nil {
		return interfaces.TransitionResult{}, entities.WrapGatewayError(entities.CodeInvalidTransition, err)
	}

	rec := entities.CancellationRecord{
		ID:             uuid.NewString(),
		TakeoffID:      t.ID,
		Reason:         reason,
		Notes:          strings.TrimSpace(notes),
		PreviousStatus: t.Status,
		CanceledAt:     time.Now().UTC(),
	}
	if err := u.takeoffs.AppendCancellation(ctx, rec); err != nil {
		return interfaces.TransitionResult{}, err
	}
	updated, err := u.updateStatus(ctx, t.ID, entities.TakeoffStatusCanceled)
	if err != nil {
		return interfaces.TransitionResult{}, err
	}
	zap.L().Info("[takeoff][usecase] canceled",
		zap.String("takeoff_id", t.ID),
		zap.String("reason", string(reason)),
		zap.String("previous_status", string(t.Status)))
	return interfaces.TransitionResult{TakeoffStatus: updated.Status}, nil
}

func (u *TakeoffUseCase) Reopen(ctx context.Context, id string) (interfaces.TransitionResult, error) {
	t, err := u.getTakeoff(ctx, id)
	if err != nil {
		return interfaces.TransitionResult{}, err
	}
	started, err := u.manufacturingStarted(ctx, t.ID)
	if err != nil {
		return interfaces.TransitionResult{}, err
	}

	state := DeriveState(t.ID, t.Status)
	if state == StateCanceled && started {
		return interfaces.TransitionResult{}, entities.NewGatewayError(entities.CodeManufacturingStarted, "")
	}
	if _, err := state.Next(EventReopen, LifecycleGuards{ManufacturingStarted: started}); err != nil {
		return interfaces.TransitionResult{}, entities.WrapGatewayError(entities.CodeInvalidTransition, err)
	}

	updated, err := u.updateStatus(ctx, t.ID, entities.TakeoffStatusDraft)
	if err != nil {
		return interfaces.TransitionResult{}, err
	}
	zap.L().Info("[takeoff][usecase] reopened", zap.String("takeoff_id", t.ID))
	return interfaces.TransitionResult{TakeoffStatus: updated.Status}, nil
}

func (u *TakeoffUseCase) CreateRevision(ctx context.Context, id string) (interfaces.RevisionResult, error) {
	src, err := u.getTakeoff(ctx, id)
	if err != nil {
		return interfaces.RevisionResult{}, err
	}
	started, err := u.manufacturingStarted(ctx, src.ID)
	if err != nil {
		return interfaces.RevisionResult{}, err
	}
	if _, err := DeriveState(src.ID, src.Status).Next(EventCreateRevision, LifecycleGuards{ManufacturingStarted: started}); err != nil {
		return interfaces.RevisionResult{}, entities.WrapGatewayError(entities.CodeInvalidTransition, err)
	}

	now := time.Now().UTC()
	rev := entities.Takeoff{
		ID:             uuid.NewString(),
		TakeoffFields:  src.TakeoffFields,
		Status:         entities.TakeoffStatusDraft,
		RevisionNumber: src.RevisionNumber + 1,
		RevisedFromID:  src.ID,
		Items:          append([]entities.TakeoffItem{}, src.Items...),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := u.takeoffs.Create(ctx, rev)
	if err != nil {
		return interfaces.RevisionResult{}, err
	}
	zap.L().Info("[takeoff][usecase] revision created",
		zap.String("source_id", src.ID),
		zap.String("takeoff_id", created.ID),
		zap.Int("revision", created.RevisionNumber))
	return interfaces.RevisionResult{
		TakeoffID:      created.ID,
		RevisionNumber: created.RevisionNumber,
		TakeoffStatus:  created.Status,
	}, nil
}

func (u *TakeoffUseCase) GenerateLinkedWorkOrder(ctx context.Context, id string) (entities.WorkOrderRef, error) {
	t, err := u.getTakeoff(ctx, id)
	if err != nil {
		return entities.WorkOrderRef{}, err
	}
	if _, err := DeriveState(t.ID, t.Status).Next(EventGenerateWorkOrder, LifecycleGuards{}); err != nil {
		return entities.WorkOrderRef{}, entities.WrapGatewayError(entities.CodeInvalidTransition, err)
	}

	now := time.Now().UTC()
	number := t.WorkOrderNumber
	if number == "" {
		number = newWorkOrderNumber(now)
	}
	wo, created, err := u.workOrders.CreateIfAbsent(ctx, entities.LinkedWorkOrder{
		TakeoffID: t.ID,
		ID:        uuid.NewString(),
		Number:    number,
		CreatedAt: now,
	})
	if err != nil {
		return entities.WorkOrderRef{}, err
	}
	if !created {
		return entities.WorkOrderRef{}, &entities.GatewayError{
			Code:            entities.CodeWorkOrderExists,
			Message:         entities.UserMessage(entities.CodeWorkOrderExists),
			WorkOrderID:     wo.ID,
			WorkOrderNumber: wo.Number,
		}
	}
	zap.L().Info("[takeoff][usecase] work order generated",
		zap.String("takeoff_id", t.ID),
		zap.String("work_order", wo.Number))
	return wo.Ref(), nil
}

func (u *TakeoffUseCase) Load(ctx context.Context, id string) (entities.LoadedTakeoff, error) {
	t, err := u.getTakeoff(ctx, id)
	if err != nil {
		return entities.LoadedTakeoff{}, err
	}
	started, err := u.manufacturingStarted(ctx, t.ID)
	if err != nil {
		return entities.LoadedTakeoff{}, err
	}
	wo, err := u.workOrders.GetByTakeoffID(ctx, t.ID)
	if err != nil {
		return entities.LoadedTakeoff{}, err
	}

	out := entities.LoadedTakeoff{Takeoff: t, ManufacturingStarted: started}
	if wo.ID != "" {
		ref := wo.Ref()
		out.LinkedWorkOrder = &ref
	}
	return out, nil
}

func (u *TakeoffUseCase) Preview(workType entities.WorkType, defaultMaterial entities.SignMaterial, rows entities.RowCollections) PreviewResult {
	items := u.aggregator.BuildItemPayloads(workType, defaultMaterial, rows)
	sandbags := u.aggregator.SandbagQuantity(workType, rows)
	dest := workType.Destination()
	problem := u.validator.CheckSubmission(dest, workType, rows, items)
	if sandbags > 0 {
		items = append(items, AutoSandbagItem(sandbags))
	}
	return PreviewResult{Items: items, SandbagQuantity: sandbags, Destination: dest, Problem: problem}
}

func (u *TakeoffUseCase) MarkManufacturingStarted(ctx context.Context, requestID string) (entities.FabricationRequest, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.FabricationRequest{}, ErrInvalidFabricationRequestID
	}
	req, err := u.requests.MarkManufacturingStarted(ctx, requestID)
	if err != nil {
		return entities.FabricationRequest{}, err
	}
	if req.ID == "" {
		return entities.FabricationRequest{}, ErrFabricationRequestNotFound
	}
	zap.L().Info("[takeoff][usecase] manufacturing started",
		zap.String("request_id", req.ID),
		zap.String("takeoff_id", req.TakeoffID))
	return req, nil
}

// ValidateFields checks the header fields a save needs. fields must already
// be normalized.
func ValidateFields(f entities.TakeoffFields) error {
	if f.Title == "" {
		return ErrTitleRequired
	}
	if !f.WorkType.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidWorkType, f.WorkType)
	}
	if !f.Priority.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, f.Priority)
	}
	if f.ContractedOrAdditional != entities.ContractedWork && f.ContractedOrAdditional != entities.AdditionalWork {
		return ErrInvalidContractFlag
	}
	for _, d := range []struct{ name, value string }{
		{"install_date", f.InstallDate},
		{"pickup_date", f.PickupDate},
		{"needed_by_date", f.NeededByDate},
	} {
		if d.value == "" {
			continue
		}
		if _, err := time.Parse(entities.DateLayout, d.value); err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidDate, d.name, d.value)
		}
	}
	if f.FlaggingDates != nil && !f.FlaggingDates.Valid() {
		return ErrInvalidDateRange
	}
	if !f.DefaultMaterial.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidMaterial, f.DefaultMaterial)
	}
	return nil
}

func validateItems(items []entities.TakeoffItem) error {
	for i, it := range items {
		if strings.TrimSpace(it.Name) == "" {
			return fmt.Errorf("%w: item %d has no name", ErrInvalidItem, i)
		}
		if it.Quantity < 0 {
			return fmt.Errorf("%w: item %d has negative quantity", ErrInvalidItem, i)
		}
		if err := it.Metadata.Validate(); err != nil {
			return fmt.Errorf("%w: item %d: %v", ErrInvalidItem, i, err)
		}
	}
	return nil
}

// getTakeoff resolves a takeoff or answers TAKEOFF_NOT_FOUND.
func (u *TakeoffUseCase) getTakeoff(ctx context.Context, id string) (entities.Takeoff, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Takeoff{}, entities.WrapGatewayError(entities.CodeInvalidRequest, ErrInvalidTakeoffID)
	}
	t, err := u.takeoffs.GetByID(ctx, id)
	if err != nil {
		return entities.Takeoff{}, err
	}
	if t.ID == "" {
		return entities.Takeoff{}, entities.NewGatewayError(entities.CodeTakeoffNotFound, "")
	}
	return t, nil
}

func (u *TakeoffUseCase) updateStatus(ctx context.Context, id string, status entities.TakeoffStatus) (entities.Takeoff, error) {
	updated, err := u.takeoffs.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Takeoff{}, err
	}
	if updated.ID == "" {
		return entities.Takeoff{}, entities.NewGatewayError(entities.CodeTakeoffNotFound, "")
	}
	return updated, nil
}

func (u *TakeoffUseCase) manufacturingStarted(ctx context.Context, takeoffID string) (bool, error) {
	reqs, err := u.requests.ListByTakeoffID(ctx, takeoffID)
	if err != nil {
		return false, err
	}
	return entities.AnyManufacturingStarted(reqs), nil
}

// reserveEquipment books rolling stock on a takeoff's first save. A failed
// booking does not fail the save.
func (u *TakeoffUseCase) reserveEquipment(ctx context.Context, t entities.Takeoff) {
	if u.reservation == nil {
		return
	}
	var equipment []entities.TakeoffItem
	for _, it := range t.Items {
		if it.Metadata.Plain != nil && it.Metadata.Plain.Source == entities.PlainSourceRollingStock {
			equipment = append(equipment, it)
		}
	}
	if len(equipment) == 0 {
		return
	}
	if err := u.reservation.Reserve(ctx, t.ID, equipment); err != nil {
		zap.L().Warn("[takeoff][usecase] equipment reservation failed",
			zap.String("takeoff_id", t.ID),
			zap.Error(err))
	}
}

// newWorkOrderNumber formats WO-<yyyymmdd><4 digits>.
func newWorkOrderNumber(now time.Time) string {
	return fmt.Sprintf("WO-%s%04d", now.Format("20060102"), now.UnixNano()%10000)
}
