package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "etc_takeoffs/internal/adapter/http/dto/request"
	response "etc_takeoffs/internal/adapter/http/dto/response"
	"etc_takeoffs/internal/domain/entities"
	"etc_takeoffs/internal/usecase"
	"etc_takeoffs/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidTakeoffPayload = pkg.NewDomainErrorSimple(string(entities.CodeInvalidRequest), "Invalid takeoff payload", http.StatusBadRequest)
	errInvalidTakeoffID      = pkg.NewDomainErrorSimple(string(entities.CodeInvalidRequest), "Invalid takeoff id", http.StatusBadRequest)
)

// TakeoffHandler exposes the takeoff lifecycle over HTTP.
type TakeoffHandler struct {
	usecase usecase.ITakeoffUseCase
}

func NewTakeoffHandler(uc usecase.ITakeoffUseCase) *TakeoffHandler {
	return &TakeoffHandler{usecase: uc}
}

// CreateTakeoff godoc
// @Summary      Create a draft takeoff
// @Tags         takeoffs
// @Accept       json
// @Produce      json
// @Param        takeoff  body      request.UpsertTakeoffRequest  true  "Takeoff header and items"
// @Success      201      {object}  interfaces.UpsertResult
// @Failure      400      {object}  pkg.HTTPError
// @Router       /takeoffs [post]
func (h *TakeoffHandler) CreateTakeoff(c *gin.Context) {
	h.upsert(c, "", http.StatusCreated)
}

// UpdateTakeoff godoc
// @Summary      Save a draft takeoff, replacing its items
// @Tags         takeoffs
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Takeoff ID"
// @Param        takeoff  body      request.UpsertTakeoffRequest  true  "Takeoff header and items"
// @Success      200      {object}  interfaces.UpsertResult
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /takeoffs/{id} [put]
func (h *TakeoffHandler) UpdateTakeoff(c *gin.Context) {
	id, ok := takeoffID(c)
	if !ok {
		return
	}
	h.upsert(c, id, http.StatusOK)
}

func (h *TakeoffHandler) upsert(c *gin.Context, id string, status int) {
	var payload request.UpsertTakeoffRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTakeoffPayload.HTTPStatus, errInvalidTakeoffPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.Upsert(c.Request.Context(), id, payload.TakeoffFields, payload.ResolveItems())
	if err != nil {
		abortWithTakeoffError(c, err)
		return
	}
	c.JSON(status, res)
}

// GetTakeoff godoc
// @Summary      Load a takeoff with its work order and manufacturing flag
// @Tags         takeoffs
// @Produce      json
// @Param        id   path      string  true  "Takeoff ID"
// @Success      200  {object}  response.LoadedTakeoffResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /takeoffs/{id} [get]
func (h *TakeoffHandler) GetTakeoff(c *gin.Context) {
	id, ok := takeoffID(c)
	if !ok {
		return
	}
	loaded, err := h.usecase.Load(c.Request.Context(), id)
	if err != nil {
		abortWithTakeoffError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromLoadedTakeoff(loaded))
}

// SubmitToBuildShop godoc
// @Summary      Submit a takeoff to the build shop
// @Tags         takeoffs
// @Produce      json
// @Param        id   path      string  true  "Takeoff ID"
// @Success      200  {object}  interfaces.SubmitResult
// @Failure      409  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /takeoffs/{id}/submit/build-shop [post]
func (h *TakeoffHandler) SubmitToBuildShop(c *gin.Context) {
	id, ok := takeoffID(c)
	if !ok {
		return
	}
	res, err := h.usecase.SubmitToBuildShop(c.Request.Context(), id)
	if err != nil {
		abortWithTakeoffError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// SubmitToSignShop godoc
// @Summary      Submit a permanent signs takeoff to the sign shop
// @Tags         takeoffs
// @Produce      json
// @Param        id   path      string  true  "Takeoff ID"
// @Success      200  {object}  interfaces.SubmitResult
// @Failure      409  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /takeoffs/{id}/submit/sign-shop [post]
func (h *TakeoffHandler) SubmitToSignShop(c *gin.Context) {
	id, ok := takeoffID(c)
	if !ok {
		return
	}
	res, err := h.usecase.SubmitToSignShop(c.Request.Context(), id)
	if err != nil {
		abortWithTakeoffError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// CancelTakeoff godoc
// @Summary      Cancel a takeoff
// @Tags         takeoffs
// @Accept       json
// @Produce      json
// @Param        id      path      string                        true  "Takeoff ID"
// @Param        cancel  body      request.CancelTakeoffRequest  true  "Reason and notes"
// @Success      200     {object}  interfaces.TransitionResult
// @Failure      400     {object}  pkg.HTTPError
// @Failure      409     {object}  pkg.HTTPError
// @Router       /takeoffs/{id}/cancel [post]
func (h *TakeoffHandler) CancelTakeoff(c *gin.Context) {
	id, ok := takeoffID(c)
	if !ok {
		return
	}
	var payload request.CancelTakeoffRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTakeoffPayload.HTTPStatus, errInvalidTakeoffPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.Cancel(c.Request.Context(), id, payload.ResolveReason(), payload.Notes)
	if err != nil {
		abortWithTakeoffError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ReopenTakeoff godoc
// @Summary      Return a canceled takeoff to draft
// @Tags         takeoffs
// @Produce      json
// @Param        id   path      string  true  "Takeoff ID"
// @Success      200  {object}  interfaces.TransitionResult
// @Failure      409  {object}  pkg.HTTPError
// @Router       /takeoffs/{id}/reopen [post]
func (h *TakeoffHandler) ReopenTakeoff(c *gin.Context) {
	id, ok := takeoffID(c)
	if !ok {
		return
	}
	res, err := h.usecase.Reopen(c.Request.Context(), id)
	if err != nil {
		abortWithTakeoffError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// CreateRevision godoc
// @Summary      Create a new draft revision of a takeoff
// @Tags         takeoffs
// @Produce      json
// @Param        id   path      string  true  "Source takeoff ID"
// @Success      201  {object}  interfaces.RevisionResult
// @Failure      409  {object}  pkg.HTTPError
// @Router       /takeoffs/{id}/revisions [post]
func (h *TakeoffHandler) CreateRevision(c *gin.Context) {
	id, ok := takeoffID(c)
	if !ok {
		return
	}
	res, err := h.usecase.CreateRevision(c.Request.Context(), id)
	if err != nil {
		abortWithTakeoffError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// GenerateWorkOrder godoc
// @Summary      Generate the takeoff's linked work order
// @Description  A second call answers 409 WORK_ORDER_EXISTS with the existing work order in details.
// @Tags         takeoffs
// @Produce      json
// @Param        id   path      string  true  "Takeoff ID"
// @Success      201  {object}  entities.WorkOrderRef
// @Failure      409  {object}  pkg.HTTPError
// @Router       /takeoffs/{id}/work-order [post]
func (h *TakeoffHandler) GenerateWorkOrder(c *gin.Context) {
	id, ok := takeoffID(c)
	if !ok {
		return
	}
	ref, err := h.usecase.GenerateLinkedWorkOrder(c.Request.Context(), id)
	if err != nil {
		abortWithTakeoffError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ref)
}

// PreviewTakeoff godoc
// @Summary      Aggregate rows into items without saving
// @Tags         takeoffs
// @Accept       json
// @Produce      json
// @Param        rows  body      request.PreviewTakeoffRequest  true  "Work type and rows"
// @Success      200   {object}  response.PreviewResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /takeoffs/preview [post]
func (h *TakeoffHandler) PreviewTakeoff(c *gin.Context) {
	var payload request.PreviewTakeoffRequest
	if err := c.ShouldBindJSON(&payload); err != nil || !payload.WorkType.Valid() {
		c.JSON(errInvalidTakeoffPayload.HTTPStatus, errInvalidTakeoffPayload.ToHTTPError())
		return
	}
	res := h.usecase.Preview(payload.WorkType, payload.DefaultMaterial, payload.Rows)
	c.JSON(http.StatusOK, response.FromPreview(res))
}

// StartManufacturing godoc
// @Summary      Mark a fabrication request as started by the shop
// @Tags         fabrication-requests
// @Produce      json
// @Param        id   path      string  true  "Fabrication request ID"
// @Success      200  {object}  response.FabricationRequestResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /fabrication-requests/{id}/start [patch]
func (h *TakeoffHandler) StartManufacturing(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	req, err := h.usecase.MarkManufacturingStarted(c.Request.Context(), id)
	if err != nil {
		abortWithTakeoffError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromFabricationRequest(req))
}

func takeoffID(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(errInvalidTakeoffID.HTTPStatus, errInvalidTakeoffID.ToHTTPError())
		return "", false
	}
	return id, true
}

func abortWithTakeoffError(c *gin.Context, err error) {
	appErr := mapTakeoffError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		zap.L().Error("[takeoff][handler] request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapTakeoffError(err error) *pkg.AppError {
	if ge, ok := entities.AsGatewayError(err); ok {
		appErr := pkg.NewDomainError(string(ge.Code), ge.Message, err, gatewayCodeStatus(ge.Code))
		if ge.WorkOrderID != "" {
			appErr = appErr.WithDetail("work_order_id", ge.WorkOrderID)
		}
		if ge.WorkOrderNumber != "" {
			appErr = appErr.WithDetail("work_order_number", ge.WorkOrderNumber)
		}
		return appErr
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidFabricationRequestID):
		return pkg.NewDomainErrorSimple(string(entities.CodeInvalidRequest), "Invalid fabrication request id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFabricationRequestNotFound):
		return pkg.NewDomainErrorSimple("FABRICATION_REQUEST_NOT_FOUND", "Fabrication request not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func gatewayCodeStatus(code entities.ErrorCode) int {
	switch code {
	case entities.CodeInvalidRequest:
		return http.StatusBadRequest
	case entities.CodeTakeoffNotFound:
		return http.StatusNotFound
	case entities.CodeAccessDenied, entities.CodeBranchAccessDenied:
		return http.StatusForbidden
	case entities.CodeNoItems,
		entities.CodeMissingStructure,
		entities.CodeMissingDesignation,
		entities.CodeIneligibleWorkType,
		entities.CodeDestinationMismatch:
		return http.StatusUnprocessableEntity
	case entities.CodeDuplicateRequest,
		entities.CodeInvalidTransition,
		entities.CodeWorkOrderExists,
		entities.CodeManufacturingStarted,
		entities.CodeWorkTypeLocked:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
