package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	request "etc_takeoffs/internal/adapter/http/dto/request"
	"etc_takeoffs/internal/domain/entities"
	"etc_takeoffs/internal/usecase/interfaces"
	"etc_takeoffs/pkg"

	"go.uber.org/zap"
)

// HTTPTakeoffGateway talks to the takeoff service's /v1 API. Error bodies
// carrying a code become *entities.GatewayError; anything else is a
// transport failure.
type HTTPTakeoffGateway struct {
	base       string
	httpClient *http.Client
}

var _ interfaces.ITakeoffGateway = (*HTTPTakeoffGateway)(nil)

// NewHTTPTakeoffGateway builds a client for base, e.g. http://localhost:8080/v1.
func NewHTTPTakeoffGateway(base string, timeout time.Duration) *HTTPTakeoffGateway {
	return &HTTPTakeoffGateway{
		base:       strings.TrimRight(base, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (g *HTTPTakeoffGateway) Upsert(ctx context.Context, id string, fields entities.TakeoffFields, items []entities.TakeoffItem) (interfaces.UpsertResult, error) {
	body := request.UpsertTakeoffRequest{TakeoffFields: fields, Items: items}
	var out interfaces.UpsertResult
	var err error
	if id == "" {
		err = g.do(ctx, http.MethodPost, "/takeoffs", body, &out)
	} else {
		err = g.do(ctx, http.MethodPut, "/takeoffs/"+url.PathEscape(id), body, &out)
	}
	return out, err
}

func (g *HTTPTakeoffGateway) SubmitToBuildShop(ctx context.Context, id string) (interfaces.SubmitResult, error) {
	var out interfaces.SubmitResult
	err := g.do(ctx, http.MethodPost, takeoffPath(id, "/submit/build-shop"), nil, &out)
	return out, err
}

func (g *HTTPTakeoffGateway) SubmitToSignShop(ctx context.Context, id string) (interfaces.SubmitResult, error) {
	var out interfaces.SubmitResult
	err := g.do(ctx, http.MethodPost, takeoffPath(id, "/submit/sign-shop"), nil, &out)
	return out, err
}

func (g *HTTPTakeoffGateway) Cancel(ctx context.Context, id string, reason entities.CancellationReason, notes string) (interfaces.TransitionResult, error) {
	body := request.CancelTakeoffRequest{Reason: string(reason), Notes: notes}
	var out interfaces.TransitionResult
	err := g.do(ctx, http.MethodPost, takeoffPath(id, "/cancel"), body, &out)
	return out, err
}

func (g *HTTPTakeoffGateway) Reopen(ctx context.Context, id string) (interfaces.TransitionResult, error) {
	var out interfaces.TransitionResult
	err := g.do(ctx, http.MethodPost, takeoffPath(id, "/reopen"), nil, &out)
	return out, err
}

func (g *HTTPTakeoffGateway) CreateRevision(ctx context.Context, id string) (interfaces.RevisionResult, error) {
	var out interfaces.RevisionResult
	err := g.do(ctx, http.MethodPost, takeoffPath(id, "/revisions"), nil, &out)
	return out, err
}

func (g *HTTPTakeoffGateway) GenerateLinkedWorkOrder(ctx context.Context, id string) (entities.WorkOrderRef, error) {
	var out entities.WorkOrderRef
	err := g.do(ctx, http.MethodPost, takeoffPath(id, "/work-order"), nil, &out)
	return out, err
}

func (g *HTTPTakeoffGateway) Load(ctx context.Context, id string) (entities.LoadedTakeoff, error) {
	var out entities.LoadedTakeoff
	err := g.do(ctx, http.MethodGet, takeoffPath(id, ""), nil, &out)
	return out, err
}

// Preview asks the service to aggregate rows without saving them.
func (g *HTTPTakeoffGateway) Preview(ctx context.Context, in request.PreviewTakeoffRequest, out any) error {
	return g.do(ctx, http.MethodPost, "/takeoffs/preview", in, out)
}

// StartManufacturing is the shop-side call that blocks reopening.
func (g *HTTPTakeoffGateway) StartManufacturing(ctx context.Context, requestID string, out any) error {
	return g.do(ctx, http.MethodPatch, "/fabrication-requests/"+url.PathEscape(requestID)+"/start", nil, out)
}

func takeoffPath(id, suffix string) string {
	return "/takeoffs/" + url.PathEscape(id) + suffix
}

func (g *HTTPTakeoffGateway) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.base+path, body)
	if err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			zap.L().Warn("[takeoff][gateway] failed to close response body", zap.Error(closeErr))
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)

	var body pkg.HTTPError
	if err := json.Unmarshal(raw, &body); err != nil || body.Code == "" {
		return fmt.Errorf("api error: status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	ge := entities.NewGatewayError(entities.ErrorCode(body.Code), body.Message)
	ge.WorkOrderID = body.Details["work_order_id"]
	ge.WorkOrderNumber = body.Details["work_order_number"]
	return ge
}
