package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"etc_takeoffs/internal/adapter/http/handlers/mocks"
	"etc_takeoffs/internal/domain/entities"
	"etc_takeoffs/internal/usecase"
	"etc_takeoffs/internal/usecase/interfaces"
	"etc_takeoffs/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newTakeoffRouter(t *testing.T) (*gin.Engine, *mocks.MockITakeoffUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockITakeoffUseCase(ctrl)
	h := NewTakeoffHandler(uc)

	r := gin.New()
	r.POST("/v1/takeoffs", h.CreateTakeoff)
	r.POST("/v1/takeoffs/preview", h.PreviewTakeoff)
	r.PUT("/v1/takeoffs/:id", h.UpdateTakeoff)
	r.GET("/v1/takeoffs/:id", h.GetTakeoff)
	r.POST("/v1/takeoffs/:id/submit/build-shop", h.SubmitToBuildShop)
	r.POST("/v1/takeoffs/:id/submit/sign-shop", h.SubmitToSignShop)
	r.POST("/v1/takeoffs/:id/cancel", h.CancelTakeoff)
	r.POST("/v1/takeoffs/:id/reopen", h.ReopenTakeoff)
	r.POST("/v1/takeoffs/:id/revisions", h.CreateRevision)
	r.POST("/v1/takeoffs/:id/work-order", h.GenerateWorkOrder)
	r.PATCH("/v1/fabrication-requests/:id/start", h.StartManufacturing)
	return r, uc
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != "" {
		buf = bytes.NewBufferString(body)
	} else {
		buf = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestTakeoffHandler_Upsert(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newTakeoffRouter(t)
		w := do(r, http.MethodPost, "/v1/takeoffs", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create", func(t *testing.T) {
		r, uc := newTakeoffRouter(t)
		uc.EXPECT().Upsert(gomock.Any(), "", gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, f entities.TakeoffFields, items []entities.TakeoffItem) (interfaces.UpsertResult, error) {
				if f.Title != "Route 9" || f.WorkType != entities.WorkTypeMPT {
					t.Fatalf("unexpected fields %+v", f)
				}
				if items == nil || len(items) != 0 {
					t.Fatalf("expected empty item slice, got %#v", items)
				}
				return interfaces.UpsertResult{TakeoffID: "t1", Status: entities.TakeoffStatusDraft}, nil
			},
		)

		w := do(r, http.MethodPost, "/v1/takeoffs", `{"title":"Route 9","work_type":"MPT"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var res interfaces.UpsertResult
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res.TakeoffID != "t1" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("update with locked work type", func(t *testing.T) {
		r, uc := newTakeoffRouter(t)
		uc.EXPECT().Upsert(gomock.Any(), "t1", gomock.Any(), gomock.Any()).
			Return(interfaces.UpsertResult{}, entities.NewGatewayError(entities.CodeWorkTypeLocked, ""))

		w := do(r, http.MethodPut, "/v1/takeoffs/t1", `{"title":"Route 9","work_type":"FLAGGING","items":[]}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if decodeError(t, w).Code != string(entities.CodeWorkTypeLocked) {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("validation error is 400 with its message", func(t *testing.T) {
		r, uc := newTakeoffRouter(t)
		uc.EXPECT().Upsert(gomock.Any(), "", gomock.Any(), gomock.Any()).
			Return(interfaces.UpsertResult{}, entities.WrapGatewayError(entities.CodeInvalidRequest, usecase.ErrTitleRequired))

		w := do(r, http.MethodPost, "/v1/takeoffs", `{"work_type":"MPT"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if decodeError(t, w).Message != usecase.ErrTitleRequired.Error() {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}

func TestTakeoffHandler_Submit(t *testing.T) {
	cases := []struct {
		name   string
		path   string
		code   entities.ErrorCode
		status int
	}{
		{"no items", "/v1/takeoffs/t1/submit/build-shop", entities.CodeNoItems, http.StatusUnprocessableEntity},
		{"missing structure", "/v1/takeoffs/t1/submit/build-shop", entities.CodeMissingStructure, http.StatusUnprocessableEntity},
		{"duplicate", "/v1/takeoffs/t1/submit/build-shop", entities.CodeDuplicateRequest, http.StatusConflict},
		{"not found", "/v1/takeoffs/t1/submit/sign-shop", entities.CodeTakeoffNotFound, http.StatusNotFound},
		{"branch denied", "/v1/takeoffs/t1/submit/sign-shop", entities.CodeBranchAccessDenied, http.StatusForbidden},
		{"mismatch", "/v1/takeoffs/t1/submit/sign-shop", entities.CodeDestinationMismatch, http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, uc := newTakeoffRouter(t)
			err := entities.NewGatewayError(tc.code, "")
			if tc.path == "/v1/takeoffs/t1/submit/build-shop" {
				uc.EXPECT().SubmitToBuildShop(gomock.Any(), "t1").Return(interfaces.SubmitResult{}, err)
			} else {
				uc.EXPECT().SubmitToSignShop(gomock.Any(), "t1").Return(interfaces.SubmitResult{}, err)
			}

			w := do(r, http.MethodPost, tc.path, "")
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			body := decodeError(t, w)
			if body.Code != string(tc.code) || body.Message != entities.UserMessage(tc.code) {
				t.Fatalf("unexpected body %+v", body)
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		r, uc := newTakeoffRouter(t)
		uc.EXPECT().SubmitToBuildShop(gomock.Any(), "t1").
			Return(interfaces.SubmitResult{BuildRequestID: "br-1", TakeoffStatus: entities.TakeoffStatusSentToBuildShop}, nil)

		w := do(r, http.MethodPost, "/v1/takeoffs/t1/submit/build-shop", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res interfaces.SubmitResult
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res.BuildRequestID != "br-1" || res.TakeoffStatus != entities.TakeoffStatusSentToBuildShop {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("transport failure is 500 without the cause", func(t *testing.T) {
		r, uc := newTakeoffRouter(t)
		uc.EXPECT().SubmitToBuildShop(gomock.Any(), "t1").Return(interfaces.SubmitResult{}, errors.New("dynamodb: secret detail"))

		w := do(r, http.MethodPost, "/v1/takeoffs/t1/submit/build-shop", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if bytes.Contains(w.Body.Bytes(), []byte("secret detail")) {
			t.Fatalf("cause leaked: %s", w.Body.String())
		}
	})
}

func TestTakeoffHandler_CancelReopen(t *testing.T) {
	t.Run("missing reason", func(t *testing.T) {
		r, _ := newTakeoffRouter(t)
		w := do(r, http.MethodPost, "/v1/takeoffs/t1/cancel", `{"notes":"x"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("cancel", func(t *testing.T) {
		r, uc := newTakeoffRouter(t)
		uc.EXPECT().Cancel(gomock.Any(), "t1", entities.CancellationReasonOther, "client moved").
			Return(interfaces.TransitionResult{TakeoffStatus: entities.TakeoffStatusCanceled}, nil)

		w := do(r, http.MethodPost, "/v1/takeoffs/t1/cancel", `{"reason":" OTHER ","notes":"client moved"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reopen blocked by manufacturing", func(t *testing.T) {
		r, uc := newTakeoffRouter(t)
		uc.EXPECT().Reopen(gomock.Any(), "t1").Return(interfaces.TransitionResult{}, entities.NewGatewayError(entities.CodeManufacturingStarted, ""))

		w := do(r, http.MethodPost, "/v1/takeoffs/t1/reopen", "")
		if w.Code != http.StatusConflict || decodeError(t, w).Code != string(entities.CodeManufacturingStarted) {
			t.Fatalf("expected 409 MANUFACTURING_STARTED, got %d %s", w.Code, w.Body.String())
		}
	})
}

func TestTakeoffHandler_RevisionAndWorkOrder(t *testing.T) {
	t.Run("revision", func(t *testing.T) {
		r, uc := newTakeoffRouter(t)
		uc.EXPECT().CreateRevision(gomock.Any(), "t1").Return(interfaces.RevisionResult{TakeoffID: "t2", RevisionNumber: 2}, nil)

		w := do(r, http.MethodPost, "/v1/takeoffs/t1/revisions", "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("existing work order carries details", func(t *testing.T) {
		r, uc := newTakeoffRouter(t)
		ge := entities.NewGatewayError(entities.CodeWorkOrderExists, "")
		ge.WorkOrderID = "wo-1"
		ge.WorkOrderNumber = "WO-202501010001"
		uc.EXPECT().GenerateLinkedWorkOrder(gomock.Any(), "t1").Return(entities.WorkOrderRef{}, ge)

		w := do(r, http.MethodPost, "/v1/takeoffs/t1/work-order", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		body := decodeError(t, w)
		if body.Details["work_order_id"] != "wo-1" || body.Details["work_order_number"] != "WO-202501010001" {
			t.Fatalf("unexpected details %+v", body.Details)
		}
	})
}

func TestTakeoffHandler_LoadPreviewStart(t *testing.T) {
	t.Run("load", func(t *testing.T) {
		r, uc := newTakeoffRouter(t)
		uc.EXPECT().Load(gomock.Any(), "t1").Return(entities.LoadedTakeoff{
			Takeoff: entities.Takeoff{ID: "t1", TakeoffFields: entities.TakeoffFields{Title: "x", WorkType: entities.WorkTypePermanentSigns}, Status: entities.TakeoffStatusSentToSignShop},
			ManufacturingStarted: true,
		}, nil)

		w := do(r, http.MethodGet, "/v1/takeoffs/t1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Takeoff struct {
				ID          string `json:"id"`
				Destination string `json:"destination"`
			} `json:"takeoff"`
			ManufacturingStarted bool `json:"manufacturing_started"`
			Locked               bool `json:"locked"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Takeoff.ID != "t1" || body.Takeoff.Destination != string(entities.DestinationSignShop) || !body.Locked || !body.ManufacturingStarted {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("preview rejects unknown work type", func(t *testing.T) {
		r, _ := newTakeoffRouter(t)
		w := do(r, http.MethodPost, "/v1/takeoffs/preview", `{"work_type":"PAINTING"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("preview reports the first problem", func(t *testing.T) {
		r, uc := newTakeoffRouter(t)
		uc.EXPECT().Preview(entities.WorkTypeMPT, entities.SignMaterial(""), gomock.Any()).Return(usecase.PreviewResult{
			Destination: entities.DestinationBuildShop,
			Problem:     &usecase.SubmissionError{Code: entities.CodeMissingStructure, Message: "Type IIIs: sign W1-1 has no structure selected.", SectionKey: "type_iii"},
		})

		w := do(r, http.MethodPost, "/v1/takeoffs/preview", `{"work_type":"MPT","rows":{"active_sections":["type_iii"]}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Items   []entities.TakeoffItem `json:"items"`
			Problem struct {
				Code string `json:"code"`
			} `json:"problem"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Items == nil || body.Problem.Code != string(entities.CodeMissingStructure) {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("start manufacturing not found", func(t *testing.T) {
		r, uc := newTakeoffRouter(t)
		uc.EXPECT().MarkManufacturingStarted(gomock.Any(), "fr-1").Return(entities.FabricationRequest{}, usecase.ErrFabricationRequestNotFound)

		w := do(r, http.MethodPatch, "/v1/fabrication-requests/fr-1/start", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("start manufacturing", func(t *testing.T) {
		r, uc := newTakeoffRouter(t)
		uc.EXPECT().MarkManufacturingStarted(gomock.Any(), "fr-1").Return(entities.FabricationRequest{ID: "fr-1", ManufacturingStarted: true}, nil)

		w := do(r, http.MethodPatch, "/v1/fabrication-requests/fr-1/start", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
