package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"etc_takeoffs/internal/domain/catalog"
	"etc_takeoffs/internal/domain/entities"
	"etc_takeoffs/internal/usecase"
	"etc_takeoffs/internal/usecase/interfaces"
	mock_interfaces "etc_takeoffs/internal/usecase/interfaces/mocks"

	"github.com/fatih/color"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func newTestApp(t *testing.T) (*app, *mock_interfaces.MockITakeoffGateway) {
	t.Helper()
	gw := mock_interfaces.NewMockITakeoffGateway(gomock.NewController(t))
	a := newApp(func(string, time.Duration) interfaces.ITakeoffGateway { return gw })
	a.selectReason = func() (entities.CancellationReason, error) {
		t.Fatalf("unexpected reason prompt")
		return "", nil
	}
	a.promptNotes = func() (string, error) {
		t.Fatalf("unexpected notes prompt")
		return "", nil
	}
	return a, gw
}

func run(a *app, args ...string) (string, error) {
	root := a.rootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func signRows() entities.RowCollections {
	return entities.RowCollections{
		ActiveSections: []string{"type_iii"},
		MPTRows: map[string][]entities.MPTSignRow{
			"type_iii": {{ID: "r1", Designation: "W1-1", StructureType: "6FT RIGHT", Quantity: 3}},
		},
		PermRows: map[string][]entities.PermSignRow{},
	}
}

func loaded(id string, status entities.TakeoffStatus) entities.LoadedTakeoff {
	items := usecase.NewItemAggregator(catalog.Default()).BuildItemPayloads(entities.WorkTypeMPT, "", signRows())
	return entities.LoadedTakeoff{Takeoff: entities.Takeoff{
		ID: id,
		TakeoffFields: entities.TakeoffFields{
			Title:    "Route 9 closure",
			WorkType: entities.WorkTypeMPT,
		}.Normalize(),
		Status:         status,
		RevisionNumber: 1,
		Items:          items,
	}}
}

func writeForm(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "form.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write form: %v", err)
	}
	return path
}

const mptForm = `{
  "title": "Route 9 closure",
  "work_type": "MPT",
  "rows": {
    "active_sections": ["type_iii"],
    "mpt_rows": {"type_iii": [{"id": "r1", "designation": "W1-1", "structure_type": "6FT RIGHT", "quantity": 3}]}
  }
}`

func TestShow(t *testing.T) {
	a, gw := newTestApp(t)
	ld := loaded("t1", entities.TakeoffStatusSentToBuildShop)
	ld.LinkedWorkOrder = &entities.WorkOrderRef{ID: "wo-1", Number: "WO-1"}
	gw.EXPECT().Load(gomock.Any(), "t1").Return(ld, nil)

	out, err := run(a, "show", "t1", "--items")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Route 9 closure", "sent_to_build_shop", "Build Shop", "WO-1", "W1-1", "Sandbags"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCreate(t *testing.T) {
	t.Run("save", func(t *testing.T) {
		a, gw := newTestApp(t)
		gw.EXPECT().Upsert(gomock.Any(), "", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, fields entities.TakeoffFields, items []entities.TakeoffItem) (interfaces.UpsertResult, error) {
				if fields.Title != "Route 9 closure" || fields.Priority != entities.PriorityStandard {
					t.Errorf("unexpected fields %+v", fields)
				}
				if usecase.CountSubmittableItems(items) != 1 || len(items) != 2 {
					t.Errorf("expected sign plus sandbag line, got %+v", items)
				}
				return interfaces.UpsertResult{TakeoffID: "t1", Status: entities.TakeoffStatusDraft, ItemCount: 1}, nil
			})

		out, err := run(a, "create", "-f", writeForm(t, mptForm))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "Takeoff t1 saved") {
			t.Fatalf("unexpected output %q", out)
		}
	})

	t.Run("save then submit", func(t *testing.T) {
		a, gw := newTestApp(t)
		gomock.InOrder(
			gw.EXPECT().Upsert(gomock.Any(), "", gomock.Any(), gomock.Any()).
				Return(interfaces.UpsertResult{TakeoffID: "t1", Status: entities.TakeoffStatusDraft}, nil),
			gw.EXPECT().SubmitToBuildShop(gomock.Any(), "t1").
				Return(interfaces.SubmitResult{TakeoffStatus: entities.TakeoffStatusSentToBuildShop}, nil),
		)

		out, err := run(a, "create", "-f", writeForm(t, mptForm), "--submit")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "t1 submitted: sent_to_build_shop") {
			t.Fatalf("unexpected output %q", out)
		}
	})

	t.Run("invalid work type never reaches the gateway", func(t *testing.T) {
		a, _ := newTestApp(t)
		_, err := run(a, "create", "-f", writeForm(t, `{"title":"x","work_type":"BOGUS"}`))
		if !errors.Is(err, usecase.ErrInvalidWorkType) {
			t.Fatalf("expected ErrInvalidWorkType, got %v", err)
		}
	})
}

func TestPreview(t *testing.T) {
	a, _ := newTestApp(t)
	out, err := run(a, "preview", "-f", writeForm(t, mptForm))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Routes to the Build Shop") || !strings.Contains(out, "36") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if strings.Contains(out, "Not ready") {
		t.Fatalf("complete form reported as not ready:\n%s", out)
	}

	out, err = run(a, "preview", "-f", writeForm(t, `{"title":"x","work_type":"MPT"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, entities.UserMessage(entities.CodeNoItems)) {
		t.Fatalf("expected NO_ITEMS warning:\n%s", out)
	}
}

func TestSubmit(t *testing.T) {
	t.Run("routes by work type", func(t *testing.T) {
		a, gw := newTestApp(t)
		gw.EXPECT().Load(gomock.Any(), "t1").Return(loaded("t1", entities.TakeoffStatusDraft), nil)
		gw.EXPECT().SubmitToBuildShop(gomock.Any(), "t1").
			Return(interfaces.SubmitResult{TakeoffStatus: entities.TakeoffStatusSentToBuildShop}, nil)

		out, err := run(a, "submit", "t1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "now sent_to_build_shop") {
			t.Fatalf("unexpected output %q", out)
		}
	})

	t.Run("wrong shop is rejected locally", func(t *testing.T) {
		a, gw := newTestApp(t)
		gw.EXPECT().Load(gomock.Any(), "t1").Return(loaded("t1", entities.TakeoffStatusDraft), nil)

		_, err := run(a, "submit", "t1", "--shop", "sign")
		var se *usecase.SubmissionError
		if !errors.As(err, &se) || se.Code != entities.CodeDestinationMismatch {
			t.Fatalf("expected DESTINATION_MISMATCH, got %v", err)
		}
	})

	t.Run("unknown shop", func(t *testing.T) {
		a, gw := newTestApp(t)
		gw.EXPECT().Load(gomock.Any(), "t1").Return(loaded("t1", entities.TakeoffStatusDraft), nil)

		if _, err := run(a, "submit", "t1", "--shop", "paint"); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestCancel(t *testing.T) {
	t.Run("flags", func(t *testing.T) {
		a, gw := newTestApp(t)
		gw.EXPECT().Load(gomock.Any(), "t1").Return(loaded("t1", entities.TakeoffStatusSentToBuildShop), nil)
		gw.EXPECT().Cancel(gomock.Any(), "t1", entities.CancellationReasonOther, "moved").
			Return(interfaces.TransitionResult{TakeoffStatus: entities.TakeoffStatusCanceled}, nil)

		out, err := run(a, "cancel", "t1", "--reason", "OTHER", "--notes", "moved")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "now canceled") {
			t.Fatalf("unexpected output %q", out)
		}
	})

	t.Run("prompts for reason and notes", func(t *testing.T) {
		a, gw := newTestApp(t)
		a.selectReason = func() (entities.CancellationReason, error) { return entities.CancellationReasonOther, nil }
		a.promptNotes = func() (string, error) { return "client moved the job", nil }
		gw.EXPECT().Load(gomock.Any(), "t1").Return(loaded("t1", entities.TakeoffStatusSentToBuildShop), nil)
		gw.EXPECT().Cancel(gomock.Any(), "t1", entities.CancellationReasonOther, "client moved the job").
			Return(interfaces.TransitionResult{TakeoffStatus: entities.TakeoffStatusCanceled}, nil)

		if _, err := run(a, "cancel", "t1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestReopenAndRevise(t *testing.T) {
	t.Run("manufacturing started points at revise", func(t *testing.T) {
		a, gw := newTestApp(t)
		ld := loaded("t1", entities.TakeoffStatusCanceled)
		ld.ManufacturingStarted = true
		gw.EXPECT().Load(gomock.Any(), "t1").Return(ld, nil)

		out, err := run(a, "reopen", "t1")
		if !entities.HasCode(err, entities.CodeManufacturingStarted) {
			t.Fatalf("expected MANUFACTURING_STARTED, got %v", err)
		}
		if !strings.Contains(out, "takeoffctl revise t1") {
			t.Fatalf("unexpected output %q", out)
		}
	})

	t.Run("reopen", func(t *testing.T) {
		a, gw := newTestApp(t)
		gw.EXPECT().Load(gomock.Any(), "t1").Return(loaded("t1", entities.TakeoffStatusCanceled), nil)
		gw.EXPECT().Reopen(gomock.Any(), "t1").Return(interfaces.TransitionResult{TakeoffStatus: entities.TakeoffStatusDraft}, nil)

		out, err := run(a, "reopen", "t1")
		if err != nil || !strings.Contains(out, "now draft") {
			t.Fatalf("unexpected result %q, %v", out, err)
		}
	})

	t.Run("revise", func(t *testing.T) {
		a, gw := newTestApp(t)
		gw.EXPECT().Load(gomock.Any(), "t1").Return(loaded("t1", entities.TakeoffStatusSentToBuildShop), nil)
		gw.EXPECT().CreateRevision(gomock.Any(), "t1").Return(interfaces.RevisionResult{TakeoffID: "t2", RevisionNumber: 2}, nil)

		out, err := run(a, "revise", "t1")
		if err != nil || !strings.Contains(out, "Revision 2 created: t2") {
			t.Fatalf("unexpected result %q, %v", out, err)
		}
	})
}

func TestWorkOrder(t *testing.T) {
	a, gw := newTestApp(t)
	exists := entities.NewGatewayError(entities.CodeWorkOrderExists, "")
	exists.WorkOrderID = "wo-1"
	exists.WorkOrderNumber = "WO-1"
	gw.EXPECT().Load(gomock.Any(), "t1").Return(loaded("t1", entities.TakeoffStatusSentToBuildShop), nil)
	gw.EXPECT().GenerateLinkedWorkOrder(gomock.Any(), "t1").Return(entities.WorkOrderRef{}, exists)

	out, err := run(a, "work-order", "t1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Work order WO-1 (wo-1)") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestCatalog(t *testing.T) {
	a, _ := newTestApp(t)
	out, err := run(a, "catalog")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "key: type_iii") || !strings.Contains(out, "sandbags_per_structure:") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestPrintFailure(t *testing.T) {
	var buf bytes.Buffer
	printFailure(&buf, entities.NewGatewayError(entities.CodeDuplicateRequest, "server text"))
	if strings.TrimSpace(buf.String()) != entities.UserMessage(entities.CodeDuplicateRequest) {
		t.Fatalf("unexpected message %q", buf.String())
	}

	buf.Reset()
	printFailure(&buf, errors.New("dial tcp: refused"))
	if !strings.Contains(buf.String(), entities.GenericFailureMessage) || !strings.Contains(buf.String(), "refused") {
		t.Fatalf("unexpected message %q", buf.String())
	}
}
