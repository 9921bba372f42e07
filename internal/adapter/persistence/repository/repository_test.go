package repository

import (
	"context"
	"reflect"
	"testing"
	"time"

	"etc_takeoffs/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func sampleTakeoff(id string) entities.Takeoff {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return entities.Takeoff{
		ID: id,
		TakeoffFields: entities.TakeoffFields{
			JobID:                  "job-7",
			Title:                  "Route 9 closure",
			WorkType:               entities.WorkTypeFlagging,
			Priority:               entities.PriorityUrgent,
			ContractedOrAdditional: entities.ContractedWork,
			FlaggingDates:          &entities.DateRange{Start: "2025-03-02", End: "2025-03-04"},
			CrewNotes:              "night shift",
			DefaultMaterial:        entities.SignMaterialPlastic,
		},
		Status:         entities.TakeoffStatusDraft,
		RevisionNumber: 1,
		Items: []entities.TakeoffItem{{
			Name: "W20-1", Category: "Type IIIs", Unit: entities.UnitSquareFeet, Quantity: 2,
			Metadata: entities.ItemMetadata{Kind: entities.ItemKindMPTSign, MPTSign: &entities.MPTSignMetadata{
				SignGeometry: entities.SignGeometry{RowID: "r1"}, SectionKey: "type_iii", StructureType: "6FT RIGHT",
			}},
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestTakeoffDynamoRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create and load round trip", func(t *testing.T) {
		repo := NewTakeoffDynamoRepository(newFakeDynamo(), "", "")
		in := sampleTakeoff("t1")
		if _, err := repo.Create(ctx, in); err != nil {
			t.Fatalf("create: %v", err)
		}
		got, err := repo.GetByID(ctx, "t1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if !reflect.DeepEqual(got, in) {
			t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, in)
		}
	})

	t.Run("items are stored as typed maps", func(t *testing.T) {
		db := newFakeDynamo()
		repo := NewTakeoffDynamoRepository(db, "", "")
		in := sampleTakeoff("t1")
		in.WorkType = entities.WorkTypePermanentSigns
		in.Items = []entities.TakeoffItem{
			{
				Name: "D3-1", Category: entities.PermSignCategory("0935-0001"), Unit: entities.UnitSquareFeet, Quantity: 1,
				Material: entities.SignMaterialAluminum,
				Metadata: entities.ItemMetadata{Kind: entities.ItemKindPermSign, PermSign: &entities.PermSignMetadata{
					SignGeometry: entities.SignGeometry{RowID: "p", Width: 30, Height: 24, SqFt: 5, TotalSqFt: 5},
					ItemNumber:   "0935-0001", PostSize: "3", PlanSheetNumbers: []string{"S-1", "S-2"},
				}},
			},
			{
				Name: "D3-1a", Category: entities.PermSignCategory("0935-0001"), Unit: entities.UnitSquareFeet, Quantity: 1,
				Material: entities.SignMaterialAluminum,
				Metadata: entities.ItemMetadata{Kind: entities.ItemKindPermSign, PermSign: &entities.PermSignMetadata{
					SignGeometry: entities.SignGeometry{RowID: "s", ParentRowID: "p", SqFt: 1.25, TotalSqFt: 1.25, SortIndex: 0},
					ItemNumber:   "0935-0001",
				}},
			},
			{
				Name: "Arrow Board", Category: entities.CategoryRollingStock, Unit: entities.UnitEach, Quantity: 1,
				Metadata: entities.ItemMetadata{Kind: entities.ItemKindPlain, Plain: &entities.PlainMetadata{
					Source: entities.PlainSourceRollingStock, RowID: "e", EquipmentType: "Arrow Board", EquipmentID: "AB-1",
				}},
			},
		}
		if _, err := repo.Create(ctx, in); err != nil {
			t.Fatalf("create: %v", err)
		}

		raw := db.table(defaultTakeoffsTableName)["t1"]
		list, ok := raw["items"].(*types.AttributeValueMemberL)
		if !ok || len(list.Value) != 3 {
			t.Fatalf("expected items list of 3, got %T", raw["items"])
		}
		first, ok := list.Value[0].(*types.AttributeValueMemberM)
		if !ok {
			t.Fatalf("expected item map, got %T", list.Value[0])
		}
		if _, ok := first.Value["perm_sign"].(*types.AttributeValueMemberM); !ok {
			t.Fatalf("expected perm_sign map, got %T", first.Value["perm_sign"])
		}
		if _, ok := first.Value["mpt_sign"]; ok {
			t.Fatalf("unset metadata should be omitted")
		}

		got, err := repo.GetByID(ctx, "t1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if !reflect.DeepEqual(got.Items, in.Items) {
			t.Fatalf("items mismatch:\n got %+v\nwant %+v", got.Items, in.Items)
		}
	})

	t.Run("create twice fails", func(t *testing.T) {
		repo := NewTakeoffDynamoRepository(newFakeDynamo(), "", "")
		_, _ = repo.Create(ctx, sampleTakeoff("t1"))
		if _, err := repo.Create(ctx, sampleTakeoff("t1")); !isConditionalCheckFailed(err) {
			t.Fatalf("expected conditional check failure, got %v", err)
		}
	})

	t.Run("missing takeoff is the zero value", func(t *testing.T) {
		repo := NewTakeoffDynamoRepository(newFakeDynamo(), "", "")
		got, err := repo.GetByID(ctx, "nope")
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero takeoff, got %+v, %v", got, err)
		}
		saved, err := repo.Save(ctx, sampleTakeoff("nope"))
		if err != nil || saved.ID != "" {
			t.Fatalf("expected zero takeoff from save, got %+v, %v", saved, err)
		}
		updated, err := repo.UpdateStatus(ctx, "nope", entities.TakeoffStatusCanceled)
		if err != nil || updated.ID != "" {
			t.Fatalf("expected zero takeoff from status update, got %+v, %v", updated, err)
		}
	})

	t.Run("save replaces items", func(t *testing.T) {
		repo := NewTakeoffDynamoRepository(newFakeDynamo(), "", "")
		in := sampleTakeoff("t1")
		_, _ = repo.Create(ctx, in)
		in.Items = nil
		if _, err := repo.Save(ctx, in); err != nil {
			t.Fatalf("save: %v", err)
		}
		got, _ := repo.GetByID(ctx, "t1")
		if len(got.Items) != 0 {
			t.Fatalf("expected items replaced, got %d", len(got.Items))
		}
	})

	t.Run("update status", func(t *testing.T) {
		repo := NewTakeoffDynamoRepository(newFakeDynamo(), "", "")
		_, _ = repo.Create(ctx, sampleTakeoff("t1"))
		got, err := repo.UpdateStatus(ctx, "t1", entities.TakeoffStatusSentToBuildShop)
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if got.Status != entities.TakeoffStatusSentToBuildShop || got.Title != "Route 9 closure" || len(got.Items) != 1 {
			t.Fatalf("unexpected takeoff %+v", got)
		}
	})

	t.Run("cancellations are listed oldest first", func(t *testing.T) {
		repo := NewTakeoffDynamoRepository(newFakeDynamo(), "", "")
		base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		recs := []entities.CancellationRecord{
			{ID: "c2", TakeoffID: "t1", Reason: entities.CancellationReasonOther, Notes: "moved", PreviousStatus: entities.TakeoffStatusDraft, CanceledAt: base.Add(time.Hour)},
			{ID: "c1", TakeoffID: "t1", Reason: entities.CancellationReasonDuplicate, PreviousStatus: entities.TakeoffStatusSentToBuildShop, CanceledAt: base},
			{ID: "c3", TakeoffID: "t2", Reason: entities.CancellationReasonJobCanceled, CanceledAt: base},
		}
		for _, r := range recs {
			if err := repo.AppendCancellation(ctx, r); err != nil {
				t.Fatalf("append: %v", err)
			}
		}

		got, err := repo.ListCancellations(ctx, "t1")
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(got) != 2 || got[0].ID != "c1" || got[1].ID != "c2" || got[1].Notes != "moved" {
			t.Fatalf("unexpected cancellations %+v", got)
		}
	})
}

func TestFabricationRequestDynamoRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewFabricationRequestDynamoRepository(newFakeDynamo(), "")
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	for i, id := range []string{"fr2", "fr1"} {
		_, err := repo.Create(ctx, entities.FabricationRequest{
			ID: id, TakeoffID: "t1", Destination: entities.DestinationBuildShop, RevisionNumber: 1,
			CreatedAt: base.Add(time.Duration(1-i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	reqs, err := repo.ListByTakeoffID(ctx, "t1")
	if err != nil || len(reqs) != 2 || reqs[0].ID != "fr1" {
		t.Fatalf("unexpected requests %+v, %v", reqs, err)
	}
	if entities.AnyManufacturingStarted(reqs) {
		t.Fatalf("nothing started yet")
	}

	first, err := repo.MarkManufacturingStarted(ctx, "fr1")
	if err != nil || !first.ManufacturingStarted || first.ManufacturingStartedAt == nil {
		t.Fatalf("unexpected request %+v, %v", first, err)
	}
	second, err := repo.MarkManufacturingStarted(ctx, "fr1")
	if err != nil || !second.ManufacturingStartedAt.Equal(*first.ManufacturingStartedAt) {
		t.Fatalf("start time should be kept, got %+v, %v", second, err)
	}

	missing, err := repo.MarkManufacturingStarted(ctx, "nope")
	if err != nil || missing.ID != "" {
		t.Fatalf("expected zero request, got %+v, %v", missing, err)
	}

	reqs, _ = repo.ListByTakeoffID(ctx, "t1")
	if !entities.AnyManufacturingStarted(reqs) {
		t.Fatalf("expected manufacturing started")
	}
}

func TestWorkOrderDynamoRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewWorkOrderDynamoRepository(newFakeDynamo(), "")
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	wo := entities.LinkedWorkOrder{TakeoffID: "t1", ID: "wo-1", Number: "WO-202503010001", CreatedAt: now}
	got, created, err := repo.CreateIfAbsent(ctx, wo)
	if err != nil || !created || got.ID != "wo-1" {
		t.Fatalf("unexpected first create %+v, %v, %v", got, created, err)
	}

	existing, created, err := repo.CreateIfAbsent(ctx, entities.LinkedWorkOrder{TakeoffID: "t1", ID: "wo-2", Number: "WO-x", CreatedAt: now})
	if err != nil || created {
		t.Fatalf("expected existing work order, got created=%v err=%v", created, err)
	}
	if existing != wo {
		t.Fatalf("expected %+v, got %+v", wo, existing)
	}

	none, err := repo.GetByTakeoffID(ctx, "t9")
	if err != nil || none.ID != "" {
		t.Fatalf("expected zero work order, got %+v, %v", none, err)
	}
}

func TestEquipmentReservationDynamoRepository(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	repo := NewEquipmentReservationDynamoRepository(ddb, "")

	equipment := []entities.TakeoffItem{
		{Name: "Arrow Board", Quantity: 1, Metadata: entities.ItemMetadata{Kind: entities.ItemKindPlain, Plain: &entities.PlainMetadata{
			Source: entities.PlainSourceRollingStock, RowID: "r1", EquipmentType: "Arrow Board", EquipmentID: "AB-12",
		}}},
		{Name: "Message Board", Quantity: 1},
	}
	if err := repo.Reserve(ctx, "t1", equipment); err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if err := repo.Reserve(ctx, "t1", equipment); err != nil {
		t.Fatalf("re-reserve should be a no-op: %v", err)
	}

	table := ddb.tables[defaultEquipmentReservationsTableName]
	if len(table) != 2 {
		t.Fatalf("expected 2 reservations, got %d", len(table))
	}
	if _, ok := table["t1#r1"]; !ok {
		t.Fatalf("expected reservation keyed by row id")
	}
	if _, ok := table["t1#1"]; !ok {
		t.Fatalf("expected reservation keyed by position")
	}
}
