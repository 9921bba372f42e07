package entities

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestWorkTypeDestination(t *testing.T) {
	for _, wt := range append(WorkTypes(), WorkType("UNKNOWN"), WorkType("")) {
		t.Run(string(wt), func(t *testing.T) {
			first := wt.Destination()
			for i := 0; i < 5; i++ {
				if got := wt.Destination(); got != first {
					t.Fatalf("destination changed between calls: %s vs %s", first, got)
				}
			}
			want := DestinationBuildShop
			if wt == WorkTypePermanentSigns {
				want = DestinationSignShop
			}
			if first != want {
				t.Fatalf("expected %s, got %s", want, first)
			}
		})
	}
}

func TestDestinationSubmittedStatus(t *testing.T) {
	if DestinationBuildShop.SubmittedStatus() != TakeoffStatusSentToBuildShop {
		t.Fatalf("build shop status mismatch")
	}
	if DestinationSignShop.SubmittedStatus() != TakeoffStatusSentToSignShop {
		t.Fatalf("sign shop status mismatch")
	}
	if !TakeoffStatusSentToSignShop.IsSubmitted() || TakeoffStatusCanceled.IsSubmitted() || TakeoffStatusDraft.IsSubmitted() {
		t.Fatalf("IsSubmitted mismatch")
	}
}

func TestItemMetadataValidate(t *testing.T) {
	cases := []struct {
		name    string
		meta    ItemMetadata
		wantErr bool
	}{
		{"mpt ok", ItemMetadata{Kind: ItemKindMPTSign, MPTSign: &MPTSignMetadata{}}, false},
		{"perm ok", ItemMetadata{Kind: ItemKindPermSign, PermSign: &PermSignMetadata{}}, false},
		{"plain ok", ItemMetadata{Kind: ItemKindPlain, Plain: &PlainMetadata{Source: PlainSourceVehicle}}, false},
		{"kind mismatch", ItemMetadata{Kind: ItemKindPermSign, MPTSign: &MPTSignMetadata{}}, true},
		{"no payload", ItemMetadata{Kind: ItemKindPlain}, true},
		{"two payloads", ItemMetadata{Kind: ItemKindPlain, Plain: &PlainMetadata{}, MPTSign: &MPTSignMetadata{}}, true},
		{"unknown kind", ItemMetadata{Kind: "blob", Plain: &PlainMetadata{}}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.meta.Validate()
			if tc.wantErr && !errors.Is(err, ErrInvalidItemMetadata) {
				t.Fatalf("expected ErrInvalidItemMetadata, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestItemMetadataJSONKeepsSignDetail(t *testing.T) {
	in := TakeoffItem{
		Name:     "W20-1",
		Category: "Type IIIs",
		Unit:     UnitSquareFeet,
		Quantity: 2,
		Material: SignMaterialDibond,
		Metadata: ItemMetadata{
			Kind: ItemKindMPTSign,
			MPTSign: &MPTSignMetadata{
				SignGeometry:  SignGeometry{RowID: "r1", Width: 48, Height: 48, SqFt: 16, TotalSqFt: 32, SortIndex: 3},
				SectionKey:    "type_iii",
				StructureType: "6FT RIGHT",
				BLights:       "yellow",
				Cover:         true,
			},
		},
	}
	raw, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	var out TakeoffItem
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round trip mismatch:\n%+v\n%+v", in, out)
	}
}

func TestGatewayError(t *testing.T) {
	t.Run("known code message", func(t *testing.T) {
		ge := NewGatewayError(CodeNoItems, "")
		if ge.Message != UserMessage(CodeNoItems) {
			t.Fatalf("unexpected message %q", ge.Message)
		}
	})

	t.Run("unknown code falls back", func(t *testing.T) {
		if UserMessage("SOMETHING_NEW") != GenericFailureMessage {
			t.Fatalf("expected generic message")
		}
	})

	t.Run("classification through wrapping", func(t *testing.T) {
		err := fmt.Errorf("submit: %w", NewGatewayError(CodeDuplicateRequest, ""))
		if !HasCode(err, CodeDuplicateRequest) {
			t.Fatalf("expected wrapped code to be detected")
		}
		if HasCode(errors.New("boom"), CodeDuplicateRequest) {
			t.Fatalf("plain error must not match")
		}
	})
}

func TestCancellationReason(t *testing.T) {
	if !CancellationReasonOther.RequiresNotes("  ") {
		t.Fatalf("other without notes must require notes")
	}
	if CancellationReasonOther.RequiresNotes("client moved") {
		t.Fatalf("other with notes is complete")
	}
	if CancellationReasonDuplicate.RequiresNotes("") {
		t.Fatalf("duplicate never requires notes")
	}
	if CancellationReason("typo").Valid() {
		t.Fatalf("unknown reason must be invalid")
	}
}

func TestDateRange(t *testing.T) {
	if !(DateRange{Start: "2025-03-01", End: "2025-03-01"}).Valid() {
		t.Fatalf("single day range is valid")
	}
	if (DateRange{Start: "2025-03-02", End: "2025-03-01"}).Valid() {
		t.Fatalf("end before start is invalid")
	}
	if (DateRange{Start: "03/01/2025", End: "2025-03-01"}).Valid() {
		t.Fatalf("bad layout is invalid")
	}
}

func TestTakeoffFormClone(t *testing.T) {
	f := NewTakeoffForm(WorkTypeMPT)
	f.Rows.ActiveSections = []string{"type_iii"}
	f.Rows.MPTRows["type_iii"] = []MPTSignRow{{ID: "r1", Designation: "W1-1", SecondarySigns: []SecondarySign{{ID: "s1"}}}}

	c := f.Clone()
	c.Rows.MPTRows["type_iii"][0].Designation = "changed"
	c.Rows.MPTRows["type_iii"][0].SecondarySigns[0].ID = "changed"
	c.Rows.ActiveSections[0] = "changed"

	if f.Rows.MPTRows["type_iii"][0].Designation != "W1-1" ||
		f.Rows.MPTRows["type_iii"][0].SecondarySigns[0].ID != "s1" ||
		f.Rows.ActiveSections[0] != "type_iii" {
		t.Fatalf("clone shares state with the original")
	}
	if f.Priority != PriorityStandard || f.DefaultMaterial != SignMaterialPlastic {
		t.Fatalf("defaults not applied: %+v", f.TakeoffFields)
	}
}
