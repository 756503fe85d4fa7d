package validation

import (
	"context"
	"errors"
	"testing"
	"time"
)

// stubUsers is an in-memory UserFinder.
type stubUsers map[string]bool

func (s stubUsers) UserExists(_ context.Context, id string) (bool, error) {
	return s[id], nil
}

func strptr(s string) *string { return &s }
func intptr(i int) *int       { return &i }
func fptr(f float64) *float64 { return &f }

func validDraft() ItemDraft {
	return ItemDraft{
		Name:            strptr("Drill"),
		Category:        strptr("Tools"),
		Quantity:        intptr(3),
		EstimatedPrice:  fptr(49.99),
		Location:        strptr("ShelfA"),
		AcquisitionDate: strptr("2024-01-10"),
	}
}

func fieldOf(t *testing.T, err error) string {
	t.Helper()
	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldError, got %v", err)
	}
	return fe.Field
}

func TestValidateCreate_Success(t *testing.T) {
	item, err := ValidateCreate(context.Background(), validDraft(), stubUsers{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Name != "Drill" || item.Quantity != 3 || item.EstimatedPrice != 49.99 {
		t.Errorf("fields not carried over: %+v", item)
	}
	want := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	if !item.AcquisitionDate.Equal(want) {
		t.Errorf("date = %v, want %v", item.AcquisitionDate, want)
	}
}

func TestValidateCreate_EmptyName(t *testing.T) {
	draft := validDraft()
	draft.Name = strptr("")
	_, err := ValidateCreate(context.Background(), draft, stubUsers{})
	if fieldOf(t, err) != "name" {
		t.Errorf("expected name error, got %v", err)
	}
}

func TestValidateCreate_NegativeQuantity(t *testing.T) {
	draft := validDraft()
	draft.Quantity = intptr(-1)
	_, err := ValidateCreate(context.Background(), draft, stubUsers{})
	if fieldOf(t, err) != "quantity" {
		t.Errorf("expected quantity error, got %v", err)
	}
}

func TestValidateCreate_NegativePrice(t *testing.T) {
	draft := validDraft()
	draft.EstimatedPrice = fptr(-0.01)
	_, err := ValidateCreate(context.Background(), draft, stubUsers{})
	if fieldOf(t, err) != "estimated_price" {
		t.Errorf("expected estimated_price error, got %v", err)
	}
}

func TestValidateCreate_UnparseableDate(t *testing.T) {
	for _, bad := range []string{"not-a-date", "2024-13-40", "10/01/2024"} {
		draft := validDraft()
		draft.AcquisitionDate = strptr(bad)
		_, err := ValidateCreate(context.Background(), draft, stubUsers{})
		if fieldOf(t, err) != "acquisition_date" {
			t.Errorf("date %q: expected acquisition_date error, got %v", bad, err)
		}
	}
}

func TestValidateCreate_ShortCircuitsOnFirstFailure(t *testing.T) {
	draft := validDraft()
	draft.Name = strptr("")
	draft.Quantity = intptr(-5)
	_, err := ValidateCreate(context.Background(), draft, stubUsers{})
	// name is checked before quantity
	if fieldOf(t, err) != "name" {
		t.Errorf("expected name error first, got %v", err)
	}
}

func TestValidateCreate_UnknownOwner(t *testing.T) {
	draft := validDraft()
	draft.OwnerID = strptr("ghost")
	_, err := ValidateCreate(context.Background(), draft, stubUsers{})
	if fieldOf(t, err) != "owner_id" {
		t.Errorf("expected owner_id error, got %v", err)
	}
}

func TestValidateCreate_KnownOwner(t *testing.T) {
	draft := validDraft()
	draft.OwnerID = strptr("u1")
	item, err := ValidateCreate(context.Background(), draft, stubUsers{"u1": true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.OwnerID != "u1" {
		t.Errorf("owner = %q, want u1", item.OwnerID)
	}
}

func TestValidateCreate_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		strip func(*ItemDraft)
		field string
	}{
		{"no name", func(d *ItemDraft) { d.Name = nil }, "name"},
		{"no quantity", func(d *ItemDraft) { d.Quantity = nil }, "quantity"},
		{"no price", func(d *ItemDraft) { d.EstimatedPrice = nil }, "estimated_price"},
		{"no date", func(d *ItemDraft) { d.AcquisitionDate = nil }, "acquisition_date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.strip(&draft)
			_, err := ValidateCreate(context.Background(), draft, stubUsers{})
			if fieldOf(t, err) != tt.field {
				t.Errorf("expected %s error, got %v", tt.field, err)
			}
		})
	}
}

func TestValidatePatch_OnlyChecksPresentFields(t *testing.T) {
	patch, err := ValidatePatch(context.Background(), ItemDraft{Quantity: intptr(7)}, stubUsers{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if patch.Quantity == nil || *patch.Quantity != 7 {
		t.Errorf("quantity not carried: %+v", patch)
	}
	if patch.Name != nil || patch.EstimatedPrice != nil {
		t.Errorf("absent fields must stay nil: %+v", patch)
	}
}

func TestValidatePatch_RejectsNegativeQuantity(t *testing.T) {
	_, err := ValidatePatch(context.Background(), ItemDraft{Quantity: intptr(-5)}, stubUsers{})
	if fieldOf(t, err) != "quantity" {
		t.Errorf("expected quantity error, got %v", err)
	}
}

func TestValidatePatch_RejectsEmptyName(t *testing.T) {
	_, err := ValidatePatch(context.Background(), ItemDraft{Name: strptr("")}, stubUsers{})
	if fieldOf(t, err) != "name" {
		t.Errorf("expected name error, got %v", err)
	}
}

func TestValidatePatch_Empty(t *testing.T) {
	patch, err := ValidatePatch(context.Background(), ItemDraft{}, stubUsers{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !patch.Empty() {
		t.Error("patch from empty draft should be empty")
	}
}
