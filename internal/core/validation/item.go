// Package validation checks item field well-formedness before a write reaches
// the repository. It runs identically for every caller: validation belongs to
// the write path, not to the transport that carried the request.
package validation

import (
	"context"
	"time"

	"github.com/invenco/inventory-system/internal/core/domain"
)

// FieldError reports the first field that failed validation and why.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Reason
}

// UserFinder resolves owner references against the identity store.
type UserFinder interface {
	UserExists(ctx context.Context, id string) (bool, error)
}

// ItemDraft carries candidate item fields. Nil means "not supplied": a create
// requires the core fields to be present, a patch validates only what is set.
type ItemDraft struct {
	Name            *string
	Category        *string
	Quantity        *int
	EstimatedPrice  *float64
	Location        *string
	AcquisitionDate *string
	OwnerID         *string
}

// ValidItem is a fully checked draft ready for ItemRepository.Create.
type ValidItem struct {
	Name            string
	Category        string
	Quantity        int
	EstimatedPrice  float64
	Location        string
	AcquisitionDate time.Time
	OwnerID         string
}

// ItemPatch is a checked partial update. Nil fields are left unchanged by the
// repository.
type ItemPatch struct {
	Name            *string
	Category        *string
	Quantity        *int
	EstimatedPrice  *float64
	Location        *string
	AcquisitionDate *time.Time
	OwnerID         *string
}

// Empty reports whether the patch changes nothing.
func (p *ItemPatch) Empty() bool {
	return p.Name == nil && p.Category == nil && p.Quantity == nil &&
		p.EstimatedPrice == nil && p.Location == nil &&
		p.AcquisitionDate == nil && p.OwnerID == nil
}

// ValidateCreate checks a draft for item creation. Checks run in a fixed
// order and short-circuit on the first failure.
func ValidateCreate(ctx context.Context, draft ItemDraft, users UserFinder) (*ValidItem, error) {
	if draft.Name == nil || *draft.Name == "" {
		return nil, &FieldError{Field: "name", Reason: "must not be empty"}
	}
	if draft.Quantity == nil {
		return nil, &FieldError{Field: "quantity", Reason: "is required"}
	}
	if *draft.Quantity < 0 {
		return nil, &FieldError{Field: "quantity", Reason: "must be a non-negative integer"}
	}
	if draft.EstimatedPrice == nil {
		return nil, &FieldError{Field: "estimated_price", Reason: "is required"}
	}
	if *draft.EstimatedPrice < 0 {
		return nil, &FieldError{Field: "estimated_price", Reason: "must be a non-negative number"}
	}
	if draft.AcquisitionDate == nil {
		return nil, &FieldError{Field: "acquisition_date", Reason: "is required"}
	}
	date, err := parseDate(*draft.AcquisitionDate)
	if err != nil {
		return nil, err
	}
	if err := checkOwner(ctx, draft.OwnerID, users); err != nil {
		return nil, err
	}

	item := &ValidItem{
		Name:            *draft.Name,
		Quantity:        *draft.Quantity,
		EstimatedPrice:  *draft.EstimatedPrice,
		AcquisitionDate: date,
	}
	if draft.Category != nil {
		item.Category = *draft.Category
	}
	if draft.Location != nil {
		item.Location = *draft.Location
	}
	if draft.OwnerID != nil {
		item.OwnerID = *draft.OwnerID
	}
	return item, nil
}

// ValidatePatch checks the supplied fields of a partial update, in the same
// order as ValidateCreate. Absent fields are skipped.
func ValidatePatch(ctx context.Context, draft ItemDraft, users UserFinder) (*ItemPatch, error) {
	patch := &ItemPatch{}

	if draft.Name != nil {
		if *draft.Name == "" {
			return nil, &FieldError{Field: "name", Reason: "must not be empty"}
		}
		patch.Name = draft.Name
	}
	if draft.Category != nil {
		patch.Category = draft.Category
	}
	if draft.Quantity != nil {
		if *draft.Quantity < 0 {
			return nil, &FieldError{Field: "quantity", Reason: "must be a non-negative integer"}
		}
		patch.Quantity = draft.Quantity
	}
	if draft.EstimatedPrice != nil {
		if *draft.EstimatedPrice < 0 {
			return nil, &FieldError{Field: "estimated_price", Reason: "must be a non-negative number"}
		}
		patch.EstimatedPrice = draft.EstimatedPrice
	}
	if draft.Location != nil {
		patch.Location = draft.Location
	}
	if draft.AcquisitionDate != nil {
		date, err := parseDate(*draft.AcquisitionDate)
		if err != nil {
			return nil, err
		}
		patch.AcquisitionDate = &date
	}
	if draft.OwnerID != nil {
		if err := checkOwner(ctx, draft.OwnerID, users); err != nil {
			return nil, err
		}
		patch.OwnerID = draft.OwnerID
	}
	return patch, nil
}

func parseDate(s string) (time.Time, error) {
	date, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		return time.Time{}, &FieldError{
			Field:  "acquisition_date",
			Reason: "must be a valid date in format " + domain.DateFormat,
		}
	}
	return date, nil
}

func checkOwner(ctx context.Context, ownerID *string, users UserFinder) error {
	if ownerID == nil {
		return nil
	}
	if *ownerID == "" {
		return &FieldError{Field: "owner_id", Reason: "must not be empty"}
	}
	exists, err := users.UserExists(ctx, *ownerID)
	if err != nil {
		return err
	}
	if !exists {
		return &FieldError{Field: "owner_id", Reason: "must reference an existing user"}
	}
	return nil
}
