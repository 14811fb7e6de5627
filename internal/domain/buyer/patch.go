package buyer

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/buyer-leads/internal/models"
)

// Patch is a partial edit. A nil field is left unchanged; an empty
// string clears email, notes and tags.
type Patch struct {
	FullName     *string       `json:"fullName"`
	Email        *string       `json:"email"`
	Phone        *string       `json:"phone"`
	City         *City         `json:"city"`
	PropertyType *PropertyType `json:"propertyType"`
	BHK          *BHK          `json:"bhk"`
	Purpose      *Purpose      `json:"purpose"`
	BudgetMin    *int          `json:"budgetMin"`
	BudgetMax    *int          `json:"budgetMax"`
	Timeline     *Timeline     `json:"timeline"`
	Source       *Source       `json:"source"`
	Status       *Status       `json:"status"`
	Notes        *string       `json:"notes"`
	Tags         *string       `json:"tags"`
}

// Merge returns a copy of current with the patch applied and normalised.
func (p Patch) Merge(current *models.Buyer) *models.Buyer {
	next := *current
	next.Owner = nil
	next.History = nil

	if p.FullName != nil {
		next.FullName = *p.FullName
	}
	if p.Email != nil {
		next.Email = blankToNil(clone(*p.Email))
	}
	if p.Phone != nil {
		next.Phone = *p.Phone
	}
	if p.City != nil {
		next.City = string(*p.City)
	}
	if p.PropertyType != nil {
		next.PropertyType = string(*p.PropertyType)
	}
	if p.BHK != nil {
		next.BHK = blankToNil(clone(string(*p.BHK)))
	}
	if p.Purpose != nil {
		next.Purpose = string(*p.Purpose)
	}
	if p.BudgetMin != nil {
		v := *p.BudgetMin
		next.BudgetMin = &v
	}
	if p.BudgetMax != nil {
		v := *p.BudgetMax
		next.BudgetMax = &v
	}
	if p.Timeline != nil {
		next.Timeline = string(*p.Timeline)
	}
	if p.Source != nil {
		next.Source = string(*p.Source)
	}
	if p.Status != nil {
		next.Status = string(*p.Status)
	}
	if p.Notes != nil {
		next.Notes = blankToNil(clone(*p.Notes))
	}
	if p.Tags != nil {
		next.Tags = blankToNil(clone(*p.Tags))
	}

	pt := PropertyType(next.PropertyType)
	if pt.Valid() && !pt.IsResidential() {
		next.BHK = nil
	}
	return &next
}

func clone(s string) *string {
	return &s
}

// ApplyPatch checks ownership, merges p into current, validates the
// merged record and returns it with the resulting diff. current is not
// modified.
func ApplyPatch(current *models.Buyer, p Patch, actingUserID uuid.UUID) (*models.Buyer, Diff, error) {
	if current.OwnerID != actingUserID {
		return nil, Diff{}, ErrNotOwner
	}

	next := p.Merge(current)
	if err := ValidateRecord(next); err != nil {
		return nil, Diff{}, err
	}

	return next, NewUpdatedDiff(current, next), nil
}
