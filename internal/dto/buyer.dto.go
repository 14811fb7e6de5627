package dto

import (
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/buyer-leads/internal/domain/buyer"
	"github.com/BruksfildServices01/buyer-leads/internal/models"
)

type OwnerDTO struct {
	ID    uuid.UUID `json:"id"`
	Name  *string   `json:"name"`
	Email string    `json:"email"`
}

type HistoryDTO struct {
	ID        uuid.UUID   `json:"id"`
	ChangedBy uuid.UUID   `json:"changedBy"`
	ChangedAt time.Time   `json:"changedAt"`
	Diff      domain.Diff `json:"diff"`
}

type BuyerDTO struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"fullName"`
	Email        *string   `json:"email"`
	Phone        string    `json:"phone"`
	City         string    `json:"city"`
	PropertyType string    `json:"propertyType"`
	BHK          *string   `json:"bhk"`
	Purpose      string    `json:"purpose"`
	BudgetMin    *int      `json:"budgetMin"`
	BudgetMax    *int      `json:"budgetMax"`
	BudgetLabel  string    `json:"budgetLabel"`
	Timeline     string    `json:"timeline"`
	Source       string    `json:"source"`
	Status       string    `json:"status"`
	Notes        *string   `json:"notes"`
	Tags         *string   `json:"tags"`
	OwnerID      uuid.UUID `json:"ownerId"`
	Owner        *OwnerDTO `json:"owner,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type BuyerDetailDTO struct {
	BuyerDTO
	History []HistoryDTO `json:"history"`
}

func NewBuyerDTO(b *models.Buyer) BuyerDTO {
	out := BuyerDTO{
		ID:           b.ID,
		FullName:     b.FullName,
		Email:        b.Email,
		Phone:        b.Phone,
		City:         b.City,
		PropertyType: b.PropertyType,
		BHK:          b.BHK,
		Purpose:      b.Purpose,
		BudgetMin:    b.BudgetMin,
		BudgetMax:    b.BudgetMax,
		BudgetLabel:  domain.FormatBudget(b.BudgetMin, b.BudgetMax),
		Timeline:     b.Timeline,
		Source:       b.Source,
		Status:       b.Status,
		Notes:        b.Notes,
		Tags:         b.Tags,
		OwnerID:      b.OwnerID,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
	if b.Owner != nil {
		out.Owner = &OwnerDTO{ID: b.Owner.ID, Name: b.Owner.Name, Email: b.Owner.Email}
	}
	return out
}

func NewBuyerDTOs(bs []models.Buyer) []BuyerDTO {
	out := make([]BuyerDTO, 0, len(bs))
	for i := range bs {
		out = append(out, NewBuyerDTO(&bs[i]))
	}
	return out
}

// NewBuyerDetailDTO decodes history diffs. Entries that fail to decode
// are skipped and returned as the error count.
func NewBuyerDetailDTO(b *models.Buyer) (BuyerDetailDTO, int) {
	out := BuyerDetailDTO{
		BuyerDTO: NewBuyerDTO(b),
		History:  make([]HistoryDTO, 0, len(b.History)),
	}

	bad := 0
	for _, h := range b.History {
		d, err := domain.DecodeDiff(h.Diff)
		if err != nil {
			bad++
			continue
		}
		out.History = append(out.History, HistoryDTO{
			ID:        h.ID,
			ChangedBy: h.ChangedBy,
			ChangedAt: h.ChangedAt,
			Diff:      d,
		})
	}
	return out, bad
}
