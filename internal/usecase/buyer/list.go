package buyer

import (
	"context"

	domain "github.com/BruksfildServices01/buyer-leads/internal/domain/buyer"
	"github.com/BruksfildServices01/buyer-leads/internal/models"
)

type ListBuyersOutput struct {
	Buyers      []models.Buyer
	Total       int64
	PageCount   int
	CurrentPage int
}

type ListBuyers struct {
	repo domain.Repository
}

func NewListBuyers(repo domain.Repository) *ListBuyers {
	return &ListBuyers{repo: repo}
}

func (uc *ListBuyers) Execute(
	ctx context.Context,
	f domain.Filters,
) (*ListBuyersOutput, error) {

	buyers, total, err := uc.repo.ListBuyers(ctx, f)
	if err != nil {
		return nil, err
	}

	return &ListBuyersOutput{
		Buyers:      buyers,
		Total:       total,
		PageCount:   domain.PageCount(total, f.Limit),
		CurrentPage: f.Page,
	}, nil
}
