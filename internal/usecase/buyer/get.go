package buyer

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/buyer-leads/internal/domain/buyer"
	"github.com/BruksfildServices01/buyer-leads/internal/models"
)

type GetBuyer struct {
	repo domain.Repository
}

func NewGetBuyer(repo domain.Repository) *GetBuyer {
	return &GetBuyer{repo: repo}
}

func (uc *GetBuyer) Execute(ctx context.Context, id uuid.UUID) (*models.Buyer, error) {
	return uc.repo.GetBuyer(ctx, id)
}
