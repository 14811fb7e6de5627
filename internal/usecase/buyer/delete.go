package buyer

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/buyer-leads/internal/domain/buyer"
)

type DeleteBuyer struct {
	repo domain.Repository
}

func NewDeleteBuyer(repo domain.Repository) *DeleteBuyer {
	return &DeleteBuyer{repo: repo}
}

func (uc *DeleteBuyer) Execute(ctx context.Context, id, actingUserID uuid.UUID) error {
	return uc.repo.DeleteBuyer(ctx, id, actingUserID)
}
