package buyer

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/buyer-leads/internal/domain/buyer"
	"github.com/BruksfildServices01/buyer-leads/internal/metrics"
	"github.com/BruksfildServices01/buyer-leads/internal/models"
)

type UpdateBuyerInput struct {
	ID           uuid.UUID
	ActingUserID uuid.UUID
	Patch        domain.Patch
}

type UpdateBuyer struct {
	repo domain.Repository
}

func NewUpdateBuyer(repo domain.Repository) *UpdateBuyer {
	return &UpdateBuyer{repo: repo}
}

// Execute loads a fresh snapshot, rejects non-owners and invalid merges
// before touching storage, then lets the repository repeat the same
// checks under a row lock.
func (uc *UpdateBuyer) Execute(
	ctx context.Context,
	in UpdateBuyerInput,
) (*models.Buyer, error) {

	snapshot, err := uc.repo.GetBuyer(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if _, _, err := domain.ApplyPatch(snapshot, in.Patch, in.ActingUserID); err != nil {
		return nil, err
	}

	updated, diff, err := uc.repo.UpdateBuyer(ctx, in.ID, in.ActingUserID, in.Patch)
	if err != nil {
		return nil, err
	}

	if !diff.Empty() {
		metrics.HistoryEntries.WithLabelValues(string(domain.ActionUpdated)).Inc()
	}
	return updated, nil
}
