package buyer

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/buyer-leads/internal/domain/buyer"
	"github.com/BruksfildServices01/buyer-leads/internal/metrics"
	"github.com/BruksfildServices01/buyer-leads/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBuyerInput struct {
	OwnerID uuid.UUID
	Form    domain.Form
}

// ======================================================
// USE CASE
// ======================================================

type CreateBuyer struct {
	repo domain.Repository
}

func NewCreateBuyer(repo domain.Repository) *CreateBuyer {
	return &CreateBuyer{repo: repo}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBuyer) Execute(
	ctx context.Context,
	in CreateBuyerInput,
) (*models.Buyer, error) {

	form, err := domain.Validate(in.Form)
	if err != nil {
		return nil, err
	}

	b := form.ToModel(in.OwnerID)
	if err := uc.repo.CreateBuyer(ctx, b, domain.NewCreatedDiff(b)); err != nil {
		return nil, err
	}

	metrics.HistoryEntries.WithLabelValues(string(domain.ActionCreated)).Inc()
	return b, nil
}
