package buyer

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/buyer-leads/internal/models"
)

type Repository interface {
	// -------- Buyer (write) --------

	// CreateBuyer inserts b and its history entry in one transaction.
	CreateBuyer(
		ctx context.Context,
		b *models.Buyer,
		diff Diff,
	) error

	// UpdateBuyer locks the row, re-runs ApplyPatch against the locked
	// state and stores the result. History is written only for a
	// non-empty diff.
	UpdateBuyer(
		ctx context.Context,
		id uuid.UUID,
		actingUserID uuid.UUID,
		patch Patch,
	) (*models.Buyer, Diff, error)

	DeleteBuyer(
		ctx context.Context,
		id uuid.UUID,
		actingUserID uuid.UUID,
	) error

	// -------- Buyer (read) --------

	// GetBuyer loads the owner and the newest HistoryPreview entries.
	GetBuyer(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Buyer, error)

	ListBuyers(
		ctx context.Context,
		f Filters,
	) ([]models.Buyer, int64, error)
}

// UserRepository backs email login.
type UserRepository interface {
	UpsertByEmail(
		ctx context.Context,
		email string,
		name string,
	) (*models.User, error)

	GetUserByID(
		ctx context.Context,
		id uuid.UUID,
	) (*models.User, error)
}

const HistoryPreview = 5
