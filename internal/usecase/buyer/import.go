package buyer

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/buyer-leads/internal/domain/buyer"
	"github.com/BruksfildServices01/buyer-leads/internal/metrics"
	"github.com/BruksfildServices01/buyer-leads/internal/models"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type ImportBuyersInput struct {
	OwnerID uuid.UUID
	Rows    []domain.CSVRow
}

// ImportRowError reports a rejected row by its line number in the file.
type ImportRowError struct {
	Row        int                `json:"row"`
	Error      string             `json:"error"`
	Violations []domain.Violation `json:"violations,omitempty"`
}

type ImportResult struct {
	Success []models.Buyer   `json:"success"`
	Errors  []ImportRowError `json:"errors"`
}

// ======================================================
// USE CASE
// ======================================================

type ImportBuyers struct {
	create *CreateBuyer
	log    *zap.Logger
}

func NewImportBuyers(create *CreateBuyer, log *zap.Logger) *ImportBuyers {
	return &ImportBuyers{create: create, log: log}
}

// Execute validates every row independently and creates the valid ones
// one at a time. There is no cross-row transaction: rows created before a
// failure stay created.
func (uc *ImportBuyers) Execute(
	ctx context.Context,
	in ImportBuyersInput,
) (*ImportResult, error) {

	if len(in.Rows) > domain.MaxImportRows {
		return nil, domain.ErrTooManyRows
	}

	type pending struct {
		row  int
		form domain.Form
	}

	res := &ImportResult{
		Success: []models.Buyer{},
		Errors:  []ImportRowError{},
	}

	// --------------------------------------------------
	// 1. validation
	// --------------------------------------------------
	var valid []pending
	for i, raw := range in.Rows {
		rowNum := i + domain.FirstDataRow

		form, err := domain.FormFromCSV(raw)
		if err != nil {
			res.Errors = append(res.Errors, rowError(rowNum, err))
			metrics.ImportRows.WithLabelValues("invalid").Inc()
			continue
		}
		valid = append(valid, pending{row: rowNum, form: form})
	}

	// --------------------------------------------------
	// 2. creation
	// --------------------------------------------------
	for _, p := range valid {
		b, err := uc.create.Execute(ctx, CreateBuyerInput{OwnerID: in.OwnerID, Form: p.form})
		if err != nil {
			uc.log.Warn("import row failed",
				zap.Int("row", p.row),
				zap.String("owner_id", in.OwnerID.String()),
				zap.Error(err),
			)
			res.Errors = append(res.Errors, ImportRowError{Row: p.row, Error: "Failed to create buyer"})
			metrics.ImportRows.WithLabelValues("failed").Inc()
			continue
		}
		res.Success = append(res.Success, *b)
		metrics.ImportRows.WithLabelValues("created").Inc()
	}

	return res, nil
}

func rowError(row int, err error) ImportRowError {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return ImportRowError{Row: row, Error: verr.Error(), Violations: verr.Violations}
	}
	return ImportRowError{Row: row, Error: err.Error()}
}
