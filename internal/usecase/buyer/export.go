package buyer

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/buyer-leads/internal/domain/buyer"
)

// Archiver stores a copy of an export.
type Archiver interface {
	Archive(ctx context.Context, key string, body []byte) error
}

type ExportBuyersInput struct {
	RequestedBy uuid.UUID
	Filters     domain.Filters
}

type ExportBuyersOutput struct {
	Filename string
	Body     []byte
	Count    int
}

type ExportBuyers struct {
	repo     domain.Repository
	archiver Archiver
	log      *zap.Logger
	now      func() time.Time
}

// NewExportBuyers builds the export use case. archiver may be nil.
func NewExportBuyers(repo domain.Repository, archiver Archiver, log *zap.Logger) *ExportBuyers {
	return &ExportBuyers{repo: repo, archiver: archiver, log: log, now: time.Now}
}

func (uc *ExportBuyers) Execute(
	ctx context.Context,
	in ExportBuyersInput,
) (*ExportBuyersOutput, error) {

	buyers, _, err := uc.repo.ListBuyers(ctx, in.Filters)
	if err != nil {
		return nil, err
	}

	out := &ExportBuyersOutput{
		Filename: domain.ExportFilename(uc.now()),
		Body:     domain.WriteExport(buyers),
		Count:    len(buyers),
	}

	if uc.archiver != nil {
		key := "exports/" + in.RequestedBy.String() + "/" + out.Filename
		if err := uc.archiver.Archive(ctx, key, out.Body); err != nil {
			// the download still succeeds
			uc.log.Warn("export archive failed", zap.String("key", key), zap.Error(err))
		}
	}

	return out, nil
}
