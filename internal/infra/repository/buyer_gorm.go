package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/buyer-leads/internal/domain/buyer"
	"github.com/BruksfildServices01/buyer-leads/internal/models"
)

type BuyerGormRepository struct {
	db *gorm.DB
}

func NewBuyerGormRepository(db *gorm.DB) *BuyerGormRepository {
	return &BuyerGormRepository{db: db}
}

var _ domain.Repository = (*BuyerGormRepository)(nil)

// --------------------------------------------------
// Create
// --------------------------------------------------

func (r *BuyerGormRepository) CreateBuyer(
	ctx context.Context,
	b *models.Buyer,
	diff domain.Diff,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(b).Error; err != nil {
			return err
		}

		entry, err := domain.NewHistoryEntry(b.ID, b.OwnerID, diff)
		if err != nil {
			return err
		}
		return tx.Create(entry).Error
	})
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *BuyerGormRepository) GetBuyer(
	ctx context.Context,
	id uuid.UUID,
) (*models.Buyer, error) {

	var b models.Buyer
	err := r.db.WithContext(ctx).
		Preload("Owner", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email")
		}).
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("changed_at DESC").Limit(domain.HistoryPreview)
		}).
		First(&b, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *BuyerGormRepository) ListBuyers(
	ctx context.Context,
	f domain.Filters,
) ([]models.Buyer, int64, error) {

	db := r.db.WithContext(ctx)

	var total int64
	if err := db.Model(&models.Buyer{}).
		Scopes(buyerFilterScope(f)).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var buyers []models.Buyer
	if err := db.
		Scopes(buyerFilterScope(f), buyerPageScope(f)).
		Preload("Owner", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email")
		}).
		Find(&buyers).Error; err != nil {
		return nil, 0, err
	}

	return buyers, total, nil
}

// buyerFilterScope is the WHERE clause shared by the page query and its
// count.
func buyerFilterScope(f domain.Filters) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.Search != "" {
			like := "%" + domain.EscapeLike(f.Search) + "%"
			db = db.Where(
				"full_name LIKE ? OR email LIKE ? OR phone LIKE ? OR notes LIKE ?",
				like, like, like, like,
			)
		}
		if f.City != "" {
			db = db.Where("city = ?", string(f.City))
		}
		if f.PropertyType != "" {
			db = db.Where("property_type = ?", string(f.PropertyType))
		}
		if f.Status != "" {
			db = db.Where("status = ?", string(f.Status))
		}
		if f.Timeline != "" {
			db = db.Where("timeline = ?", string(f.Timeline))
		}
		return db
	}
}

func buyerPageScope(f domain.Filters) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		desc := f.Descending()
		return db.
			Order(clause.OrderByColumn{Column: clause.Column{Name: f.SortColumn()}, Desc: desc}).
			Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: desc}).
			Limit(f.Limit).
			Offset(f.Offset())
	}
}

// --------------------------------------------------
// Update / Delete
// --------------------------------------------------

func (r *BuyerGormRepository) UpdateBuyer(
	ctx context.Context,
	id uuid.UUID,
	actingUserID uuid.UUID,
	patch domain.Patch,
) (*models.Buyer, domain.Diff, error) {

	var (
		updated *models.Buyer
		diff    domain.Diff
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := lockBuyer(tx, id)
		if err != nil {
			return err
		}

		next, d, err := domain.ApplyPatch(current, patch, actingUserID)
		if err != nil {
			return err
		}

		if err := saveBuyerChange(tx, next, d, actingUserID); err != nil {
			return err
		}

		updated, diff = next, d
		return nil
	})
	if err != nil {
		return nil, domain.Diff{}, err
	}

	return updated, diff, nil
}

func (r *BuyerGormRepository) DeleteBuyer(
	ctx context.Context,
	id uuid.UUID,
	actingUserID uuid.UUID,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := lockBuyer(tx, id)
		if err != nil {
			return err
		}
		if current.OwnerID != actingUserID {
			return domain.ErrNotOwner
		}

		return deleteBuyerRows(tx, id)
	})
}

// saveBuyerChange writes the merged record and, when something changed, one
// "updated" history entry.
func saveBuyerChange(tx *gorm.DB, next *models.Buyer, d domain.Diff, actingUserID uuid.UUID) error {
	if err := tx.Omit(clause.Associations).Save(next).Error; err != nil {
		return err
	}
	if d.Empty() {
		return nil
	}

	entry, err := domain.NewHistoryEntry(next.ID, actingUserID, d)
	if err != nil {
		return err
	}
	return tx.Create(entry).Error
}

// deleteBuyerRows removes history rows first; buyer is their FK parent.
func deleteBuyerRows(tx *gorm.DB, id uuid.UUID) error {
	if err := tx.Where("buyer_id = ?", id).Delete(&models.BuyerHistory{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Buyer{}, "id = ?", id).Error
}

func lockBuyer(tx *gorm.DB, id uuid.UUID) (*models.Buyer, error) {
	var b models.Buyer
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}
