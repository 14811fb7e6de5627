package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/buyer-leads/internal/domain/buyer"
	"github.com/BruksfildServices01/buyer-leads/internal/httperr"
	"github.com/BruksfildServices01/buyer-leads/internal/models"
)

var ErrUserNotFound = httperr.ErrBusiness("user_not_found")

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

var _ domain.UserRepository = (*UserGormRepository)(nil)

// UpsertByEmail finds or creates the user. A non-empty name replaces the
// stored one.
func (r *UserGormRepository) UpsertByEmail(
	ctx context.Context,
	email string,
	name string,
) (*models.User, error) {

	db := r.db.WithContext(ctx)
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)

	u, err := userByEmail(db, email)

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		created := models.User{Email: email}
		if name != "" {
			created.Name = &name
		}
		err := db.Create(&created).Error
		if err == nil {
			return &created, nil
		}
		if !httperr.IsUniqueViolation(err) {
			return nil, err
		}
		// lost a race with a concurrent first login
		if u, err = userByEmail(db, email); err != nil {
			return nil, err
		}

	case err != nil:
		return nil, err
	}

	if name != "" && (u.Name == nil || *u.Name != name) {
		if err := db.Model(u).Update("name", name).Error; err != nil {
			return nil, err
		}
		u.Name = &name
	}
	return u, nil
}

// userByEmail always scans into a fresh User. gorm adds the primary key of a
// non-zero destination to the WHERE clause, and a failed Create has already
// assigned one.
func userByEmail(tx *gorm.DB, email string) (*models.User, error) {
	var u models.User
	if err := tx.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) GetUserByID(
	ctx context.Context,
	id uuid.UUID,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
