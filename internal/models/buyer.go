package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Buyer is a real-estate buyer lead. Enum columns hold the codes defined
// in domain/buyer; validation happens there, not at storage level.
type Buyer struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	FullName string  `gorm:"size:80;not null" json:"fullName"`
	Email    *string `gorm:"size:255" json:"email"`
	Phone    string  `gorm:"size:15;not null;index" json:"phone"`

	City         string  `gorm:"size:20;not null;index" json:"city"`
	PropertyType string  `gorm:"size:20;not null;index" json:"propertyType"`
	BHK          *string `gorm:"column:bhk;size:10" json:"bhk"`
	Purpose      string  `gorm:"size:10;not null" json:"purpose"`
	BudgetMin    *int    `json:"budgetMin"`
	BudgetMax    *int    `json:"budgetMax"`
	Timeline     string  `gorm:"size:20;not null;index" json:"timeline"`
	Source       string  `gorm:"size:20;not null" json:"source"`
	Status       string  `gorm:"size:20;not null;default:'New';index" json:"status"`
	Notes        *string `gorm:"type:text" json:"notes"`
	Tags         *string `gorm:"size:500" json:"tags"`

	OwnerID uuid.UUID `gorm:"type:uuid;not null;index" json:"ownerId"`
	Owner   *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"owner,omitempty"`

	History []BuyerHistory `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `gorm:"index" json:"updatedAt"`
}

func (b *Buyer) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
