package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BuyerHistory is an append-only audit entry. Diff holds the JSON encoding
// of a domain/buyer Diff and is never updated after insert.
type BuyerHistory struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	BuyerID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"buyerId"`
	ChangedBy uuid.UUID      `gorm:"type:uuid;not null" json:"changedBy"`
	ChangedAt time.Time      `gorm:"not null;index" json:"changedAt"`
	Diff      datatypes.JSON `gorm:"type:jsonb;not null" json:"diff"`
}

func (BuyerHistory) TableName() string {
	return "buyer_history"
}

func (h *BuyerHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	if h.ChangedAt.IsZero() {
		h.ChangedAt = time.Now()
	}
	return nil
}
