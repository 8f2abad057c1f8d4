package models

import (
	"time"

	"gorm.io/gorm"
)

// SupplyRequest asks for an inventory line to be restocked. Status is free
// text ("pending", "approved", ...) and changing it has no effect on stock.
type SupplyRequest struct {
	RequestID   uint      `gorm:"column:request_id;primaryKey;autoIncrement" json:"request_id"`
	InventoryID uint      `gorm:"not null;index"                             json:"inventory_id"`
	UserID      uint      `gorm:"not null;index"                             json:"user_id"`
	RequestDate time.Time `gorm:"not null"                                   json:"request_date"`
	Status      string    `gorm:"size:10;not null"                           json:"status"       validate:"max=10"`
}

func (SupplyRequest) TableName() string { return "supply_requests" }

func (s *SupplyRequest) BeforeCreate(tx *gorm.DB) error {
	if s.RequestDate.IsZero() {
		s.RequestDate = tx.NowFunc()
	}
	return nil
}
