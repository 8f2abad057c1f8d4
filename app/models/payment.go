package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment records money owed or paid to a supplier.
type Payment struct {
	PaymentID     uint            `gorm:"column:payment_id;primaryKey;autoIncrement" json:"payment_id"`
	SupplierName  string          `gorm:"size:25;not null"                           json:"supplier_name"  validate:"max=25"`
	InvoiceNumber string          `gorm:"size:50;not null"                           json:"invoice_number" validate:"max=50"`
	Amount        decimal.Decimal `gorm:"type:varchar(150);not null"                 json:"amount"`
	PaymentDate   time.Time       `gorm:"not null"                                   json:"payment_date"`
	PaymentStatus string          `gorm:"size:10;not null"                           json:"payment_status" validate:"max=10"`
}

// AmountWidth is the width of the amount column.
const AmountWidth = 150

func (Payment) TableName() string { return "payments" }

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.PaymentDate.IsZero() {
		p.PaymentDate = tx.NowFunc()
	}
	return nil
}
