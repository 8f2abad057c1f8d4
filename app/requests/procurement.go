package requests

import "github.com/shopspring/decimal"

// CreateSupplyRequest defaults RequestDate to the time of insertion.
type CreateSupplyRequest struct {
	InventoryID *uint      `json:"inventory_id" validate:"required"`
	UserID      *uint      `json:"user_id"      validate:"required"`
	RequestDate *Timestamp `json:"request_date"`
	Status      *string    `json:"status"       validate:"required"`
}

type UpdateSupplyRequest struct {
	InventoryID Optional[uint]      `json:"inventory_id"`
	UserID      Optional[uint]      `json:"user_id"`
	RequestDate Optional[Timestamp] `json:"request_date"`
	Status      Optional[string]    `json:"status"`
}

type CreatePayment struct {
	SupplierName  *string          `json:"supplier_name"  validate:"required"`
	InvoiceNumber *string          `json:"invoice_number" validate:"required"`
	Amount        *decimal.Decimal `json:"amount"         validate:"required"`
	PaymentDate   *Timestamp       `json:"payment_date"`
	PaymentStatus *string          `json:"payment_status" validate:"required"`
}

type UpdatePayment struct {
	SupplierName  Optional[string]          `json:"supplier_name"`
	InvoiceNumber Optional[string]          `json:"invoice_number"`
	Amount        Optional[decimal.Decimal] `json:"amount"`
	PaymentDate   Optional[Timestamp]       `json:"payment_date"`
	PaymentStatus Optional[string]          `json:"payment_status"`
}
