package services

import (
	"gorm.io/gorm"

	"github.com/josys/shop/app/models"
	"github.com/josys/shop/app/repositories"
	"github.com/josys/shop/app/requests"
)

type (
	SupplyRequestService = CRUD[models.SupplyRequest, requests.CreateSupplyRequest, requests.UpdateSupplyRequest]
	PaymentService       = CRUD[models.Payment, requests.CreatePayment, requests.UpdatePayment]
)

func NewSupplyRequestService(db *gorm.DB) *SupplyRequestService {
	return NewCRUD(repositories.New[models.SupplyRequest](db), buildSupplyRequest, applySupplyRequest)
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return NewCRUD(repositories.New[models.Payment](db), buildPayment, applyPayment)
}

func buildSupplyRequest(in requests.CreateSupplyRequest) (models.SupplyRequest, error) {
	sr := models.SupplyRequest{
		InventoryID: *in.InventoryID,
		UserID:      *in.UserID,
		Status:      *in.Status,
	}
	if in.RequestDate != nil {
		sr.RequestDate = in.RequestDate.Time
	}
	return sr, nil
}

// applySupplyRequest only records the new status; approving a request does
// not touch inventory quantities.
func applySupplyRequest(sr *models.SupplyRequest, in requests.UpdateSupplyRequest) error {
	return firstErr(
		set("inventory_id", in.InventoryID, &sr.InventoryID),
		set("user_id", in.UserID, &sr.UserID),
		setTime("request_date", in.RequestDate, &sr.RequestDate),
		set("status", in.Status, &sr.Status),
	)
}

func buildPayment(in requests.CreatePayment) (models.Payment, error) {
	p := models.Payment{
		SupplierName:  *in.SupplierName,
		InvoiceNumber: *in.InvoiceNumber,
		Amount:        *in.Amount,
		PaymentStatus: *in.PaymentStatus,
	}
	if in.PaymentDate != nil {
		p.PaymentDate = in.PaymentDate.Time
	}
	return p, nil
}

func applyPayment(p *models.Payment, in requests.UpdatePayment) error {
	return firstErr(
		set("supplier_name", in.SupplierName, &p.SupplierName),
		set("invoice_number", in.InvoiceNumber, &p.InvoiceNumber),
		set("amount", in.Amount, &p.Amount),
		setTime("payment_date", in.PaymentDate, &p.PaymentDate),
		set("payment_status", in.PaymentStatus, &p.PaymentStatus),
	)
}
