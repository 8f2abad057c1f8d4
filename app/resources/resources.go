// Package resources renders models as flat API records. Every output path
// (REST lists, single records, GraphQL) goes through these transformers.
package resources

import (
	"github.com/josys/shop/app/models"
	"github.com/josys/shop/pkg/resource"
)

// UserResource never renders the password hash. An unset is_active reads as
// the column default, true.
type UserResource struct{}

func (UserResource) ToRecord(u models.User) resource.Record {
	return resource.New().
		Set("user_id", u.UserID).
		Set("user_name", u.UserName).
		Set("email", u.Email).
		Set("role", u.Role).
		Set("is_active", u.IsActive == nil || *u.IsActive).
		Set("confirmed_admin", u.ConfirmedAdmin)
}

type InvitationResource struct{}

func (InvitationResource) ToRecord(i models.Invitation) resource.Record {
	return resource.New().
		Set("invitation_id", i.InvitationID).
		Set("token", i.Token).
		Set("email", i.Email).
		Set("created_at", resource.Timestamp(i.CreatedAt)).
		Set("expiry_date", resource.Timestamp(i.ExpiryDate)).
		Set("is_used", i.IsUsed).
		Set("user_id", optionalID(i.UserID))
}

type StoreResource struct{}

func (StoreResource) ToRecord(s models.Store) resource.Record {
	return resource.New().
		Set("store_id", s.StoreID).
		Set("store_name", s.StoreName).
		Set("location", s.Location)
}

// ProductResource renders prices as decimal strings.
type ProductResource struct{}

func (ProductResource) ToRecord(p models.Product) resource.Record {
	return resource.New().
		Set("product_id", p.ProductID).
		Set("product_name", p.ProductName).
		Set("buying_price", p.BuyingPrice.String()).
		Set("selling_price", p.SellingPrice.String())
}

type InventoryResource struct{}

func (InventoryResource) ToRecord(i models.Inventory) resource.Record {
	return resource.New().
		Set("inventory_id", i.InventoryID).
		Set("product_id", i.ProductID).
		Set("store_id", i.StoreID).
		Set("quantity_received", i.QuantityReceived).
		Set("quantity_in_stock", i.QuantityInStock).
		Set("quantity_spoilt", i.QuantitySpoilt).
		Set("payment_status", i.PaymentStatus)
}

type SupplyRequestResource struct{}

func (SupplyRequestResource) ToRecord(s models.SupplyRequest) resource.Record {
	return resource.New().
		Set("request_id", s.RequestID).
		Set("inventory_id", s.InventoryID).
		Set("user_id", s.UserID).
		Set("request_date", resource.Timestamp(s.RequestDate)).
		Set("status", s.Status)
}

type PaymentResource struct{}

func (PaymentResource) ToRecord(p models.Payment) resource.Record {
	return resource.New().
		Set("payment_id", p.PaymentID).
		Set("supplier_name", p.SupplierName).
		Set("invoice_number", p.InvoiceNumber).
		Set("amount", p.Amount.String()).
		Set("payment_date", resource.Timestamp(p.PaymentDate)).
		Set("payment_status", p.PaymentStatus)
}

// optionalID renders a nil foreign key as JSON null.
func optionalID(id *uint) any {
	if id == nil {
		return nil
	}
	return *id
}
