package requests

import "github.com/shopspring/decimal"

type CreateStore struct {
	StoreName *string `json:"store_name" validate:"required"`
	Location  *string `json:"location"   validate:"required"`
}

type UpdateStore struct {
	StoreName Optional[string] `json:"store_name"`
	Location  Optional[string] `json:"location"`
}

// Prices may be sent as JSON numbers or numeric strings.
type CreateProduct struct {
	ProductName  *string          `json:"product_name"  validate:"required"`
	BuyingPrice  *decimal.Decimal `json:"buying_price"  validate:"required"`
	SellingPrice *decimal.Decimal `json:"selling_price" validate:"required"`
}

type UpdateProduct struct {
	ProductName  Optional[string]          `json:"product_name"`
	BuyingPrice  Optional[decimal.Decimal] `json:"buying_price"`
	SellingPrice Optional[decimal.Decimal] `json:"selling_price"`
}

type CreateInventory struct {
	ProductID        *uint   `json:"product_id"        validate:"required"`
	StoreID          *uint   `json:"store_id"          validate:"required"`
	QuantityReceived *int    `json:"quantity_received" validate:"required"`
	QuantityInStock  *int    `json:"quantity_in_stock" validate:"required"`
	QuantitySpoilt   *int    `json:"quantity_spoilt"   validate:"required"`
	PaymentStatus    *string `json:"payment_status"    validate:"required"`
}

type UpdateInventory struct {
	ProductID        Optional[uint]   `json:"product_id"`
	StoreID          Optional[uint]   `json:"store_id"`
	QuantityReceived Optional[int]    `json:"quantity_received"`
	QuantityInStock  Optional[int]    `json:"quantity_in_stock"`
	QuantitySpoilt   Optional[int]    `json:"quantity_spoilt"`
	PaymentStatus    Optional[string] `json:"payment_status"`
}
