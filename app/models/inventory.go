package models

// Inventory is the stock of one product held at one store. The three
// quantities are recorded as reported and are not cross-checked.
type Inventory struct {
	InventoryID      uint   `gorm:"column:inventory_id;primaryKey;autoIncrement" json:"inventory_id"`
	ProductID        uint   `gorm:"not null;index"                               json:"product_id"`
	StoreID          uint   `gorm:"not null;index"                               json:"store_id"`
	QuantityReceived int    `gorm:"not null"                                     json:"quantity_received"`
	QuantityInStock  int    `gorm:"not null"                                     json:"quantity_in_stock"`
	QuantitySpoilt   int    `gorm:"not null"                                     json:"quantity_spoilt"`
	PaymentStatus    string `gorm:"size:10;not null"                             json:"payment_status"    validate:"max=10"`

	SupplyRequests []SupplyRequest `gorm:"foreignKey:InventoryID;references:InventoryID" json:"-"`
}

func (Inventory) TableName() string { return "inventory" }
