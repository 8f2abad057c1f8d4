package models

import "github.com/shopspring/decimal"

// Product prices are exact decimals kept in text columns of PriceWidth characters.
type Product struct {
	ProductID    uint            `gorm:"column:product_id;primaryKey;autoIncrement" json:"product_id"`
	ProductName  string          `gorm:"size:25;not null"                           json:"product_name"  validate:"max=25"`
	BuyingPrice  decimal.Decimal `gorm:"type:varchar(10);not null"                  json:"buying_price"`
	SellingPrice decimal.Decimal `gorm:"type:varchar(10);not null"                  json:"selling_price"`

	Inventories []Inventory `gorm:"foreignKey:ProductID;references:ProductID" json:"-"`
}

const PriceWidth = 10

func (Product) TableName() string { return "products" }
