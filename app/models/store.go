package models

type Store struct {
	StoreID   uint   `gorm:"column:store_id;primaryKey;autoIncrement" json:"store_id"`
	StoreName string `gorm:"size:50;not null"                         json:"store_name" validate:"max=50"`
	Location  string `gorm:"size:50;not null"                         json:"location"   validate:"max=50"`

	Inventories []Inventory `gorm:"foreignKey:StoreID;references:StoreID" json:"-"`
}

func (Store) TableName() string { return "stores" }
