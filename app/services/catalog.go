package services

import (
	"gorm.io/gorm"

	"github.com/josys/shop/app/models"
	"github.com/josys/shop/app/repositories"
	"github.com/josys/shop/app/requests"
)

type (
	StoreService     = CRUD[models.Store, requests.CreateStore, requests.UpdateStore]
	ProductService   = CRUD[models.Product, requests.CreateProduct, requests.UpdateProduct]
	InventoryService = CRUD[models.Inventory, requests.CreateInventory, requests.UpdateInventory]
)

func NewStoreService(db *gorm.DB) *StoreService {
	return NewCRUD(repositories.New[models.Store](db), buildStore, applyStore)
}

func NewProductService(db *gorm.DB) *ProductService {
	return NewCRUD(repositories.New[models.Product](db), buildProduct, applyProduct)
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return NewCRUD(repositories.New[models.Inventory](db), buildInventory, applyInventory)
}

func buildStore(in requests.CreateStore) (models.Store, error) {
	return models.Store{StoreName: *in.StoreName, Location: *in.Location}, nil
}

func applyStore(s *models.Store, in requests.UpdateStore) error {
	return firstErr(
		set("store_name", in.StoreName, &s.StoreName),
		set("location", in.Location, &s.Location),
	)
}

func buildProduct(in requests.CreateProduct) (models.Product, error) {
	return models.Product{
		ProductName:  *in.ProductName,
		BuyingPrice:  *in.BuyingPrice,
		SellingPrice: *in.SellingPrice,
	}, nil
}

func applyProduct(p *models.Product, in requests.UpdateProduct) error {
	return firstErr(
		set("product_name", in.ProductName, &p.ProductName),
		set("buying_price", in.BuyingPrice, &p.BuyingPrice),
		set("selling_price", in.SellingPrice, &p.SellingPrice),
	)
}

func buildInventory(in requests.CreateInventory) (models.Inventory, error) {
	return models.Inventory{
		ProductID:        *in.ProductID,
		StoreID:          *in.StoreID,
		QuantityReceived: *in.QuantityReceived,
		QuantityInStock:  *in.QuantityInStock,
		QuantitySpoilt:   *in.QuantitySpoilt,
		PaymentStatus:    *in.PaymentStatus,
	}, nil
}

func applyInventory(i *models.Inventory, in requests.UpdateInventory) error {
	return firstErr(
		set("product_id", in.ProductID, &i.ProductID),
		set("store_id", in.StoreID, &i.StoreID),
		set("quantity_received", in.QuantityReceived, &i.QuantityReceived),
		set("quantity_in_stock", in.QuantityInStock, &i.QuantityInStock),
		set("quantity_spoilt", in.QuantitySpoilt, &i.QuantitySpoilt),
		set("payment_status", in.PaymentStatus, &i.PaymentStatus),
	)
}
