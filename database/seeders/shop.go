package seeders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/josys/shop/app/models"
	"github.com/josys/shop/pkg/hash"
)

func init() {
	Register("shop", SeedShop)
}

// SeedShop inserts two rows into every table: an admin and a clerk, two open
// invitations, two warehouses with one stocked product each, a pending and an
// approved supply request, and two supplier payments.
func SeedShop(db *gorm.DB) error {
	adminHash, err := hash.Password("admin-password")
	if err != nil {
		return err
	}
	clerkHash, err := hash.Password("clerk-password")
	if err != nil {
		return err
	}

	active := true
	users := []models.User{
		{UserName: "admin", Email: "admin@example.com", PasswordHash: adminHash, Role: "superuser", IsActive: &active, ConfirmedAdmin: true},
		{UserName: "clerk", Email: "clerk@example.com", PasswordHash: clerkHash, Role: "clerk", IsActive: &active, ConfirmedAdmin: false},
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}

	now := db.NowFunc()
	week := now.Add(7 * 24 * time.Hour)
	invitations := []models.Invitation{
		{Token: uuid.NewString(), Email: "admin_invite@example.com", CreatedAt: now, ExpiryDate: week},
		{Token: uuid.NewString(), Email: "clerk_invite@example.com", CreatedAt: now, ExpiryDate: week},
	}
	if err := db.Create(&invitations).Error; err != nil {
		return err
	}

	stores := []models.Store{
		{StoreName: "Main Warehouse", Location: "Nairobi"},
		{StoreName: "Secondary Warehouse", Location: "Mombasa"},
	}
	if err := db.Create(&stores).Error; err != nil {
		return err
	}

	products := []models.Product{
		{ProductName: "Product1", BuyingPrice: decimal.NewFromInt(100), SellingPrice: decimal.NewFromInt(150)},
		{ProductName: "Product2", BuyingPrice: decimal.NewFromInt(200), SellingPrice: decimal.NewFromInt(300)},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	inventory := []models.Inventory{
		{ProductID: products[0].ProductID, StoreID: stores[0].StoreID, QuantityReceived: 100, QuantityInStock: 100, QuantitySpoilt: 0, PaymentStatus: "paid"},
		{ProductID: products[1].ProductID, StoreID: stores[1].StoreID, QuantityReceived: 200, QuantityInStock: 180, QuantitySpoilt: 20, PaymentStatus: "not paid"},
	}
	if err := db.Create(&inventory).Error; err != nil {
		return err
	}

	clerk := users[1].UserID
	requests := []models.SupplyRequest{
		{InventoryID: inventory[0].InventoryID, UserID: clerk, Status: "pending"},
		{InventoryID: inventory[1].InventoryID, UserID: clerk, Status: "approved"},
	}
	if err := db.Create(&requests).Error; err != nil {
		return err
	}

	payments := []models.Payment{
		{SupplierName: "Supplier1", InvoiceNumber: "INV001", Amount: decimal.NewFromInt(1500), PaymentDate: now, PaymentStatus: "paid"},
		{SupplierName: "Supplier2", InvoiceNumber: "INV002", Amount: decimal.NewFromInt(3000), PaymentDate: now, PaymentStatus: "not paid"},
	}
	return db.Create(&payments).Error
}
