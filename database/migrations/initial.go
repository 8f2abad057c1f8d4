package migrations

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/josys/shop/app/models"
	"github.com/josys/shop/pkg/migration"
)

func init() {
	migration.Register("20240801000000_create_shop_tables", &CreateShopTables{})
}

// CreateShopTables creates the seven shop tables. Parents are created before
// the tables that reference them and dropped after them.
type CreateShopTables struct{}

func (m *CreateShopTables) Up(db *gorm.DB) error {
	for _, model := range models.All() {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("create %T: %w", model, err)
		}
	}
	return nil
}

func (m *CreateShopTables) Down(db *gorm.DB) error {
	all := models.All()
	for i := len(all) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(all[i]); err != nil {
			return fmt.Errorf("drop %T: %w", all[i], err)
		}
	}
	return nil
}
