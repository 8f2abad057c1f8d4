package seeders_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/josys/shop/app/models"
	_ "github.com/josys/shop/database/migrations"
	"github.com/josys/shop/database/seeders"
	"github.com/josys/shop/pkg/database"
	"github.com/josys/shop/pkg/hash"
	"github.com/josys/shop/pkg/migration"
)

func init() { hash.Cost = bcrypt.MinCost }

func TestSeedShop(t *testing.T) {
	db, err := database.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared&_foreign_keys=on")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, migration.New(db, nil).Run())

	var out bytes.Buffer
	require.NoError(t, seeders.RunAll(db, &out))
	assert.Contains(t, out.String(), "Running seeder: shop ... done")

	for _, model := range models.All() {
		var n int64
		require.NoError(t, db.Model(model).Count(&n).Error)
		assert.Equal(t, int64(2), n, "%T", model)
	}

	var main models.Store
	require.NoError(t, db.Where("store_name = ?", "Main Warehouse").First(&main).Error)
	assert.Equal(t, "Nairobi", main.Location)

	var admin models.User
	require.NoError(t, db.Where("email = ?", "admin@example.com").First(&admin).Error)
	assert.True(t, hash.Check(admin.PasswordHash, "admin-password"))
	assert.True(t, admin.ConfirmedAdmin)

	var p models.Product
	require.NoError(t, db.Where("product_name = ?", "Product2").First(&p).Error)
	assert.Equal(t, "300", p.SellingPrice.String())
}
