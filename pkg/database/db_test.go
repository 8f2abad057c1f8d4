package database_test

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/josys/shop/pkg/database"
	"github.com/josys/shop/pkg/metrics"
)

type gadget struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:20;uniqueIndex"`
}

func openMemory(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared&_foreign_keys=on")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := database.Open("oracle", "whatever")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported DB_DRIVER")
}

func TestOpenTranslatesDuplicateKey(t *testing.T) {
	db := openMemory(t)
	require.NoError(t, db.AutoMigrate(&gadget{}))

	require.NoError(t, db.Create(&gadget{Name: "widget"}).Error)
	err := db.Create(&gadget{Name: "widget"}).Error
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

func TestQueriesAreTimed(t *testing.T) {
	db := openMemory(t)
	require.NoError(t, db.AutoMigrate(&gadget{}))

	before := testutil.CollectAndCount(metrics.DBQueryDuration)
	require.NoError(t, db.Create(&gadget{Name: "timed"}).Error)
	var got []gadget
	require.NoError(t, db.Find(&got).Error)

	assert.GreaterOrEqual(t, testutil.CollectAndCount(metrics.DBQueryDuration), before)
	assert.Len(t, got, 1)
}
