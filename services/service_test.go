package services

import (
	"testing"

	"warung-pos-api/cart"
	"warung-pos-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database per test. Max one open
// connection, otherwise the pool hands out separate empty :memory: DBs.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.DiningTable{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderStatusHistory{},
		&models.RevenueEntry{},
		&models.Shift{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newServices(t *testing.T) (*gorm.DB, *OrderService, *RevenueService, *ShiftService, *OccupancyService) {
	t.Helper()
	db := newTestDB(t)
	revenue := NewRevenueService(db, nil)
	orders := NewOrderService(db, revenue, nil)
	shifts := NewShiftService(db, nil)
	floor := NewOccupancyService(db)
	return db, orders, revenue, shifts, floor
}

func seedTable(t *testing.T, db *gorm.DB, ownerID uint, number int) models.DiningTable {
	t.Helper()
	table := models.DiningTable{
		OwnerID:  ownerID,
		Number:   number,
		Capacity: 4,
		Status:   models.TableAvailable,
	}
	if err := db.Create(&table).Error; err != nil {
		t.Fatalf("seed table %d: %v", number, err)
	}
	return table
}

func sampleLines() []cart.Line {
	return []cart.Line{
		{MenuItemID: 1, Name: "Nasi Goreng", UnitPrice: 30000, Quantity: 2},
		{MenuItemID: 2, Name: "Es Teh", UnitPrice: 5000, Quantity: 1},
	}
}
