// Package database opens the sqlite store and bootstraps schema and seed data.
package database

import (
	"io/fs"
	"os"
	"path"

	"ramen-kiosk/database/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var seedMenuItems = []model.MenuItem{
	{Category: model.Flavor, Name: "Shoyu"},
	{Category: model.Flavor, Name: "Miso"},
	{Category: model.Flavor, Name: "Tonkotsu"},
	{Category: model.Flavor, Name: "Indomie"},
	{Category: model.SoupBase, Name: "Rich"},
	{Category: model.SoupBase, Name: "Light"},
	{Category: model.SoupBase, Name: "Spicy"},
	{Category: model.Meat, Name: "Pork"},
	{Category: model.Meat, Name: "Chicken"},
	{Category: model.Meat, Name: "Beef"},
	{Category: model.Meat, Name: "Tofu"},
	{Category: model.SpicyLevel, Name: "Not Spicy"},
	{Category: model.SpicyLevel, Name: "Mild"},
	{Category: model.SpicyLevel, Name: "Medium"},
	{Category: model.SpicyLevel, Name: "Hot"},
}

var seedInventory = []model.Inventory{
	{ItemName: "Noodles", Quantity: 1000},
	{ItemName: "Pork", Quantity: 500},
	{ItemName: "Chicken", Quantity: 500},
	{ItemName: "Beef", Quantity: 500},
	{ItemName: "Tofu", Quantity: 500},
	{ItemName: "Eggs", Quantity: 1000},
	{ItemName: "Seaweed", Quantity: 1000},
	{ItemName: "Green Onions", Quantity: 1000},
}

func initModels(db *gorm.DB) error {
	models := []any{
		&model.User{},
		&model.MenuItem{},
		&model.CartItem{},
		&model.Order{},
		&model.Inventory{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			return err
		}
	}
	return nil
}

// seedData inserts the fixed menu and the starting inventory counters.
// Rows that already exist are left untouched, so startup is idempotent.
func seedData(db *gorm.DB) error {
	menuItems := make([]model.MenuItem, len(seedMenuItems))
	copy(menuItems, seedMenuItems)
	err := db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&menuItems).
		Error
	if err != nil {
		return err
	}

	counters := make([]model.Inventory, len(seedInventory))
	copy(counters, seedInventory)
	return db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&counters).
		Error
}

// InitDB opens the sqlite database at dbPath, migrates the schema and seeds
// reference data. The returned *gorm.DB is a shared connection pool; callers
// pass it into each service rather than going through package state.
func InitDB(dbPath string, debug bool) (*gorm.DB, error) {
	dir := path.Dir(dbPath)
	if err := os.MkdirAll(dir, fs.ModePerm); err != nil {
		return nil, err
	}

	var gormLogger logger.Interface
	if debug {
		gormLogger = logger.Default
	} else {
		gormLogger = logger.Discard
	}

	c := &gorm.Config{
		Logger: gormLogger,
	}

	dsn := dbPath + "?cache=shared&_journal_mode=WAL&_synchronous=NORMAL"
	db, err := gorm.Open(sqlite.Open(dsn), c)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if _, err = sqlDB.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		return nil, err
	}

	if err := initModels(db); err != nil {
		return nil, err
	}
	if err := seedData(db); err != nil {
		return nil, err
	}

	return db, nil
}

// CloseDB checkpoints the WAL and closes the underlying pool.
func CloseDB(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	if err := db.Exec("PRAGMA wal_checkpoint;").Error; err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func IsNotFound(err error) bool {
	return err == gorm.ErrRecordNotFound
}
