package service

import (
	"time"

	"ramen-kiosk/database/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InventoryService manages the named stock counters.
type InventoryService struct {
	db *gorm.DB
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{db: db}
}

func (s *InventoryService) GetInventory() ([]model.Inventory, error) {
	counters := make([]model.Inventory, 0)
	err := s.db.Order("item_name").Find(&counters).Error
	if err != nil {
		return nil, err
	}
	return counters, nil
}

// Upsert sets the counter for itemName to an absolute quantity, creating it
// when absent.
func (s *InventoryService) Upsert(itemName string, quantity int) error {
	counter := &model.Inventory{
		ItemName: itemName,
		Quantity: quantity,
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "item_name"}},
		DoUpdates: clause.Assignments(map[string]any{
			"quantity":     quantity,
			"last_updated": time.Now(),
		}),
	}).Create(counter).Error
}

// Decrement reduces the named counter by amount within the given transaction.
// Counters may go negative; decrementing a counter that does not exist is a
// no-op, matching the ledger's name-keyed update semantics.
func (s *InventoryService) Decrement(tx *gorm.DB, itemName string, amount int) error {
	return tx.Model(&model.Inventory{}).
		Where("item_name = ?", itemName).
		Updates(map[string]any{
			"quantity":     gorm.Expr("quantity - ?", amount),
			"last_updated": time.Now(),
		}).Error
}

// DecrementByMenuItem reduces the counter named after the given menu item.
func (s *InventoryService) DecrementByMenuItem(tx *gorm.DB, menuItemId int) error {
	var item model.MenuItem
	if err := tx.First(&item, menuItemId).Error; err != nil {
		return err
	}
	return s.Decrement(tx, item.Name, 1)
}
