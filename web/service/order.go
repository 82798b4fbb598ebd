package service

import (
	"ramen-kiosk/database/model"
	"ramen-kiosk/logger"
	"ramen-kiosk/web/entity"

	"gorm.io/gorm"
)

// noodlesCounter is the base ingredient charged on every direct order.
const noodlesCounter = "Noodles"

// OrderService converts cart contents and direct selections into orders.
type OrderService struct {
	db               *gorm.DB
	menuService      *MenuService
	inventoryService *InventoryService
}

func NewOrderService(db *gorm.DB, menuService *MenuService, inventoryService *InventoryService) *OrderService {
	return &OrderService{
		db:               db,
		menuService:      menuService,
		inventoryService: inventoryService,
	}
}

// PlaceOrder drains the user's cart into orders within a single transaction:
// one order per cart line, then the cart is cleared. Any failure rolls the
// whole checkout back. Returns the number of orders created.
func (s *OrderService) PlaceOrder(userId int) (int, error) {
	var created int
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var items []model.CartItem
		if err := tx.Where("user_id = ?", userId).Order("id").Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}

		orders := make([]model.Order, 0, len(items))
		for _, item := range items {
			orders = append(orders, model.Order{
				UserId:       userId,
				FlavorId:     item.FlavorId,
				SoupBaseId:   item.SoupBaseId,
				MeatId:       item.MeatId,
				SpicyLevelId: item.SpicyLevelId,
			})
		}
		if err := tx.Create(&orders).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userId).Delete(&model.CartItem{}).Error; err != nil {
			return err
		}
		created = len(orders)
		return nil
	})
	if err != nil {
		logger.Errorf("failed to place order for user %d: %v", userId, err)
		return 0, err
	}
	return created, nil
}

// CreateOrder places a single order directly, bypassing the cart, and
// decrements the inventory counters for noodles plus the flavor, meat and
// spicy-level names. The soup base draws from no counter. Insert and
// decrements share one transaction.
func (s *OrderService) CreateOrder(userId int, sel entity.Selection) (int, error) {
	if err := s.menuService.CheckSelection(sel.FlavorId, sel.SoupBaseId, sel.MeatId, sel.SpicyLevelId); err != nil {
		return 0, err
	}

	order := &model.Order{
		UserId:       userId,
		FlavorId:     sel.FlavorId,
		SoupBaseId:   sel.SoupBaseId,
		MeatId:       sel.MeatId,
		SpicyLevelId: sel.SpicyLevelId,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		if err := s.inventoryService.Decrement(tx, noodlesCounter, 1); err != nil {
			return err
		}
		for _, menuItemId := range []int{sel.FlavorId, sel.MeatId, sel.SpicyLevelId} {
			if err := s.inventoryService.DecrementByMenuItem(tx, menuItemId); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Errorf("failed to create order for user %d: %v", userId, err)
		return 0, err
	}
	return order.Id, nil
}

// GetSales returns every order joined with its user and menu names, newest
// first.
func (s *OrderService) GetSales() ([]entity.SaleRecord, error) {
	sales := make([]entity.SaleRecord, 0)
	err := s.db.Table("orders AS o").
		Select("o.id AS order_id, u.username, f.name AS flavor, s.name AS soup_base, m.name AS meat, sp.name AS spicy_level, o.order_date").
		Joins("JOIN users u ON o.user_id = u.id").
		Joins("JOIN menu_items f ON o.flavor_id = f.id").
		Joins("JOIN menu_items s ON o.soup_base_id = s.id").
		Joins("JOIN menu_items m ON o.meat_id = m.id").
		Joins("JOIN menu_items sp ON o.spicy_level_id = sp.id").
		Order("o.order_date DESC, o.id DESC").
		Scan(&sales).
		Error
	if err != nil {
		return nil, err
	}
	return sales, nil
}
