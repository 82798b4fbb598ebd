package service

import (
	"ramen-kiosk/database/model"
	"ramen-kiosk/web/entity"

	"gorm.io/gorm"
)

// CartService manages the pending line items of each user.
type CartService struct {
	db          *gorm.DB
	menuService *MenuService
}

func NewCartService(db *gorm.DB, menuService *MenuService) *CartService {
	return &CartService{db: db, menuService: menuService}
}

// AddItem validates the selection and inserts a new cart line for the user.
// Repeated identical selections create separate lines; there is no merging.
func (s *CartService) AddItem(userId int, req entity.CartItemRequest) (*model.CartItem, error) {
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return nil, ErrValidation
	}

	err := s.menuService.CheckSelection(req.FlavorId, req.SoupBaseId, req.MeatId, req.SpicyLevelId)
	if err != nil {
		return nil, err
	}

	item := &model.CartItem{
		UserId:       userId,
		FlavorId:     req.FlavorId,
		SoupBaseId:   req.SoupBaseId,
		MeatId:       req.MeatId,
		SpicyLevelId: req.SpicyLevelId,
		Quantity:     quantity,
	}
	if err := s.db.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// GetCart returns the user's cart lines in insertion order, with menu ids
// resolved to display names.
func (s *CartService) GetCart(userId int) ([]entity.CartLine, error) {
	lines := make([]entity.CartLine, 0)
	err := s.db.Table("cart_items AS c").
		Select("c.id AS cart_item_id, f.name AS flavor, s.name AS soup_base, m.name AS meat, sp.name AS spicy_level, c.quantity").
		Joins("JOIN menu_items f ON c.flavor_id = f.id").
		Joins("JOIN menu_items s ON c.soup_base_id = s.id").
		Joins("JOIN menu_items m ON c.meat_id = m.id").
		Joins("JOIN menu_items sp ON c.spicy_level_id = sp.id").
		Where("c.user_id = ?", userId).
		Order("c.id").
		Scan(&lines).
		Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// RemoveItem deletes a cart line scoped to its owner. A line that does not
// exist or belongs to someone else fails with ErrCartItemNotFound.
func (s *CartService) RemoveItem(userId, cartItemId int) error {
	result := s.db.Where("id = ? AND user_id = ?", cartItemId, userId).
		Delete(&model.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

// UpdateQuantity changes the quantity of a cart line scoped to its owner.
// Quantities below one are rejected before any mutation.
func (s *CartService) UpdateQuantity(userId, cartItemId, newQuantity int) error {
	if newQuantity <= 0 {
		return ErrValidation
	}
	result := s.db.Model(&model.CartItem{}).
		Where("id = ? AND user_id = ?", cartItemId, userId).
		Update("quantity", newQuantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}
