package service

import (
	"ramen-kiosk/database"
	"ramen-kiosk/database/model"
	"ramen-kiosk/web/entity"

	"gorm.io/gorm"
)

// MenuService reads the fixed menu seeded at startup.
type MenuService struct {
	db *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{db: db}
}

// GetMenu returns all menu items grouped by category, each group ordered by
// name.
func (s *MenuService) GetMenu() (map[string][]entity.MenuEntry, error) {
	var items []model.MenuItem
	err := s.db.Order("category, name").Find(&items).Error
	if err != nil {
		return nil, err
	}

	menu := make(map[string][]entity.MenuEntry)
	for _, item := range items {
		category := string(item.Category)
		menu[category] = append(menu[category], entity.MenuEntry{
			Id:   item.Id,
			Name: item.Name,
		})
	}
	return menu, nil
}

// CheckSelection verifies that the four ids resolve to menu items of the
// expected categories. Used by both the cart and the direct-order paths.
func (s *MenuService) CheckSelection(flavorId, soupBaseId, meatId, spicyLevelId int) error {
	selection := []struct {
		id       int
		category model.Category
	}{
		{flavorId, model.Flavor},
		{soupBaseId, model.SoupBase},
		{meatId, model.Meat},
		{spicyLevelId, model.SpicyLevel},
	}
	for _, sel := range selection {
		var item model.MenuItem
		err := s.db.Where("id = ? AND category = ?", sel.id, sel.category).
			First(&item).
			Error
		if database.IsNotFound(err) {
			return ErrValidation
		} else if err != nil {
			return err
		}
	}
	return nil
}
