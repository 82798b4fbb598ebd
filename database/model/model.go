package model

import "time"

type Category string

const (
	Flavor     Category = "flavor"
	SoupBase   Category = "soup_base"
	Meat       Category = "meat"
	SpicyLevel Category = "spicy_level"
)

// Categories lists every valid menu category in display order.
func Categories() []Category {
	return []Category{Flavor, SoupBase, Meat, SpicyLevel}
}

type User struct {
	Id        int       `json:"user_id" gorm:"primaryKey;autoIncrement"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"column:hashed_password;not null"`
	IsAdmin   bool      `json:"is_admin" gorm:"default:false"`
	CreatedAt time.Time `json:"-"`
}

type MenuItem struct {
	Id       int      `json:"id" gorm:"primaryKey;autoIncrement"`
	Category Category `json:"category" gorm:"uniqueIndex:idx_category_name;not null"`
	Name     string   `json:"name" gorm:"uniqueIndex:idx_category_name;not null"`
}

type CartItem struct {
	Id           int `json:"cart_item_id" gorm:"primaryKey;autoIncrement"`
	UserId       int `json:"-" gorm:"index;not null"`
	FlavorId     int `json:"flavor_id" gorm:"not null"`
	SoupBaseId   int `json:"soup_base_id" gorm:"not null"`
	MeatId       int `json:"meat_id" gorm:"not null"`
	SpicyLevelId int `json:"spicy_level_id" gorm:"not null"`
	Quantity     int `json:"quantity" gorm:"default:1"`
}

type Order struct {
	Id           int       `json:"order_id" gorm:"primaryKey;autoIncrement"`
	UserId       int       `json:"user_id" gorm:"index;not null"`
	FlavorId     int       `json:"flavor_id" gorm:"not null"`
	SoupBaseId   int       `json:"soup_base_id" gorm:"not null"`
	MeatId       int       `json:"meat_id" gorm:"not null"`
	SpicyLevelId int       `json:"spicy_level_id" gorm:"not null"`
	OrderDate    time.Time `json:"order_date" gorm:"autoCreateTime"`
	Status       string    `json:"status" gorm:"default:pending"`
}

type Inventory struct {
	Id          int       `json:"inventory_id" gorm:"primaryKey;autoIncrement"`
	ItemName    string    `json:"item_name" gorm:"uniqueIndex;not null"`
	Quantity    int       `json:"quantity" gorm:"not null"`
	LastUpdated time.Time `json:"last_updated" gorm:"autoUpdateTime"`
}
