package models

import "time"

// FavouriteShop links a customer to a shop they starred. One row per pair.
type FavouriteShop struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint     `gorm:"uniqueIndex:idx_customer_favourite;not null" json:"customer_id"`
	Customer   Customer `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ShopID uint       `gorm:"uniqueIndex:idx_customer_favourite;not null" json:"shop_id"`
	Shop   BarberShop `gorm:"foreignKey:ShopID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
