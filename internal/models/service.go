package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ShopID uint       `gorm:"index;not null" json:"shop_id"`
	Shop   BarberShop `gorm:"foreignKey:ShopID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name            string  `gorm:"size:100;not null" json:"name"`
	Price           float64 `gorm:"not null" json:"price"`
	DurationMinutes int     `gorm:"not null" json:"duration_minutes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
