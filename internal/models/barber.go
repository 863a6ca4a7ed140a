package models

import "time"

type Barber struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ShopID uint       `gorm:"index;not null" json:"shop_id"`
	Shop   BarberShop `gorm:"foreignKey:ShopID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name     string `gorm:"size:100;not null" json:"name"`
	ImageURL string `gorm:"size:255" json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
