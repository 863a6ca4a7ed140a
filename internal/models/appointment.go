package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint   `gorm:"index;not null" json:"barber_id"`
	Barber   Barber `gorm:"foreignKey:BarberID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ServiceID uint    `gorm:"not null" json:"service_id"`
	Service   Service `gorm:"foreignKey:ServiceID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	CustomerID *uint     `json:"customer_id"`
	Customer   *Customer `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	// Slot start, UTC, aligned to the 30-minute grid. A partial unique
	// index on (barber_id, appointment_time) over non-cancelled rows is
	// created in internal/db.
	AppointmentTime time.Time `gorm:"not null" json:"appointment_time"`

	Status    string `gorm:"size:20;default:'booked'" json:"status"`
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
