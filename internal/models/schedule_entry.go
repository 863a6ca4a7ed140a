package models

import "time"

// ScheduleEntry is a barber's working window for one calendar date.
// At most one row per (barber, date); the shop dashboard replaces them
// wholesale over a date range.
type ScheduleEntry struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint   `gorm:"uniqueIndex:idx_barber_schedule_date;not null" json:"barber_id"`
	Barber   Barber `gorm:"foreignKey:BarberID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ScheduleDate time.Time `gorm:"type:date;uniqueIndex:idx_barber_schedule_date;not null" json:"schedule_date"`

	StartTime string `gorm:"size:5;not null" json:"start_time"` // HH:MM
	EndTime   string `gorm:"size:5;not null" json:"end_time"`   // HH:MM
	IsActive  bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
