package dto

import "time"

// BookingListDTO is one row of a customer's booking history, joined with
// service, barber and shop.
type BookingListDTO struct {
	ID              uint      `json:"id"`
	Reference       string    `json:"reference"`
	AppointmentTime time.Time `json:"appointment_time"`
	Status          string    `json:"status"`
	ServiceName     string    `json:"service_name"`
	BarberName      string    `json:"barber_name"`
	ShopName        string    `json:"shop_name"`
	ShopAddress     string    `json:"shop_address"`
}

// DashboardAppointmentDTO is one row of a shop's appointment book.
type DashboardAppointmentDTO struct {
	ID              uint      `json:"id"`
	AppointmentTime time.Time `json:"appointment_time"`
	Status          string    `json:"status"`
	ServiceName     string    `json:"service_name"`
	BarberName      string    `json:"barber_name"`
}
