package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/bobthecat1708/barber-finder-api/internal/domain/booking"
	"github.com/bobthecat1708/barber-finder-api/internal/httperr"
	"github.com/bobthecat1708/barber-finder-api/internal/models"
	"github.com/bobthecat1708/barber-finder-api/internal/timeutil"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Reference data
// --------------------------------------------------

func (r *BookingGormRepository) GetBarber(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, id).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Schedule
// --------------------------------------------------

func (r *BookingGormRepository) GetScheduleEntry(
	ctx context.Context,
	barberID uint,
	date time.Time,
) (*models.ScheduleEntry, error) {

	var entry models.ScheduleEntry
	err := r.db.WithContext(ctx).
		Where("barber_id = ? AND schedule_date = ?", barberID, timeutil.DayStartUTC(date)).
		First(&entry).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *BookingGormRepository) ListBookedTimes(
	ctx context.Context,
	barberID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]time.Time, error) {

	return listBookedTimes(r.db.WithContext(ctx), barberID, dayStart, dayEnd)
}

func listBookedTimes(
	tx *gorm.DB,
	barberID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]time.Time, error) {

	var aps []models.Appointment
	if err := tx.
		Select("appointment_time").
		Where(
			"barber_id = ? AND status <> ? AND appointment_time >= ? AND appointment_time < ?",
			barberID, string(domain.StatusCancelled), dayStart, dayEnd,
		).
		Order("appointment_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	times := make([]time.Time, 0, len(aps))
	for _, ap := range aps {
		times = append(times, ap.AppointmentTime.UTC())
	}
	return times, nil
}

// BookAppointment is the whole booking transaction: lock the schedule row
// and the day's bookings, re-derive availability, insert, commit. GORM
// rolls the transaction back on any returned error, so a rejection never
// leaves a partial row. The partial unique index backstops the race
// between the locked read and the insert; a unique violation surfaces as
// the same slot_unavailable rejection.
func (r *BookingGormRepository) BookAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	slot := ap.AppointmentTime.UTC()
	dayStart := timeutil.DayStartUTC(slot)
	dayEnd := dayStart.Add(24 * time.Hour)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var entry models.ScheduleEntry
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("barber_id = ? AND schedule_date = ?", ap.BarberID, dayStart).
			First(&entry).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness("slot_unavailable")
		}
		if err != nil {
			return err
		}

		window := domain.WindowFromEntry(&entry)
		if !entry.IsActive {
			return httperr.ErrBusiness("slot_unavailable")
		}
		if err := window.Validate(); err != nil {
			return err
		}

		booked, err := listBookedTimes(
			tx.Clauses(clause.Locking{Strength: "UPDATE"}),
			ap.BarberID, dayStart, dayEnd,
		)
		if err != nil {
			return err
		}

		taken := make(map[int64]struct{}, len(booked))
		for _, bt := range booked {
			taken[bt.Unix()] = struct{}{}
		}

		open := false
		for candidate := range window.Slots() {
			if candidate.Equal(slot) {
				_, busy := taken[candidate.Unix()]
				open = !busy
				break
			}
		}
		if !open {
			return httperr.ErrBusiness("slot_unavailable")
		}

		if err := tx.Create(ap).Error; err != nil {
			return translateInsertError(err)
		}

		return nil
	})
}

// translateInsertError turns a unique violation on the partial slot
// index into the same rejection a losing racer would have seen from the
// locked availability check. Anything else is a real store failure.
func translateInsertError(err error) error {
	if httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness("slot_unavailable")
	}
	return err
}

func (r *BookingGormRepository) GetAppointmentForCustomer(
	ctx context.Context,
	appointmentID uint,
	customerID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND customer_id = ?", appointmentID, customerID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
