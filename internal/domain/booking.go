package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusDone      BookingStatus = "done"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// ParseStatus нормализует входное значение статуса: регистр, пробелы, дефисы
// и устаревшие варианты отмены (canceled, cancelled_by_user, cancelled_by_admin).
func ParseStatus(s string) (BookingStatus, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)

	switch {
	case norm == string(StatusPending):
		return StatusPending, nil
	case norm == string(StatusConfirmed):
		return StatusConfirmed, nil
	case norm == string(StatusDone):
		return StatusDone, nil
	case norm == string(StatusCompleted):
		return StatusCompleted, nil
	case norm == "cancelled", norm == "canceled",
		strings.HasPrefix(norm, "cancelled_by_"), strings.HasPrefix(norm, "canceled_by_"):
		return StatusCancelled, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
}

// GuestContact контакты владельца бронирования без аккаунта
type GuestContact struct {
	FirstName string
	LastName  string
	Email     string
}

// Booking represents a photo session booking.
// Exactly one of UserID and Guest is set.
type Booking struct {
	ID             int64
	PhotographerID int64
	ServiceID      int64
	Date           time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString
	Status         BookingStatus

	UserID *int64
	Guest  *GuestContact

	Price                decimal.Decimal
	AdditionalServiceIDs []int64

	ResultPhotos []string
	ResultVideos []string

	CancelledBy        *Role
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies time in the calendar
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsGuest returns true for bookings made without an account
func (b *Booking) IsGuest() bool {
	return b.UserID == nil
}

// HasResults returns true if at least one photo or video was uploaded
func (b *Booking) HasResults() bool {
	return len(b.ResultPhotos) > 0 || len(b.ResultVideos) > 0
}

// AcceptsResults returns true while results may be uploaded
func (b *Booking) AcceptsResults() bool {
	return b.Status == StatusConfirmed || b.Status == StatusDone
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	PhotographerID  *int64
	UserID          *int64
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *BookingStatus
	IncludeInactive bool
}
