package domain

import "github.com/shopspring/decimal"

// Default configuration values
const (
	DefaultSlotGranularityMinutes = 15
	DefaultServiceDurationMinutes = 60 // если услуга не указана при поиске дат
	DefaultBookingHorizonDays     = 90
	DefaultWorkStart              = "09:00"
	DefaultWorkEnd                = "18:00"
)

// DefaultWorkDays понедельник-пятница (0=Пн..6=Вс)
var DefaultWorkDays = []int{0, 1, 2, 3, 4}

// Loyalty defaults
var (
	DefaultDiscountIncrement = decimal.RequireFromString("0.50")
	DefaultDiscountCap       = decimal.RequireFromString("10.00")
)

// Business validation constants
const (
	MaxServiceDurationMinutes   = 24 * 60
	MaxCancellationReasonLength = 500
	MaxAdditionalServices       = 50
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses статусы, которые не занимают время в календаре
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses статусы, которые занимают время в календаре
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusDone,
	StatusCompleted,
}
