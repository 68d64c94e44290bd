package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service bookable photo session type
type Service struct {
	ID              int64
	Name            string
	Description     string
	Price           decimal.Decimal
	DurationMinutes int
}

// AdditionalService optional line item added to a booking
type AdditionalService struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
}

// User registered account
type User struct {
	ID        int64
	Email     string
	FirstName string
	LastName  string
	Role      Role
	Discount  decimal.Decimal
	CreatedAt time.Time
}

// DisplayName имя для писем: имя или email
func (u *User) DisplayName() string {
	if u.FirstName != "" {
		return u.FirstName
	}
	return u.Email
}
