package domain

import (
	"fmt"
	"strings"
)

// Role закрытый набор ролей пользователя
type Role string

const (
	RoleCustomer     Role = "customer"
	RolePhotographer Role = "photographer"
	RoleAdmin        Role = "admin"
)

// ParseRole нормализует роль из токена
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleCustomer:
		return RoleCustomer, nil
	case RolePhotographer:
		return RolePhotographer, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

// Actor тот, кто выполняет действие над бронированием
type Actor struct {
	UserID int64
	Role   Role
	// PhotographerID заполнен только для роли photographer
	PhotographerID *int64
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// OwnsAsCustomer true, если бронирование оформлено на этого пользователя
func (a Actor) OwnsAsCustomer(b *Booking) bool {
	return a.Role == RoleCustomer && b.UserID != nil && *b.UserID == a.UserID
}

// OwnsAsPhotographer true, если бронирование назначено на профиль этого фотографа
func (a Actor) OwnsAsPhotographer(b *Booking) bool {
	return a.Role == RolePhotographer && a.PhotographerID != nil && *a.PhotographerID == b.PhotographerID
}

// CanView владелец, фотограф бронирования или администратор
func (a Actor) CanView(b *Booking) bool {
	return a.IsAdmin() || a.OwnsAsPhotographer(b) || (b.UserID != nil && *b.UserID == a.UserID)
}
