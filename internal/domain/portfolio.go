package domain

import (
	"slices"
	"time"
)

// PhotographerProfile публичный профиль фотографа вместе с именем и email пользователя
type PhotographerProfile struct {
	Photographer
	Email     string
	FirstName string
	LastName  string
}

// PhotographerUpdate изменяемые фотографом поля профиля; nil - поле не меняется
type PhotographerUpdate struct {
	Bio        *string
	Phone      *string
	ServiceIDs *[]int64
}

// PortfolioItem работа в портфолио фотографа
type PortfolioItem struct {
	ID             int64
	PhotographerID int64
	ServiceID      int64
	Image          string // ссылка из filestore
	Description    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CanManage администратор или фотограф, которому принадлежит работа
func (p *PortfolioItem) CanManage(actor Actor) bool {
	if actor.IsAdmin() {
		return true
	}
	return actor.Role == RolePhotographer && actor.PhotographerID != nil && *actor.PhotographerID == p.PhotographerID
}

// PortfolioFilter фильтр галереи; nil - без ограничения
type PortfolioFilter struct {
	PhotographerID *int64
	ServiceID      *int64
}

// HomePageContent контент главной страницы, единственная запись
type HomePageContent struct {
	Title            string
	Description      string
	ContactEmails    []string
	ContactPhones    []string
	ContactAddresses []string
	GuestPromoText   string
	UpdatedAt        time.Time
}

// DefaultHomePageContent контент до первого редактирования администратором
func DefaultHomePageContent() HomePageContent {
	return HomePageContent{
		Title:            "Ласкаво просимо до нашої фотостудії",
		Description:      "Ми створюємо незабутні моменти та професійні фотографії для ваших особливих подій.",
		ContactEmails:    []string{},
		ContactPhones:    []string{},
		ContactAddresses: []string{},
		GuestPromoText:   "Зареєструйтесь, щоб отримати персональну знижку на фотосесію.",
	}
}

// Clone копия без общих срезов
func (c HomePageContent) Clone() HomePageContent {
	c.ContactEmails = slices.Clone(c.ContactEmails)
	c.ContactPhones = slices.Clone(c.ContactPhones)
	c.ContactAddresses = slices.Clone(c.ContactAddresses)
	return c
}
