package models

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// ServiceResponse услуга фотостудии
type ServiceResponse struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"duration_minutes"`
}

// AdditionalServiceResponse дополнительная услуга
type AdditionalServiceResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// CatalogResponse каталог услуг
type CatalogResponse struct {
	Services           []ServiceResponse           `json:"services"`
	AdditionalServices []AdditionalServiceResponse `json:"additional_services"`
}

// FromDomain собирает каталог из доменных моделей
func FromDomain(services []*domain.Service, additional []*domain.AdditionalService) *CatalogResponse {
	resp := &CatalogResponse{
		Services:           make([]ServiceResponse, 0, len(services)),
		AdditionalServices: make([]AdditionalServiceResponse, 0, len(additional)),
	}
	for _, s := range services {
		resp.Services = append(resp.Services, ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			Description:     s.Description,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
		})
	}
	for _, a := range additional {
		resp.AdditionalServices = append(resp.AdditionalServices, AdditionalServiceResponse{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
			Price:       a.Price,
		})
	}
	return resp
}
