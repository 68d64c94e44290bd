package list_bookings

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/bookings/models"
)

// Scope чьи бронирования показывает обработчик
type Scope string

const (
	ScopeMy           Scope = "my"           // GET /bookings/my
	ScopePhotographer Scope = "photographer" // GET /bookings/photographer
	ScopeAll          Scope = "all"          // GET /bookings (admin)
)

// ToServiceRequest собирает фильтр из query параметров:
// start_date, end_date (YYYY-MM-DD), status, include_inactive
func ToServiceRequest(actor domain.Actor, r *http.Request) (*models.ListBookingsRequest, error) {
	q := r.URL.Query()

	start, err := handlers.ParseOptionalDate(q.Get("start_date"))
	if err != nil {
		return nil, err
	}
	end, err := handlers.ParseOptionalDate(q.Get("end_date"))
	if err != nil {
		return nil, err
	}

	req := &models.ListBookingsRequest{
		Actor:     actor,
		StartDate: start,
		EndDate:   end,
	}

	if raw := q.Get("status"); raw != "" {
		status, err := domain.ParseStatus(raw)
		if err != nil {
			return nil, err
		}
		req.Status = &status
	}

	if raw := q.Get("include_inactive"); raw != "" {
		include, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = include
	}

	return req, nil
}
