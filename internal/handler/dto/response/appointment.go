package response

import (
	"time"

	"grooming-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentResponse struct {
	ID              int64     `json:"id"`
	CustomerID      uuid.UUID `json:"customerId"`
	CustomerName    string    `json:"customerName"`
	AppointmentTime time.Time `json:"appointmentTime"`
	DogSize         string    `json:"dogSize"`
	DurationMinutes int       `json:"durationMinutes"`
	Price           float64   `json:"price"`
	FinalPrice      float64   `json:"finalPrice"`
	DiscountApplied bool      `json:"discountApplied"`
	CreatedAt       time.Time `json:"createdAt"`
}

func FromAppointmentView(v *queries.AppointmentView) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              v.ID,
		CustomerID:      v.CustomerID,
		CustomerName:    v.CustomerName,
		AppointmentTime: v.Start,
		DogSize:         v.SizeClass,
		DurationMinutes: v.DurationMinutes,
		Price:           v.BasePrice.InexactFloat64(),
		FinalPrice:      v.FinalPrice.InexactFloat64(),
		DiscountApplied: v.DiscountApplied,
		CreatedAt:       v.CreatedAt,
	}
}

func FromAppointmentViews(vs []*queries.AppointmentView) []*AppointmentResponse {
	out := make([]*AppointmentResponse, len(vs))
	for i, v := range vs {
		out[i] = FromAppointmentView(v)
	}
	return out
}
