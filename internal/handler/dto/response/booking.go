package response

import (
	"time"

	"github.com/hificopy/axolopcrm-sub008/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID           uuid.UUID  `json:"id"`
	LinkID       uuid.UUID  `json:"linkId"`
	BookerName   string     `json:"bookerName"`
	BookerEmail  string     `json:"bookerEmail"`
	BookerPhone  *string    `json:"bookerPhone,omitempty"`
	Company      *string    `json:"company,omitempty"`
	ScheduledAt  time.Time  `json:"scheduledAt"`
	Timezone     string     `json:"timezone"`
	Status       string     `json:"status"`
	EventID      *uuid.UUID `json:"eventId,omitempty"`
	CancelReason *string    `json:"cancelReason,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type CreateBookingResponse struct {
	Booking BookingResponse `json:"booking"`
	Event   *EventResponse  `json:"event,omitempty"`
}

type EventResponse struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	StartsAt time.Time `json:"startsAt"`
	EndsAt   time.Time `json:"endsAt"`
	Status   string    `json:"status"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:           rm.ID,
		LinkID:       rm.LinkID,
		BookerName:   rm.BookerName,
		BookerEmail:  rm.BookerEmail,
		BookerPhone:  rm.BookerPhone,
		Company:      rm.Company,
		ScheduledAt:  rm.ScheduledAt,
		Timezone:     rm.Timezone,
		Status:       rm.Status,
		EventID:      rm.EventID,
		CancelReason: rm.CancelReason,
		CreatedAt:    rm.CreatedAt,
		UpdatedAt:    rm.UpdatedAt,
	}
}

func FromEventView(rm *queries.EventView) *EventResponse {
	if rm == nil {
		return nil
	}
	return &EventResponse{
		ID:       rm.ID,
		Title:    rm.Title,
		StartsAt: rm.StartsAt,
		EndsAt:   rm.EndsAt,
		Status:   rm.Status,
	}
}
