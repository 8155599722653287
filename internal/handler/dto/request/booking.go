package request

import (
	"strings"
	"time"
)

type CreateBookingRequest struct {
	Name        string    `json:"name" binding:"required"`
	Email       string    `json:"email" binding:"required,email"`
	Phone       *string   `json:"phone,omitempty"`
	Company     *string   `json:"company,omitempty"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	Timezone    string    `json:"timezone" binding:"required"`
}

type CancelBookingRequest struct {
	Reason *string `json:"reason,omitempty"`
}

func (r CancelBookingRequest) GetReason() *string {
	if r.Reason == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.Reason)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
