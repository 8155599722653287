package response

import (
	"time"

	"github.com/hificopy/axolopcrm-sub008/internal/usecase/queries"
)

type SlotResponse struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Label    string    `json:"label"`
	Timezone string    `json:"timezone"`
}

type AvailabilityResponse struct {
	Slug  string         `json:"slug"`
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

func FromSlotViews(slug, date string, views []queries.SlotView) *AvailabilityResponse {
	slots := make([]SlotResponse, len(views))
	for i, v := range views {
		slots[i] = SlotResponse{
			Start:    v.Start,
			End:      v.End,
			Label:    v.Label,
			Timezone: v.Timezone,
		}
	}
	return &AvailabilityResponse{Slug: slug, Date: date, Slots: slots}
}
