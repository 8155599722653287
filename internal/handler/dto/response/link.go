package response

import (
	"time"

	"github.com/hificopy/axolopcrm-sub008/internal/domain/schedule"
	"github.com/hificopy/axolopcrm-sub008/internal/usecase/queries"

	"github.com/google/uuid"
)

type LinkResponse struct {
	ID             uuid.UUID            `json:"id"`
	Slug           string               `json:"slug"`
	Name           string               `json:"name"`
	DurationMin    int                  `json:"durationMin"`
	Hours          schedule.WeeklyHours `json:"hours"`
	Timezone       string               `json:"timezone"`
	MinNoticeHours int                  `json:"minNoticeHours"`
	MaxAdvanceDays int                  `json:"maxAdvanceDays"`
	Policy         string               `json:"policy"`
	MemberIDs      []uuid.UUID          `json:"memberIds,omitempty"`
	MaxPerDay      *int                 `json:"maxPerDay,omitempty"`
	MaxPerWeek     *int                 `json:"maxPerWeek,omitempty"`
	Active         bool                 `json:"active"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

// PublicLinkResponse is what an unauthenticated booking page sees: no owner,
// no member list, no caps.
type PublicLinkResponse struct {
	Slug           string               `json:"slug"`
	Name           string               `json:"name"`
	DurationMin    int                  `json:"durationMin"`
	Hours          schedule.WeeklyHours `json:"hours"`
	Timezone       string               `json:"timezone"`
	MinNoticeHours int                  `json:"minNoticeHours"`
	MaxAdvanceDays int                  `json:"maxAdvanceDays"`
}

func FromLinkView(rm *queries.LinkView) *LinkResponse {
	return &LinkResponse{
		ID:             rm.ID,
		Slug:           rm.Slug,
		Name:           rm.Name,
		DurationMin:    rm.DurationMin,
		Hours:          rm.Hours,
		Timezone:       rm.Timezone,
		MinNoticeHours: rm.MinNoticeHours,
		MaxAdvanceDays: rm.MaxAdvanceDays,
		Policy:         rm.Policy,
		MemberIDs:      rm.MemberIDs,
		MaxPerDay:      rm.MaxPerDay,
		MaxPerWeek:     rm.MaxPerWeek,
		Active:         rm.Active,
		CreatedAt:      rm.CreatedAt,
		UpdatedAt:      rm.UpdatedAt,
	}
}

func FromPublicLinkView(rm *queries.PublicLinkView) *PublicLinkResponse {
	return &PublicLinkResponse{
		Slug:           rm.Slug,
		Name:           rm.Name,
		DurationMin:    rm.DurationMin,
		Hours:          rm.Hours,
		Timezone:       rm.Timezone,
		MinNoticeHours: rm.MinNoticeHours,
		MaxAdvanceDays: rm.MaxAdvanceDays,
	}
}
