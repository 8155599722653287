package request

import (
	"github.com/hificopy/axolopcrm-sub008/internal/domain/booking"
	"github.com/hificopy/axolopcrm-sub008/internal/domain/schedule"
	"github.com/hificopy/axolopcrm-sub008/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateLinkRequest struct {
	Name           string               `json:"name" binding:"required"`
	DurationMin    int                  `json:"duration_min" binding:"required,gt=0"`
	Hours          schedule.WeeklyHours `json:"hours" binding:"required"`
	Timezone       string               `json:"timezone" binding:"required"`
	BufferBefore   int                  `json:"buffer_before_min"`
	BufferAfter    int                  `json:"buffer_after_min"`
	MinNoticeHours int                  `json:"min_notice_hours"`
	MaxAdvanceDays int                  `json:"max_advance_days"`
	Policy         string               `json:"policy" binding:"required"`
	MemberIDs      []uuid.UUID          `json:"member_ids,omitempty"`
	MaxPerDay      *int                 `json:"max_per_day,omitempty"`
	MaxPerWeek     *int                 `json:"max_per_week,omitempty"`
}

func (r CreateLinkRequest) ToParams() commands.CreateLinkParams {
	return commands.CreateLinkParams{
		Name:           r.Name,
		DurationMin:    r.DurationMin,
		Hours:          r.Hours,
		Timezone:       r.Timezone,
		BufferBefore:   r.BufferBefore,
		BufferAfter:    r.BufferAfter,
		MinNoticeHours: r.MinNoticeHours,
		MaxAdvanceDays: r.MaxAdvanceDays,
		Policy:         booking.Policy(r.Policy),
		MemberIDs:      r.MemberIDs,
		MaxPerDay:      r.MaxPerDay,
		MaxPerWeek:     r.MaxPerWeek,
	}
}

type UpdateLinkRequest struct {
	Name            *string              `json:"name,omitempty"`
	DurationMin     *int                 `json:"duration_min,omitempty"`
	Hours           schedule.WeeklyHours `json:"hours,omitempty"`
	Timezone        *string              `json:"timezone,omitempty"`
	BufferBefore    *int                 `json:"buffer_before_min,omitempty"`
	BufferAfter     *int                 `json:"buffer_after_min,omitempty"`
	MinNoticeHours  *int                 `json:"min_notice_hours,omitempty"`
	MaxAdvanceDays  *int                 `json:"max_advance_days,omitempty"`
	Policy          *string              `json:"policy,omitempty"`
	MemberIDs       []uuid.UUID          `json:"member_ids,omitempty"`
	MaxPerDay       *int                 `json:"max_per_day,omitempty"`
	ClearMaxPerDay  bool                 `json:"clear_max_per_day,omitempty"`
	MaxPerWeek      *int                 `json:"max_per_week,omitempty"`
	ClearMaxPerWeek bool                 `json:"clear_max_per_week,omitempty"`
}

func (r UpdateLinkRequest) ToParams() commands.UpdateLinkParams {
	params := commands.UpdateLinkParams{
		Name:            r.Name,
		DurationMin:     r.DurationMin,
		Hours:           r.Hours,
		Timezone:        r.Timezone,
		BufferBefore:    r.BufferBefore,
		BufferAfter:     r.BufferAfter,
		MinNoticeHours:  r.MinNoticeHours,
		MaxAdvanceDays:  r.MaxAdvanceDays,
		MemberIDs:       r.MemberIDs,
		MaxPerDay:       r.MaxPerDay,
		ClearMaxPerDay:  r.ClearMaxPerDay,
		MaxPerWeek:      r.MaxPerWeek,
		ClearMaxPerWeek: r.ClearMaxPerWeek,
	}
	if r.Policy != nil {
		policy := booking.Policy(*r.Policy)
		params.Policy = &policy
	}
	return params
}
