//go:build e2e

package e2e

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	resdto "github.com/hificopy/axolopcrm-sub008/internal/handler/dto/response"
	"github.com/hificopy/axolopcrm-sub008/internal/pkg/jwt"
	"github.com/hificopy/axolopcrm-sub008/tests/common/builder"
	"github.com/hificopy/axolopcrm-sub008/tests/common/dbtest"
	"github.com/hificopy/axolopcrm-sub008/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const manageLinksURL = "/api/me/links"

type bookingRequest struct {
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Timezone    string    `json:"timezone"`
}

type BookingE2ESuite struct {
	SharedSuite
}

func TestBookingE2E(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingE2ESuite))
}

func (s *BookingE2ESuite) ownerToken(ownerID uuid.UUID) string {
	token, err := jwt.NewManager(s.Config.JWT.Secret).Generate(ownerID, time.Hour)
	s.Require().NoError(err)
	return token
}

// createLink provisions a link through the management API and returns
// its view, including the public slug.
func (s *BookingE2ESuite) createLink(token string, mutate func(*builder.LinkBuilder)) resdto.LinkResponse {
	b := builder.NewLinkBuilder()
	if mutate != nil {
		b.With(mutate)
	}
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, manageLinksURL, b.BuildCreateRequestDTO(), token)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var link resdto.LinkResponse
	httptest.DecodeResponseBody(s.T(), w.Body, &link)
	return link
}

func (s *BookingE2ESuite) book(slug string, at time.Time) (*resdto.CreateBookingResponse, int) {
	req := bookingRequest{
		Name:        "Ada Lovelace",
		Email:       "ada@example.com",
		ScheduledAt: at,
		Timezone:    "UTC",
	}
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
		fmt.Sprintf("/api/links/%s/bookings", slug), req, "")
	if w.Code != http.StatusCreated {
		return nil, w.Code
	}
	var resp resdto.CreateBookingResponse
	httptest.DecodeResponseBody(s.T(), w.Body, &resp)
	return &resp, w.Code
}

// upcomingWeekday returns midnight UTC of the first Monday-Friday at
// least two days out, so slots built from it clear the notice window
// and land inside weekday business hours.
func upcomingWeekday() time.Time {
	day := time.Now().UTC().AddDate(0, 0, 2)
	for day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
		day = day.AddDate(0, 0, 1)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *BookingE2ESuite) TestCreateBooking() {
	s.Run("concurrent requests for the same slot produce one booking", func() {
		ownerID := uuid.New()
		link := s.createLink(s.ownerToken(ownerID), nil)
		slot := upcomingWeekday().Add(10 * time.Hour)

		var wg sync.WaitGroup
		statuses := make([]int, 2)
		for i := range statuses {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, statuses[i] = s.book(link.Slug, slot)
			}()
		}
		wg.Wait()

		require.ElementsMatch(s.T(), []int{http.StatusCreated, http.StatusConflict}, statuses)
		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "bookings"))
		s.Equal(1, dbtest.ConfirmedEventCount(s.T(), s.DB, ownerID))
	})

	s.Run("round robin rotates through members across bookings", func() {
		m1, m2 := uuid.New(), uuid.New()
		link := s.createLink(s.ownerToken(uuid.New()), func(b *builder.LinkBuilder) {
			b.Policy = "round_robin"
			b.MemberIDs = []uuid.UUID{m1, m2}
		})
		day := upcomingWeekday()

		wantAssignees := []uuid.UUID{m1, m2, m1}
		for i, want := range wantAssignees {
			resp, code := s.book(link.Slug, day.Add(time.Duration(10+i)*time.Hour))
			s.Require().Equal(http.StatusCreated, code)
			s.Equal(want, dbtest.BookingAssignee(s.T(), s.DB, resp.Booking.ID), "booking %d", i)
		}
	})

	s.Run("daily cap rejects the second booking of the day", func() {
		one := 1
		link := s.createLink(s.ownerToken(uuid.New()), func(b *builder.LinkBuilder) {
			b.MaxPerDay = &one
		})
		day := upcomingWeekday()

		_, code := s.book(link.Slug, day.Add(10*time.Hour))
		s.Require().Equal(http.StatusCreated, code)

		_, code = s.book(link.Slug, day.Add(14*time.Hour))
		s.Equal(http.StatusConflict, code)
		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "bookings"))
	})

	s.Run("cancelled slot can be booked again", func() {
		link := s.createLink(s.ownerToken(uuid.New()), nil)
		slot := upcomingWeekday().Add(11 * time.Hour)

		first, code := s.book(link.Slug, slot)
		s.Require().Equal(http.StatusCreated, code)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("/api/bookings/%s/cancel", first.Booking.ID), nil, "")
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

		_, code = s.book(link.Slug, slot)
		s.Equal(http.StatusCreated, code)
		s.Equal(2, dbtest.CountRows(s.T(), s.DB, "bookings"))
	})
}
