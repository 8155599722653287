//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/hificopy/axolopcrm-sub008/internal/handler/api"
	resdto "github.com/hificopy/axolopcrm-sub008/internal/handler/dto/response"
	"github.com/hificopy/axolopcrm-sub008/internal/usecase/queries"
	"github.com/hificopy/axolopcrm-sub008/tests/common/builder"
	"github.com/hificopy/axolopcrm-sub008/tests/common/httptest"
	queriesmock "github.com/hificopy/axolopcrm-sub008/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockAvailability *queriesmock.MockAvailabilityQueries
	mockLinkQueries  *queriesmock.MockLinkQueries
	handler          *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.mockLinkQueries = queriesmock.NewMockLinkQueries(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockAvailability, s.mockLinkQueries)

	s.router.GET("/links/:slug", s.handler.GetPublicLink)
	s.router.GET("/links/:slug/availability", s.handler.GetAvailability)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

// ================================================================================
// TestGetAvailability
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestGetAvailability() {
	url := "/links/intro-call/availability?date=2026-09-08"

	start := time.Date(2026, 9, 8, 9, 0, 0, 0, time.UTC)
	slots := []queries.SlotView{
		{Start: start, End: start.Add(30 * time.Minute), Label: "9:00 AM", Timezone: "UTC"},
		{Start: start.Add(15 * time.Minute), End: start.Add(45 * time.Minute), Label: "9:15 AM", Timezone: "UTC"},
	}

	s.Run("success: returns 200 OK with the day's slots", func() {
		s.mockAvailability.EXPECT().Get(gomock.Any(), "intro-call", "2026-09-08", "").
			Return(slots, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("intro-call", response.Slug)
		s.Equal("2026-09-08", response.Date)
		s.Require().Len(response.Slots, 2)
		s.True(start.Equal(response.Slots[0].Start))
		s.Equal("9:00 AM", response.Slots[0].Label)
		s.Equal("UTC", response.Slots[0].Timezone)
	})

	s.Run("success: tz query is forwarded", func() {
		s.mockAvailability.EXPECT().Get(gomock.Any(), "intro-call", "2026-09-08", "America/New_York").
			Return(slots, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"&tz=America/New_York", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: fully booked day yields an empty slot list", func() {
		s.mockAvailability.EXPECT().Get(gomock.Any(), "intro-call", "2026-09-08", "").
			Return([]queries.SlotView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.Slots)
	})

	s.Run("error: 400 Bad Request when date is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/links/intro-call/availability", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "date query parameter is required")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "link not found",
				queriesError:   queries.ErrLinkNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Link not found",
			},
			{
				name:           "malformed date",
				queriesError:   queries.ErrInvalidDate,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid date format",
			},
			{
				name:           "unknown timezone",
				queriesError:   queries.ErrInvalidTimezone,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Unknown timezone",
			},
			{
				name:           "internal server error",
				queriesError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockAvailability.EXPECT().Get(gomock.Any(), "intro-call", "2026-09-08", "").
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetPublicLink
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestGetPublicLink() {
	url := "/links/intro-call"

	returnView := builder.NewLinkBuilder().BuildPublicView()

	s.Run("success: returns 200 OK with PublicLinkResponse", func() {
		s.mockLinkQueries.EXPECT().GetBySlug(gomock.Any(), "intro-call").
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.PublicLinkResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.Slug, response.Slug)
		s.Equal(returnView.Name, response.Name)
		s.Equal(returnView.DurationMin, response.DurationMin)
		s.Equal(returnView.Timezone, response.Timezone)
	})

	s.Run("error: 404 Not Found for unknown or inactive slug", func() {
		s.mockLinkQueries.EXPECT().GetBySlug(gomock.Any(), "intro-call").
			Return(nil, queries.ErrLinkNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Link not found")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockLinkQueries.EXPECT().GetBySlug(gomock.Any(), "intro-call").
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
