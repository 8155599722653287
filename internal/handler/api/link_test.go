//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/hificopy/axolopcrm-sub008/internal/handler/api"
	resdto "github.com/hificopy/axolopcrm-sub008/internal/handler/dto/response"
	"github.com/hificopy/axolopcrm-sub008/internal/pkg/errs"
	"github.com/hificopy/axolopcrm-sub008/internal/usecase/commands"
	"github.com/hificopy/axolopcrm-sub008/internal/usecase/queries"
	"github.com/hificopy/axolopcrm-sub008/tests/common/builder"
	"github.com/hificopy/axolopcrm-sub008/tests/common/httptest"
	"github.com/hificopy/axolopcrm-sub008/tests/common/testutil"
	commandsmock "github.com/hificopy/axolopcrm-sub008/tests/mock/commands"
	queriesmock "github.com/hificopy/axolopcrm-sub008/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LinkHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockCtrl           *gomock.Controller
	mockCommands       *commandsmock.MockLinkCommands
	mockLinkQueries    *queriesmock.MockLinkQueries
	mockBookingQueries *queriesmock.MockBookingQueries
	handler            *api.LinkHandler
	ownerID            uuid.UUID
}

func (s *LinkHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockLinkCommands(s.mockCtrl)
	s.mockLinkQueries = queriesmock.NewMockLinkQueries(s.mockCtrl)
	s.mockBookingQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewLinkHandler(s.mockCommands, s.mockLinkQueries, s.mockBookingQueries)
	s.ownerID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.ownerID)
		c.Next()
	}

	manage := s.router.Group("/me/links", authMiddleware)
	manage.POST("", s.handler.CreateLink)
	manage.GET("", s.handler.ListLinks)
	manage.GET("/:id", s.handler.GetLink)
	manage.PATCH("/:id", s.handler.UpdateLink)
	manage.DELETE("/:id", s.handler.DeactivateLink)
	manage.GET("/:id/bookings", s.handler.ListLinkBookings)
}

func (s *LinkHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLinkHandlerSuite(t *testing.T) {
	suite.Run(t, new(LinkHandlerTestSuite))
}

type testCaseLink struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreateLink
// ================================================================================

func (s *LinkHandlerTestSuite) TestCreateLink() {
	url := "/me/links"

	reqBody := builder.NewLinkBuilder().BuildCreateRequestDTO()
	returnView := builder.NewLinkBuilder().BuildView()

	validationTestCases := []testCaseLink{
		{name: "missing field: name (required)", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: duration_min (required)", mutate: testutil.Field("duration_min", nil), expectCode: http.StatusBadRequest},
		{name: "duration_min must be positive", mutate: testutil.Field("duration_min", 0), expectCode: http.StatusBadRequest},
		{name: "missing field: hours (required)", mutate: testutil.Field("hours", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: timezone (required)", mutate: testutil.Field("timezone", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: policy (required)", mutate: testutil.Field("policy", nil), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 Created with the owner from the token", func() {
		s.mockCommands.EXPECT().CreateLink(gomock.Any(), s.ownerID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, params commands.CreateLinkParams) (*queries.LinkView, error) {
				s.Equal(reqBody.Name, params.Name)
				s.Equal(reqBody.DurationMin, params.DurationMin)
				return returnView, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.LinkResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.Slug, response.Slug)
		s.True(response.Active)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range validationTestCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request format")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "link validation failed",
				commandsError:  commands.ErrLinkValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Link validation failed",
			},
			{
				name:           "marked link validation error",
				commandsError:  errs.Mark(errs.New("duration must be positive"), commands.ErrLinkValidation),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Link validation failed",
			},
			{
				name:           "slug space exhausted",
				commandsError:  commands.ErrSlugExhausted,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Could not allocate a unique slug",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateLink(gomock.Any(), s.ownerID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestUpdateLink
// ================================================================================

func (s *LinkHandlerTestSuite) TestUpdateLink() {
	linkID := uuid.New()
	url := "/me/links/" + linkID.String()

	returnView := builder.NewLinkBuilder().WithName("Discovery Call").BuildView()
	returnView.ID = linkID

	s.Run("success: returns 200 OK with the updated link", func() {
		s.mockCommands.EXPECT().UpdateLink(gomock.Any(), s.ownerID, linkID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ uuid.UUID, params commands.UpdateLinkParams) (*queries.LinkView, error) {
				s.Require().NotNil(params.Name)
				s.Equal("Discovery Call", *params.Name)
				s.Nil(params.DurationMin)
				return returnView, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"name": "Discovery Call"}, "bearer-token")

		var response resdto.LinkResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(linkID, response.ID)
		s.Equal("Discovery Call", response.Name)
	})

	s.Run("success: clear flags pass through", func() {
		s.mockCommands.EXPECT().UpdateLink(gomock.Any(), s.ownerID, linkID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ uuid.UUID, params commands.UpdateLinkParams) (*queries.LinkView, error) {
				s.True(params.ClearMaxPerDay)
				s.Nil(params.MaxPerDay)
				return returnView, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"clear_max_per_day": true}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/me/links/invalid-uuid", map[string]any{"name": "x"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid link ID format")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"name": "x"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "link not found",
				commandsError:  commands.ErrLinkNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Link not found",
			},
			{
				name:           "link owned by someone else",
				commandsError:  commands.ErrForbidden,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Link does not belong to the caller",
			},
			{
				name:           "link validation failed",
				commandsError:  commands.ErrLinkValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Link validation failed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateLink(gomock.Any(), s.ownerID, linkID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"name": "x"}, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestDeactivateLink
// ================================================================================

func (s *LinkHandlerTestSuite) TestDeactivateLink() {
	linkID := uuid.New()
	url := "/me/links/" + linkID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().DeactivateLink(gomock.Any(), s.ownerID, linkID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusNoContent, nil)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/me/links/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid link ID format")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 403 Forbidden for someone else's link", func() {
		s.mockCommands.EXPECT().DeactivateLink(gomock.Any(), s.ownerID, linkID).
			Return(commands.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Link does not belong to the caller")
	})

	s.Run("error: 404 Not Found for missing link", func() {
		s.mockCommands.EXPECT().DeactivateLink(gomock.Any(), s.ownerID, linkID).
			Return(commands.ErrLinkNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Link not found")
	})
}

// ================================================================================
// TestListLinks
// ================================================================================

func (s *LinkHandlerTestSuite) TestListLinks() {
	url := "/me/links"

	s.Run("success: returns 200 OK with the owner's links", func() {
		views := []*queries.LinkView{
			builder.NewLinkBuilder().WithSlug("intro-call").BuildView(),
			builder.NewLinkBuilder().WithSlug("demo-call").BuildView(),
		}
		s.mockLinkQueries.EXPECT().ListByOwner(gomock.Any(), s.ownerID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.LinkResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal("intro-call", response[0].Slug)
		s.Equal("demo-call", response[1].Slug)
	})

	s.Run("success: no links yields an empty array", func() {
		s.mockLinkQueries.EXPECT().ListByOwner(gomock.Any(), s.ownerID).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.LinkResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockLinkQueries.EXPECT().ListByOwner(gomock.Any(), s.ownerID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestGetLink
// ================================================================================

func (s *LinkHandlerTestSuite) TestGetLink() {
	linkID := uuid.New()
	url := "/me/links/" + linkID.String()

	returnView := builder.NewLinkBuilder().BuildView()
	returnView.ID = linkID

	s.Run("success: returns 200 OK with LinkResponse", func() {
		s.mockLinkQueries.EXPECT().GetByID(gomock.Any(), s.ownerID, linkID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.LinkResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(linkID, response.ID)
		s.Equal(returnView.Name, response.Name)
		s.Equal(returnView.DurationMin, response.DurationMin)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me/links/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid link ID format")
	})

	s.Run("error: 404 Not Found for missing or foreign link", func() {
		s.mockLinkQueries.EXPECT().GetByID(gomock.Any(), s.ownerID, linkID).
			Return(nil, queries.ErrLinkNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Link not found")
	})
}

// ================================================================================
// TestListLinkBookings
// ================================================================================

func (s *LinkHandlerTestSuite) TestListLinkBookings() {
	linkID := uuid.New()
	url := "/me/links/" + linkID.String() + "/bookings"

	s.Run("success: returns 200 OK with the link's bookings", func() {
		views := []*queries.BookingView{
			builder.NewBookingBuilder().WithLinkID(linkID).BuildView(),
			builder.NewBookingBuilder().WithLinkID(linkID).AsCancelled().BuildView(),
		}
		s.mockBookingQueries.EXPECT().ListByLink(gomock.Any(), s.ownerID, linkID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal(linkID, response[0].LinkID)
		s.Equal("cancelled", response[1].Status)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me/links/invalid-uuid/bookings", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid link ID format")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 404 Not Found for missing or foreign link", func() {
		s.mockBookingQueries.EXPECT().ListByLink(gomock.Any(), s.ownerID, linkID).
			Return(nil, queries.ErrLinkNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Link not found")
	})
}
