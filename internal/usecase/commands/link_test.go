//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"

	"github.com/hificopy/axolopcrm-sub008/internal/domain/booking"
	"github.com/hificopy/axolopcrm-sub008/internal/infra"
	"github.com/hificopy/axolopcrm-sub008/internal/pkg/errs"
	"github.com/hificopy/axolopcrm-sub008/internal/usecase/commands"
	"github.com/hificopy/axolopcrm-sub008/internal/usecase/shared"
	"github.com/hificopy/axolopcrm-sub008/tests/common/builder"
	commandsmock "github.com/hificopy/axolopcrm-sub008/tests/mock/commands"
	sharedmock "github.com/hificopy/axolopcrm-sub008/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LinkCommandsTestSuite struct {
	suite.Suite
	ctx             context.Context
	mockCtrl        *gomock.Controller
	mockUow         *sharedmock.MockUnitOfWork
	mockTx          *sharedmock.MockTx
	mockReads       *sharedmock.MockCommandReads
	mockLinks       *sharedmock.MockLinkRepository
	mockAudit       *sharedmock.MockAuditRepository
	mockInvalidator *commandsmock.MockAvailabilityInvalidator
	commands        commands.LinkCommands
}

func (s *LinkCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUow = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.mockTx = sharedmock.NewMockTx(s.mockCtrl)
	s.mockReads = sharedmock.NewMockCommandReads(s.mockCtrl)
	s.mockLinks = sharedmock.NewMockLinkRepository(s.mockCtrl)
	s.mockAudit = sharedmock.NewMockAuditRepository(s.mockCtrl)
	s.mockInvalidator = commandsmock.NewMockAvailabilityInvalidator(s.mockCtrl)

	s.mockUow.EXPECT().CommandReads().Return(s.mockReads).AnyTimes()
	s.mockUow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.mockTx)
		}).AnyTimes()
	s.mockTx.EXPECT().Reads().Return(s.mockReads).AnyTimes()
	s.mockTx.EXPECT().DB().Return(nil).AnyTimes()
	s.mockTx.EXPECT().Links().Return(s.mockLinks).AnyTimes()
	s.mockTx.EXPECT().Audit().Return(s.mockAudit).AnyTimes()

	s.commands = commands.NewLinkCommands(s.mockUow, s.mockInvalidator)
}

func (s *LinkCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLinkCommandsSuite(t *testing.T) {
	suite.Run(t, new(LinkCommandsTestSuite))
}

func (s *LinkCommandsTestSuite) TestCreateLink() {
	ownerID := uuid.New()

	s.Run("success: slug derived from the name", func() {
		s.mockReads.EXPECT().SlugExists(gomock.Any(), "intro-call").Return(false, nil)
		s.mockLinks.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.mockAudit.EXPECT().Append(gomock.Any(), gomock.Any(), ownerID.String(), "link.created", gomock.Any(), gomock.Any()).
			Return(nil)

		view, err := s.commands.CreateLink(s.ctx, ownerID, builder.NewLinkBuilder().BuildCreateParams())

		s.Require().NoError(err)
		s.Equal("intro-call", view.Slug)
		s.Equal(ownerID, view.OwnerID)
		s.True(view.Active)
	})

	s.Run("success: slug collision gets a random suffix", func() {
		s.mockReads.EXPECT().SlugExists(gomock.Any(), "intro-call").Return(true, nil)
		s.mockReads.EXPECT().SlugExists(gomock.Any(), gomock.Any()).Return(false, nil)
		s.mockLinks.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.mockAudit.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		view, err := s.commands.CreateLink(s.ctx, ownerID, builder.NewLinkBuilder().BuildCreateParams())

		s.Require().NoError(err)
		s.True(strings.HasPrefix(view.Slug, "intro-call-"))
		s.NotEqual("intro-call", view.Slug)
	})

	s.Run("error: slug space exhausted after retries", func() {
		s.mockReads.EXPECT().SlugExists(gomock.Any(), gomock.Any()).Return(true, nil).Times(3)

		_, err := s.commands.CreateLink(s.ctx, ownerID, builder.NewLinkBuilder().BuildCreateParams())
		s.Require().ErrorIs(err, commands.ErrSlugExhausted)
	})

	s.Run("error: duplicate key on insert reads as exhaustion", func() {
		s.mockReads.EXPECT().SlugExists(gomock.Any(), gomock.Any()).Return(false, nil)
		s.mockLinks.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("slug already taken", nil, infra.KindDuplicateKey))

		_, err := s.commands.CreateLink(s.ctx, ownerID, builder.NewLinkBuilder().BuildCreateParams())
		s.Require().ErrorIs(err, commands.ErrSlugExhausted)
	})

	s.Run("error: invalid settings map to link validation", func() {
		s.mockReads.EXPECT().SlugExists(gomock.Any(), gomock.Any()).Return(false, nil)

		params := builder.NewLinkBuilder().WithDurationMin(0).BuildCreateParams()
		_, err := s.commands.CreateLink(s.ctx, ownerID, params)
		s.Require().True(errs.Is(err, commands.ErrLinkValidation))
	})
}

func (s *LinkCommandsTestSuite) TestUpdateLink() {
	s.Run("success: merges changed fields into the current state", func() {
		current := builder.NewLinkBuilder().BuildReconstructed()
		var saved *booking.Link
		s.mockReads.EXPECT().LinkByID(gomock.Any(), current.ID()).Return(current, nil)
		s.mockLinks.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ infra.DBTX, link *booking.Link) error {
				saved = link
				return nil
			})
		s.mockAudit.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any(), "link.updated", gomock.Any(), gomock.Any()).
			Return(nil)
		s.mockInvalidator.EXPECT().Invalidate(gomock.Any(), current.Slug()).Return(nil)

		name := "Renamed Call"
		duration := 45
		view, err := s.commands.UpdateLink(s.ctx, current.OwnerID(), current.ID(), commands.UpdateLinkParams{
			Name:        &name,
			DurationMin: &duration,
		})

		s.Require().NoError(err)
		s.Equal("Renamed Call", view.Name)
		s.Equal(45, view.DurationMin)
		// Everything not in the patch keeps its value.
		s.Equal(current.Slug(), view.Slug)
		s.Equal(current.Timezone(), view.Timezone)
		s.Require().NotNil(saved)
		s.Equal(current.ID(), saved.ID())
	})

	s.Run("success: clearing a cap removes it", func() {
		current := builder.NewLinkBuilder().WithMaxPerDay(3).BuildReconstructed()
		s.mockReads.EXPECT().LinkByID(gomock.Any(), current.ID()).Return(current, nil)
		s.mockLinks.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.mockAudit.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		s.mockInvalidator.EXPECT().Invalidate(gomock.Any(), current.Slug()).Return(nil)

		view, err := s.commands.UpdateLink(s.ctx, current.OwnerID(), current.ID(), commands.UpdateLinkParams{
			ClearMaxPerDay: true,
		})

		s.Require().NoError(err)
		s.Nil(view.MaxPerDay)
	})

	s.Run("error: link owned by someone else", func() {
		current := builder.NewLinkBuilder().BuildReconstructed()
		s.mockReads.EXPECT().LinkByID(gomock.Any(), current.ID()).Return(current, nil)

		_, err := s.commands.UpdateLink(s.ctx, uuid.New(), current.ID(), commands.UpdateLinkParams{})
		s.Require().ErrorIs(err, commands.ErrForbidden)
	})

	s.Run("error: unknown link", func() {
		id := uuid.New()
		s.mockReads.EXPECT().LinkByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("link not found", nil, infra.KindNotFound))

		_, err := s.commands.UpdateLink(s.ctx, uuid.New(), id, commands.UpdateLinkParams{})
		s.Require().ErrorIs(err, commands.ErrLinkNotFound)
	})

	s.Run("error: merged state fails validation", func() {
		current := builder.NewLinkBuilder().BuildReconstructed()
		s.mockReads.EXPECT().LinkByID(gomock.Any(), current.ID()).Return(current, nil)

		duration := 0
		_, err := s.commands.UpdateLink(s.ctx, current.OwnerID(), current.ID(), commands.UpdateLinkParams{
			DurationMin: &duration,
		})
		s.Require().True(errs.Is(err, commands.ErrLinkValidation))
	})
}

func (s *LinkCommandsTestSuite) TestDeactivateLink() {
	s.Run("success: flips the active flag and keeps the row", func() {
		current := builder.NewLinkBuilder().BuildReconstructed()
		var saved *booking.Link
		s.mockReads.EXPECT().LinkByID(gomock.Any(), current.ID()).Return(current, nil)
		s.mockLinks.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ infra.DBTX, link *booking.Link) error {
				saved = link
				return nil
			})
		s.mockAudit.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any(), "link.deactivated", gomock.Any(), gomock.Any()).
			Return(nil)
		s.mockInvalidator.EXPECT().Invalidate(gomock.Any(), current.Slug()).Return(nil)

		err := s.commands.DeactivateLink(s.ctx, current.OwnerID(), current.ID())

		s.Require().NoError(err)
		s.Require().NotNil(saved)
		s.False(saved.IsActive())
	})

	s.Run("error: link owned by someone else", func() {
		current := builder.NewLinkBuilder().BuildReconstructed()
		s.mockReads.EXPECT().LinkByID(gomock.Any(), current.ID()).Return(current, nil)

		err := s.commands.DeactivateLink(s.ctx, uuid.New(), current.ID())
		s.Require().ErrorIs(err, commands.ErrForbidden)
	})
}
