//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"parkcompare/internal/domain/booking"
	"parkcompare/internal/infra"
	"parkcompare/internal/pkg/clock"
	"parkcompare/internal/usecase/commands"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	bookings    *mockBookingWriter
	bookingCmds commands.BookingCommands
	now         time.Time
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.bookings = new(mockBookingWriter)
	s.now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	s.bookingCmds = commands.NewBookingCommands(s.bookings, clock.NewMockClock(s.now))
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) confirmedBooking(ref string) *booking.Booking {
	created := s.now.Add(-24 * time.Hour)
	return &booking.Booking{
		Reference:   booking.Reference(ref),
		ParkingName: "SkyPark",
		Status:      booking.StatusConfirmed,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func (s *BookingCommandsTestSuite) TestCancelBooking() {
	const ref = "PC7K2M9QX41"

	s.Run("flips the status and stamps the update time", func() {
		existing := s.confirmedBooking(ref)
		s.bookings.On("FindByReference", mock.Anything, booking.Reference(ref)).Return(existing, nil).Once()
		s.bookings.On("Save", mock.Anything, existing).Return(nil).Once()

		cancelled, err := s.bookingCmds.CancelBooking(context.Background(), ref)
		s.Require().NoError(err)

		s.Equal(booking.StatusCancelled, cancelled.Status)
		s.Equal(s.now, cancelled.UpdatedAt)
		s.bookings.AssertExpectations(s.T())
	})

	s.Run("lower-cased input still resolves", func() {
		existing := s.confirmedBooking(ref)
		s.bookings.On("FindByReference", mock.Anything, booking.Reference(ref)).Return(existing, nil).Once()
		s.bookings.On("Save", mock.Anything, existing).Return(nil).Once()

		_, err := s.bookingCmds.CancelBooking(context.Background(), "pc7k2m9qx41")
		s.NoError(err)
	})

	s.Run("cancelling twice", func() {
		s.SetupTest()
		existing := s.confirmedBooking(ref)
		s.Require().NoError(existing.Cancel(s.now.Add(-time.Hour)))
		s.bookings.On("FindByReference", mock.Anything, booking.Reference(ref)).Return(existing, nil).Once()

		_, err := s.bookingCmds.CancelBooking(context.Background(), ref)
		s.ErrorIs(err, commands.ErrDomainValidation)
		s.bookings.AssertNotCalled(s.T(), "Save", mock.Anything, mock.Anything)
	})

	s.Run("malformed reference", func() {
		s.SetupTest()
		_, err := s.bookingCmds.CancelBooking(context.Background(), "not-a-reference")
		s.ErrorIs(err, commands.ErrBookingNotFound)
		s.bookings.AssertNotCalled(s.T(), "FindByReference", mock.Anything, mock.Anything)
	})

	s.Run("unknown reference", func() {
		s.bookings.On("FindByReference", mock.Anything, booking.Reference(ref)).
			Return(nil, infra.WrapRepoErr("booking not found", errors.New("nil reply"), infra.KindNotFound)).Once()

		_, err := s.bookingCmds.CancelBooking(context.Background(), ref)
		s.ErrorIs(err, commands.ErrBookingNotFound)
	})

	s.Run("store failure on save", func() {
		existing := s.confirmedBooking(ref)
		s.bookings.On("FindByReference", mock.Anything, booking.Reference(ref)).Return(existing, nil).Once()
		s.bookings.On("Save", mock.Anything, existing).Return(errors.New("redis down")).Once()

		_, err := s.bookingCmds.CancelBooking(context.Background(), ref)
		s.ErrorIs(err, commands.ErrDatabaseOperationFailed)
	})
}

func (s *BookingCommandsTestSuite) TestDeleteBooking() {
	const ref = "PC7K2M9QX41"

	s.Run("removes the record", func() {
		s.bookings.On("Delete", mock.Anything, booking.Reference(ref)).Return(nil).Once()

		err := s.bookingCmds.DeleteBooking(context.Background(), ref)
		s.NoError(err)
	})

	s.Run("unknown reference", func() {
		s.bookings.On("Delete", mock.Anything, booking.Reference(ref)).
			Return(infra.WrapRepoErr("booking not found", errors.New("nil reply"), infra.KindNotFound)).Once()

		err := s.bookingCmds.DeleteBooking(context.Background(), ref)
		s.ErrorIs(err, commands.ErrBookingNotFound)
	})

	s.Run("malformed reference", func() {
		s.SetupTest()
		err := s.bookingCmds.DeleteBooking(context.Background(), "PC-short")
		s.ErrorIs(err, commands.ErrBookingNotFound)
		s.bookings.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything)
	})
}
