//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"parkcompare/internal/domain/booking"
	"parkcompare/internal/domain/chat"
	"parkcompare/internal/infra"
	"parkcompare/internal/usecase/queries"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type mockBookingReader struct {
	mock.Mock
}

func (m *mockBookingReader) FindByReference(ctx context.Context, ref booking.Reference) (*booking.Booking, error) {
	args := m.Called(ctx, ref)
	if v := args.Get(0); v != nil {
		return v.(*booking.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingReader) FindAll(ctx context.Context) ([]*booking.Booking, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*booking.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCaseReader struct {
	mock.Mock
}

func (m *mockCaseReader) FindByNumber(ctx context.Context, number string) (*chat.Case, error) {
	args := m.Called(ctx, number)
	if v := args.Get(0); v != nil {
		return v.(*chat.Case), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCaseReader) FindAll(ctx context.Context) ([]*chat.Case, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*chat.Case), args.Error(1)
	}
	return nil, args.Error(1)
}

type BookingQueriesTestSuite struct {
	suite.Suite
	bookings *mockBookingReader
	cases    *mockCaseReader
	queries  queries.BookingQueries
}

func (s *BookingQueriesTestSuite) SetupTest() {
	s.bookings = new(mockBookingReader)
	s.cases = new(mockCaseReader)
	s.queries = queries.NewBookingQueries(s.bookings, s.cases)
}

func TestBookingQueriesSuite(t *testing.T) {
	suite.Run(t, new(BookingQueriesTestSuite))
}

func (s *BookingQueriesTestSuite) TestByReference() {
	const ref = "PC7K2M9QX41"

	s.Run("found", func() {
		b := &booking.Booking{Reference: booking.Reference(ref), Status: booking.StatusConfirmed}
		s.bookings.On("FindByReference", mock.Anything, booking.Reference(ref)).Return(b, nil).Once()

		got, err := s.queries.ByReference(context.Background(), ref)
		s.Require().NoError(err)
		s.Equal(booking.Reference(ref), got.Reference)
	})

	s.Run("input is normalized before the lookup", func() {
		b := &booking.Booking{Reference: booking.Reference(ref)}
		s.bookings.On("FindByReference", mock.Anything, booking.Reference(ref)).Return(b, nil).Once()

		_, err := s.queries.ByReference(context.Background(), "  pc7k2m9qx41 ")
		s.NoError(err)
	})

	s.Run("malformed reference never hits the store", func() {
		s.SetupTest()
		_, err := s.queries.ByReference(context.Background(), "nonsense")
		s.ErrorIs(err, queries.ErrBookingNotFound)
		s.bookings.AssertNotCalled(s.T(), "FindByReference", mock.Anything, mock.Anything)
	})

	s.Run("unknown reference", func() {
		s.bookings.On("FindByReference", mock.Anything, booking.Reference(ref)).
			Return(nil, infra.WrapRepoErr("booking not found", errors.New("nil reply"), infra.KindNotFound)).Once()

		_, err := s.queries.ByReference(context.Background(), ref)
		s.ErrorIs(err, queries.ErrBookingNotFound)
	})

	s.Run("store failure", func() {
		s.bookings.On("FindByReference", mock.Anything, booking.Reference(ref)).
			Return(nil, infra.WrapRepoErr("read failed", errors.New("connection refused"))).Once()

		_, err := s.queries.ByReference(context.Background(), ref)
		s.ErrorIs(err, queries.ErrStoreReadFailed)
	})
}

func (s *BookingQueriesTestSuite) TestCases() {
	s.Run("case by number", func() {
		c := &chat.Case{Number: "COMP-1749988800000-ZZ99", CaseType: "Customer Complaint"}
		s.cases.On("FindByNumber", mock.Anything, c.Number).Return(c, nil).Once()

		got, err := s.queries.CaseByNumber(context.Background(), c.Number)
		s.Require().NoError(err)
		s.Equal("Customer Complaint", got.CaseType)
	})

	s.Run("unknown case", func() {
		s.cases.On("FindByNumber", mock.Anything, "COMP-0-XXXX").
			Return(nil, infra.WrapRepoErr("case not found", errors.New("nil reply"), infra.KindNotFound)).Once()

		_, err := s.queries.CaseByNumber(context.Background(), "COMP-0-XXXX")
		s.ErrorIs(err, queries.ErrCaseNotFound)
	})

	s.Run("all cases", func() {
		s.cases.On("FindAll", mock.Anything).Return([]*chat.Case{{Number: "CAN-1-A"}, {Number: "GEN-2-B"}}, nil).Once()

		got, err := s.queries.AllCases(context.Background())
		s.Require().NoError(err)
		s.Len(got, 2)
	})
}
