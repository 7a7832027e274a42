//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"hotel-reservation-api/internal/domain/reservation"
	"hotel-reservation-api/internal/infra"
	"hotel-reservation-api/internal/pkg/clock"
	"hotel-reservation-api/internal/usecase"
	"hotel-reservation-api/internal/usecase/readmodel"
	"hotel-reservation-api/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (*readmodel.ReservationRM, error) {
	args := m.Called(ctx, res)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*readmodel.ReservationRM), args.Error(1)
}

func (m *MockReservationRepository) FindAll(ctx context.Context) ([]*readmodel.ReservationRM, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*readmodel.ReservationRM), args.Error(1)
}

func (m *MockReservationRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockReservationRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newUseCase(repo *MockReservationRepository) usecase.ReservationUseCase {
	mockClock := clock.NewMockClock(time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC))
	return usecase.NewReservationUseCase(repo, mockClock)
}

func TestCreateReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("success - persists validated reservation", func(t *testing.T) {
		repo := new(MockReservationRepository)
		uc := newUseCase(repo)

		expectedRM := builder.NewReservationBuilder().WithID(42).BuildRM()
		repo.On("Create", ctx, mock.AnythingOfType("*reservation.Reservation")).Return(expectedRM, nil)

		rm, err := uc.CreateReservation(ctx, builder.NewReservationBuilder().BuildParams())
		require.NoError(t, err)

		if diff := cmp.Diff(expectedRM, rm); diff != "" {
			t.Errorf("ReservationRM mismatch (-want +got):\n%s", diff)
		}

		// The entity handed to the store carries the caller's fields verbatim.
		created := repo.Calls[0].Arguments.Get(1).(*reservation.Reservation)
		assert.Equal(t, "Ana", created.FirstName())
		assert.Equal(t, "Lee", created.LastName())
		assert.Equal(t, "2999-01-10", created.Stay().CheckInString())
		assert.Equal(t, "2999-01-12", created.Stay().CheckOutString())
		assert.Equal(t, "confirmed", created.Status())
		repo.AssertExpectations(t)
	})

	t.Run("past dates - rejected before touching the store", func(t *testing.T) {
		repo := new(MockReservationRepository)
		uc := newUseCase(repo)

		params := builder.NewReservationBuilder().WithStay("2000-01-01", "2000-01-05").BuildParams()
		rm, err := uc.CreateReservation(ctx, params)

		require.Nil(t, rm)
		require.ErrorIs(t, err, reservation.ErrStayDatesInPast)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("reversed dates - rejected before touching the store", func(t *testing.T) {
		repo := new(MockReservationRepository)
		uc := newUseCase(repo)

		params := builder.NewReservationBuilder().WithStay("2999-01-12", "2999-01-10").BuildParams()
		rm, err := uc.CreateReservation(ctx, params)

		require.Nil(t, rm)
		require.ErrorIs(t, err, reservation.ErrCheckOutNotAfterCheckIn)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("store failure - marked as database operation failure", func(t *testing.T) {
		repo := new(MockReservationRepository)
		uc := newUseCase(repo)

		repo.On("Create", ctx, mock.Anything).Return(nil, infra.WrapRepoErr("insert failed", assert.AnError))

		rm, err := uc.CreateReservation(ctx, builder.NewReservationBuilder().BuildParams())
		require.Nil(t, rm)
		require.ErrorIs(t, err, usecase.ErrDatabaseOperationFailed)
	})
}

func TestListReservations(t *testing.T) {
	ctx := context.Background()

	t.Run("success - returns rows in store order", func(t *testing.T) {
		repo := new(MockReservationRepository)
		uc := newUseCase(repo)

		expected := []*readmodel.ReservationRM{
			builder.NewReservationBuilder().WithID(1).BuildRM(),
			builder.NewReservationBuilder().WithID(2).WithName("Bob", "Tan").BuildRM(),
		}
		repo.On("FindAll", ctx).Return(expected, nil)

		rms, err := uc.ListReservations(ctx)
		require.NoError(t, err)

		if diff := cmp.Diff(expected, rms); diff != "" {
			t.Errorf("reservation list mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty store - empty list, not an error", func(t *testing.T) {
		repo := new(MockReservationRepository)
		uc := newUseCase(repo)

		repo.On("FindAll", ctx).Return([]*readmodel.ReservationRM{}, nil)

		rms, err := uc.ListReservations(ctx)
		require.NoError(t, err)
		assert.Empty(t, rms)
	})

	t.Run("store failure - marked as database operation failure", func(t *testing.T) {
		repo := new(MockReservationRepository)
		uc := newUseCase(repo)

		repo.On("FindAll", ctx).Return(nil, infra.WrapRepoErr("query failed", assert.AnError))

		rms, err := uc.ListReservations(ctx)
		require.Nil(t, rms)
		require.ErrorIs(t, err, usecase.ErrDatabaseOperationFailed)
	})
}

func TestUpdateReservationStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("success - any status string accepted", func(t *testing.T) {
		repo := new(MockReservationRepository)
		uc := newUseCase(repo)

		repo.On("UpdateStatus", ctx, int64(7), "cancelled").Return(nil)

		err := uc.UpdateReservationStatus(ctx, 7, "cancelled")
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("empty status accepted", func(t *testing.T) {
		repo := new(MockReservationRepository)
		uc := newUseCase(repo)

		repo.On("UpdateStatus", ctx, int64(7), "").Return(nil)

		err := uc.UpdateReservationStatus(ctx, 7, "")
		require.NoError(t, err)
	})

	t.Run("missing row - reported as not found", func(t *testing.T) {
		repo := new(MockReservationRepository)
		uc := newUseCase(repo)

		repo.On("UpdateStatus", ctx, int64(99), "cancelled").
			Return(infra.WrapRepoErr("reservation not found", pgx.ErrNoRows, infra.KindNotFound))

		err := uc.UpdateReservationStatus(ctx, 99, "cancelled")
		require.ErrorIs(t, err, usecase.ErrReservationNotFound)
	})

	t.Run("store failure - marked as database operation failure", func(t *testing.T) {
		repo := new(MockReservationRepository)
		uc := newUseCase(repo)

		repo.On("UpdateStatus", ctx, int64(7), "cancelled").
			Return(infra.WrapRepoErr("update failed", assert.AnError))

		err := uc.UpdateReservationStatus(ctx, 7, "cancelled")
		require.ErrorIs(t, err, usecase.ErrDatabaseOperationFailed)
	})
}

func TestDeleteReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := new(MockReservationRepository)
		uc := newUseCase(repo)

		repo.On("Delete", ctx, int64(7)).Return(nil)

		err := uc.DeleteReservation(ctx, 7)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("missing row - reported as not found", func(t *testing.T) {
		repo := new(MockReservationRepository)
		uc := newUseCase(repo)

		repo.On("Delete", ctx, int64(99)).
			Return(infra.WrapRepoErr("reservation not found", pgx.ErrNoRows, infra.KindNotFound))

		err := uc.DeleteReservation(ctx, 99)
		require.ErrorIs(t, err, usecase.ErrReservationNotFound)
	})

	t.Run("store failure - marked as database operation failure", func(t *testing.T) {
		repo := new(MockReservationRepository)
		uc := newUseCase(repo)

		repo.On("Delete", ctx, int64(7)).
			Return(infra.WrapRepoErr("delete failed", assert.AnError))

		err := uc.DeleteReservation(ctx, 7)
		require.ErrorIs(t, err, usecase.ErrDatabaseOperationFailed)
	})
}
