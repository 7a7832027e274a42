package usecase

import (
	"context"
	"errors"

	"hotel-reservation-api/internal/domain/reservation"
	"hotel-reservation-api/internal/infra"
	"hotel-reservation-api/internal/pkg/clock"
	"hotel-reservation-api/internal/pkg/errs"
	"hotel-reservation-api/internal/usecase/readmodel"
)

var (
	ErrReservationNotFound = errors.New("reservation not found")

	// Error markers for categorization
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (*readmodel.ReservationRM, error)
	FindAll(ctx context.Context) ([]*readmodel.ReservationRM, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}

type CreateReservationParams struct {
	FirstName    string
	LastName     string
	Birthday     *string
	CheckInDate  string
	CheckOutDate string
	RoomType     string
	ExtraInfo    *string
	Status       string
	CreatedAt    string
}

type ReservationUseCase interface {
	CreateReservation(ctx context.Context, params CreateReservationParams) (*readmodel.ReservationRM, error)
	ListReservations(ctx context.Context) ([]*readmodel.ReservationRM, error)
	UpdateReservationStatus(ctx context.Context, id int64, status string) error
	DeleteReservation(ctx context.Context, id int64) error
}

type reservationUseCaseImpl struct {
	reservationRepo ReservationRepository
	clock           clock.Clock
}

func NewReservationUseCase(reservationRepo ReservationRepository, clock clock.Clock) ReservationUseCase {
	return &reservationUseCaseImpl{
		reservationRepo: reservationRepo,
		clock:           clock,
	}
}

// CreateReservation validates the stay dates against today and persists the
// record. Date rule violations surface as the reservation domain sentinels;
// no overlap checking is performed, double bookings are accepted.
func (u *reservationUseCaseImpl) CreateReservation(ctx context.Context, params CreateReservationParams) (*readmodel.ReservationRM, error) {
	stay, err := reservation.NewStayDates(params.CheckInDate, params.CheckOutDate, clock.Today(u.clock))
	if err != nil {
		return nil, err
	}

	entity := reservation.NewReservation(stay, reservation.NewReservationParams{
		FirstName: params.FirstName,
		LastName:  params.LastName,
		Birthday:  params.Birthday,
		RoomType:  params.RoomType,
		ExtraInfo: params.ExtraInfo,
		Status:    params.Status,
		CreatedAt: params.CreatedAt,
	})

	rm, err := u.reservationRepo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return rm, nil
}

func (u *reservationUseCaseImpl) ListReservations(ctx context.Context) ([]*readmodel.ReservationRM, error) {
	rms, err := u.reservationRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rms, nil
}

// UpdateReservationStatus overwrites the status column only. Any string is
// accepted, the stay dates are not re-validated, and a missing row is a
// normal negative outcome rather than a system fault.
func (u *reservationUseCaseImpl) UpdateReservationStatus(ctx context.Context, id int64, status string) error {
	if err := u.reservationRepo.UpdateStatus(ctx, id, status); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *reservationUseCaseImpl) DeleteReservation(ctx context.Context, id int64) error {
	if err := u.reservationRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
