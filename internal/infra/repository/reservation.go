package repository

import (
	"context"

	"hotel-reservation-api/internal/domain/reservation"
	"hotel-reservation-api/internal/infra"
	"hotel-reservation-api/internal/pkg/pgconv"
	"hotel-reservation-api/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReservationRepository persists reservations in PostgreSQL. Every method is
// a single statement on a pool-scoped connection; the pool serializes
// concurrent writes and assigns ids through the BIGSERIAL column.
type ReservationRepository struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

const insertReservation = `
INSERT INTO reservations (
    first_name, last_name, birthday, check_in_date, check_out_date,
    room_type, extra_info, status, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, first_name, last_name, birthday, check_in_date, check_out_date,
          room_type, extra_info, status, created_at
`

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (*readmodel.ReservationRM, error) {
	row := r.pool.QueryRow(ctx, insertReservation,
		res.FirstName(),
		res.LastName(),
		pgconv.TextFromStringPtr(res.Birthday()),
		res.Stay().CheckInString(),
		res.Stay().CheckOutString(),
		res.RoomType(),
		pgconv.TextFromStringPtr(res.ExtraInfo()),
		res.Status(),
		res.CreatedAt(),
	)

	rm, err := scanReservation(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return rm, nil
}

const selectReservations = `
SELECT id, first_name, last_name, birthday, check_in_date, check_out_date,
       room_type, extra_info, status, created_at
FROM reservations
ORDER BY id
`

func (r *ReservationRepository) FindAll(ctx context.Context) ([]*readmodel.ReservationRM, error) {
	rows, err := r.pool.Query(ctx, selectReservations)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query reservations", err)
	}
	defer rows.Close()

	result := []*readmodel.ReservationRM{}
	for rows.Next() {
		rm, err := scanReservation(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}

	return result, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE reservations SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func scanReservation(row pgx.Row) (*readmodel.ReservationRM, error) {
	var (
		rm        readmodel.ReservationRM
		birthday  pgtype.Text
		extraInfo pgtype.Text
	)

	err := row.Scan(
		&rm.ID,
		&rm.FirstName,
		&rm.LastName,
		&birthday,
		&rm.CheckInDate,
		&rm.CheckOutDate,
		&rm.RoomType,
		&extraInfo,
		&rm.Status,
		&rm.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	rm.Birthday = pgconv.StringPtrFromPgtype(birthday)
	rm.ExtraInfo = pgconv.StringPtrFromPgtype(extraInfo)

	return &rm, nil
}
