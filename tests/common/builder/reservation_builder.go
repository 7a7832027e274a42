//go:build unit || e2e

package builder

import (
	"hotel-reservation-api/internal/usecase"
	"hotel-reservation-api/internal/usecase/readmodel"
)

// ReservationBuilder assembles reservation payloads with sane defaults.
// Stay dates default to the far future so date validation passes no matter
// when the tests run.
type ReservationBuilder struct {
	id           int64
	firstName    string
	lastName     string
	birthday     *string
	checkInDate  string
	checkOutDate string
	roomType     string
	extraInfo    *string
	status       string
	createdAt    string
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		id:           1,
		firstName:    "Ana",
		lastName:     "Lee",
		checkInDate:  "2999-01-10",
		checkOutDate: "2999-01-12",
		roomType:     "double",
		status:       "confirmed",
		createdAt:    "2024-01-01T00:00:00",
	}
}

func (b *ReservationBuilder) WithID(id int64) *ReservationBuilder {
	b.id = id
	return b
}

func (b *ReservationBuilder) WithName(first, last string) *ReservationBuilder {
	b.firstName = first
	b.lastName = last
	return b
}

func (b *ReservationBuilder) WithBirthday(birthday string) *ReservationBuilder {
	b.birthday = &birthday
	return b
}

func (b *ReservationBuilder) WithStay(checkIn, checkOut string) *ReservationBuilder {
	b.checkInDate = checkIn
	b.checkOutDate = checkOut
	return b
}

func (b *ReservationBuilder) WithRoomType(roomType string) *ReservationBuilder {
	b.roomType = roomType
	return b
}

func (b *ReservationBuilder) WithExtraInfo(extraInfo string) *ReservationBuilder {
	b.extraInfo = &extraInfo
	return b
}

func (b *ReservationBuilder) WithStatus(status string) *ReservationBuilder {
	b.status = status
	return b
}

func (b *ReservationBuilder) WithCreatedAt(createdAt string) *ReservationBuilder {
	b.createdAt = createdAt
	return b
}

// BuildCreateRequestMap returns the POST body as a mutable map so tests can
// drop or override individual fields.
func (b *ReservationBuilder) BuildCreateRequestMap() map[string]any {
	m := map[string]any{
		"first_name":     b.firstName,
		"last_name":      b.lastName,
		"check_in_date":  b.checkInDate,
		"check_out_date": b.checkOutDate,
		"room_type":      b.roomType,
		"status":         b.status,
		"created_at":     b.createdAt,
	}
	if b.birthday != nil {
		m["birthday"] = *b.birthday
	}
	if b.extraInfo != nil {
		m["extra_info"] = *b.extraInfo
	}
	return m
}

func (b *ReservationBuilder) BuildParams() usecase.CreateReservationParams {
	return usecase.CreateReservationParams{
		FirstName:    b.firstName,
		LastName:     b.lastName,
		Birthday:     b.birthday,
		CheckInDate:  b.checkInDate,
		CheckOutDate: b.checkOutDate,
		RoomType:     b.roomType,
		ExtraInfo:    b.extraInfo,
		Status:       b.status,
		CreatedAt:    b.createdAt,
	}
}

func (b *ReservationBuilder) BuildRM() *readmodel.ReservationRM {
	return &readmodel.ReservationRM{
		ID:           b.id,
		FirstName:    b.firstName,
		LastName:     b.lastName,
		Birthday:     b.birthday,
		CheckInDate:  b.checkInDate,
		CheckOutDate: b.checkOutDate,
		RoomType:     b.roomType,
		ExtraInfo:    b.extraInfo,
		Status:       b.status,
		CreatedAt:    b.createdAt,
	}
}
