package request

import (
	"hotel-reservation-api/internal/usecase"
)

// CreateReservationRequest declares every field as a pointer so that an
// absent key can be told apart from a present-but-empty value. Required
// fields are checked one by one to name the offender in the response.
type CreateReservationRequest struct {
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Birthday     *string `json:"birthday"`
	CheckInDate  *string `json:"check_in_date"`
	CheckOutDate *string `json:"check_out_date"`
	RoomType     *string `json:"room_type"`
	ExtraInfo    *string `json:"extra_info"`
	Status       *string `json:"status"`
	CreatedAt    *string `json:"created_at"`
}

// FirstMissingField reports the JSON name of the first absent required
// field, in declaration order. Birthday and extra_info are optional.
func (r CreateReservationRequest) FirstMissingField() (string, bool) {
	required := []struct {
		name  string
		value *string
	}{
		{"first_name", r.FirstName},
		{"last_name", r.LastName},
		{"check_in_date", r.CheckInDate},
		{"check_out_date", r.CheckOutDate},
		{"room_type", r.RoomType},
		{"status", r.Status},
		{"created_at", r.CreatedAt},
	}

	for _, f := range required {
		if f.value == nil {
			return f.name, true
		}
	}
	return "", false
}

func (r CreateReservationRequest) ToParams() usecase.CreateReservationParams {
	return usecase.CreateReservationParams{
		FirstName:    *r.FirstName,
		LastName:     *r.LastName,
		Birthday:     r.Birthday,
		CheckInDate:  *r.CheckInDate,
		CheckOutDate: *r.CheckOutDate,
		RoomType:     *r.RoomType,
		ExtraInfo:    r.ExtraInfo,
		Status:       *r.Status,
		CreatedAt:    *r.CreatedAt,
	}
}

// UpdateReservationStatusRequest carries the replacement status. The value
// is deliberately unvalidated; an absent or null status becomes "".
type UpdateReservationStatusRequest struct {
	Status *string `json:"status"`
}

func (r UpdateReservationStatusRequest) StatusValue() string {
	if r.Status == nil {
		return ""
	}
	return *r.Status
}
