package response

import (
	"hotel-reservation-api/internal/usecase/readmodel"

	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID           int64   `json:"id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Birthday     *string `json:"birthday"`
	CheckInDate  string  `json:"check_in_date"`
	CheckOutDate string  `json:"check_out_date"`
	RoomType     string  `json:"room_type"`
	ExtraInfo    *string `json:"extra_info"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
}

type CreateReservationResponse struct {
	Message     string              `json:"message"`
	Reservation ReservationResponse `json:"reservation"`
}

type ListReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func FromReservationRM(rm *readmodel.ReservationRM) ReservationResponse {
	var resp ReservationResponse
	// Field names line up one to one with the read model.
	_ = copier.Copy(&resp, rm)
	return resp
}

func FromReservationRMs(rms []*readmodel.ReservationRM) ListReservationsResponse {
	reservations := make([]ReservationResponse, len(rms))
	for i, rm := range rms {
		reservations[i] = FromReservationRM(rm)
	}
	return ListReservationsResponse{Reservations: reservations}
}
