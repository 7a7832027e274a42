package readmodel

// ReservationRM mirrors one row of the reservations table, dates kept in
// their stored text form.
type ReservationRM struct {
	ID           int64
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
