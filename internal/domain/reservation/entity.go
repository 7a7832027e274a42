package reservation

// Reservation is a single booking: guest info, stay dates, room type and
// status. The id is zero until the store assigns one on insert.
//
// Status is free text on purpose. The booking flow writes values like
// "confirmed" or "cancelled", but no transition graph is enforced and
// callers may store anything, including an empty string.
type Reservation struct {
	id        int64
	firstName string
	lastName  string
	birthday  *string
	stay      StayDates
	roomType  string
	extraInfo *string
	status    string
	createdAt string
}

type NewReservationParams struct {
	FirstName string
	LastName  string
	Birthday  *string
	RoomType  string
	ExtraInfo *string
	Status    string
	CreatedAt string
}

// NewReservation builds an unpersisted reservation from already-validated
// stay dates. Field presence is the transport layer's concern; the domain
// only owns the date rules carried by StayDates.
func NewReservation(stay StayDates, p NewReservationParams) *Reservation {
	return &Reservation{
		firstName: p.FirstName,
		lastName:  p.LastName,
		birthday:  p.Birthday,
		stay:      stay,
		roomType:  p.RoomType,
		extraInfo: p.ExtraInfo,
		status:    p.Status,
		createdAt: p.CreatedAt,
	}
}

func (r *Reservation) ID() int64          { return r.id }
func (r *Reservation) FirstName() string  { return r.firstName }
func (r *Reservation) LastName() string   { return r.lastName }
func (r *Reservation) Birthday() *string  { return r.birthday }
func (r *Reservation) Stay() StayDates    { return r.stay }
func (r *Reservation) RoomType() string   { return r.roomType }
func (r *Reservation) ExtraInfo() *string { return r.extraInfo }
func (r *Reservation) Status() string     { return r.status }
func (r *Reservation) CreatedAt() string  { return r.createdAt }
