package model

import "portal/shared/model"

const (
	TableName  = "room_reservations"
	EntityName = "reservation"

	FieldID          = "id"
	FieldRoomID      = "room_id"
	FieldUserID      = "user_id"
	FieldStudentName = "student_name"
	FieldStudentID   = "student_id"
	FieldEmail       = "email"
	FieldPhoneNumber = "phone_number"
	FieldDate        = "date"
	FieldTimeSlot    = "time_slot"
)

// Identity snapshot placeholders. The ledger keeps its own copy of who
// booked, frozen at booking time, so later profile edits never rewrite
// history.
const (
	PlaceholderDash  = "-"
	PlaceholderPhone = "Not Provided"
)

// RoomReservation is one row of the append-only booking ledger. Rows are
// never updated; they are only deleted singly or purged in bulk by staff.
type RoomReservation struct {
	ID          string  `db:"id"`
	RoomID      string  `db:"room_id"`
	UserID      *string `db:"user_id"`
	StudentName string  `db:"student_name"`
	StudentID   string  `db:"student_id"`
	Email       string  `db:"email"`
	PhoneNumber string  `db:"phone_number"`
	Date        string  `db:"date"`
	TimeSlot    string  `db:"time_slot"`
	model.Metadata
}
