package model

import "portal/shared/model"

const (
	TableName  = "study_rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldName        = "name"
	FieldFloor       = "floor"
	FieldCapacity    = "capacity"
	FieldIsAvailable = "is_available"
)

// StudyRoom carries a single advisory availability flag. The flag is flipped
// by the booking workflow and by staff actions; it is not derived from the
// reservation ledger.
type StudyRoom struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Floor       int    `db:"floor"`
	Capacity    int    `db:"capacity"`
	IsAvailable bool   `db:"is_available"`
	model.Metadata
}
