package model

import "portal/shared/model"

const (
	TableName  = "course_registrations"
	EntityName = "registration"

	FieldID               = "id"
	FieldFullName         = "full_name"
	FieldEmail            = "email"
	FieldPhoneNumber      = "phone_number"
	FieldProgramID        = "program_id"
	FieldRegistrationType = "registration_type"
	FieldStudyMonth       = "study_month"
	FieldPaymentProof     = "payment_proof"
)

// Registration types.
const (
	TypeRegular = "regular"
	TypeResit   = "resit"
)

// CourseRegistration is an immutable submission log; rows are written once
// by the public form and only ever read afterward.
type CourseRegistration struct {
	ID               string `db:"id"`
	FullName         string `db:"full_name"`
	Email            string `db:"email"`
	PhoneNumber      string `db:"phone_number"`
	ProgramID        string `db:"program_id"`
	RegistrationType string `db:"registration_type"`
	StudyMonth       string `db:"study_month"`
	PaymentProof     string `db:"payment_proof"`
	model.Metadata
}
