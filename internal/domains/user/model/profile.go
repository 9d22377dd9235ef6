package model

import "portal/shared/model"

const (
	StaffProfileTableName  = "staff_profiles"
	StaffProfileEntityName = "staff_profile"

	StudentProfileTableName  = "student_profiles"
	StudentProfileEntityName = "student_profile"

	FieldUserID          = "user_id"
	FieldEmployeeID      = "employee_id"
	FieldIsPortalStaff   = "is_portal_staff"
	FieldStudentID       = "student_id"
	FieldIsActiveStudent = "is_active_student"
)

// StaffProfile marks a user as a member of the staff dashboard. One per
// staff user.
type StaffProfile struct {
	ID            string  `db:"id"`
	UserID        string  `db:"user_id"`
	EmployeeID    *string `db:"employee_id"`
	IsPortalStaff bool    `db:"is_portal_staff"`
	model.Metadata
}

// StudentProfile links a user to a student identity; the source of truth for
// the student ID. The ID is unique at the database level but nullable so a
// freshly provisioned profile cannot collide.
type StudentProfile struct {
	ID              string  `db:"id"`
	UserID          string  `db:"user_id"`
	StudentID       *string `db:"student_id"`
	PhoneNumber     *string `db:"phone_number"`
	IsActiveStudent bool    `db:"is_active_student"`
	model.Metadata
}
