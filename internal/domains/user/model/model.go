package model

import (
	"strings"

	"portal/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID          = "id"
	FieldUsername    = "username"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldPhoneNumber = "phone_number"
	FieldIsSuperuser = "is_superuser"
	FieldIsStaff     = "is_staff"
	FieldLastLogin   = "last_login"
	FieldActive      = "active"
)

type User struct {
	ID          string  `db:"id"`
	Username    string  `db:"username"`
	Email       string  `db:"email"`
	Password    string  `db:"password"`
	FirstName   *string `db:"first_name"`
	LastName    *string `db:"last_name"`
	PhoneNumber *string `db:"phone_number"`
	IsSuperuser bool    `db:"is_superuser"`
	IsStaff     bool    `db:"is_staff"`
	LastLogin   *string `db:"last_login"`
	Active      bool    `db:"active"`
	model.Metadata
}

// FullName returns "first last" when set, falling back to the username.
func (u User) FullName() string {
	full := strings.TrimSpace(strings.TrimSpace(deref(u.FirstName)) + " " + strings.TrimSpace(deref(u.LastName)))
	if full == "" {
		return u.Username
	}

	return full
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
