package permissions

import "portal/shared/constant"

// Actor carries the authorization-relevant facts about an authenticated or
// anonymous caller. A zero Actor classifies as public.
type Actor struct {
	Authenticated     bool
	IsSuperuser       bool
	IsStaff           bool
	HasStudentProfile bool
}

// Landing paths per role. Staff and superusers are always routed to their
// own surfaces; a stale deep link must never pull them elsewhere.
const (
	LandingSuperuser = "/admin"
	LandingStaff     = "/dashboard/room-bookings"
	LandingStudent   = "/programs/study-room-reservation"
	LandingPublic    = "/programs"
)

// Classify maps an actor to exactly one role using the fixed precedence
// superuser > staff > student > public.
func Classify(actor Actor) string {
	switch {
	case actor.Authenticated && actor.IsSuperuser:
		return constant.RoleSuperuser
	case actor.Authenticated && actor.IsStaff:
		return constant.RoleStaff
	case actor.Authenticated && actor.HasStudentProfile:
		return constant.RoleStudent
	default:
		return constant.RolePublic
	}
}

// Landing returns the default landing path for a role.
func Landing(role string) string {
	switch role {
	case constant.RoleSuperuser:
		return LandingSuperuser
	case constant.RoleStaff:
		return LandingStaff
	case constant.RoleStudent:
		return LandingStudent
	default:
		return LandingPublic
	}
}

// LandingWithNext resolves the post-login landing path. The caller-supplied
// next path is honored for students and public actors only; staff and
// superuser routing always wins.
func LandingWithNext(role, next string) string {
	switch role {
	case constant.RoleSuperuser, constant.RoleStaff:
		return Landing(role)
	default:
		if next != "" {
			return next
		}

		return Landing(role)
	}
}
