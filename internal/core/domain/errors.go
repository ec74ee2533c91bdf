package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidRole        = errors.New("invalid role")

	// Role mutation failures.
	ErrRankTooLow         = errors.New("caller rank too low for this role change")
	ErrNotLeadership      = errors.New("only leadership may transfer their role")
	ErrRoleMismatch       = errors.New("can only transfer your own leadership role")
	ErrUserInactive       = errors.New("target user is deactivated")
	ErrTargetIsLeadership = errors.New("target already holds a leadership role")
)
