package apperrors

import "errors"

var (
	ErrUserExists       = errors.New("user already exists")
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrTeamNotFound     = errors.New("team not found")
	ErrMatchNotFound    = errors.New("match not found")
	ErrPostNotFound     = errors.New("availability post not found")
	ErrDuplicateRequest = errors.New("identical open availability post already exists")
	ErrForbidden        = errors.New("caller is not a party to this entity")
	ErrInvalidInput     = errors.New("invalid input")
	ErrMatchFinalized   = errors.New("match already confirmed or cancelled")
)
