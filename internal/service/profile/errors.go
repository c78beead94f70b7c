package profile

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidUserID         = errors.New("invalid user id")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidPhone          = errors.New("invalid phone number")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidINN            = errors.New("invalid inn")
	ErrInvalidLicense        = errors.New("invalid license number")

	ErrProfileNotFound = errors.New("profile not found")
	ErrConflict        = errors.New("profile already exists")

	ErrDriverNameIncomplete = errors.New("driver profile has no first or last name")
)
