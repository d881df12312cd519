package service

import "errors"

var (
	// ErrEmptyFields is returned when a registration or login payload has
	// one or more required fields left blank.
	ErrEmptyFields = errors.New("required fields are empty")

	// ErrWrongPassword is returned when the login exists but the password
	// does not match the stored digest.
	ErrWrongPassword = errors.New("wrong password")

	// ErrBlankDeviceName is returned when a device registration or rename
	// carries an empty or whitespace-only name.
	ErrBlankDeviceName = errors.New("device name is blank")

	// ErrNoActiveSession is returned when a token is missing, invalid,
	// expired, or belongs to a session that has been closed.
	ErrNoActiveSession = errors.New("no active session")
)
