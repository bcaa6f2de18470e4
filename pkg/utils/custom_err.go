package utils

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrInvalidDayKey      = errors.New("invalid day key")
	ErrMissingAnswers     = errors.New("missing answers payload")
	ErrAnswerNotFound     = errors.New("answer not found")
	ErrInvalidDayNumber   = errors.New("invalid day number")
	ErrUserNotFound       = errors.New("user not found")
	ErrSettingNotFound    = errors.New("setting not found")
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrPaymentNotPaid     = errors.New("payment not paid")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDatabaseError      = errors.New("database error")
)
