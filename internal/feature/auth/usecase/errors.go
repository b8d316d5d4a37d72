// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrMissingFields is returned when any of the sign-up fields is absent.
	ErrMissingFields = errors.New("please fill in all required fields")

	// ErrInvalidEmailFormat is returned when the email does not match the local@domain shape.
	ErrInvalidEmailFormat = errors.New("email format is invalid")

	// ErrEmailAlreadyExists is returned when attempting to create an account with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrPasswordTooShort is returned when the sign-up password has fewer than 6 characters.
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")

	// ErrPasswordMismatch is returned when password and passwordConfirm differ.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrMissingEmail is returned when a sign-in request omits the email.
	ErrMissingEmail = errors.New("please enter your email")

	// ErrMissingPassword is returned when a sign-in request omits the password.
	ErrMissingPassword = errors.New("please enter your password")

	// ErrInvalidCredentials is returned during sign-in for an unknown email or a
	// wrong password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountNotFound is returned when an account cannot be found by email or ID.
	ErrAccountNotFound = errors.New("account not found")
)
