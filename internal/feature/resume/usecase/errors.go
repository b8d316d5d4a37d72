// Package usecase implements the business logic for the resume feature.
package usecase

import "errors"

var (
	// ErrMissingTitle is returned when a create request omits the title.
	ErrMissingTitle = errors.New("please enter a title")

	// ErrMissingContent is returned when a create request omits the introduction text.
	ErrMissingContent = errors.New("please enter your introduction")

	// ErrContentTooShort is returned when the introduction has fewer than 10 characters.
	ErrContentTooShort = errors.New("introduction must be at least 10 characters")

	// ErrNothingToUpdate is returned when an update request carries neither title nor content.
	ErrNothingToUpdate = errors.New("nothing to update")

	// ErrResumeNotFound is returned when no resume matches both the resume ID and
	// the caller's account ID. A resume owned by another account yields the same
	// error as a missing one.
	ErrResumeNotFound = errors.New("resume not found")
)
