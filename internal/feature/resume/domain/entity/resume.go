// Package entity defines the domain entities for the resume feature.
package entity

import "time"

// Status is the lifecycle state of a resume. Creation always starts at
// StatusApply; the column stays a plain string so a future status-transition
// feature can move it through the rest of the lifecycle.
type Status string

// StatusApply is the initial status of every resume.
const StatusApply Status = "APPLY"

// Resume represents an application record owned by exactly one account.
// Ownership is fixed at creation and never reassigned.
type Resume struct {
	// ID is the unique identifier for the resume.
	ID uint `gorm:"primaryKey"`

	// AccountID references the owning account.
	AccountID uint `gorm:"index;not null"`

	// Title is the resume title.
	Title string `gorm:"size:255;not null"`

	// Content is the self-introduction text. At least 10 characters at
	// submission time.
	Content string `gorm:"type:text;not null"`

	// Status is the lifecycle state, initialized to StatusApply.
	Status Status `gorm:"size:32;not null"`

	// CreatedAt is fixed at creation.
	CreatedAt time.Time

	// UpdatedAt is refreshed on every successful update.
	UpdatedAt time.Time
}
