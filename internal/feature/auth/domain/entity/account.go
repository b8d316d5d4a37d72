// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Role classifies an account. New accounts always start as applicants;
// this service exposes no elevation path.
type Role string

// RoleApplicant is the role assigned to every account at sign-up.
const RoleApplicant Role = "APPLICANT"

// Account represents a registered user in the system.
// It contains authentication credentials and metadata for account management.
type Account struct {
	// ID is the unique identifier for the account.
	ID uint `gorm:"primaryKey"`

	// Email is the account's email address used for authentication.
	// It must be unique across all accounts.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the account's password.
	// This never stores a plaintext password.
	Password string `gorm:"size:255;not null"`

	// Name is the account holder's display name.
	Name string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the account was last updated.
	UpdatedAt time.Time
}

// AccountProfile carries role and audit metadata attached 1:1 to an Account.
// It is created in the same transaction as its Account and never deleted here.
type AccountProfile struct {
	// ID is the unique identifier for the profile row.
	ID uint `gorm:"primaryKey"`

	// AccountID references the owning account. Exactly one profile per account.
	AccountID uint `gorm:"uniqueIndex;not null"`

	// Role is fixed at RoleApplicant on creation.
	Role Role `gorm:"size:32;not null"`

	// CreatedAt is the timestamp when the profile was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the profile was last updated.
	UpdatedAt time.Time
}
