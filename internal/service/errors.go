package service

import "errors"

// Sentinel errors carrying the client-facing messages of the API. Handlers
// map them onto HTTP status codes with errors.Is.
var (
	ErrInvalidRole        = errors.New("Invalid role")
	ErrUserNotFound       = errors.New("User not found")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrWrongPassword      = errors.New("Current password is incorrect")
	ErrWeakPassword       = errors.New("Password must be at least 8 characters with uppercase, lowercase, number and special character")
	ErrEmailTaken         = errors.New("A user with this email and role already exists")

	ErrComplaintNotFound  = errors.New("Complaint not found")
	ErrInvalidTransition  = errors.New("Illegal status transition")
	ErrUnknownFournisseur = errors.New("Assigned fournisseur does not exist")
	ErrMissingFournisseur = errors.New("A fournisseur must be assigned before the complaint can move out of pending")
)
