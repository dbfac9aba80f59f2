package models

// KYCStatus is the know-your-customer verification state of a profile.
type KYCStatus string

const (
	KYCVerified KYCStatus = "verified"
	KYCPending  KYCStatus = "pending"
	KYCRejected KYCStatus = "rejected"
)

// UserRole is the caller's role as known to the registry.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
	RoleGuest UserRole = "guest"
)

// UserProfile is the caller's profile as stored by the registry backend.
type UserProfile struct {
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	KYCStatus   KYCStatus `json:"kycStatus"`
}
