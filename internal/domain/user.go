package domain

import "time"

// AccountType distinguishes retail customers from wholesale buyers.
type AccountType string

const (
	AccountTypeRegular   AccountType = "regular"
	AccountTypeWholesale AccountType = "wholesale"
)

// User is the domain model for storefront accounts.
type User struct {
	ID                string
	Email             string
	PasswordHash      string
	BusinessName      string
	Phone             string
	AccountType       AccountType
	WholesaleApproved bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// DefaultWholesaleApproval returns the approval flag a fresh account gets.
// Regular accounts see retail pricing immediately; wholesale accounts wait
// for manual approval.
func DefaultWholesaleApproval(accountType AccountType) bool {
	return accountType != AccountTypeWholesale
}
