package model

import "time"

// User represents a back-office account. Accounts self-register and
// carry no role hierarchy; every active account sees the same pages.
type User struct {
	ID            int64      `json:"id"`
	Email         string     `json:"email"`
	PasswordHash  string     `json:"-"`
	TermsAccepted bool       `json:"terms_accepted"`
	BranchID      *int64     `json:"branch_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty"`
}
