package domain

import "time"

// User models an account of the finance console.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	ManagerID    string    `json:"manager_id,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CurrentUser is the session-scoped, read-only view of the authenticated user.
// ManagerID is for hierarchy display only and never feeds a permission decision.
type CurrentUser struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Role      Role   `json:"role"`
	ManagerID string `json:"manager_id,omitempty"`
	IsActive  bool   `json:"is_active"`
}

// Current projects the persisted user onto the session view. The role is
// normalised again so stale spellings stored before a migration still resolve.
func (u *User) Current() CurrentUser {
	return CurrentUser{
		ID:        u.ID,
		Username:  u.Username,
		Role:      NormalizeRole(string(u.Role)),
		ManagerID: u.ManagerID,
		IsActive:  u.IsActive,
	}
}
