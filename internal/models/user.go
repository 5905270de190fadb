package models

import "time"

type User struct {
	ID        int       `json:"id,omitempty" db:"id,omitempty"`
	Username  string    `json:"username,omitempty" db:"username,omitempty"`
	Email     string    `json:"email,omitempty" db:"email,omitempty"`
	Password  string    `json:"password,omitempty" db:"password,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty" db:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty" db:"updated_at,omitempty"`
}

// Serialize renders the user for API responses. The password hash is
// never included.
func (u *User) Serialize() map[string]any {
	return map[string]any{
		"id":       u.ID,
		"username": u.Username,
		"email":    u.Email,
	}
}
