package models

import "time"

type Category struct {
	ID          int       `json:"id,omitempty" db:"id,omitempty"`
	UserID      int       `json:"user_id,omitempty" db:"user_id,omitempty"`
	Name        string    `json:"name,omitempty" db:"name,omitempty"`
	Description string    `json:"description,omitempty" db:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty" db:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty" db:"updated_at,omitempty"`
}

func (c *Category) Serialize() map[string]any {
	return map[string]any{
		"id":          c.ID,
		"user_id":     c.UserID,
		"name":        c.Name,
		"description": c.Description,
		"created_at":  c.CreatedAt.Format(time.RFC3339),
		"updated_at":  c.UpdatedAt.Format(time.RFC3339),
	}
}
