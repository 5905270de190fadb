package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Budget struct {
	ID         int             `json:"id,omitempty" db:"id,omitempty"`
	UserID     int             `json:"user_id,omitempty" db:"user_id,omitempty"`
	CategoryID int             `json:"category_id,omitempty" db:"category_id,omitempty"`
	Amount     decimal.Decimal `json:"amount,omitempty" db:"amount,omitempty"`
	Month      int             `json:"month,omitempty" db:"month,omitempty"`
	Year       int             `json:"year,omitempty" db:"year,omitempty"`
	CreatedAt  time.Time       `json:"created_at,omitempty" db:"created_at,omitempty"`
	UpdatedAt  time.Time       `json:"updated_at,omitempty" db:"updated_at,omitempty"`

	Category *Category `json:"category,omitempty" db:"-"`
}

func (b *Budget) Serialize() map[string]any {
	var category map[string]any
	if b.Category != nil {
		category = b.Category.Serialize()
	}

	return map[string]any{
		"id":          b.ID,
		"user_id":     b.UserID,
		"category_id": b.CategoryID,
		"amount":      b.Amount.InexactFloat64(),
		"month":       b.Month,
		"year":        b.Year,
		"created_at":  b.CreatedAt.Format(time.RFC3339),
		"updated_at":  b.UpdatedAt.Format(time.RFC3339),
		"category":    category,
	}
}
