package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

type Transaction struct {
	ID              int             `json:"id,omitempty" db:"id,omitempty"`
	UserID          int             `json:"user_id,omitempty" db:"user_id,omitempty"`
	CategoryID      int             `json:"category_id,omitempty" db:"category_id,omitempty"`
	Amount          decimal.Decimal `json:"amount,omitempty" db:"amount,omitempty"`
	Description     string          `json:"description,omitempty" db:"description,omitempty"`
	Type            string          `json:"type,omitempty" db:"type,omitempty"`
	TransactionDate time.Time       `json:"transaction_date,omitempty" db:"transaction_date,omitempty"`
	CreatedAt       time.Time       `json:"created_at,omitempty" db:"created_at,omitempty"`
	UpdatedAt       time.Time       `json:"updated_at,omitempty" db:"updated_at,omitempty"`

	// Category is the resolved related category, nil when the reference
	// cannot be resolved.
	Category *Category `json:"category,omitempty" db:"-"`
}

func (t *Transaction) Serialize() map[string]any {
	var category map[string]any
	if t.Category != nil {
		category = t.Category.Serialize()
	}

	return map[string]any{
		"id":               t.ID,
		"user_id":          t.UserID,
		"category_id":      t.CategoryID,
		"amount":           t.Amount.InexactFloat64(),
		"description":      t.Description,
		"type":             t.Type,
		"transaction_date": t.TransactionDate.Format("2006-01-02"),
		"created_at":       t.CreatedAt.Format(time.RFC3339),
		"updated_at":       t.UpdatedAt.Format(time.RFC3339),
		"category":         category,
	}
}
