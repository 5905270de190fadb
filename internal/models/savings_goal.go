package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type SavingsGoal struct {
	ID            int             `json:"id,omitempty" db:"id,omitempty"`
	UserID        int             `json:"user_id,omitempty" db:"user_id,omitempty"`
	Name          string          `json:"name,omitempty" db:"name,omitempty"`
	TargetAmount  decimal.Decimal `json:"target_amount,omitempty" db:"target_amount,omitempty"`
	CurrentAmount decimal.Decimal `json:"current_amount,omitempty" db:"current_amount,omitempty"`
	TargetDate    *time.Time      `json:"target_date,omitempty" db:"target_date,omitempty"`
	Description   string          `json:"description,omitempty" db:"description,omitempty"`
	CreatedAt     time.Time       `json:"created_at,omitempty" db:"created_at,omitempty"`
	UpdatedAt     time.Time       `json:"updated_at,omitempty" db:"updated_at,omitempty"`
}

// ProgressPercentage is derived at serialization time, never stored.
// It is 0 when the target amount is not positive.
func (g *SavingsGoal) ProgressPercentage() float64 {
	if !g.TargetAmount.IsPositive() {
		return 0
	}
	progress := g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100))
	return progress.Round(2).InexactFloat64()
}

func (g *SavingsGoal) Serialize() map[string]any {
	var targetDate any
	if g.TargetDate != nil {
		targetDate = g.TargetDate.Format("2006-01-02")
	}

	return map[string]any{
		"id":                  g.ID,
		"user_id":             g.UserID,
		"name":                g.Name,
		"target_amount":       g.TargetAmount.InexactFloat64(),
		"current_amount":      g.CurrentAmount.InexactFloat64(),
		"target_date":         targetDate,
		"description":         g.Description,
		"created_at":          g.CreatedAt.Format(time.RFC3339),
		"updated_at":          g.UpdatedAt.Format(time.RFC3339),
		"progress_percentage": g.ProgressPercentage(),
	}
}
