package repositories

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/muhammadelshareif/BudgetBuddy/internal/models"
	"github.com/muhammadelshareif/BudgetBuddy/pkg/utils"
	"github.com/shopspring/decimal"
)

const savingsGoalColumns = "id, user_id, name, target_amount, current_amount, target_date, description, created_at, updated_at"

func scanSavingsGoal(row interface{ Scan(...any) error }) (models.SavingsGoal, error) {
	var goal models.SavingsGoal
	var targetDate sql.NullTime

	err := row.Scan(
		&goal.ID,
		&goal.UserID,
		&goal.Name,
		&goal.TargetAmount,
		&goal.CurrentAmount,
		&targetDate,
		&goal.Description,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	)
	if err != nil {
		return models.SavingsGoal{}, err
	}

	if targetDate.Valid {
		goal.TargetDate = &targetDate.Time
	}
	return goal, nil
}

func (s *Store) ListSavingsGoals(ctx context.Context, userID int) ([]models.SavingsGoal, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+savingsGoalColumns+" FROM savings_goals WHERE user_id = ?", userID)
	if err != nil {
		utils.Logger.Errorf("error fetching savings goals: %v", err)
		return nil, err
	}
	defer rows.Close()

	goals := make([]models.SavingsGoal, 0)
	for rows.Next() {
		goal, err := scanSavingsGoal(rows)
		if err != nil {
			utils.Logger.Errorf("error scanning savings goal: %v", err)
			return nil, err
		}
		goals = append(goals, goal)
	}
	return goals, rows.Err()
}

func (s *Store) GetSavingsGoal(ctx context.Context, id, userID int) (models.SavingsGoal, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+savingsGoalColumns+" FROM savings_goals WHERE id = ?", id)
	goal, err := scanSavingsGoal(row)
	if err == sql.ErrNoRows {
		return models.SavingsGoal{}, ErrNotFound
	}
	if err != nil {
		utils.Logger.Errorf("error fetching savings goal %d: %v", id, err)
		return models.SavingsGoal{}, err
	}

	if goal.UserID != userID {
		return models.SavingsGoal{}, ErrForbidden
	}
	return goal, nil
}

func (s *Store) CreateSavingsGoal(ctx context.Context, userID int, f Fields) (models.SavingsGoal, error) {
	if err := f.RequireAll("name", "target_amount"); err != nil {
		return models.SavingsGoal{}, err
	}

	targetAmount, ok := f.Decimal("target_amount")
	if !ok {
		return models.SavingsGoal{}, &ValidationError{Message: "Target amount must be a number"}
	}

	currentAmount := decimal.Zero
	if f.Has("current_amount") {
		currentAmount, ok = f.Decimal("current_amount")
		if !ok {
			return models.SavingsGoal{}, &ValidationError{Message: "Current amount must be a number"}
		}
	}

	var targetDate any
	if f.Has("target_date") && f.String("target_date") != "" {
		parsed, err := f.Date("target_date")
		if err != nil {
			return models.SavingsGoal{}, err
		}
		targetDate = parsed.Format("2006-01-02")
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO savings_goals (user_id, name, target_amount, current_amount, target_date, description) VALUES (?, ?, ?, ?, ?, ?)",
		userID, f.String("name"), targetAmount.Round(2), currentAmount.Round(2), targetDate, f.String("description"),
	)
	if err != nil {
		utils.Logger.Errorf("error creating savings goal: %v", err)
		return models.SavingsGoal{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.SavingsGoal{}, err
	}
	return s.GetSavingsGoal(ctx, int(id), userID)
}

func (s *Store) UpdateSavingsGoal(ctx context.Context, id, userID int, f Fields) (models.SavingsGoal, error) {
	if _, err := s.GetSavingsGoal(ctx, id, userID); err != nil {
		return models.SavingsGoal{}, err
	}

	sets := []string{}
	args := []any{}

	if f.Has("name") {
		sets = append(sets, "name = ?")
		args = append(args, f.String("name"))
	}

	if f.Has("target_amount") {
		targetAmount, ok := f.Decimal("target_amount")
		if !ok {
			return models.SavingsGoal{}, &ValidationError{Message: "Target amount must be a number"}
		}
		sets = append(sets, "target_amount = ?")
		args = append(args, targetAmount.Round(2))
	}

	if f.Has("current_amount") {
		currentAmount, ok := f.Decimal("current_amount")
		if !ok {
			return models.SavingsGoal{}, &ValidationError{Message: "Current amount must be a number"}
		}
		sets = append(sets, "current_amount = ?")
		args = append(args, currentAmount.Round(2))
	}

	if f.Has("description") {
		sets = append(sets, "description = ?")
		args = append(args, f.String("description"))
	}

	if f.Has("target_date") {
		// An empty or null target_date clears the stored date.
		if f.String("target_date") == "" {
			sets = append(sets, "target_date = NULL")
		} else {
			parsed, err := f.Date("target_date")
			if err != nil {
				return models.SavingsGoal{}, err
			}
			sets = append(sets, "target_date = ?")
			args = append(args, parsed.Format("2006-01-02"))
		}
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().UTC())
	args = append(args, id)

	_, err := s.db.ExecContext(ctx, "UPDATE savings_goals SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		utils.Logger.Errorf("error updating savings goal %d: %v", id, err)
		return models.SavingsGoal{}, err
	}
	return s.GetSavingsGoal(ctx, id, userID)
}

func (s *Store) DeleteSavingsGoal(ctx context.Context, id, userID int) error {
	if err := s.requireOwner(ctx, "savings_goals", id, userID); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, "DELETE FROM savings_goals WHERE id = ?", id); err != nil {
		utils.Logger.Errorf("error deleting savings goal %d: %v", id, err)
		return err
	}
	return nil
}
