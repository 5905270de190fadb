package repositories

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/muhammadelshareif/BudgetBuddy/internal/models"
	"github.com/muhammadelshareif/BudgetBuddy/pkg/utils"
)

const budgetQuery = `
	SELECT b.id, b.user_id, b.category_id, b.amount, b.month, b.year,
	       b.created_at, b.updated_at,
	       c.id, c.user_id, c.name, c.description, c.created_at, c.updated_at
	FROM budgets b
	LEFT JOIN categories c ON c.id = b.category_id
`

func scanBudget(row interface{ Scan(...any) error }) (models.Budget, error) {
	var budget models.Budget
	var category joinedCategory

	err := row.Scan(
		&budget.ID,
		&budget.UserID,
		&budget.CategoryID,
		&budget.Amount,
		&budget.Month,
		&budget.Year,
		&budget.CreatedAt,
		&budget.UpdatedAt,
		&category.id,
		&category.userID,
		&category.name,
		&category.description,
		&category.createdAt,
		&category.updatedAt,
	)
	if err != nil {
		return models.Budget{}, err
	}

	budget.Category = category.toModel()
	return budget, nil
}

func (s *Store) ListBudgets(ctx context.Context, userID int) ([]models.Budget, error) {
	rows, err := s.db.QueryContext(ctx, budgetQuery+" WHERE b.user_id = ?", userID)
	if err != nil {
		utils.Logger.Errorf("error fetching budgets: %v", err)
		return nil, err
	}
	defer rows.Close()

	budgets := make([]models.Budget, 0)
	for rows.Next() {
		budget, err := scanBudget(rows)
		if err != nil {
			utils.Logger.Errorf("error scanning budget: %v", err)
			return nil, err
		}
		budgets = append(budgets, budget)
	}
	return budgets, rows.Err()
}

func (s *Store) GetBudget(ctx context.Context, id, userID int) (models.Budget, error) {
	row := s.db.QueryRowContext(ctx, budgetQuery+" WHERE b.id = ?", id)
	budget, err := scanBudget(row)
	if err == sql.ErrNoRows {
		return models.Budget{}, ErrNotFound
	}
	if err != nil {
		utils.Logger.Errorf("error fetching budget %d: %v", id, err)
		return models.Budget{}, err
	}

	if budget.UserID != userID {
		return models.Budget{}, ErrForbidden
	}
	return budget, nil
}

func (s *Store) CreateBudget(ctx context.Context, userID int, f Fields) (models.Budget, error) {
	if err := f.RequireAll("category_id", "amount", "month", "year"); err != nil {
		return models.Budget{}, err
	}

	categoryID, ok := f.Int("category_id")
	if !ok {
		return models.Budget{}, &ValidationError{Message: "Invalid category"}
	}
	if err := s.requireCategory(ctx, categoryID, userID); err != nil {
		return models.Budget{}, err
	}

	month, ok := f.Int("month")
	if !ok {
		return models.Budget{}, &ValidationError{Message: "Month must be between 1 and 12"}
	}
	year, ok := f.Int("year")
	if !ok {
		return models.Budget{}, &ValidationError{Message: "Year must be current or up to 5 years in the future"}
	}

	// The composite unique index backs this check up against concurrent
	// creates; the loser of that race surfaces as a storage error.
	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM budgets WHERE user_id = ? AND category_id = ? AND month = ? AND year = ?)",
		userID, categoryID, month, year,
	).Scan(&exists)
	if err != nil {
		utils.Logger.Errorf("error checking for existing budget: %v", err)
		return models.Budget{}, err
	}
	if exists {
		return models.Budget{}, &ValidationError{Message: "A budget for this category and month already exists"}
	}

	if err := validateMonth(month); err != nil {
		return models.Budget{}, err
	}
	if err := validateYear(year); err != nil {
		return models.Budget{}, err
	}

	amount, ok := f.Decimal("amount")
	if !ok {
		return models.Budget{}, &ValidationError{Message: "Amount must be a number"}
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO budgets (user_id, category_id, amount, month, year) VALUES (?, ?, ?, ?, ?)",
		userID, categoryID, amount.Round(2), month, year,
	)
	if err != nil {
		utils.Logger.Errorf("error creating budget: %v", err)
		return models.Budget{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Budget{}, err
	}
	return s.GetBudget(ctx, int(id), userID)
}

func (s *Store) UpdateBudget(ctx context.Context, id, userID int, f Fields) (models.Budget, error) {
	if _, err := s.GetBudget(ctx, id, userID); err != nil {
		return models.Budget{}, err
	}

	sets := []string{}
	args := []any{}

	if f.Has("category_id") {
		categoryID, ok := f.Int("category_id")
		if !ok {
			return models.Budget{}, &ValidationError{Message: "Invalid category"}
		}
		if err := s.requireCategory(ctx, categoryID, userID); err != nil {
			return models.Budget{}, err
		}
		sets = append(sets, "category_id = ?")
		args = append(args, categoryID)
	}

	if f.Has("amount") {
		amount, ok := f.Decimal("amount")
		if !ok {
			return models.Budget{}, &ValidationError{Message: "Amount must be a number"}
		}
		sets = append(sets, "amount = ?")
		args = append(args, amount.Round(2))
	}

	if f.Has("month") {
		month, ok := f.Int("month")
		if !ok {
			return models.Budget{}, &ValidationError{Message: "Month must be between 1 and 12"}
		}
		if err := validateMonth(month); err != nil {
			return models.Budget{}, err
		}
		sets = append(sets, "month = ?")
		args = append(args, month)
	}

	if f.Has("year") {
		year, ok := f.Int("year")
		if !ok {
			return models.Budget{}, &ValidationError{Message: "Year must be current or up to 5 years in the future"}
		}
		if err := validateYear(year); err != nil {
			return models.Budget{}, err
		}
		sets = append(sets, "year = ?")
		args = append(args, year)
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().UTC())
	args = append(args, id)

	_, err := s.db.ExecContext(ctx, "UPDATE budgets SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		utils.Logger.Errorf("error updating budget %d: %v", id, err)
		return models.Budget{}, err
	}
	return s.GetBudget(ctx, id, userID)
}

func (s *Store) DeleteBudget(ctx context.Context, id, userID int) error {
	if err := s.requireOwner(ctx, "budgets", id, userID); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, "DELETE FROM budgets WHERE id = ?", id); err != nil {
		utils.Logger.Errorf("error deleting budget %d: %v", id, err)
		return err
	}
	return nil
}
