package repositories

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/muhammadelshareif/BudgetBuddy/internal/models"
	"github.com/muhammadelshareif/BudgetBuddy/pkg/utils"
)

const categoryColumns = "id, user_id, name, description, created_at, updated_at"

func scanCategory(row interface{ Scan(...any) error }) (models.Category, error) {
	var category models.Category
	err := row.Scan(
		&category.ID,
		&category.UserID,
		&category.Name,
		&category.Description,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	return category, err
}

func (s *Store) ListCategories(ctx context.Context, userID int) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+categoryColumns+" FROM categories WHERE user_id = ?", userID)
	if err != nil {
		utils.Logger.Errorf("error fetching categories: %v", err)
		return nil, err
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			utils.Logger.Errorf("error scanning category: %v", err)
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (s *Store) GetCategory(ctx context.Context, id, userID int) (models.Category, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+categoryColumns+" FROM categories WHERE id = ?", id)
	category, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return models.Category{}, ErrNotFound
	}
	if err != nil {
		utils.Logger.Errorf("error fetching category %d: %v", id, err)
		return models.Category{}, err
	}

	if category.UserID != userID {
		return models.Category{}, ErrForbidden
	}
	return category, nil
}

func (s *Store) CreateCategory(ctx context.Context, userID int, f Fields) (models.Category, error) {
	name := f.String("name")
	if name == "" {
		return models.Category{}, &ValidationError{Message: "Name is required"}
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO categories (user_id, name, description) VALUES (?, ?, ?)",
		userID, name, f.String("description"),
	)
	if err != nil {
		utils.Logger.Errorf("error creating category: %v", err)
		return models.Category{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Category{}, err
	}
	return s.GetCategory(ctx, int(id), userID)
}

func (s *Store) UpdateCategory(ctx context.Context, id, userID int, f Fields) (models.Category, error) {
	if _, err := s.GetCategory(ctx, id, userID); err != nil {
		return models.Category{}, err
	}

	sets := []string{}
	args := []any{}

	if f.Has("name") {
		sets = append(sets, "name = ?")
		args = append(args, f.String("name"))
	}
	if f.Has("description") {
		sets = append(sets, "description = ?")
		args = append(args, f.String("description"))
	}

	// updated_at is refreshed even when no field changed.
	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().UTC())
	args = append(args, id)

	_, err := s.db.ExecContext(ctx, "UPDATE categories SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		utils.Logger.Errorf("error updating category %d: %v", id, err)
		return models.Category{}, err
	}
	return s.GetCategory(ctx, id, userID)
}

func (s *Store) DeleteCategory(ctx context.Context, id, userID int) error {
	if err := s.requireOwner(ctx, "categories", id, userID); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", id); err != nil {
		utils.Logger.Errorf("error deleting category %d: %v", id, err)
		return err
	}
	return nil
}
