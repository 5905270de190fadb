package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/muhammadelshareif/BudgetBuddy/pkg/utils"
)

// Store exposes the ownership-scoped CRUD operations for every resource
// kind. The acting user id is always an explicit parameter, never read
// from ambient state.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// requireOwner is the single authorization policy shared by every
// Get/Update/Delete: the row must exist (else ErrNotFound) and must be
// owned by the caller (else ErrForbidden). The existence check runs
// first, so the two outcomes stay distinguishable.
func (s *Store) requireOwner(ctx context.Context, table string, id, userID int) error {
	var owner int
	query := fmt.Sprintf("SELECT user_id FROM %s WHERE id = ?", table)
	err := s.db.QueryRowContext(ctx, query, id).Scan(&owner)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		utils.Logger.Errorf("error checking owner of %s %d: %v", table, id, err)
		return err
	}

	if owner != userID {
		return ErrForbidden
	}
	return nil
}

// requireCategory resolves a referenced category and fails validation
// when it does not exist or belongs to another user. Both cases produce
// the same message so foreign-owned category ids are not observable.
func (s *Store) requireCategory(ctx context.Context, categoryID, userID int) error {
	var owner int
	err := s.db.QueryRowContext(ctx, "SELECT user_id FROM categories WHERE id = ?", categoryID).Scan(&owner)
	if err == sql.ErrNoRows {
		return &ValidationError{Message: "Invalid category"}
	}
	if err != nil {
		utils.Logger.Errorf("error resolving category %d: %v", categoryID, err)
		return err
	}

	if owner != userID {
		return &ValidationError{Message: "Invalid category"}
	}
	return nil
}
