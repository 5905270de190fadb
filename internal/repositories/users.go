package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/muhammadelshareif/BudgetBuddy/internal/models"
	"github.com/muhammadelshareif/BudgetBuddy/pkg/utils"
)

func (s *Store) CreateUser(ctx context.Context, username, email, passwordHash string) (models.User, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO users (username, email, password) VALUES (?, ?, ?)",
		username, email, passwordHash,
	)
	if err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") {
			return models.User{}, ErrDuplicateUser
		}
		utils.Logger.Errorf("error creating user: %v", err)
		return models.User{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, err
	}

	return models.User{ID: int(id), Username: username, Email: email}, nil
}

// GetUserByAccountID looks a user up by username or email.
func (s *Store) GetUserByAccountID(ctx context.Context, accountID string) (models.User, error) {
	var user models.User
	err := s.db.QueryRowContext(ctx,
		"SELECT id, username, email, password FROM users WHERE username = ? OR email = ?",
		accountID, accountID,
	).Scan(&user.ID, &user.Username, &user.Email, &user.Password)
	if err == sql.ErrNoRows {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		utils.Logger.Errorf("error fetching user %q: %v", accountID, err)
		return models.User{}, err
	}
	return user, nil
}
