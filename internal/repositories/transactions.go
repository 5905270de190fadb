package repositories

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/muhammadelshareif/BudgetBuddy/internal/models"
	"github.com/muhammadelshareif/BudgetBuddy/pkg/utils"
)

const transactionQuery = `
	SELECT t.id, t.user_id, t.category_id, t.amount, t.description, t.type, t.transaction_date,
	       t.created_at, t.updated_at,
	       c.id, c.user_id, c.name, c.description, c.created_at, c.updated_at
	FROM transactions t
	LEFT JOIN categories c ON c.id = t.category_id
`

// joinedCategory holds the nullable columns of a LEFT JOINed category.
type joinedCategory struct {
	id          sql.NullInt64
	userID      sql.NullInt64
	name        sql.NullString
	description sql.NullString
	createdAt   sql.NullTime
	updatedAt   sql.NullTime
}

func (j *joinedCategory) toModel() *models.Category {
	if !j.id.Valid {
		return nil
	}
	return &models.Category{
		ID:          int(j.id.Int64),
		UserID:      int(j.userID.Int64),
		Name:        j.name.String,
		Description: j.description.String,
		CreatedAt:   j.createdAt.Time,
		UpdatedAt:   j.updatedAt.Time,
	}
}

func scanTransaction(row interface{ Scan(...any) error }) (models.Transaction, error) {
	var transaction models.Transaction
	var category joinedCategory

	err := row.Scan(
		&transaction.ID,
		&transaction.UserID,
		&transaction.CategoryID,
		&transaction.Amount,
		&transaction.Description,
		&transaction.Type,
		&transaction.TransactionDate,
		&transaction.CreatedAt,
		&transaction.UpdatedAt,
		&category.id,
		&category.userID,
		&category.name,
		&category.description,
		&category.createdAt,
		&category.updatedAt,
	)
	if err != nil {
		return models.Transaction{}, err
	}

	transaction.Category = category.toModel()
	return transaction, nil
}

func (s *Store) ListTransactions(ctx context.Context, userID int) ([]models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, transactionQuery+" WHERE t.user_id = ?", userID)
	if err != nil {
		utils.Logger.Errorf("error fetching transactions: %v", err)
		return nil, err
	}
	defer rows.Close()

	transactions := make([]models.Transaction, 0)
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			utils.Logger.Errorf("error scanning transaction: %v", err)
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, rows.Err()
}

func (s *Store) GetTransaction(ctx context.Context, id, userID int) (models.Transaction, error) {
	row := s.db.QueryRowContext(ctx, transactionQuery+" WHERE t.id = ?", id)
	transaction, err := scanTransaction(row)
	if err == sql.ErrNoRows {
		return models.Transaction{}, ErrNotFound
	}
	if err != nil {
		utils.Logger.Errorf("error fetching transaction %d: %v", id, err)
		return models.Transaction{}, err
	}

	if transaction.UserID != userID {
		return models.Transaction{}, ErrForbidden
	}
	return transaction, nil
}

func (s *Store) CreateTransaction(ctx context.Context, userID int, f Fields) (models.Transaction, error) {
	if err := f.RequireAll("category_id", "amount", "description", "type", "transaction_date"); err != nil {
		return models.Transaction{}, err
	}

	categoryID, ok := f.Int("category_id")
	if !ok {
		return models.Transaction{}, &ValidationError{Message: "Invalid category"}
	}
	if err := s.requireCategory(ctx, categoryID, userID); err != nil {
		return models.Transaction{}, err
	}

	transactionType := f.String("type")
	if err := validateTransactionType(transactionType); err != nil {
		return models.Transaction{}, err
	}

	transactionDate, err := f.Date("transaction_date")
	if err != nil {
		return models.Transaction{}, err
	}

	amount, ok := f.Decimal("amount")
	if !ok {
		return models.Transaction{}, &ValidationError{Message: "Amount must be a number"}
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO transactions (user_id, category_id, amount, description, type, transaction_date) VALUES (?, ?, ?, ?, ?, ?)",
		userID, categoryID, amount.Round(2), f.String("description"), transactionType, transactionDate.Format("2006-01-02"),
	)
	if err != nil {
		utils.Logger.Errorf("error creating transaction: %v", err)
		return models.Transaction{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Transaction{}, err
	}
	return s.GetTransaction(ctx, int(id), userID)
}

func (s *Store) UpdateTransaction(ctx context.Context, id, userID int, f Fields) (models.Transaction, error) {
	if _, err := s.GetTransaction(ctx, id, userID); err != nil {
		return models.Transaction{}, err
	}

	sets := []string{}
	args := []any{}

	if f.Has("category_id") {
		categoryID, ok := f.Int("category_id")
		if !ok {
			return models.Transaction{}, &ValidationError{Message: "Invalid category"}
		}
		if err := s.requireCategory(ctx, categoryID, userID); err != nil {
			return models.Transaction{}, err
		}
		sets = append(sets, "category_id = ?")
		args = append(args, categoryID)
	}

	if f.Has("amount") {
		amount, ok := f.Decimal("amount")
		if !ok {
			return models.Transaction{}, &ValidationError{Message: "Amount must be a number"}
		}
		sets = append(sets, "amount = ?")
		args = append(args, amount.Round(2))
	}

	if f.Has("description") {
		sets = append(sets, "description = ?")
		args = append(args, f.String("description"))
	}

	if f.Has("type") {
		transactionType := f.String("type")
		if err := validateTransactionType(transactionType); err != nil {
			return models.Transaction{}, err
		}
		sets = append(sets, "type = ?")
		args = append(args, transactionType)
	}

	if f.Has("transaction_date") {
		transactionDate, err := f.Date("transaction_date")
		if err != nil {
			return models.Transaction{}, err
		}
		sets = append(sets, "transaction_date = ?")
		args = append(args, transactionDate.Format("2006-01-02"))
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().UTC())
	args = append(args, id)

	_, err := s.db.ExecContext(ctx, "UPDATE transactions SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		utils.Logger.Errorf("error updating transaction %d: %v", id, err)
		return models.Transaction{}, err
	}
	return s.GetTransaction(ctx, id, userID)
}

func (s *Store) DeleteTransaction(ctx context.Context, id, userID int) error {
	if err := s.requireOwner(ctx, "transactions", id, userID); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, "DELETE FROM transactions WHERE id = ?", id); err != nil {
		utils.Logger.Errorf("error deleting transaction %d: %v", id, err)
		return err
	}
	return nil
}
