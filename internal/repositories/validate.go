package repositories

import (
	"time"

	"github.com/muhammadelshareif/BudgetBuddy/internal/models"
)

func validateTransactionType(transactionType string) error {
	if transactionType != models.TransactionTypeIncome && transactionType != models.TransactionTypeExpense {
		return &ValidationError{Message: `Type must be either "income" or "expense"`}
	}
	return nil
}

func validateMonth(month int) error {
	if month < 1 || month > 12 {
		return &ValidationError{Message: "Month must be between 1 and 12"}
	}
	return nil
}

// validateYear accepts the current year through five years out.
func validateYear(year int) error {
	currentYear := time.Now().Year()
	if year < currentYear || year > currentYear+5 {
		return &ValidationError{Message: "Year must be current or up to 5 years in the future"}
	}
	return nil
}
