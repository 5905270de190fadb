package repositories

import (
	"testing"
	"time"
)

func TestValidateMonth(t *testing.T) {
	for _, month := range []int{1, 6, 12} {
		if err := validateMonth(month); err != nil {
			t.Errorf("month %d should be valid: %v", month, err)
		}
	}

	for _, month := range []int{0, 13, -1} {
		err := validateMonth(month)
		if err == nil {
			t.Errorf("month %d should be rejected", month)
			continue
		}
		if err.Error() != "Month must be between 1 and 12" {
			t.Errorf("message = %q", err.Error())
		}
	}
}

func TestValidateYear(t *testing.T) {
	currentYear := time.Now().Year()

	for _, year := range []int{currentYear, currentYear + 1, currentYear + 5} {
		if err := validateYear(year); err != nil {
			t.Errorf("year %d should be valid: %v", year, err)
		}
	}

	for _, year := range []int{currentYear - 1, currentYear + 6} {
		err := validateYear(year)
		if err == nil {
			t.Errorf("year %d should be rejected", year)
			continue
		}
		if err.Error() != "Year must be current or up to 5 years in the future" {
			t.Errorf("message = %q", err.Error())
		}
	}
}

func TestValidateTransactionType(t *testing.T) {
	if err := validateTransactionType("income"); err != nil {
		t.Errorf("income should be valid: %v", err)
	}
	if err := validateTransactionType("expense"); err != nil {
		t.Errorf("expense should be valid: %v", err)
	}

	err := validateTransactionType("transfer")
	if err == nil {
		t.Fatal("transfer should be rejected")
	}
	if err.Error() != `Type must be either "income" or "expense"` {
		t.Errorf("message = %q", err.Error())
	}
}
