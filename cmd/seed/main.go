package main

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"github.com/muhammadelshareif/BudgetBuddy/internal/repositories"
	"github.com/muhammadelshareif/BudgetBuddy/internal/repositories/sqlconnect"
	"github.com/muhammadelshareif/BudgetBuddy/pkg/utils"

	"github.com/joho/godotenv"
)

// Seeds the demo account used by demo environments: one user, the
// default categories, a couple of weeks of transactions, budgets for the
// current month and three savings goals.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	utils.InitLogger()

	if err := sqlconnect.ConnectDb(); err != nil {
		utils.Logger.Fatal("DB connection failed: ", err)
	}
	if err := sqlconnect.RunMigrations(sqlconnect.DB); err != nil {
		utils.Logger.Fatal("DB migration failed: ", err)
	}

	store := repositories.NewStore(sqlconnect.DB)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	hashedPwd, err := utils.HashPassword("password")
	if err != nil {
		utils.Logger.Fatal("failed to hash demo password: ", err)
	}

	demo, err := store.CreateUser(ctx, "demo", "demo@aa.io", hashedPwd)
	if err == repositories.ErrDuplicateUser {
		utils.Logger.Info("demo user already seeded, nothing to do")
		return
	}
	if err != nil {
		utils.Logger.Fatal("failed to seed demo user: ", err)
	}

	categories := []struct {
		name        string
		description string
	}{
		{"Housing", "Rent, mortgage, repairs, etc."},
		{"Transportation", "Car payments, gas, public transit, etc."},
		{"Food", "Groceries, restaurants, etc."},
		{"Utilities", "Electricity, water, internet, etc."},
		{"Insurance", "Health, auto, home, etc."},
		{"Healthcare", "Medical bills, medications, etc."},
		{"Savings", "Emergency fund, retirement, etc."},
		{"Personal", "Clothing, entertainment, etc."},
		{"Debt", "Credit card payments, loans, etc."},
		{"Income", "Salary, dividends, etc."},
	}

	categoryIDs := map[string]int{}
	for _, c := range categories {
		created, err := store.CreateCategory(ctx, demo.ID, repositories.Fields{
			"name":        c.name,
			"description": c.description,
		})
		if err != nil {
			utils.Logger.Fatalf("failed to seed category %s: %v", c.name, err)
		}
		categoryIDs[c.name] = created.ID
	}

	today := time.Now()
	daysAgo := func(days int) string {
		return today.AddDate(0, 0, -days).Format("2006-01-02")
	}

	transactions := []struct {
		category    string
		amount      string
		description string
		txType      string
		date        string
	}{
		{"Income", "3000.00", "Monthly salary", "income", daysAgo(15)},
		{"Housing", "1200.00", "Rent payment", "expense", daysAgo(10)},
		{"Food", "150.00", "Weekly groceries", "expense", daysAgo(7)},
		{"Utilities", "80.00", "Electricity bill", "expense", daysAgo(5)},
		{"Personal", "50.00", "Movie night", "expense", daysAgo(3)},
		{"Savings", "500.00", "Monthly savings", "expense", daysAgo(1)},
	}

	for _, t := range transactions {
		_, err := store.CreateTransaction(ctx, demo.ID, repositories.Fields{
			"category_id":      json.Number(strconv.Itoa(categoryIDs[t.category])),
			"amount":           t.amount,
			"description":      t.description,
			"type":             t.txType,
			"transaction_date": t.date,
		})
		if err != nil {
			utils.Logger.Fatalf("failed to seed transaction %q: %v", t.description, err)
		}
	}

	budgets := []struct {
		category string
		amount   string
	}{
		{"Housing", "1500.00"},
		{"Food", "500.00"},
		{"Transportation", "300.00"},
	}

	for _, b := range budgets {
		_, err := store.CreateBudget(ctx, demo.ID, repositories.Fields{
			"category_id": json.Number(strconv.Itoa(categoryIDs[b.category])),
			"amount":      b.amount,
			"month":       json.Number(strconv.Itoa(int(today.Month()))),
			"year":        json.Number(strconv.Itoa(today.Year())),
		})
		if err != nil {
			utils.Logger.Fatalf("failed to seed budget for %s: %v", b.category, err)
		}
	}

	inDays := func(days int) string {
		return today.AddDate(0, 0, days).Format("2006-01-02")
	}

	goals := []struct {
		name          string
		targetAmount  string
		currentAmount string
		targetDate    string
		description   string
	}{
		{"Summer Vacation", "2000.00", "500.00", inDays(365), "Savings for a beach vacation next summer"},
		{"New Car", "10000.00", "2500.00", inDays(730), "Down payment for a new car"},
		{"Emergency Fund", "5000.00", "1000.00", inDays(180), "Three months of living expenses"},
	}

	for _, g := range goals {
		_, err := store.CreateSavingsGoal(ctx, demo.ID, repositories.Fields{
			"name":           g.name,
			"target_amount":  g.targetAmount,
			"current_amount": g.currentAmount,
			"target_date":    g.targetDate,
			"description":    g.description,
		})
		if err != nil {
			utils.Logger.Fatalf("failed to seed savings goal %s: %v", g.name, err)
		}
	}

	utils.Logger.Info("demo data seeded")
}
