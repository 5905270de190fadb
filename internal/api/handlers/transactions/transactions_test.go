package transactions

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/muhammadelshareif/BudgetBuddy/internal/models"
	"github.com/muhammadelshareif/BudgetBuddy/internal/repositories"
	"github.com/muhammadelshareif/BudgetBuddy/pkg/utils"
	"github.com/shopspring/decimal"
)

type fakeStore struct {
	transactions map[int]models.Transaction
	categories   map[int]models.Category
	nextID       int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		transactions: map[int]models.Transaction{},
		categories:   map[int]models.Category{},
		nextID:       1,
	}
}

func (f *fakeStore) resolveCategory(tx models.Transaction) models.Transaction {
	if c, ok := f.categories[tx.CategoryID]; ok {
		tx.Category = &c
	}
	return tx
}

func (f *fakeStore) ListTransactions(_ context.Context, userID int) ([]models.Transaction, error) {
	out := []models.Transaction{}
	for _, tx := range f.transactions {
		if tx.UserID == userID {
			out = append(out, f.resolveCategory(tx))
		}
	}
	return out, nil
}

func (f *fakeStore) GetTransaction(_ context.Context, id, userID int) (models.Transaction, error) {
	tx, ok := f.transactions[id]
	if !ok {
		return models.Transaction{}, repositories.ErrNotFound
	}
	if tx.UserID != userID {
		return models.Transaction{}, repositories.ErrForbidden
	}
	return f.resolveCategory(tx), nil
}

func (f *fakeStore) CreateTransaction(_ context.Context, userID int, fields repositories.Fields) (models.Transaction, error) {
	if err := fields.RequireAll("category_id", "amount", "description", "type", "transaction_date"); err != nil {
		return models.Transaction{}, err
	}
	categoryID, _ := fields.Int("category_id")
	if c, ok := f.categories[categoryID]; !ok || c.UserID != userID {
		return models.Transaction{}, &repositories.ValidationError{Message: "Invalid category"}
	}
	txType := fields.String("type")
	if txType != models.TransactionTypeIncome && txType != models.TransactionTypeExpense {
		return models.Transaction{}, &repositories.ValidationError{
			Message: `Type must be either "income" or "expense"`,
		}
	}
	date, err := fields.Date("transaction_date")
	if err != nil {
		return models.Transaction{}, err
	}
	amount, _ := fields.Decimal("amount")
	tx := models.Transaction{
		ID:              f.nextID,
		UserID:          userID,
		CategoryID:      categoryID,
		Amount:          amount,
		Description:     fields.String("description"),
		Type:            txType,
		TransactionDate: date,
	}
	f.transactions[tx.ID] = tx
	f.nextID++
	return f.resolveCategory(tx), nil
}

func (f *fakeStore) UpdateTransaction(ctx context.Context, id, userID int, fields repositories.Fields) (models.Transaction, error) {
	tx, err := f.GetTransaction(ctx, id, userID)
	if err != nil {
		return models.Transaction{}, err
	}
	if fields.Has("description") {
		tx.Description = fields.String("description")
	}
	if fields.Has("amount") {
		if amount, ok := fields.Decimal("amount"); ok {
			tx.Amount = amount
		}
	}
	f.transactions[id] = tx
	return f.resolveCategory(tx), nil
}

func (f *fakeStore) DeleteTransaction(ctx context.Context, id, userID int) error {
	if _, err := f.GetTransaction(ctx, id, userID); err != nil {
		return err
	}
	delete(f.transactions, id)
	return nil
}

func request(t *testing.T, method, target, body string, userID int, pathID string) *http.Request {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	ctx := context.WithValue(r.Context(), utils.ContextKey("userId"), float64(userID))
	r = r.WithContext(ctx)
	if pathID != "" {
		r.SetPathValue("id", pathID)
	}
	return r
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON body %q: %v", w.Body.String(), err)
	}
	return out
}

func TestTransactionCreate(t *testing.T) {
	t.Run("response embeds the resolved category", func(t *testing.T) {
		store := newFakeStore()
		store.categories[3] = models.Category{ID: 3, UserID: 1, Name: "Food"}
		handler := NewHandler(store)

		w := httptest.NewRecorder()
		handler.Collection(w, request(t, http.MethodPost, "/api/transactions",
			`{"category_id":3,"amount":150.50,"description":"Weekly groceries","type":"expense","transaction_date":"2026-08-20"}`,
			1, ""))

		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["amount"] != 150.5 {
			t.Errorf("amount = %v, want 150.5", body["amount"])
		}
		category, ok := body["category"].(map[string]any)
		if !ok {
			t.Fatalf("category = %v, want nested object", body["category"])
		}
		if category["name"] != "Food" {
			t.Errorf("category name = %v", category["name"])
		}
	})

	t.Run("foreign category is invalid", func(t *testing.T) {
		store := newFakeStore()
		store.categories[3] = models.Category{ID: 3, UserID: 2, Name: "Food"}
		handler := NewHandler(store)

		w := httptest.NewRecorder()
		handler.Collection(w, request(t, http.MethodPost, "/api/transactions",
			`{"category_id":3,"amount":150.50,"description":"Weekly groceries","type":"expense","transaction_date":"2026-08-20"}`,
			1, ""))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		if body := decodeBody(t, w); body["error"] != "Invalid category" {
			t.Errorf("error = %v", body["error"])
		}
	})

	t.Run("unknown type is rejected with the enum message", func(t *testing.T) {
		store := newFakeStore()
		store.categories[3] = models.Category{ID: 3, UserID: 1, Name: "Food"}
		handler := NewHandler(store)

		w := httptest.NewRecorder()
		handler.Collection(w, request(t, http.MethodPost, "/api/transactions",
			`{"category_id":3,"amount":150.50,"description":"Transfer out","type":"transfer","transaction_date":"2026-08-20"}`,
			1, ""))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		if body := decodeBody(t, w); body["error"] != `Type must be either "income" or "expense"` {
			t.Errorf("error = %v", body["error"])
		}
	})

	t.Run("malformed body is 400", func(t *testing.T) {
		handler := NewHandler(newFakeStore())
		w := httptest.NewRecorder()
		handler.Collection(w, request(t, http.MethodPost, "/api/transactions", `{`, 1, ""))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		if body := decodeBody(t, w); body["error"] != "Invalid request body" {
			t.Errorf("error = %v", body["error"])
		}
	})
}

func TestTransactionUpdate(t *testing.T) {
	store := newFakeStore()
	store.categories[3] = models.Category{ID: 3, UserID: 1, Name: "Food"}
	store.transactions[1] = models.Transaction{
		ID: 1, UserID: 1, CategoryID: 3,
		Amount:          decimal.RequireFromString("150.50"),
		Description:     "Weekly groceries",
		Type:            models.TransactionTypeExpense,
		TransactionDate: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
	}
	handler := NewHandler(store)

	w := httptest.NewRecorder()
	handler.Item(w, request(t, http.MethodPut, "/api/transactions/1",
		`{"description":"Groceries and snacks"}`, 1, "1"))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["description"] != "Groceries and snacks" {
		t.Errorf("description = %v", body["description"])
	}
	if body["amount"] != 150.5 {
		t.Errorf("amount = %v, want unchanged 150.5", body["amount"])
	}
}

func TestTransactionDelete(t *testing.T) {
	store := newFakeStore()
	store.transactions[1] = models.Transaction{
		ID: 1, UserID: 1, CategoryID: 3,
		Amount: decimal.RequireFromString("150.50"),
		Type:   models.TransactionTypeExpense,
	}
	handler := NewHandler(store)

	t.Run("foreign transaction is 403", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Item(w, request(t, http.MethodDelete, "/api/transactions/1", "", 2, "1"))
		if w.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", w.Code)
		}
	})

	t.Run("owner delete confirms", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Item(w, request(t, http.MethodDelete, "/api/transactions/1", "", 1, "1"))
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if body := decodeBody(t, w); body["message"] != "Transaction successfully deleted" {
			t.Errorf("message = %v", body["message"])
		}
	})
}
