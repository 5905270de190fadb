package categories

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/muhammadelshareif/BudgetBuddy/internal/models"
	"github.com/muhammadelshareif/BudgetBuddy/internal/repositories"
	"github.com/muhammadelshareif/BudgetBuddy/pkg/utils"
)

// fakeStore mirrors the store's ownership and validation contract over
// an in-memory map.
type fakeStore struct {
	categories map[int]models.Category
	nextID     int
}

func newFakeStore() *fakeStore {
	return &fakeStore{categories: map[int]models.Category{}, nextID: 1}
}

func (f *fakeStore) ListCategories(_ context.Context, userID int) ([]models.Category, error) {
	out := []models.Category{}
	for _, c := range f.categories {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeStore) GetCategory(_ context.Context, id, userID int) (models.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return models.Category{}, repositories.ErrNotFound
	}
	if c.UserID != userID {
		return models.Category{}, repositories.ErrForbidden
	}
	return c, nil
}

func (f *fakeStore) CreateCategory(_ context.Context, userID int, fields repositories.Fields) (models.Category, error) {
	if fields.String("name") == "" {
		return models.Category{}, &repositories.ValidationError{Message: "Name is required"}
	}
	c := models.Category{
		ID:          f.nextID,
		UserID:      userID,
		Name:        fields.String("name"),
		Description: fields.String("description"),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	f.categories[c.ID] = c
	f.nextID++
	return c, nil
}

func (f *fakeStore) UpdateCategory(ctx context.Context, id, userID int, fields repositories.Fields) (models.Category, error) {
	c, err := f.GetCategory(ctx, id, userID)
	if err != nil {
		return models.Category{}, err
	}
	if fields.Has("name") {
		c.Name = fields.String("name")
	}
	if fields.Has("description") {
		c.Description = fields.String("description")
	}
	c.UpdatedAt = time.Now().Add(time.Second)
	f.categories[id] = c
	return c, nil
}

func (f *fakeStore) DeleteCategory(ctx context.Context, id, userID int) error {
	if _, err := f.GetCategory(ctx, id, userID); err != nil {
		return err
	}
	delete(f.categories, id)
	return nil
}

func request(t *testing.T, method, target, body string, userID int, pathID int) *http.Request {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	ctx := context.WithValue(r.Context(), utils.ContextKey("userId"), float64(userID))
	r = r.WithContext(ctx)
	if pathID != 0 {
		r.SetPathValue("id", strconv.Itoa(pathID))
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

func TestCategoryGet(t *testing.T) {
	store := newFakeStore()
	store.categories[1] = models.Category{ID: 1, UserID: 1, Name: "Food"}
	handler := NewHandler(store)

	t.Run("owner gets the row", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Item(w, request(t, http.MethodGet, "/api/categories/1", "", 1, 1))
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if body := decodeBody(t, w); body["name"] != "Food" {
			t.Errorf("name = %v", body["name"])
		}
	})

	t.Run("missing row is 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Item(w, request(t, http.MethodGet, "/api/categories/99", "", 1, 99))
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
		if body := decodeBody(t, w); body["error"] != "Category not found" {
			t.Errorf("error = %v", body["error"])
		}
	})

	t.Run("foreign row is 403", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Item(w, request(t, http.MethodGet, "/api/categories/1", "", 2, 1))
		if w.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", w.Code)
		}
		if body := decodeBody(t, w); body["error"] != "Unauthorized" {
			t.Errorf("error = %v", body["error"])
		}
	})

	t.Run("non-numeric id is 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := request(t, http.MethodGet, "/api/categories/abc", "", 1, 0)
		r.SetPathValue("id", "abc")
		handler.Item(w, r)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})
}

func TestCategoryCreate(t *testing.T) {
	t.Run("created row comes back with 201", func(t *testing.T) {
		handler := NewHandler(newFakeStore())
		w := httptest.NewRecorder()
		handler.Collection(w, request(t, http.MethodPost, "/api/categories",
			`{"name":"Food","description":"Groceries"}`, 1, 0))
		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201", w.Code)
		}
		body := decodeBody(t, w)
		if body["name"] != "Food" || body["description"] != "Groceries" {
			t.Errorf("body = %v", body)
		}
		if body["user_id"] != float64(1) {
			t.Errorf("user_id = %v, want 1", body["user_id"])
		}
	})

	t.Run("missing name is 400", func(t *testing.T) {
		handler := NewHandler(newFakeStore())
		w := httptest.NewRecorder()
		handler.Collection(w, request(t, http.MethodPost, "/api/categories", `{"description":"x"}`, 1, 0))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		if body := decodeBody(t, w); body["error"] != "Name is required" {
			t.Errorf("error = %v", body["error"])
		}
	})

	t.Run("unsupported method is 405", func(t *testing.T) {
		handler := NewHandler(newFakeStore())
		w := httptest.NewRecorder()
		handler.Collection(w, request(t, http.MethodPatch, "/api/categories", "", 1, 0))
		if w.Code != http.StatusMethodNotAllowed {
			t.Fatalf("status = %d, want 405", w.Code)
		}
	})
}

func TestCategoryPartialUpdate(t *testing.T) {
	store := newFakeStore()
	store.categories[1] = models.Category{ID: 1, UserID: 1, Name: "Food", Description: "Groceries"}
	handler := NewHandler(store)

	w := httptest.NewRecorder()
	handler.Item(w, request(t, http.MethodPut, "/api/categories/1", `{"description":"Dining"}`, 1, 1))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w)
	if body["name"] != "Food" {
		t.Errorf("name = %v, want unchanged Food", body["name"])
	}
	if body["description"] != "Dining" {
		t.Errorf("description = %v, want Dining", body["description"])
	}
}

func TestCategoryDelete(t *testing.T) {
	store := newFakeStore()
	store.categories[1] = models.Category{ID: 1, UserID: 1, Name: "Food"}
	handler := NewHandler(store)

	t.Run("other user cannot delete", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Item(w, request(t, http.MethodDelete, "/api/categories/1", "", 2, 1))
		if w.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", w.Code)
		}
	})

	t.Run("owner delete confirms", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Item(w, request(t, http.MethodDelete, "/api/categories/1", "", 1, 1))
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if body := decodeBody(t, w); body["message"] != "Category successfully deleted" {
			t.Errorf("message = %v", body["message"])
		}
	})

	t.Run("second delete is 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Item(w, request(t, http.MethodDelete, "/api/categories/1", "", 1, 1))
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
	})
}

func TestCategoryListScopedToOwner(t *testing.T) {
	store := newFakeStore()
	store.categories[1] = models.Category{ID: 1, UserID: 1, Name: "Food"}
	store.categories[2] = models.Category{ID: 2, UserID: 2, Name: "Rent"}
	handler := NewHandler(store)

	w := httptest.NewRecorder()
	handler.Collection(w, request(t, http.MethodGet, "/api/categories", "", 1, 0))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var rows []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &rows); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(rows) != 1 || rows[0]["name"] != "Food" {
		t.Errorf("rows = %v, want only the caller's category", rows)
	}
}

func TestCategoryMissingUser(t *testing.T) {
	handler := NewHandler(newFakeStore())
	w := httptest.NewRecorder()

	// No userId in context: the JWT middleware never ran.
	r := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	handler.Collection(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
