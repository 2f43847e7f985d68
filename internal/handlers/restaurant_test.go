package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/tablebook/tablebook/internal/repo"
)

func TestRestaurantHandler_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, name, address, phone FROM restaurants`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "address", "phone"}).
			AddRow(1, "Cafe", "1 Rd", "123"))

	h := &RestaurantHandler{Repo: repo.NewRestaurantRepo(db)}

	req := httptest.NewRequest("GET", "/restaurants", nil)
	rr := httptest.NewRecorder()
	h.ListRestaurants(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("ListRestaurants status: got %d, want 200", rr.Code)
	}
	var out []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(out) != 1 || out[0].Name != "Cafe" {
		t.Errorf("unexpected restaurants: %+v", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestRestaurantHandler_Add(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO restaurants \(name, address, phone\)`).
		WithArgs("Cafe", "1 Rd", "123").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	h := &RestaurantHandler{Repo: repo.NewRestaurantRepo(db)}

	body, _ := json.Marshal(map[string]string{"name": "Cafe", "address": "1 Rd", "phone": "123"})
	req := httptest.NewRequest("POST", "/restaurants", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.AddRestaurant(rr, req)

	if rr.Code != http.StatusCreated {
		t.Errorf("AddRestaurant status: got %d, want 201", rr.Code)
	}
	var out struct {
		Message      string `json:"message"`
		RestaurantID int    `json:"restaurantId"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.RestaurantID != 7 {
		t.Errorf("unexpected response: %+v", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestRestaurantHandler_Add_MissingField(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	h := &RestaurantHandler{Repo: repo.NewRestaurantRepo(db)}

	body, _ := json.Marshal(map[string]string{"name": "Cafe"}) // address and phone absent
	req := httptest.NewRequest("POST", "/restaurants", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.AddRestaurant(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("AddRestaurant status: got %d, want 400", rr.Code)
	}
	var out map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out["message"] != "all fields are required" {
		t.Errorf("unexpected message: %q", out["message"])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestRestaurantHandler_List_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, name, address, phone FROM restaurants`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "address", "phone"}))

	h := &RestaurantHandler{Repo: repo.NewRestaurantRepo(db)}

	req := httptest.NewRequest("GET", "/restaurants", nil)
	rr := httptest.NewRecorder()
	h.ListRestaurants(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("ListRestaurants status: got %d, want 200", rr.Code)
	}
	if got := bytes.TrimSpace(rr.Body.Bytes()); string(got) != "[]" {
		t.Errorf("expected empty array, got: %s", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}
