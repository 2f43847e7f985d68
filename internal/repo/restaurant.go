package repo

import (
	"context"
	"database/sql"

	"github.com/tablebook/tablebook/internal/models"
)

// ==========================
// RestaurantRepo
// ==========================
type RestaurantRepo struct {
	DB *sql.DB
}

func NewRestaurantRepo(db *sql.DB) *RestaurantRepo {
	return &RestaurantRepo{DB: db}
}

// ==========================
// Create Restaurant
// ==========================
func (r *RestaurantRepo) Create(ctx context.Context, name, address, phone string) (int, error) {
	query := `
		INSERT INTO restaurants (name, address, phone)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int
	err := r.DB.QueryRowContext(ctx, query, name, address, phone).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// ==========================
// Get By ID
// ==========================
func (r *RestaurantRepo) GetByID(ctx context.Context, id int) (*models.Restaurant, error) {
	query := `
		SELECT id, name, address, phone
		FROM restaurants
		WHERE id = $1
	`

	rest := &models.Restaurant{}

	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&rest.ID, &rest.Name, &rest.Address, &rest.Phone)

	if err != nil {
		return nil, err
	}

	return rest, nil
}

// ==========================
// List All Restaurants (no ordering guaranteed)
// ==========================
func (r *RestaurantRepo) List(ctx context.Context) ([]models.Restaurant, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name, address, phone FROM restaurants`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []models.Restaurant
	for rows.Next() {
		var rest models.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Address, &rest.Phone); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

// ==========================
// Count Restaurants
// ==========================
func (r *RestaurantRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM restaurants`).Scan(&n)
	return n, err
}
