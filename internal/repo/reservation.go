package repo

import (
	"context"
	"database/sql"

	"github.com/tablebook/tablebook/internal/models"
)

// ==========================
// ReservationRepo
// ==========================
type ReservationRepo struct {
	DB *sql.DB
}

func NewReservationRepo(db *sql.DB) *ReservationRepo {
	return &ReservationRepo{DB: db}
}

// ==========================
// Create Reservation
// ==========================
func (r *ReservationRepo) Create(ctx context.Context, userID, restaurantID int, reservationTime string, numberOfPeople int) (int, error) {
	query := `
		INSERT INTO reservations (user_id, restaurant_id, reservation_time, number_of_people)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int
	err := r.DB.QueryRowContext(ctx, query, userID, restaurantID, reservationTime, numberOfPeople).
		Scan(&id)

	if err != nil {
		return 0, err
	}

	return id, nil
}

// ==========================
// List For User (joined with restaurant name)
// ==========================
func (r *ReservationRepo) ListForUser(ctx context.Context, userID int) ([]models.UserReservation, error) {
	query := `
		SELECT reservations.id, restaurants.name AS restaurant_name, reservation_time, number_of_people
		FROM reservations
		JOIN restaurants ON reservations.restaurant_id = restaurants.id
		WHERE reservations.user_id = $1
	`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []models.UserReservation
	for rows.Next() {
		var res models.UserReservation
		if err := rows.Scan(&res.ID, &res.RestaurantName, &res.ReservationTime, &res.NumberOfPeople); err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

// ==========================
// Count Reservations
// ==========================
func (r *ReservationRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM reservations`).Scan(&n)
	return n, err
}
