package models

type Reservation struct {
	ID              int    `json:"id"`
	UserID          int    `json:"user_id"`
	RestaurantID    int    `json:"restaurant_id"`
	ReservationTime string `json:"reservation_time"`
	NumberOfPeople  int    `json:"number_of_people"`
}

// UserReservation is a reservation joined with its restaurant's name,
// as returned by GET /reservations.
type UserReservation struct {
	ID              int    `json:"id"`
	RestaurantName  string `json:"restaurant_name"`
	ReservationTime string `json:"reservation_time"`
	NumberOfPeople  int    `json:"number_of_people"`
}
