package repo

import (
	"context"
	"database/sql"

	"github.com/tablebook/tablebook/internal/models"
)

// ==========================
// UserRepo
// ==========================
type UserRepo struct {
	DB *sql.DB
}

// ==========================
// Constructor
// ==========================
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{DB: db}
}

// ==========================
// Create User
// ==========================
func (r *UserRepo) Create(ctx context.Context, username, passwordHash, email, name string) (int, error) {
	query := `
		INSERT INTO users (username, password_hash, email, name)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int
	err := r.DB.QueryRowContext(ctx, query, username, passwordHash, email, name).
		Scan(&id)

	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicate
		}
		return 0, err
	}

	return id, nil
}

// ==========================
// Get By Username
// ==========================
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT id, username, password_hash, email, name
		FROM users
		WHERE username = $1
	`

	user := &models.User{}

	err := r.DB.QueryRowContext(ctx, query, username).
		Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Email, &user.Name)

	if err != nil {
		return nil, err
	}

	return user, nil
}

// ==========================
// Get By ID (password hash excluded)
// ==========================
func (r *UserRepo) GetByID(ctx context.Context, id int) (*models.User, error) {
	query := `
		SELECT id, username, email, name
		FROM users
		WHERE id = $1
	`

	user := &models.User{}

	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&user.ID, &user.Username, &user.Email, &user.Name)

	if err != nil {
		return nil, err
	}

	return user, nil
}

// ==========================
// Update Profile (password rewritten only when a new hash is supplied)
// ==========================
func (r *UserRepo) UpdateProfile(ctx context.Context, id int, email, name string, passwordHash *string) error {
	var err error
	if passwordHash != nil {
		_, err = r.DB.ExecContext(ctx,
			`UPDATE users SET email = $1, name = $2, password_hash = $3 WHERE id = $4`,
			email, name, *passwordHash, id,
		)
	} else {
		_, err = r.DB.ExecContext(ctx,
			`UPDATE users SET email = $1, name = $2 WHERE id = $3`,
			email, name, id,
		)
	}

	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}

	return nil
}
