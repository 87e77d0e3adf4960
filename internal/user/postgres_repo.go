package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) Create(ctx context.Context, u *User) error {
	const query = `
	INSERT INTO users (username, email, full_name, hashed_password, is_active, is_admin)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id, created_at
	`
	return r.db.QueryRow(ctx, query,
		u.Username, u.Email, u.FullName, u.HashedPassword, u.IsActive, u.IsAdmin,
	).Scan(&u.ID, &u.CreatedAt)
}

func (r *PostgresRepo) GetByUsername(ctx context.Context, username string) (User, error) {
	const query = `
	SELECT id, username, email, full_name, hashed_password, is_active, is_admin, created_at
	FROM users
	WHERE username = $1
	LIMIT 1
	`
	return r.scanOne(r.db.QueryRow(ctx, query, username))
}

func (r *PostgresRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	const query = `
	SELECT id, username, email, full_name, hashed_password, is_active, is_admin, created_at
	FROM users
	WHERE email = $1
	LIMIT 1
	`
	return r.scanOne(r.db.QueryRow(ctx, query, email))
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (User, error) {
	const query = `
	SELECT id, username, email, full_name, hashed_password, is_active, is_admin, created_at
	FROM users
	WHERE id = $1
	LIMIT 1
	`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *PostgresRepo) scanOne(row pgx.Row) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.FullName, &u.HashedPassword, &u.IsActive, &u.IsAdmin, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}
