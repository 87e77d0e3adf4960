package review

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) Create(ctx context.Context, rv *Review) error {
	const query = `
	INSERT INTO reviews (book_id, user_id, review_text, rating)
	VALUES ($1, $2, $3, $4)
	RETURNING id, created_at
	`
	return r.db.QueryRow(ctx, query, rv.BookID, rv.UserID, rv.ReviewText, rv.Rating).Scan(&rv.ID, &rv.CreatedAt)
}

func (r *PostgresRepo) ListByBook(ctx context.Context, bookID int64) ([]Review, error) {
	const query = `
	SELECT id, book_id, user_id, review_text, rating, created_at
	FROM reviews
	WHERE book_id = $1
	ORDER BY id
	`
	rows, err := r.db.Query(ctx, query, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReviews(rows)
}

func (r *PostgresRepo) ListAll(ctx context.Context) ([]Review, error) {
	const query = `
	SELECT id, book_id, user_id, review_text, rating, created_at
	FROM reviews
	ORDER BY id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReviews(rows)
}

func scanReviews(rows pgx.Rows) ([]Review, error) {
	reviews := []Review{}
	for rows.Next() {
		var rv Review
		if err := rows.Scan(&rv.ID, &rv.BookID, &rv.UserID, &rv.ReviewText, &rv.Rating, &rv.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reviews, nil
}
