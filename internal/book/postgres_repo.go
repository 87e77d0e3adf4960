package book

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) Create(ctx context.Context, b *Book) error {
	const query = `
	INSERT INTO books (title, author, genre, year_published, summary)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id
	`
	return r.db.QueryRow(ctx, query, b.Title, b.Author, b.Genre, b.YearPublished, b.Summary).Scan(&b.ID)
}

func (r *PostgresRepo) List(ctx context.Context, p ListParams) ([]Book, error) {
	const query = `
	SELECT id, title, author, genre, year_published, summary
	FROM books
	WHERE ($1 = '' OR genre ILIKE '%' || $1 || '%')
	AND ($2 = '' OR author ILIKE '%' || $2 || '%')
	ORDER BY id
	LIMIT $3 OFFSET $4
	`
	rows, err := r.db.Query(ctx, query, p.Genre, p.Author, p.Limit, p.Skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBooks(rows)
}

func (r *PostgresRepo) ListAll(ctx context.Context) ([]Book, error) {
	const query = `
	SELECT id, title, author, genre, year_published, summary
	FROM books
	ORDER BY id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBooks(rows)
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (Book, error) {
	const query = `
	SELECT id, title, author, genre, year_published, summary
	FROM books
	WHERE id = $1
	LIMIT 1
	`
	var b Book
	err := r.db.QueryRow(ctx, query, id).Scan(&b.ID, &b.Title, &b.Author, &b.Genre, &b.YearPublished, &b.Summary)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) Update(ctx context.Context, id int64, p UpdateParams) (Book, error) {
	var set []string
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if p.Title != nil {
		add("title", *p.Title)
	}
	if p.Author != nil {
		add("author", *p.Author)
	}
	if p.Genre != nil {
		add("genre", *p.Genre)
	}
	if p.YearPublished != nil {
		add("year_published", *p.YearPublished)
	}
	if p.Summary != nil {
		add("summary", *p.Summary)
	}

	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`
	UPDATE books SET %s
	WHERE id = $%d
	RETURNING id, title, author, genre, year_published, summary
	`, strings.Join(set, ", "), len(args))

	var b Book
	err := r.db.QueryRow(ctx, query, args...).Scan(&b.ID, &b.Title, &b.Author, &b.Genre, &b.YearPublished, &b.Summary)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

// Delete removes a book; its reviews go with it via the FK cascade.
func (r *PostgresRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanBooks(rows pgx.Rows) ([]Book, error) {
	books := []Book{}
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Genre, &b.YearPublished, &b.Summary); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}
