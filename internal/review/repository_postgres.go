package review

import (
	"database/sql"
	"errors"
)

var ErrNotFound = errors.New("review not found")

// Repository provides persistence for product reviews.
type Repository interface {
	Create(r Review) (Review, error)
	ListByProduct(productID int) ([]Review, error)
	Delete(id int) error
}

type PostgresRepository struct {
	db *sql.DB
}

const (
	insertReviewQuery = `
		INSERT INTO reviews (product_id, author, rating, comment, created_at)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id
	`
	listReviewsByProductQuery = `
		SELECT id, product_id, author, rating, comment, created_at
		FROM reviews
		WHERE product_id = $1
		ORDER BY id DESC
	`
	deleteReviewQuery = `DELETE FROM reviews WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(rev Review) (Review, error) {
	err := r.db.QueryRow(insertReviewQuery, rev.ProductID, rev.Author, rev.Rating, rev.Comment, rev.CreatedAt).Scan(&rev.ID)
	if err != nil {
		return Review{}, err
	}
	return rev, nil
}

func (r *PostgresRepository) ListByProduct(productID int) ([]Review, error) {
	rows, err := r.db.Query(listReviewsByProductQuery, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Review, 0)
	for rows.Next() {
		var rev Review
		if err := rows.Scan(&rev.ID, &rev.ProductID, &rev.Author, &rev.Rating, &rev.Comment, &rev.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rev)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(deleteReviewQuery, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
