package repository

import (
	"context"
	"fmt"

	"bistro-api/internal/domain"
	"bistro-api/pkg/database"
)

type PostgresReviewRepository struct {
	db *database.PostgresDB
}

func NewReviewRepository(db *database.PostgresDB) *PostgresReviewRepository {
	return &PostgresReviewRepository{db: db}
}

// List gets all reviews
func (r *PostgresReviewRepository) List(ctx context.Context) ([]domain.Review, error) {
	query := `
		SELECT id, name, details, rating
		FROM reviews
		ORDER BY rating DESC
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var review domain.Review
		err := rows.Scan(
			&review.ID,
			&review.Name,
			&review.Details,
			&review.Rating,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reviews: %w", err)
	}

	return reviews, nil
}
