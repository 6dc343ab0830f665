package repository

import (
	"context"
	"fmt"

	"bistro-api/internal/domain"
	"bistro-api/pkg/database"
)

type PostgresCartRepository struct {
	db *database.PostgresDB
}

func NewCartRepository(db *database.PostgresDB) *PostgresCartRepository {
	return &PostgresCartRepository{db: db}
}

// Add inserts a cart item
func (r *PostgresCartRepository) Add(ctx context.Context, item *domain.CartItem) error {
	query := `
		INSERT INTO cart_items (id, owner_email, menu_item_id, name, image, price)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Pool.Exec(ctx, query,
		item.ID,
		item.OwnerEmail,
		item.MenuItemID,
		item.Name,
		item.Image,
		item.Price,
	)
	if err != nil {
		return fmt.Errorf("failed to add cart item: %w", err)
	}

	return nil
}

// ListByOwner gets the cart items owned by the given email
func (r *PostgresCartRepository) ListByOwner(ctx context.Context, email string) ([]domain.CartItem, error) {
	query := `
		SELECT id, owner_email, menu_item_id, name, image, price
		FROM cart_items
		WHERE owner_email = $1
		ORDER BY name
	`

	rows, err := r.db.Pool.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var item domain.CartItem
		err := rows.Scan(
			&item.ID,
			&item.OwnerEmail,
			&item.MenuItemID,
			&item.Name,
			&item.Image,
			&item.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cart items: %w", err)
	}

	return items, nil
}

// Delete removes one cart item by id
func (r *PostgresCartRepository) Delete(ctx context.Context, id string) (int64, error) {
	query := `DELETE FROM cart_items WHERE id = $1`

	tag, err := r.db.Pool.Exec(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete cart item: %w", err)
	}

	return tag.RowsAffected(), nil
}

// DeleteByIDs bulk-removes the cart items whose ids are in the given set.
// Each row delete is atomic on its own; callers must not assume the set is
// removed atomically.
func (r *PostgresCartRepository) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query := `DELETE FROM cart_items WHERE id = ANY($1)`

	tag, err := r.db.Pool.Exec(ctx, query, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to delete cart items: %w", err)
	}

	return tag.RowsAffected(), nil
}
