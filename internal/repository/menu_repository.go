package repository

import (
	"context"
	"fmt"

	"bistro-api/internal/domain"
	"bistro-api/pkg/database"
)

type PostgresMenuRepository struct {
	db *database.PostgresDB
}

func NewMenuRepository(db *database.PostgresDB) *PostgresMenuRepository {
	return &PostgresMenuRepository{db: db}
}

// List gets all menu items
func (r *PostgresMenuRepository) List(ctx context.Context) ([]domain.MenuItem, error) {
	query := `
		SELECT id, name, category, recipe, image, price
		FROM menu_items
		ORDER BY category, name
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Category,
			&item.Recipe,
			&item.Image,
			&item.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate menu items: %w", err)
	}

	return items, nil
}

// GetByIDs gets the menu items whose ids are in the given set. Ids that no
// longer resolve are simply absent from the result.
func (r *PostgresMenuRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.MenuItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, name, category, recipe, image, price
		FROM menu_items
		WHERE id = ANY($1)
	`

	rows, err := r.db.Pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu items by ids: %w", err)
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Category,
			&item.Recipe,
			&item.Image,
			&item.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate menu items: %w", err)
	}

	return items, nil
}

// Create adds a menu item
func (r *PostgresMenuRepository) Create(ctx context.Context, item *domain.MenuItem) error {
	query := `
		INSERT INTO menu_items (id, name, category, recipe, image, price)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Pool.Exec(ctx, query,
		item.ID,
		item.Name,
		item.Category,
		item.Recipe,
		item.Image,
		item.Price,
	)
	if err != nil {
		return fmt.Errorf("failed to create menu item: %w", err)
	}

	return nil
}

// Delete removes a menu item by id
func (r *PostgresMenuRepository) Delete(ctx context.Context, id string) (int64, error) {
	query := `DELETE FROM menu_items WHERE id = $1`

	tag, err := r.db.Pool.Exec(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete menu item: %w", err)
	}

	return tag.RowsAffected(), nil
}

// Count gets the total number of menu items
func (r *PostgresMenuRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM menu_items`

	err := r.db.Pool.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count menu items: %w", err)
	}

	return count, nil
}
