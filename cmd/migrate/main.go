package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	if len(os.Args) < 2 {
		fmt.Println("Usage: go run main.go [drop|up|seed]")
		os.Exit(1)
	}

	command := os.Args[1]

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer conn.Close(ctx)

	switch command {
	case "drop":
		if err := dropTables(ctx, conn); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		fmt.Println("✅ All tables dropped successfully")

	case "up":
		if err := createTables(ctx, conn); err != nil {
			log.Fatalf("Failed to create tables: %v", err)
		}
		fmt.Println("✅ All tables created successfully")

	case "seed":
		if err := seedData(ctx, conn); err != nil {
			log.Fatalf("Failed to seed data: %v", err)
		}
		fmt.Println("✅ Data seeded successfully")

	default:
		fmt.Printf("Unknown command: %s\n", command)
		fmt.Println("Usage: go run main.go [drop|up|seed]")
		os.Exit(1)
	}
}

func dropTables(ctx context.Context, conn *pgx.Conn) error {
	queries := []string{
		`DROP TABLE IF EXISTS payments CASCADE`,
		`DROP TABLE IF EXISTS cart_items CASCADE`,
		`DROP TABLE IF EXISTS reviews CASCADE`,
		`DROP TABLE IF EXISTS menu_items CASCADE`,
		`DROP TABLE IF EXISTS users CASCADE`,
	}

	for _, query := range queries {
		if _, err := conn.Exec(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
		fmt.Printf("  Dropped: %s\n", query)
	}

	return nil
}

func createTables(ctx context.Context, conn *pgx.Conn) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			email VARCHAR(255) UNIQUE NOT NULL,
			name VARCHAR(255) NOT NULL DEFAULT '',
			role VARCHAR(20) NOT NULL DEFAULT 'customer',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS menu_items (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			category VARCHAR(100) NOT NULL,
			recipe TEXT NOT NULL DEFAULT '',
			image TEXT NOT NULL DEFAULT '',
			price NUMERIC(10,2) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS reviews (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			details TEXT NOT NULL DEFAULT '',
			rating NUMERIC(3,1) NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS cart_items (
			id UUID PRIMARY KEY,
			owner_email VARCHAR(255) NOT NULL,
			menu_item_id UUID NOT NULL,
			name VARCHAR(255) NOT NULL,
			image TEXT NOT NULL DEFAULT '',
			price NUMERIC(10,2) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		// cart_item_ids and menu_item_ids keep the exact id sets the
		// checkout request carried, as arrays rather than join rows, so a
		// payment row is a self-contained audit record.
		`CREATE TABLE IF NOT EXISTS payments (
			id UUID PRIMARY KEY,
			payer_email VARCHAR(255) NOT NULL,
			price NUMERIC(10,2) NOT NULL,
			cart_item_ids TEXT[] NOT NULL DEFAULT '{}',
			menu_item_ids TEXT[] NOT NULL DEFAULT '{}',
			status VARCHAR(50) NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)`,
		`CREATE INDEX IF NOT EXISTS idx_menu_items_category ON menu_items(category)`,
		`CREATE INDEX IF NOT EXISTS idx_cart_items_owner ON cart_items(owner_email)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_payer ON payments(payer_email)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_created_at ON payments(created_at DESC)`,
	}

	for _, query := range queries {
		if _, err := conn.Exec(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %w\nQuery: %s", err, query)
		}
		fmt.Printf("  Created: %s\n", getTableName(query))
	}

	return nil
}

func seedData(ctx context.Context, conn *pgx.Conn) error {
	menuQuery := `
		INSERT INTO menu_items (id, name, category, recipe, image, price) VALUES
		(gen_random_uuid(), 'Margherita Pizza', 'pizza', 'Tomato, mozzarella, basil', '', 12.50),
		(gen_random_uuid(), 'Pepperoni Pizza', 'pizza', 'Tomato, mozzarella, pepperoni', '', 14.00),
		(gen_random_uuid(), 'Caesar Salad', 'salad', 'Romaine, parmesan, croutons', '', 8.50),
		(gen_random_uuid(), 'Tomato Soup', 'soup', 'Tomato, cream, basil', '', 6.00),
		(gen_random_uuid(), 'Tiramisu', 'dessert', 'Mascarpone, espresso, cocoa', '', 7.50)
		ON CONFLICT DO NOTHING
	`

	if _, err := conn.Exec(ctx, menuQuery); err != nil {
		return fmt.Errorf("failed to seed menu items: %w", err)
	}

	fmt.Println("  Seeded 5 menu items")

	reviewQuery := `
		INSERT INTO reviews (id, name, details, rating) VALUES
		(gen_random_uuid(), 'Ada', 'Best pizza in town, generous portions.', 5.0),
		(gen_random_uuid(), 'Grace', 'Quick service, the salad was fresh.', 4.5),
		(gen_random_uuid(), 'Linus', 'Good value, soup could be warmer.', 3.5)
		ON CONFLICT DO NOTHING
	`

	if _, err := conn.Exec(ctx, reviewQuery); err != nil {
		return fmt.Errorf("failed to seed reviews: %w", err)
	}

	fmt.Println("  Seeded 3 reviews")

	return nil
}

func getTableName(query string) string {
	if len(query) > 50 {
		return query[:50] + "..."
	}
	return query
}
