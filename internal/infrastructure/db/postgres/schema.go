package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/pizzahub/ordering-system/internal/core/domain"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGSERIAL PRIMARY KEY,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		phone         TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL DEFAULT 'customer',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS menu_items (
		id          BIGSERIAL PRIMARY KEY,
		name        TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL,
		price       BIGINT NOT NULL,
		category    TEXT NOT NULL,
		image       TEXT NOT NULL,
		available   BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id              BIGSERIAL PRIMARY KEY,
		user_id         BIGINT NOT NULL REFERENCES users (id),
		total           BIGINT NOT NULL,
		status          TEXT NOT NULL DEFAULT 'pending',
		address         TEXT NOT NULL DEFAULT '',
		phone           TEXT NOT NULL DEFAULT '',
		comment         TEXT NOT NULL DEFAULT '',
		delivery_time   TEXT NOT NULL DEFAULT '',
		idempotency_key TEXT NOT NULL DEFAULT '',
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS orders_idempotency_key_idx
		ON orders (idempotency_key) WHERE idempotency_key <> ''`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id       BIGSERIAL PRIMARY KEY,
		order_id BIGINT NOT NULL REFERENCES orders (id),
		item_id  BIGINT NOT NULL REFERENCES menu_items (id),
		quantity INT NOT NULL,
		price    BIGINT NOT NULL
	)`,
}

// seedMenu is the startup catalog. Prices are integer minor-currency units.
var seedMenu = []domain.MenuItem{
	{Name: "Margherita", Description: "Tomato sauce, mozzarella, basil", Price: 450, Category: domain.CategoryVegetarian, Image: "images/margherita.png"},
	{Name: "Pepperoni", Description: "Tomato sauce, mozzarella, pepperoni", Price: 520, Category: domain.CategoryMeat, Image: "images/pepperoni.jpg"},
	{Name: "Hawaiian", Description: "Tomato sauce, mozzarella, ham, pineapple", Price: 550, Category: domain.CategoryMeat, Image: "images/hawaiian.jpg"},
	{Name: "Four Cheese", Description: "Mozzarella, parmesan, gorgonzola, cheddar", Price: 580, Category: domain.CategoryVegetarian, Image: "images/four-cheese.jpg"},
	{Name: "Mexican", Description: "Tomato sauce, mozzarella, beef, jalapeno", Price: 620, Category: domain.CategorySpicy, Image: "images/mexican.jpg"},
	{Name: "Veggie", Description: "Tomato sauce, mozzarella, mushrooms, peppers, olives", Price: 480, Category: domain.CategoryVegetarian, Image: "images/veggie.png"},
	{Name: "Carbonara", Description: "Cream sauce, mozzarella, bacon, parmesan", Price: 590, Category: domain.CategoryMeat, Image: "images/carbonara.jpg"},
	{Name: "Diavola", Description: "Tomato sauce, mozzarella, pepperoni, jalapeno, chili", Price: 650, Category: domain.CategorySpicy, Image: "images/diavola.jpg"},
}

// Migrate creates the schema. Statements are idempotent so startup is safe
// to repeat.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// Seed inserts the catalog and the admin account, skipping rows that
// already exist.
func Seed(ctx context.Context, pool *pgxpool.Pool, adminEmail, adminPassword string) error {
	for _, item := range seedMenu {
		_, err := pool.Exec(ctx,
			`INSERT INTO menu_items (name, description, price, category, image)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (name) DO NOTHING`,
			item.Name, item.Description, item.Price, item.Category, item.Image)
		if err != nil {
			return fmt.Errorf("seed menu: %w", err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	_, err = pool.Exec(ctx,
		`INSERT INTO users (name, email, phone, password_hash, role)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (email) DO NOTHING`,
		"Admin", adminEmail, "+70000000000", string(hash), domain.RoleAdmin)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}
