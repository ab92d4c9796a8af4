package main

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/techstore-br/techstore-backend/internal/admin"
	"github.com/techstore-br/techstore-backend/internal/cart"
	"github.com/techstore-br/techstore-backend/internal/checkout"
	"github.com/techstore-br/techstore-backend/internal/config"
	"github.com/techstore-br/techstore-backend/internal/order"
	"github.com/techstore-br/techstore-backend/internal/payment"
	"github.com/techstore-br/techstore-backend/internal/product"
	"github.com/techstore-br/techstore-backend/internal/review"
	"github.com/techstore-br/techstore-backend/internal/settings"
	"github.com/techstore-br/techstore-backend/internal/thankyou"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := mustBuildLogger(cfg.Env)
	defer logger.Sync()

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()

	if err := ensureSchema(db); err != nil {
		logger.Fatal("schema bootstrap failed", zap.Error(err))
	}

	app := fiber.New()
	setupCORS(app)

	gateway := payment.NewClient(cfg.Gateway, logger)

	productRepo := product.NewPostgresRepository(db)
	productService := product.NewService(productRepo)
	productHandler := product.NewHandler(productService)

	cartRepo := cart.NewPostgresRepository(db)
	cartService := cart.NewService(cartRepo, productService)
	cartHandler := cart.NewHandler(cartService)

	orderRepo := order.NewPostgresRepository(db)
	orderService := order.NewService(orderRepo)
	orderHandler := order.NewHandler(orderService)

	checkoutService := checkout.NewService(cartService, orderService, gateway, logger)
	checkoutHandler := checkout.NewHandler(checkoutService)

	thankYouService := thankyou.NewService(orderService, gateway, logger)
	thankYouHandler := thankyou.NewHandler(thankYouService)

	settingsService := settings.NewService(settings.NewPostgresRepository(db))
	settingsHandler := settings.NewHandler(settingsService)

	reviewService := review.NewService(review.NewPostgresRepository(db))
	reviewHandler := review.NewHandler(reviewService)

	adminService := admin.NewService(admin.NewPostgresRepository(db))
	adminHandler := admin.NewHandler(adminService, cfg.JWTSecret)

	tokenHandler := payment.NewHandler(gateway, logger)

	// public storefront surface
	productHandler.RegisterPublicRoutes(app)
	cartHandler.RegisterPublicRoutes(app)
	checkoutHandler.RegisterPublicRoutes(app)
	thankYouHandler.RegisterPublicRoutes(app)
	settingsHandler.RegisterPublicRoutes(app)
	reviewHandler.RegisterPublicRoutes(app)
	tokenHandler.RegisterPublicRoutes(app)
	adminHandler.RegisterPublicRoutes(app)

	// admin back-office, guarded by JWT
	adminGroup := app.Group("/api/v1/admin", jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))
	productHandler.RegisterAdminRoutes(adminGroup)
	orderHandler.RegisterAdminRoutes(adminGroup)
	settingsHandler.RegisterAdminRoutes(adminGroup)
	reviewHandler.RegisterAdminRoutes(adminGroup)

	logger.Info("starting server", zap.String("addr", cfg.Addr), zap.String("env", cfg.Env))
	if err := app.Listen(cfg.Addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func mustBuildLogger(env string) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	return logger
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Session-ID",
	}))
}

func mustOpenDB(url string) *sql.DB {
	db, err := sql.Open("pgx", url)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}

// ensureSchema creates the tables this service owns when they are missing.
func ensureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price numeric NOT NULL DEFAULT 0,
			image_url TEXT,
			category TEXT,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS carts (
			session_id TEXT PRIMARY KEY,
			items jsonb NOT NULL DEFAULT '[]',
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			customer_name TEXT NOT NULL,
			customer_email TEXT NOT NULL,
			customer_cpf TEXT NOT NULL,
			customer_phone TEXT NOT NULL DEFAULT '',
			customer_address TEXT NOT NULL DEFAULT '',
			total_amount numeric NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'pending',
			payment_id TEXT,
			payment_status TEXT,
			idempotency_key TEXT UNIQUE,
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id TEXT NOT NULL REFERENCES orders(id),
			product_id INT NOT NULL,
			product_name TEXT NOT NULL,
			price numeric NOT NULL,
			quantity INT NOT NULL,
			total_price numeric NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS reviews (
			id SERIAL PRIMARY KEY,
			product_id INT NOT NULL,
			author TEXT NOT NULL,
			rating INT NOT NULL,
			comment TEXT NOT NULL DEFAULT '',
			created_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS store_settings (
			id INT PRIMARY KEY,
			store_name TEXT NOT NULL,
			store_description TEXT NOT NULL DEFAULT '',
			store_slogan TEXT NOT NULL DEFAULT '',
			logo_url TEXT NOT NULL DEFAULT '',
			banner_url TEXT NOT NULL DEFAULT '',
			currency_symbol TEXT NOT NULL DEFAULT 'R$',
			contact_email TEXT NOT NULL DEFAULT '',
			contact_phone TEXT NOT NULL DEFAULT '',
			estimated_delivery_days INT NOT NULL DEFAULT 7,
			enable_reviews BOOLEAN NOT NULL DEFAULT TRUE,
			updated_at TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS admins (
			id SERIAL PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			name TEXT NOT NULL,
			created_at TEXT
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
