package main

import (
	"database/sql"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/oakratch/storefront-backend/internal/cart"
	"github.com/oakratch/storefront-backend/internal/chat"
	"github.com/oakratch/storefront-backend/internal/config"
	"github.com/oakratch/storefront-backend/internal/contact"
	"github.com/oakratch/storefront-backend/internal/faq"
	"github.com/oakratch/storefront-backend/internal/mailer"
	"github.com/oakratch/storefront-backend/internal/notification"
	"github.com/oakratch/storefront-backend/internal/order"
	"github.com/oakratch/storefront-backend/internal/product"
	"github.com/oakratch/storefront-backend/internal/session"
	"github.com/oakratch/storefront-backend/internal/subscriber"
	"github.com/oakratch/storefront-backend/internal/team"
	"github.com/oakratch/storefront-backend/internal/testimonial"
	"github.com/oakratch/storefront-backend/internal/user"
	"github.com/oakratch/storefront-backend/internal/wishlist"
)

// main wires dependencies and starts the HTTP server. With DATABASE_URL
// set the Postgres repositories are used; otherwise everything runs on
// seeded in-memory stores (demo mode).
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000",
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
	}))

	var (
		userRepo       user.Repository
		productRepo    product.Repository
		cartRepo       cart.Repository
		wishlistRepo   wishlist.Repository
		contactRepo    contact.Repository
		subscriberRepo subscriber.Repository
		orderRepo      order.Repository
	)

	if cfg.DatabaseURL != "" {
		db := mustOpenDB(cfg.DatabaseURL)
		defer db.Close()
		ensureSchema(db)

		userRepo = user.NewPostgresRepository(db)
		productRepo = product.NewPostgresRepository(db)
		cartRepo = cart.NewPostgresRepository(db)
		wishlistRepo = wishlist.NewPostgresRepository(db)
		contactRepo = contact.NewPostgresRepository(db)
		subscriberRepo = subscriber.NewPostgresRepository(db)
		orderRepo = order.NewPostgresRepository(db)
	} else {
		log.Print("DATABASE_URL not set, running in demo mode with in-memory stores")
		userRepo = user.NewInMemoryRepository(demoUsers())
		productRepo = product.NewInMemoryRepository(product.DemoProducts)
		cartRepo = cart.NewInMemoryRepository()
		wishlistRepo = wishlist.NewInMemoryRepository()
		contactRepo = contact.NewInMemoryRepository(nil)
		subscriberRepo = subscriber.NewInMemoryRepository(subscriber.DemoSubscribers)
		orderRepo = order.NewInMemoryRepository(order.DemoOrders)
	}

	secure := cfg.IsProduction()

	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService, cfg.JWTSecret, secure)

	productService := product.NewService(productRepo)
	productHandler := product.NewHandler(productService)

	cartHandler := cart.NewHandler(cart.NewService(cartRepo, productService))
	wishlistHandler := wishlist.NewHandler(wishlist.NewService(wishlistRepo, productService))

	smtp := mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass, cfg.EmailTo)
	contactHandler := contact.NewHandler(contact.NewService(contactRepo, smtp))

	subscriberHandler := subscriber.NewHandler(subscriber.NewService(subscriberRepo))
	orderHandler := order.NewHandler(order.NewService(orderRepo))
	notificationHandler := notification.NewHandler(notification.NewService(
		notification.NewInMemoryRepository(notification.DemoNotifications)))
	chatHandler := chat.NewHandler(chat.NewDefaultResponder())

	testimonialHandler := testimonial.NewHandler(testimonial.NewInMemoryRepository(testimonial.DemoTestimonials))
	teamHandler := team.NewHandler(team.NewInMemoryRepository(team.DemoMembers))
	faqHandler := faq.NewHandler(faq.NewInMemoryRepository(faq.DemoFAQs))

	// public routes go first so the jwt middleware never sees them
	userHandler.RegisterPublicRoutes(app)
	productHandler.RegisterPublicRoutes(app)
	testimonialHandler.RegisterPublicRoutes(app)
	teamHandler.RegisterPublicRoutes(app)
	faqHandler.RegisterPublicRoutes(app)
	chatHandler.RegisterPublicRoutes(app)
	subscriberHandler.RegisterPublicRoutes(app)
	contactHandler.RegisterPublicRoutes(app)

	// admin dashboard routes carry their own cookie and role check
	adminJWT := jwtware.New(jwtware.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "cookie:" + session.AdminCookie,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		},
	})
	admin := app.Group("/api/admin", adminJWT, session.RequireAdmin)
	userHandler.RegisterAdminRoutes(admin)
	subscriberHandler.RegisterAdminRoutes(admin)
	subscriberHandler.RegisterLegacyRoutes(app, adminJWT, session.RequireAdmin)
	orderHandler.RegisterAdminRoutes(admin)
	notificationHandler.RegisterAdminRoutes(admin)
	contactHandler.RegisterAdminRoutes(admin)

	// everything registered after this point requires a customer session
	app.Use(jwtware.New(jwtware.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "cookie:" + session.UserCookie,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		},
	}))

	userHandler.RegisterProtectedRoutes(app)
	cartHandler.RegisterProtectedRoutes(app)
	wishlistHandler.RegisterProtectedRoutes(app)

	log.Printf("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func mustOpenDB(url string) *sql.DB {
	db, err := sql.Open("pgx", url)
	if err != nil {
		log.Fatalf("opening database: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("pinging database: %v", err)
	}
	return db
}

// ensureSchema creates the tables on first run so a fresh database works
// out of the box.
func ensureSchema(db *sql.DB) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			phone TEXT,
			avatar TEXT,
			role TEXT NOT NULL DEFAULT 'customer',
			cart JSONB NOT NULL DEFAULT '{}',
			wishlist INTEGER[] NOT NULL DEFAULT '{}',
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			price DOUBLE PRECISION NOT NULL DEFAULT 0,
			image TEXT,
			description TEXT,
			category TEXT,
			rating INT,
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS contacts (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			subject TEXT,
			message TEXT NOT NULL,
			created_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS subscribers (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			name TEXT,
			status TEXT NOT NULL DEFAULT 'active',
			subscribed_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			customer TEXT NOT NULL,
			email TEXT,
			lines JSONB NOT NULL DEFAULT '[]',
			total DOUBLE PRECISION NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'pending',
			created_at TEXT,
			updated_at TEXT
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			log.Fatalf("creating schema: %v", err)
		}
	}
}

// demoUsers seeds the identity store with an admin account for demo mode.
func demoUsers() []user.User {
	hashed, err := user.HashPassword("admin12345")
	if err != nil {
		log.Fatalf("hashing demo password: %v", err)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	return []user.User{
		{
			ID:        1,
			Name:      "Site Admin",
			Email:     "admin@example.com",
			Password:  hashed,
			Role:      session.RoleAdmin,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}
