package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/minimindteam/Dash/internal/handler"
	"github.com/minimindteam/Dash/internal/repository/sqlite"
	"github.com/minimindteam/Dash/internal/service"
)

func main() {
	// Load .env if present; real environment variables win.
	godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	port := envOrDefault("PORT", "8080")
	dbPath := envOrDefault("DATABASE_PATH", "dash.db")
	baseURL := envOrDefault("PUBLIC_BASE_URL", "http://localhost:"+port)

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if len(jwtSecret) < 32 {
		slog.Error("JWT_SECRET must be at least 32 characters for HMAC-SHA256 security")
		os.Exit(1)
	}

	bcryptCost := 12
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			slog.Error("invalid BCRYPT_COST", "error", err)
			os.Exit(1)
		}
		if parsed < 4 || parsed > 14 {
			slog.Error("BCRYPT_COST must be between 4 and 14", "value", parsed)
			os.Exit(1)
		}
		bcryptCost = parsed
	}

	db, err := sqlite.New(dbPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database migrations applied")

	authService := service.NewAuthService(db.Users(), jwtSecret, bcryptCost)
	imageService := service.NewImageService(db.Images(), db.FileStore(), baseURL)
	homePageService := service.NewHomePageService(db.HomePage(), imageService)
	messageService := service.NewMessageService(db.Messages())
	orderService := service.NewOrderService(db.Orders())
	teamService := service.NewTeamService(db.Team())
	reviewService := service.NewReviewService(db.Reviews(), db.ReviewsStats())
	portfolioService := service.NewPortfolioService(db.Portfolio(), db.PortfolioCategories())
	catalogService := service.NewCatalogService(db.Services(), db.Packages())
	contactService := service.NewContactService(db.ContactInfo())

	// Seed the admin account (idempotent).
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail != "" {
		if err := authService.EnsureAdmin(context.Background(), adminEmail, adminPassword); err != nil {
			slog.Error("failed to seed admin account", "error", err)
			os.Exit(1)
		}
		slog.Info("admin account ready", "email", adminEmail)
	}

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, handler.Services{
		Auth:      authService,
		HomePage:  homePageService,
		Images:    imageService,
		Messages:  messageService,
		Orders:    orderService,
		Team:      teamService,
		Reviews:   reviewService,
		Portfolio: portfolioService,
		Catalog:   catalogService,
		Contact:   contactService,
	})

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler.SecurityHeaders(mux),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
