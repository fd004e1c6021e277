package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/minimindteam/Dash/internal/domain"
	"github.com/minimindteam/Dash/internal/repository/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// DB bundles the SQLite connection with accessors for every repository.
type DB struct {
	SqlDB *sql.DB
}

var _ domain.Database = (*DB)(nil)

// New opens a SQLite database at the given path and configures it for use.
// It enables WAL mode and foreign keys.
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	// Enable foreign key enforcement.
	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// Set a reasonable connection pool for SQLite.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{SqlDB: db}, nil
}

// Migrate applies all pending schema migrations.
func (d *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, d.SqlDB)
}

// Close closes the underlying connection.
func (d *DB) Close() error {
	return d.SqlDB.Close()
}

func (d *DB) Users() domain.UserRepository { return &userRepo{db: d.SqlDB} }

func (d *DB) HomePage() domain.HomePageRepository { return &homePageRepo{db: d.SqlDB} }

func (d *DB) Images() domain.StoredImageRepository { return &storedImageRepo{db: d.SqlDB} }

func (d *DB) FileStore() domain.FileStore { return &fileStore{db: d.SqlDB} }

func (d *DB) Messages() domain.MessageRepository { return &messageRepo{db: d.SqlDB} }

func (d *DB) Orders() domain.OrderRepository { return &orderRepo{db: d.SqlDB} }

func (d *DB) Team() domain.TeamRepository { return &teamRepo{db: d.SqlDB} }

func (d *DB) Reviews() domain.ReviewRepository { return &reviewRepo{db: d.SqlDB} }

func (d *DB) ReviewsStats() domain.ReviewsStatRepository { return &reviewsStatRepo{db: d.SqlDB} }

func (d *DB) Portfolio() domain.PortfolioRepository { return &portfolioRepo{db: d.SqlDB} }

func (d *DB) PortfolioCategories() domain.PortfolioCategoryRepository {
	return &portfolioCategoryRepo{db: d.SqlDB}
}

func (d *DB) Services() domain.ServiceRepository { return &serviceRepo{db: d.SqlDB} }

func (d *DB) Packages() domain.PackageRepository { return &packageRepo{db: d.SqlDB} }

func (d *DB) ContactInfo() domain.ContactInfoRepository { return &contactInfoRepo{db: d.SqlDB} }
