package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/sitecrew/estimator/internal/domain"
)

const (
	pgMaxOpenConns    = 25
	pgMaxIdleConns    = 5
	pgConnMaxLifetime = 5 * time.Minute
	pgPingTimeout     = 5 * time.Second
)

// PostgresConfig holds connection settings for a PostgreSQL catalog.
type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// Postgres reads the catalog from a PostgreSQL csi_items table.
type Postgres struct {
	db *sqlx.DB
}

// OpenPostgres connects, configures the pool and verifies the connection.
func OpenPostgres(cfg PostgresConfig) (*Postgres, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect to catalog database: %w", err)
	}

	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	db.SetConnMaxLifetime(pgConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), pgPingTimeout)
	defer cancel()
	if pingErr := db.PingContext(ctx); pingErr != nil {
		return nil, fmt.Errorf("ping catalog database: %w", pingErr)
	}

	return &Postgres{db: db}, nil
}

func (p *Postgres) Close() error { return p.db.Close() }

func (p *Postgres) LookupByCode(ctx context.Context, code string) (*domain.LineItem, error) {
	var item domain.LineItem
	query := `SELECT ` + itemColumns + ` FROM csi_items WHERE full_code = $1`

	if err := p.db.GetContext(ctx, &item, query, code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("lookup code %s: %w", code, err)
	}
	return &item, nil
}

func (p *Postgres) SearchByDescription(ctx context.Context, substring string) ([]domain.LineItem, error) {
	var items []domain.LineItem
	query := `SELECT ` + itemColumns + ` FROM csi_items
		WHERE lower(description) LIKE $1 OR description_ar LIKE $2
		ORDER BY full_code`

	pattern := "%" + strings.ToLower(substring) + "%"
	if err := p.db.SelectContext(ctx, &items, query, pattern, "%"+substring+"%"); err != nil {
		return nil, fmt.Errorf("search description: %w", err)
	}
	return items, nil
}

func (p *Postgres) SearchCandidates(ctx context.Context, q CandidateQuery) ([]domain.LineItem, error) {
	query, args := buildCandidateQuery(q, sqlx.DOLLAR)

	var items []domain.LineItem
	if err := p.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("search candidates: %w", err)
	}
	return items, nil
}

func (p *Postgres) AllItems(ctx context.Context) ([]domain.LineItem, error) {
	var items []domain.LineItem
	query := `SELECT ` + itemColumns + ` FROM csi_items ORDER BY full_code`

	if err := p.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return items, nil
}
