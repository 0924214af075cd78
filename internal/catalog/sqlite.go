package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/sitecrew/estimator/internal/domain"
)

const itemColumns = `full_code, description, description_ar, main_div_name,
	unit, daily_output, man_hours, equip_hours, crew_structure`

// SQLite reads the catalog from the csi_items table of a SQLite file, the
// format the Excel ETL produces.
type SQLite struct {
	db *sqlx.DB
}

// OpenSQLite opens the catalog database read-only and verifies it is
// reachable.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sqlx.Connect("sqlite3", fmt.Sprintf("file:%s?mode=ro", path))
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error { return s.db.Close() }

func (s *SQLite) LookupByCode(ctx context.Context, code string) (*domain.LineItem, error) {
	var item domain.LineItem
	query := `SELECT ` + itemColumns + ` FROM csi_items WHERE full_code = ?`

	if err := s.db.GetContext(ctx, &item, query, code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("lookup code %s: %w", code, err)
	}
	return &item, nil
}

func (s *SQLite) SearchByDescription(ctx context.Context, substring string) ([]domain.LineItem, error) {
	var items []domain.LineItem
	query := `SELECT ` + itemColumns + ` FROM csi_items
		WHERE lower(description) LIKE ? OR description_ar LIKE ?
		ORDER BY full_code`
	pattern := "%" + strings.ToLower(substring) + "%"

	if err := s.db.SelectContext(ctx, &items, query, pattern, "%"+substring+"%"); err != nil {
		return nil, fmt.Errorf("search description: %w", err)
	}
	return items, nil
}

func (s *SQLite) SearchCandidates(ctx context.Context, q CandidateQuery) ([]domain.LineItem, error) {
	query, args := buildCandidateQuery(q, sqlx.QUESTION)

	var items []domain.LineItem
	if err := s.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("search candidates: %w", err)
	}
	return items, nil
}

func (s *SQLite) AllItems(ctx context.Context) ([]domain.LineItem, error) {
	var items []domain.LineItem
	query := `SELECT ` + itemColumns + ` FROM csi_items ORDER BY full_code`

	if err := s.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return items, nil
}

// buildCandidateQuery assembles the pool query shared by the SQL backends.
// bindType selects ? or $N placeholders.
func buildCandidateQuery(q CandidateQuery, bindType int) (string, []interface{}) {
	var (
		sb   strings.Builder
		args []interface{}
	)

	sb.WriteString(`SELECT ` + itemColumns + ` FROM csi_items
		WHERE daily_output IS NOT NULL AND man_hours IS NOT NULL`)

	if q.CodePrefix != "" {
		sb.WriteString(` AND full_code LIKE ?`)
		args = append(args, q.CodePrefix+"%")
	}

	if len(q.Terms) > 0 {
		clauses := make([]string, 0, len(q.Terms))
		for _, term := range q.Terms {
			t := strings.TrimSpace(term)
			if t == "" {
				continue
			}
			clauses = append(clauses, `lower(description) LIKE ? OR description_ar LIKE ?`)
			args = append(args, "%"+strings.ToLower(t)+"%", "%"+t+"%")
		}
		if len(clauses) > 0 {
			sb.WriteString(` AND (` + strings.Join(clauses, ` OR `) + `)`)
		}
	}

	sb.WriteString(` ORDER BY full_code`)
	if q.Limit > 0 {
		sb.WriteString(` LIMIT ?`)
		args = append(args, q.Limit)
	}

	return sqlx.Rebind(bindType, sb.String()), args
}
