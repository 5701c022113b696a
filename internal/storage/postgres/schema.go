package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// querier is the slice of pgxpool.Pool / pgx.Conn the schema probe needs.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// ResolveColumn returns the first candidate column that exists on table in the
// current schema. ok is false when none of them exist.
func ResolveColumn(ctx context.Context, q querier, table string, candidates []string) (string, bool, error) {
	if len(candidates) == 0 {
		return "", false, nil
	}
	const query = `
	SELECT column_name::text
	FROM information_schema.columns
	WHERE table_schema = current_schema()
	  AND table_name::text = $1
	  AND column_name::text = ANY($2::text[]);
	`
	rows, err := q.Query(ctx, query, table, candidates)
	if err != nil {
		return "", false, fmt.Errorf("query columns of %s: %w", table, err)
	}
	existing, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return "", false, fmt.Errorf("scan columns of %s: %w", table, err)
	}
	col, ok := pickColumn(candidates, existing)
	return col, ok, nil
}

// pickColumn keeps the caller's preference order, not the catalog's.
func pickColumn(candidates, existing []string) (string, bool) {
	present := make(map[string]struct{}, len(existing))
	for _, name := range existing {
		present[name] = struct{}{}
	}
	for _, name := range candidates {
		if _, ok := present[name]; ok {
			return name, true
		}
	}
	return "", false
}
