package postgres

import (
	"context"
	"errors"

	"github.com/hongminglow/warehouse-be/internal/models"
	"github.com/hongminglow/warehouse-be/internal/storage"
	"github.com/jackc/pgx/v5"
)

// FindStaffByWhatsApp fetches the first non-deleted users row for the number,
// with its branch name.
func (s *Store) FindStaffByWhatsApp(ctx context.Context, whatsapp string) (models.Account, error) {
	const query = `
	SELECT u.id, u.name, u.whatsapp, u.password, COALESCE(u.role_name, ''), u.branch_id, b.nama_cabang, u.jabatan
	FROM users u
	LEFT JOIN branches b ON u.branch_id = b.id
	WHERE u.whatsapp = $1 AND u.deleted_at IS NULL
	ORDER BY u.id
	LIMIT 1;
	`
	row := s.pool.QueryRow(ctx, query, whatsapp)
	return scanAccount(row, models.SourceStaff)
}

// FindSuperAdminByWhatsApp fetches the first super_admin row for the number.
// super_admin has no deletion marker, so none is applied.
func (s *Store) FindSuperAdminByWhatsApp(ctx context.Context, whatsapp string) (models.Account, error) {
	const query = `
	SELECT sa.id, sa.name, sa.whatsapp, sa.password, ''::text, NULL::bigint, NULL::text, NULL::text
	FROM super_admin sa
	WHERE sa.whatsapp = $1
	ORDER BY sa.id
	LIMIT 1;
	`
	row := s.pool.QueryRow(ctx, query, whatsapp)
	return scanAccount(row, models.SourceSuperAdmin)
}

func scanAccount(row pgx.Row, source models.AccountSource) (models.Account, error) {
	acc := models.Account{Source: source}
	if err := row.Scan(&acc.ID, &acc.Name, &acc.WhatsApp, &acc.PasswordHash, &acc.RoleName, &acc.BranchID, &acc.BranchName, &acc.Jabatan); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Account{}, storage.ErrNotFound
		}
		return models.Account{}, err
	}
	return acc, nil
}
