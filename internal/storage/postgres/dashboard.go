package postgres

import (
	"context"
	"fmt"

	"github.com/hongminglow/warehouse-be/internal/models"
	"github.com/jackc/pgx/v5"
)

// CountBranches counts all branches.
func (s *Store) CountBranches(ctx context.Context) (int64, error) {
	return s.count(ctx, "branches", `SELECT COUNT(*) FROM branches;`)
}

// CountSuppliers counts all purchasing suppliers.
func (s *Store) CountSuppliers(ctx context.Context) (int64, error) {
	return s.count(ctx, "suppliers", `SELECT COUNT(*) FROM purchasing_suppliers;`)
}

// CountBarang counts all items.
func (s *Store) CountBarang(ctx context.Context) (int64, error) {
	return s.count(ctx, "barang", `SELECT COUNT(*) FROM purchasing_barang;`)
}

// CountWarehouses counts all warehouse locations.
func (s *Store) CountWarehouses(ctx context.Context) (int64, error) {
	return s.count(ctx, "warehouses", `SELECT COUNT(*) FROM warehouse_locations;`)
}

// TotalWarehouseStock sums quantity over warehouse_stock; empty is 0.
func (s *Store) TotalWarehouseStock(ctx context.Context) (int64, error) {
	return s.count(ctx, "total stock", `SELECT COALESCE(SUM(quantity), 0)::bigint FROM warehouse_stock;`)
}

// CountJamaah counts distinct pilgrim names on live order details, leaving
// out infant room types and blank names. LIKE is case-sensitive in Postgres.
func (s *Store) CountJamaah(ctx context.Context) (int64, error) {
	const query = `
	SELECT COUNT(DISTINCT od.nama_jamaah)
	FROM order_details od
	LEFT JOIN room_types rt ON od.room_type_id = rt.id
	WHERE od.deleted_at IS NULL
	  AND (rt.tipe_kamar IS NULL OR rt.tipe_kamar NOT LIKE '%Infant%')
	  AND od.nama_jamaah IS NOT NULL
	  AND od.nama_jamaah <> '';
	`
	return s.count(ctx, "jamaah", query)
}

// ListStockItems returns every item with its stock levels, ordered by name.
func (s *Store) ListStockItems(ctx context.Context) ([]models.StockItem, error) {
	const query = `
	SELECT id_barang, COALESCE(kode_barang, ''), COALESCE(nama_barang, ''),
	       COALESCE(stock_minimal, 0)::bigint, COALESCE(stock_akhir, 0)::bigint, COALESCE(satuan, '')
	FROM purchasing_barang
	ORDER BY nama_barang ASC, id_barang ASC;
	`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stock items: %w", err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.StockItem, error) {
		var it models.StockItem
		err := row.Scan(&it.IDBarang, &it.KodeBarang, &it.NamaBarang, &it.StockMinimal, &it.StockAkhir, &it.Satuan)
		return it, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan stock items: %w", err)
	}
	return items, nil
}

// ListShortages returns items whose summed warehouse availability is under
// their threshold, including items with no warehouse rows.
func (s *Store) ListShortages(ctx context.Context, limit int) ([]models.Shortage, error) {
	const query = `
	SELECT COALESCE(pb.nama_barang, ''), COALESCE(pb.stock_minimal, 0)::bigint, SUM(ws.available_qty)::bigint AS current_stock
	FROM purchasing_barang pb
	LEFT JOIN warehouse_stock ws ON pb.id_barang = ws.id_barang
	GROUP BY pb.id_barang, pb.nama_barang, pb.stock_minimal
	HAVING SUM(ws.available_qty) IS NULL OR SUM(ws.available_qty) < pb.stock_minimal
	ORDER BY pb.nama_barang ASC
	LIMIT $1;
	`
	rows, err := s.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list shortages: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Shortage, error) {
		var sh models.Shortage
		err := row.Scan(&sh.NamaBarang, &sh.StockMinimal, &sh.CurrentStock)
		return sh, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan shortages: %w", err)
	}
	return out, nil
}

// RecentIncoming returns the newest purchasing_incoming rows with item,
// supplier and location names.
func (s *Store) RecentIncoming(ctx context.Context, limit int) ([]models.IncomingMovement, error) {
	query := fmt.Sprintf(`
	SELECT pi.id, pi.id_barang, COALESCE(pi.jumlah, 0)::bigint, pi.tanggal_masuk,
	       pb.nama_barang, ps.name, wl.%s
	FROM purchasing_incoming pi
	LEFT JOIN purchasing_barang pb ON pi.id_barang = pb.id_barang
	LEFT JOIN purchasing_suppliers ps ON pi.supplier_id = ps.id
	LEFT JOIN warehouse_locations wl ON pi.warehouse_id = wl.id
	ORDER BY pi.tanggal_masuk DESC NULLS LAST, pi.id DESC
	LIMIT $1;
	`, s.locationColumnSQL())
	rows, err := s.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent incoming: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.IncomingMovement, error) {
		var m models.IncomingMovement
		err := row.Scan(&m.ID, &m.IDBarang, &m.Jumlah, &m.TanggalMasuk, &m.NamaBarang, &m.SupplierName, &m.LocationName)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan recent incoming: %w", err)
	}
	return out, nil
}

// RecentOutgoing returns the newest purchasing_barang_keluar rows with item
// and location names.
func (s *Store) RecentOutgoing(ctx context.Context, limit int) ([]models.OutgoingMovement, error) {
	query := fmt.Sprintf(`
	SELECT pbk.id, pbk.id_barang, COALESCE(pbk.jumlah, 0)::bigint, pbk.tanggal_keluar,
	       pb.nama_barang, wl.%s
	FROM purchasing_barang_keluar pbk
	LEFT JOIN purchasing_barang pb ON pbk.id_barang = pb.id_barang
	LEFT JOIN warehouse_locations wl ON pbk.warehouse_id = wl.id
	ORDER BY pbk.tanggal_keluar DESC NULLS LAST, pbk.id DESC
	LIMIT $1;
	`, s.locationColumnSQL())
	rows, err := s.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent outgoing: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.OutgoingMovement, error) {
		var m models.OutgoingMovement
		err := row.Scan(&m.ID, &m.IDBarang, &m.Jumlah, &m.TanggalKeluar, &m.NamaBarang, &m.LocationName)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan recent outgoing: %w", err)
	}
	return out, nil
}

func (s *Store) count(ctx context.Context, what, query string) (int64, error) {
	var n int64
	if err := s.pool.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", what, err)
	}
	return n, nil
}

func (s *Store) locationColumnSQL() string {
	col := s.locationNameCol
	if col == "" {
		col = defaultLocationNameCol
	}
	return pgx.Identifier{col}.Sanitize()
}
