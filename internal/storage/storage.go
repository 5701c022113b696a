package storage

import (
	"context"
	"errors"

	"github.com/hongminglow/warehouse-be/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// AccountStore captures the account lookups login needs.
type AccountStore interface {
	// FindStaffByWhatsApp returns the first non-deleted users row for the number.
	FindStaffByWhatsApp(ctx context.Context, whatsapp string) (models.Account, error)
	// FindSuperAdminByWhatsApp returns the first super_admin row for the number.
	FindSuperAdminByWhatsApp(ctx context.Context, whatsapp string) (models.Account, error)
}

// DashboardStore captures the read-only aggregates behind the dashboard.
type DashboardStore interface {
	CountBranches(ctx context.Context) (int64, error)
	CountSuppliers(ctx context.Context) (int64, error)
	CountBarang(ctx context.Context) (int64, error)
	CountWarehouses(ctx context.Context) (int64, error)
	TotalWarehouseStock(ctx context.Context) (int64, error)
	CountJamaah(ctx context.Context) (int64, error)
	ListStockItems(ctx context.Context) ([]models.StockItem, error)
	ListShortages(ctx context.Context, limit int) ([]models.Shortage, error)
	RecentIncoming(ctx context.Context, limit int) ([]models.IncomingMovement, error)
	RecentOutgoing(ctx context.Context, limit int) ([]models.OutgoingMovement, error)
}
