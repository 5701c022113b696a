package models

import "time"

// StockStatus is the equipment bucket an item falls into.
type StockStatus int

const (
	StockAvailable StockStatus = iota + 1
	StockLow
	StockOut
)

func (s StockStatus) String() string {
	switch s {
	case StockAvailable:
		return "available"
	case StockLow:
		return "low"
	case StockOut:
		return "out"
	default:
		return "unknown"
	}
}

// ClassifyStock buckets an item by its on-hand quantity (stock_akhir) against
// its reorder threshold (stock_minimal). Zero or less is always out; reaching
// the threshold exactly counts as available.
func ClassifyStock(akhir, minimal int64) StockStatus {
	switch {
	case akhir <= 0:
		return StockOut
	case akhir >= minimal:
		return StockAvailable
	default:
		return StockLow
	}
}

// StockItem is one purchasing_barang row as the dashboard shows it.
type StockItem struct {
	IDBarang     int64  `json:"id_barang"`
	KodeBarang   string `json:"kode_barang"`
	NamaBarang   string `json:"nama_barang"`
	StockMinimal int64  `json:"stock_minimal"`
	StockAkhir   int64  `json:"stock_akhir"`
	Satuan       string `json:"satuan"`
}

// Status returns the item's equipment bucket.
func (i StockItem) Status() StockStatus {
	return ClassifyStock(i.StockAkhir, i.StockMinimal)
}

// Shortage is an item whose warehouse stock is under its threshold.
// CurrentStock is nil when the item has no warehouse_stock rows at all.
type Shortage struct {
	NamaBarang   string `json:"nama_barang"`
	StockMinimal int64  `json:"stock_minimal"`
	CurrentStock *int64 `json:"current_stock"`
}

// IncomingMovement is a purchasing_incoming row joined with display names.
type IncomingMovement struct {
	ID           int64      `json:"id"`
	IDBarang     int64      `json:"id_barang"`
	Jumlah       int64      `json:"jumlah"`
	TanggalMasuk *time.Time `json:"tanggal_masuk"`
	NamaBarang   *string    `json:"nama_barang"`
	SupplierName *string    `json:"supplier_name"`
	LocationName *string    `json:"location_name"`
}

// OutgoingMovement is a purchasing_barang_keluar row joined with display names.
type OutgoingMovement struct {
	ID            int64      `json:"id"`
	IDBarang      int64      `json:"id_barang"`
	Jumlah        int64      `json:"jumlah"`
	TanggalKeluar *time.Time `json:"tanggal_keluar"`
	NamaBarang    *string    `json:"nama_barang"`
	LocationName  *string    `json:"location_name"`
}

// EquipmentStats summarises the equipment buckets.
type EquipmentStats struct {
	TotalItems      int   `json:"totalItems"`
	AvailableItems  int   `json:"availableItems"`
	LowStockItems   int   `json:"lowStockItems"`
	OutOfStockItems int   `json:"outOfStockItems"`
	TotalStockQty   int64 `json:"totalStockQty"`
}

// EquipmentItems holds the materialized bucket lists.
type EquipmentItems struct {
	Available  []StockItem `json:"available"`
	LowStock   []StockItem `json:"lowStock"`
	OutOfStock []StockItem `json:"outOfStock"`
}

// DashboardStats are the headline counters.
type DashboardStats struct {
	Branches      int64          `json:"branches"`
	Suppliers     int64          `json:"suppliers"`
	Barang        int64          `json:"barang"`
	Warehouses    int64          `json:"warehouses"`
	TotalStock    int64          `json:"totalStock"`
	LowStockCount int            `json:"lowStockCount"`
	TotalJamaah   int64          `json:"totalJamaah"`
	Equipment     EquipmentStats `json:"equipment"`
}

// Dashboard is the read-only view model for the home page.
type Dashboard struct {
	Stats          DashboardStats     `json:"stats"`
	Shortages      []Shortage         `json:"lowStock"`
	RecentIncoming []IncomingMovement `json:"recentIncoming"`
	RecentOutgoing []OutgoingMovement `json:"recentOutgoing"`
	EquipmentItems EquipmentItems     `json:"equipmentItems"`
}
