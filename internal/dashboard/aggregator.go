package dashboard

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/hongminglow/warehouse-be/internal/models"
	"github.com/hongminglow/warehouse-be/internal/storage"
)

const (
	recentLimit   = 5
	shortageLimit = 5
)

// Aggregator assembles the dashboard view model from independent reads.
type Aggregator struct {
	store storage.DashboardStore
}

// NewAggregator constructs an aggregator over a dashboard store.
func NewAggregator(store storage.DashboardStore) *Aggregator {
	return &Aggregator{store: store}
}

// Build runs every dashboard read concurrently. The reads share no
// transaction; the first failure cancels the rest and is returned.
func (a *Aggregator) Build(ctx context.Context) (models.Dashboard, error) {
	var (
		d     models.Dashboard
		items []models.StockItem
	)
	g, ctx := errgroup.WithContext(ctx)

	counters := []struct {
		dst  *int64
		read func(context.Context) (int64, error)
	}{
		{&d.Stats.Branches, a.store.CountBranches},
		{&d.Stats.Suppliers, a.store.CountSuppliers},
		{&d.Stats.Barang, a.store.CountBarang},
		{&d.Stats.Warehouses, a.store.CountWarehouses},
		{&d.Stats.TotalStock, a.store.TotalWarehouseStock},
		{&d.Stats.TotalJamaah, a.store.CountJamaah},
	}
	for _, c := range counters {
		g.Go(func() error {
			n, err := c.read(ctx)
			if err != nil {
				return err
			}
			*c.dst = n
			return nil
		})
	}

	g.Go(func() error {
		var err error
		items, err = a.store.ListStockItems(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		d.Shortages, err = a.store.ListShortages(ctx, shortageLimit)
		return err
	})
	g.Go(func() error {
		var err error
		d.RecentIncoming, err = a.store.RecentIncoming(ctx, recentLimit)
		return err
	})
	g.Go(func() error {
		var err error
		d.RecentOutgoing, err = a.store.RecentOutgoing(ctx, recentLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return models.Dashboard{}, err
	}

	d.Stats.LowStockCount = len(d.Shortages)
	d.EquipmentItems, d.Stats.Equipment = Bucket(items)
	return d, nil
}

// Bucket splits items into available/low/out lists and totals them.
// Available and out keep the input order; low is ordered by quantity left.
func Bucket(items []models.StockItem) (models.EquipmentItems, models.EquipmentStats) {
	out := models.EquipmentItems{
		Available:  []models.StockItem{},
		LowStock:   []models.StockItem{},
		OutOfStock: []models.StockItem{},
	}
	var stats models.EquipmentStats
	for _, it := range items {
		stats.TotalStockQty += it.StockAkhir
		switch it.Status() {
		case models.StockAvailable:
			out.Available = append(out.Available, it)
		case models.StockLow:
			out.LowStock = append(out.LowStock, it)
		case models.StockOut:
			out.OutOfStock = append(out.OutOfStock, it)
		}
	}
	sort.SliceStable(out.LowStock, func(i, j int) bool {
		return out.LowStock[i].StockAkhir < out.LowStock[j].StockAkhir
	})

	stats.TotalItems = len(items)
	stats.AvailableItems = len(out.Available)
	stats.LowStockItems = len(out.LowStock)
	stats.OutOfStockItems = len(out.OutOfStock)
	return out, stats
}
