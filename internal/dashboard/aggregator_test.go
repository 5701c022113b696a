package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/hongminglow/warehouse-be/internal/models"
)

type fakeStore struct {
	items     []models.StockItem
	shortages []models.Shortage
	incoming  []models.IncomingMovement
	outgoing  []models.OutgoingMovement
	failOn    string

	// each limit is written by a single goroutine
	shortageLimit int
	incomingLimit int
	outgoingLimit int
}

var errBoom = errors.New("query failed")

func (f *fakeStore) maybeFail(name string) error {
	if f.failOn == name {
		return errBoom
	}
	return nil
}

func (f *fakeStore) CountBranches(context.Context) (int64, error) {
	return 4, f.maybeFail("branches")
}

func (f *fakeStore) CountSuppliers(context.Context) (int64, error) {
	return 7, f.maybeFail("suppliers")
}

func (f *fakeStore) CountBarang(context.Context) (int64, error) {
	return int64(len(f.items)), f.maybeFail("barang")
}

func (f *fakeStore) CountWarehouses(context.Context) (int64, error) {
	return 2, f.maybeFail("warehouses")
}

func (f *fakeStore) TotalWarehouseStock(context.Context) (int64, error) {
	return 120, f.maybeFail("stock")
}

func (f *fakeStore) CountJamaah(context.Context) (int64, error) {
	return 38, f.maybeFail("jamaah")
}

func (f *fakeStore) ListStockItems(context.Context) ([]models.StockItem, error) {
	return f.items, f.maybeFail("items")
}

func (f *fakeStore) ListShortages(_ context.Context, limit int) ([]models.Shortage, error) {
	f.shortageLimit = limit
	return f.shortages, f.maybeFail("shortages")
}

func (f *fakeStore) RecentIncoming(_ context.Context, limit int) ([]models.IncomingMovement, error) {
	f.incomingLimit = limit
	return f.incoming, f.maybeFail("incoming")
}

func (f *fakeStore) RecentOutgoing(_ context.Context, limit int) ([]models.OutgoingMovement, error) {
	f.outgoingLimit = limit
	return f.outgoing, f.maybeFail("outgoing")
}

func sampleItems() []models.StockItem {
	return []models.StockItem{
		{IDBarang: 1, NamaBarang: "Buku Doa", StockMinimal: 5, StockAkhir: 3},
		{IDBarang: 2, NamaBarang: "Ihram", StockMinimal: 10, StockAkhir: 10},
		{IDBarang: 3, NamaBarang: "Koper", StockMinimal: 10, StockAkhir: 9},
		{IDBarang: 4, NamaBarang: "Mukena", StockMinimal: 5, StockAkhir: 0},
		{IDBarang: 5, NamaBarang: "Payung", StockMinimal: 0, StockAkhir: 0},
		{IDBarang: 6, NamaBarang: "Sajadah", StockMinimal: 2, StockAkhir: 40},
	}
}

func ids(items []models.StockItem) []int64 {
	out := make([]int64, 0, len(items))
	for _, it := range items {
		out = append(out, it.IDBarang)
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBucket(t *testing.T) {
	items, stats := Bucket(sampleItems())

	if got := ids(items.Available); !equalIDs(got, []int64{2, 6}) {
		t.Errorf("available = %v, want [2 6]", got)
	}
	// Low is ordered by remaining quantity: Buku Doa (3) before Koper (9).
	if got := ids(items.LowStock); !equalIDs(got, []int64{1, 3}) {
		t.Errorf("low = %v, want [1 3]", got)
	}
	if got := ids(items.OutOfStock); !equalIDs(got, []int64{4, 5}) {
		t.Errorf("out = %v, want [4 5]", got)
	}

	want := models.EquipmentStats{TotalItems: 6, AvailableItems: 2, LowStockItems: 2, OutOfStockItems: 2, TotalStockQty: 62}
	if stats != want {
		t.Errorf("stats = %+v, want %+v", stats, want)
	}
}

func TestBucketEmpty(t *testing.T) {
	items, stats := Bucket(nil)
	if items.Available == nil || items.LowStock == nil || items.OutOfStock == nil {
		t.Fatal("bucket lists should be empty, not nil")
	}
	if stats != (models.EquipmentStats{}) {
		t.Fatalf("stats = %+v, want zero", stats)
	}
}

func TestBuild(t *testing.T) {
	name := "Koper"
	store := &fakeStore{
		items:     sampleItems(),
		shortages: []models.Shortage{{NamaBarang: "Koper", StockMinimal: 10}, {NamaBarang: "Mukena", StockMinimal: 5}},
		incoming:  []models.IncomingMovement{{ID: 1, NamaBarang: &name}},
		outgoing:  []models.OutgoingMovement{{ID: 2}, {ID: 3}},
	}

	d, err := NewAggregator(store).Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	s := d.Stats
	if s.Branches != 4 || s.Suppliers != 7 || s.Barang != 6 || s.Warehouses != 2 || s.TotalStock != 120 || s.TotalJamaah != 38 {
		t.Errorf("counters = %+v", s)
	}
	if s.LowStockCount != 2 {
		t.Errorf("LowStockCount = %d, want 2", s.LowStockCount)
	}
	if s.Equipment.AvailableItems != 2 || s.Equipment.OutOfStockItems != 2 {
		t.Errorf("equipment = %+v", s.Equipment)
	}
	if len(d.RecentIncoming) != 1 || len(d.RecentOutgoing) != 2 {
		t.Errorf("recent movements not carried: %d in, %d out", len(d.RecentIncoming), len(d.RecentOutgoing))
	}
	if store.shortageLimit != 5 || store.incomingLimit != 5 || store.outgoingLimit != 5 {
		t.Errorf("limits = %d/%d/%d, want 5 each", store.shortageLimit, store.incomingLimit, store.outgoingLimit)
	}
}

func TestBuildFailsOnAnyQuery(t *testing.T) {
	for _, name := range []string{"branches", "suppliers", "barang", "warehouses", "stock", "jamaah", "items", "shortages", "incoming", "outgoing"} {
		t.Run(name, func(t *testing.T) {
			store := &fakeStore{items: sampleItems(), failOn: name}
			d, err := NewAggregator(store).Build(context.Background())
			if !errors.Is(err, errBoom) {
				t.Fatalf("Build err = %v, want %v", err, errBoom)
			}
			if d.Stats.Branches != 0 || d.EquipmentItems.Available != nil {
				t.Fatalf("partial dashboard returned: %+v", d)
			}
		})
	}
}
