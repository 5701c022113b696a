package postgres

import "testing"

func TestPickColumn(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		existing   []string
		want       string
		wantOK     bool
	}{
		{"first candidate wins", []string{"location_name", "nama_lokasi"}, []string{"nama_lokasi", "location_name"}, "location_name", true},
		{"falls through to second", []string{"location_name", "nama_lokasi"}, []string{"id", "nama_lokasi"}, "nama_lokasi", true},
		{"none present", []string{"location_name", "nama_lokasi"}, []string{"id", "kode"}, "", false},
		{"empty table", []string{"location_name"}, nil, "", false},
		{"no candidates", nil, []string{"location_name"}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := pickColumn(tt.candidates, tt.existing)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("pickColumn() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
