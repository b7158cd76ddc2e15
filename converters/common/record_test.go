package common

import "testing"

func TestRecordGet(t *testing.T) {
	rec := NewRecord(
		[]string{"ID", " Title ", "Sector", "Cost Note", "ID"},
		[]string{"7", "  Farmer's Market Helper ", "   ", "", "dup"},
	)

	tests := []struct {
		column string
		want   string
		ok     bool
	}{
		{"ID", "7", true},
		{"Title", "  Farmer's Market Helper ", true},
		{"Sector", "", false},    // whitespace only
		{"Cost Note", "", false}, // empty
		{"Mentor Bio", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			got, ok := rec.Get(tt.column)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Get(%q) = (%q, %v), want (%q, %v)", tt.column, got, ok, tt.want, tt.ok)
			}
		})
	}

	if !rec.Has("Cost Note") {
		t.Error("expected Has(Cost Note) to be true")
	}
	if rec.Has("Mentor Bio") {
		t.Error("expected Has(Mentor Bio) to be false")
	}
}

func TestRecordShortRow(t *testing.T) {
	rec := NewRecord([]string{"ID", "Title", "Safety Note"}, []string{"1", "Beekeeping"})
	if _, ok := rec.Get("Safety Note"); ok {
		t.Error("expected cell beyond row length to be absent")
	}
	if !rec.Has("Safety Note") {
		t.Error("expected header column to exist")
	}
}
