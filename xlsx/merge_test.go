package xlsx

import "testing"

func TestMergeIndexLookup(t *testing.T) {
	m := newMergeIndex([]MergeRange{
		{FromRow: 1, FromCol: 2, ToRow: 2, ToCol: 3},
		{FromRow: 5, FromCol: 1, ToRow: 1048576, ToCol: 1},
	})

	tests := []struct {
		row, col int
		want     Membership
	}{
		{1, 2, Membership{Merged: true, Anchor: true, ColSpan: 2, RowSpan: 2}},
		{1, 3, Membership{Merged: true, ColSpan: 2, RowSpan: 2}},
		{2, 2, Membership{Merged: true, ColSpan: 2, RowSpan: 2}},
		{2, 4, Membership{}},
		{1, 1, Membership{}},
		{5, 1, Membership{Merged: true, Anchor: true, ColSpan: 1, RowSpan: 1048572}},
		{900000, 1, Membership{Merged: true, ColSpan: 1, RowSpan: 1048572}},
	}
	for _, tt := range tests {
		if got := m.Lookup(tt.row, tt.col); got != tt.want {
			t.Errorf("Lookup(%d, %d) = %+v, want %+v", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestMergeRangeString(t *testing.T) {
	r := MergeRange{FromRow: 1, FromCol: 2, ToRow: 2, ToCol: 28}
	if got := r.String(); got != "B1:AB2" {
		t.Fatalf("String() = %q, want B1:AB2", got)
	}
}

func TestColumnName(t *testing.T) {
	tests := map[int]string{1: "A", 26: "Z", 27: "AA", 703: "AAA", 0: ""}
	for col, want := range tests {
		if got := ColumnName(col); got != want {
			t.Errorf("ColumnName(%d) = %q, want %q", col, got, want)
		}
	}
}
