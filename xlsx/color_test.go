package xlsx

import "testing"

func TestResolveDirect(t *testing.T) {
	r := NewResolver(nil, nil)
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"FF123abc", "#123ABC", true},
		{"123456", "#123456", true},
		{"#FFAABBCC", "#AABBCC", true},
		{"00000000", White, true},
		{"zz", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := r.Resolve(RGBColor(tt.in))
		if got != tt.want || ok != tt.ok {
			t.Errorf("Resolve(RGB %q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestResolveIndexed(t *testing.T) {
	r := NewResolver(nil, nil)
	tests := []struct {
		index int
		want  string
		ok    bool
	}{
		{0, "#000000", true},
		{2, "#FF0000", true},
		{22, "#C0C0C0", true},
		{63, White, true},
		{64, Black, true},
		{80, "", false},
		{-1, "", false},
	}
	for _, tt := range tests {
		got, ok := r.Resolve(IndexedColor(tt.index))
		if got != tt.want || ok != tt.ok {
			t.Errorf("Resolve(indexed %d) = %q, %v; want %q, %v", tt.index, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCustomPaletteReplacesDefault(t *testing.T) {
	r := NewResolver(nil, []string{"FF00FF00"})
	if got, ok := r.Resolve(IndexedColor(0)); !ok || got != "#00FF00" {
		t.Fatalf("indexed 0 = %q, %v; want #00FF00", got, ok)
	}
	if got, ok := r.Resolve(IndexedColor(2)); ok {
		t.Fatalf("indexed 2 resolved to %q from a one-entry palette", got)
	}
	if got, _ := r.Resolve(IndexedColor(64)); got != Black {
		t.Fatalf("indexed 64 = %q, want %q", got, Black)
	}
}

func TestResolveTheme(t *testing.T) {
	r := NewResolver([]string{"FFFFFF", "000000", "E7E6E6", "44546A", "4472C4"}, nil)
	tests := []struct {
		index int
		tint  float64
		want  string
		ok    bool
	}{
		{0, 0, "#FFFFFF", true},
		{1, 0, "#000000", true},
		{4, 0, "#4472C4", true},
		{1, 0.5, "#808080", true},
		{0, -0.5, "#808080", true},
		{0, -1, "#000000", true},
		{1, 1, "#FFFFFF", true},
		{7, 0, "", false},
	}
	for _, tt := range tests {
		got, ok := r.Resolve(ThemeColor(tt.index, tt.tint))
		if got != tt.want || ok != tt.ok {
			t.Errorf("Resolve(theme %d, tint %v) = %q, %v; want %q, %v", tt.index, tt.tint, got, ok, tt.want, tt.ok)
		}
	}
}

func TestResolveEmpty(t *testing.T) {
	r := NewResolver(nil, nil)
	if got, ok := r.Resolve(ColorSpec{}); ok {
		t.Fatalf("empty color resolved to %q", got)
	}
	if (ColorSpec{}).Defined() {
		t.Fatal("empty color reports defined")
	}
}

func TestDefaultPaletteIsACopy(t *testing.T) {
	p := DefaultPalette()
	if len(p) != 64 {
		t.Fatalf("palette has %d entries, want 64", len(p))
	}
	p[2] = "FF123456"
	if got, _ := NewResolver(nil, nil).Resolve(IndexedColor(2)); got != "#FF0000" {
		t.Fatalf("modifying the copy changed the standard palette: %q", got)
	}
}
