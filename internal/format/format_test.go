package format

import "testing"

func TestPrice(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1000, "1,000"},
		{43250.77, "43,251"},
		{999.999, "1,000.00"}, // two-decimal path: the integer path starts at exactly 1000
		{42.5, "42.50"},
		{1, "1.00"},
		{0.5, "0.500000"},
		{0.000012, "0.000012"},
	}
	for _, tt := range tests {
		if got := Price(tt.in); got != tt.want {
			t.Errorf("Price(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCompact(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2.5e12, "2.50T"},
		{1_500_000_000, "1.50B"},
		{1e6, "1.00M"},
		{999_999, "999,999"},
		{999, "999"},
		{0, "0"},
	}
	for _, tt := range tests {
		if got := Compact(tt.in); got != tt.want {
			t.Errorf("Compact(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestChange(t *testing.T) {
	if got := Change(4.256); got != "+4.26%" {
		t.Errorf("Change(4.256) = %q", got)
	}
	if got := Change(-1.2); got != "-1.20%" {
		t.Errorf("Change(-1.2) = %q", got)
	}
	if got := Change(0); got != "+0.00%" {
		t.Errorf("Change(0) = %q", got)
	}
}
