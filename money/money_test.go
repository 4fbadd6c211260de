package money

import "testing"

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "Rp 0"},
		{500, "Rp 500"},
		{5000, "Rp 5.000"},
		{65000, "Rp 65.000"},
		{305000, "Rp 305.000"},
		{1234567, "Rp 1.234.567"},
		{-5000, "Rp -5.000"},
		{-100, "Rp -100"},
	}
	for _, tt := range tests {
		if got := FormatRupiah(tt.amount); got != tt.want {
			t.Errorf("FormatRupiah(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}
