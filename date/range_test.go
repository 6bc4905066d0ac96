package date

import "testing"

func TestRange_Contains(t *testing.T) {
	tests := []struct {
		r    Range
		d    string
		want bool
	}{
		{Year(2024), "2024-01-01", true},
		{Year(2024), "2024-12-31", true},
		{Year(2024), "2023-12-31", false},
		{Year(2024), "2025-01-01", false},
		{Range{From: MustParse("2024-03-01")}, "2030-01-01", true},
		{Range{From: MustParse("2024-03-01")}, "2024-02-29", false},
		{Range{To: MustParse("2024-03-01")}, "1999-01-01", true},
		{Range{To: MustParse("2024-03-01")}, "2024-03-02", false},
		{Range{}, "2024-03-02", true},
	}
	for _, tt := range tests {
		if got := tt.r.Contains(MustParse(tt.d)); got != tt.want {
			t.Errorf("%v.Contains(%s) = %v, want %v", tt.r, tt.d, got, tt.want)
		}
	}
}

func TestRange_IsValid(t *testing.T) {
	if !Year(2024).IsValid() {
		t.Error("Year(2024) should be valid")
	}
	if (Range{From: MustParse("2024-03-02"), To: MustParse("2024-03-01")}).IsValid() {
		t.Error("a range ending before it starts should be invalid")
	}
	if !(Range{To: MustParse("2024-03-01")}).IsValid() {
		t.Error("an open range should be valid")
	}
}

func TestRange_String(t *testing.T) {
	tests := []struct {
		r    Range
		want string
	}{
		{Year(2024), "2024-01-01 to 2024-12-31"},
		{Range{From: MustParse("2024-03-01")}, "since 2024-03-01"},
		{Range{To: MustParse("2024-03-01")}, "until 2024-03-01"},
		{Range{}, "all time"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
