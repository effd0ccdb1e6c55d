package cgt

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "01/02/2025", want: NewDate(2025, time.February, 1)},
		{in: "1/7/2024", want: NewDate(2024, time.July, 1)},
		{in: " 15/03/2023 ", want: NewDate(2023, time.March, 15)},
		{in: "2025-02-01", wantErr: true},
		{in: "31/02/2025", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDate(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) = %v, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDateString(t *testing.T) {
	d := NewDate(2024, time.July, 1)
	if got := d.String(); got != "01/07/2024" {
		t.Errorf("String() = %q, want %q", got, "01/07/2024")
	}
}

func TestDaysUntil(t *testing.T) {
	tests := []struct {
		from, to string
		want     int
	}{
		{"01/06/2024", "01/02/2025", 245},
		{"01/01/2024", "01/01/2025", 366}, // 2024 is a leap year
		{"01/02/2025", "01/06/2024", -245},
		{"01/02/2025", "01/02/2025", 0},
	}
	for _, tc := range tests {
		if got := MustParse(tc.from).DaysUntil(MustParse(tc.to)); got != tc.want {
			t.Errorf("DaysUntil(%s, %s) = %d, want %d", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestAddYears(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"01/01/2024", "01/01/2025"},
		{"29/02/2024", "01/03/2025"}, // overflow normalizes forward
		{"30/06/2024", "30/06/2025"},
	}
	for _, tc := range tests {
		if got := MustParse(tc.in).AddYears(1).String(); got != tc.want {
			t.Errorf("AddYears(%s, 1) = %s, want %s", tc.in, got, tc.want)
		}
	}
}
