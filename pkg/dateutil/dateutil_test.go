package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name             string
		day, month, year int
		want             string
	}{
		{"Regular date", 15, 1, 2025, "15/01/2025"},
		{"Leap day in leap year", 29, 2, 2024, "29/02/2024"},
		{"Leap day in 2000", 29, 2, 2000, "29/02/2000"},
		{"Leap day in non-leap year", 29, 2, 2023, "01/01/2000"},
		{"Leap day in 1900", 29, 2, 1900, "01/01/2000"},
		{"31st of April", 31, 4, 2023, "01/01/2000"},
		{"31st of December", 31, 12, 2023, "31/12/2023"},
		{"Day zero", 0, 1, 2023, "01/01/2000"},
		{"Day 32", 32, 1, 2023, "01/01/2000"},
		{"Month 13", 1, 13, 2023, "01/01/2000"},
		{"Month zero", 1, 0, 2023, "01/01/2000"},
		{"Three-digit year", 1, 1, 999, "01/01/2000"},
		{"Five-digit year", 1, 1, 10000, "01/01/2000"},
		{"First supported day", 1, 1, 1000, "01/01/1000"},
		{"Last supported day", 31, 12, 9999, "31/12/9999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.day, tt.month, tt.year).String()

			if got != tt.want {
				t.Errorf("New(%d, %d, %d) = %v, want %v", tt.day, tt.month, tt.year, got, tt.want)
			}
		})
	}
}

func TestIsValidMatchesTimePackage(t *testing.T) {
	// time.Date normalizes overflowing days, so a round trip detects invalid dates
	for _, year := range []int{1600, 1900, 2000, 2023, 2024, 2100} {
		for month := 1; month <= 12; month++ {
			for day := 1; day <= 31; day++ {
				tm := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
				want := tm.Day() == day && int(tm.Month()) == month

				if got := IsValid(day, month, year); got != want {
					t.Errorf("IsValid(%d, %d, %d) = %v, want %v", day, month, year, got, want)
				}
			}
		}
	}
}

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{2023, false},
		{2024, true},
		{1900, false},
		{2000, true},
		{2100, false},
		{2400, true},
	}

	for _, tt := range tests {
		if got := IsLeapYear(tt.year); got != tt.want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestSetters(t *testing.T) {
	d := New(31, 1, 2023)

	d.SetMonth(2)
	if d.String() != "31/01/2023" {
		t.Errorf("SetMonth(2) on 31/01/2023 should be ignored, got %v", d)
	}

	d.SetMonth(3)
	if d.String() != "31/03/2023" {
		t.Errorf("SetMonth(3) = %v, want 31/03/2023", d)
	}

	d.SetDay(32)
	if d.Day() != 31 {
		t.Errorf("SetDay(32) should be ignored, got day %d", d.Day())
	}

	leap := New(29, 2, 2024)
	leap.SetYear(2023)
	if leap.Year() != 2024 {
		t.Errorf("SetYear(2023) on 29/02/2024 should be ignored, got %v", leap)
	}

	leap.SetYear(2028)
	if leap.String() != "29/02/2028" {
		t.Errorf("SetYear(2028) = %v, want 29/02/2028", leap)
	}

	leap.SetYear(10000)
	if leap.Year() != 2028 {
		t.Errorf("SetYear(10000) should be ignored, got %v", leap)
	}
}

func TestCopyIsIndependent(t *testing.T) {
	a := New(10, 5, 2023)
	b := a
	b.SetDay(20)

	if a.Day() != 10 {
		t.Errorf("modifying a copy changed the original: %v", a)
	}
}

func TestBeforeAfter(t *testing.T) {
	dates := []Date{
		New(1, 1, 2023),
		New(2, 1, 2023),
		New(1, 2, 2023),
		New(31, 12, 2022),
		New(1, 1, 2024),
		New(29, 2, 2024),
	}

	for _, a := range dates {
		if a.Before(a) || a.After(a) {
			t.Errorf("%v must be neither before nor after itself", a)
		}

		for _, b := range dates {
			if a.Before(b) != b.After(a) {
				t.Errorf("%v.Before(%v) = %v, but %v.After(%v) = %v",
					a, b, a.Before(b), b, a, b.After(a))
			}

			want := a.Time().Before(b.Time())
			if got := a.Before(b); got != want {
				t.Errorf("%v.Before(%v) = %v, want %v", a, b, got, want)
			}
		}
	}
}

func TestDifference(t *testing.T) {
	tests := []struct {
		name string
		a, b Date
		want int
	}{
		{"Same day", New(15, 1, 2023), New(15, 1, 2023), 0},
		{"Two weeks", New(1, 1, 2023), New(15, 1, 2023), 14},
		{"Across non-leap February", New(28, 2, 2023), New(1, 3, 2023), 1},
		{"Across leap February", New(28, 2, 2024), New(1, 3, 2024), 2},
		{"Leap year", New(1, 1, 2000), New(1, 1, 2001), 366},
		{"Non-leap year", New(1, 1, 2001), New(1, 1, 2002), 365},
		{"Century without leap day", New(1, 1, 1900), New(1, 1, 1901), 365},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Difference(tt.b)
			if got != tt.want {
				t.Errorf("%v.Difference(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}

			if back := tt.b.Difference(tt.a); back != got {
				t.Errorf("Difference is not symmetric: %v vs %v", got, back)
			}
		})
	}
}

func TestDifferenceMatchesTimePackage(t *testing.T) {
	base := New(1, 1, 1999)
	d := base

	for i := 0; i < 3000; i++ {
		want := int(d.Time().Sub(base.Time()).Hours() / 24)
		if got := base.Difference(d); got != want {
			t.Fatalf("%v.Difference(%v) = %d, want %d", base, d, got, want)
		}
		d = d.Tomorrow()
	}
}

func TestTomorrow(t *testing.T) {
	tests := []struct {
		name  string
		input Date
		want  string
	}{
		{"Mid month", New(10, 1, 2023), "11/01/2023"},
		{"End of 30-day month", New(30, 4, 2023), "01/05/2023"},
		{"End of 31-day month", New(31, 1, 2023), "01/02/2023"},
		{"February non-leap", New(28, 2, 2023), "01/03/2023"},
		{"February leap", New(28, 2, 2024), "29/02/2024"},
		{"Leap day", New(29, 2, 2024), "01/03/2024"},
		{"End of year", New(31, 12, 2099), "01/01/2100"},
		{"End of supported range", New(31, 12, 9999), "01/01/2000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.input.Tomorrow()

			if got.String() != tt.want {
				t.Errorf("%v.Tomorrow() = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFromTime(t *testing.T) {
	input := time.Date(2025, 1, 15, 14, 30, 45, 0, time.UTC)
	result := FromTime(input)

	if result.String() != "15/01/2025" {
		t.Errorf("FromTime(%v) = %v, want 15/01/2025", input, result)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{"Slash format", "15/01/2025", New(15, 1, 2025), false},
		{"Dot format", "15.01.2025", New(15, 1, 2025), false},
		{"Dash format", "29-02-2024", New(29, 2, 2024), false},
		{"No padding", "5/3/2023", New(5, 3, 2023), false},
		{"Invalid day", "31/02/2025", Date{}, true},
		{"Not a number", "aa/01/2025", Date{}, true},
		{"Missing year", "15/01", Date{}, true},
		{"Empty", "", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.input)

			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}

			if tt.wantErr && !errors.Is(err, ErrInvalidDate) {
				t.Errorf("ParseDate(%q) error = %v, want ErrInvalidDate", tt.input, err)
			}

			if !tt.wantErr && !result.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, result, tt.want)
			}
		})
	}
}
