package format

import (
	"testing"
	"time"
)

func TestPhoneProgressive(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ""},
		{"1", "1"},
		{"123", "123"},
		{"1234", "123-4"},
		{"123456", "123-456"},
		{"1234567", "123-456-7"},
		{"1234567890", "123-456-7890"},
		{"12345678901234", "123-456-7890"}, // never exceeds XXX-XXX-XXXX
		{"(123) 456-7890", "123-456-7890"},
	}
	for _, c := range cases {
		if got := Phone(c.in); got != c.want {
			t.Errorf("Phone(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCardNumberGrouping(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ""},
		{"1234", "1234"},
		{"12345", "1234-5"},
		{"12345678", "1234-5678"},
		{"123456781234", "1234-5678-1234"},
		{"1234567812345678", "1234-5678-1234-5678"},
		{"1234 5678 1234 5678 999", "1234-5678-1234-5678"}, // capped at 16 digits
	}
	for _, c := range cases {
		if got := CardNumber(c.in); got != c.want {
			t.Errorf("CardNumber(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestExpiration(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ""},
		{"1", "1"},
		{"13", "01"}, // invalid month coerced
		{"99", "01"},
		{"12", "12"},
		{"0399", "03/99"},
		{"03/99", "03/99"},
		{"1230", "12/30"},
	}
	for _, c := range cases {
		if got := Expiration(c.in); got != c.want {
			t.Errorf("Expiration(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestZipAndPIN(t *testing.T) {
	if got := Zip("12345-6789"); got != "12345" {
		t.Errorf("Zip = %q, want 12345", got)
	}
	if got := PIN("98765"); got != "987" {
		t.Errorf("PIN = %q, want 987", got)
	}
}

func TestReservationTime(t *testing.T) {
	cases := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2024, 5, 1, 0, 5, 30, 0, time.UTC), "12:05 AM"},
		{time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC), "9:00 AM"},
		{time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), "12:00 PM"},
		{time.Date(2024, 5, 1, 17, 45, 12, 0, time.UTC), "5:45 PM"},
	}
	for _, c := range cases {
		if got := ReservationTime(c.in); got != c.want {
			t.Errorf("ReservationTime(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestDate(t *testing.T) {
	ts := time.Date(2024, 5, 3, 14, 7, 0, 0, time.UTC)
	if got := Date(ts); got != "Friday, May 03, 2024 at 2:07 PM" {
		t.Errorf("Date = %q", got)
	}
	if got := DateOnly(ts); got != "Friday, May 03, 2024" {
		t.Errorf("DateOnly = %q", got)
	}
}

func TestMileage(t *testing.T) {
	cases := []struct{ in, want string }{
		{"0", "0"},
		{"999", "999"},
		{"12345", "12,345"},
		{"1234567", "1,234,567"},
		{"unknown", "unknown"}, // unparseable passes through
	}
	for _, c := range cases {
		if got := Mileage(c.in); got != c.want {
			t.Errorf("Mileage(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTitleCase(t *testing.T) {
	cases := []struct{ in, want string }{
		{"chevy cruise", "Chevy Cruise"},
		{"HONDA CIVIC", "Honda Civic"},
		{"  mixed   spacing ", "Mixed Spacing"},
	}
	for _, c := range cases {
		if got := TitleCase(c.in); got != c.want {
			t.Errorf("TitleCase(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
