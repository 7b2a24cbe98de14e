// Package format holds the pure string transforms used by the web pages:
// input masks for the reservation intake form and display formatting for
// dates, times and odometer readings. Every function is stateless.
package format

import (
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// digits strips everything but ASCII digits from s, keeping at most max
// of them. max <= 0 means unbounded.
func digits(s string, max int) string {
	var b strings.Builder
	for _, r := range s {
		if r < '0' || r > '9' {
			continue
		}
		b.WriteRune(r)
		if max > 0 && b.Len() == max {
			break
		}
	}
	return b.String()
}

// Phone formats a phone number progressively as XXX-XXX-XXXX.
func Phone(s string) string {
	clean := digits(s, 10)
	switch {
	case len(clean) <= 3:
		return clean
	case len(clean) <= 6:
		return clean[:3] + "-" + clean[3:]
	default:
		return clean[:3] + "-" + clean[3:6] + "-" + clean[6:]
	}
}

// CardNumber formats a credit card number progressively into groups of
// four digits, up to XXXX-XXXX-XXXX-XXXX.
func CardNumber(s string) string {
	clean := digits(s, 16)
	var groups []string
	for i := 0; i < len(clean); i += 4 {
		end := i + 4
		if end > len(clean) {
			end = len(clean)
		}
		groups = append(groups, clean[i:end])
	}
	return strings.Join(groups, "-")
}

// Expiration formats a card expiration as mm/yy. A month value greater
// than 12 is coerced to "01".
func Expiration(s string) string {
	clean := digits(s, 4)
	if clean == "" {
		return ""
	}
	if len(clean) == 1 {
		return clean
	}

	month := clean[:2]
	if n, err := strconv.Atoi(month); err == nil && n > 12 {
		month = "01"
	}
	if len(clean) <= 2 {
		return month
	}
	return month + "/" + clean[2:]
}

// Zip caps a ZIP code at five digits.
func Zip(s string) string {
	return digits(s, 5)
}

// PIN caps a card PIN at three digits.
func PIN(s string) string {
	return digits(s, 3)
}

// Date renders a timestamp as "Monday, January 02, 2006 at 3:04 PM".
func Date(t time.Time) string {
	return t.Format("Monday, January 02, 2006 at 3:04 PM")
}

// DateOnly renders a timestamp as "Monday, January 02, 2006".
func DateOnly(t time.Time) string {
	return t.Format("Monday, January 02, 2006")
}

// ReservationTime renders a pickup time on a 12-hour clock with AM/PM
// and no seconds.
func ReservationTime(t time.Time) string {
	return t.Format("3:04 PM")
}

// NumberWithCommas groups a number with commas ("12345" -> "12,345").
func NumberWithCommas(n int64) string {
	return humanize.Comma(n)
}

// Mileage renders an odometer reading kept as a string in transit,
// comma-grouped. Unparseable readings are returned untouched.
func Mileage(s string) string {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return s
	}
	return humanize.Comma(n)
}

// TitleCase uppercases the first letter of every word and lowercases
// the rest.
func TitleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
