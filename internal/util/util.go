package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatBudget formats a dollar amount with thousands separators,
// dropping a zero cents part: 1500 -> "$1,500", 99.5 -> "$99.50"
func FormatBudget(amount float64) string {
	cents := ""
	if amount != float64(int64(amount)) {
		cents = fmt.Sprintf(".%02d", int64(amount*100+0.5)%100)
	}

	whole := strconv.FormatInt(int64(amount), 10)
	var parts []string
	for len(whole) > 3 {
		parts = append([]string{whole[len(whole)-3:]}, parts...)
		whole = whole[:len(whole)-3]
	}
	parts = append([]string{whole}, parts...)

	return "$" + strings.Join(parts, ",") + cents
}

// FormatDate formats a date in the short form used in listings
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// Truncate shortens a string to at most max runes, appending an ellipsis
// when it was cut.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
