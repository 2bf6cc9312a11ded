package util

import (
	"fmt"
	"time"
)

var japaneseWeekdays = [...]string{"日", "月", "火", "水", "木", "金", "土"}

// GetDayOfWeek returns the single-character Japanese weekday of t.
func GetDayOfWeek(t time.Time) string {
	return japaneseWeekdays[t.Weekday()]
}

// GetFormattedDate renders t the way the app headers show it, e.g. "6/13(火)".
func GetFormattedDate(t time.Time) string {
	return fmt.Sprintf("%d/%d(%s)", int(t.Month()), t.Day(), GetDayOfWeek(t))
}
