// utils/dates.go
package utils

import (
	"fmt"
	"time"
)

var jst = mustLoadJST()

func mustLoadJST() *time.Location {
	loc, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		return time.FixedZone("JST", 9*60*60)
	}
	return loc
}

// JST returns the salon's display time zone.
func JST() *time.Location {
	return jst
}

// FormatJSTDateTime renders a timestamp the way the stylist reads it in
// calendar event descriptions, e.g. "2025年11月20日 9:05".
func FormatJSTDateTime(t time.Time) string {
	t = t.In(jst)
	return fmt.Sprintf("%d年%d月%d日 %d:%02d",
		t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute())
}
