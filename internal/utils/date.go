package utils

import (
	"fmt"
	"strings"
	"time"
)

const DateKeyLayout = "2006-01-02"

// DateKey formats t as a calendar day in loc.
func DateKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DateKeyLayout)
}

// ResolveDate returns raw when it is a valid YYYY-MM-DD day, or today in loc
// when raw is empty.
func ResolveDate(raw string, now time.Time, loc *time.Location) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DateKey(now, loc), nil
	}
	d, err := time.Parse(DateKeyLayout, raw)
	if err != nil {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", raw)
	}
	return d.Format(DateKeyLayout), nil
}
