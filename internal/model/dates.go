package model

import (
	"fmt"
	"time"
)

// The backend carries dates as 8-digit YYYYMMDD integers and times as
// 6-digit HHMMSS integers. The engine parses and formats these itself and
// never accepts native time values for those fields.

// DateInt converts a time to its YYYYMMDD integer form.
func DateInt(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

// TimeInt converts a time to its HHMMSS integer form.
func TimeInt(t time.Time) int {
	return t.Hour()*10000 + t.Minute()*100 + t.Second()
}

// ParseDateInt converts a YYYYMMDD integer to a time in UTC. Zero parses to
// the zero time; an out-of-range value is an error.
func ParseDateInt(d int) (time.Time, error) {
	if d == 0 {
		return time.Time{}, nil
	}
	year, month, day := d/10000, d/100%100, d%100
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("invalid date integer %d", d)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// DisplayDate formats a YYYYMMDD integer as "YYYY/MM/DD". Zero renders
// empty.
func DisplayDate(d int) string {
	if d == 0 {
		return ""
	}
	return fmt.Sprintf("%04d/%02d/%02d", d/10000, d/100%100, d%100)
}

// DisplayTime formats an HHMMSS integer as "HH:MM:SS".
func DisplayTime(t int) string {
	return fmt.Sprintf("%02d:%02d:%02d", t/10000, t/100%100, t%100)
}

// DisplayMonth formats a YYYYMM integer as "YYYY/MM".
func DisplayMonth(m int) string {
	if m == 0 {
		return ""
	}
	return fmt.Sprintf("%04d/%02d", m/100, m%100)
}
