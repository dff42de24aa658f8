package handlers

import "time"

const dateLayout = "2006-01-02"

// Schedules carry plain calendar dates, no clock time and no timezone.
func parseDate(dateStr string) (time.Time, error) {
	return time.Parse(dateLayout, dateStr)
}
