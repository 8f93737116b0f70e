// Package daterange resolves a time-filter selection into the ordered list of
// date keys whose word lists should be loaded. Keys use the DDMMYY format of
// the daily word-list files, e.g. 2024-03-05 -> "050324".
package daterange

import (
	"fmt"
	"time"

	"github.com/dailyvocab/vocab-study-bot/internal/domain/entities"
)

// specificDayOffsets are the review intervals (in days before today) used by
// the specific-days filter, today included.
var specificDayOffsets = []int{0, 1, 2, 3, 5, 7, 15, 30, 60}

// FormatKey renders a calendar date as a DDMMYY key.
func FormatKey(t time.Time) string {
	return fmt.Sprintf("%02d%02d%02d", t.Day(), int(t.Month()), t.Year()%100)
}

// Resolve returns the date keys for the given filter state, relative to now.
// The result order is the order in which lists are fetched and merged. An
// unrecognized filter falls back to today only.
func Resolve(now time.Time, state entities.FilterState) []string {
	today := truncate(now)

	switch state.TimeFilter {
	case entities.TimeToday:
		return []string{FormatKey(today)}

	case entities.TimeYesterday:
		return []string{FormatKey(today.AddDate(0, 0, -1))}

	case entities.TimeThisWeek:
		// Today back to the most recent Sunday, newest first.
		weekday := int(today.Weekday())
		keys := make([]string, 0, weekday+1)
		for i := 0; i <= weekday; i++ {
			keys = append(keys, FormatKey(today.AddDate(0, 0, -i)))
		}
		return keys

	case entities.TimeLastWeek:
		// The full previous calendar week, Sunday through Saturday.
		start := today.AddDate(0, 0, -int(today.Weekday())-7)
		keys := make([]string, 0, 7)
		for i := 0; i < 7; i++ {
			keys = append(keys, FormatKey(start.AddDate(0, 0, i)))
		}
		return keys

	case entities.TimeLastMonth:
		// The 30 days strictly before today, newest first.
		keys := make([]string, 0, 30)
		for i := 1; i <= 30; i++ {
			keys = append(keys, FormatKey(today.AddDate(0, 0, -i)))
		}
		return keys

	case entities.TimeCustom:
		if state.CustomStart.IsZero() || state.CustomEnd.IsZero() {
			return nil
		}
		var keys []string
		end := truncate(state.CustomEnd)
		for d := truncate(state.CustomStart); !d.After(end); d = d.AddDate(0, 0, 1) {
			keys = append(keys, FormatKey(d))
		}
		return keys

	case entities.TimeSpecificDays:
		keys := make([]string, 0, len(specificDayOffsets))
		for _, off := range specificDayOffsets {
			keys = append(keys, FormatKey(today.AddDate(0, 0, -off)))
		}
		return keys

	default:
		return []string{FormatKey(today)}
	}
}

func truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
