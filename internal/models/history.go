package models

import "sort"

// HistoryWindow maps yyyy-MM-dd dates to their day logs. Dates without data
// are not keys.
type HistoryWindow map[string]DayLog

// HasData reports whether the window holds a day log for date.
func (w HistoryWindow) HasData(date string) bool {
	_, ok := w[date]
	return ok
}

// Get returns the day log for date, or nil.
func (w HistoryWindow) Get(date string) DayLog {
	return w[date]
}

// Dates returns the dates with data, newest first.
func (w HistoryWindow) Dates() []string {
	dates := make([]string, 0, len(w))
	for date := range w {
		dates = append(dates, date)
	}
	// yyyy-MM-dd sorts lexically
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates
}

// EntryCount returns the number of entries across the window.
func (w HistoryWindow) EntryCount() int {
	total := 0
	for _, log := range w {
		total += len(log)
	}
	return total
}
