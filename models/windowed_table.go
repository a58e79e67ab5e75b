package models

import (
	"fmt"
	"sort"
	"time"
)

// DateLayout is the calendar-day format used across the harness.
const DateLayout = "2006-01-02"

// WindowedTable is a day-indexed table holding one Window per calendar day.
// Rows are chronological with no duplicate dates; dates are normalized to
// midnight UTC. The only permitted mutation is appending at the end, which
// is how a walk-forward history buffer grows.
type WindowedTable struct {
	dates []time.Time
	rows  []Window
}

// NewWindowedTable returns an empty table pre-sized for capacity rows.
func NewWindowedTable(capacity int) *WindowedTable {
	return &WindowedTable{
		dates: make([]time.Time, 0, capacity),
		rows:  make([]Window, 0, capacity),
	}
}

// Day normalizes t to its calendar day at midnight UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (wt *WindowedTable) Len() int {
	return len(wt.rows)
}

func (wt *WindowedTable) DateAt(i int) time.Time {
	return wt.dates[i]
}

func (wt *WindowedTable) RowAt(i int) Window {
	return wt.rows[i]
}

func (wt *WindowedTable) FirstDate() time.Time {
	return wt.dates[0]
}

func (wt *WindowedTable) LastDate() time.Time {
	return wt.dates[len(wt.dates)-1]
}

// Append adds one day at the end of the table. The date must be strictly
// after the current last date.
func (wt *WindowedTable) Append(date time.Time, row Window) error {
	date = Day(date)
	if len(wt.dates) > 0 && !date.After(wt.LastDate()) {
		return fmt.Errorf("appending %s out of order: last date is %s",
			date.Format(DateLayout), wt.LastDate().Format(DateLayout))
	}
	wt.dates = append(wt.dates, date)
	wt.rows = append(wt.rows, row)
	return nil
}

// RowByDate returns the window for an exact calendar day.
func (wt *WindowedTable) RowByDate(date time.Time) (Window, bool) {
	date = Day(date)
	i := sort.Search(len(wt.dates), func(i int) bool { return !wt.dates[i].Before(date) })
	if i < len(wt.dates) && wt.dates[i].Equal(date) {
		return wt.rows[i], true
	}
	return Window{}, false
}

// Copy returns an independent table holding the same rows, with room for
// extraCapacity additional rows before reallocating. Walk-forward history
// buffers are pre-sized this way to the full train+test length.
func (wt *WindowedTable) Copy(extraCapacity int) *WindowedTable {
	out := NewWindowedTable(len(wt.rows) + extraCapacity)
	out.dates = append(out.dates, wt.dates...)
	out.rows = append(out.rows, wt.rows...)
	return out
}

// Split partitions the table at splitDate: rows dated on or before splitDate
// go left, the rest right. Both halves are independent copies preserving
// chronological order; together they reconstruct the table exactly.
func (wt *WindowedTable) Split(splitDate time.Time) (*WindowedTable, *WindowedTable) {
	splitDate = Day(splitDate)
	i := sort.Search(len(wt.dates), func(i int) bool { return wt.dates[i].After(splitDate) })

	left := NewWindowedTable(i)
	left.dates = append(left.dates, wt.dates[:i]...)
	left.rows = append(left.rows, wt.rows[:i]...)

	right := NewWindowedTable(len(wt.dates) - i)
	right.dates = append(right.dates, wt.dates[i:]...)
	right.rows = append(right.rows, wt.rows[i:]...)

	return left, right
}

// Equal reports whether both tables hold identical dates and values.
func (wt *WindowedTable) Equal(other *WindowedTable) bool {
	if wt.Len() != other.Len() {
		return false
	}
	for i := range wt.rows {
		if !wt.dates[i].Equal(other.dates[i]) || wt.rows[i] != other.rows[i] {
			return false
		}
	}
	return true
}
