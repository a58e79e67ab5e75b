package models

// HoursPerDay is the fixed column width of every windowed table. Hour
// columns are positional: index h holds the reading for hour-of-day h.
const HoursPerDay = 24

// Window is one calendar day of hourly energy-load readings.
type Window [HoursPerDay]float64
