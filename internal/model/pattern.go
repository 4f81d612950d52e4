package model

import "time"

// Frequency values a recurrence pattern may use.
const (
	FrequencyDaily     = "daily"
	FrequencyWeekly    = "weekly"
	FrequencyBiweekly  = "biweekly"
	FrequencyMonthly   = "monthly"
	FrequencyQuarterly = "quarterly"
	FrequencyYearly    = "yearly"
)

// RecurrencePattern describes how a recurring task series repeats.
// DaysOfWeek is meaningful only for weekly patterns (0=Sunday..6=Saturday),
// DayOfMonth only for monthly ones. EndDate and MaxOccurrences are both
// termination conditions; the series ends when either one is met.
type RecurrencePattern struct {
	Frequency      string     `json:"frequency"`
	Interval       int        `json:"interval,omitempty"`
	DaysOfWeek     []int      `json:"daysOfWeek,omitempty"`
	DayOfMonth     int        `json:"dayOfMonth,omitempty"`
	EndDate        *time.Time `json:"endDate,omitempty"`
	MaxOccurrences int        `json:"maxOccurrences,omitempty"`
}
