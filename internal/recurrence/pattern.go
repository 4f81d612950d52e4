package recurrence

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"project-planner/internal/model"
)

var knownFrequencies = map[string]bool{
	model.FrequencyDaily:     true,
	model.FrequencyWeekly:    true,
	model.FrequencyBiweekly:  true,
	model.FrequencyMonthly:   true,
	model.FrequencyQuarterly: true,
	model.FrequencyYearly:    true,
}

// ValidatePattern checks a pattern structurally and returns the first
// violation found as a human-readable error, or nil when the pattern is
// valid. It is advisory: nothing in the engine calls it before generating
// instances, so callers validate before persisting a pattern.
func ValidatePattern(p model.RecurrencePattern) error {
	if p.Frequency == "" {
		return fmt.Errorf("frequency is required")
	}
	if !knownFrequencies[p.Frequency] {
		return fmt.Errorf("unsupported frequency %q", p.Frequency)
	}
	if p.Interval < 1 {
		return fmt.Errorf("interval must be at least 1")
	}
	for _, d := range p.DaysOfWeek {
		if d < 0 || d > 6 {
			return fmt.Errorf("day of week %d is out of range (0=Sunday..6=Saturday)", d)
		}
	}
	if p.DayOfMonth != 0 && (p.DayOfMonth < 1 || p.DayOfMonth > 31) {
		return fmt.Errorf("day of month must be between 1 and 31")
	}
	if p.EndDate != nil && p.EndDate.IsZero() {
		return fmt.Errorf("end date must be a valid date")
	}
	if p.MaxOccurrences < 0 {
		return fmt.Errorf("max occurrences must be at least 1")
	}
	return nil
}

// Describe renders a pattern as a fixed-format English summary, e.g.
// "Every 2 weeks on Mon, Wed until 12/31/2025 (10 times)".
func Describe(p model.RecurrencePattern) string {
	interval := p.Interval
	if interval < 1 {
		interval = 1
	}

	var b strings.Builder
	b.WriteString(frequencyClause(p.Frequency, interval))

	if p.Frequency == model.FrequencyWeekly && len(p.DaysOfWeek) > 0 {
		b.WriteString(" on ")
		b.WriteString(weekdayList(p.DaysOfWeek))
	}
	if p.Frequency == model.FrequencyMonthly && p.DayOfMonth > 0 {
		b.WriteString(fmt.Sprintf(" on the %s", ordinal(p.DayOfMonth)))
	}
	if p.EndDate != nil {
		b.WriteString(fmt.Sprintf(" until %d/%d/%d", p.EndDate.Month(), p.EndDate.Day(), p.EndDate.Year()))
	}
	if p.MaxOccurrences > 0 {
		if p.MaxOccurrences == 1 {
			b.WriteString(" (1 time)")
		} else {
			b.WriteString(fmt.Sprintf(" (%d times)", p.MaxOccurrences))
		}
	}
	return b.String()
}

func frequencyClause(frequency string, interval int) string {
	switch frequency {
	case model.FrequencyDaily:
		if interval == 1 {
			return "Every day"
		}
		return fmt.Sprintf("Every %d days", interval)
	case model.FrequencyWeekly:
		if interval == 1 {
			return "Every week"
		}
		return fmt.Sprintf("Every %d weeks", interval)
	case model.FrequencyBiweekly:
		return fmt.Sprintf("Every %d weeks", 2*interval)
	case model.FrequencyMonthly:
		if interval == 1 {
			return "Every month"
		}
		return fmt.Sprintf("Every %d months", interval)
	case model.FrequencyQuarterly:
		if interval == 1 {
			return "Every quarter"
		}
		return fmt.Sprintf("Every %d quarters", interval)
	case model.FrequencyYearly:
		if interval == 1 {
			return "Every year"
		}
		return fmt.Sprintf("Every %d years", interval)
	}
	return fmt.Sprintf("Every %s", frequency)
}

// weekdayList renders sorted 3-letter weekday abbreviations, e.g.
// "Mon, Wed". Out-of-range entries are skipped.
func weekdayList(days []int) string {
	sorted := make([]int, 0, len(days))
	for _, d := range days {
		if d >= 0 && d <= 6 {
			sorted = append(sorted, d)
		}
	}
	sort.Ints(sorted)

	names := make([]string, 0, len(sorted))
	for _, d := range sorted {
		names = append(names, time.Weekday(d).String()[:3])
	}
	return strings.Join(names, ", ")
}

func ordinal(n int) string {
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
