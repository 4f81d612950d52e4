package recurrence

import (
	"strings"
	"testing"
	"time"

	"project-planner/internal/model"
)

func TestValidatePattern(t *testing.T) {
	t.Parallel()
	endDate := date(2025, time.December, 31)
	var zeroDate time.Time

	tests := []struct {
		name    string
		pattern model.RecurrencePattern
		wantErr string // substring of the error, empty for a valid pattern
	}{
		{
			name:    "valid weekly",
			pattern: model.RecurrencePattern{Frequency: model.FrequencyWeekly, Interval: 1},
		},
		{
			name:    "valid with all options",
			pattern: model.RecurrencePattern{Frequency: model.FrequencyWeekly, Interval: 2, DaysOfWeek: []int{0, 6}, EndDate: &endDate, MaxOccurrences: 10},
		},
		{
			name:    "missing frequency",
			pattern: model.RecurrencePattern{Interval: 1},
			wantErr: "frequency is required",
		},
		{
			name:    "unsupported frequency",
			pattern: model.RecurrencePattern{Frequency: "hourly", Interval: 1},
			wantErr: "unsupported frequency",
		},
		{
			name:    "zero interval",
			pattern: model.RecurrencePattern{Frequency: model.FrequencyWeekly, Interval: 0},
			wantErr: "interval",
		},
		{
			name:    "negative interval",
			pattern: model.RecurrencePattern{Frequency: model.FrequencyDaily, Interval: -2},
			wantErr: "interval",
		},
		{
			name:    "day of week out of range",
			pattern: model.RecurrencePattern{Frequency: model.FrequencyWeekly, Interval: 1, DaysOfWeek: []int{1, 7}},
			wantErr: "day of week",
		},
		{
			name:    "day of month too large",
			pattern: model.RecurrencePattern{Frequency: model.FrequencyMonthly, Interval: 1, DayOfMonth: 32},
			wantErr: "day of month",
		},
		{
			name:    "day of month 31 allowed",
			pattern: model.RecurrencePattern{Frequency: model.FrequencyMonthly, Interval: 1, DayOfMonth: 31},
		},
		{
			name:    "zero end date",
			pattern: model.RecurrencePattern{Frequency: model.FrequencyDaily, Interval: 1, EndDate: &zeroDate},
			wantErr: "end date",
		},
		{
			name:    "negative max occurrences",
			pattern: model.RecurrencePattern{Frequency: model.FrequencyDaily, Interval: 1, MaxOccurrences: -1},
			wantErr: "max occurrences",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidatePattern(tt.pattern)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("ValidatePattern(%+v) = %v, want nil", tt.pattern, err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("ValidatePattern(%+v) = %v, want error containing %q", tt.pattern, err, tt.wantErr)
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	t.Parallel()
	endDate := date(2025, time.December, 31)

	tests := []struct {
		name    string
		pattern model.RecurrencePattern
		want    string
	}{
		{
			name: "full weekly summary",
			pattern: model.RecurrencePattern{
				Frequency:      model.FrequencyWeekly,
				Interval:       2,
				DaysOfWeek:     []int{1, 3},
				EndDate:        &endDate,
				MaxOccurrences: 10,
			},
			want: "Every 2 weeks on Mon, Wed until 12/31/2025 (10 times)",
		},
		{
			name:    "daily",
			pattern: model.RecurrencePattern{Frequency: model.FrequencyDaily, Interval: 1},
			want:    "Every day",
		},
		{
			name:    "every three days",
			pattern: model.RecurrencePattern{Frequency: model.FrequencyDaily, Interval: 3},
			want:    "Every 3 days",
		},
		{
			name:    "biweekly",
			pattern: model.RecurrencePattern{Frequency: model.FrequencyBiweekly, Interval: 1},
			want:    "Every 2 weeks",
		},
		{
			name:    "monthly on a day",
			pattern: model.RecurrencePattern{Frequency: model.FrequencyMonthly, Interval: 1, DayOfMonth: 2},
			want:    "Every month on the 2nd",
		},
		{
			name:    "quarterly",
			pattern: model.RecurrencePattern{Frequency: model.FrequencyQuarterly, Interval: 2},
			want:    "Every 2 quarters",
		},
		{
			name:    "yearly once",
			pattern: model.RecurrencePattern{Frequency: model.FrequencyYearly, Interval: 1, MaxOccurrences: 1},
			want:    "Every year (1 time)",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Describe(tt.pattern); got != tt.want {
				t.Fatalf("Describe(%+v) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestDescribeOrdinalSuffixes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		day        int
		wantSuffix string
	}{
		{1, "1st"},
		{2, "2nd"},
		{3, "3rd"},
		{4, "4th"},
		{11, "11th"},
		{12, "12th"},
		{13, "13th"},
		{21, "21st"},
		{22, "22nd"},
		{23, "23rd"},
		{31, "31st"},
	}

	for _, tt := range tests {
		got := Describe(model.RecurrencePattern{Frequency: model.FrequencyMonthly, Interval: 1, DayOfMonth: tt.day})
		if !strings.HasSuffix(got, tt.wantSuffix) {
			t.Errorf("Describe(dayOfMonth=%d) = %q, want suffix %q", tt.day, got, tt.wantSuffix)
		}
	}
}
