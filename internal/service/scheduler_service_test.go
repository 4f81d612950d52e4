package service

import (
	"testing"
	"time"
)

func TestBuildDailySpec(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		time    string
		want    string
		wantErr bool
	}{
		{name: "morning", time: "09:30", want: "0 30 9 * * *"},
		{name: "midnight", time: "00:00", want: "0 0 0 * * *"},
		{name: "missing colon", time: "930", wantErr: true},
		{name: "hour out of range", time: "25:00", wantErr: true},
		{name: "minute out of range", time: "10:66", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := buildDailySpec(tt.time)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("buildDailySpec(%q) expected error", tt.time)
				}
				return
			}
			if err != nil {
				t.Fatalf("buildDailySpec(%q): %v", tt.time, err)
			}
			if got != tt.want {
				t.Fatalf("buildDailySpec(%q) = %q, want %q", tt.time, got, tt.want)
			}
		})
	}
}

func TestScheduleIntervalRejectsNonPositive(t *testing.T) {
	t.Parallel()
	s := NewSchedulerService(time.UTC)
	if _, err := s.ScheduleInterval(0, func() {}); err == nil {
		t.Fatal("expected error for zero interval")
	}
	if _, err := s.ScheduleInterval(-time.Minute, func() {}); err == nil {
		t.Fatal("expected error for negative interval")
	}
}
