// Package recurrence computes occurrence dates for recurring task series.
// It is a pure computation layer: it produces new task records from a
// template and a pattern, and leaves persistence and "what already exists"
// bookkeeping to its callers.
package recurrence

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"project-planner/internal/model"
)

// DefaultMaxInstances bounds a single expansion when the caller does not
// pass its own ceiling. It is a safety valve for small intervals over long
// horizons, not a business rule.
const DefaultMaxInstances = 100

// ErrNotTemplate is returned when instance generation is requested for a
// task that is not a recurring template.
var ErrNotTemplate = errors.New("task is not a recurring template")

// Occurrence is a projected future occurrence of a series, used for UI
// previews. No task record is created for it.
type Occurrence struct {
	Date             time.Time
	OccurrenceNumber int
}

// Engine expands recurrence patterns into occurrence dates and task
// instances. It holds no state besides its clock, so a single Engine is
// safe to share across callers.
type Engine struct {
	now func() time.Time
}

func New() *Engine {
	return &Engine{now: time.Now}
}

// NewWithClock returns an engine using the given clock. Only the end-date
// termination check consults it.
func NewWithClock(now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{now: now}
}

// NextOccurrence returns the occurrence date following anchor for the
// given pattern. It never fails: an unrecognized frequency returns the
// anchor unchanged, so callers are expected to validate patterns up front
// with ValidatePattern. Termination conditions are not consulted here;
// that is SeriesEnded's job.
func (e *Engine) NextOccurrence(anchor time.Time, p model.RecurrencePattern) time.Time {
	interval := p.Interval
	if interval < 1 {
		interval = 1
	}

	switch p.Frequency {
	case model.FrequencyDaily:
		return anchor.AddDate(0, 0, interval)
	case model.FrequencyWeekly:
		if len(p.DaysOfWeek) > 0 {
			// Step a day at a time until the weekday matches. The interval
			// does not apply on this path: "every 2 weeks on Monday"
			// behaves as "every Monday".
			next := anchor.AddDate(0, 0, 1)
			for i := 0; i < 7; i++ {
				if containsWeekday(p.DaysOfWeek, int(next.Weekday())) {
					return next
				}
				next = next.AddDate(0, 0, 1)
			}
			// The weekday set matched nothing within a week (all entries
			// out of range), fall back to plain weekly stepping.
		}
		return anchor.AddDate(0, 0, 7*interval)
	case model.FrequencyBiweekly:
		return anchor.AddDate(0, 0, 14*interval)
	case model.FrequencyMonthly:
		if p.DayOfMonth > 0 {
			day := p.DayOfMonth
			if day > 31 {
				day = 31
			}
			// No clamping to the target month's length: day 31 of a
			// 30-day month rolls into the following month per time.Date
			// normalization.
			year, month, _ := anchor.Date()
			hour, min, sec := anchor.Clock()
			return time.Date(year, month+time.Month(interval), day, hour, min, sec, anchor.Nanosecond(), anchor.Location())
		}
		return anchor.AddDate(0, interval, 0)
	case model.FrequencyQuarterly:
		return anchor.AddDate(0, 3*interval, 0)
	case model.FrequencyYearly:
		return anchor.AddDate(interval, 0, 0)
	}

	return anchor
}

// SeriesEnded reports whether a series has terminated before producing its
// occurrenceNumber-th generated instance. A series ends when that number
// exceeds MaxOccurrences or when the wall clock has passed EndDate; either
// condition alone is sufficient. Note the end-date check compares against
// now, not against the candidate occurrence's own date, so backfilling
// historical instances past EndDate also stops.
func (e *Engine) SeriesEnded(p model.RecurrencePattern, occurrenceNumber int) bool {
	if p.MaxOccurrences > 0 && occurrenceNumber > p.MaxOccurrences {
		return true
	}
	if p.EndDate != nil && e.now().After(*p.EndDate) {
		return true
	}
	return false
}

// GenerateNextInstance produces the next instance of a recurring series
// from its template. The instance copies the template's descriptive
// fields, gets a fresh identity, an incremented occurrence number and a
// due date computed from the pattern, and is itself not a template. The
// template is not mutated and nothing is persisted.
//
// Termination conditions are deliberately not checked here; callers gate
// generation with SeriesEnded.
func (e *Engine) GenerateNextInstance(template *model.Task) (*model.Task, error) {
	if !template.IsTemplate() {
		return nil, ErrNotTemplate
	}

	occ := template.OccurrenceNumber
	if occ < 1 {
		occ = 1
	}
	next := e.NextOccurrence(template.DueDate, *template.Recurrence)
	inst := newInstance(template, next, occ+1)
	return &inst, nil
}

// GenerateInstances expands a template into future instances, stopping at
// the first of: the computed date passing upTo, maxInstances produced
// (DefaultMaxInstances when non-positive), or the series terminating.
func (e *Engine) GenerateInstances(template *model.Task, upTo time.Time, maxInstances int) ([]model.Task, error) {
	if !template.IsTemplate() {
		return nil, ErrNotTemplate
	}
	if maxInstances <= 0 {
		maxInstances = DefaultMaxInstances
	}

	p := *template.Recurrence
	anchor := template.DueDate
	occ := template.OccurrenceNumber
	if occ < 1 {
		occ = 1
	}

	var instances []model.Task
	for len(instances) < maxInstances {
		// MaxOccurrences caps generated instances. The template itself is
		// occurrence 1, so the instance about to be stamped occ+1 is the
		// occ-th generated one.
		if e.SeriesEnded(p, occ) {
			break
		}
		next := e.NextOccurrence(anchor, p)
		if next.After(upTo) {
			break
		}
		instances = append(instances, newInstance(template, next, occ+1))
		anchor = next
		occ++
	}
	return instances, nil
}

// PreviewOccurrences projects up to count future occurrences of a template
// without creating task records, stopping early if the series terminates.
func (e *Engine) PreviewOccurrences(template *model.Task, count int) ([]Occurrence, error) {
	if !template.IsTemplate() {
		return nil, ErrNotTemplate
	}

	p := *template.Recurrence
	anchor := template.DueDate
	occ := template.OccurrenceNumber
	if occ < 1 {
		occ = 1
	}

	var occurrences []Occurrence
	for len(occurrences) < count {
		if e.SeriesEnded(p, occ) {
			break
		}
		next := e.NextOccurrence(anchor, p)
		occurrences = append(occurrences, Occurrence{Date: next, OccurrenceNumber: occ + 1})
		anchor = next
		occ++
	}
	return occurrences, nil
}

// CheckAndGenerateDueInstances materializes, for every template in the
// project, the instances falling within now+daysAhead. Each series resumes
// from its highest-numbered existing instance, or from the template's own
// due date when none exists yet, which makes repeated calls on an
// unchanged project produce nothing new.
//
// The input project is not mutated; the returned copy carries the existing
// tasks first and any newly generated instances appended after them.
func (e *Engine) CheckAndGenerateDueInstances(project *model.Project, daysAhead int) *model.Project {
	updated := *project
	updated.Tasks = make([]model.Task, len(project.Tasks))
	copy(updated.Tasks, project.Tasks)

	cutoff := e.now().AddDate(0, 0, daysAhead)

	for i := range project.Tasks {
		template := &project.Tasks[i]
		if !template.IsTemplate() {
			continue
		}

		p := *template.Recurrence
		anchor := template.DueDate
		occ := template.OccurrenceNumber
		if occ < 1 {
			occ = 1
		}
		if latest := latestInstance(updated.Tasks, template.ID); latest != nil {
			anchor = latest.DueDate
			occ = latest.OccurrenceNumber
		}

		for {
			if e.SeriesEnded(p, occ) {
				break
			}
			next := e.NextOccurrence(anchor, p)
			if next.After(cutoff) {
				break
			}
			if !next.After(anchor) {
				// A pattern that does not advance (unrecognized frequency)
				// would never pass the cutoff.
				break
			}
			updated.Tasks = append(updated.Tasks, newInstance(template, next, occ+1))
			anchor = next
			occ++
		}
	}
	return &updated
}

// newInstance builds a concrete instance of a series: descriptive fields
// copied from the template, fresh identity, reset workflow state, and the
// series link set. An instance never carries the pattern, so it cannot
// spawn further occurrences.
func newInstance(template *model.Task, dueDate time.Time, occurrenceNumber int) model.Task {
	inst := *template
	inst.ID = uuid.NewString()
	inst.Completed = false
	inst.CompletedAt = nil
	inst.Status = model.StatusTodo
	inst.DueDate = dueDate
	inst.OccurrenceNumber = occurrenceNumber
	inst.IsRecurring = false
	inst.Recurrence = nil
	templateID := template.ID
	inst.OriginalTaskID = &templateID
	inst.CreatedAt = time.Time{}
	inst.UpdatedAt = time.Time{}
	return inst
}

// latestInstance returns the highest-numbered instance of the given
// template among tasks, or nil when the series has no instances yet.
func latestInstance(tasks []model.Task, templateID string) *model.Task {
	var latest *model.Task
	for i := range tasks {
		t := &tasks[i]
		if t.OriginalTaskID == nil || *t.OriginalTaskID != templateID {
			continue
		}
		if latest == nil || t.OccurrenceNumber > latest.OccurrenceNumber {
			latest = t
		}
	}
	return latest
}

func containsWeekday(days []int, weekday int) bool {
	for _, d := range days {
		if d == weekday {
			return true
		}
	}
	return false
}
