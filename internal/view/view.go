// Package view derives display state from fetched collections: filtering,
// sorting, board lanes and dashboard counters. Everything here is pure; the
// handlers own the I/O.
package view

import (
	"math"
	"slices"
	"strings"
	"time"

	"buildtrack/internal/model"
)

// FilterAll disables a status or priority filter.
const FilterAll = "all"

// Sort keys for task lists.
const (
	SortNewest   = "newest"
	SortOldest   = "oldest"
	SortDueDate  = "dueDate"
	SortPriority = "priority"
)

// Board lanes. Backlog tasks are folded into the todo lane.
const (
	LaneTodo       = "todo"
	LaneInProgress = "in-progress"
	LaneReview     = "review"
	LaneDone       = "done"
	LaneOnHold     = "on-hold"
)

// TaskFilter holds the ephemeral list controls of the tasks view.
type TaskFilter struct {
	Query    string
	Status   string
	Priority string
}

// FilterTasks applies a case-insensitive substring match on title and
// description plus independent equality filters on status and priority.
// A filter set to "all" (or left empty) matches everything.
func FilterTasks(tasks []model.Task, f TaskFilter) []model.Task {
	query := strings.ToLower(f.Query)
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		matchesSearch := query == "" ||
			strings.Contains(strings.ToLower(t.Title), query) ||
			strings.Contains(strings.ToLower(t.Description), query)
		matchesStatus := f.Status == "" || f.Status == FilterAll || string(t.Status) == f.Status
		matchesPriority := f.Priority == "" || f.Priority == FilterAll || string(t.Priority) == f.Priority

		if matchesSearch && matchesStatus && matchesPriority {
			out = append(out, t)
		}
	}
	return out
}

// SortTasks returns a sorted copy. Sorting is stable, so equal keys keep
// their incoming order. Tasks without a due date sort after all dated tasks
// regardless of direction. Unknown keys leave the order unchanged.
func SortTasks(tasks []model.Task, key string) []model.Task {
	sorted := slices.Clone(tasks)
	switch key {
	case SortNewest:
		slices.SortStableFunc(sorted, func(a, b model.Task) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	case SortOldest:
		slices.SortStableFunc(sorted, func(a, b model.Task) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		})
	case SortDueDate:
		slices.SortStableFunc(sorted, func(a, b model.Task) int {
			switch {
			case a.DueDate == nil && b.DueDate == nil:
				return 0
			case a.DueDate == nil:
				return 1
			case b.DueDate == nil:
				return -1
			}
			return a.DueDate.Compare(*b.DueDate)
		})
	case SortPriority:
		slices.SortStableFunc(sorted, func(a, b model.Task) int {
			return a.Priority.Rank() - b.Priority.Rank()
		})
	}
	return sorted
}

// GroupByLane buckets tasks into the fixed board lanes. Relative order
// within a lane follows the input order.
func GroupByLane(tasks []model.Task) map[string][]model.Task {
	lanes := map[string][]model.Task{
		LaneTodo:       {},
		LaneInProgress: {},
		LaneReview:     {},
		LaneDone:       {},
		LaneOnHold:     {},
	}
	for _, t := range tasks {
		lane := string(t.Status)
		if t.Status == model.StatusBacklog {
			lane = LaneTodo
		}
		lanes[lane] = append(lanes[lane], t)
	}
	return lanes
}

// FilterProjects matches the search string against name, description and
// client; status filtering works as in FilterTasks.
func FilterProjects(projects []model.Project, query, status string) []model.Project {
	q := strings.ToLower(query)
	out := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		matchesSearch := q == "" ||
			strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Client), q)
		matchesStatus := status == "" || status == FilterAll || string(p.Status) == status

		if matchesSearch && matchesStatus {
			out = append(out, p)
		}
	}
	return out
}

// Summary holds the dashboard counters. Recomputed from the current
// collections on every request; no aggregate is maintained.
type Summary struct {
	ActiveProjects  int `json:"active_projects"`
	TotalProjects   int `json:"total_projects"`
	TotalTasks      int `json:"total_tasks"`
	CompletedTasks  int `json:"completed_tasks"`
	InProgressTasks int `json:"in_progress_tasks"`
	UrgentTasks     int `json:"urgent_tasks"`
}

func Summarize(projects []model.Project, tasks []model.Task) Summary {
	s := Summary{
		TotalProjects: len(projects),
		TotalTasks:    len(tasks),
	}
	for _, p := range projects {
		if p.Status == model.ProjectActive {
			s.ActiveProjects++
		}
	}
	for _, t := range tasks {
		if t.Status == model.StatusDone {
			s.CompletedTasks++
		}
		if t.Status == model.StatusInProgress {
			s.InProgressTasks++
		}
		if t.Priority == model.PriorityUrgent {
			s.UrgentTasks++
		}
	}
	return s
}

// DaysRemaining returns the integer ceiling of days until end, 0 when end is
// nil. Past dates come out negative.
func DaysRemaining(end *time.Time) int {
	if end == nil {
		return 0
	}
	diff := time.Until(*end)
	return int(math.Ceil(diff.Hours() / 24))
}

// BudgetRatio returns spent as a percentage of total, 0 when total is zero
// so an unbudgeted project never divides by zero.
func BudgetRatio(total, spent float64) float64 {
	if total <= 0 {
		return 0
	}
	return spent / total * 100
}
