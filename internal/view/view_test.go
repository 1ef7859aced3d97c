package view_test

import (
	"testing"
	"time"

	"buildtrack/internal/model"
	"buildtrack/internal/view"

	"github.com/stretchr/testify/assert"
)

func makeTask(title string, status model.TaskStatus, priority model.TaskPriority) model.Task {
	return model.Task{Title: title, Status: status, Priority: priority}
}

func TestFilterTasks_StatusAllEqualsTextOnly(t *testing.T) {
	tasks := []model.Task{
		makeTask("Pour foundation", model.StatusTodo, model.PriorityHigh),
		makeTask("Inspect rebar", model.StatusDone, model.PriorityLow),
		makeTask("Order concrete", model.StatusInProgress, model.PriorityMedium),
		makeTask("Fix roof leak", model.StatusBacklog, model.PriorityUrgent),
	}

	textOnly := view.FilterTasks(tasks, view.TaskFilter{Query: "o"})
	withAll := view.FilterTasks(tasks, view.TaskFilter{Query: "o", Status: view.FilterAll, Priority: view.FilterAll})

	assert.Equal(t, textOnly, withAll)
}

func TestFilterTasks_CaseInsensitiveSearch(t *testing.T) {
	tasks := []model.Task{
		makeTask("Pour Foundation", model.StatusTodo, model.PriorityHigh),
		{Title: "Other", Description: "foundation work for tower", Status: model.StatusTodo, Priority: model.PriorityLow},
		makeTask("Unrelated", model.StatusTodo, model.PriorityLow),
	}

	got := view.FilterTasks(tasks, view.TaskFilter{Query: "FOUNDATION"})

	assert.Len(t, got, 2)
}

func TestFilterTasks_StatusAndPriority(t *testing.T) {
	tasks := []model.Task{
		makeTask("a", model.StatusTodo, model.PriorityHigh),
		makeTask("b", model.StatusTodo, model.PriorityLow),
		makeTask("c", model.StatusDone, model.PriorityHigh),
	}

	got := view.FilterTasks(tasks, view.TaskFilter{Status: "todo", Priority: "high"})

	assert.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Title)
}

func TestSortTasks_PriorityStable(t *testing.T) {
	tasks := []model.Task{
		makeTask("u", model.StatusTodo, model.PriorityUrgent),
		makeTask("h", model.StatusTodo, model.PriorityHigh),
		makeTask("m1", model.StatusTodo, model.PriorityMedium),
		makeTask("l", model.StatusTodo, model.PriorityLow),
		makeTask("m2", model.StatusTodo, model.PriorityMedium),
	}

	got := view.SortTasks(tasks, view.SortPriority)

	titles := make([]string, len(got))
	for i, task := range got {
		titles[i] = task.Title
	}
	// Equal ranks keep input order: m1 before m2.
	assert.Equal(t, []string{"u", "h", "m1", "m2", "l"}, titles)
}

func TestSortTasks_DueDateNilLast(t *testing.T) {
	early := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	late := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	tasks := []model.Task{
		{Title: "none", Status: model.StatusTodo, Priority: model.PriorityLow},
		{Title: "late", Status: model.StatusTodo, Priority: model.PriorityLow, DueDate: &late},
		{Title: "early", Status: model.StatusTodo, Priority: model.PriorityLow, DueDate: &early},
	}

	got := view.SortTasks(tasks, view.SortDueDate)

	assert.Equal(t, "early", got[0].Title)
	assert.Equal(t, "late", got[1].Title)
	assert.Equal(t, "none", got[2].Title)
}

func TestSortTasks_NewestAndOldest(t *testing.T) {
	t1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	tasks := []model.Task{
		{Title: "old", CreatedAt: t1},
		{Title: "new", CreatedAt: t2},
	}

	newest := view.SortTasks(tasks, view.SortNewest)
	oldest := view.SortTasks(tasks, view.SortOldest)

	assert.Equal(t, "new", newest[0].Title)
	assert.Equal(t, "old", oldest[0].Title)
}

func TestGroupByLane_BacklogFoldsIntoTodo(t *testing.T) {
	tasks := []model.Task{
		makeTask("b", model.StatusBacklog, model.PriorityLow),
		makeTask("t", model.StatusTodo, model.PriorityLow),
		makeTask("p", model.StatusInProgress, model.PriorityLow),
		makeTask("r", model.StatusReview, model.PriorityLow),
		makeTask("d", model.StatusDone, model.PriorityLow),
		makeTask("h", model.StatusOnHold, model.PriorityLow),
	}

	lanes := view.GroupByLane(tasks)

	assert.Len(t, lanes[view.LaneTodo], 2)
	assert.Len(t, lanes[view.LaneInProgress], 1)
	assert.Len(t, lanes[view.LaneReview], 1)
	assert.Len(t, lanes[view.LaneDone], 1)
	assert.Len(t, lanes[view.LaneOnHold], 1)
}

func TestFilterProjects_MatchesClient(t *testing.T) {
	projects := []model.Project{
		{Name: "Tower", Client: "Metropolis Developments", Status: model.ProjectActive},
		{Name: "Bridge", Client: "City Council", Status: model.ProjectPlanning},
	}

	got := view.FilterProjects(projects, "metropolis", view.FilterAll)

	assert.Len(t, got, 1)
	assert.Equal(t, "Tower", got[0].Name)
}

func TestSummarize(t *testing.T) {
	projects := []model.Project{
		{Status: model.ProjectActive},
		{Status: model.ProjectActive},
		{Status: model.ProjectCompleted},
	}
	tasks := []model.Task{
		makeTask("a", model.StatusDone, model.PriorityLow),
		makeTask("b", model.StatusInProgress, model.PriorityUrgent),
		makeTask("c", model.StatusTodo, model.PriorityUrgent),
	}

	s := view.Summarize(projects, tasks)

	assert.Equal(t, 2, s.ActiveProjects)
	assert.Equal(t, 3, s.TotalProjects)
	assert.Equal(t, 3, s.TotalTasks)
	assert.Equal(t, 1, s.CompletedTasks)
	assert.Equal(t, 1, s.InProgressTasks)
	assert.Equal(t, 2, s.UrgentTasks)
}

func TestDaysRemaining_NilIsZero(t *testing.T) {
	assert.Equal(t, 0, view.DaysRemaining(nil))
}

func TestDaysRemaining_TenDaysOut(t *testing.T) {
	end := time.Now().Add(10*24*time.Hour - time.Minute)

	assert.Equal(t, 10, view.DaysRemaining(&end))
}

func TestBudgetRatio_ZeroTotal(t *testing.T) {
	assert.Equal(t, 0.0, view.BudgetRatio(0, 500))
}

func TestBudgetRatio(t *testing.T) {
	assert.InDelta(t, 43.33, view.BudgetRatio(75000000, 32500000), 0.01)
}
