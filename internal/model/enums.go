package model

import "fmt"

// EnumError reports a stored or submitted value outside its enumerated set.
// Parsing fails loudly instead of substituting a default.
type EnumError struct {
	Field string
	Value string
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "planning"
	ProjectActive    ProjectStatus = "active"
	ProjectOnHold    ProjectStatus = "on-hold"
	ProjectCompleted ProjectStatus = "completed"
)

func ParseProjectStatus(s string) (ProjectStatus, error) {
	switch ProjectStatus(s) {
	case ProjectPlanning, ProjectActive, ProjectOnHold, ProjectCompleted:
		return ProjectStatus(s), nil
	}
	return "", &EnumError{Field: "project status", Value: s}
}

type TaskStatus string

const (
	StatusBacklog    TaskStatus = "backlog"
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in-progress"
	StatusReview     TaskStatus = "review"
	StatusDone       TaskStatus = "done"
	StatusOnHold     TaskStatus = "on-hold"
)

// ParseTaskStatus validates a task status string. Transitions between
// statuses are unrestricted, so this is the only check a status gets.
func ParseTaskStatus(s string) (TaskStatus, error) {
	switch TaskStatus(s) {
	case StatusBacklog, StatusTodo, StatusInProgress, StatusReview, StatusDone, StatusOnHold:
		return TaskStatus(s), nil
	}
	return "", &EnumError{Field: "task status", Value: s}
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

func ParseTaskPriority(s string) (TaskPriority, error) {
	switch TaskPriority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return TaskPriority(s), nil
	}
	return "", &EnumError{Field: "task priority", Value: s}
}

// Rank orders priorities for sorting: urgent first, low last.
func (p TaskPriority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	}
	return 4
}

type Role string

const (
	RoleProjectManager   Role = "Project Manager"
	RoleSiteEngineer     Role = "Site Engineer"
	RoleArchitect        Role = "Architect"
	RoleConstructionLead Role = "Construction Lead"
	RoleWorker           Role = "Worker"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleProjectManager, RoleSiteEngineer, RoleArchitect, RoleConstructionLead, RoleWorker:
		return Role(s), nil
	}
	return "", &EnumError{Field: "role", Value: s}
}

// IsAdmin reports whether the role grants admin capabilities. Only an exact
// "Project Manager" role qualifies; case variants do not.
func (r Role) IsAdmin() bool {
	return r == RoleProjectManager
}
