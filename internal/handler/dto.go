package handler

import (
	"time"

	"buildtrack/internal/model"
	"buildtrack/internal/view"
)

// UserResponse is the public shape of a profile.
type UserResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Role   string `json:"role"`
}

func toUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:     u.ID.String(),
		Name:   u.Name,
		Avatar: u.Avatar,
		Role:   string(u.Role),
	}
}

// CommentResponse carries one comment with its author resolved.
type CommentResponse struct {
	ID        string       `json:"id"`
	Text      string       `json:"text"`
	Author    UserResponse `json:"author"`
	CreatedAt string       `json:"created_at"`
}

func toCommentResponse(c *model.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID.String(),
		Text:      c.Content,
		Author:    toUserResponse(&c.Author),
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

// TaskResponse is the domain shape of a task with assignee, reporter and
// comments resolved.
type TaskResponse struct {
	ID          string            `json:"id"`
	ProjectID   string            `json:"project_id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      string            `json:"status"`
	Priority    string            `json:"priority"`
	Assignee    *UserResponse     `json:"assignee,omitempty"`
	Reporter    UserResponse      `json:"reporter"`
	DueDate     *string           `json:"due_date,omitempty"`
	CreatedAt   string            `json:"created_at"`
	UpdatedAt   string            `json:"updated_at"`
	Comments    []CommentResponse `json:"comments"`
}

func toTaskResponse(t *model.Task) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID.String(),
		ProjectID:   t.ProjectID.String(),
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		Reporter:    toUserResponse(&t.Reporter),
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
		Comments:    make([]CommentResponse, 0, len(t.Comments)),
	}

	if t.Assignee != nil {
		assignee := toUserResponse(t.Assignee)
		resp.Assignee = &assignee
	}
	if t.DueDate != nil {
		dueDate := t.DueDate.Format(time.RFC3339)
		resp.DueDate = &dueDate
	}
	for i := range t.Comments {
		resp.Comments = append(resp.Comments, toCommentResponse(&t.Comments[i]))
	}

	return resp
}

func toTaskResponses(tasks []model.Task) []TaskResponse {
	out := make([]TaskResponse, len(tasks))
	for i := range tasks {
		out[i] = toTaskResponse(&tasks[i])
	}
	return out
}

// BudgetResponse groups the money fields of a project.
type BudgetResponse struct {
	Total    float64 `json:"total"`
	Spent    float64 `json:"spent"`
	Currency string  `json:"currency"`
}

// ProjectResponse is the domain shape of a project with lead and team
// resolved. DaysRemaining and BudgetRatio are derived per request.
type ProjectResponse struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Status        string         `json:"status"`
	StartDate     string         `json:"start_date"`
	EndDate       *string        `json:"end_date,omitempty"`
	Progress      int            `json:"progress"`
	Lead          UserResponse   `json:"lead"`
	Team          []UserResponse `json:"team"`
	Client        string         `json:"client"`
	Budget        BudgetResponse `json:"budget"`
	Location      string         `json:"location"`
	DaysRemaining int            `json:"days_remaining"`
	BudgetRatio   float64        `json:"budget_ratio"`
}

func toProjectResponse(p *model.Project) ProjectResponse {
	resp := ProjectResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Status:      string(p.Status),
		StartDate:   p.StartDate.Format(time.RFC3339),
		Progress:    p.Progress,
		Lead:        toUserResponse(&p.Lead),
		Team:        make([]UserResponse, 0, len(p.Team)),
		Client:      p.Client,
		Budget: BudgetResponse{
			Total:    p.BudgetTotal,
			Spent:    p.BudgetSpent,
			Currency: p.Currency,
		},
		Location:      p.Location,
		DaysRemaining: view.DaysRemaining(p.EndDate),
		BudgetRatio:   view.BudgetRatio(p.BudgetTotal, p.BudgetSpent),
	}

	if p.EndDate != nil {
		endDate := p.EndDate.Format(time.RFC3339)
		resp.EndDate = &endDate
	}
	for i := range p.Team {
		resp.Team = append(resp.Team, toUserResponse(&p.Team[i]))
	}

	return resp
}

func toProjectResponses(projects []model.Project) []ProjectResponse {
	out := make([]ProjectResponse, len(projects))
	for i := range projects {
		out[i] = toProjectResponse(&projects[i])
	}
	return out
}
