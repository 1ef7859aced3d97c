package handler

import (
	"net/http"
	"time"

	"buildtrack/internal/cache"
	"buildtrack/internal/logging"
	"buildtrack/internal/middleware"
	"buildtrack/internal/model"
	"buildtrack/internal/notify"
	"buildtrack/internal/repository"
	"buildtrack/internal/view"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TaskHandler struct {
	taskRepo    repository.TaskRepositoryInterface
	projectRepo repository.ProjectRepositoryInterface
	userRepo    repository.UserRepositoryInterface
	commentRepo repository.CommentRepositoryInterface
	notifier    *notify.Notifier
	cache       *cache.Cache
}

func NewTaskHandler(
	taskRepo repository.TaskRepositoryInterface,
	projectRepo repository.ProjectRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	commentRepo repository.CommentRepositoryInterface,
	notifier *notify.Notifier,
	c *cache.Cache,
) *TaskHandler {
	return &TaskHandler{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
		commentRepo: commentRepo,
		notifier:    notifier,
		cache:       c,
	}
}

// TaskRequest covers create and full-row update.
type TaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	ProjectID   string     `json:"project_id" binding:"required,uuid"`
	AssigneeID  *string    `json:"assignee_id" binding:"omitempty,uuid"`
	DueDate     *time.Time `json:"due_date"`
}

// TicketRequest is the raise-ticket convenience flow: priority and status
// are forced, the title gets the ticket prefix.
type TicketRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ProjectID   string `json:"project_id" binding:"required,uuid"`
}

// CommentRequest appends one comment to a task.
type CommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// GetAll returns tasks, optionally scoped by ?project_id=, with the list
// controls ?q=, ?status=, ?priority= and ?sort= applied. The unfiltered
// collection is served through the cache; fetch errors degrade to an empty
// list.
func (h *TaskHandler) GetAll(c *gin.Context) {
	var projectID *uuid.UUID
	if raw := c.Query("project_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
			return
		}
		projectID = &id
	}

	tasks := h.loadTasks(c, projectID)
	tasks = view.FilterTasks(tasks, view.TaskFilter{
		Query:    c.Query("q"),
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
	})
	tasks = view.SortTasks(tasks, c.Query("sort"))

	c.JSON(http.StatusOK, toTaskResponses(tasks))
}

// GetBoard returns the same filtered task set bucketed into the fixed
// status lanes for Kanban display.
func (h *TaskHandler) GetBoard(c *gin.Context) {
	var projectID *uuid.UUID
	if raw := c.Query("project_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
			return
		}
		projectID = &id
	}

	tasks := h.loadTasks(c, projectID)
	tasks = view.FilterTasks(tasks, view.TaskFilter{
		Query:    c.Query("q"),
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
	})
	tasks = view.SortTasks(tasks, c.Query("sort"))

	lanes := view.GroupByLane(tasks)
	resp := make(map[string][]TaskResponse, len(lanes))
	for lane, laneTasks := range lanes {
		resp[lane] = toTaskResponses(laneTasks)
	}

	c.JSON(http.StatusOK, resp)
}

// GetByID returns one task fully resolved.
func (h *TaskHandler) GetByID(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	task, err := h.taskRepo.GetByID(c.Request.Context(), taskID)
	if err != nil {
		if err == repository.ErrTaskNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve task"})
		}
		return
	}

	c.JSON(http.StatusOK, toTaskResponse(task))
}

// Create inserts a task with the current user as reporter. When an assignee
// is set, a best-effort notification goes out; its failure never fails the
// request.
func (h *TaskHandler) Create(c *gin.Context) {
	reporterID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, assignee, ok := h.buildTask(c, &req, reporterID)
	if !ok {
		return
	}

	if err := h.taskRepo.Create(c.Request.Context(), task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	h.invalidateTasks(c, task.ProjectID)

	if assignee != nil {
		h.notifier.TaskAssigned(c.Request.Context(), assignee.Email, task.Title)
	}

	created, err := h.taskRepo.GetByID(c.Request.Context(), task.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve task"})
		return
	}

	c.JSON(http.StatusCreated, toTaskResponse(created))
}

// Update writes the full task row. A reassignment notification goes out
// only when the stored assignee actually changed.
func (h *TaskHandler) Update(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	// Pre-read the stored assignee so the notification fires only on a real
	// change.
	previousAssigneeID, err := h.taskRepo.GetAssigneeID(c.Request.Context(), taskID)
	if err != nil {
		if err == repository.ErrTaskNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve task"})
		}
		return
	}

	task, err := h.taskRepo.GetByID(c.Request.Context(), taskID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve task"})
		return
	}

	updated, assignee, ok := h.buildTask(c, &req, task.ReporterID)
	if !ok {
		return
	}

	task.Title = updated.Title
	task.Description = updated.Description
	task.Status = updated.Status
	task.Priority = updated.Priority
	task.AssigneeID = updated.AssigneeID
	task.DueDate = updated.DueDate
	task.Assignee = nil
	task.Comments = nil
	task.Attachments = nil

	if err := h.taskRepo.Update(c.Request.Context(), task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	h.invalidateTasks(c, task.ProjectID)

	if assignee != nil && (previousAssigneeID == nil || *previousAssigneeID != assignee.ID) {
		h.notifier.TaskReassigned(c.Request.Context(), assignee.Email, task.Title)
	}

	saved, err := h.taskRepo.GetByID(c.Request.Context(), task.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve task"})
		return
	}

	c.JSON(http.StatusOK, toTaskResponse(saved))
}

// RaiseTicket creates an urgent todo task titled "TICKET: <title>" with the
// current user as reporter and returns the new task id.
func (h *TaskHandler) RaiseTicket(c *gin.Context) {
	reporterID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req TicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	if _, err := h.projectRepo.GetByID(c.Request.Context(), projectID); err != nil {
		if err == repository.ErrProjectNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		}
		return
	}

	task := &model.Task{
		ProjectID:   projectID,
		Title:       model.TicketTitlePrefix + req.Title,
		Description: req.Description,
		Status:      model.StatusTodo,
		Priority:    model.PriorityUrgent,
		ReporterID:  reporterID,
	}

	if err := h.taskRepo.Create(c.Request.Context(), task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to raise ticket"})
		return
	}

	h.invalidateTasks(c, projectID)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"task_id": task.ID.String(),
	})
}

// AddComment appends a comment authored by the current user.
func (h *TaskHandler) AddComment(c *gin.Context) {
	authorID, ok := currentUserID(c)
	if !ok {
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := h.taskRepo.GetByID(c.Request.Context(), taskID)
	if err != nil {
		if err == repository.ErrTaskNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve task"})
		}
		return
	}

	comment := &model.Comment{
		TaskID:   taskID,
		AuthorID: authorID,
		Content:  req.Text,
	}

	if err := h.commentRepo.Create(c.Request.Context(), comment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add comment"})
		return
	}

	h.invalidateTasks(c, task.ProjectID)

	author, err := h.userRepo.GetByID(c.Request.Context(), authorID)
	if err == nil && author != nil {
		comment.Author = *author
	}

	c.JSON(http.StatusCreated, toCommentResponse(comment))
}

// buildTask validates a TaskRequest into a model.Task, resolving enums and
// the assignee. Responds with the appropriate error itself and reports
// success in its last return.
func (h *TaskHandler) buildTask(c *gin.Context, req *TaskRequest, reporterID uuid.UUID) (*model.Task, *model.User, bool) {
	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return nil, nil, false
	}

	if _, err := h.projectRepo.GetByID(c.Request.Context(), projectID); err != nil {
		if err == repository.ErrProjectNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		}
		return nil, nil, false
	}

	status := model.StatusTodo
	if req.Status != "" {
		parsed, err := model.ParseTaskStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return nil, nil, false
		}
		status = parsed
	}

	priority := model.PriorityMedium
	if req.Priority != "" {
		parsed, err := model.ParseTaskPriority(req.Priority)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return nil, nil, false
		}
		priority = parsed
	}

	var assignee *model.User
	var assigneeID *uuid.UUID
	if req.AssigneeID != nil {
		id, err := uuid.Parse(*req.AssigneeID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignee ID format"})
			return nil, nil, false
		}
		assignee, err = h.userRepo.GetByID(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve assignee"})
			return nil, nil, false
		}
		if assignee == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Assignee not found"})
			return nil, nil, false
		}
		assigneeID = &id
	}

	return &model.Task{
		ProjectID:   projectID,
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Priority:    priority,
		AssigneeID:  assigneeID,
		ReporterID:  reporterID,
		DueDate:     req.DueDate,
	}, assignee, true
}

// loadTasks is the cached read of a task collection. Fetch errors degrade
// to an empty list.
func (h *TaskHandler) loadTasks(c *gin.Context, projectID *uuid.UUID) []model.Task {
	key := cache.KeyTasksAll
	if projectID != nil {
		key = cache.KeyProjectTasks(*projectID)
	}

	var tasks []model.Task
	if h.cache.GetJSON(c.Request.Context(), key, &tasks) {
		return tasks
	}

	tasks, err := h.taskRepo.GetAll(c.Request.Context(), projectID)
	if err != nil {
		logging.Logger.Errorf("fetching tasks failed: %v", err)
		return []model.Task{}
	}

	h.cache.SetJSON(c.Request.Context(), key, tasks)
	return tasks
}

// invalidateTasks drops the task collections a mutation touched: the
// project's list and the global list.
func (h *TaskHandler) invalidateTasks(c *gin.Context, projectID uuid.UUID) {
	h.cache.Invalidate(c.Request.Context(), cache.KeyTasksAll, cache.KeyProjectTasks(projectID))
}

// currentUserID pulls the authenticated user id from the context, replying
// itself on failure.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return uuid.Nil, false
	}

	return id, true
}
