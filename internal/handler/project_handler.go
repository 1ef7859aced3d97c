package handler

import (
	"net/http"
	"time"

	"buildtrack/internal/cache"
	"buildtrack/internal/logging"
	"buildtrack/internal/middleware"
	"buildtrack/internal/model"
	"buildtrack/internal/repository"
	"buildtrack/internal/view"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProjectHandler struct {
	projectRepo repository.ProjectRepositoryInterface
	taskRepo    repository.TaskRepositoryInterface
	cache       *cache.Cache
}

func NewProjectHandler(
	projectRepo repository.ProjectRepositoryInterface,
	taskRepo repository.TaskRepositoryInterface,
	c *cache.Cache,
) *ProjectHandler {
	return &ProjectHandler{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		cache:       c,
	}
}

// ProjectRequest covers create and full-row update.
type ProjectRequest struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	StartDate   time.Time  `json:"start_date" binding:"required"`
	EndDate     *time.Time `json:"end_date"`
	Progress    int        `json:"progress" binding:"min=0,max=100"`
	Client      string     `json:"client"`
	BudgetTotal float64    `json:"budget_total"`
	BudgetSpent float64    `json:"budget_spent"`
	Location    string     `json:"location"`
}

// GetAll returns all projects with lead and team resolved, optionally
// narrowed by ?q= and ?status=. The unfiltered collection is served through
// the cache; a fetch failure degrades to an empty list.
func (h *ProjectHandler) GetAll(c *gin.Context) {
	projects := h.loadProjects(c)

	filtered := view.FilterProjects(projects, c.Query("q"), c.Query("status"))

	c.JSON(http.StatusOK, toProjectResponses(filtered))
}

// GetByID returns one project with its tasks and the derived schedule and
// budget figures.
func (h *ProjectHandler) GetByID(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	project, err := h.projectRepo.GetByID(c.Request.Context(), projectID)
	if err != nil {
		if err == repository.ErrProjectNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		}
		return
	}

	tasks, err := h.taskRepo.GetAll(c.Request.Context(), &projectID)
	if err != nil {
		logging.Logger.Errorf("fetching tasks for project %s failed: %v", projectID, err)
		tasks = []model.Task{}
	}

	resp := struct {
		ProjectResponse
		Tasks []TaskResponse `json:"tasks"`
	}{
		ProjectResponse: toProjectResponse(project),
		Tasks:           toTaskResponses(tasks),
	}

	c.JSON(http.StatusOK, resp)
}

// Create inserts a project. The creating admin becomes the lead and joins
// the team.
func (h *ProjectHandler) Create(c *gin.Context) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	leadID, ok := userID.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return
	}

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	status := model.ProjectPlanning
	if req.Status != "" {
		parsed, err := model.ParseProjectStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		status = parsed
	}

	project := &model.Project{
		Name:        req.Name,
		Description: req.Description,
		Status:      status,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Progress:    req.Progress,
		LeadID:      leadID,
		Client:      req.Client,
		BudgetTotal: req.BudgetTotal,
		BudgetSpent: req.BudgetSpent,
		Currency:    "USD",
		Location:    req.Location,
	}

	if err := h.projectRepo.Create(c.Request.Context(), project); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KeyProjects)

	created, err := h.projectRepo.GetByID(c.Request.Context(), project.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		return
	}

	c.JSON(http.StatusCreated, toProjectResponse(created))
}

// Update writes the full project row by id. Last write wins.
func (h *ProjectHandler) Update(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	status := model.ProjectPlanning
	if req.Status != "" {
		parsed, err := model.ParseProjectStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		status = parsed
	}

	project, err := h.projectRepo.GetByID(c.Request.Context(), projectID)
	if err != nil {
		if err == repository.ErrProjectNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		}
		return
	}

	project.Name = req.Name
	project.Description = req.Description
	project.Status = status
	project.StartDate = req.StartDate
	project.EndDate = req.EndDate
	project.Progress = req.Progress
	project.Client = req.Client
	project.BudgetTotal = req.BudgetTotal
	project.BudgetSpent = req.BudgetSpent
	project.Location = req.Location

	if err := h.projectRepo.Update(c.Request.Context(), project); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KeyProjects)

	c.JSON(http.StatusOK, toProjectResponse(project))
}

// loadProjects is the cached read of the full project collection. Fetch
// errors degrade to an empty list, matching the read policy everywhere.
func (h *ProjectHandler) loadProjects(c *gin.Context) []model.Project {
	var projects []model.Project
	if h.cache.GetJSON(c.Request.Context(), cache.KeyProjects, &projects) {
		return projects
	}

	projects, err := h.projectRepo.GetAll(c.Request.Context())
	if err != nil {
		logging.Logger.Errorf("fetching projects failed: %v", err)
		return []model.Project{}
	}

	h.cache.SetJSON(c.Request.Context(), cache.KeyProjects, projects)
	return projects
}
