package handler

import (
	"net/http"

	"buildtrack/internal/logging"
	"buildtrack/internal/model"
	"buildtrack/internal/repository"
	"buildtrack/internal/view"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	projectRepo repository.ProjectRepositoryInterface
	taskRepo    repository.TaskRepositoryInterface
}

func NewDashboardHandler(
	projectRepo repository.ProjectRepositoryInterface,
	taskRepo repository.TaskRepositoryInterface,
) *DashboardHandler {
	return &DashboardHandler{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
	}
}

// GetSummary recomputes the dashboard counters from the current collections
// on every request.
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	projects, err := h.projectRepo.GetAll(c.Request.Context())
	if err != nil {
		logging.Logger.Errorf("fetching projects for dashboard failed: %v", err)
		projects = []model.Project{}
	}

	tasks, err := h.taskRepo.GetAll(c.Request.Context(), nil)
	if err != nil {
		logging.Logger.Errorf("fetching tasks for dashboard failed: %v", err)
		tasks = []model.Task{}
	}

	c.JSON(http.StatusOK, view.Summarize(projects, tasks))
}
