package handler

import (
	"net/http"

	"buildtrack/internal/cache"
	"buildtrack/internal/logging"
	"buildtrack/internal/model"
	"buildtrack/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TeamHandler struct {
	userRepo    repository.UserRepositoryInterface
	projectRepo repository.ProjectRepositoryInterface
	cache       *cache.Cache
}

func NewTeamHandler(
	userRepo repository.UserRepositoryInterface,
	projectRepo repository.ProjectRepositoryInterface,
	c *cache.Cache,
) *TeamHandler {
	return &TeamHandler{
		userRepo:    userRepo,
		projectRepo: projectRepo,
		cache:       c,
	}
}

type AddMemberRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

// GetAll returns every profile ordered by name. Fetch errors degrade to an
// empty list.
func (h *TeamHandler) GetAll(c *gin.Context) {
	users, err := h.userRepo.GetAll(c.Request.Context())
	if err != nil {
		logging.Logger.Errorf("fetching team members failed: %v", err)
		users = []model.User{}
	}

	resp := make([]UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, toUserResponse(&users[i]))
	}

	c.JSON(http.StatusOK, resp)
}

// AddMember adds a profile to a project's team.
func (h *TeamHandler) AddMember(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
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

	user, err := h.userRepo.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := h.projectRepo.AddMember(c.Request.Context(), projectID, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add team member"})
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KeyProjects)

	c.JSON(http.StatusCreated, gin.H{"message": "Team member added"})
}

// RemoveMember removes a profile from a project's team.
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
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

	if err := h.projectRepo.RemoveMember(c.Request.Context(), projectID, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove team member"})
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KeyProjects)

	c.JSON(http.StatusOK, gin.H{"message": "Team member removed"})
}
