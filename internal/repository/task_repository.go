package repository

import (
	"context"
	"errors"

	"buildtrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound = errors.New("task not found")
)

type TaskRepository struct {
	db *gorm.DB
}

type TaskRepositoryInterface interface {
	Create(ctx context.Context, task *model.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error)
	GetAll(ctx context.Context, projectID *uuid.UUID) ([]model.Task, error)
	Update(ctx context.Context, task *model.Task) error
	GetAssigneeID(ctx context.Context, id uuid.UUID) (*uuid.UUID, error)
}

var _ TaskRepositoryInterface = (*TaskRepository)(nil)

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create adds a new task to the database
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// GetByID retrieves a task with assignee, reporter and comments resolved
func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	var task model.Task
	result := r.db.WithContext(ctx).
		Preload("Assignee").
		Preload("Reporter").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at")
		}).
		Preload("Comments.Author").
		First(&task, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, result.Error
	}
	return &task, nil
}

// GetAll retrieves tasks, optionally scoped to one project, with assignee,
// reporter and comment authors eagerly loaded.
func (r *TaskRepository) GetAll(ctx context.Context, projectID *uuid.UUID) ([]model.Task, error) {
	var tasks []model.Task
	query := r.db.WithContext(ctx).
		Preload("Assignee").
		Preload("Reporter").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at")
		}).
		Preload("Comments.Author")

	if projectID != nil {
		query = query.Where("project_id = ?", *projectID)
	}

	result := query.Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// Update writes the full task row. Last write wins.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	result := r.db.WithContext(ctx).Save(task)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// GetAssigneeID reads only the stored assignee of a task. Used before an
// update to decide whether a reassignment notification is due.
func (r *TaskRepository) GetAssigneeID(ctx context.Context, id uuid.UUID) (*uuid.UUID, error) {
	var task model.Task
	result := r.db.WithContext(ctx).Select("assignee_id").First(&task, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, result.Error
	}
	return task.AssigneeID, nil
}
