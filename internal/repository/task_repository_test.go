package repository_test

import (
	"context"
	"testing"

	"buildtrack/internal/model"
	"buildtrack/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTaskRepository_Create(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	taskID := uuid.New()
	task := &model.Task{
		ID:         taskID,
		ProjectID:  uuid.New(),
		Title:      "TICKET: Leak",
		Status:     model.StatusTodo,
		Priority:   model.PriorityUrgent,
		ReporterID: uuid.New(),
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "tasks"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(taskID.String()))
	mock.ExpectCommit()

	// Act
	err := taskRepo.Create(context.Background(), task)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_GetAssigneeID_Found(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	taskID := uuid.New()
	assigneeID := uuid.New()

	mock.ExpectQuery(`SELECT .*assignee_id.* FROM "tasks" WHERE id = .* LIMIT 1`).
		WithArgs(taskID).
		WillReturnRows(sqlmock.NewRows([]string{"assignee_id"}).AddRow(assigneeID.String()))

	// Act
	got, err := taskRepo.GetAssigneeID(context.Background(), taskID)

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, assigneeID, *got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_GetAssigneeID_Unassigned(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	taskID := uuid.New()

	mock.ExpectQuery(`SELECT .*assignee_id.* FROM "tasks" WHERE id = .* LIMIT 1`).
		WithArgs(taskID).
		WillReturnRows(sqlmock.NewRows([]string{"assignee_id"}).AddRow(nil))

	// Act
	got, err := taskRepo.GetAssigneeID(context.Background(), taskID)

	// Assert
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_GetAssigneeID_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	taskID := uuid.New()

	mock.ExpectQuery(`SELECT .*assignee_id.* FROM "tasks" WHERE id = .* LIMIT 1`).
		WithArgs(taskID).
		WillReturnError(gorm.ErrRecordNotFound)

	// Act
	got, err := taskRepo.GetAssigneeID(context.Background(), taskID)

	// Assert
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_Update_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	task := &model.Task{
		ID:         uuid.New(),
		ProjectID:  uuid.New(),
		Title:      "Pour foundation",
		Status:     model.StatusTodo,
		Priority:   model.PriorityMedium,
		ReporterID: uuid.New(),
	}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "tasks"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	// Act
	err := taskRepo.Update(context.Background(), task)

	// Assert
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_Update(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	task := &model.Task{
		ID:         uuid.New(),
		ProjectID:  uuid.New(),
		Title:      "Pour foundation",
		Status:     model.StatusDone,
		Priority:   model.PriorityMedium,
		ReporterID: uuid.New(),
	}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "tasks"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	err := taskRepo.Update(context.Background(), task)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
